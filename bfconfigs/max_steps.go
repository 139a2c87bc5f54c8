package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// MaxSteps is the step ceiling of one execution, 0 for unlimited.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

// -max-steps 0 restores unlimited execution over a config file value
var maxStepsFlag = cmds.OptionalVar[MaxSteps]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return maxStepsFlag.Or(configs.Value[MaxSteps](loader))
}

type JumpTable bool

var _ configs.Configurable = JumpTable(false)

func (JumpTable) ConfigExpr() string {
	return "jump_table"
}

var jumpTableFlag = cmds.OptionalSwitch("-jump-table")

func (Module) JumpTable(
	loader configs.Loader,
) JumpTable {
	return JumpTable(jumpTableFlag.Or(bool(configs.Value[JumpTable](loader))))
}

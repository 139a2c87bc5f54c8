package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (TapeSize) ConfigExpr() string {
	return "tape_size"
}

var tapeSizeFlag = cmds.Var[TapeSize]("-tape-size")

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return vars.FirstNonZero(
		*tapeSizeFlag,
		configs.Value[TapeSize](loader),
		TapeSize(bfvm.DefaultTapeSize),
	)
}

type CellModulus int

var _ configs.Configurable = CellModulus(0)

func (CellModulus) ConfigExpr() string {
	return "cell_modulus"
}

var cellModulusFlag = cmds.Var[CellModulus]("-cell-modulus")

func (Module) CellModulus(
	loader configs.Loader,
) CellModulus {
	return vars.FirstNonZero(
		*cellModulusFlag,
		configs.Value[CellModulus](loader),
		CellModulus(bfvm.DefaultCellModulus),
	)
}

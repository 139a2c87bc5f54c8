package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
)

func (Module) VMConfig(
	tapeSize TapeSize,
	cellModulus CellModulus,
	maxSteps MaxSteps,
	jumpTable JumpTable,
) bfvm.Config {
	return bfvm.Config{
		TapeSize:    int(tapeSize),
		CellModulus: int(cellModulus),
		MaxSteps:    int(maxSteps),
		JumpTable:   bool(jumpTable),
	}
}

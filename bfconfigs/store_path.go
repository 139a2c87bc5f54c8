package bfconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/vars"
)

type StorePath string

var _ configs.Configurable = StorePath("")

func (StorePath) ConfigExpr() string {
	return "store_path"
}

var storePathFlag = cmds.Var[StorePath]("-store")

func (Module) StorePath(
	loader configs.Loader,
	mode modes.Mode,
) StorePath {
	return vars.FirstNonZero(
		*storePathFlag,
		configs.Value[StorePath](loader),
		StorePath(defaultStorePath(mode)),
	)
}

func defaultStorePath(mode modes.Mode) string {
	if mode == modes.ModeDevelopment {
		return filepath.Join(os.TempDir(), "bf-dev-programs.db")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bf", "programs.db")
	}
	return ".bf-programs.db"
}

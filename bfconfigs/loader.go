package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
)

//go:embed schema.cue
var schema string

var configFileFlag = cmds.Collect[string]("-config")

var configFileNames = []string{
	"bf.cue",
	".bf.cue",
}

// searchDirs lists directories probed for config files, most specific first.
func searchDirs() (dirs []string) {
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return append(dirs, "/etc")
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				paths = append(paths, path)
			}
		}
	}
	return
}

// ConfigsLoader loads -config files before discovered ones. Development mode
// skips discovery so that local files do not leak into tests.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFileFlag...)
	if mode != modes.ModeDevelopment {
		paths = append(paths, findConfigFiles(searchDirs())...)
	}
	loader := configs.NewLoader(paths, schema)
	if len(loader.Paths()) > 0 {
		logger.Info("config files",
			"mode", mode,
			"paths", loader.Paths(),
		)
	}
	return loader
}

package nyxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/nyx/cmds"
	"github.com/reusee/nyx/configs"
	"github.com/reusee/nyx/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config")

var filenames = []string{
	"nyx.cue",
	".nyx.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// explicit files first
	paths := append([]string(nil), *configFlag...)
	paths = append(paths, discover()...)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

// discover lists existing config files, nearest first.
func discover() (paths []string) {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "nyx"), configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

package nyxconfigs

import (
	"github.com/reusee/nyx/cmds"
	"github.com/reusee/nyx/configs"
	"github.com/reusee/nyx/nyxlang"
	"github.com/reusee/nyx/vars"
)

var (
	entryFlag    = cmds.Var[string]("-entry")
	indentFlag   = cmds.Var[*int]("-indent")
	includeFlags = cmds.Collect[string]("-include")
)

type generateFlags struct {
	entry    string
	indent   *int
	includes []string
}

func (Module) GenerateOptions(
	loader configs.Loader,
) nyxlang.GenerateOptions {
	return resolveGenerateOptions(loader, generateFlags{
		entry:    *entryFlag,
		indent:   *indentFlag,
		includes: *includeFlags,
	})
}

// flags override config files, which override the defaults
func resolveGenerateOptions(loader configs.Loader, flags generateFlags) nyxlang.GenerateOptions {
	options := nyxlang.DefaultGenerateOptions()

	options.Entry = vars.FirstNonZero(
		flags.entry,
		configs.First[string](loader, "entry"),
		options.Entry,
	)

	if flags.indent != nil {
		options.Indent = *flags.indent
	} else if indent := configs.First[*int](loader, "indent"); indent != nil {
		options.Indent = vars.DerefOrZero(indent)
	}

	if len(flags.includes) > 0 {
		options.Includes = flags.includes
	} else if includes := mergeIncludes(loader); includes != nil {
		options.Includes = includes
	}

	return options
}

// mergeIncludes joins the includes of every config file in lookup order, dropping repeats.
func mergeIncludes(loader configs.Loader) []string {
	var ret []string
	seen := make(map[string]bool)
	for includes := range configs.All[[]string](loader, "includes") {
		for _, include := range includes {
			if seen[include] {
				continue
			}
			seen[include] = true
			ret = append(ret, include)
		}
	}
	return ret
}

// HeaderPath is where the companion header goes; empty means none is written.
type HeaderPath string

var headerFlag = cmds.Var[string]("-header")

func (Module) HeaderPath(
	loader configs.Loader,
) HeaderPath {
	return HeaderPath(vars.FirstNonZero(
		*headerFlag,
		configs.First[string](loader, "header"),
	))
}

package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/nyx/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap pauses at a compiler stage with an interactive starlark prompt over globals.
type Tap func(ctx context.Context, stage string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	output Output,
) Tap {
	return func(ctx context.Context, stage string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"stage", stage,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end", "stage", stage)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap " + stage,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

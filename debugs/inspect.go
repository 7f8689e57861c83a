package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/nyx/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Inspect runs a starlark script with globals predeclared, for querying compiler stages.
type Inspect func(ctx context.Context, script string, globals map[string]any) error

func (Module) Inspect(
	logger logs.Logger,
	output Output,
) Inspect {
	return func(ctx context.Context, script string, globals map[string]any) error {
		logger.DebugContext(ctx, "inspect",
			"script", script,
			"globals", slices.Sorted(maps.Keys(globals)),
		)

		predeclared := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			predeclared[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		thread.SetLocal("context", ctx)

		if _, err := starlark.ExecFileOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, script, nil, predeclared); err != nil {
			if evalErr, ok := err.(*starlark.EvalError); ok {
				return fmt.Errorf("inspect %s: %s", script, evalErr.Backtrace())
			}
			return fmt.Errorf("inspect %s: %w", script, err)
		}
		return nil
	}
}

package nyxc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nyxlang"
	"github.com/reusee/nyx/reports"
)

// REPL compiles one statement line at a time and prints the generated unit.
type REPL func(ctx context.Context) error

func (Module) REPL(
	options nyxlang.GenerateOptions,
	stdout Stdout,
	output reports.Output,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".nyx_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "nyx> ",
			HistoryFile: historyFile,
			Stdout:      stdout,
			Stderr:      output,
		})
		if err != nil {
			return fmt.Errorf("start repl: %w", err)
		}
		defer rl.Close()

		logger.InfoContext(ctx, "repl start")
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			if line == "" {
				continue
			}
			if err := evalLine(stdout, output, line, options); err != nil {
				return fmt.Errorf("write repl output: %w", err)
			}
		}
	}
}

// evalLine reports diagnostics to output; only a failed write to stdout is returned.
func evalLine(stdout io.Writer, output io.Writer, line string, options nyxlang.GenerateOptions) error {
	src := nyxlang.NewSource("<repl>", line)
	out, err := nyxlang.Compile(src, options)
	if err != nil {
		reports.Render(output, src, err)
		return nil
	}
	_, err = io.WriteString(stdout, out.C)
	return err
}

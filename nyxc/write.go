package nyxc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nyxconfigs"
	"github.com/reusee/nyx/nyxlang"
)

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// WriteOutputs writes result.Text to outPath, or stdout when outPath is empty,
// and the companion header when one is configured and C was generated.
type WriteOutputs func(result Result, outPath string) error

func (Module) WriteOutputs(
	stdout Stdout,
	headerPath nyxconfigs.HeaderPath,
	options nyxlang.GenerateOptions,
	logger logs.Logger,
) WriteOutputs {
	return func(result Result, outPath string) error {
		if outPath == "" || outPath == "-" {
			if _, err := io.WriteString(stdout, result.Text); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		} else if err := writeFile(outPath, result.Text); err != nil {
			return err
		}

		if headerPath != "" && result.Output.C != "" {
			if err := writeFile(string(headerPath), nyxlang.Header(options)); err != nil {
				return err
			}
			logger.Info("header written", "path", headerPath)
		}

		return nil
	}
}

func writeFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package nyxc

import (
	"errors"

	"github.com/reusee/nyx/nyxlang"
)

const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitFailure     = 2
)

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, nyxlang.ErrInternal) {
		return ExitFailure
	}
	var diags nyxlang.Diagnostics
	if errors.As(err, &diags) {
		return ExitDiagnostics
	}
	return ExitFailure
}

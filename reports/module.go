package reports

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Output receives rendered diagnostics.
type Output io.Writer

func (Module) Output() Output {
	return os.Stderr
}

package debugs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/nyx/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output receives script prints; stdout is left for compiler output.
type Output io.Writer

func (Module) Output() Output {
	return os.Stderr
}

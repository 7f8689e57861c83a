package sources

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/nyx/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

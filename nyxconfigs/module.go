package nyxconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/nyx/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

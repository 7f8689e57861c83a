package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nyxconfigs"
)

type Module struct {
	dscope.Module
	Configs nyxconfigs.Module
	Logs    logs.Module
}

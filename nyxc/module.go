package nyxc

import (
	"github.com/reusee/dscope"
	"github.com/reusee/nyx/debugs"
	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nyxconfigs"
	"github.com/reusee/nyx/reports"
	"github.com/reusee/nyx/sources"
)

type Module struct {
	dscope.Module
	Sources sources.Module
	Reports reports.Module
	Debugs  debugs.Module
	Configs nyxconfigs.Module
	Logs    logs.Module
}

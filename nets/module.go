package nets

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

package bfshell

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/storages"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs  bfconfigs.Module
	Logs     logs.Module
	Storages storages.Module
	Debugs   debugs.Module
}

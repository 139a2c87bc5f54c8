package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfshell"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
	Shell   bfshell.Module
	Nets    nets.Module
}

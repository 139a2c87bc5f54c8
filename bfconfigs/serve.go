package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

type ListenAddr string

var _ configs.Configurable = ListenAddr("")

func (ListenAddr) ConfigExpr() string {
	return "listen_addr"
}

var listenAddrFlag = cmds.Var[ListenAddr]("-listen")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return vars.FirstNonZero(
		*listenAddrFlag,
		configs.Value[ListenAddr](loader),
		"127.0.0.1:8421",
	)
}

// MaxConcurrent bounds simultaneous evaluations of the HTTP service.
type MaxConcurrent int

var _ configs.Configurable = MaxConcurrent(0)

func (MaxConcurrent) ConfigExpr() string {
	return "max_concurrent"
}

var maxConcurrentFlag = cmds.Var[MaxConcurrent]("-max-concurrent")

func (Module) MaxConcurrent(
	loader configs.Loader,
) MaxConcurrent {
	n := vars.FirstNonZero(
		*maxConcurrentFlag,
		configs.Value[MaxConcurrent](loader),
		8,
	)
	// the schema only covers files
	if n <= 0 {
		panic(fmt.Errorf("%s: must be positive, got %d", n.ConfigExpr(), n))
	}
	return n
}

package storages

import (
	"context"
	"sync"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// GetStore opens the program store on first use.
type GetStore func() (*Store, error)

func (Module) GetStore(
	path bfconfigs.StorePath,
	logger logs.Logger,
) GetStore {
	return sync.OnceValues(func() (*Store, error) {
		store, err := OpenStore(context.Background(), string(path))
		if err != nil {
			return nil, err
		}
		logger.Info("program store", "path", path)
		return store, nil
	})
}

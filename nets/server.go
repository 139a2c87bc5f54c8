package nets

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

type Serve func(ctx context.Context) error

func (Module) Serve(
	addr bfconfigs.ListenAddr,
	serveListener ServeListener,
) Serve {
	return func(ctx context.Context) error {
		ln, err := net.Listen("tcp", string(addr))
		if err != nil {
			return err
		}
		return serveListener(ctx, ln)
	}
}

// ServeListener serves on ln until ctx is done, then shuts down gracefully.
type ServeListener func(ctx context.Context, ln net.Listener) error

func (Module) ServeListener(
	evaluator *Evaluator,
	maxConcurrent bfconfigs.MaxConcurrent,
	logger logs.Logger,
) ServeListener {
	return func(ctx context.Context, ln net.Listener) error {
		// connections beyond this wait in the accept queue
		ln = netutil.LimitListener(ln, int(maxConcurrent)*4)

		// in-flight evaluations survive ctx and are only canceled when shutdown
		// times out
		requestCtx, cancelRequests := context.WithCancel(context.WithoutCancel(ctx))
		defer cancelRequests()

		server := &http.Server{
			Handler:           evaluator.Mux(),
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return requestCtx
			},
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("serving", "addr", ln.Addr().String())
			if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("shutting down", "addr", ln.Addr().String())
			if err := server.Shutdown(shutdownCtx); err != nil {
				cancelRequests()
				return err
			}
			return nil
		})
		return g.Wait()
	}
}

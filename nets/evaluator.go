package nets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/syncs"
)

type Health struct {
	Running  int `json:"running"`
	Capacity int `json:"capacity"`
}

// Evaluator serves program executions over HTTP.
type Evaluator struct {
	config  bfvm.Config
	sem     syncs.Semaphore
	logger  logs.Logger
	newSpan logs.NewSpan
}

func (Module) Evaluator(
	config bfvm.Config,
	maxConcurrent bfconfigs.MaxConcurrent,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Evaluator {
	config.YieldInterval = bfvm.DefaultYieldInterval
	return &Evaluator{
		config:  config,
		sem:     syncs.NewSemaphore(int(maxConcurrent)),
		logger:  logger,
		newSpan: newSpan,
	}
}

func (e *Evaluator) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /run", e)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(Health{
			Running:  e.sem.InUse(),
			Capacity: cap(e.sem),
		})
	})
	return mux
}

func (e *Evaluator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, _ := e.newSpan(r.Context(), "")
	c := codecFor(r)

	req, err := c.readRequest(r)
	if err != nil {
		e.respond(ctx, w, c, http.StatusBadRequest, RunResponse{
			Error: err.Error(),
			Kind:  "bad_request",
		})
		return
	}

	if !e.sem.TryAcquire() {
		e.logger.DebugContext(ctx, "waiting for evaluation slot",
			"running", e.sem.InUse(),
		)
		if err := e.sem.AcquireContext(ctx); err != nil {
			e.respond(ctx, w, c, http.StatusServiceUnavailable, RunResponse{
				Error: err.Error(),
				Kind:  "canceled",
			})
			return
		}
	}
	defer e.sem.Release()

	resp, status := e.run(ctx, req)
	e.respond(ctx, w, c, status, resp)
}

func (e *Evaluator) run(ctx context.Context, req RunRequest) (RunResponse, int) {
	start := time.Now()
	vm, err := bfvm.NewVM(req.Program, req.Input, e.config)
	if err != nil {
		return RunResponse{
			Error: err.Error(),
			Kind:  ErrorKind(err),
		}, http.StatusInternalServerError // server config, not the request
	}

	err = vm.RunContext(ctx)
	e.logger.InfoContext(ctx, "execute",
		"program_len", len(vm.Program),
		"steps", vm.Steps,
		"output_len", len(vm.Out),
		"duration", time.Since(start),
		"error", err,
	)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		return RunResponse{
			Steps: vm.Steps,
			Error: logs.WrapSpan(ctx, err).Error(),
			Kind:  ErrorKind(err),
		}, status
	}

	return RunResponse{
		Output: vm.Output(),
		Steps:  vm.Steps,
	}, http.StatusOK
}

func (e *Evaluator) respond(ctx context.Context, w http.ResponseWriter, c codec, status int, resp RunResponse) {
	if err := c.writeResponse(w, status, resp); err != nil {
		e.logger.WarnContext(ctx, "write response", "error", err)
	}
}

// ErrorKind classifies an execution error for clients.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, bfvm.ErrUnbalancedOpenBracket):
		return "unbalanced_open"
	case errors.Is(err, bfvm.ErrUnbalancedCloseBracket):
		return "unbalanced_close"
	case errors.Is(err, bfvm.ErrStepLimitExceeded):
		return "step_limit"
	case errors.Is(err, bfvm.ErrInvalidConfig):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "internal"
}

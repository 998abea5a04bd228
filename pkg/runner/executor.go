package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/google/uuid"
)

// DefaultStepLimit bounds every run when no other limit is configured.
const DefaultStepLimit = 1_000_000

var (
	// ErrStore is wrapped by errors from persisting a finished run.
	ErrStore = errors.New("result store failure")

	// ErrNegativeStepLimit is returned for requests asking for fewer than zero steps.
	ErrNegativeStepLimit = errors.New("step_limit must not be negative")
)

// Executor builds, runs and stores submitted definitions.
type Executor struct {
	store     ports.ResultStore
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	stepLimit int
	timeout   time.Duration
	newID     func() string
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger passed to every machine. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers hooks on every machine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Executor) {
		e.hooks = hooks
	}
}

// WithStepLimit caps every run at n steps. Values below one keep the default.
func WithStepLimit(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.stepLimit = n
		}
	}
}

// WithTimeout bounds the wall time of every run. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.timeout = d
	}
}

// WithIDGenerator replaces the uuid run id generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Executor) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// New returns an Executor saving records to store. A nil store keeps
// records in the response only.
func New(store ports.ResultStore, opts ...Option) *Executor {
	e := &Executor{
		store:     store,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		stepLimit: DefaultStepLimit,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StepLimit returns the cap applied to every run.
func (e *Executor) StepLimit() int {
	return e.stepLimit
}

// Limit returns the budget for a run asking for requested steps. Zero or
// anything above the cap yields the cap.
func (e *Executor) Limit(requested int) int {
	if requested <= 0 || requested > e.stepLimit {
		return e.stepLimit
	}
	return requested
}

// Request describes one run.
type Request struct {
	Definition *definition.Definition
	// Input replaces the definition's input when set.
	Input     *string
	StepLimit int
	Trace     bool
}

// Run builds and runs the definition. Build failures return a nil record.
// A failed save returns the record together with an error wrapping ErrStore.
func (e *Executor) Run(ctx context.Context, req Request) (*domain.RunRecord, error) {
	if req.Definition == nil {
		return nil, errors.New("definition is required")
	}
	if req.StepLimit < 0 {
		return nil, ErrNegativeStepLimit
	}

	cfg, err := req.Definition.Config()
	if err != nil {
		return nil, err
	}
	if req.Input != nil {
		cfg.LoadTape(*req.Input)
	}

	opts := []turing.Option{
		turing.WithLogger(e.logger),
		turing.WithLifecycleHooks(e.hooks),
		turing.WithStepLimit(e.Limit(req.StepLimit)),
	}
	if req.Trace {
		opts = append(opts, turing.WithTrace())
	}
	m, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	res, runErr := m.Run(runCtx)
	rec := res.Record(e.newID(), runErr)

	if e.store != nil {
		if err := e.store.Save(ctx, rec); err != nil {
			return rec, fmt.Errorf("%w: save run %s: %v", ErrStore, rec.ID, err)
		}
	}
	e.logger.Info("run finished", "run_id", rec.ID, "machine", rec.Machine, "outcome", rec.Outcome, "steps", rec.Steps)
	return rec, nil
}

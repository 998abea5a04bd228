package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/aretw0/turing/pkg/tape"
)

// Engine is the core run loop. It is read-only once created and may run
// any number of tapes, one at a time per call.
type Engine struct {
	rules     map[domain.StateID]rules.TransitionRule
	accept    domain.StateID
	reject    domain.StateID
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	stepLimit int
	trace     bool
	name      string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepLimit bounds the number of rule invocations. Zero means unbounded.
func WithStepLimit(n int) EngineOption {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// WithTrace records every state entered during the run.
func WithTrace(enabled bool) EngineOption {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// WithName labels events and log lines.
func WithName(name string) EngineOption {
	return func(e *Engine) {
		e.name = name
	}
}

// NewEngine creates an engine over a fixed rule set. The map is copied.
func NewEngine(ruleSet map[domain.StateID]rules.TransitionRule, accept, reject domain.StateID, opts ...EngineOption) *Engine {
	e := &Engine{
		rules:  make(map[domain.StateID]rules.TransitionRule, len(ruleSet)),
		accept: accept,
		reject: reject,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for id, r := range ruleSet {
		e.rules[id] = r
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.name != "" {
		e.logger = e.logger.With("machine", e.name)
	}
	return e
}

// Report is the outcome of one run.
type Report struct {
	Outcome domain.Outcome
	// State is the terminal state on halt, or the state being executed when
	// the run stopped early.
	State domain.StateID
	Steps int
	Trace []domain.StateID
}

// Run executes from the initial state until a terminal state is produced or
// the run fails. The tape is mutated in place. The returned report is never
// nil, so callers can inspect how far a failed run went.
func (e *Engine) Run(ctx context.Context, t *tape.Tape) (*Report, error) {
	started := time.Now()
	report := &Report{State: domain.InitialState}
	if e.trace {
		report.Trace = []domain.StateID{domain.InitialState}
	}

	e.emitRunStart(ctx, t)
	e.logger.Debug("run started", "input", t.String())

	current, from := domain.InitialState, domain.InitialState
	for {
		if err := ctx.Err(); err != nil {
			return e.halt(ctx, report, started, domain.OutcomeAborted, fmt.Errorf("run aborted at state %d: %w", current, err))
		}
		if e.stepLimit > 0 && report.Steps >= e.stepLimit {
			return e.halt(ctx, report, started, domain.OutcomeStepLimit, &StepLimitError{Limit: e.stepLimit, State: current})
		}

		// 1. Resolve the rule
		rule, ok := e.rules[current]
		if !ok {
			return e.halt(ctx, report, started, domain.OutcomeFailed, &UndefinedStateError{State: current, From: from})
		}

		// 2. Read and apply
		sym := t.Read()
		pos := t.Position()
		next, err := rule.Step(sym, t)
		if err != nil {
			if errors.Is(err, domain.ErrUnhandledSymbol) {
				err = &UnhandledSymbolError{State: current, Symbol: sym, Position: pos}
			} else {
				err = fmt.Errorf("rule for state %d failed: %w", current, err)
			}
			return e.halt(ctx, report, started, domain.OutcomeFailed, err)
		}
		report.Steps++
		e.emitStep(ctx, report.Steps, current, sym, next, pos)
		e.logger.Debug("step", "step", report.Steps, "state", current, "read", sym.Token(), "next", next, "position", pos)

		// 3. Advance
		from, current = current, next
		report.State = current
		if e.trace {
			report.Trace = append(report.Trace, current)
		}
		switch current {
		case e.accept:
			return e.halt(ctx, report, started, domain.OutcomeAccepted, nil)
		case e.reject:
			return e.halt(ctx, report, started, domain.OutcomeRejected, nil)
		}
	}
}

func (e *Engine) halt(ctx context.Context, report *Report, started time.Time, outcome domain.Outcome, err error) (*Report, error) {
	report.Outcome = outcome
	if err != nil {
		e.logger.Warn("run failed", "outcome", outcome, "state", report.State, "steps", report.Steps, "err", err)
	} else {
		e.logger.Info("run halted", "outcome", outcome, "state", report.State, "steps", report.Steps)
	}
	e.emitHalt(ctx, report, time.Since(started), err)
	return report, err
}

func (e *Engine) emitRunStart(ctx context.Context, t *tape.Tape) {
	if e.hooks.OnRunStart == nil {
		return
	}
	e.hooks.OnRunStart(ctx, &domain.RunEvent{
		EventBase: e.base(domain.EventRunStart),
		Input:     t.String(),
	})
}

func (e *Engine) emitStep(ctx context.Context, step int, state domain.StateID, sym domain.Symbol, next domain.StateID, pos int) {
	if e.hooks.OnStep == nil {
		return
	}
	e.hooks.OnStep(ctx, &domain.StepEvent{
		EventBase: e.base(domain.EventStep),
		Step:      step,
		State:     state,
		Read:      sym,
		Next:      next,
		Position:  pos,
	})
}

func (e *Engine) emitHalt(ctx context.Context, report *Report, d time.Duration, err error) {
	if e.hooks.OnHalt == nil {
		return
	}
	e.hooks.OnHalt(ctx, &domain.HaltEvent{
		EventBase: e.base(domain.EventHalt),
		Outcome:   report.Outcome,
		State:     report.State,
		Steps:     report.Steps,
		Duration:  d,
		Err:       err,
	})
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Machine:   e.name,
	}
}

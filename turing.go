package turing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync/atomic"
	"time"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/aretw0/turing/pkg/tape"
)

// Config collects the definition of a machine before it is built.
// It is not safe for concurrent use.
type Config struct {
	Name string

	rules     map[domain.StateID]rules.TransitionRule
	accept    *domain.StateID
	reject    *domain.StateID
	alphabet  []domain.Symbol
	tape      *tape.Tape
	tapeInput string
	tapeSyms  []string
}

// NewConfig returns an empty configuration with a blank tape.
func NewConfig() *Config {
	return &Config{
		rules: make(map[domain.StateID]rules.TransitionRule),
		tape:  tape.New(),
	}
}

// AddState registers the rule for id. Registering the same id twice is an
// error; the first registration is kept.
func (c *Config) AddState(id domain.StateID, rule rules.TransitionRule) error {
	if rule == nil {
		return fmt.Errorf("state %d: %w", id, domain.ErrNilRule)
	}
	if _, exists := c.rules[id]; exists {
		return fmt.Errorf("state %d: %w", id, domain.ErrDuplicateState)
	}
	c.rules[id] = rule
	return nil
}

// SetAccept designates the accepting terminal state.
func (c *Config) SetAccept(id domain.StateID) {
	c.accept = &id
}

// SetReject designates the rejecting terminal state.
func (c *Config) SetReject(id domain.StateID) {
	c.reject = &id
}

// SetAlphabet declares the input alphabet. When set, Build checks that every
// rule implementing rules.Exhaustive handles blank and each of these runes.
func (c *Config) SetAlphabet(alphabet ...rune) {
	c.alphabet = c.alphabet[:0]
	for _, r := range alphabet {
		c.alphabet = append(c.alphabet, domain.Sym(r))
	}
}

// Alphabet returns the declared alphabet without blank.
func (c *Config) Alphabet() []domain.Symbol {
	return append([]domain.Symbol(nil), c.alphabet...)
}

// LoadTape replaces the initial tape with one cell per character of s.
func (c *Config) LoadTape(s string) {
	c.tape = tape.FromString(s)
	c.tapeInput = s
	c.tapeSyms = nil
}

// LoadSymbols replaces the initial tape with an explicit symbol sequence.
// The sequence is kept in token form since blanks have no string form.
func (c *Config) LoadSymbols(syms ...domain.Symbol) {
	c.tape = tape.FromSymbols(syms...)
	c.tapeInput = ""
	c.tapeSyms = make([]string, len(syms))
	for i, s := range syms {
		c.tapeSyms[i] = s.Token()
	}
}

// States returns the registered state ids in ascending order.
func (c *Config) States() []domain.StateID {
	ids := make([]domain.StateID, 0, len(c.rules))
	for id := range c.rules {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Rule returns the rule registered for id.
func (c *Config) Rule(id domain.StateID) (rules.TransitionRule, bool) {
	r, ok := c.rules[id]
	return r, ok
}

// Terminals returns the accept and reject ids and whether both are set.
func (c *Config) Terminals() (accept, reject domain.StateID, ok bool) {
	if c.accept == nil || c.reject == nil {
		return 0, 0, false
	}
	return *c.accept, *c.reject, true
}

// Validate reports the first configuration defect that would make Build fail.
func (c *Config) Validate() error {
	if _, ok := c.rules[domain.InitialState]; !ok {
		return domain.ErrMissingInitialState
	}
	if c.accept == nil {
		return domain.ErrMissingAccept
	}
	if c.reject == nil {
		return domain.ErrMissingReject
	}
	if *c.accept == *c.reject {
		return fmt.Errorf("%w: accept and reject are both %d", domain.ErrTerminalConflict, *c.accept)
	}
	for _, id := range []domain.StateID{*c.accept, *c.reject} {
		if _, ok := c.rules[id]; ok {
			return fmt.Errorf("%w: terminal state %d has a transition rule", domain.ErrTerminalConflict, id)
		}
	}
	if len(c.alphabet) == 0 {
		return nil
	}
	required := append([]domain.Symbol{domain.Blank}, c.alphabet...)
	for _, id := range c.States() {
		ex, ok := c.rules[id].(rules.Exhaustive)
		if !ok {
			continue
		}
		for _, sym := range required {
			if !ex.Handles(sym) {
				return fmt.Errorf("state %d: %w: %q", id, domain.ErrUnhandledSymbol, sym.Token())
			}
		}
	}
	return nil
}

// Build validates the configuration and returns a machine that owns a
// private copy of the loaded tape. The config may be changed and built
// again afterwards without affecting machines already built.
func (c *Config) Build(opts ...Option) (*Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine configuration: %w", err)
	}

	o := &options{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(o.logger),
		runtime.WithLifecycleHooks(o.hooks),
		runtime.WithStepLimit(o.stepLimit),
		runtime.WithTrace(o.trace),
		runtime.WithName(c.Name),
	}

	return &Machine{
		name:   c.Name,
		input:  c.tapeInput,
		syms:   slices.Clone(c.tapeSyms),
		engine: runtime.NewEngine(c.rules, *c.accept, *c.reject, engineOpts...),
		tape:   c.tape.Clone(),
	}, nil
}

// Option configures how a machine runs.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	stepLimit int
	trace     bool
}

// WithLogger sets a structured logger for the run loop.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithStepLimit stops the run with domain.ErrStepLimitExceeded after n rule
// invocations. The default, zero, never stops a non-terminating machine.
func WithStepLimit(n int) Option {
	return func(o *options) {
		o.stepLimit = n
	}
}

// WithTrace records the sequence of visited states in Result.Trace.
func WithTrace() Option {
	return func(o *options) {
		o.trace = true
	}
}

// Machine is a built, read-only machine. It runs at most once.
type Machine struct {
	name   string
	input  string
	syms   []string
	engine *runtime.Engine
	tape   *tape.Tape
	used   atomic.Bool
}

// Result is the terminal outcome of a run together with the final tape.
// Input is the string given to LoadTape; InputSymbols holds the tokens
// given to LoadSymbols instead.
type Result struct {
	Machine      string
	Input        string
	InputSymbols []string
	Outcome      domain.Outcome
	FinalState   domain.StateID
	Steps        int
	Tape         *tape.Tape
	Trace        []domain.StateID
}

// Accepted reports whether the run ended in the accept state.
func (r *Result) Accepted() bool {
	return r.Outcome == domain.OutcomeAccepted
}

// Run drives the machine until a terminal state is produced or the run
// fails. The returned Result is non-nil whenever the run started, including
// when an error is returned. A second call returns domain.ErrAlreadyRun.
func (m *Machine) Run(ctx context.Context) (*Result, error) {
	if !m.used.CompareAndSwap(false, true) {
		return nil, domain.ErrAlreadyRun
	}

	report, err := m.engine.Run(ctx, m.tape)
	return &Result{
		Machine:      m.name,
		Input:        m.input,
		InputSymbols: m.syms,
		Outcome:      report.Outcome,
		FinalState:   report.State,
		Steps:        report.Steps,
		Tape:         m.tape,
		Trace:        report.Trace,
	}, err
}

// Tape exposes the machine's tape for diagnostics. It must not be mutated
// while Run is in progress.
func (m *Machine) Tape() *tape.Tape {
	return m.tape
}

// Record summarizes the result for storage. runErr is the error returned by
// Run alongside the result, if any.
func (r *Result) Record(id string, runErr error) *domain.RunRecord {
	rec := &domain.RunRecord{
		ID:           id,
		Machine:      r.Machine,
		Input:        r.Input,
		InputSymbols: r.InputSymbols,
		Outcome:      r.Outcome,
		FinalState:   r.FinalState,
		Steps:        r.Steps,
		Tape:         r.Tape.String(),
		Position:     r.Tape.Position(),
		Trace:        r.Trace,
		CreatedAt:    time.Now().UTC(),
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	return rec
}

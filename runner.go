package turing

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/turing/pkg/tape"
)

// Runner feeds several inputs, one after another, to the same configuration
// and reports each outcome on Output. It is the programmatic counterpart of
// running one machine definition over a batch of tapes.
type Runner struct {
	Output   io.Writer
	Renderer TapeRenderer
	Options  []Option
}

// TapeRenderer turns a final tape into a printable line.
// This allows colored terminal output without coupling the core package.
type TapeRenderer func(*tape.Tape) string

// NewRunner creates a Runner writing to w.
func NewRunner(w io.Writer, opts ...Option) *Runner {
	return &Runner{
		Output:  w,
		Options: opts,
	}
}

// Run loads each input into cfg, builds a fresh machine and runs it.
// Configuration errors stop the batch; run errors are reported and the
// batch continues. The returned error joins every run error.
func (r *Runner) Run(ctx context.Context, cfg *Config, inputs ...string) ([]*Result, error) {
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	results := make([]*Result, 0, len(inputs))
	var runErrs []error
	for _, input := range inputs {
		cfg.LoadTape(input)
		m, err := cfg.Build(r.Options...)
		if err != nil {
			return results, err
		}

		res, err := m.Run(ctx)
		results = append(results, res)
		if err != nil {
			runErrs = append(runErrs, fmt.Errorf("input %q: %w", input, err))
			fmt.Fprintf(r.Output, "%q: %s (%v)\n", input, res.Outcome, err)
			continue
		}

		rendered := res.Tape.String()
		if r.Renderer != nil {
			rendered = r.Renderer(res.Tape)
		}
		fmt.Fprintf(r.Output, "%q: %s after %d steps [%s]\n", input, res.Outcome, res.Steps, rendered)
	}
	return results, errors.Join(runErrs...)
}

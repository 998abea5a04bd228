package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/definition"
)

// Process exit codes of the run command.
const (
	ExitAccepted = 0
	ExitError    = 1
	ExitRejected = 2
)

// RunOptions configures RunMachine.
type RunOptions struct {
	Path string
	// Inputs are run one after another. Empty means the definition's input.
	Inputs    []string
	StepLimit int
	Trace     bool
	// Pretty renders a markdown report per run instead of one line.
	Pretty bool
	Logger *slog.Logger
	Out    io.Writer
}

// RunMachine loads the definition at opts.Path and runs every input. The
// exit code is ExitError when any run failed, ExitRejected when any run was
// rejected and ExitAccepted otherwise.
func RunMachine(ctx context.Context, opts RunOptions) (int, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	def, err := definition.Load(opts.Path)
	if err != nil {
		return ExitError, err
	}
	cfg, err := def.Config()
	if err != nil {
		return ExitError, err
	}

	inputs := opts.Inputs
	if len(inputs) == 0 {
		inputs = []string{def.Input}
	}

	engineOpts := []turing.Option{
		turing.WithLogger(opts.Logger),
		turing.WithStepLimit(opts.StepLimit),
	}
	if opts.Trace || opts.Pretty {
		engineOpts = append(engineOpts, turing.WithTrace())
	}

	var results []*turing.Result
	if opts.Pretty {
		results, err = runPretty(ctx, cfg, inputs, engineOpts, opts.Out)
	} else {
		runner := turing.NewRunner(opts.Out, engineOpts...)
		runner.Renderer = tui.TapeRendererFor(opts.Out)
		results, err = runner.Run(ctx, cfg, inputs...)
		if err == nil && opts.Trace {
			for _, res := range results {
				fmt.Fprintf(opts.Out, "%q trace: %v\n", res.Input, res.Trace)
			}
		}
	}
	if err != nil {
		return ExitError, err
	}

	for _, res := range results {
		if !res.Accepted() {
			return ExitRejected, nil
		}
	}
	return ExitAccepted, nil
}

func runPretty(ctx context.Context, cfg *turing.Config, inputs []string, engineOpts []turing.Option, out io.Writer) ([]*turing.Result, error) {
	render, err := tui.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var results []*turing.Result
	var runErrs []error
	for _, input := range inputs {
		cfg.LoadTape(input)
		m, err := cfg.Build(engineOpts...)
		if err != nil {
			return results, err
		}
		res, runErr := m.Run(ctx)
		results = append(results, res)
		if runErr != nil {
			runErrs = append(runErrs, fmt.Errorf("input %q: %w", input, runErr))
		}

		text, err := render(tui.ReportMarkdown(res, runErr))
		if err != nil {
			return results, fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(out, text)
	}
	return results, errors.Join(runErrs...)
}

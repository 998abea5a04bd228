package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/definition"
)

// GraphOptions configures PrintGraph.
type GraphOptions struct {
	Path string
	// Input, when set, runs the machine once and highlights the states it
	// visited and the state it stopped in.
	Input *string
	Out   io.Writer
}

// PrintGraph writes the Mermaid flowchart of a definition.
func PrintGraph(ctx context.Context, opts GraphOptions) error {
	def, err := definition.Load(opts.Path)
	if err != nil {
		return err
	}
	tables, err := def.Tables()
	if err != nil {
		return err
	}
	accept, reject := def.Terminals()

	var overlay *graph.GraphOverlay
	if opts.Input != nil {
		cfg, err := def.Config()
		if err != nil {
			return err
		}
		cfg.LoadTape(*opts.Input)
		m, err := cfg.Build(turing.WithTrace())
		if err != nil {
			return err
		}
		// A failed run still has a trace worth drawing.
		res, _ := m.Run(ctx)
		overlay = &graph.GraphOverlay{
			VisitedStates: res.Trace,
			CurrentState:  &res.FinalState,
		}
	}

	_, err = fmt.Fprint(opts.Out, graph.GenerateMermaid(tables, accept, reject, overlay))
	return err
}

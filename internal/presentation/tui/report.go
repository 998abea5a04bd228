package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

// ReportMarkdown describes a finished run as markdown. runErr is the error
// returned alongside res, if any.
func ReportMarkdown(res *turing.Result, runErr error) string {
	var sb strings.Builder

	name := res.Machine
	if name == "" {
		name = "machine"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)
	sb.WriteString("| Field | Value |\n|---|---|\n")
	if len(res.InputSymbols) > 0 {
		fmt.Fprintf(&sb, "| Input | `%s` |\n", strings.Join(res.InputSymbols, " "))
	} else {
		fmt.Fprintf(&sb, "| Input | `%s` |\n", res.Input)
	}
	fmt.Fprintf(&sb, "| Outcome | **%s** |\n", res.Outcome)
	fmt.Fprintf(&sb, "| Final state | %d |\n", res.FinalState)
	fmt.Fprintf(&sb, "| Steps | %d |\n", res.Steps)
	if runErr != nil {
		fmt.Fprintf(&sb, "| Error | %s |\n", strings.ReplaceAll(runErr.Error(), "|", "\\|"))
	}

	sb.WriteString("\n## Tape\n\n```\n")
	sb.WriteString(RenderTape(res.Tape, termenv.Ascii))
	sb.WriteString("\n```\n")

	if len(res.Trace) > 0 {
		sb.WriteString("\n## Trace\n\n")
		sb.WriteString(formatTrace(res.Trace))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatTrace(trace []domain.StateID) string {
	parts := make([]string, len(trace))
	for i, id := range trace {
		parts[i] = fmt.Sprintf("q%d", id)
	}
	return strings.Join(parts, " → ")
}

package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.StateID
	CurrentState  *domain.StateID
}

// GenerateMermaid produces a Mermaid flowchart of a table machine.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accept: (((Double circle)))
// - Reject: {{Hexagon}}
// - Default: [Rectangle]
// Edges between the same pair of states are merged into one label of the
// form read/write,move.
func GenerateMermaid(tables map[domain.StateID]rules.Table, accept, reject domain.StateID, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make([]domain.StateID, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		opener, closer := "[", "]"
		if id == domain.InitialState {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"q%d\"%s\n", nodeID(id), opener, id, closer)
	}
	fmt.Fprintf(&sb, "    %s(((\"accept\")))\n", nodeID(accept))
	fmt.Fprintf(&sb, "    %s{{\"reject\"}}\n", nodeID(reject))

	for _, id := range ids {
		table := tables[id]
		labels := make(map[domain.StateID][]string)
		for _, sym := range table.Symbols() {
			act := table[sym]
			labels[act.Next] = append(labels[act.Next], edgeLabel(sym, act))
		}
		for _, next := range table.Targets() {
			label := strings.ReplaceAll(strings.Join(labels[next], "<br/>"), "\"", "'")
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(id), label, nodeID(next))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.StateID]bool)
		for _, id := range overlay.VisitedStates {
			if !seen[id] {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(id))
			}
		}
		if overlay.CurrentState != nil {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(*overlay.CurrentState))
		}
	}

	return sb.String()
}

func nodeID(id domain.StateID) string {
	return fmt.Sprintf("q%d", id)
}

func edgeLabel(read domain.Symbol, act domain.Action) string {
	label := read.String()
	if act.Write != nil {
		label += "/" + act.Write.String()
	}
	switch act.Move {
	case domain.Left:
		label += ",L"
	case domain.Right:
		label += ",R"
	}
	return label
}

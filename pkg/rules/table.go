package rules

import (
	"sort"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

// Table is a rule expressed as data: one Action per handled symbol.
type Table map[domain.Symbol]domain.Action

// Step writes, moves and returns the Next of the matching action.
func (tb Table) Step(sym domain.Symbol, t *tape.Tape) (domain.StateID, error) {
	act, ok := tb[sym]
	if !ok {
		return 0, Unhandled(sym)
	}
	if act.Write != nil {
		t.Write(*act.Write)
	}
	t.Move(act.Move)
	return act.Next, nil
}

// Handles implements Exhaustive.
func (tb Table) Handles(sym domain.Symbol) bool {
	_, ok := tb[sym]
	return ok
}

// Symbols returns the handled symbols, blank first, then by rune.
func (tb Table) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, 0, len(tb))
	for s := range tb {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, wi := out[i].Rune()
		rj, wj := out[j].Rune()
		if wi != wj {
			return !wi
		}
		return ri < rj
	})
	return out
}

// Targets returns the distinct Next states of the table in ascending order.
func (tb Table) Targets() []domain.StateID {
	seen := make(map[domain.StateID]bool, len(tb))
	out := make([]domain.StateID, 0, len(tb))
	for _, act := range tb {
		if !seen[act.Next] {
			seen[act.Next] = true
			out = append(out, act.Next)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

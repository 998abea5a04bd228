package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/aretw0/turing/pkg/tape"
)

// Severity separates defects that break runs from findings worth a look.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding about a machine.
type Issue struct {
	Severity Severity       `json:"severity"`
	State    domain.StateID `json:"state"`
	Message  string         `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: state %d: %s", i.Severity, i.State, i.Message)
}

// Report is the list of findings. It is an error only when it holds errors.
type Report []Issue

// Err returns nil when the report has no error-level issues.
func (r Report) Err() error {
	var lines []string
	for _, i := range r {
		if i.Severity == SeverityError {
			lines = append(lines, i.String())
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors:\n- %s", len(lines), strings.Join(lines, "\n- "))
}

// ValidateDefinition crawls the tables from state 0 and reports dangling
// targets, unreachable states and terminals that can never be produced.
func ValidateDefinition(def *definition.Definition) (Report, error) {
	tables, err := def.Tables()
	if err != nil {
		return nil, err
	}
	accept, reject := def.Terminals()

	var report Report
	if _, ok := tables[domain.InitialState]; !ok {
		report = append(report, Issue{SeverityError, domain.InitialState, "initial state is not defined"})
	}

	visited := make(map[domain.StateID]bool)
	reachedTerminal := make(map[domain.StateID]bool)
	queue := []domain.StateID{domain.InitialState}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		table, ok := tables[current]
		if !ok {
			continue
		}
		for _, next := range table.Targets() {
			switch {
			case next == accept || next == reject:
				reachedTerminal[next] = true
			case !defined(tables, next):
				report = append(report, Issue{SeverityError, current, fmt.Sprintf("transitions to undefined state %d", next)})
			case !visited[next]:
				queue = append(queue, next)
			}
		}
	}

	for _, id := range def.StateIDs() {
		if id == accept || id == reject {
			report = append(report, Issue{SeverityError, id, "terminal state must not define transitions"})
			continue
		}
		if !visited[id] {
			report = append(report, Issue{SeverityWarning, id, "unreachable from state 0"})
		}
	}
	if !reachedTerminal[accept] {
		report = append(report, Issue{SeverityWarning, accept, "accept state is never reached"})
	}
	if !reachedTerminal[reject] {
		report = append(report, Issue{SeverityWarning, reject, "reject state is never reached"})
	}

	runes, err := def.Runes()
	if err != nil {
		return nil, err
	}
	if len(runes) > 0 {
		ruleSet := make(map[domain.StateID]rules.TransitionRule, len(tables))
		for id, tb := range tables {
			ruleSet[id] = tb
		}
		report = append(report, CheckTotality(ruleSet, runes, accept, reject)...)
	}

	sortReport(report)
	return report, nil
}

// CheckTotality invokes every rule with blank and each alphabet symbol on a
// scratch tape. Each rule must return without error and name a registered
// or terminal state. Rules of any kind can be checked, not only tables.
func CheckTotality(ruleSet map[domain.StateID]rules.TransitionRule, alphabet []rune, accept, reject domain.StateID) Report {
	symbols := []domain.Symbol{domain.Blank}
	for _, r := range alphabet {
		symbols = append(symbols, domain.Sym(r))
	}

	var report Report
	for id, rule := range ruleSet {
		for _, sym := range symbols {
			scratch := tape.FromSymbols(sym)
			next, err := rule.Step(sym, scratch)
			switch {
			case errors.Is(err, domain.ErrUnhandledSymbol):
				report = append(report, Issue{SeverityError, id, fmt.Sprintf("does not handle %q", sym.Token())})
			case err != nil:
				report = append(report, Issue{SeverityError, id, fmt.Sprintf("fails on %q: %v", sym.Token(), err)})
			case next != accept && next != reject && ruleSet[next] == nil:
				report = append(report, Issue{SeverityError, id, fmt.Sprintf("on %q transitions to undefined state %d", sym.Token(), next)})
			}
		}
	}
	sortReport(report)
	return report
}

func defined(tables map[domain.StateID]rules.Table, id domain.StateID) bool {
	_, ok := tables[id]
	return ok
}

func sortReport(r Report) {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].State != r[j].State {
			return r[i].State < r[j].State
		}
		return r[i].Message < r[j].Message
	})
}

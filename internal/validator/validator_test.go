package validator_test

import (
	"testing"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) *definition.Definition {
	t.Helper()
	def, err := definition.Parse([]byte(doc))
	require.NoError(t, err)
	return def
}

func TestValidateDefinition_Valid(t *testing.T) {
	def := parse(t, `
accept: 3
reject: 4
alphabet: [a]
states:
  - id: 0
    transitions: [{read: a, move: right, next: 1}, {read: blank, next: 3}]
  - id: 1
    transitions: [{read: a, move: right, next: 2}, {read: blank, next: 4}]
  - id: 2
    transitions: [{read: a, move: right, next: 0}, {read: blank, next: 4}]
`)

	report, err := validator.ValidateDefinition(def)
	require.NoError(t, err)

	assert.Empty(t, report)
	assert.NoError(t, report.Err())
}

func TestValidateDefinition_BrokenLinks(t *testing.T) {
	def := parse(t, `
accept: 1
reject: 2
states:
  - id: 0
    transitions: [{read: blank, next: 9}, {read: a, next: 5}]
  - id: 5
    transitions: [{read: a, next: 5}]
  - id: 6
    transitions: [{read: a, next: 1}]
`)

	report, err := validator.ValidateDefinition(def)
	require.NoError(t, err)

	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityError, State: 0, Message: "transitions to undefined state 9"})
	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityWarning, State: 6, Message: "unreachable from state 0"})
	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityWarning, State: 1, Message: "accept state is never reached"})
	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityWarning, State: 2, Message: "reject state is never reached"})
	assert.ErrorContains(t, report.Err(), "found 1 errors")
}

func TestValidateDefinition_TotalityAndTerminals(t *testing.T) {
	def := parse(t, `
accept: 1
reject: 2
alphabet: [a, b]
states:
  - id: 0
    transitions: [{read: a, next: 1}, {read: blank, next: 2}]
  - id: 1
    transitions: [{read: blank, next: 0}]
`)

	report, err := validator.ValidateDefinition(def)
	require.NoError(t, err)

	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityError, State: 0, Message: `does not handle "b"`})
	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityError, State: 1, Message: "terminal state must not define transitions"})
	assert.Error(t, report.Err())
}

func TestValidateDefinition_MissingInitial(t *testing.T) {
	def := parse(t, `
accept: 1
reject: 2
states:
  - id: 3
    transitions: [{read: blank, next: 1}]
`)

	report, err := validator.ValidateDefinition(def)
	require.NoError(t, err)

	assert.Contains(t, report, validator.Issue{Severity: validator.SeverityError, State: 0, Message: "initial state is not defined"})
}

// Every registered rule, invoked with every symbol, must name a known state.
func TestCheckTotality_AnyRule(t *testing.T) {
	a := domain.Sym('a')
	ruleSet := map[domain.StateID]rules.TransitionRule{
		0: rules.Table{a: {Move: domain.Right, Next: 1}, domain.Blank: {Next: 3}},
		1: rules.RuleFunc(func(sym domain.Symbol, tp *tape.Tape) (domain.StateID, error) {
			if sym.IsBlank() {
				return 4, nil
			}
			tp.MoveRight()
			return 2, nil
		}),
		2: rules.RuleFunc(func(sym domain.Symbol, _ *tape.Tape) (domain.StateID, error) {
			if sym.IsBlank() {
				return 4, nil
			}
			return 0, rules.Unhandled(sym)
		}),
	}

	report := validator.CheckTotality(ruleSet, []rune{'a'}, 3, 4)

	assert.Equal(t, validator.Report{
		{Severity: validator.SeverityError, State: 2, Message: `does not handle "a"`},
	}, report)
}

func TestCheckTotality_DanglingTarget(t *testing.T) {
	ruleSet := map[domain.StateID]rules.TransitionRule{
		0: rules.Table{domain.Blank: {Next: 8}},
	}

	report := validator.CheckTotality(ruleSet, nil, 1, 2)

	require.Len(t, report, 1)
	assert.Equal(t, `on "blank" transitions to undefined state 8`, report[0].Message)
}

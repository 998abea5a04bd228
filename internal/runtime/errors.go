package runtime

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// UndefinedStateError is returned when the run reaches a state with no rule.
type UndefinedStateError struct {
	State domain.StateID
	// From is the state whose rule produced State. Equal to State when the
	// initial state itself is missing.
	From domain.StateID
}

func (e *UndefinedStateError) Error() string {
	if e.State == e.From {
		return fmt.Sprintf("state %d has no transition rule", e.State)
	}
	return fmt.Sprintf("state %d (reached from state %d) has no transition rule", e.State, e.From)
}

func (e *UndefinedStateError) Unwrap() error {
	return domain.ErrUndefinedState
}

// UnhandledSymbolError is returned when a rule has no branch for the symbol read.
type UnhandledSymbolError struct {
	State    domain.StateID
	Symbol   domain.Symbol
	Position int
}

func (e *UnhandledSymbolError) Error() string {
	return fmt.Sprintf("state %d does not handle symbol %q at position %d", e.State, e.Symbol.Token(), e.Position)
}

func (e *UnhandledSymbolError) Unwrap() error {
	return domain.ErrUnhandledSymbol
}

// StepLimitError is returned when the configured step budget is exhausted
// before a terminal state is reached.
type StepLimitError struct {
	Limit int
	State domain.StateID
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("no terminal state after %d steps (current state %d)", e.Limit, e.State)
}

func (e *StepLimitError) Unwrap() error {
	return domain.ErrStepLimitExceeded
}

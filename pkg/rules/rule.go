package rules

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

// TransitionRule decides the next state from the symbol under the head.
// It may write and move before returning, but must not keep the tape
// after the call. Step must be deterministic and total over the alphabet
// including blank; symbols it does not handle are reported with Unhandled.
type TransitionRule interface {
	Step(sym domain.Symbol, t *tape.Tape) (domain.StateID, error)
}

// Exhaustive is implemented by rules that can tell, without running,
// which symbols they handle.
type Exhaustive interface {
	Handles(sym domain.Symbol) bool
}

// RuleFunc adapts an ordinary function to TransitionRule.
type RuleFunc func(sym domain.Symbol, t *tape.Tape) (domain.StateID, error)

// Step calls f.
func (f RuleFunc) Step(sym domain.Symbol, t *tape.Tape) (domain.StateID, error) {
	return f(sym, t)
}

// Unhandled reports that a rule has no branch for sym.
func Unhandled(sym domain.Symbol) error {
	return fmt.Errorf("%w: %q", domain.ErrUnhandledSymbol, sym.Token())
}

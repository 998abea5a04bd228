package dsl

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
)

type target int

const (
	targetNone target = iota
	targetState
	targetAccept
	targetReject
)

type transition struct {
	action domain.Action
	target target
}

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	id      domain.StateID
	builder *Builder
	table   map[domain.Symbol]*transition
}

// On starts the transition taken when the head reads r.
func (s *StateBuilder) On(r rune) *TransitionBuilder {
	return s.on(domain.Sym(r))
}

// OnBlank starts the transition taken on an empty cell.
func (s *StateBuilder) OnBlank() *TransitionBuilder {
	return s.on(domain.Blank)
}

func (s *StateBuilder) on(sym domain.Symbol) *TransitionBuilder {
	if _, dup := s.table[sym]; dup {
		s.builder.fail("state %d: symbol %q defined twice", s.id, sym.Token())
	}
	tr := &transition{}
	s.table[sym] = tr
	return &TransitionBuilder{state: s, tr: tr}
}

func (s *StateBuilder) compile() (rules.Table, error) {
	table := make(rules.Table, len(s.table))
	for sym, tr := range s.table {
		act := tr.action
		switch tr.target {
		case targetState:
		case targetAccept:
			if s.builder.accept == nil {
				return nil, fmt.Errorf("state %d: %q goes to accept but no accept state is set", s.id, sym.Token())
			}
			act.Next = *s.builder.accept
		case targetReject:
			if s.builder.reject == nil {
				return nil, fmt.Errorf("state %d: %q goes to reject but no reject state is set", s.id, sym.Token())
			}
			act.Next = *s.builder.reject
		default:
			return nil, fmt.Errorf("state %d: transition on %q has no target", s.id, sym.Token())
		}
		table[sym] = act
	}
	return table, nil
}

// TransitionBuilder configures the action for one symbol. It is finished by
// one of the Go methods, which return the owning state.
type TransitionBuilder struct {
	state *StateBuilder
	tr    *transition
}

// Write replaces the symbol under the head with r.
func (t *TransitionBuilder) Write(r rune) *TransitionBuilder {
	t.tr.action.Write = domain.Writes(domain.Sym(r))
	return t
}

// Erase writes a blank.
func (t *TransitionBuilder) Erase() *TransitionBuilder {
	t.tr.action.Write = domain.Writes(domain.Blank)
	return t
}

// Left moves the head left after writing.
func (t *TransitionBuilder) Left() *TransitionBuilder {
	t.tr.action.Move = domain.Left
	return t
}

// Right moves the head right after writing.
func (t *TransitionBuilder) Right() *TransitionBuilder {
	t.tr.action.Move = domain.Right
	return t
}

// Go continues in state next.
func (t *TransitionBuilder) Go(next domain.StateID) *StateBuilder {
	t.tr.action.Next = next
	t.tr.target = targetState
	return t.state
}

// GoAccept halts in the builder's accept state.
func (t *TransitionBuilder) GoAccept() *StateBuilder {
	t.tr.target = targetAccept
	return t.state
}

// GoReject halts in the builder's reject state.
func (t *TransitionBuilder) GoReject() *StateBuilder {
	t.tr.target = targetReject
	return t.state
}

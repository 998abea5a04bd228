package dsl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
)

// Builder manages the machine construction.
type Builder struct {
	name     string
	states   map[domain.StateID]*StateBuilder
	accept   *domain.StateID
	reject   *domain.StateID
	alphabet []rune
	input    *string
	errs     []error
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[domain.StateID]*StateBuilder),
	}
}

// State returns the builder for id, creating it on first use.
func (b *Builder) State(id domain.StateID) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		id:      id,
		builder: b,
		table:   make(map[domain.Symbol]*transition),
	}
	b.states[id] = sb
	return sb
}

// Accept designates the accepting terminal state.
func (b *Builder) Accept(id domain.StateID) *Builder {
	b.accept = &id
	return b
}

// Reject designates the rejecting terminal state.
func (b *Builder) Reject(id domain.StateID) *Builder {
	b.reject = &id
	return b
}

// Alphabet declares the input alphabet, enabling totality checks at Build.
func (b *Builder) Alphabet(runes ...rune) *Builder {
	b.alphabet = append(b.alphabet, runes...)
	return b
}

// Input sets the initial tape.
func (b *Builder) Input(s string) *Builder {
	b.input = &s
	return b
}

// Build compiles the states into a turing.Config.
func (b *Builder) Build() (*turing.Config, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	cfg := turing.NewConfig()
	cfg.Name = b.name
	if b.accept != nil {
		cfg.SetAccept(*b.accept)
	}
	if b.reject != nil {
		cfg.SetReject(*b.reject)
	}
	if len(b.alphabet) > 0 {
		cfg.SetAlphabet(b.alphabet...)
	}
	if b.input != nil {
		cfg.LoadTape(*b.input)
	}

	ids := make([]domain.StateID, 0, len(b.states))
	for id := range b.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		table, err := b.states[id].compile()
		if err != nil {
			return nil, err
		}
		if err := cfg.AddState(id, table); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (b *Builder) fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}

// Tables returns the compiled tables without building a Config.
// States whose transitions are incomplete are skipped.
func (b *Builder) Tables() map[domain.StateID]rules.Table {
	out := make(map[domain.StateID]rules.Table, len(b.states))
	for id, sb := range b.states {
		if table, err := sb.compile(); err == nil {
			out[id] = table
		}
	}
	return out
}

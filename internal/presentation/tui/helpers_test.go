package tui_test

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
)

// turingTable skips every written symbol and accepts on the first blank.
func turingTable() rules.Table {
	return rules.Table{
		domain.Sym('a'): {Move: domain.Right, Next: 0},
		domain.Sym('b'): {Move: domain.Right, Next: 0},
		domain.Blank:    {Next: 1},
	}
}

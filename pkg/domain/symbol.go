package domain

import (
	"fmt"
	"unicode/utf8"
)

// BlankToken is the textual name of the blank symbol in definitions and APIs.
const BlankToken = "blank"

// Symbol is the content of a single tape cell.
// The zero value is Blank, which is distinct from every rune.
type Symbol struct {
	r       rune
	written bool
}

// Blank represents a cell where no symbol has been written.
var Blank = Symbol{}

// Sym returns the written symbol for r.
func Sym(r rune) Symbol {
	return Symbol{r: r, written: true}
}

// Symbols converts each rune of s into a written symbol.
func Symbols(s string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, Sym(r))
	}
	return out
}

// ParseSymbol accepts a single character or BlankToken.
func ParseSymbol(s string) (Symbol, error) {
	if s == BlankToken {
		return Blank, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return Blank, fmt.Errorf("invalid symbol %q: expected a single character or %q", s, BlankToken)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Sym(r), nil
}

// IsBlank reports whether no symbol is written.
func (s Symbol) IsBlank() bool {
	return !s.written
}

// Rune returns the written rune, or false for Blank.
func (s Symbol) Rune() (rune, bool) {
	return s.r, s.written
}

// Token is the inverse of ParseSymbol.
func (s Symbol) Token() string {
	if !s.written {
		return BlankToken
	}
	return string(s.r)
}

// String renders Blank as "_". Display only: it is ambiguous with a written '_'.
func (s Symbol) String() string {
	if !s.written {
		return "_"
	}
	return string(s.r)
}

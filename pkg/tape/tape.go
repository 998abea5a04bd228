package tape

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is an ordered, growable sequence of symbols with a read/write head.
// The zero value is not usable; use New, FromString or FromSymbols.
type Tape struct {
	cells  []domain.Symbol
	head   int // index into cells, always valid
	origin int // index of position 0 in cells
}

// New returns a tape holding a single blank cell under the head.
func New() *Tape {
	return &Tape{cells: []domain.Symbol{domain.Blank}}
}

// FromString writes each character of s starting at the head, moving right
// after each write, then returns the head to the first character.
func FromString(s string) *Tape {
	return FromSymbols(domain.Symbols(s)...)
}

// FromSymbols loads an explicit symbol sequence the same way FromString does.
func FromSymbols(syms ...domain.Symbol) *Tape {
	t := New()
	for _, s := range syms {
		t.Write(s)
		t.MoveRight()
	}
	t.head = t.origin
	return t
}

// Read returns the symbol under the head.
func (t *Tape) Read() domain.Symbol {
	return t.cells[t.head]
}

// Write replaces the symbol under the head.
func (t *Tape) Write(s domain.Symbol) {
	t.cells[t.head] = s
}

// MoveLeft shifts the head one cell to the left, growing the tape if needed.
func (t *Tape) MoveLeft() {
	if t.head == 0 {
		t.cells = append([]domain.Symbol{domain.Blank}, t.cells...)
		t.origin++
		return
	}
	t.head--
}

// MoveRight shifts the head one cell to the right, growing the tape if needed.
func (t *Tape) MoveRight() {
	t.head++
	if t.head == len(t.cells) {
		t.cells = append(t.cells, domain.Blank)
	}
}

// Move applies d. Stay leaves the head in place.
func (t *Tape) Move(d domain.Direction) {
	switch d {
	case domain.Left:
		t.MoveLeft()
	case domain.Right:
		t.MoveRight()
	}
}

// Position is the signed offset of the head from the origin.
func (t *Tape) Position() int {
	return t.head - t.origin
}

// Bounds returns the positions of the leftmost and rightmost materialized cells.
func (t *Tape) Bounds() (lo, hi int) {
	return -t.origin, len(t.cells) - 1 - t.origin
}

// Head returns the index of the head within Cells.
func (t *Tape) Head() int {
	return t.head
}

// Cells returns a copy of every materialized cell, leftmost first.
func (t *Tape) Cells() []domain.Symbol {
	out := make([]domain.Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// At returns the symbol at position p, or Blank outside the materialized range.
func (t *Tape) At(p int) domain.Symbol {
	i := p + t.origin
	if i < 0 || i >= len(t.cells) {
		return domain.Blank
	}
	return t.cells[i]
}

// Clone returns an independent copy, head included.
func (t *Tape) Clone() *Tape {
	return &Tape{
		cells:  t.Cells(),
		head:   t.head,
		origin: t.origin,
	}
}

// Equal reports whether both tapes hold the same symbols at the same
// positions and have the head at the same position. Materialized blanks do
// not count.
func (t *Tape) Equal(o *Tape) bool {
	if t.Position() != o.Position() {
		return false
	}
	lo, hi := t.Bounds()
	olo, ohi := o.Bounds()
	lo, hi = min(lo, olo), max(hi, ohi)
	for p := lo; p <= hi; p++ {
		if t.At(p) != o.At(p) {
			return false
		}
	}
	return true
}

// String returns the content between the outermost written cells, with
// interior blanks rendered as "_". An all-blank tape yields "".
func (t *Tape) String() string {
	first, last := -1, -1
	for i, s := range t.cells {
		if !s.IsBlank() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return ""
	}
	var sb strings.Builder
	for _, s := range t.cells[first : last+1] {
		sb.WriteString(s.String())
	}
	return sb.String()
}

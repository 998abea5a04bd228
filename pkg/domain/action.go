package domain

import "fmt"

// Direction is a head movement applied after a write.
type Direction int

const (
	Stay Direction = iota
	Left
	Right
)

// ParseDirection accepts "left", "right", "stay" or the empty string (stay).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "stay", "none":
		return Stay, nil
	case "left", "L", "l":
		return Left, nil
	case "right", "R", "r":
		return Right, nil
	}
	return Stay, fmt.Errorf("invalid move %q: expected left, right or stay", s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "stay"
	}
}

// Action is one entry of a lookup-table rule: optionally write, then move,
// then continue in Next.
type Action struct {
	// Write is nil when the cell is left untouched.
	Write *Symbol
	Move  Direction
	Next  StateID
}

// Writes returns a pointer suitable for Action.Write.
func Writes(s Symbol) *Symbol {
	return &s
}

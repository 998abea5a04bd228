package tui

import (
	"io"
	"os"
	"strings"

	"github.com/aretw0/turing/pkg/tape"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ProfileFor picks the color profile for w. Anything that is not a terminal
// gets termenv.Ascii.
func ProfileFor(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// RenderTape prints every materialized cell, blanks as "_".
// The head cell is shown in reverse video, or between brackets when the
// profile has no styling.
func RenderTape(t *tape.Tape, p termenv.Profile) string {
	var sb strings.Builder
	head := t.Head()
	for i, s := range t.Cells() {
		cell := s.String()
		if i != head {
			sb.WriteString(cell)
			continue
		}
		if p == termenv.Ascii {
			sb.WriteString("[" + cell + "]")
			continue
		}
		sb.WriteString(p.String(cell).Reverse().Bold().String())
	}
	return sb.String()
}

// TapeRendererFor binds RenderTape to the profile of w.
func TapeRendererFor(w io.Writer) func(*tape.Tape) string {
	p := ProfileFor(w)
	return func(t *tape.Tape) string {
		return RenderTape(t, p)
	}
}

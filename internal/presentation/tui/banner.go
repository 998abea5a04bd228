package tui

import (
	"fmt"
	"io"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _             _             ", "#818cf8"},
	{" | |_ _   _ _ _(_)_ __   __ _ ", "#a78bfa"},
	{" | __| | | | '__| | '_ \\ / _` |", "#c084fc"},
	{" | |_| |_| | |  | | | | | (_| |", "#e879f9"},
	{"  \\__|\\__,_|_|  |_|_| |_|\\__, |", "#f472b6"},
	{"                         |___/ ", "#fb7185"},
}

// PrintBanner writes the ASCII banner, colored when w is a terminal.
func PrintBanner(w io.Writer) {
	p := ProfileFor(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

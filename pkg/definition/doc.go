/*
Package definition reads machine definitions written in YAML (or JSON).

A definition names the terminal states, an optional alphabet and default
input, and one lookup table per state:

	name: length-mod-3
	accept: 3
	reject: 4
	alphabet: [a]
	input: aaa
	states:
	  - id: 0
	    transitions:
	      - {read: a, move: right, next: 1}
	      - {read: blank, next: 3}

Symbols are single characters; the word "blank" names the empty cell. Moves
are left, right or stay. Definitions are only ever read; nothing in this
package writes them back.
*/
package definition

package domain

import "time"

// RunRecord is the persisted summary of a finished run.
type RunRecord struct {
	ID      string `json:"id"`
	Machine string `json:"machine,omitempty"`
	Input   string `json:"input"`
	// InputSymbols is set instead of Input when the tape was loaded from
	// symbols; "blank" marks a blank cell.
	InputSymbols []string  `json:"input_symbols,omitempty"`
	Outcome      Outcome   `json:"outcome"`
	FinalState   StateID   `json:"final_state"`
	Steps        int       `json:"steps"`
	Tape         string    `json:"tape"`
	Position     int       `json:"position"`
	Trace        []StateID `json:"trace,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

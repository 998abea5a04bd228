package domain

// StateID identifies a state in the transition table.
type StateID uint

// InitialState is where every run begins.
const InitialState StateID = 0

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"   // Accept state reached
	OutcomeRejected  Outcome = "rejected"   // Reject state reached
	OutcomeFailed    Outcome = "failed"     // Configuration defect surfaced during the run
	OutcomeStepLimit Outcome = "step_limit" // Opt-in step budget exhausted
	OutcomeAborted   Outcome = "aborted"    // Context cancelled between steps
)

// Halted reports whether the run reached one of the two terminal states.
func (o Outcome) Halted() bool {
	return o == OutcomeAccepted || o == OutcomeRejected
}

package domain

import "errors"

// Run errors. The run loop returns typed errors that match these with errors.Is.
var (
	// ErrUndefinedState is returned when a run reaches a state with no registered rule.
	ErrUndefinedState = errors.New("undefined state")

	// ErrUnhandledSymbol is returned when a rule has no branch for the symbol it read.
	ErrUnhandledSymbol = errors.New("unhandled symbol")

	// ErrStepLimitExceeded is returned when the opt-in step budget runs out.
	ErrStepLimitExceeded = errors.New("step limit exceeded")

	// ErrAlreadyRun is returned when Run is invoked more than once on the same machine.
	ErrAlreadyRun = errors.New("machine already run")
)

// Configuration errors, returned at registration or build time.
var (
	ErrDuplicateState      = errors.New("state already registered")
	ErrNilRule             = errors.New("nil transition rule")
	ErrMissingInitialState = errors.New("initial state 0 is not registered")
	ErrMissingAccept       = errors.New("accept state not set")
	ErrMissingReject       = errors.New("reject state not set")
	ErrTerminalConflict    = errors.New("terminal state conflict")
)

// ErrRunNotFound is returned by result stores for unknown run ids.
var ErrRunNotFound = errors.New("run not found")

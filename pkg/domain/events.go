package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventStep     EventType = "step"
	EventHalt     EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine,omitempty"`
}

// RunEvent is emitted once before the first step.
type RunEvent struct {
	EventBase
	Input string `json:"input"`
}

// StepEvent describes one rule invocation.
type StepEvent struct {
	EventBase
	Step     int     `json:"step"`
	State    StateID `json:"state"`
	Read     Symbol  `json:"-"`
	Next     StateID `json:"next"`
	Position int     `json:"position"` // Head position before the rule ran
}

// HaltEvent is emitted once when the run ends, successfully or not.
type HaltEvent struct {
	EventBase
	Outcome  Outcome       `json:"outcome"`
	State    StateID       `json:"state"`
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for run observability.
type LifecycleHooks struct {
	OnRunStart func(context.Context, *RunEvent)
	OnStep     func(context.Context, *StepEvent)
	OnHalt     func(context.Context, *HaltEvent)
}

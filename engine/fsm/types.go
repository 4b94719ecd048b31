package fsm

import "time"

// StateID is a unique identifier for a state
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = -1

// Trigger is an external stimulus routed through Fire.
// TriggerTick (0) transitions are evaluated automatically on every Update.
type Trigger int

const TriggerTick Trigger = 0

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on state entry or exit
type ActionFunc[T any] func(ctx T)

// Transition defines a link between states
type Transition[T any] struct {
	Trigger Trigger
	Target  StateID
	Guard   GuardFunc[T] // nil = always true

	// After gates a TriggerTick transition on minimum time in state.
	// Zero means the guard alone decides.
	After time.Duration
}

// State represents one node of the machine
type State[T any] struct {
	ID   StateID
	Name string

	OnEnter ActionFunc[T]
	OnExit  ActionFunc[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T]
}

package events

import "time"

// EventType represents the type of environment or orchestration event
type EventType int

const (
	// EventPointerMoved signals pointer motion
	// Trigger: input layer | Consumer: tracking mascots, idle scheduler
	// Payload: *PointerPayload
	EventPointerMoved EventType = iota + 1

	// EventKeyPressed signals a key press
	// Trigger: input layer | Consumer: idle scheduler, command bindings
	// Payload: *KeyPayload for printable keys, nil otherwise
	EventKeyPressed

	// EventScrolled signals content scrolling
	// Trigger: input layer | Consumer: idle scheduler | Payload: nil
	EventScrolled

	// EventClicked signals a pointer click
	// Trigger: input layer | Consumer: idle scheduler | Payload: *PointerPayload
	EventClicked

	// EventResized signals the visible surface changed dimensions
	// Trigger: input layer | Consumer: noise generator, layout
	// Payload: *ResizePayload
	EventResized

	// EventVisibilityChanged signals the surface became hidden or visible
	// Trigger: environment | Consumer: frame clock pause wiring
	// Payload: *VisibilityPayload
	EventVisibilityChanged

	// EventMotionPrefChanged signals a reduced-motion preference flip
	// Trigger: environment | Consumer: frame clock pause wiring
	// Payload: *MotionPrefPayload
	EventMotionPrefChanged
)

// Event represents a single event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

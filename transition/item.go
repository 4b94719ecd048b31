// Package transition drives the multi-phase navigation animation between
// site sections: one cassette-like nav item lifts, travels to the deck slot,
// inserts, engages, spins up, and reveals the destination before the real
// page navigation is issued. At most one transition session exists at a
// time.
package transition

import "github.com/lixenwraith/cassette/render"

// Item is a selectable section destination. The loaded flag is mutated only
// by the Sequencer while it holds the transition lock; at most one Item is
// loaded at any time.
type Item struct {
	ID         string
	TargetHref string
	Node       render.Node

	loaded bool
	rest   render.Rect // resting bounds captured when a lift begins
}

// NewItem creates a nav item; a nil node degrades to a no-op target
func NewItem(id, targetHref string, node render.Node) *Item {
	if node == nil {
		node = render.NopNode{}
	}
	return &Item{ID: id, TargetHref: targetHref, Node: node}
}

// Loaded reports whether this item is the currently active section
func (it *Item) Loaded() bool {
	return it.loaded
}

// Phase enumerates the strictly ordered steps of a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLifting
	PhaseTraveling
	PhaseInserting
	PhaseEngaging
	PhaseSpinningUp
	PhaseRevealing
	// Eject mirror path
	PhaseSpinningDown
	PhaseHidingContent
)

var phaseNames = map[Phase]string{
	PhaseIdle:          "idle",
	PhaseLifting:       "lifting",
	PhaseTraveling:     "traveling",
	PhaseInserting:     "inserting",
	PhaseEngaging:      "engaging",
	PhaseSpinningUp:    "spinning-up",
	PhaseRevealing:     "revealing",
	PhaseSpinningDown:  "spinning-down",
	PhaseHidingContent: "hiding-content",
}

func (p Phase) String() string {
	if n, ok := phaseNames[p]; ok {
		return n
	}
	return "unknown"
}

// Session is one in-flight navigation animation
type Session struct {
	Phase      Phase
	Source     *Item
	TargetHref string
}

// Hooks are activation triggers exposed to collaborators. The sequencer
// invokes them at defined points; it never depends on mascot internals.
type Hooks struct {
	OnLoadStart    func(sectionID string)
	OnLoadComplete func(sectionID string)
}

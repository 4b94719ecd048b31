// Package fsm provides a small generic finite state machine: named states,
// guarded transitions fired by triggers, and time-gated automatic
// transitions evaluated per tick. T is the context type passed to actions
// and guards.
package fsm

import (
	"fmt"
	"time"
)

// Machine is the generic FSM runtime
type Machine[T any] struct {
	states map[StateID]*State[T]

	initial     StateID
	current     StateID
	timeInState time.Duration
}

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states:  make(map[StateID]*State[T]),
		initial: StateNone,
		current: StateNone,
	}
}

// AddState registers a state; last registration wins for duplicate IDs
func (m *Machine[T]) AddState(s *State[T]) {
	m.states[s.ID] = s
}

// Init enters the initial state, executing its OnEnter
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("fsm: initial state %d not found", initial)
	}
	m.initial = initial
	m.current = initial
	m.timeInState = 0
	if node.OnEnter != nil {
		node.OnEnter(ctx)
	}
	return nil
}

// Update advances time in state and evaluates automatic (TriggerTick)
// transitions in priority order
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.current == StateNone {
		return
	}
	m.timeInState += dt

	node := m.states[m.current]
	for _, trans := range node.Transitions {
		if trans.Trigger != TriggerTick {
			continue
		}
		if trans.After > 0 && m.timeInState < trans.After {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.Target)
			return
		}
	}
}

// Fire routes an external trigger through the current state.
// Returns true if a transition occurred; undefined triggers are ignored.
func (m *Machine[T]) Fire(ctx T, trig Trigger) bool {
	if m.current == StateNone || trig == TriggerTick {
		return false
	}
	node := m.states[m.current]
	for _, trans := range node.Transitions {
		if trans.Trigger != trig {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.Target)
			return true
		}
	}
	return false
}

// transition performs the state change
func (m *Machine[T]) transition(ctx T, target StateID) {
	if target == m.current {
		m.timeInState = 0
		return
	}
	targetNode, ok := m.states[target]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", target))
	}

	if node := m.states[m.current]; node.OnExit != nil {
		node.OnExit(ctx)
	}

	m.current = target
	m.timeInState = 0

	if targetNode.OnEnter != nil {
		targetNode.OnEnter(ctx)
	}
}

// Reset returns the machine to its initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.initial == StateNone {
		return fmt.Errorf("fsm: not initialized")
	}
	if node, ok := m.states[m.current]; ok && node.OnExit != nil {
		node.OnExit(ctx)
	}
	m.current = StateNone
	return m.Init(ctx, m.initial)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.current
}

// CurrentName returns the active state's name, or "" when uninitialized
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.states[m.current]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time elapsed in the current state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

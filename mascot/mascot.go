// Package mascot implements the animated mascot entities: a shared
// visibility/activity lifecycle machine specialized by kind through a small
// behavior table (no subclassing), plus the idle/peek watchdog.
package mascot

import (
	"math"
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/engine/fsm"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
	"github.com/lixenwraith/cassette/vmath"
)

// Kind selects the mascot's specialized behavior
type Kind int

const (
	KindTracker Kind = iota // cursor-tracking eyes
	KindOrbiter             // circling loading indicator
	KindEvader              // catch-the-mascot mini-game
)

// Lifecycle states. A mascot never renders while Hidden; the visible flag
// flips immediately on Hide while the lifecycle lags by the settle delay so
// exit animations can play out.
const (
	StateHidden fsm.StateID = iota + 1
	StateEntering
	StateIdle
	StateTracking
	StateActing
	StateExiting
)

// Lifecycle triggers
const (
	triggerShow fsm.Trigger = iota + 1
	triggerHide
	triggerTrack
	triggerUntrack
	triggerAct
	triggerActDone
)

// behavior is the per-kind function table
type behavior struct {
	// pointer receives pointer positions while the mascot is Tracking
	pointer func(m *Mascot, x, y float64)
	// halt stops any continuous per-kind loop; called on Exiting
	halt func(m *Mascot)
}

var behaviors = map[Kind]behavior{
	KindTracker: {pointer: trackPointer, halt: haltTracking},
	KindOrbiter: {halt: haltOrbit},
	KindEvader:  {halt: haltEvade},
}

// Mascot is one animated decorative character. All methods run on the frame
// loop (single-threaded cooperative scheduling).
type Mascot struct {
	kind    Kind
	clock   *engine.FrameClock
	node    render.Node
	machine *fsm.Machine[*Mascot]
	b       behavior

	visible      bool
	x, y         float64
	rot          float64
	viewW, viewH float64

	// tracker
	eyes []Eye

	// orbiter
	orbiting                bool
	orbitCX, orbitCY        float64
	orbitRadius, orbitAngle float64

	// evader
	evade evadeState

	// acting (prowl)
	actHandle engine.Handle

	lifecycleHandle engine.Handle
}

// New creates a mascot of the given kind bound to its renderable node.
// A nil node degrades to a no-op target (absence detected once, not retried).
func New(kind Kind, node render.Node, clock *engine.FrameClock) *Mascot {
	if node == nil {
		node = render.NopNode{}
	}
	m := &Mascot{
		kind:  kind,
		clock: clock,
		node:  node,
		b:     behaviors[kind],
	}
	m.machine = buildLifecycle()
	_ = m.machine.Init(m, StateHidden)
	node.SetVisible(false)

	// Lifecycle timing (settle delays) advances on the shared frame clock,
	// so pausing the clock freezes lifecycle state as well
	m.lifecycleHandle = clock.Animate(func(_ time.Time, dt time.Duration) bool {
		m.machine.Update(m, dt)
		return true
	})
	return m
}

// buildLifecycle wires the six states and their defined edges
func buildLifecycle() *fsm.Machine[*Mascot] {
	mach := fsm.NewMachine[*Mascot]()

	mach.AddState(&fsm.State[*Mascot]{
		ID: StateHidden, Name: "hidden",
		Transitions: []fsm.Transition[*Mascot]{
			{Trigger: triggerShow, Target: StateEntering},
		},
	})
	mach.AddState(&fsm.State[*Mascot]{
		ID: StateEntering, Name: "entering",
		OnEnter: func(m *Mascot) {
			m.visible = true
			m.node.SetVisible(true)
		},
		Transitions: []fsm.Transition[*Mascot]{
			{Trigger: triggerHide, Target: StateExiting},
			{Trigger: triggerTrack, Target: StateTracking},
			{Trigger: triggerAct, Target: StateActing},
			// Auto-advance after the settle delay unless superseded
			{Trigger: fsm.TriggerTick, Target: StateIdle, After: parameter.SettleDelay},
		},
	})
	mach.AddState(&fsm.State[*Mascot]{
		ID: StateIdle, Name: "idle",
		Transitions: []fsm.Transition[*Mascot]{
			{Trigger: triggerTrack, Target: StateTracking},
			{Trigger: triggerAct, Target: StateActing},
			{Trigger: triggerHide, Target: StateExiting},
		},
	})
	mach.AddState(&fsm.State[*Mascot]{
		ID: StateTracking, Name: "tracking",
		OnExit: func(m *Mascot) {
			m.resetPupils()
		},
		Transitions: []fsm.Transition[*Mascot]{
			{Trigger: triggerUntrack, Target: StateIdle},
			// Entering Acting suspends tracking; the caller restarts it
			{Trigger: triggerAct, Target: StateActing},
			{Trigger: triggerHide, Target: StateExiting},
		},
	})
	mach.AddState(&fsm.State[*Mascot]{
		ID: StateActing, Name: "acting",
		OnExit: func(m *Mascot) {
			if m.actHandle != engine.HandleNone {
				m.clock.Cancel(m.actHandle)
				m.actHandle = engine.HandleNone
			}
		},
		Transitions: []fsm.Transition[*Mascot]{
			{Trigger: triggerActDone, Target: StateIdle},
			{Trigger: triggerHide, Target: StateExiting},
		},
	})
	mach.AddState(&fsm.State[*Mascot]{
		ID: StateExiting, Name: "exiting",
		OnEnter: func(m *Mascot) {
			// Invisible immediately; lifecycle lags by the settle delay
			m.visible = false
			m.node.SetVisible(false)
			if m.b.halt != nil {
				m.b.halt(m)
			}
		},
		Transitions: []fsm.Transition[*Mascot]{
			// Re-show wins over the pending hidden delay
			{Trigger: triggerShow, Target: StateEntering},
			{Trigger: fsm.TriggerTick, Target: StateHidden, After: parameter.SettleDelay},
		},
	})
	return mach
}

// Show transitions to Entering and marks the mascot visible
func (m *Mascot) Show() {
	m.machine.Fire(m, triggerShow)
}

// Hide transitions to Exiting; the mascot turns invisible immediately and
// reaches Hidden after the settle delay
func (m *Mascot) Hide() {
	m.machine.Fire(m, triggerHide)
}

// State returns the current lifecycle state
func (m *Mascot) State() fsm.StateID {
	return m.machine.Current()
}

// StateName returns the lifecycle state name for diagnostics
func (m *Mascot) StateName() string {
	return m.machine.CurrentName()
}

// Visible reports the render flag (leads the lifecycle on Hide)
func (m *Mascot) Visible() bool {
	return m.visible
}

// Kind returns the mascot kind
func (m *Mascot) Kind() Kind {
	return m.kind
}

// SetViewport sets the surface dimensions used by path-scaled behaviors
func (m *Mascot) SetViewport(w, h float64) {
	m.viewW, m.viewH = w, h
}

// MoveTo positions the mascot and its node
func (m *Mascot) MoveTo(x, y float64) {
	m.x, m.y = x, y
	m.node.MoveTo(x, y)
}

// Position returns the current position
func (m *Mascot) Position() (x, y float64) {
	return m.x, m.y
}

// Rotation returns the current heading in degrees
func (m *Mascot) Rotation() float64 {
	return m.rot
}

func (m *Mascot) rotateTo(deg float64) {
	m.rot = math.Mod(deg, 360)
	m.node.RotateTo(m.rot)
}

// PointerMoved feeds a pointer position to the kind behavior; only a
// Tracking mascot responds
func (m *Mascot) PointerMoved(x, y float64) {
	if m.machine.Current() != StateTracking {
		return
	}
	if m.b.pointer != nil {
		m.b.pointer(m, x, y)
	}
}

// Prowl performs the scripted cross-screen traversal: enter from one
// horizontal edge near the bottom, cross linearly over the fixed duration,
// then hide. An active Tracking session is suspended for the duration and
// must be restarted by the caller.
func (m *Mascot) Prowl(fromLeft bool) bool {
	if m.machine.Current() == StateHidden {
		m.Show()
	}
	if !m.machine.Fire(m, triggerAct) {
		return false
	}

	margin := m.node.Bounds().W
	if margin <= 0 {
		margin = 4
	}
	startX := -margin
	endX := m.viewW + margin
	if !fromLeft {
		startX, endX = endX, startX
	}
	y := m.viewH * (1 - parameter.ProwlBottomMargin)
	m.MoveTo(startX, y)

	start := m.clock.Now()
	m.actHandle = m.clock.Animate(func(now time.Time, _ time.Duration) bool {
		frac := float64(now.Sub(start)) / float64(parameter.ProwlDuration)
		if frac >= 1 {
			m.MoveTo(endX, y)
			m.actHandle = engine.HandleNone
			m.machine.Fire(m, triggerActDone)
			m.Hide()
			return false
		}
		m.MoveTo(vmath.Lerp(startX, endX, frac), y)
		return true
	})
	return true
}

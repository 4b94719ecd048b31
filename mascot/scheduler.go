package mascot

import (
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/events"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/vmath"
)

// Edge is one predefined peek position: the peeked resting point and the
// off-screen start the mascot animates in from.
type Edge struct {
	X, Y       float64 // peeked position
	OffX, OffY float64 // off-screen start
}

// DefaultEdges returns the three standard peek edges for a viewport
func DefaultEdges(viewW, viewH float64) []Edge {
	return []Edge{
		{X: 0, Y: viewH * 0.6, OffX: -6, OffY: viewH * 0.6},            // left
		{X: viewW - 4, Y: viewH * 0.3, OffX: viewW + 6, OffY: viewH * 0.3}, // right
		{X: viewW * 0.5, Y: viewH - 2, OffX: viewW * 0.5, OffY: viewH + 4}, // bottom
	}
}

// Scheduler is the global idle watchdog: after a period with no user
// activity it triggers a random mascot to peek from a screen edge. Every
// qualifying activity event cancels the prior pending countdown before
// scheduling a new one, so repeated resets cannot leak timers.
type Scheduler struct {
	clock *engine.FrameClock
	pool  []*Mascot
	edges []Edge
	rng   *vmath.FastRand

	countdown engine.Handle
	peeks     int // total peeks fired, for tests and diagnostics
}

// NewScheduler creates an idle/peek scheduler over the given mascot pool
func NewScheduler(clock *engine.FrameClock, pool []*Mascot, edges []Edge, seed uint64) *Scheduler {
	return &Scheduler{
		clock: clock,
		pool:  pool,
		edges: edges,
		rng:   vmath.NewFastRand(seed),
	}
}

// Start arms the initial countdown
func (s *Scheduler) Start() {
	s.rearm()
}

// Activity resets the countdown and immediately hides all pool mascots
func (s *Scheduler) Activity() {
	for _, m := range s.pool {
		m.Hide()
	}
	s.rearm()
}

func (s *Scheduler) rearm() {
	s.clock.Cancel(s.countdown)
	s.countdown = s.clock.After(parameter.IdleDelay, s.peek)
}

// peek selects one mascot and one edge uniformly at random, positions the
// mascot off-screen, shows it, and eases it into the peeked position with
// an overshoot curve
func (s *Scheduler) peek() {
	s.countdown = engine.HandleNone
	if len(s.pool) == 0 || len(s.edges) == 0 {
		return
	}
	m := s.pool[s.rng.Intn(len(s.pool))]
	e := s.edges[s.rng.Intn(len(s.edges))]
	s.peeks++

	m.MoveTo(e.OffX, e.OffY)
	m.Show()

	start := s.clock.Now()
	s.clock.Animate(func(now time.Time, _ time.Duration) bool {
		frac := float64(now.Sub(start)) / float64(parameter.PeekDuration)
		if frac >= 1 {
			m.MoveTo(e.X, e.Y)
			return false
		}
		t := vmath.EaseOutBack(frac)
		m.MoveTo(vmath.Lerp(e.OffX, e.X, t), vmath.Lerp(e.OffY, e.Y, t))
		return true
	})
}

// Peeks returns how many peeks have fired
func (s *Scheduler) Peeks() int {
	return s.peeks
}

// HandleEvent implements events.Handler: any qualifying activity resets the
// countdown
func (s *Scheduler) HandleEvent(_ events.Event) {
	s.Activity()
}

// EventTypes implements events.Handler
func (s *Scheduler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPointerMoved,
		events.EventKeyPressed,
		events.EventScrolled,
		events.EventClicked,
	}
}

package mascot

import (
	"math"
	"time"

	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/vmath"
)

type evadeState struct {
	active     bool
	t          float64 // noise-time accumulator
	divisor    float64 // seconds of real time per unit of noise time
	catches    int
	nx, ny     *vmath.Noise1D
	onComplete func()
	completed  bool
}

// StartEvading begins the catch-the-mascot mini-game: the mascot moves along
// a smooth pseudo-random path (independent band-limited noise on each axis,
// scaled to the viewport) with an oscillating rotation. onComplete fires
// exactly once, after the final catch.
func (m *Mascot) StartEvading(onComplete func()) bool {
	if m.kind != KindEvader || m.evade.active {
		return false
	}
	if m.machine.Current() == StateHidden {
		m.Show()
	}
	if !m.machine.Fire(m, triggerAct) {
		return false
	}

	m.evade = evadeState{
		active:     true,
		divisor:    parameter.EvadeTimeDivisor,
		nx:         vmath.NewNoise1D(0x6361737365747465),
		ny:         vmath.NewNoise1D(0x6465636B6465636B),
		onComplete: onComplete,
	}

	m.clock.Animate(func(_ time.Time, dt time.Duration) bool {
		e := &m.evade
		if !e.active {
			return false
		}
		e.t += dt.Seconds() / e.divisor

		// Noise output [-1,1] mapped to the viewport
		x := (e.nx.At(e.t)*0.5 + 0.5) * m.viewW
		y := (e.ny.At(e.t)*0.5 + 0.5) * m.viewH
		m.MoveTo(x, y)
		m.rotateTo(math.Sin(e.t*parameter.EvadeWobbleFreq) * parameter.EvadeWobbleDegree)
		return true
	})
	return true
}

// Catch registers one successful catch. Each catch before the target speeds
// the path up; the final catch stops the animation, plays the exit
// transition, and invokes the completion callback exactly once.
func (m *Mascot) Catch() (catches int, done bool) {
	e := &m.evade
	if !e.active {
		return e.catches, e.completed
	}
	e.catches++
	if e.catches >= parameter.EvadeCatchTarget {
		e.active = false
		m.machine.Fire(m, triggerActDone)
		m.Hide()
		if !e.completed {
			e.completed = true
			if e.onComplete != nil {
				e.onComplete()
			}
		}
		return e.catches, true
	}
	e.divisor *= parameter.EvadeSpeedUp
	return e.catches, false
}

// haltEvade is the Evader halt entry
func haltEvade(m *Mascot) {
	m.evade.active = false
}

// Evading reports whether the mini-game path is running
func (m *Mascot) Evading() bool {
	return m.evade.active
}

// Catches returns the current catch count
func (m *Mascot) Catches() int {
	return m.evade.catches
}

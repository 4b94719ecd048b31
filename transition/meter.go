package transition

import (
	"math"
	"time"

	"github.com/lixenwraith/cassette/engine"
)

// MeterTarget is the level-bar render target
type MeterTarget interface {
	SetLevel(level float64)
}

type nopMeter struct{}

func (nopMeter) SetLevel(float64) {}

// Meter wobbles a level bar while a section is engaged. Purely cosmetic;
// started by the sequencer at SpinningUp and stopped on eject.
type Meter struct {
	clock  *engine.FrameClock
	target MeterTarget

	running bool
	phase   float64
}

// NewMeter creates a meter; a nil target degrades to a no-op
func NewMeter(clock *engine.FrameClock, target MeterTarget) *Meter {
	if target == nil {
		target = nopMeter{}
	}
	return &Meter{clock: clock, target: target}
}

// Start begins the wobble; no-op if already running
func (m *Meter) Start() {
	if m.running {
		return
	}
	m.running = true
	m.clock.Animate(func(_ time.Time, dt time.Duration) bool {
		if !m.running {
			return false
		}
		m.phase += dt.Seconds()
		m.target.SetLevel(0.55 + 0.45*math.Sin(m.phase*3)*math.Sin(m.phase*1.3))
		return true
	})
}

// Stop halts the wobble and drops the level to zero
func (m *Meter) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.target.SetLevel(0)
}

// Running reports whether the meter is animating
func (m *Meter) Running() bool {
	return m.running
}

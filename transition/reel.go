package transition

import (
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
)

// Reel is a continuous decorative spin animation. The sequencer shortens its
// cycle duration during SpinningUp and restores it on eject.
type Reel struct {
	clock *engine.FrameClock
	node  render.Node

	base     time.Duration
	cycle    time.Duration
	rotation float64
	spinning bool
}

// NewReel creates a reel on its node; a nil node degrades to a no-op
func NewReel(clock *engine.FrameClock, node render.Node) *Reel {
	if node == nil {
		node = render.NopNode{}
	}
	return &Reel{
		clock: clock,
		node:  node,
		base:  parameter.ReelBaseCycle,
		cycle: parameter.ReelBaseCycle,
	}
}

// Start begins the continuous rotation; no-op if already spinning
func (r *Reel) Start() {
	if r.spinning {
		return
	}
	r.spinning = true
	r.clock.Animate(func(_ time.Time, dt time.Duration) bool {
		if !r.spinning {
			return false
		}
		r.rotation += 360 * float64(dt) / float64(r.cycle)
		for r.rotation >= 360 {
			r.rotation -= 360
		}
		r.node.RotateTo(r.rotation)
		return true
	})
}

// Stop halts the rotation
func (r *Reel) Stop() {
	r.spinning = false
}

// SpeedUp accelerates the spin by reducing the cycle duration
func (r *Reel) SpeedUp() {
	r.cycle = time.Duration(float64(r.base) * parameter.ReelFastFactor)
}

// Restore returns the spin to its base cycle duration
func (r *Reel) Restore() {
	r.cycle = r.base
}

// Cycle returns the current cycle duration
func (r *Reel) Cycle() time.Duration {
	return r.cycle
}

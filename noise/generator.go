// Package noise produces short bursts of pseudo-random grayscale pixel noise
// with a fade-out envelope, rendered onto a lower-resolution pixel buffer.
package noise

import (
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/events"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/vmath"
)

// Surface is the visible target the buffer is presented onto each frame.
// Implementations only read the buffer; the generator owns it and reuses
// the same grid for its lifetime, so retaining the reference is safe.
type Surface interface {
	Present(buf *Buffer)
	Clear()
}

// Generator owns the single Buffer and drives bursts on the frame clock.
// At most one burst runs at a time: a new Burst cancels and replaces any
// burst in progress.
type Generator struct {
	clock   *engine.FrameClock
	surface Surface
	buf     *Buffer
	rng     *vmath.FastRand

	handle    engine.Handle
	active    bool
	startAt   time.Time
	duration  time.Duration
	intensity float64
}

// NewGenerator creates a generator whose buffer tracks the given surface
// dimensions at coarse resolution
func NewGenerator(clock *engine.FrameClock, surface Surface, surfaceW, surfaceH int, seed uint64) *Generator {
	return &Generator{
		clock:   clock,
		surface: surface,
		buf:     NewBuffer(coarse(surfaceW), coarse(surfaceH)),
		rng:     vmath.NewFastRand(seed),
	}
}

// coarse maps a surface dimension to buffer resolution: dim / factor,
// rounded up
func coarse(dim int) int {
	return (dim + parameter.NoiseCoarseFactor - 1) / parameter.NoiseCoarseFactor
}

// Envelope computes burst opacity at the given elapsed time: flat at
// intensity until the fade tail, then linear to zero at duration
func Envelope(elapsed, duration time.Duration, intensity float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 0
	}
	tail := time.Duration(float64(duration) * parameter.FadeTailStart)
	if elapsed <= tail {
		return intensity
	}
	remain := float64(duration-elapsed) / float64(duration-tail)
	return intensity * remain
}

// Burst begins a new fade-enveloped noise animation, cancelling and
// replacing any burst already in progress
func (g *Generator) Burst(duration time.Duration, intensity float64) {
	if duration <= 0 {
		g.Stop()
		return
	}
	if g.active {
		g.clock.Cancel(g.handle)
	}
	g.active = true
	g.startAt = g.clock.Now()
	g.duration = duration
	g.intensity = vmath.Clamp(intensity, 0, 1)

	g.handle = g.clock.Animate(func(now time.Time, _ time.Duration) bool {
		elapsed := now.Sub(g.startAt)
		if elapsed >= g.duration {
			g.finish()
			return false
		}
		opacity := Envelope(elapsed, g.duration, g.intensity)
		alpha := uint8(vmath.Clamp(opacity*255, 0, 255))
		g.buf.Fill(func() uint8 { return uint8(g.rng.Next() >> 24) }, alpha)
		g.surface.Present(g.buf)
		return true
	})
}

// Stop cancels any in-progress burst immediately and clears the buffer
func (g *Generator) Stop() {
	if !g.active {
		return
	}
	g.clock.Cancel(g.handle)
	g.finish()
}

func (g *Generator) finish() {
	g.buf.Clear()
	g.surface.Clear()
	g.active = false
	g.handle = engine.HandleNone
}

// Active reports whether a burst is in progress
func (g *Generator) Active() bool {
	return g.active
}

// Buffer exposes the owned pixel grid for presentation and tests
func (g *Generator) Buffer() *Buffer {
	return g.buf
}

// Resize re-sizes the buffer to track new surface dimensions without
// interrupting an in-progress burst's timing
func (g *Generator) Resize(surfaceW, surfaceH int) {
	g.buf.Resize(coarse(surfaceW), coarse(surfaceH))
}

// HandleEvent implements events.Handler for surface resizes
func (g *Generator) HandleEvent(ev events.Event) {
	if p, ok := ev.Payload.(*events.ResizePayload); ok {
		g.Resize(p.Width, p.Height)
	}
}

// EventTypes implements events.Handler
func (g *Generator) EventTypes() []events.EventType {
	return []events.EventType{events.EventResized}
}

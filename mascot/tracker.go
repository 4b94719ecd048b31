package mascot

import (
	"math"

	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
)

// Eye is one eye socket with its pupil node. The pupil offsets along the
// socket-to-pointer angle by a fixed fraction of the socket radius, so it
// can never leave the socket.
type Eye struct {
	CX, CY float64 // socket center in surface coordinates
	R      float64 // socket radius
	Pupil  render.Node

	offX, offY float64
}

// Offset returns the current pupil offset from the socket center
func (e *Eye) Offset() (dx, dy float64) {
	return e.offX, e.offY
}

// SetEyes installs the tracker's eye sockets. Nil pupil nodes degrade to
// no-op targets.
func (m *Mascot) SetEyes(eyes []Eye) {
	for i := range eyes {
		if eyes[i].Pupil == nil {
			eyes[i].Pupil = render.NopNode{}
		}
	}
	m.eyes = eyes
}

// Eyes exposes the eye state for rendering and tests
func (m *Mascot) Eyes() []Eye {
	return m.eyes
}

// StartTracking subscribes the mascot to pointer positions (fed through
// PointerMoved). Only valid from Entering or Idle.
func (m *Mascot) StartTracking() bool {
	if m.kind != KindTracker {
		return false
	}
	return m.machine.Fire(m, triggerTrack)
}

// StopTracking leaves Tracking and resets pupil offsets to zero
func (m *Mascot) StopTracking() {
	m.machine.Fire(m, triggerUntrack)
}

// trackPointer is the Tracker entry in the behavior table
func trackPointer(m *Mascot, px, py float64) {
	for i := range m.eyes {
		e := &m.eyes[i]
		ang := math.Atan2(py-e.CY, px-e.CX)
		off := parameter.PupilTravel * e.R
		e.offX = math.Cos(ang) * off
		e.offY = math.Sin(ang) * off
		e.Pupil.MoveTo(e.CX+e.offX, e.CY+e.offY)
	}
}

// haltTracking is the Tracker halt entry; pupil reset also runs on any
// Tracking exit via the lifecycle machine
func haltTracking(m *Mascot) {
	m.resetPupils()
}

func (m *Mascot) resetPupils() {
	for i := range m.eyes {
		e := &m.eyes[i]
		e.offX, e.offY = 0, 0
		e.Pupil.MoveTo(e.CX, e.CY)
	}
}

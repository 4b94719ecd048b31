package mascot

import (
	"math"
	"time"

	"github.com/lixenwraith/cassette/parameter"
)

// StartLoading begins circling around (cx, cy) at the given radius. The loop
// runs as its own frame-clock animator, independent of other consumers, so
// loading feedback stays visible for the duration of an arbitrary-length
// asynchronous operation. Self-terminating: StopLoading clears the flag the
// animator checks each frame.
func (m *Mascot) StartLoading(cx, cy, radius float64) bool {
	if m.kind != KindOrbiter || m.orbiting {
		return false
	}
	if m.machine.Current() == StateHidden {
		m.Show()
	}
	if !m.machine.Fire(m, triggerAct) {
		return false
	}

	m.orbiting = true
	m.orbitCX, m.orbitCY = cx, cy
	m.orbitRadius = radius
	m.orbitAngle = 0

	m.clock.Animate(func(_ time.Time, _ time.Duration) bool {
		if !m.orbiting {
			return false
		}
		m.orbitAngle += parameter.OrbitStep
		a := m.orbitAngle
		m.MoveTo(m.orbitCX+math.Cos(a)*m.orbitRadius, m.orbitCY+math.Sin(a)*m.orbitRadius)

		// Heading equals direction of travel plus a banking term
		// proportional to cos(angle), leaning into turns
		heading := a*180/math.Pi + 90
		m.rotateTo(heading + parameter.OrbitBankGain*math.Cos(a))
		return true
	})
	return true
}

// StopLoading halts the circling loop and hides the mascot
func (m *Mascot) StopLoading() {
	if !m.orbiting {
		return
	}
	m.orbiting = false
	m.machine.Fire(m, triggerActDone)
	m.Hide()
}

// haltOrbit is the Orbiter halt entry
func haltOrbit(m *Mascot) {
	m.orbiting = false
}

// Orbiting reports whether the loading loop is active
func (m *Mascot) Orbiting() bool {
	return m.orbiting
}

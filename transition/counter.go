package transition

import (
	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/parameter"
)

// Display is the 3-digit render target for the counter. Position 0 is the
// hundreds digit.
type Display interface {
	SetDigit(pos, digit int)
	SetFlipping(pos int, on bool)
}

type nopDisplay struct{}

func (nopDisplay) SetDigit(int, int)     {}
func (nopDisplay) SetFlipping(int, bool) {}

// Counter animates the 3-digit display. Each update compares against the
// previously displayed digits; only digits that change get the flip cue,
// avoiding spurious redraws of unchanged digits.
type Counter struct {
	clock   *engine.FrameClock
	display Display

	value  int
	digits [3]int
	flips  [3]engine.Handle
}

// NewCounter creates a counter; a nil display degrades to a no-op
func NewCounter(clock *engine.FrameClock, display Display) *Counter {
	if display == nil {
		display = nopDisplay{}
	}
	c := &Counter{clock: clock, display: display}
	for i := 0; i < 3; i++ {
		c.display.SetDigit(i, 0)
	}
	return c
}

// Value returns the currently displayed number
func (c *Counter) Value() int {
	return c.value
}

// Set displays v clamped to [0,999], flip-cueing only changed digits
func (c *Counter) Set(v int) {
	if v < 0 {
		v = 0
	}
	if v > parameter.CounterMax {
		v = parameter.CounterMax
	}
	c.value = v

	next := [3]int{v / 100, (v / 10) % 10, v % 10}
	for pos := 0; pos < 3; pos++ {
		if next[pos] == c.digits[pos] {
			continue
		}
		c.digits[pos] = next[pos]
		c.display.SetDigit(pos, next[pos])
		c.flip(pos)
	}
}

// flip raises the flip cue on one digit for the cue duration; a newer flip
// on the same digit replaces the pending clear
func (c *Counter) flip(pos int) {
	c.clock.Cancel(c.flips[pos])
	c.display.SetFlipping(pos, true)
	p := pos
	c.flips[pos] = c.clock.After(parameter.FlipCueDuration, func() {
		c.flips[p] = engine.HandleNone
		c.display.SetFlipping(p, false)
	})
}

package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// CounterView is a 3-digit display at a fixed screen position. It satisfies
// the transition sequencer's Display interface structurally.
type CounterView struct {
	mu       sync.Mutex
	x, y     int
	digits   [3]int
	flipping [3]bool
	style    tcell.Style
}

// NewCounterView creates a counter anchored at the given cell
func NewCounterView(x, y int, style tcell.Style) *CounterView {
	return &CounterView{x: x, y: y, style: style}
}

// SetDigit updates one digit position (0 = hundreds)
func (c *CounterView) SetDigit(pos, digit int) {
	if pos < 0 || pos > 2 {
		return
	}
	c.mu.Lock()
	c.digits[pos] = digit
	c.mu.Unlock()
}

// SetFlipping toggles the flip-transition cue on one digit
func (c *CounterView) SetFlipping(pos int, on bool) {
	if pos < 0 || pos > 2 {
		return
	}
	c.mu.Lock()
	c.flipping[pos] = on
	c.mu.Unlock()
}

// Draw renders the three digits; flipping digits render reversed
func (c *CounterView) Draw(screen tcell.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := 0; i < 3; i++ {
		style := c.style
		if c.flipping[i] {
			style = style.Reverse(true)
		}
		r := []rune(fmt.Sprintf("%d", c.digits[i]))[0]
		screen.SetContent(c.x+i, c.y, r, nil, style)
	}
}

// MeterView is a horizontal level bar. It satisfies the sequencer's meter
// target interface structurally.
type MeterView struct {
	mu    sync.Mutex
	x, y  int
	width int
	level float64
	style tcell.Style
}

// NewMeterView creates a meter bar of the given cell width
func NewMeterView(x, y, width int, style tcell.Style) *MeterView {
	return &MeterView{x: x, y: y, width: width, style: style}
}

// SetLevel sets the fill fraction in [0,1]
func (m *MeterView) SetLevel(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.mu.Lock()
	m.level = level
	m.mu.Unlock()
}

// Draw renders the bar
func (m *MeterView) Draw(screen tcell.Screen) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fill := int(m.level * float64(m.width))
	for i := 0; i < m.width; i++ {
		r := '·'
		if i < fill {
			r = '▰'
		}
		screen.SetContent(m.x+i, m.y, r, nil, m.style)
	}
}

// LocationView shows the current-location indicator text
type LocationView struct {
	mu    sync.Mutex
	x, y  int
	text  string
	style tcell.Style
}

// NewLocationView creates the indicator anchored at the given cell
func NewLocationView(x, y int, style tcell.Style) *LocationView {
	return &LocationView{x: x, y: y, style: style}
}

// SetLocation updates the displayed section identifier
func (l *LocationView) SetLocation(id string) {
	l.mu.Lock()
	if id == "" {
		id = "home"
	}
	l.text = id
	l.mu.Unlock()
}

// Draw renders the indicator
func (l *LocationView) Draw(screen tcell.Screen) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, r := range []rune("▸ " + l.text) {
		screen.SetContent(l.x+i, l.y, r, nil, l.style)
	}
}

package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cassette/noise"
)

// noise alpha to shade rune thresholds
var shadeRunes = []rune{' ', '░', '▒', '▓', '█'}

// NoiseView implements noise.Surface over a tcell screen. Present retains
// the buffer reference (the generator owns and reuses a single buffer);
// Draw blits the latest state scaled back up to cell resolution.
type NoiseView struct {
	mu     sync.Mutex
	buf    *noise.Buffer
	active bool
}

// NewNoiseView creates an empty view
func NewNoiseView() *NoiseView {
	return &NoiseView{}
}

// Present implements noise.Surface
func (v *NoiseView) Present(buf *noise.Buffer) {
	v.mu.Lock()
	v.buf = buf
	v.active = true
	v.mu.Unlock()
}

// Clear implements noise.Surface
func (v *NoiseView) Clear() {
	v.mu.Lock()
	v.active = false
	v.mu.Unlock()
}

// Draw overlays the noise onto the screen; no-op when no burst is active
func (v *NoiseView) Draw(screen tcell.Screen) {
	v.mu.Lock()
	buf, active := v.buf, v.active
	v.mu.Unlock()
	if !active || buf == nil {
		return
	}

	sw, sh := screen.Size()
	bw, bh := buf.Width(), buf.Height()
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			gray, alpha := buf.At(x*bw/sw, y*bh/sh)
			if alpha == 0 {
				continue
			}
			shade := shadeRunes[int(alpha)*(len(shadeRunes)-1)/255]
			if shade == ' ' {
				continue
			}
			g := int32(gray)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(g, g, g))
			screen.SetContent(x, y, shade, nil, style)
		}
	}
}

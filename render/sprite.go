package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Sprite is a Node backed by multi-line rune art drawn onto a tcell screen.
// Rotation has no cell-level representation; the angle is retained so
// behaviors relying on it stay observable.
type Sprite struct {
	mu      sync.Mutex
	art     []string
	style   tcell.Style
	x, y    float64
	rot     float64
	opacity float64
	visible bool
	tags    map[string]bool
}

// NewSprite creates a sprite from rune art lines
func NewSprite(art []string, style tcell.Style) *Sprite {
	return &Sprite{
		art:     art,
		style:   style,
		opacity: 1,
		tags:    make(map[string]bool),
	}
}

func (s *Sprite) MoveTo(x, y float64) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.mu.Unlock()
}

func (s *Sprite) RotateTo(deg float64) {
	s.mu.Lock()
	s.rot = deg
	s.mu.Unlock()
}

func (s *Sprite) SetOpacity(a float64) {
	s.mu.Lock()
	s.opacity = a
	s.mu.Unlock()
}

func (s *Sprite) SetVisible(v bool) {
	s.mu.Lock()
	s.visible = v
	s.mu.Unlock()
}

func (s *Sprite) SetTag(name string, on bool) {
	s.mu.Lock()
	s.tags[name] = on
	s.mu.Unlock()
}

// Tag reports whether the named tag is set
func (s *Sprite) Tag(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tags[name]
}

// Rotation returns the retained rotation angle in degrees
func (s *Sprite) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot
}

func (s *Sprite) Bounds() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := 0
	for _, line := range s.art {
		if len([]rune(line)) > w {
			w = len([]rune(line))
		}
	}
	return Rect{X: s.x, Y: s.y, W: float64(w), H: float64(len(s.art))}
}

// Draw renders the sprite's art to the screen, dimming by opacity
func (s *Sprite) Draw(screen tcell.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible || s.opacity <= 0 {
		return
	}
	style := s.style
	if s.opacity < 1 {
		fg, _, _ := style.Decompose()
		r, g, b := fg.RGB()
		style = style.Foreground(tcell.NewRGBColor(
			int32(float64(r)*s.opacity),
			int32(float64(g)*s.opacity),
			int32(float64(b)*s.opacity),
		))
	}
	if s.tags["engaged"] || s.tags["flip"] {
		style = style.Reverse(true)
	}
	ox, oy := int(s.x), int(s.y)
	for dy, line := range s.art {
		for dx, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			screen.SetContent(ox+dx, oy+dy, r, nil, style)
		}
	}
}

// Scene draws a fixed-order list of sprites each frame
type Scene struct {
	sprites []*Sprite
}

// Add appends sprites in draw order
func (sc *Scene) Add(sprites ...*Sprite) {
	sc.sprites = append(sc.sprites, sprites...)
}

// Draw renders all sprites in order
func (sc *Scene) Draw(screen tcell.Screen) {
	for _, s := range sc.sprites {
		s.Draw(screen)
	}
}

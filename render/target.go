// Package render defines the opaque renderable targets the animators mutate
// (position, rotation, opacity, visibility, state tags, never structural
// content) and provides tcell-backed implementations for the terminal demo.
//
// Components receive their targets at construction and never look them up
// independently, so tests can inject fakes.
package render

// Rect is an axis-aligned bounding box in surface coordinates
type Rect struct {
	X, Y, W, H float64
}

// Center returns the box midpoint
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Node is a positioned visual element
type Node interface {
	MoveTo(x, y float64)
	RotateTo(deg float64)
	SetOpacity(a float64)
	SetVisible(v bool)
	SetTag(name string, on bool)
	Bounds() Rect
}

// NopNode satisfies Node and does nothing. Missing optional visual elements
// degrade to this at initialization.
type NopNode struct{}

func (NopNode) MoveTo(x, y float64)          {}
func (NopNode) RotateTo(deg float64)         {}
func (NopNode) SetOpacity(a float64)         {}
func (NopNode) SetVisible(v bool)            {}
func (NopNode) SetTag(name string, on bool)  {}
func (NopNode) Bounds() Rect                 { return Rect{} }

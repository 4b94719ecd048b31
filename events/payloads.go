package events

// PointerPayload carries pointer coordinates in surface space
type PointerPayload struct {
	X, Y float64
}

// KeyPayload carries the pressed rune for printable keys
type KeyPayload struct {
	Rune rune
}

// ResizePayload carries new surface dimensions
type ResizePayload struct {
	Width, Height int
}

// VisibilityPayload carries the surface visibility flag
type VisibilityPayload struct {
	Visible bool
}

// MotionPrefPayload carries the reduced-motion preference
type MotionPrefPayload struct {
	Reduced bool
}

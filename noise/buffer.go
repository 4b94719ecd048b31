package noise

// Buffer is the off-screen coarse pixel grid a burst renders into.
// Each pixel is a gray level plus an alpha, both 0-255. The grid is refilled
// completely on every active frame, so Resize discards content.
type Buffer struct {
	width, height int
	gray          []uint8
	alpha         []uint8
}

// NewBuffer creates a buffer with the given coarse dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Buffer{
		width:  width,
		height: height,
		gray:   make([]uint8, width*height),
		alpha:  make([]uint8, width*height),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Set writes one pixel; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, gray, alpha uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.gray[i] = gray
	b.alpha[i] = alpha
}

// At reads one pixel; out-of-bounds reads return zero
func (b *Buffer) At(x, y int) (gray, alpha uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0
	}
	i := y*b.width + x
	return b.gray[i], b.alpha[i]
}

// Fill overwrites every pixel from the supplied source function
func (b *Buffer) Fill(src func() uint8, alpha uint8) {
	for i := range b.gray {
		b.gray[i] = src()
		b.alpha[i] = alpha
	}
}

// Clear zeroes the whole grid
func (b *Buffer) Clear() {
	for i := range b.gray {
		b.gray[i] = 0
		b.alpha[i] = 0
	}
}

// Resize reallocates the grid to new coarse dimensions
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.gray = make([]uint8, width*height)
	b.alpha = make([]uint8, width*height)
}

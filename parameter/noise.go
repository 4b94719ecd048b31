package parameter

// Noise buffer tuning.
const (
	// NoiseCoarseFactor divides the visible surface's linear dimensions
	// (rounded up) to size the off-screen pixel grid
	NoiseCoarseFactor = 3

	// FadeTailStart is the fraction of a burst's duration after which
	// opacity interpolates linearly to zero
	FadeTailStart = 0.7
)

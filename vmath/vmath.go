// Package vmath provides the small float math surface the animators need:
// interpolation, easing curves, band-limited value noise, and a fast
// deterministic random source.
package vmath

import "math"

// Lerp linearly interpolates between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Easing ---
// All easing functions map t in [0,1] to a progress fraction.
// Inputs outside [0,1] are clamped so animators can feed raw elapsed ratios.

// EaseIn is a quadratic ease-in (slow start)
func EaseIn(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t
}

// EaseInOut is a quadratic ease-in-out
func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// EaseOutBack overshoots past 1.0 before settling, for snappy arrivals
func EaseOutBack(t float64) float64 {
	t = Clamp(t, 0, 1)
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// --- Randomness ---

// FastRand is a xorshift64 generator. Not cryptographic; cheap enough to
// refill a full noise buffer every frame.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0,1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// --- Value noise ---

// Noise1D is band-limited 1-D value noise: random lattice values at integer
// coordinates, smoothstep-interpolated between them. Output is in [-1,1] and
// continuous in t. The seed selects an independent channel, so two Noise1D
// instances with different seeds drive uncorrelated axes.
type Noise1D struct {
	seed uint64
}

func NewNoise1D(seed uint64) *Noise1D {
	return &Noise1D{seed: seed}
}

// lattice hashes an integer coordinate to a value in [-1,1]
func (n *Noise1D) lattice(i int64) float64 {
	x := uint64(i)*0x9E3779B97F4A7C15 + n.seed
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return float64(x>>11)/(1<<52) - 1
}

// At samples the noise at position t
func (n *Noise1D) At(t float64) float64 {
	i := math.Floor(t)
	f := t - i
	// smoothstep
	f = f * f * (3 - 2*f)
	a := n.lattice(int64(i))
	b := n.lattice(int64(i) + 1)
	return Lerp(a, b, f)
}

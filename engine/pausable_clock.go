package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable animation time with pause duration tracking.
// While paused, Now is frozen at the pause point; Resume continues from the
// frozen point rather than jumping forward, so in-flight animations pick up
// exactly where they left off.
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)
	animStartTime time.Time // Animation time epoch (adjusted for pauses)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration

	tp TimeProvider
}

// NewPausableClock creates a new pausable clock on the given time source
func NewPausableClock(tp TimeProvider) *PausableClock {
	now := tp.Now()
	return &PausableClock{
		realStartTime: now,
		animStartTime: now,
		tp:            tp,
	}
}

// Now returns current animation time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: return frozen time at pause point
		return pc.animStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Animation elapsed = real elapsed - total paused time
	realElapsed := pc.tp.Now().Sub(pc.realStartTime)
	return pc.animStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.tp.Now()
}

// Pause stops animation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.tp.Now()
	}
}

// Resume continues animation time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.tp.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.tp.Now().Sub(pc.pauseStartTime)
	}
	return total
}

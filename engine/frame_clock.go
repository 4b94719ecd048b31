package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc is a continuous per-frame animator callback.
// Returning false unregisters the animator.
type FrameFunc func(now time.Time, dt time.Duration) bool

// Handle identifies a registered animator or pending delayed callback
type Handle uint64

// HandleNone is the zero Handle; Cancel(HandleNone) is a no-op
const HandleNone Handle = 0

type frameEntry struct {
	id Handle
	fn FrameFunc
}

type delayedEntry struct {
	id Handle
	at time.Time // animation-time deadline
	fn func()
}

// FrameClock is the shared per-frame scheduling primitive all animators use.
// Continuous animators and delayed continuations run on animation time from
// a PausableClock: while paused nothing advances, and resuming continues
// from current state rather than restarting.
//
// Dispatch order is registration order. All callbacks run on the caller of
// Tick (single-threaded cooperative scheduling); callbacks may register,
// cancel, or schedule further work.
type FrameClock struct {
	mu     sync.Mutex
	clock  *PausableClock
	nextID uint64

	animators []frameEntry
	delayed   []delayedEntry

	lastTick time.Time // animation time of the previous Tick; zero before first

	interval time.Duration
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewFrameClock creates a frame clock driven by the given pausable clock.
// interval is the wall-clock frame pacing used by Run; tests that call Tick
// directly may pass any value.
func NewFrameClock(clock *PausableClock, interval time.Duration) *FrameClock {
	return &FrameClock{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Clock returns the underlying pausable clock
func (fc *FrameClock) Clock() *PausableClock {
	return fc.clock
}

// Now returns current animation time
func (fc *FrameClock) Now() time.Time {
	return fc.clock.Now()
}

// Animate registers a continuous per-frame animator
func (fc *FrameClock) Animate(fn FrameFunc) Handle {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.nextID++
	id := Handle(fc.nextID)
	fc.animators = append(fc.animators, frameEntry{id: id, fn: fn})
	return id
}

// After schedules fn to run once d of animation time has elapsed.
// A cooperative sleep: pausing the clock stretches the deadline.
func (fc *FrameClock) After(d time.Duration, fn func()) Handle {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.nextID++
	id := Handle(fc.nextID)
	fc.delayed = append(fc.delayed, delayedEntry{id: id, at: fc.clock.Now().Add(d), fn: fn})
	return id
}

// Cancel removes an animator or pending delayed callback
func (fc *FrameClock) Cancel(h Handle) {
	if h == HandleNone {
		return
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.removeLocked(h)
}

func (fc *FrameClock) removeLocked(h Handle) {
	for i, e := range fc.animators {
		if e.id == h {
			fc.animators = append(fc.animators[:i], fc.animators[i+1:]...)
			return
		}
	}
	for i, e := range fc.delayed {
		if e.id == h {
			fc.delayed = append(fc.delayed[:i], fc.delayed[i+1:]...)
			return
		}
	}
}

func (fc *FrameClock) registered(h Handle) bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for _, e := range fc.animators {
		if e.id == h {
			return true
		}
	}
	return false
}

// Pause suspends all scheduling without discarding logical state
func (fc *FrameClock) Pause() {
	fc.clock.Pause()
}

// Resume re-enables scheduling; animators continue from current state
func (fc *FrameClock) Resume() {
	fc.clock.Resume()
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	return fc.clock.IsPaused()
}

// Tick advances one frame: fires due delayed callbacks, then steps every
// registered animator. No-op while paused.
func (fc *FrameClock) Tick() {
	if fc.clock.IsPaused() {
		return
	}
	now := fc.clock.Now()

	fc.mu.Lock()
	if fc.lastTick.IsZero() {
		fc.lastTick = now
	}
	dt := now.Sub(fc.lastTick)
	fc.lastTick = now

	// Collect due delayed callbacks in schedule order
	var due []func()
	remaining := fc.delayed[:0]
	for _, e := range fc.delayed {
		if !e.at.After(now) {
			due = append(due, e.fn)
		} else {
			remaining = append(remaining, e)
		}
	}
	fc.delayed = remaining

	// Snapshot animators so callbacks can mutate registration
	anims := make([]frameEntry, len(fc.animators))
	copy(anims, fc.animators)
	fc.mu.Unlock()

	for _, fn := range due {
		fn()
	}

	for _, e := range anims {
		// A callback earlier in this frame may have cancelled this one
		if !fc.registered(e.id) {
			continue
		}
		if !e.fn(now, dt) {
			fc.Cancel(e.id)
		}
	}
}

// Run drives Tick on a wall-clock ticker until Stop is called
func (fc *FrameClock) Run() {
	if fc.running.CompareAndSwap(false, true) {
		fc.wg.Add(1)
		Go(func() {
			defer fc.wg.Done()
			ticker := time.NewTicker(fc.interval)
			defer ticker.Stop()
			for {
				select {
				case <-fc.stopChan:
					return
				case <-ticker.C:
					fc.Tick()
				}
			}
		})
	}
}

// Stop halts the Run loop
func (fc *FrameClock) Stop() {
	fc.stopOnce.Do(func() {
		if fc.running.CompareAndSwap(true, false) {
			close(fc.stopChan)
			fc.wg.Wait()
		}
	})
}

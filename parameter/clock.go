package parameter

import "time"

// Frame pacing for the real-time loop. Tests step the clock manually and
// ignore this.
const (
	FrameInterval = 16 * time.Millisecond // ~60 FPS

	// EventQueueSize must be a power of two (ring buffer mask arithmetic)
	EventQueueSize = 256
	EventQueueMask = EventQueueSize - 1
)

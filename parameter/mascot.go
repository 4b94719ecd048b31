package parameter

import "time"

// Mascot lifecycle and behavior tuning.
const (
	// SettleDelay covers both Entering -> Idle and Exiting -> Hidden
	SettleDelay = 300 * time.Millisecond

	// PupilTravel is the pupil offset as a fraction of socket radius
	PupilTravel = 0.25

	// Orbiter circling
	OrbitStep     = 0.045 // radians per frame
	OrbitBankGain = 18.0  // degrees of banking at cos(angle) = 1

	// Evader mini-game
	EvadeCatchTarget  = 3
	EvadeTimeDivisor  = 1.6  // seconds of noise-time per real second, inverted
	EvadeSpeedUp      = 0.72 // divisor multiplier per catch (smaller = faster)
	EvadeWobbleFreq   = 2.2  // rotation oscillation, radians per noise-time unit
	EvadeWobbleDegree = 14.0 // rotation oscillation amplitude

	// Prowl scripted traversal
	ProwlDuration     = 8000 * time.Millisecond
	ProwlBottomMargin = 0.1 // fraction of viewport height above the bottom edge

	// Idle/peek watchdog
	IdleDelay    = 15000 * time.Millisecond
	PeekDuration = 600 * time.Millisecond
)

package parameter

import "time"

// Transition sequencer phase timing and counter behavior.
const (
	LiftDuration    = 250 * time.Millisecond
	TravelDuration  = 400 * time.Millisecond
	InsertDuration  = 300 * time.Millisecond
	InsertSettle    = 100 * time.Millisecond
	EngageWait      = 200 * time.Millisecond
	SpinUpWait      = 400 * time.Millisecond
	ScanlineRoll    = 300 * time.Millisecond
	FlipCueDuration = 150 * time.Millisecond

	// Reveal progress runs 0..100 in per-frame steps
	RevealStep = 1.5
	HideStep   = 2.0

	// Counter display: floor(progress * CounterScale), clamped to [0,999];
	// eject rewinds in CounterRewindStep decrements
	CounterScale      = 9.99
	CounterMax        = 999
	CounterRewindStep = 20

	// Noise burst fired during Inserting
	InsertBurstDuration  = 200 * time.Millisecond
	InsertBurstIntensity = 0.4

	// Reel decoration speed-up while a section is engaged
	ReelBaseCycle  = 2400 * time.Millisecond
	ReelFastFactor = 0.35

	// Lift height as a fraction of the nav item's own height
	LiftHeightFactor = 1.2
)

// Package sound defines the playback hook the visual layer calls at defined
// points. Playback itself is outside the orchestration core: components hold
// a Player and call it best-effort; Nop is the default.
package sound

// Cue identifies a feedback sound
type Cue int

const (
	CueInsert Cue = iota
	CueEject
	CueCatch
	CueFactionSwitch
)

// Player plays short feedback cues. Implementations must never block the
// frame loop.
type Player interface {
	Play(cue Cue)
}

// Nop is the no-op hook used when audio is unavailable or disabled
type Nop struct{}

func (Nop) Play(Cue) {}

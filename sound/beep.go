package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const beepSampleRate = beep.SampleRate(44100)

// cue frequencies in Hz
var cueFreq = map[Cue]float64{
	CueInsert:        660,
	CueEject:         440,
	CueCatch:         880,
	CueFactionSwitch: 550,
}

// BeepPlayer plays sine-tone blips through the system speaker
type BeepPlayer struct {
	ready bool
}

// NewBeepPlayer initializes the speaker. Failure is non-fatal for callers:
// use Nop instead.
func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &BeepPlayer{ready: true}, nil
}

// Play implements Player
func (p *BeepPlayer) Play(cue Cue) {
	if !p.ready {
		return
	}
	freq, ok := cueFreq[cue]
	if !ok {
		return
	}
	tone, err := generators.SineTone(beepSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(beepSampleRate.N(50*time.Millisecond), tone))
}

// Close releases the speaker
func (p *BeepPlayer) Close() {
	if p.ready {
		p.ready = false
		speaker.Close()
	}
}

package transition

import (
	"math"
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
	"github.com/lixenwraith/cassette/sound"
	"github.com/lixenwraith/cassette/vmath"
)

// Burster triggers a noise burst; satisfied by *noise.Generator
type Burster interface {
	Burst(duration time.Duration, intensity float64)
}

// Indicator is the externally-visible current-location display
type Indicator interface {
	SetLocation(id string)
}

// Config wires the sequencer's collaborators. Every target is optional and
// degrades to a no-op when absent; absence is detected once here, never
// retried.
type Config struct {
	Clock     *engine.FrameClock
	Items     []*Item
	Slot      render.Node // deck slot the item inserts into
	Scanline  render.Node // full-width scanline-roll pulse
	Noise     Burster
	Display   Display
	Meter     MeterTarget
	Reels     []*Reel
	Indicator Indicator
	Navigate  func(targetHref string)
	Sound     sound.Player
	Hooks     Hooks
}

// Sequencer drives the phase machine. All state mutation happens on the
// frame loop; the session pointer doubles as the transition lock: it is set
// before Lifting begins and cleared only after the final phase resolves.
type Sequencer struct {
	clock     *engine.FrameClock
	items     []*Item
	slot      render.Node
	scan      render.Node
	noise     Burster
	counter   *Counter
	meter     *Meter
	reels     []*Reel
	indicator Indicator
	navigate  func(string)
	player    sound.Player
	hooks     Hooks

	session  *Session
	progress float64 // reveal progress, 0..100
}

// NewSequencer creates a sequencer over the given nav items
func NewSequencer(cfg Config) *Sequencer {
	slot := cfg.Slot
	if slot == nil {
		slot = render.NopNode{}
	}
	scan := cfg.Scanline
	if scan == nil {
		scan = render.NopNode{}
	}
	player := cfg.Sound
	if player == nil {
		player = sound.Nop{}
	}
	return &Sequencer{
		clock:     cfg.Clock,
		items:     cfg.Items,
		slot:      slot,
		scan:      scan,
		noise:     cfg.Noise,
		counter:   NewCounter(cfg.Clock, cfg.Display),
		meter:     NewMeter(cfg.Clock, cfg.Meter),
		reels:     cfg.Reels,
		indicator: cfg.Indicator,
		navigate:  cfg.Navigate,
		player:    player,
		hooks:     cfg.Hooks,
	}
}

// Transitioning reports whether a session is in flight
func (s *Sequencer) Transitioning() bool {
	return s.session != nil
}

// Phase returns the in-flight phase, or PhaseIdle
func (s *Sequencer) Phase() Phase {
	if s.session == nil {
		return PhaseIdle
	}
	return s.session.Phase
}

// Session returns the in-flight session, or nil
func (s *Sequencer) Session() *Session {
	return s.session
}

// Progress returns the reveal progress in [0,100]
func (s *Sequencer) Progress() float64 {
	return s.progress
}

// Counter exposes the digit animator
func (s *Sequencer) Counter() *Counter {
	return s.counter
}

// Meter exposes the level animator
func (s *Sequencer) Meter() *Meter {
	return s.meter
}

// Item returns the nav item with the given section id, or nil
func (s *Sequencer) Item(id string) *Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Loaded returns the currently loaded item, or nil
func (s *Sequencer) Loaded() *Item {
	for _, it := range s.items {
		if it.loaded {
			return it
		}
	}
	return nil
}

// Navigate requests a forward transition to the given section. Silently
// ignored (returns false, no state change) while a transition is in flight,
// when the section is unknown, or when it is already loaded.
func (s *Sequencer) Navigate(id string) bool {
	if s.session != nil {
		return false
	}
	item := s.Item(id)
	if item == nil || item.loaded {
		return false
	}

	s.session = &Session{Phase: PhaseLifting, Source: item, TargetHref: item.TargetHref}
	if s.hooks.OnLoadStart != nil {
		s.hooks.OnLoadStart(item.ID)
	}
	s.lift(item)
	return true
}

// tween drives step(frac) each frame for d, then calls then exactly once
func (s *Sequencer) tween(d time.Duration, step func(frac float64), then func()) {
	start := s.clock.Now()
	s.clock.Animate(func(now time.Time, _ time.Duration) bool {
		frac := float64(now.Sub(start)) / float64(d)
		if frac >= 1 {
			step(1)
			then()
			return false
		}
		step(frac)
		return true
	})
}

// lift visually detaches the item from its resting position
func (s *Sequencer) lift(item *Item) {
	rest := item.Node.Bounds()
	item.rest = rest
	liftY := rest.Y - rest.H*parameter.LiftHeightFactor

	s.tween(parameter.LiftDuration, func(frac float64) {
		item.Node.MoveTo(rest.X, vmath.Lerp(rest.Y, liftY, vmath.EaseOutBack(frac)))
	}, func() {
		s.travel(item)
	})
}

// travel moves the lifted item to the slot; bounds of both ends are read
// live at invocation time, never cached earlier
func (s *Sequencer) travel(item *Item) {
	s.session.Phase = PhaseTraveling
	from := item.Node.Bounds()
	to := s.slot.Bounds()

	s.tween(parameter.TravelDuration, func(frac float64) {
		t := vmath.EaseInOut(frac)
		item.Node.MoveTo(vmath.Lerp(from.X, to.X, t), vmath.Lerp(from.Y, to.Y, t))
	}, func() {
		s.insert(item)
	})
}

// insert fires the noise burst and scanline pulse concurrently while fading
// the moving item to transparent
func (s *Sequencer) insert(item *Item) {
	s.session.Phase = PhaseInserting
	if s.noise != nil {
		s.noise.Burst(parameter.InsertBurstDuration, parameter.InsertBurstIntensity)
	}
	s.player.Play(sound.CueInsert)

	s.scan.SetVisible(true)
	s.clock.After(parameter.ScanlineRoll, func() {
		s.scan.SetVisible(false)
	})

	s.tween(parameter.InsertDuration, func(frac float64) {
		item.Node.SetOpacity(1 - vmath.EaseIn(frac))
	}, func() {
		s.clock.After(parameter.InsertSettle, s.engage)
	})
}

// engage marks the slot mechanically active
func (s *Sequencer) engage() {
	s.session.Phase = PhaseEngaging
	s.slot.SetTag("engaged", true)
	s.clock.After(parameter.EngageWait, s.spinUp)
}

// spinUp accelerates the reel decorations and starts the meter
func (s *Sequencer) spinUp() {
	s.session.Phase = PhaseSpinningUp
	for _, r := range s.reels {
		r.SpeedUp()
	}
	s.meter.Start()
	s.clock.After(parameter.SpinUpWait, s.reveal)
}

// reveal drives the progress value 0 -> 100 in fixed per-frame increments,
// updating the counter each step
func (s *Sequencer) reveal() {
	s.session.Phase = PhaseRevealing
	s.progress = 0

	s.clock.Animate(func(_ time.Time, _ time.Duration) bool {
		s.progress += parameter.RevealStep
		if s.progress >= 100 {
			s.progress = 100
			s.counter.Set(counterValue(s.progress))
			s.complete()
			return false
		}
		s.counter.Set(counterValue(s.progress))
		return true
	})
}

// counterValue maps reveal progress to the 3-digit display value
func counterValue(progress float64) int {
	return int(math.Floor(progress * parameter.CounterScale))
}

// complete marks the destination loaded, clears all others, updates the
// location indicator, releases the lock, and issues the real navigation
func (s *Sequencer) complete() {
	src := s.session.Source
	href := s.session.TargetHref
	for _, it := range s.items {
		it.loaded = it == src
	}
	if s.indicator != nil {
		s.indicator.SetLocation(src.ID)
	}
	if s.hooks.OnLoadComplete != nil {
		s.hooks.OnLoadComplete(src.ID)
	}
	s.session = nil
	if s.navigate != nil {
		s.navigate(href)
	}
}

// Eject runs the mirror path back to home: spin down the decorations and
// rewind the counter, then reverse the content reveal. No-op unless exactly
// one item is loaded and no session is in flight.
func (s *Sequencer) Eject() bool {
	if s.session != nil {
		return false
	}
	loaded := s.Loaded()
	if loaded == nil {
		return false
	}

	s.session = &Session{Phase: PhaseSpinningDown, Source: loaded}
	s.player.Play(sound.CueEject)
	for _, r := range s.reels {
		r.Restore()
	}
	s.meter.Stop()

	// Rewind the counter toward 0, floored
	s.clock.Animate(func(_ time.Time, _ time.Duration) bool {
		v := s.counter.Value() - parameter.CounterRewindStep
		if v <= 0 {
			s.counter.Set(0)
			s.hideContent()
			return false
		}
		s.counter.Set(v)
		return true
	})
	return true
}

// hideContent reverses the reveal: progress 100 -> 0
func (s *Sequencer) hideContent() {
	s.session.Phase = PhaseHidingContent
	s.progress = 100

	s.clock.Animate(func(_ time.Time, _ time.Duration) bool {
		s.progress -= parameter.HideStep
		if s.progress <= 0 {
			s.progress = 0
			s.finishEject()
			return false
		}
		return true
	})
}

// finishEject clears the loaded flag, restores the ejected item to its
// resting position, and releases the lock
func (s *Sequencer) finishEject() {
	src := s.session.Source
	src.loaded = false
	s.slot.SetTag("engaged", false)
	src.Node.SetOpacity(1)
	src.Node.MoveTo(src.rest.X, src.rest.Y)
	if s.indicator != nil {
		s.indicator.SetLocation("")
	}
	s.session = nil
}

// Command cassette runs the decorative overlay demo in a terminal: the
// noise burst overlay, the mascot pool, and the cassette-deck navigation
// widget, all driven by one shared frame clock.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cassette/config"
	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/events"
	"github.com/lixenwraith/cassette/mascot"
	"github.com/lixenwraith/cassette/noise"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
	"github.com/lixenwraith/cassette/sound"
	"github.com/lixenwraith/cassette/theme"
	"github.com/lixenwraith/cassette/transition"
)

var (
	configFlag  = flag.String("config", "cassette.ini", "Path to INI configuration")
	reducedFlag = flag.Bool("reduced-motion", false, "Disable all animation")
	muteFlag    = flag.Bool("mute", false, "Disable sound cues")
)

var cassetteArt = []string{
	"┌──────┐",
	"│ ◉  ◉ │",
	"└──────┘",
}

var mascotArt = map[string][]string{
	"tracker": {" ▄▄▄ ", "(o o)", " ▀▀▀ "},
	"orbiter": {"<=>"},
	"evader":  {"(\\_/)", "(·ᴥ·)"},
}

func main() {
	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCASSETTE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *reducedFlag {
		cfg.ReducedMotion = true
	}
	if *muteFlag {
		cfg.Mute = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCASSETTE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	run(screen, cfg)
}

func run(screen tcell.Screen, cfg *config.Config) {
	w, h := screen.Size()
	vw, vh := float64(w), float64(h)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	fc := engine.NewFrameClock(clock, parameter.FrameInterval)

	queue := events.NewQueue()
	router := events.NewRouter(queue)

	// Reduced motion and tab visibility both gate the frame clock
	gate := &motionGate{fc: fc, reduced: cfg.ReducedMotion}
	router.Register(gate)
	if cfg.ReducedMotion {
		fc.Pause()
	}

	// Noise overlay
	noiseView := render.NewNoiseView()
	gen := noise.NewGenerator(fc, noiseView, w, h, uint64(time.Now().UnixNano()))
	router.Register(gen)

	// Sound hook
	var player sound.Player = sound.Nop{}
	if !cfg.Mute {
		if bp, err := sound.NewBeepPlayer(); err == nil {
			player = bp
			defer bp.Close()
		}
	}

	scene := &render.Scene{}

	// Deck widgets
	deckStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	slot := render.NewSprite([]string{"╔════════╗", "║  DECK  ║", "╚════════╝"}, deckStyle)
	slot.MoveTo(vw/2-5, 2)
	slot.SetVisible(true)
	scanRow := make([]rune, w)
	for i := range scanRow {
		scanRow[i] = '─'
	}
	scanline := render.NewSprite([]string{string(scanRow)}, deckStyle)
	scanline.MoveTo(0, 5)
	scene.Add(scanline)
	counterView := render.NewCounterView(w-8, 2, deckStyle)
	meterView := render.NewMeterView(w-8, 3, 6, deckStyle)
	locationView := render.NewLocationView(2, 1, deckStyle)
	locationView.SetLocation("")

	reelL := render.NewSprite([]string{"◴"}, deckStyle)
	reelL.MoveTo(vw/2-8, 3)
	reelL.SetVisible(true)
	reelR := render.NewSprite([]string{"◴"}, deckStyle)
	reelR.MoveTo(vw/2+7, 3)
	reelR.SetVisible(true)
	reels := []*transition.Reel{
		transition.NewReel(fc, reelL),
		transition.NewReel(fc, reelR),
	}
	for _, r := range reels {
		r.Start()
	}
	scene.Add(slot, reelL, reelR)

	// Nav items
	itemStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	var items []*transition.Item
	for i, ni := range cfg.Items {
		sp := render.NewSprite(cassetteArt, itemStyle)
		sp.MoveTo(4+float64(i)*12, vh-5)
		sp.SetVisible(true)
		scene.Add(sp)
		items = append(items, transition.NewItem(ni.ID, ni.Href, sp))
	}

	// Mascots
	var pool []*mascot.Mascot
	var tracker, orbiter, evader *mascot.Mascot
	for _, mc := range cfg.Mascots {
		art, ok := mascotArt[mc.Kind]
		if !ok {
			continue
		}
		sp := render.NewSprite(art, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		scene.Add(sp)
		var kind mascot.Kind
		switch mc.Kind {
		case "orbiter":
			kind = mascot.KindOrbiter
		case "evader":
			kind = mascot.KindEvader
		default:
			kind = mascot.KindTracker
		}
		m := mascot.New(kind, sp, fc)
		m.SetViewport(vw, vh)
		switch kind {
		case mascot.KindTracker:
			tracker = m
		case mascot.KindOrbiter:
			orbiter = m
		case mascot.KindEvader:
			evader = m
		}
		pool = append(pool, m)
	}
	if tracker != nil {
		lp := render.NewSprite([]string{"●"}, itemStyle)
		rp := render.NewSprite([]string{"●"}, itemStyle)
		lp.SetVisible(true)
		rp.SetVisible(true)
		scene.Add(lp, rp)
		tracker.SetEyes([]mascot.Eye{
			{CX: vw/2 - 3, CY: vh / 2, R: 2, Pupil: lp},
			{CX: vw/2 + 3, CY: vh / 2, R: 2, Pupil: rp},
		})
		router.Register(mascot.NewPointerHandler(tracker))
	}

	scheduler := mascot.NewScheduler(fc, pool, mascot.DefaultEdges(vw, vh), uint64(time.Now().UnixNano())|1)
	router.Register(scheduler)
	scheduler.Start()

	// Faction preference
	store := theme.NewFileStore(cfg.SettingsPath)
	factions := theme.Load(store, func(f theme.Faction) {
		slot.SetTag("omega", f == theme.FactionOmega)
	}, func() {
		gen.Burst(150*time.Millisecond, 0.25)
		player.Play(sound.CueFactionSwitch)
	})

	seq := transition.NewSequencer(transition.Config{
		Clock:     fc,
		Items:     items,
		Slot:      slot,
		Scanline:  scanline,
		Noise:     gen,
		Display:   counterView,
		Meter:     meterView,
		Reels:     reels,
		Indicator: locationView,
		Sound:     player,
		Navigate: func(href string) {
			// A real site issues a full-page navigation here; the demo
			// only shows the destination in the location view
			_ = href
		},
		Hooks: transition.Hooks{
			OnLoadStart: func(string) {
				if orbiter != nil {
					orbiter.StartLoading(vw/2, vh/2, 8)
				}
			},
			OnLoadComplete: func(string) {
				if orbiter != nil {
					orbiter.StopLoading()
				}
			},
		},
	})

	// Command bindings run on the frame loop via the router, after the
	// scheduler has seen the same activity event
	var sectionIDs []string
	for _, ni := range cfg.Items {
		sectionIDs = append(sectionIDs, ni.ID)
	}
	router.Register(&commands{
		queue:    queue,
		seq:      seq,
		factions: factions,
		tracker:  tracker,
		evader:   evader,
		player:   player,
		sections: sectionIDs,
		reduced:  cfg.ReducedMotion,
	})

	// Input: poll tcell events into the queue from a dedicated goroutine
	quit := make(chan struct{})
	engine.Go(func() {
		pollInput(screen, queue, quit)
	})

	// Frame loop
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			fc.Tick()
			router.DispatchAll()

			screen.Clear()
			scene.Draw(screen)
			counterView.Draw(screen)
			meterView.Draw(screen)
			locationView.Draw(screen)
			noiseView.Draw(screen)
			screen.Show()
		}
	}
}

// pollInput forwards tcell events into the queue. It never touches animator
// state: commands take effect when the frame loop dispatches them.
func pollInput(screen tcell.Screen, queue *events.Queue, quit chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(quit)
			return
		}
		now := time.Now()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC {
				close(quit)
				return
			}
			kev := events.Event{Type: events.EventKeyPressed, Timestamp: now}
			if tev.Key() == tcell.KeyRune {
				kev.Payload = &events.KeyPayload{Rune: tev.Rune()}
			}
			queue.Push(kev)
		case *tcell.EventMouse:
			x, y := tev.Position()
			if tev.Buttons()&tcell.ButtonPrimary != 0 {
				queue.Push(events.Event{
					Type:      events.EventClicked,
					Payload:   &events.PointerPayload{X: float64(x), Y: float64(y)},
					Timestamp: now,
				})
			} else if tev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
				queue.Push(events.Event{Type: events.EventScrolled, Timestamp: now})
			} else {
				queue.Push(events.Event{
					Type:      events.EventPointerMoved,
					Payload:   &events.PointerPayload{X: float64(x), Y: float64(y)},
					Timestamp: now,
				})
			}
		case *tcell.EventResize:
			nw, nh := tev.Size()
			queue.Push(events.Event{
				Type:      events.EventResized,
				Payload:   &events.ResizePayload{Width: nw, Height: nh},
				Timestamp: now,
			})
			screen.Sync()
		case *tcell.EventFocus:
			// Tab-visibility analogue: the gate pauses all animators while
			// the terminal is unfocused
			queue.Push(events.Event{
				Type:      events.EventVisibilityChanged,
				Payload:   &events.VisibilityPayload{Visible: tev.Focused},
				Timestamp: now,
			})
		}
	}
}

// motionGate pauses the frame clock while the surface is hidden or the
// reduced-motion preference is on, and resumes when both clear
type motionGate struct {
	fc      *engine.FrameClock
	reduced bool
	hidden  bool
}

func (g *motionGate) HandleEvent(ev events.Event) {
	switch p := ev.Payload.(type) {
	case *events.VisibilityPayload:
		g.hidden = !p.Visible
	case *events.MotionPrefPayload:
		g.reduced = p.Reduced
	}
	if g.hidden || g.reduced {
		g.fc.Pause()
	} else {
		g.fc.Resume()
	}
}

func (g *motionGate) EventTypes() []events.EventType {
	return []events.EventType{events.EventVisibilityChanged, events.EventMotionPrefChanged}
}

// commands binds key and click events to deck and mascot actions. Dispatch
// runs on the frame loop goroutine, so sequencer and mascot state is only
// ever mutated between Ticks.
type commands struct {
	queue    *events.Queue
	seq      *transition.Sequencer
	factions *theme.Manager
	tracker  *mascot.Mascot
	evader   *mascot.Mascot
	player   sound.Player
	sections []string
	reduced  bool
}

func (c *commands) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventKeyPressed:
		if p, ok := ev.Payload.(*events.KeyPayload); ok {
			c.key(p.Rune)
		}
	case events.EventClicked:
		if p, ok := ev.Payload.(*events.PointerPayload); ok {
			c.click(p.X, p.Y)
		}
	}
}

func (c *commands) key(r rune) {
	switch r {
	case 'f':
		_ = c.factions.Toggle()
	case 'e':
		c.seq.Eject()
	case 't':
		if c.tracker != nil {
			c.tracker.Show()
			c.tracker.StartTracking()
		}
	case 'p':
		if c.tracker != nil {
			c.tracker.Prowl(true)
		}
	case 'g':
		if c.evader != nil {
			c.evader.StartEvading(nil)
		}
	case 'm':
		// The gate consumes this on the next dispatch cycle
		c.reduced = !c.reduced
		c.queue.Push(events.Event{
			Type:      events.EventMotionPrefChanged,
			Payload:   &events.MotionPrefPayload{Reduced: c.reduced},
			Timestamp: time.Now(),
		})
	default:
		if r >= '1' && r <= '9' {
			if idx := int(r - '1'); idx < len(c.sections) {
				c.seq.Navigate(c.sections[idx])
			}
		}
	}
}

// click runs the evader hit test; misses only count as scheduler activity
func (c *commands) click(x, y float64) {
	if c.evader == nil || !c.evader.Evading() {
		return
	}
	ex, ey := c.evader.Position()
	if math.Abs(ex-x) < 4 && math.Abs(ey-y) < 3 {
		c.evader.Catch()
		c.player.Play(sound.CueCatch)
	}
}

func (c *commands) EventTypes() []events.EventType {
	return []events.EventType{events.EventKeyPressed, events.EventClicked}
}

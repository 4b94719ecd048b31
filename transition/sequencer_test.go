package transition

import (
	"testing"
	"time"

	"github.com/lixenwraith/cassette/engine"
	"github.com/lixenwraith/cassette/parameter"
	"github.com/lixenwraith/cassette/render"
	"github.com/lixenwraith/cassette/sound"
)

// testNode records Node mutations for assertions
type testNode struct {
	x, y    float64
	rot     float64
	opacity float64
	visible bool
	tags    map[string]bool
	w, h    float64
}

func newTestNode(x, y float64) *testNode {
	return &testNode{x: x, y: y, opacity: 1, tags: make(map[string]bool), w: 8, h: 3}
}

func (n *testNode) MoveTo(x, y float64)         { n.x, n.y = x, y }
func (n *testNode) RotateTo(deg float64)        { n.rot = deg }
func (n *testNode) SetOpacity(a float64)        { n.opacity = a }
func (n *testNode) SetVisible(v bool)           { n.visible = v }
func (n *testNode) SetTag(name string, on bool) { n.tags[name] = on }
func (n *testNode) Bounds() render.Rect         { return render.Rect{X: n.x, Y: n.y, W: n.w, H: n.h} }

type recordDisplay struct {
	digits    [3]int
	setCalls  []int // positions, in call order
	flipCalls []int // positions receiving a flip-on cue
	flipping  [3]bool
}

func (d *recordDisplay) SetDigit(pos, digit int) {
	d.digits[pos] = digit
	d.setCalls = append(d.setCalls, pos)
}

func (d *recordDisplay) SetFlipping(pos int, on bool) {
	d.flipping[pos] = on
	if on {
		d.flipCalls = append(d.flipCalls, pos)
	}
}

type recordMeter struct {
	levels []float64
}

func (m *recordMeter) SetLevel(level float64) { m.levels = append(m.levels, level) }

type recordIndicator struct {
	locations []string
}

func (i *recordIndicator) SetLocation(id string) { i.locations = append(i.locations, id) }

type recordBurster struct {
	durations   []time.Duration
	intensities []float64
}

func (b *recordBurster) Burst(d time.Duration, intensity float64) {
	b.durations = append(b.durations, d)
	b.intensities = append(b.intensities, intensity)
}

type recordPlayer struct {
	cues []sound.Cue
}

func (p *recordPlayer) Play(c sound.Cue) { p.cues = append(p.cues, c) }

type harness struct {
	fc  *engine.FrameClock
	tp  *engine.MockTimeProvider
	seq *Sequencer

	work, about *testNode
	slot        *testNode
	scanline    *testNode
	display     *recordDisplay
	meter       *recordMeter
	indicator   *recordIndicator
	burster     *recordBurster
	player      *recordPlayer

	navigated  []string
	loadStart  []string
	loadDone   []string
	phasesSeen []Phase
}

func newHarness() *harness {
	tp := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fc := engine.NewFrameClock(engine.NewPausableClock(tp), 16*time.Millisecond)
	fc.Tick()

	h := &harness{
		fc: fc, tp: tp,
		work:      newTestNode(10, 40),
		about:     newTestNode(25, 40),
		slot:      newTestNode(35, 5),
		scanline:  newTestNode(0, 8),
		display:   &recordDisplay{},
		meter:     &recordMeter{},
		indicator: &recordIndicator{},
		burster:   &recordBurster{},
		player:    &recordPlayer{},
	}

	h.seq = NewSequencer(Config{
		Clock:     fc,
		Items:     []*Item{NewItem("work", "/work", h.work), NewItem("about", "/about", h.about)},
		Slot:      h.slot,
		Scanline:  h.scanline,
		Noise:     h.burster,
		Display:   h.display,
		Meter:     h.meter,
		Reels:     []*Reel{NewReel(fc, newTestNode(30, 5)), NewReel(fc, newTestNode(45, 5))},
		Indicator: h.indicator,
		Sound:     h.player,
		Navigate:  func(href string) { h.navigated = append(h.navigated, href) },
		Hooks: Hooks{
			OnLoadStart:    func(id string) { h.loadStart = append(h.loadStart, id) },
			OnLoadComplete: func(id string) { h.loadDone = append(h.loadDone, id) },
		},
	})
	return h
}

// step ticks frames for d, recording each distinct phase as it appears
func (h *harness) step(d time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		h.tp.Advance(frame)
		h.fc.Tick()
		p := h.seq.Phase()
		if len(h.phasesSeen) == 0 || h.phasesSeen[len(h.phasesSeen)-1] != p {
			h.phasesSeen = append(h.phasesSeen, p)
		}
	}
}

// runToIdle steps until the session resolves, bounded to avoid hangs
func (h *harness) runToIdle(t *testing.T) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !h.seq.Transitioning() {
			return
		}
		h.step(16 * time.Millisecond)
	}
	t.Fatalf("Session never resolved; stuck in %v", h.seq.Phase())
}

// ============================================================================
// Forward Sequence
// ============================================================================

// TestForwardSequencePhaseOrder tests the full insert sequence visits every
// phase in its defined order and ends with the destination loaded
func TestForwardSequencePhaseOrder(t *testing.T) {
	h := newHarness()

	if !h.seq.Navigate("work") {
		t.Fatal("Navigate returned false")
	}
	if h.seq.Phase() != PhaseLifting {
		t.Fatalf("Phase after Navigate = %v, want lifting", h.seq.Phase())
	}
	h.phasesSeen = []Phase{PhaseLifting}

	h.runToIdle(t)

	want := []Phase{
		PhaseLifting, PhaseTraveling, PhaseInserting,
		PhaseEngaging, PhaseSpinningUp, PhaseRevealing, PhaseIdle,
	}
	if len(h.phasesSeen) != len(want) {
		t.Fatalf("Phase sequence = %v, want %v", h.phasesSeen, want)
	}
	for i := range want {
		if h.phasesSeen[i] != want[i] {
			t.Fatalf("Phase sequence = %v, want %v", h.phasesSeen, want)
		}
	}

	if !h.seq.Item("work").Loaded() {
		t.Error("Destination not marked loaded")
	}
	if h.seq.Item("about").Loaded() {
		t.Error("Non-destination marked loaded")
	}
	if len(h.navigated) != 1 || h.navigated[0] != "/work" {
		t.Errorf("Navigate calls = %v, want exactly [/work]", h.navigated)
	}
	t.Logf("✓ Phases ran in order: %v", h.phasesSeen)
}

// TestForwardSequenceSideEffects tests the per-phase collaborator calls
func TestForwardSequenceSideEffects(t *testing.T) {
	h := newHarness()
	baseCycle := h.seq.reels[0].Cycle()

	h.seq.Navigate("work")

	// Lifting: the item rises from its resting position
	restY := 40.0
	h.step(parameter.LiftDuration + 32*time.Millisecond)
	if h.work.y >= restY {
		t.Errorf("Item y = %v after lift, want above %v", h.work.y, restY)
	}

	// Traveling lands the item on the slot
	h.step(parameter.TravelDuration + 32*time.Millisecond)
	if h.work.x != h.slot.x || h.work.y != h.slot.y {
		t.Errorf("Item at (%v,%v) after travel, slot at (%v,%v)", h.work.x, h.work.y, h.slot.x, h.slot.y)
	}

	// Inserting: one noise burst, insert cue, scanline pulse, opacity fade
	if len(h.burster.durations) != 1 || h.burster.durations[0] != parameter.InsertBurstDuration {
		t.Errorf("Burst durations = %v, want [%v]", h.burster.durations, parameter.InsertBurstDuration)
	}
	if len(h.burster.intensities) != 1 || h.burster.intensities[0] != parameter.InsertBurstIntensity {
		t.Errorf("Burst intensities = %v, want [%v]", h.burster.intensities, parameter.InsertBurstIntensity)
	}
	if len(h.player.cues) != 1 || h.player.cues[0] != sound.CueInsert {
		t.Errorf("Sound cues = %v, want [CueInsert]", h.player.cues)
	}
	if !h.scanline.visible {
		t.Error("Scanline not visible during insert")
	}

	h.step(parameter.InsertDuration + parameter.InsertSettle + 32*time.Millisecond)
	if h.work.opacity != 0 {
		t.Errorf("Item opacity after insert = %v, want 0", h.work.opacity)
	}
	if h.scanline.visible {
		t.Error("Scanline still visible after its roll duration")
	}

	// Engaging flags the slot
	if !h.slot.tags["engaged"] {
		t.Error("Slot not tagged engaged")
	}

	// SpinningUp accelerates reels and starts the meter
	h.step(parameter.EngageWait + parameter.SpinUpWait + 32*time.Millisecond)
	if got := h.seq.reels[0].Cycle(); got >= baseCycle {
		t.Errorf("Reel cycle = %v after spin-up, want below %v", got, baseCycle)
	}
	if !h.seq.Meter().Running() {
		t.Error("Meter not running after spin-up")
	}

	// Revealing drives the counter to its ceiling
	h.runToIdle(t)
	if h.seq.Counter().Value() != parameter.CounterMax {
		t.Errorf("Counter = %d after reveal, want %d", h.seq.Counter().Value(), parameter.CounterMax)
	}
	if h.seq.Progress() != 100 {
		t.Errorf("Progress = %v, want 100", h.seq.Progress())
	}

	// Completion notifies the indicator and hooks once each
	if len(h.indicator.locations) != 1 || h.indicator.locations[0] != "work" {
		t.Errorf("Indicator updates = %v, want [work]", h.indicator.locations)
	}
	if len(h.loadStart) != 1 || h.loadStart[0] != "work" {
		t.Errorf("OnLoadStart calls = %v, want [work]", h.loadStart)
	}
	if len(h.loadDone) != 1 || h.loadDone[0] != "work" {
		t.Errorf("OnLoadComplete calls = %v, want [work]", h.loadDone)
	}
}

// TestNavigateRejectedWhileInFlight tests the session lock: a second request
// is refused with no observable state change
func TestNavigateRejectedWhileInFlight(t *testing.T) {
	h := newHarness()

	h.seq.Navigate("work")
	h.step(parameter.LiftDuration / 2)

	sess := h.seq.Session()
	if h.seq.Navigate("about") {
		t.Fatal("Second Navigate succeeded mid-transition")
	}
	if h.seq.Session() != sess {
		t.Error("Session changed on a rejected Navigate")
	}
	if len(h.loadStart) != 1 {
		t.Errorf("OnLoadStart calls = %d after rejection, want 1", len(h.loadStart))
	}

	h.runToIdle(t)
	if !h.seq.Item("work").Loaded() {
		t.Error("Original transition corrupted by the rejected request")
	}
	if len(h.navigated) != 1 {
		t.Errorf("Navigate calls = %d, want 1", len(h.navigated))
	}
}

// TestNavigateUnknownSection tests unknown ids are refused
func TestNavigateUnknownSection(t *testing.T) {
	h := newHarness()

	if h.seq.Navigate("missing") {
		t.Error("Navigate to unknown section succeeded")
	}
	if h.seq.Transitioning() {
		t.Error("Session created for unknown section")
	}
}

// TestNavigateAlreadyLoaded tests re-requesting the loaded section is a no-op
func TestNavigateAlreadyLoaded(t *testing.T) {
	h := newHarness()

	h.seq.Navigate("work")
	h.runToIdle(t)

	if h.seq.Navigate("work") {
		t.Error("Navigate to the already-loaded section succeeded")
	}
	if len(h.navigated) != 1 {
		t.Errorf("Navigate calls = %d, want 1", len(h.navigated))
	}
}

// ============================================================================
// Eject
// ============================================================================

// TestEjectMirrorSequence tests the reverse path: counter rewind, content
// hide, and full restoration of the ejected item
func TestEjectMirrorSequence(t *testing.T) {
	h := newHarness()

	h.seq.Navigate("work")
	h.runToIdle(t)
	baseCycle := parameter.ReelBaseCycle

	h.phasesSeen = nil
	if !h.seq.Eject() {
		t.Fatal("Eject returned false with a loaded section")
	}
	if h.seq.Phase() != PhaseSpinningDown {
		t.Fatalf("Phase after Eject = %v, want spinning-down", h.seq.Phase())
	}
	if len(h.player.cues) != 2 || h.player.cues[1] != sound.CueEject {
		t.Errorf("Sound cues = %v, want trailing CueEject", h.player.cues)
	}
	if h.seq.reels[0].Cycle() != baseCycle {
		t.Errorf("Reel cycle = %v on eject, want restored %v", h.seq.reels[0].Cycle(), baseCycle)
	}
	if h.seq.Meter().Running() {
		t.Error("Meter still running after eject started")
	}

	h.phasesSeen = []Phase{PhaseSpinningDown}
	h.runToIdle(t)

	want := []Phase{PhaseSpinningDown, PhaseHidingContent, PhaseIdle}
	if len(h.phasesSeen) != len(want) {
		t.Fatalf("Eject phases = %v, want %v", h.phasesSeen, want)
	}
	for i := range want {
		if h.phasesSeen[i] != want[i] {
			t.Fatalf("Eject phases = %v, want %v", h.phasesSeen, want)
		}
	}

	if h.seq.Counter().Value() != 0 {
		t.Errorf("Counter after eject = %d, want 0", h.seq.Counter().Value())
	}
	if h.seq.Item("work").Loaded() {
		t.Error("Item still loaded after eject")
	}
	if h.slot.tags["engaged"] {
		t.Error("Slot still engaged after eject")
	}
	if h.work.opacity != 1 {
		t.Errorf("Item opacity = %v after eject, want 1", h.work.opacity)
	}
	if h.work.x != 10 || h.work.y != 40 {
		t.Errorf("Item at (%v,%v), want restored to (10,40)", h.work.x, h.work.y)
	}
	last := h.indicator.locations[len(h.indicator.locations)-1]
	if last != "" {
		t.Errorf("Final indicator = %q, want empty (home)", last)
	}
	t.Logf("✓ Eject restored the item and released the lock")
}

// TestEjectWithoutLoadedSection tests eject requires a loaded section
func TestEjectWithoutLoadedSection(t *testing.T) {
	h := newHarness()

	if h.seq.Eject() {
		t.Error("Eject succeeded with nothing loaded")
	}
}

// TestEjectRejectedWhileTransitioning tests the shared session lock covers
// both directions
func TestEjectRejectedWhileTransitioning(t *testing.T) {
	h := newHarness()

	h.seq.Navigate("work")
	h.step(parameter.LiftDuration / 2)

	if h.seq.Eject() {
		t.Error("Eject succeeded mid-transition")
	}
	h.runToIdle(t)
}

// TestNavigateAfterEject tests a full load-eject-load cycle
func TestNavigateAfterEject(t *testing.T) {
	h := newHarness()

	h.seq.Navigate("work")
	h.runToIdle(t)
	h.seq.Eject()
	h.runToIdle(t)

	if !h.seq.Navigate("about") {
		t.Fatal("Navigate after eject failed")
	}
	h.runToIdle(t)

	if !h.seq.Item("about").Loaded() {
		t.Error("Second destination not loaded")
	}
	if h.seq.Item("work").Loaded() {
		t.Error("First destination still loaded")
	}
	if len(h.navigated) != 2 || h.navigated[1] != "/about" {
		t.Errorf("Navigate calls = %v, want [/work /about]", h.navigated)
	}
}

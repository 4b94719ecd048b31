package fsm

import (
	"testing"
	"time"
)

const (
	stIdle StateID = iota + 1
	stRunning
	stDone
)

const (
	trStart Trigger = iota + 1
	trFinish
	trRestart
)

type testCtx struct {
	log     []string
	allowed bool
}

func (c *testCtx) record(s string) { c.log = append(c.log, s) }

func buildTestMachine() *Machine[*testCtx] {
	m := NewMachine[*testCtx]()
	m.AddState(&State[*testCtx]{
		ID: stIdle, Name: "idle",
		OnEnter: func(c *testCtx) { c.record("enter:idle") },
		OnExit:  func(c *testCtx) { c.record("exit:idle") },
		Transitions: []Transition[*testCtx]{
			{Trigger: trStart, Target: stRunning},
		},
	})
	m.AddState(&State[*testCtx]{
		ID: stRunning, Name: "running",
		OnEnter: func(c *testCtx) { c.record("enter:running") },
		OnExit:  func(c *testCtx) { c.record("exit:running") },
		Transitions: []Transition[*testCtx]{
			{Trigger: trFinish, Target: stDone, Guard: func(c *testCtx) bool { return c.allowed }},
			{Trigger: TriggerTick, Target: stDone, After: 500 * time.Millisecond},
		},
	})
	m.AddState(&State[*testCtx]{
		ID: stDone, Name: "done",
		OnEnter: func(c *testCtx) { c.record("enter:done") },
		Transitions: []Transition[*testCtx]{
			{Trigger: trRestart, Target: stIdle},
		},
	})
	return m
}

// TestInitRunsOnEnter tests initialization enters the initial state
func TestInitRunsOnEnter(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()

	if err := m.Init(ctx, stIdle); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if m.Current() != stIdle {
		t.Errorf("Current = %v, want stIdle", m.Current())
	}
	if m.CurrentName() != "idle" {
		t.Errorf("CurrentName = %q, want idle", m.CurrentName())
	}
	if len(ctx.log) != 1 || ctx.log[0] != "enter:idle" {
		t.Errorf("Init log = %v, want [enter:idle]", ctx.log)
	}
}

// TestInitUnknownState tests initializing to an unregistered state fails
func TestInitUnknownState(t *testing.T) {
	m := buildTestMachine()
	if err := m.Init(&testCtx{}, StateID(99)); err == nil {
		t.Error("Init with unknown state succeeded, want error")
	}
}

// TestFireTransition tests OnExit/OnEnter ordering during a transition
func TestFireTransition(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)
	ctx.log = nil

	if !m.Fire(ctx, trStart) {
		t.Fatal("Fire(trStart) = false, want transition")
	}
	if m.Current() != stRunning {
		t.Errorf("Current = %v, want stRunning", m.Current())
	}

	want := []string{"exit:idle", "enter:running"}
	if len(ctx.log) != 2 || ctx.log[0] != want[0] || ctx.log[1] != want[1] {
		t.Errorf("Transition log = %v, want %v", ctx.log, want)
	}
}

// TestFireUndefinedTrigger tests unrouted triggers are ignored
func TestFireUndefinedTrigger(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)

	if m.Fire(ctx, trFinish) {
		t.Error("Fire(trFinish) from idle succeeded; idle defines no such edge")
	}
	if m.Current() != stIdle {
		t.Errorf("State changed on undefined trigger: %v", m.Current())
	}
}

// TestGuardBlocksTransition tests a failing guard holds the state
func TestGuardBlocksTransition(t *testing.T) {
	ctx := &testCtx{allowed: false}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)
	m.Fire(ctx, trStart)

	if m.Fire(ctx, trFinish) {
		t.Error("Guarded transition fired with a false guard")
	}

	ctx.allowed = true
	if !m.Fire(ctx, trFinish) {
		t.Error("Guarded transition blocked with a true guard")
	}
	if m.Current() != stDone {
		t.Errorf("Current = %v, want stDone", m.Current())
	}
}

// TestAutoTransitionAfter tests time-gated TriggerTick edges
func TestAutoTransitionAfter(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)
	m.Fire(ctx, trStart)

	// Under the gate: no transition
	m.Update(ctx, 300*time.Millisecond)
	if m.Current() != stRunning {
		t.Fatalf("Auto transition fired early at 300ms, gate is 500ms")
	}

	// Crossing the gate
	m.Update(ctx, 250*time.Millisecond)
	if m.Current() != stDone {
		t.Errorf("Current = %v after 550ms, want stDone", m.Current())
	}
}

// TestTimeInStateResets tests the in-state timer resets on transition
func TestTimeInStateResets(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)

	m.Update(ctx, 2*time.Second)
	if m.TimeInState() != 2*time.Second {
		t.Errorf("TimeInState = %v, want 2s", m.TimeInState())
	}

	m.Fire(ctx, trStart)
	if m.TimeInState() != 0 {
		t.Errorf("TimeInState after transition = %v, want 0", m.TimeInState())
	}
}

// TestFireTriggerTickRejected tests TriggerTick cannot be fired externally
func TestFireTriggerTickRejected(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)

	if m.Fire(ctx, TriggerTick) {
		t.Error("Fire(TriggerTick) succeeded; tick edges are Update-only")
	}
}

// TestReset tests returning to the initial state with actions
func TestReset(t *testing.T) {
	ctx := &testCtx{allowed: true}
	m := buildTestMachine()
	_ = m.Init(ctx, stIdle)
	m.Fire(ctx, trStart)
	m.Fire(ctx, trFinish)
	ctx.log = nil

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if m.Current() != stIdle {
		t.Errorf("Current after reset = %v, want stIdle", m.Current())
	}
	if len(ctx.log) == 0 || ctx.log[len(ctx.log)-1] != "enter:idle" {
		t.Errorf("Reset log = %v, want trailing enter:idle", ctx.log)
	}
}

// TestUninitializedMachineInert tests Update/Fire are safe before Init
func TestUninitializedMachineInert(t *testing.T) {
	ctx := &testCtx{}
	m := buildTestMachine()

	m.Update(ctx, time.Second)
	if m.Fire(ctx, trStart) {
		t.Error("Fire succeeded on uninitialized machine")
	}
	if m.Current() != StateNone {
		t.Errorf("Current = %v, want StateNone", m.Current())
	}
	t.Logf("✓ Machine is inert before Init")
}

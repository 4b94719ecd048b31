package theme

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaultsWhenAbsent tests the default applies with an empty store
func TestLoadDefaultsWhenAbsent(t *testing.T) {
	var applied []Faction
	m := Load(NewMemStore(), func(f Faction) { applied = append(applied, f) }, nil)

	if m.Faction() != DefaultFaction {
		t.Errorf("Faction = %v, want default %v", m.Faction(), DefaultFaction)
	}
	if len(applied) != 1 || applied[0] != DefaultFaction {
		t.Errorf("Apply calls = %v, want [%v] at load", applied, DefaultFaction)
	}
}

// TestLoadIgnoresInvalidStoredValue tests unknown stored values fall back
// silently
func TestLoadIgnoresInvalidStoredValue(t *testing.T) {
	store := NewMemStore()
	_ = store.Write(PreferenceKey, "chartreuse")

	m := Load(store, nil, nil)
	if m.Faction() != DefaultFaction {
		t.Errorf("Faction = %v for invalid stored value, want %v", m.Faction(), DefaultFaction)
	}
}

// TestLoadRestoresStoredPreference tests persistence across sessions
func TestLoadRestoresStoredPreference(t *testing.T) {
	store := NewMemStore()
	_ = store.Write(PreferenceKey, string(FactionOmega))

	m := Load(store, nil, nil)
	if m.Faction() != FactionOmega {
		t.Errorf("Faction = %v, want stored %v", m.Faction(), FactionOmega)
	}
}

// TestLoadNeverFiresFeedback tests feedback is reserved for user toggles
func TestLoadNeverFiresFeedback(t *testing.T) {
	store := NewMemStore()
	_ = store.Write(PreferenceKey, string(FactionOmega))

	feedbacks := 0
	Load(store, nil, func() { feedbacks++ })
	if feedbacks != 0 {
		t.Errorf("Feedback fired %d times at load, want 0", feedbacks)
	}
}

// TestSetFactionPersistsAndApplies tests the full switch path
func TestSetFactionPersistsAndApplies(t *testing.T) {
	store := NewMemStore()
	var applied []Faction
	feedbacks := 0
	m := Load(store, func(f Faction) { applied = append(applied, f) }, func() { feedbacks++ })

	if err := m.SetFaction(FactionOmega); err != nil {
		t.Fatalf("SetFaction failed: %v", err)
	}
	if m.Faction() != FactionOmega {
		t.Errorf("Faction = %v, want %v", m.Faction(), FactionOmega)
	}
	if v, ok := store.Read(PreferenceKey); !ok || v != string(FactionOmega) {
		t.Errorf("Stored value = %q (%v), want %q", v, ok, FactionOmega)
	}
	if len(applied) != 2 || applied[1] != FactionOmega {
		t.Errorf("Apply calls = %v, want load default then omega", applied)
	}
	if feedbacks != 1 {
		t.Errorf("Feedback fired %d times, want 1", feedbacks)
	}
}

// TestSetFactionIdempotent tests re-setting the current faction is silent
func TestSetFactionIdempotent(t *testing.T) {
	store := NewMemStore()
	feedbacks := 0
	m := Load(store, nil, func() { feedbacks++ })

	_ = m.SetFaction(FactionOmega)
	_ = m.SetFaction(FactionOmega)
	_ = m.SetFaction(FactionOmega)

	if feedbacks != 1 {
		t.Errorf("Feedback fired %d times for repeated sets, want 1", feedbacks)
	}
	t.Logf("✓ Repeated SetFaction of the current value fires feedback at most once")
}

// TestSetFactionRejectsUnknown tests invalid inputs change nothing
func TestSetFactionRejectsUnknown(t *testing.T) {
	store := NewMemStore()
	m := Load(store, nil, nil)

	if err := m.SetFaction(Faction("neon")); err != nil {
		t.Fatalf("SetFaction with invalid input errored: %v", err)
	}
	if m.Faction() != DefaultFaction {
		t.Errorf("Faction changed to invalid value: %v", m.Faction())
	}
	if _, ok := store.Read(PreferenceKey); ok {
		t.Error("Invalid faction was persisted")
	}
}

// TestToggleRoundTrip tests toggling flips between the two factions
func TestToggleRoundTrip(t *testing.T) {
	m := Load(NewMemStore(), nil, nil)

	_ = m.Toggle()
	if m.Faction() != FactionOmega {
		t.Errorf("Faction after first toggle = %v, want omega", m.Faction())
	}
	_ = m.Toggle()
	if m.Faction() != FactionAlpha {
		t.Errorf("Faction after second toggle = %v, want alpha", m.Faction())
	}
}

// ============================================================================
// FileStore
// ============================================================================

// TestFileStoreRoundTrip tests write-then-read through the JSON document
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewFileStore(path)

	if _, ok := s.Read(PreferenceKey); ok {
		t.Error("Read found a value in a missing file")
	}

	if err := s.Write(PreferenceKey, "omega"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	v, ok := s.Read(PreferenceKey)
	if !ok || v != "omega" {
		t.Errorf("Read = (%q,%v), want (omega,true)", v, ok)
	}
}

// TestFileStorePreservesSiblings tests writes keep unrelated keys intact
func TestFileStorePreservesSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"volume":"0.8","faction":"alpha"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	if err := s.Write(PreferenceKey, "omega"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if v, ok := s.Read("volume"); !ok || v != "0.8" {
		t.Errorf("Sibling key = (%q,%v), want (0.8,true)", v, ok)
	}
	if v, _ := s.Read(PreferenceKey); v != "omega" {
		t.Errorf("Updated key = %q, want omega", v)
	}
}

// TestFileStoreCreatesParentDir tests first-write directory creation
func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "settings.json")
	s := NewFileStore(path)

	if err := s.Write("k", "v"); err != nil {
		t.Fatalf("Write into missing directory failed: %v", err)
	}
	if v, ok := s.Read("k"); !ok || v != "v" {
		t.Errorf("Read = (%q,%v), want (v,true)", v, ok)
	}
}

// TestManagerOverFileStore tests the preference survives a reload, the way
// a revisit would see it
func TestManagerOverFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	m1 := Load(NewFileStore(path), nil, nil)
	_ = m1.SetFaction(FactionOmega)

	m2 := Load(NewFileStore(path), nil, nil)
	if m2.Faction() != FactionOmega {
		t.Errorf("Reloaded faction = %v, want omega", m2.Faction())
	}
	t.Logf("✓ Faction preference persists across sessions")
}

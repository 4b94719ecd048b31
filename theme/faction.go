// Package theme manages the faction preference: the user-selectable visual
// theme variant persisted across visits in an external key-value store.
package theme

// Faction is a visual theme variant
type Faction string

const (
	FactionAlpha Faction = "alpha"
	FactionOmega Faction = "omega"

	// DefaultFaction applies when the stored value is absent or invalid
	DefaultFaction = FactionAlpha

	// PreferenceKey is the fixed store key
	PreferenceKey = "faction"
)

// Valid reports whether f is a known faction
func (f Faction) Valid() bool {
	return f == FactionAlpha || f == FactionOmega
}

// Store is the external persistent key-value store
type Store interface {
	Read(key string) (value string, ok bool)
	Write(key, value string) error
}

// Manager holds the process-wide faction state. apply is invoked whenever
// the effective faction changes (including once at load); feedback fires
// only on user toggles, never at load.
type Manager struct {
	store    Store
	current  Faction
	apply    func(Faction)
	feedback func()
}

// Load reads the preference once at startup, falling back to the default on
// absent or unrecognized values without surfacing an error
func Load(store Store, apply func(Faction), feedback func()) *Manager {
	m := &Manager{
		store:    store,
		current:  DefaultFaction,
		apply:    apply,
		feedback: feedback,
	}
	if v, ok := store.Read(PreferenceKey); ok {
		if f := Faction(v); f.Valid() {
			m.current = f
		}
	}
	if m.apply != nil {
		m.apply(m.current)
	}
	return m
}

// Faction returns the current preference
func (m *Manager) Faction() Faction {
	return m.current
}

// SetFaction updates the theme state, persists the preference, and triggers
// the feedback hook. Idempotent no-op when f equals the current preference;
// unknown factions are ignored.
func (m *Manager) SetFaction(f Faction) error {
	if !f.Valid() || f == m.current {
		return nil
	}
	m.current = f
	if err := m.store.Write(PreferenceKey, string(f)); err != nil {
		return err
	}
	if m.apply != nil {
		m.apply(f)
	}
	if m.feedback != nil {
		m.feedback()
	}
	return nil
}

// Toggle switches between the two factions
func (m *Manager) Toggle() error {
	if m.current == FactionAlpha {
		return m.SetFaction(FactionOmega)
	}
	return m.SetFaction(FactionAlpha)
}

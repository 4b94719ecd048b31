// Package config loads the overlay's declarative configuration: nav item
// and mascot declarations plus environment toggles. Absent files and keys
// fall back to defaults; the overlay never fails to start over config.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// NavItem declares one selectable site section
type NavItem struct {
	ID    string
	Href  string
	Label string
}

// Mascot declares one mascot instance
type Mascot struct {
	Name string
	Kind string // tracker, orbiter, evader
}

// Config is the demo configuration
type Config struct {
	ReducedMotion bool
	Mute          bool
	SettingsPath  string
	Items         []NavItem
	Mascots       []Mascot
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SettingsPath: "cassette-settings.json",
		Items: []NavItem{
			{ID: "about", Href: "/about", Label: "About"},
			{ID: "work", Href: "/work", Label: "Work"},
			{ID: "contact", Href: "/contact", Label: "Contact"},
		},
		Mascots: []Mascot{
			{Name: "watcher", Kind: "tracker"},
			{Name: "courier", Kind: "orbiter"},
			{Name: "scamp", Kind: "evader"},
		},
	}
}

// Load reads an INI configuration file. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}

	cfg := Default()

	display := file.Section("display")
	cfg.ReducedMotion = display.Key("reduced_motion").MustBool(false)
	cfg.Mute = display.Key("mute").MustBool(false)

	if s := file.Section("settings").Key("path").String(); s != "" {
		cfg.SettingsPath = s
	}

	var items []NavItem
	var mascots []Mascot
	for _, sec := range file.Sections() {
		name := sec.Name()
		switch {
		case strings.HasPrefix(name, "nav."):
			items = append(items, NavItem{
				ID:    strings.TrimPrefix(name, "nav."),
				Href:  sec.Key("href").String(),
				Label: sec.Key("label").String(),
			})
		case strings.HasPrefix(name, "mascot."):
			mascots = append(mascots, Mascot{
				Name: strings.TrimPrefix(name, "mascot."),
				Kind: sec.Key("kind").In("tracker", []string{"tracker", "orbiter", "evader"}),
			})
		}
	}
	if len(items) > 0 {
		cfg.Items = items
	}
	if len(mascots) > 0 {
		cfg.Mascots = mascots
	}
	return cfg, nil
}

// Package config provides YAML-based configuration for the cafe: session
// profiles, the level table, kitchen timing windows and the order catalog.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

// CafeConfig contains all configuration for a cafe session.
type CafeConfig struct {
	// Profile names the active entry of Profiles, or a built-in profile.
	Profile     string                     `yaml:"profile"`
	Profiles    map[string]session.Profile `yaml:"profiles"`
	Levels      []session.Level            `yaml:"levels"`
	CatalogPath string                     `yaml:"catalog_path"`
	Timing      kitchen.Timings            `yaml:"timing"`
}

// ActiveProfile resolves the selected profile. Profiles defined in the file
// take precedence over the built-in ones.
func (c CafeConfig) ActiveProfile() (session.Profile, error) {
	name := c.Profile
	if name == "" {
		name = session.ProfileClassic
	}
	if p, ok := c.Profiles[name]; ok {
		p.Name = name
		return p, nil
	}
	return session.ProfileByName(name)
}

// Validate reports the first unusable setting.
func (c CafeConfig) Validate() error {
	p, err := c.ActiveProfile()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if len(c.Levels) > 0 {
		if err := session.ValidateLevels(c.Levels); err != nil {
			return fmt.Errorf("levels: %w", err)
		}
	}

	windows := []struct {
		name string
		w    kitchen.Window
	}{
		{"oven", c.Timing.Oven},
		{"grill", c.Timing.Grill},
		{"pour", c.Timing.Pour},
	}
	for _, tw := range windows {
		if tw.w != (kitchen.Window{}) && !tw.w.Valid() {
			return fmt.Errorf("timing %s: window bounds out of order", tw.name)
		}
	}
	return nil
}

// SessionOptions builds controller options from the config. A nil catalog
// means procedural orders only.
func (c CafeConfig) SessionOptions(seed int64, startLevel int, catalog *orders.Catalog) (session.Options, error) {
	if err := c.Validate(); err != nil {
		return session.Options{}, err
	}
	p, _ := c.ActiveProfile()

	timings := kitchen.DefaultTimings()
	if c.Timing.Oven != (kitchen.Window{}) {
		timings.Oven = c.Timing.Oven
	}
	if c.Timing.Grill != (kitchen.Window{}) {
		timings.Grill = c.Timing.Grill
	}
	if c.Timing.Pour != (kitchen.Window{}) {
		timings.Pour = c.Timing.Pour
	}

	return session.Options{
		Profile:    p,
		Levels:     c.Levels,
		Timings:    timings,
		StartLevel: startLevel,
		Seed:       seed,
		Catalog:    catalog,
	}, nil
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

//go:embed defaults/cafe.yaml
var defaultCafeYAML []byte

// DefaultCafeConfig returns the default cafe configuration.
func DefaultCafeConfig() CafeConfig {
	return CafeConfig{
		Profile: session.ProfileClassic,
		Profiles: map[string]session.Profile{
			session.ProfileClassic: session.Classic(),
			session.ProfileRush:    session.Rush(),
		},
		Levels: append([]session.Level(nil), session.Levels...),
		Timing: kitchen.DefaultTimings(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCafeYAML
}

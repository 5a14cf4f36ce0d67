package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-cafe/internal/session"
)

const configFile = "cafe.yaml"

// LoadCafe loads the cafe configuration. Fields missing from a file keep
// their default values.
// Search order: customPath -> ~/.cafe/configs/cafe.yaml -> ./configs/cafe.yaml -> embedded default
func LoadCafe(customPath string) (CafeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CafeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultCafeConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CafeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultCafeConfig()
	if err := yaml.Unmarshal(defaultCafeYAML, &cfg); err != nil {
		return DefaultCafeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (CafeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CafeConfig{}, false
	}
	cfg := DefaultCafeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CafeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cafe", "configs", filename)
}

// ApplyProfilePreset selects a named profile. The name must be defined in
// the config or be a built-in profile.
func ApplyProfilePreset(cfg *CafeConfig, name string) error {
	if _, ok := cfg.Profiles[name]; !ok {
		if _, err := session.ProfileByName(name); err != nil {
			return err
		}
	}
	cfg.Profile = name
	return nil
}

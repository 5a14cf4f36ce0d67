package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cafe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := DefaultCafeConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	want := DefaultCafeConfig()
	assert.Equal(t, want.Profile, cfg.Profile)
	assert.Equal(t, want.Timing, cfg.Timing)
	require.Len(t, cfg.Levels, len(session.Levels))
	for i, lvl := range cfg.Levels {
		assert.Equal(t, session.Levels[i].Name, lvl.Name)
		assert.Equal(t, session.Levels[i].TimeLimit, lvl.TimeLimit)
		assert.Equal(t, session.Levels[i].Customers, lvl.Customers)
		assert.Equal(t, session.Levels[i].MoneyTarget, lvl.MoneyTarget)
	}
	for name, p := range want.Profiles {
		got := cfg.Profiles[name]
		got.Name = p.Name
		assert.Equal(t, p, got, name)
	}
}

func TestLoadCafeCustomPath(t *testing.T) {
	path := writeConfig(t, `
profile: rush
catalog_path: orders.yaml
levels:
  - name: Tiny
    time_limit: 60
    customers: 1
    money_target: 10
`)

	cfg, err := LoadCafe(path)
	require.NoError(t, err)
	assert.Equal(t, "rush", cfg.Profile)
	assert.Equal(t, "orders.yaml", cfg.CatalogPath)
	require.Len(t, cfg.Levels, 1)
	assert.Equal(t, 60.0, cfg.Levels[0].TimeLimit)
	// Untouched sections keep their defaults.
	assert.Equal(t, kitchen.DefaultTimings(), cfg.Timing)

	p, err := cfg.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, 3, p.MaxConcurrentOrders)
}

func TestLoadCafeErrors(t *testing.T) {
	_, err := LoadCafe(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	_, err = LoadCafe(writeConfig(t, "levels: [oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadCafeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCafe("")
	require.NoError(t, err)
	assert.Equal(t, session.ProfileClassic, cfg.Profile)
	assert.Len(t, cfg.Levels, session.LevelCount())
}

func TestLoadCafeLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "cafe.yaml"), []byte("profile: rush\n"), 0o644))
	t.Chdir(dir)

	cfg, err := LoadCafe("")
	require.NoError(t, err)
	assert.Equal(t, "rush", cfg.Profile)
}

func TestApplyProfilePreset(t *testing.T) {
	cfg := DefaultCafeConfig()
	cfg.Profiles["marathon"] = session.Profile{MaxConcurrentOrders: 2, StartingMoney: 100, SpawnIntervalBase: 8, SpawnIntervalMin: 4}

	tests := []struct {
		name    string
		preset  string
		wantErr bool
	}{
		{"builtin classic", "classic", false},
		{"builtin rush", "rush", false},
		{"custom", "marathon", false},
		{"unknown", "brunch", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			err := ApplyProfilePreset(&c, tt.preset)
			if tt.wantErr {
				require.ErrorIs(t, err, session.ErrUnknownProfile)
				assert.Equal(t, cfg.Profile, c.Profile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.preset, c.Profile)
		})
	}

	c := cfg
	require.NoError(t, ApplyProfilePreset(&c, "marathon"))
	p, err := c.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, "marathon", p.Name)
	assert.Equal(t, 100, p.StartingMoney)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CafeConfig)
		errMsg string
	}{
		{"defaults", func(*CafeConfig) {}, ""},
		{"unknown profile", func(c *CafeConfig) { c.Profile = "brunch" }, "unknown profile"},
		{"bad profile", func(c *CafeConfig) {
			c.Profiles["classic"] = session.Profile{MaxConcurrentOrders: 0}
		}, "max_concurrent_orders"},
		{"bad level", func(c *CafeConfig) {
			c.Levels = []session.Level{{TimeLimit: 0, Customers: 1}}
		}, "time_limit"},
		{"bad window", func(c *CafeConfig) {
			c.Timing.Oven = kitchen.Window{Min: 10, Ideal: 5, Max: 15}
		}, "timing oven"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCafeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultCafeConfig()
	cfg.Timing.Grill = kitchen.Window{}
	cfg.Timing.Oven = kitchen.Window{Min: 5, Ideal: 6, Max: 7, Burn: 9, Slope: 10, OverSlope: 30}
	require.NoError(t, ApplyProfilePreset(&cfg, "rush"))

	opts, err := cfg.SessionOptions(42, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, 2, opts.StartLevel)
	assert.Equal(t, 3, opts.Profile.MaxConcurrentOrders)
	assert.Equal(t, 6.0, opts.Timings.Oven.Ideal)
	assert.Equal(t, kitchen.GrillWindow, opts.Timings.Grill)

	c, err := session.New(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Level())
}

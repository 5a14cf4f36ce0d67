package session

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProfile is returned when a profile name is not defined.
var ErrUnknownProfile = errors.New("session: unknown profile")

// Profile names.
const (
	ProfileClassic = "classic"
	ProfileRush    = "rush"
)

// Profile tunes how a session runs.
type Profile struct {
	Name string `yaml:"-"`

	// MaxConcurrentOrders caps open tickets. 1 is the strict one-at-a-time
	// kitchen; more opens a spawn timer that fills the counter up to the cap.
	MaxConcurrentOrders int  `yaml:"max_concurrent_orders"`
	StartingMoney       int  `yaml:"starting_money"`
	ChargeIngredients   bool `yaml:"charge_ingredients"`

	// Spawn interval at level L is max(SpawnIntervalBase - 0.5*L, SpawnIntervalMin).
	SpawnIntervalBase float64 `yaml:"spawn_interval_base"`
	SpawnIntervalMin  float64 `yaml:"spawn_interval_min"`
}

// Classic is one customer at a time, with a short queue of walk-ins.
func Classic() Profile {
	return Profile{
		Name:                ProfileClassic,
		MaxConcurrentOrders: 1,
		StartingMoney:       30,
		ChargeIngredients:   true,
		SpawnIntervalBase:   10,
		SpawnIntervalMin:    3,
	}
}

// Rush keeps up to three customers at the counter at once.
func Rush() Profile {
	p := Classic()
	p.Name = ProfileRush
	p.MaxConcurrentOrders = 3
	return p
}

var builtinProfiles = map[string]func() Profile{
	ProfileClassic: Classic,
	ProfileRush:    Rush,
}

// ProfileByName returns a built-in profile.
func ProfileByName(name string) (Profile, error) {
	f, ok := builtinProfiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return f(), nil
}

// ProfileNames lists the built-in profiles, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strict reports whether only one order is served at a time.
func (p Profile) Strict() bool {
	return p.MaxConcurrentOrders <= 1
}

// SpawnInterval returns seconds between walk-ins at level.
func (p Profile) SpawnInterval(level int) float64 {
	return max(p.SpawnIntervalBase-0.5*float64(level), p.SpawnIntervalMin)
}

// Validate checks the profile for unusable values.
func (p Profile) Validate() error {
	if p.MaxConcurrentOrders < 1 {
		return fmt.Errorf("profile %s: max_concurrent_orders must be at least 1", p.Name)
	}
	if !p.Strict() && p.SpawnIntervalMin <= 0 {
		return fmt.Errorf("profile %s: spawn_interval_min must be positive", p.Name)
	}
	return nil
}

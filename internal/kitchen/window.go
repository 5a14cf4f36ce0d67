package kitchen

import "math"

// Window describes a timed preparation step (baking, grilling, pouring).
//
// Quality is 100 at Ideal and drops by Slope per second of distance from it
// while inside [Min, Max]. Past Max it keeps falling from the quality it had
// at Max, by OverSlope per second, never below Floor. Past Burn (when Burn > 0) the item is ruined.
type Window struct {
	Min       float64 `yaml:"min"`
	Ideal     float64 `yaml:"ideal"`
	Max       float64 `yaml:"max"`
	Burn      float64 `yaml:"burn"`
	Slope     float64 `yaml:"slope"`
	OverSlope float64 `yaml:"over_slope"`
	Floor     float64 `yaml:"floor"`
}

// Reading is the outcome of evaluating a Window at some elapsed time.
type Reading struct {
	Quality float64
	Ready   bool // Inside or past the window
	Burned  bool
}

// Default windows.
var (
	OvenWindow  = Window{Min: 8, Ideal: 11.5, Max: 15, Burn: 25, Slope: 8, OverSlope: 20, Floor: 0}
	GrillWindow = Window{Min: 6, Ideal: 9, Max: 12, Burn: 20, Slope: 10, OverSlope: 25, Floor: 0}
	PourWindow  = Window{Min: 2, Ideal: 3, Max: 4, Burn: 0, Slope: 15, OverSlope: 20, Floor: 50}
)

// At evaluates the window after t seconds. Before Min the item is not ready
// and keeps full quality.
func (w Window) At(t float64) Reading {
	switch {
	case t < w.Min:
		return Reading{Quality: 100}
	case t <= w.Max:
		return Reading{Quality: 100 - math.Abs(t-w.Ideal)*w.Slope, Ready: true}
	case w.Burn > 0 && t > w.Burn:
		return Reading{Quality: 0, Burned: true}
	default:
		atMax := 100 - (w.Max-w.Ideal)*w.Slope
		return Reading{Quality: math.Max(w.Floor, atMax-(t-w.Max)*w.OverSlope), Ready: true}
	}
}

// Valid reports whether the window bounds are ordered.
func (w Window) Valid() bool {
	if w.Min < 0 || w.Min > w.Ideal || w.Ideal > w.Max {
		return false
	}
	return w.Burn == 0 || w.Burn >= w.Max
}

package session

import (
	"errors"
	"fmt"
)

// Level is one step of the campaign. A level is cleared once enough customers
// are served and the till holds the money target.
type Level struct {
	ID          int     `yaml:"-"`
	Name        string  `yaml:"name"`
	TimeLimit   float64 `yaml:"time_limit"` // seconds
	Customers   int     `yaml:"customers"`
	MoneyTarget int     `yaml:"money_target"`
}

// Levels is the default campaign, getting shorter and richer as it goes.
var Levels = []Level{
	{ID: 1, Name: "Opening Day", TimeLimit: 200, Customers: 3, MoneyTarget: 50},
	{ID: 2, Name: "Regulars", TimeLimit: 190, Customers: 4, MoneyTarget: 100},
	{ID: 3, Name: "Lunch Crowd", TimeLimit: 180, Customers: 5, MoneyTarget: 150},
	{ID: 4, Name: "Food Critic", TimeLimit: 170, Customers: 6, MoneyTarget: 220},
	{ID: 5, Name: "Friday Night", TimeLimit: 160, Customers: 7, MoneyTarget: 300},
	{ID: 6, Name: "Festival", TimeLimit: 150, Customers: 8, MoneyTarget: 400},
	{ID: 7, Name: "Chef's Table", TimeLimit: 140, Customers: 10, MoneyTarget: 500},
}

// LevelCount returns the number of default campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the default level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// ValidateLevels reports the first problem in a level table.
func ValidateLevels(levels []Level) error {
	if len(levels) == 0 {
		return errors.New("no levels defined")
	}
	for i, lvl := range levels {
		switch {
		case lvl.TimeLimit <= 0:
			return fmt.Errorf("level %d: time_limit must be positive", i+1)
		case lvl.Customers <= 0:
			return fmt.Errorf("level %d: customers must be positive", i+1)
		case lvl.MoneyTarget < 0:
			return fmt.Errorf("level %d: money_target must not be negative", i+1)
		}
	}
	return nil
}

// numbered returns a copy of levels with IDs set from their position.
func numbered(levels []Level) []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	for i := range out {
		out[i].ID = i + 1
		if out[i].Name == "" {
			out[i].Name = fmt.Sprintf("Level %d", i+1)
		}
	}
	return out
}

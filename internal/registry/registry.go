// Package registry keeps the playable cafe variants. Each variant registers
// a factory from its package init, so commands and menus can find it by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

// Game is a playable variant. Implementations hold pure session logic; the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID is the stable key used on the command line and in the scores
	// database, e.g. "cafe_rush".
	ID() string

	// Title is the display name, e.g. "Cafe Rush".
	Title() string

	// Reset opens a fresh kitchen sized and seeded by cfg. It is called
	// before the first Step and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the player's actions and clicks.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, money, level and whether the session ended.
	State() core.GameState
}

// Describer is implemented by variants that have a one-line blurb for
// menus and listings.
type Describer interface {
	Description() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new variant instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a variant. It panics on a duplicate ID. The factory is
// called once to read the title and description.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	factories[id] = f
	infos[id] = info
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return result
}

// Info returns the metadata for id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// IDs returns the registered IDs, sorted.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

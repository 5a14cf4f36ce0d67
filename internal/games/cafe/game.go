// Package cafe adapts the restaurant session to the platform's Game
// interface: it maps actions and clicks onto kitchen operations and draws
// the counter, the workbench and the HUD.
package cafe

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-cafe/internal/config"
	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/eventlog"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/session"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

// Variant IDs.
const (
	IDClassic = "cafe"
	IDRush    = "cafe_rush"
)

// Minimum playable terminal size.
const (
	minWidth  = 80
	minHeight = 24
)

// Package-level setup, applied on the next Reset.
var (
	configPath  string
	profileName string
	catalogPath string
	startLevel  int
	logger      = log.New(io.Discard)
	recorder    *eventlog.Recorder
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) { configPath = path }

// SetProfile overrides the variant's session profile.
func SetProfile(name string) { profileName = name }

// SetCatalogPath overrides the config's order catalog.
func SetCatalogPath(path string) { catalogPath = path }

// SetStartLevel sets the starting level. 0 starts from the beginning.
func SetStartLevel(level int) { startLevel = level }

// SetLogger sets where the game logs. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetRecorder sets the sink for session events. nil drops them.
func SetRecorder(r *eventlog.Recorder) { recorder = r }

func init() {
	registry.Register(IDClassic, func() registry.Game { return New(IDClassic) })
	registry.Register(IDRush, func() registry.Game { return New(IDRush) })
}

// Game is one cafe variant.
type Game struct {
	id        string
	ctrl      *session.Controller
	runtime   core.RuntimeConfig
	sessionID string

	cursor core.Point // topping cursor in pizza space
	knife  float64    // next cut angle, radians
	slot   int        // selected shelf slot
	patty  kitchen.Patty

	messages messageLog
	paused   bool
	tooSmall bool
}

// New creates a variant. Unknown IDs play the classic cafe.
func New(id string) *Game {
	if id != IDRush {
		id = IDClassic
	}
	return &Game{id: id, patty: kitchen.PattyBeef}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDRush {
		return "Cafe Rush"
	}
	return "Cafe"
}

// Description is the blurb shown in listings.
func (g *Game) Description() string {
	if g.id == IDRush {
		return "up to three customers at the counter, arriving on a timer"
	}
	return "one customer at a time, walk-ins queue from level 3"
}

// Reset opens a fresh session on the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.ctrl = g.newController(cfg.Seed)
	g.sessionID = uuid.NewString()
	g.cursor = core.Point{}
	g.knife = 0
	g.slot = 0
	g.patty = kitchen.PattyBeef
	g.messages = messageLog{}
	g.paused = false
	g.checkScreenSize()

	p := g.ctrl.Profile()
	logger.Info("session ready", "game", g.id, "session", g.sessionID, "profile", p.Name,
		"level", g.ctrl.Level(), "seed", cfg.Seed)
}

// newController builds the session from config, falling back to defaults
// whenever a source is unusable.
func (g *Game) newController(seed int64) *session.Controller {
	conf, err := config.LoadCafe(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "err", err)
		conf = config.DefaultCafeConfig()
	}

	name := profileName
	switch {
	case name != "":
	case g.id == IDRush:
		name = session.ProfileRush
	default:
		name = conf.Profile
	}
	if err := config.ApplyProfilePreset(&conf, name); err != nil {
		logger.Warn("unknown profile, keeping config default", "profile", name, "err", err)
	}

	opts, err := conf.SessionOptions(seed, startLevel, g.loadCatalog(conf))
	if err == nil {
		var ctrl *session.Controller
		if ctrl, err = session.New(opts); err == nil {
			return ctrl
		}
	}
	logger.Warn("invalid config, using defaults", "err", err)

	fallback := session.Classic()
	if g.id == IDRush {
		fallback = session.Rush()
	}
	ctrl, _ := session.New(session.Options{Profile: fallback, Seed: seed, StartLevel: startLevel})
	return ctrl
}

// loadCatalog reads the order catalog. Problems are logged at debug level
// and the session falls back to generated orders.
func (g *Game) loadCatalog(conf config.CafeConfig) *orders.Catalog {
	path := catalogPath
	if path == "" {
		path = conf.CatalogPath
	}
	if path == "" {
		return nil
	}
	cat, err := orders.LoadCatalog(path)
	if err != nil {
		logger.Debug("order catalog unavailable, generating orders", "path", path, "err", err)
		return nil
	}
	logger.Debug("order catalog loaded", "path", path, "files", len(cat.Files()), "levels", cat.Levels())
	return cat
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.runtime.ScreenW < minWidth || g.runtime.ScreenH < minHeight
}

// Resize updates the layout without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.TickSeconds()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.ctrl.Phase() == session.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := len(g.messages.entries)
	for _, a := range actionOrder {
		if in.Has(a) {
			g.handle(a)
		}
	}
	for _, c := range in.Clicks {
		g.click(c.X, c.Y)
	}

	g.ctrl.Update(dt)
	events := g.ctrl.DrainEvents()
	recorder.Record(events)
	for _, e := range events {
		g.notify(e)
	}

	var fresh []string
	for _, m := range g.messages.entries[min(before, len(g.messages.entries)):] {
		fresh = append(fresh, m.text)
	}
	g.messages.age(dt)

	return core.StepResult{State: g.State(), Messages: fresh}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	phase := g.ctrl.Phase()
	return core.GameState{
		Score:    g.ctrl.Score(),
		Level:    g.ctrl.Level(),
		Money:    g.ctrl.Money(),
		GameOver: phase.Terminal(),
		Won:      phase == session.PhaseGameComplete,
		Paused:   g.paused,
	}
}

// Controller exposes the running session.
func (g *Game) Controller() *session.Controller { return g.ctrl }

// Summary describes the session for the scoreboard. quit marks a session
// abandoned before it ended.
func (g *Game) Summary(quit bool) storage.SessionRecord {
	st := g.ctrl.Stats()
	r := storage.SessionRecord{
		SessionID: g.sessionID,
		GameID:    g.id,
		Profile:   g.ctrl.Profile().Name,
		Level:     st.Level,
		Money:     st.Money,
		Score:     st.Score,
		Served:    st.TotalServed,
		Rejected:  st.Rejected,
		TimedOut:  st.TimedOut,
		Reason:    g.ctrl.Reason(),
		Duration:  int(st.Elapsed),
	}
	switch g.ctrl.Phase() {
	case session.PhaseGameComplete:
		r.Outcome = storage.OutcomeWon
		r.Rating = g.ctrl.Rating()
	case session.PhaseGameOver:
		r.Outcome = storage.OutcomeLost
	default:
		r.Outcome = storage.OutcomeQuit
	}
	if quit && r.Outcome == storage.OutcomeQuit {
		r.Reason = "left the kitchen"
	}
	return r
}

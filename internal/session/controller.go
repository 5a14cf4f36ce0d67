// Package session runs the restaurant: the level clock, open tickets, the
// till, and the win and lose conditions.
//
// A Controller is driven by Update once per frame and by the player
// operations in between. It is not safe for concurrent use.
package session

import (
	"math/rand"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/scoring"
)

// Walk-in queue for the strict profile.
const (
	maxPending       = 3
	extraOrderChance = 0.3
	extraOrderLevel  = 2 // extra orders only appear above this level
)

// Phase is the session's screen state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
	PhaseGameComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level complete"
	case PhaseGameOver:
		return "game over"
	case PhaseGameComplete:
		return "game complete"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseGameComplete
}

// Options configure a Controller. Zero fields take defaults.
type Options struct {
	Profile    Profile
	Levels     []Level
	Timings    kitchen.Timings
	StartLevel int
	Seed       int64
	Catalog    *orders.Catalog
}

// Stats summarises a session.
type Stats struct {
	Level       int
	Money       int
	Score       int
	Served      int
	TotalServed int
	Rejected    int
	TimedOut    int
	Elapsed     float64
}

// Controller owns one play session.
type Controller struct {
	profile    Profile
	levels     []Level
	timings    kitchen.Timings
	startLevel int

	rng *rand.Rand
	gen *orders.Generator

	phase       Phase
	level       int
	money       int
	score       int
	served      int
	totalServed int
	rejected    int
	timedOut    int
	timeLeft    float64
	elapsed     float64
	reason      string

	tickets    []*Ticket
	selected   int
	pending    []orders.Order
	spawnTimer float64

	events []Event
}

// New creates a controller in PhaseStart.
func New(opts Options) (*Controller, error) {
	if opts.Profile.MaxConcurrentOrders == 0 {
		opts.Profile = Classic()
	}
	if err := opts.Profile.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Levels) == 0 {
		opts.Levels = Levels
	}
	if err := ValidateLevels(opts.Levels); err != nil {
		return nil, err
	}
	if opts.Timings == (kitchen.Timings{}) {
		opts.Timings = kitchen.DefaultTimings()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	c := &Controller{
		profile:    opts.Profile,
		levels:     numbered(opts.Levels),
		timings:    opts.Timings,
		startLevel: max(1, min(opts.StartLevel, len(opts.Levels))),
		rng:        rng,
		gen:        orders.NewGenerator(rng),
	}
	c.gen.SetCatalog(opts.Catalog)
	c.reset()
	return c, nil
}

func (c *Controller) reset() {
	c.phase = PhaseStart
	c.level = c.startLevel
	c.money = c.profile.StartingMoney
	c.score = 0
	c.served = 0
	c.totalServed = 0
	c.rejected = 0
	c.timedOut = 0
	c.elapsed = 0
	c.reason = ""
	c.tickets = nil
	c.pending = nil
	c.selected = 0
	c.timeLeft = c.levels[c.level-1].TimeLimit
}

// Start opens the restaurant.
func (c *Controller) Start() bool {
	if c.phase != PhaseStart {
		return false
	}
	c.phase = PhasePlaying
	c.beginLevel()
	return true
}

// Continue starts the next level after a level is cleared.
func (c *Controller) Continue() bool {
	if c.phase != PhaseLevelComplete {
		return false
	}
	c.phase = PhasePlaying
	c.beginLevel()
	return true
}

// Restart begins a new game from the starting level. The random stream
// continues, so a restarted game gets fresh orders.
func (c *Controller) Restart() {
	c.reset()
	c.Start()
}

func (c *Controller) beginLevel() {
	c.timeLeft = c.levels[c.level-1].TimeLimit
	c.served = 0
	c.tickets = nil
	c.pending = nil
	c.selected = 0
	c.spawnTimer = c.profile.SpawnInterval(c.level)
	c.emit(Event{Kind: EventLevelStarted})
	c.spawn()
}

// Update advances the session by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.phase != PhasePlaying || dt <= 0 {
		return
	}
	c.elapsed += dt
	c.timeLeft -= dt

	var expired []*Ticket
	for _, t := range c.tickets {
		t.Customer.Update(dt)
		t.Item.Tick(dt)
		t.Remaining -= dt
		if t.Remaining <= 0 {
			expired = append(expired, t)
		}
	}
	for _, t := range expired {
		c.timeout(t)
	}

	if !c.profile.Strict() {
		c.spawnTimer -= dt
		if c.spawnTimer <= 0 {
			c.spawnTimer = c.profile.SpawnInterval(c.level)
			c.spawn()
		}
	}

	if c.timeLeft <= 0 {
		c.gameOver("level time is up")
		return
	}
	if c.levelCleared() {
		c.completeLevel()
		return
	}
	if c.money < 0 {
		c.gameOver("out of money")
	}
}

func (c *Controller) timeout(t *Ticket) {
	penalty := t.Order.Penalty
	reason := "left without paying"
	if t.Customer.Leave() {
		penalty /= 2
		reason = "left but paid half"
	}
	c.money -= penalty
	c.timedOut++
	c.emit(Event{
		Kind:      EventOrderTimedOut,
		OrderID:   t.Order.ID,
		OrderType: t.Order.Type,
		Customer:  t.Order.Customer,
		Delta:     -penalty,
		Waited:    c.elapsed - t.opened,
		Reason:    reason,
	})
	c.remove(t)
	c.walkIns()
	c.spawn()
}

// spawn opens a ticket if the counter has room. Queued walk-ins go first.
func (c *Controller) spawn() {
	if len(c.tickets) >= c.profile.MaxConcurrentOrders {
		return
	}

	var o orders.Order
	if len(c.pending) > 0 {
		o = c.pending[0]
		c.pending = c.pending[1:]
	} else {
		o = c.gen.Generate(c.level)
	}

	t := newTicket(o, c.timings, c.elapsed)
	c.tickets = append(c.tickets, t)
	c.emit(Event{
		Kind:      EventOrderSpawned,
		OrderID:   o.ID,
		OrderType: o.Type,
		Customer:  o.Customer,
	})
}

// walkIns may queue one or two extra customers after a ticket is resolved.
// Only strict kitchens past the early levels get them.
func (c *Controller) walkIns() {
	if !c.profile.Strict() || c.level <= extraOrderLevel || c.rng.Float64() >= extraOrderChance {
		return
	}
	n := 1 + c.rng.Intn(2)
	for i := 0; i < n; i++ {
		extra := c.gen.Generate(c.level)
		if len(c.pending) < maxPending {
			c.pending = append(c.pending, extra)
		}
	}
}

func (c *Controller) remove(t *Ticket) {
	for i, open := range c.tickets {
		if open != t {
			continue
		}
		c.tickets = append(c.tickets[:i], c.tickets[i+1:]...)
		if i < c.selected {
			c.selected--
		}
		break
	}
	if c.selected >= len(c.tickets) {
		c.selected = max(0, len(c.tickets)-1)
	}
}

func (c *Controller) levelCleared() bool {
	target := c.levels[c.level-1]
	return c.served >= target.Customers && c.money >= target.MoneyTarget
}

func (c *Controller) completeLevel() {
	cleared := c.level
	c.tickets = nil
	c.pending = nil
	c.selected = 0

	if c.level >= len(c.levels) {
		c.phase = PhaseGameComplete
		c.emit(Event{Kind: EventGameComplete, Level: cleared})
		return
	}

	c.level++
	c.served = 0
	c.timeLeft = c.levels[c.level-1].TimeLimit
	c.phase = PhaseLevelComplete
	c.emit(Event{Kind: EventLevelComplete, Level: cleared})
}

func (c *Controller) gameOver(reason string) {
	c.phase = PhaseGameOver
	c.reason = reason
	c.emit(Event{Kind: EventGameOver, Reason: reason})
}

func (c *Controller) emit(e Event) {
	if e.Level == 0 {
		e.Level = c.level
	}
	e.Money = c.money
	c.events = append(c.events, e)
}

// DrainEvents returns and clears the events recorded since the last call.
func (c *Controller) DrainEvents() []Event {
	ev := c.events
	c.events = nil
	return ev
}

// Serve hands the selected ticket's item to its customer. It returns false
// when the item is not finished.
func (c *Controller) Serve() (scoring.Result, bool) {
	t := c.Selected()
	if c.phase != PhasePlaying || t == nil || !t.Item.Complete() {
		return scoring.Result{}, false
	}

	r := scoring.Evaluate(t.Item, t.Order)
	e := Event{
		OrderID:   t.Order.ID,
		OrderType: t.Order.Type,
		Customer:  t.Order.Customer,
		Score:     r.Score,
		Tier:      r.Tier,
		Feedback:  r.Feedback,
		Waited:    c.elapsed - t.opened,
	}
	if r.Success {
		c.money += r.Reward
		c.score += r.Score
		c.served++
		c.totalServed++
		e.Kind = EventOrderServed
		e.Delta = r.Reward
	} else {
		c.money -= t.Order.Penalty
		c.rejected++
		e.Kind = EventOrderRejected
		e.Delta = -t.Order.Penalty
	}
	c.emit(e)

	c.remove(t)
	c.walkIns()
	c.spawn()
	return r, true
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Level returns the current level number (1-based).
func (c *Controller) Level() int { return c.level }

// LevelCount returns the number of levels in this campaign.
func (c *Controller) LevelCount() int { return len(c.levels) }

// Target returns the current level's definition.
func (c *Controller) Target() Level { return c.levels[c.level-1] }

// Levels returns the campaign table.
func (c *Controller) Levels() []Level { return append([]Level(nil), c.levels...) }

// Timings returns the kitchen windows items are prepared with.
func (c *Controller) Timings() kitchen.Timings { return c.timings }

func (c *Controller) Money() int         { return c.money }
func (c *Controller) Score() int         { return c.score }
func (c *Controller) Served() int        { return c.served }
func (c *Controller) TotalServed() int   { return c.totalServed }
func (c *Controller) TimeLeft() float64  { return c.timeLeft }
func (c *Controller) Elapsed() float64   { return c.elapsed }
func (c *Controller) Reason() string     { return c.reason }
func (c *Controller) Profile() Profile   { return c.profile }
func (c *Controller) PendingCount() int  { return len(c.pending) }
func (c *Controller) SelectedIndex() int { return c.selected }

// Rating returns the chef's stars for the money held now.
func (c *Controller) Rating() int { return scoring.Rating(c.money) }

// Tickets returns the open tickets in arrival order.
func (c *Controller) Tickets() []*Ticket {
	return append([]*Ticket(nil), c.tickets...)
}

// Pending returns the queued walk-in orders.
func (c *Controller) Pending() []orders.Order {
	return append([]orders.Order(nil), c.pending...)
}

// Selected returns the ticket the player is working on, or nil.
func (c *Controller) Selected() *Ticket {
	if c.selected < 0 || c.selected >= len(c.tickets) {
		return nil
	}
	return c.tickets[c.selected]
}

// Stats returns the session totals.
func (c *Controller) Stats() Stats {
	return Stats{
		Level:       c.level,
		Money:       c.money,
		Score:       c.score,
		Served:      c.served,
		TotalServed: c.totalServed,
		Rejected:    c.rejected,
		TimedOut:    c.timedOut,
		Elapsed:     c.elapsed,
	}
}

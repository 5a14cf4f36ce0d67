package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/scoring"
)

func newTestController(t *testing.T, opts Options) *Controller {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	require.True(t, c.Start())
	c.DrainEvents()
	return c
}

// forceTicket replaces the selected ticket with one for a known order.
func forceTicket(c *Controller, o orders.Order) *Ticket {
	if o.TimeLimit == 0 {
		o.TimeLimit = 60
	}
	if o.Reward == 0 {
		o.Reward = 20
	}
	o.Penalty = 5
	o.Customer = "Anna"
	o.Mood = orders.MoodNeutral
	o.Level = c.level
	t := newTicket(o, c.timings, c.elapsed)
	c.tickets[c.selected] = t
	return t
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestStartOpensOneTicket(t *testing.T) {
	c, err := New(Options{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, PhaseStart, c.Phase())
	assert.Empty(t, c.Tickets())

	require.True(t, c.Start())
	assert.False(t, c.Start())
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Len(t, c.Tickets(), 1)
	assert.Equal(t, 30, c.Money())
	assert.InDelta(t, 200, c.TimeLeft(), 1e-9)
	assert.Equal(t, []EventKind{EventLevelStarted, EventOrderSpawned}, kinds(c.DrainEvents()))
	assert.Empty(t, c.DrainEvents())
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Profile: Profile{Name: "broken", MaxConcurrentOrders: -1}})
	assert.Error(t, err)

	_, err = New(Options{Levels: []Level{{TimeLimit: 0, Customers: 1}}})
	assert.Error(t, err)

	_, err = ProfileByName("brunch")
	assert.ErrorIs(t, err, ErrUnknownProfile)

	p, err := ProfileByName(ProfileRush)
	require.NoError(t, err)
	assert.Equal(t, 3, p.MaxConcurrentOrders)
	assert.Equal(t, []string{ProfileClassic, ProfileRush}, ProfileNames())
}

func TestSameSeedSameOrders(t *testing.T) {
	a := newTestController(t, Options{Seed: 11})
	b := newTestController(t, Options{Seed: 11})
	other := newTestController(t, Options{Seed: 12})

	assert.Equal(t, a.Selected().Order, b.Selected().Order)
	assert.NotEqual(t, a.Selected().Order.ID, other.Selected().Order.ID)
}

func TestServePizza(t *testing.T) {
	c := newTestController(t, Options{Seed: 1})
	forceTicket(c, orders.Order{
		ID:             "pizza-1",
		Type:           kitchen.KindPizza,
		Requirements:   map[kitchen.Ingredient]int{kitchen.Pepperoni: 1, kitchen.Mushrooms: 1},
		DoughRequired:  true,
		SauceRequired:  true,
		CheeseRequired: true,
	})

	_, ok := c.Serve()
	assert.False(t, ok, "nothing is ready")

	require.True(t, c.AddDough())
	require.True(t, c.AddSauce(80))
	require.True(t, c.AddCheese(75))
	assert.False(t, c.AddTopping(kitchen.Ham, 0, 0), "ham is not on the level 1 shelf")
	assert.Equal(t, 30, c.Money())

	require.True(t, c.AddTopping(kitchen.Pepperoni, 30, 0))
	require.True(t, c.AddTopping(kitchen.Mushrooms, 90, 0))
	require.True(t, c.AddTopping(kitchen.Cheese, 150, 0))
	assert.Equal(t, 30-3-2-2, c.Money())

	require.True(t, c.StartCooking())
	c.Update(11.5)
	require.True(t, c.StartCutting())
	for i := 0; i < kitchen.CutsRequired; i++ {
		cut := kitchen.CutThroughCenter(float64(i) * math.Pi / 2)
		require.True(t, c.AddCut(cut.From.X, cut.From.Y, cut.To.X, cut.To.Y))
	}

	c.DrainEvents()
	r, ok := c.Serve()
	require.True(t, ok)
	assert.True(t, r.Success)
	assert.Equal(t, scoring.TierPerfect, r.Tier)
	assert.Equal(t, 30, r.Reward)

	assert.Equal(t, 23+30, c.Money())
	assert.Equal(t, 90, c.Score())
	assert.Equal(t, 1, c.Served())
	assert.Equal(t, 1, c.TotalServed())

	events := c.DrainEvents()
	require.Equal(t, []EventKind{EventOrderServed, EventOrderSpawned}, kinds(events))
	assert.Equal(t, "pizza-1", events[0].OrderID)
	assert.Equal(t, 30, events[0].Delta)
	assert.Equal(t, "perfect! +$30", events[0].Text())

	require.Len(t, c.Tickets(), 1)
	assert.NotEqual(t, "pizza-1", c.Selected().Order.ID)
}

func TestServeBurger(t *testing.T) {
	c := newTestController(t, Options{Seed: 2})
	forceTicket(c, orders.Order{
		ID:           "burger-1",
		Type:         kitchen.KindBurger,
		Patty:        kitchen.PattyBeef,
		Requirements: map[kitchen.Ingredient]int{kitchen.Lettuce: 1, kitchen.Tomato: 1},
	})

	assert.False(t, c.AddDough(), "not a pizza")
	require.True(t, c.AddBottomBun())
	require.True(t, c.AddTopBun())
	require.True(t, c.AddPatty(kitchen.PattyBeef))
	require.True(t, c.Grill())
	assert.False(t, c.Grill(), "patty is still raw")

	c.Update(9)
	require.True(t, c.Grill())
	require.True(t, c.AddBurgerTopping(kitchen.Lettuce))
	assert.False(t, c.AddBurgerTopping(kitchen.Bacon), "bacon is not on the level 1 shelf")
	require.True(t, c.AddBurgerTopping(kitchen.Tomato))
	require.True(t, c.Assemble())
	require.True(t, c.Assemble())

	r, ok := c.Serve()
	require.True(t, ok)
	assert.Equal(t, scoring.TierExcellent, r.Tier)
	assert.Equal(t, 30-1-2+25, c.Money())
}

func TestServeDrinkAndReject(t *testing.T) {
	c := newTestController(t, Options{Seed: 3})
	forceTicket(c, orders.Order{
		ID:          "drink-1",
		Type:        kitchen.KindDrink,
		Drink:       kitchen.Cola,
		Size:        orders.SizeMedium,
		IceRequired: true,
	})

	assert.False(t, c.ChooseDrink(kitchen.Juice), "juice is not on the level 1 machine")
	require.True(t, c.ChooseDrink(kitchen.Water))
	c.Update(3.2)
	require.True(t, c.FinishFilling())
	require.True(t, c.AddIce())

	c.DrainEvents()
	r, ok := c.Serve()
	require.True(t, ok)
	assert.False(t, r.Success)
	assert.Equal(t, 25, c.Money())
	assert.Zero(t, c.Served())
	assert.Equal(t, 1, c.Stats().Rejected)

	events := c.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, EventOrderRejected, events[0].Kind)
	assert.Equal(t, -5, events[0].Delta)
}

func TestTimeoutPenalty(t *testing.T) {
	t.Run("patient customer pays half", func(t *testing.T) {
		c := newTestController(t, Options{Seed: 4})
		first := c.Selected()
		first.Remaining = 1

		c.Update(1)

		assert.Equal(t, 30-2, c.Money())
		events := c.DrainEvents()
		require.Equal(t, []EventKind{EventOrderTimedOut, EventOrderSpawned}, kinds(events))
		assert.Equal(t, "left but paid half", events[0].Reason)
		assert.Equal(t, first.Order.ID, events[0].OrderID)
		require.Len(t, c.Tickets(), 1)
		assert.NotSame(t, first, c.Selected())
	})

	t.Run("angry customer pays nothing", func(t *testing.T) {
		c := newTestController(t, Options{Seed: 4})
		first := c.Selected()
		first.Customer.Update(100)
		first.Remaining = 1

		c.Update(1)

		assert.Equal(t, 30-5, c.Money())
		events := c.DrainEvents()
		require.NotEmpty(t, events)
		assert.Equal(t, "left without paying", events[0].Reason)
		assert.Equal(t, 1, c.Stats().TimedOut)
	})
}

func TestLevelAdvance(t *testing.T) {
	c := newTestController(t, Options{Seed: 5})
	c.served = 3
	c.money = 60
	c.score = 200

	c.Update(0.1)

	assert.Equal(t, PhaseLevelComplete, c.Phase())
	assert.Equal(t, 2, c.Level())
	assert.Empty(t, c.Tickets())
	events := c.DrainEvents()
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, EventLevelComplete, last.Kind)
	assert.Equal(t, 1, last.Level)

	c.Update(5)
	assert.Equal(t, PhaseLevelComplete, c.Phase(), "update is a no-op between levels")

	require.True(t, c.Continue())
	assert.False(t, c.Continue())
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, 60, c.Money())
	assert.Equal(t, 200, c.Score())
	assert.Zero(t, c.Served())
	assert.InDelta(t, 190, c.TimeLeft(), 1e-9)
	assert.Equal(t, 4, c.Target().Customers)
	assert.Len(t, c.Tickets(), 1)
}

func TestLevelNeedsBothTargets(t *testing.T) {
	c := newTestController(t, Options{Seed: 5})
	c.served = 3
	c.money = 49
	c.Update(0.1)
	assert.Equal(t, PhasePlaying, c.Phase())

	c.served = 2
	c.money = 100
	c.Update(0.1)
	assert.Equal(t, PhasePlaying, c.Phase())
}

func TestGameComplete(t *testing.T) {
	c := newTestController(t, Options{Seed: 6, StartLevel: 7})
	assert.Equal(t, 7, c.Level())
	c.served = 10
	c.money = 520

	c.Update(0.1)

	assert.Equal(t, PhaseGameComplete, c.Phase())
	assert.True(t, c.Phase().Terminal())
	assert.Equal(t, 5, c.Rating())
	events := c.DrainEvents()
	last := events[len(events)-1]
	assert.Equal(t, EventGameComplete, last.Kind)
	assert.Contains(t, last.Text(), "chef rating 5/5")
}

func TestGameOver(t *testing.T) {
	t.Run("out of money", func(t *testing.T) {
		c := newTestController(t, Options{Seed: 7})
		c.money = -1
		c.Update(0.1)
		assert.Equal(t, PhaseGameOver, c.Phase())
		assert.Equal(t, "out of money", c.Reason())

		c.Restart()
		assert.Equal(t, PhasePlaying, c.Phase())
		assert.Equal(t, 30, c.Money())
		assert.Equal(t, 1, c.Level())
		assert.Empty(t, c.Reason())
		assert.Len(t, c.Tickets(), 1)
	})

	t.Run("level time is up", func(t *testing.T) {
		c := newTestController(t, Options{Seed: 7, Profile: Profile{Name: "rich", MaxConcurrentOrders: 1, StartingMoney: 1000}})
		for i := 0; i < 2100 && c.Phase() == PhasePlaying; i++ {
			c.Update(0.1)
		}
		assert.Equal(t, PhaseGameOver, c.Phase())
		assert.Equal(t, "level time is up", c.Reason())
		assert.Positive(t, c.Stats().TimedOut)
		assert.False(t, c.AddDough(), "no operations after the game ends")
	})
}

func TestTicketCaps(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		cap     int
	}{
		{"classic", Classic(), 1},
		{"rush", Rush(), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.profile
			p.StartingMoney = 1000
			c := newTestController(t, Options{Seed: 8, Profile: p})

			most := 0
			for i := 0; i < 900; i++ {
				c.Update(0.1)
				require.Equal(t, PhasePlaying, c.Phase())
				n := len(c.Tickets())
				require.LessOrEqual(t, n, tc.cap)
				most = max(most, n)
			}
			assert.Equal(t, tc.cap, most)
		})
	}
}

func TestSelectionFollowsRemoval(t *testing.T) {
	p := Rush()
	p.StartingMoney = 1000
	c := newTestController(t, Options{Seed: 9, Profile: p})
	for len(c.Tickets()) < 3 {
		c.Update(0.5)
	}

	assert.False(t, c.SelectTicket(3))
	require.True(t, c.SelectTicket(2))
	require.True(t, c.NextTicket())
	assert.Equal(t, 0, c.SelectedIndex())
	require.True(t, c.SelectTicket(2))

	// The first ticket leaves; the selection stays on the same ticket.
	selected := c.Selected()
	c.Tickets()[0].Remaining = 0.01
	c.Update(0.01)
	assert.Same(t, selected, c.Selected())
}

func TestPendingQueue(t *testing.T) {
	p := Classic()
	p.StartingMoney = 10000
	c := newTestController(t, Options{Seed: 10, Profile: p, StartLevel: 3})

	queued := 0
	for i := 0; i < 300; i++ {
		var next string
		if pending := c.Pending(); len(pending) > 0 {
			next = pending[0].ID
			queued++
		}
		c.Selected().Remaining = 0.001
		c.Update(0.01)
		require.Equal(t, PhasePlaying, c.Phase())
		require.LessOrEqual(t, c.PendingCount(), 3)
		if next != "" {
			assert.Equal(t, next, c.Selected().Order.ID, "queued orders are served first")
		}
	}
	assert.Positive(t, queued)
}

func TestWalkInsWaitForAResolvedTicket(t *testing.T) {
	p := Classic()
	p.StartingMoney = 10000
	for seed := int64(1); seed <= 40; seed++ {
		c := newTestController(t, Options{Seed: seed, Profile: p, StartLevel: 3})
		require.Zero(t, c.PendingCount(), "seed %d: nobody queues before the first ticket is resolved", seed)
	}
}

func TestNoPendingQueueEarly(t *testing.T) {
	p := Classic()
	p.StartingMoney = 10000
	c := newTestController(t, Options{Seed: 10, Profile: p})
	for i := 0; i < 100; i++ {
		c.Selected().Remaining = 0.001
		c.Update(0.01)
		require.Zero(t, c.PendingCount())
	}
}

func TestDiscard(t *testing.T) {
	c := newTestController(t, Options{Seed: 1})
	forceTicket(c, orders.Order{Type: kitchen.KindPizza, Requirements: map[kitchen.Ingredient]int{kitchen.Pepperoni: 1}})
	require.True(t, c.AddDough())

	require.True(t, c.Discard())
	p, ok := c.Selected().Pizza()
	require.True(t, ok)
	assert.Equal(t, kitchen.PizzaDough, p.State())
}

func TestSpawnInterval(t *testing.T) {
	p := Rush()
	assert.InDelta(t, 9.5, p.SpawnInterval(1), 1e-9)
	assert.InDelta(t, 6.5, p.SpawnInterval(7), 1e-9)
	assert.InDelta(t, 3, p.SpawnInterval(30), 1e-9)
}

func TestValidateLevels(t *testing.T) {
	require.NoError(t, ValidateLevels(Levels))
	assert.Equal(t, 7, LevelCount())
	assert.Equal(t, 500, GetLevel(6).MoneyTarget)
	assert.Nil(t, GetLevel(7))

	assert.Error(t, ValidateLevels(nil))
	assert.Error(t, ValidateLevels([]Level{{TimeLimit: 10, Customers: 0}}))
	assert.Error(t, ValidateLevels([]Level{{TimeLimit: 10, Customers: 1, MoneyTarget: -1}}))
}

package orders

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	for i := 0; i < 50; i++ {
		oa := a.Generate(3)
		ob := b.Generate(3)
		require.Equal(t, oa, ob, "order %d", i)
	}
}

func TestGenerateDistinctIDs(t *testing.T) {
	g := newTestGenerator(7)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Generate(1).ID
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateRespectsLevelTables(t *testing.T) {
	for level := 1; level <= kitchen.MaxLevel; level++ {
		g := newTestGenerator(int64(level))
		pizzaShelf := kitchen.PizzaToppings(level)
		burgerShelf := kitchen.BurgerToppings(level)
		drinks := kitchen.Drinks(level)

		for i := 0; i < 200; i++ {
			o := g.Generate(level)
			assert.Equal(t, level, o.Level)
			assert.Equal(t, DefaultPenalty, o.Penalty)

			base := max(30, 75-5*level)
			if o.Mood == MoodImpatient {
				assert.Equal(t, int(float64(base)*0.7), o.TimeLimit)
			} else {
				assert.Equal(t, base, o.TimeLimit)
			}
			reward := 10 + 3*level
			if o.Mood == MoodGenerous {
				assert.Equal(t, int(float64(reward)*1.5), o.Reward)
			} else {
				assert.Equal(t, reward, o.Reward)
			}

			switch o.Type {
			case kitchen.KindPizza:
				assert.NotContains(t, o.Requirements, kitchen.Cheese)
				assert.NotEmpty(t, o.Requirements)
				for ing, n := range o.Requirements {
					assert.Contains(t, pizzaShelf, ing)
					assert.GreaterOrEqual(t, n, 1)
					assert.LessOrEqual(t, n, 2+level/2)
				}
			case kitchen.KindBurger:
				assert.Contains(t, []kitchen.Patty{kitchen.PattyBeef, kitchen.PattyChicken}, o.Patty)
				assert.LessOrEqual(t, len(o.Requirements), len(burgerShelf))
				for ing, n := range o.Requirements {
					assert.Contains(t, burgerShelf, ing)
					limit := 3
					if smallPortion[ing] {
						limit = 2
					}
					assert.LessOrEqual(t, n, limit)
				}
			case kitchen.KindDrink:
				assert.Contains(t, drinks, o.Drink)
				assert.Contains(t, Sizes, o.Size)
				assert.Empty(t, o.Requirements)
			}
		}
	}
}

func TestGenerateClampsLevel(t *testing.T) {
	g := newTestGenerator(1)
	assert.Equal(t, 1, g.Generate(0).Level)
	assert.Equal(t, kitchen.MaxLevel, g.Generate(50).Level)
}

func TestDrinkRequestsPinFields(t *testing.T) {
	tests := []struct {
		requests []SpecialRequest
		ice      bool
		size     Size
	}{
		{[]SpecialRequest{RequestWithIce}, true, SizeMedium},
		{[]SpecialRequest{RequestNoIce}, false, SizeMedium},
		{[]SpecialRequest{RequestLargeCup, RequestNoIce}, false, SizeLarge},
		{[]SpecialRequest{RequestSmallCup}, false, SizeSmall},
	}

	for _, tc := range tests {
		o := Order{Type: kitchen.KindDrink, Size: SizeMedium, SpecialRequests: tc.requests}
		pinDrinkRequests(&o)
		assert.Equal(t, tc.ice, o.IceRequired, "%v", tc.requests)
		assert.Equal(t, tc.size, o.Size, "%v", tc.requests)
	}
}

func TestGeneratedDrinkRequestsAgree(t *testing.T) {
	g := newTestGenerator(99)
	checked := 0
	for i := 0; i < 2000; i++ {
		o := g.Generate(2)
		if o.Type != kitchen.KindDrink || len(o.SpecialRequests) == 0 {
			continue
		}
		checked++
		last := o.SpecialRequests[len(o.SpecialRequests)-1]
		switch last {
		case RequestWithIce:
			assert.True(t, o.IceRequired)
		case RequestNoIce:
			assert.False(t, o.IceRequired)
		}
	}
	assert.Positive(t, checked)
}

func TestMoodDistribution(t *testing.T) {
	g := newTestGenerator(5)
	counts := make(map[Mood]int)
	const n = 10000
	for i := 0; i < n; i++ {
		counts[g.pickMood()]++
	}
	for _, mw := range moodWeights {
		assert.InDelta(t, mw.weight, float64(counts[mw.mood])/n, 0.03, "mood %s", mw.mood)
	}
}

func TestCustomerPatience(t *testing.T) {
	tests := []struct {
		mood        Mood
		maxWait     float64
		maxPatience float64
	}{
		{MoodNeutral, 60, 100},
		{MoodImpatient, 40, 80},
		{MoodPicky, 70, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.mood), func(t *testing.T) {
			c := NewCustomer("Olga", tc.mood)
			assert.InDelta(t, tc.maxPatience, c.Patience(), 1e-9)
			assert.Equal(t, Expression(tc.mood), c.Expression())

			c.Update(tc.maxWait * 0.5)
			assert.InDelta(t, tc.maxPatience-50, c.Patience(), 1e-9)
			assert.Equal(t, ExpressionImpatient, c.Expression())

			c.Update(tc.maxWait * 0.3)
			assert.Equal(t, ExpressionAngry, c.Expression())

			c.Update(tc.maxWait)
			assert.Zero(t, c.Patience())
			assert.True(t, c.Exhausted())
			assert.False(t, c.Leave())
		})
	}
}

func TestCustomerLeaveThreshold(t *testing.T) {
	c := NewCustomer("Ivan", MoodNeutral)
	c.Update(36) // 100 - 60 = 40
	assert.True(t, c.Leave())
	c.Update(12) // 100 - 80 = 20
	assert.False(t, c.Leave())
}

func TestOrderSummary(t *testing.T) {
	o := Order{
		Type:           kitchen.KindPizza,
		SauceRequired:  true,
		CheeseRequired: false,
		Requirements:   map[kitchen.Ingredient]int{kitchen.Mushrooms: 1, kitchen.Pepperoni: 2},
	}
	assert.Equal(t, "pizza no cheese: pepperoni x2, mushrooms x1", o.Summary())

	d := Order{Type: kitchen.KindDrink, Drink: kitchen.Tea, Size: SizeLarge, IceRequired: true}
	assert.Equal(t, "large tea with ice", d.Summary())
}

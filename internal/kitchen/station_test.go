package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurgerFlow(t *testing.T) {
	b := NewBurger(GrillWindow)

	assert.False(t, b.AddPatty(PattyBeef), "patty needs buns first")

	require.True(t, b.AddBottomBun())
	assert.False(t, b.AddBottomBun(), "bottom bun only once")
	assert.Equal(t, BurgerBun, b.State())
	require.True(t, b.AddTopBun())
	assert.Equal(t, BurgerPatty, b.State())

	require.True(t, b.AddPatty(PattyChicken))
	assert.Equal(t, BurgerCooking, b.State())

	cookFor(b, 5)
	assert.Zero(t, b.CookTime(), "grill is off until started")

	require.True(t, b.StartCooking())
	assert.False(t, b.StartCooking(), "grill already running")
	assert.False(t, b.FinishCooking(), "patty still raw")

	cookFor(b, 9)
	assert.True(t, b.Cooked())
	assert.InDelta(t, 100, b.Quality(), 0.5)

	require.True(t, b.FinishCooking())
	require.True(t, b.AddTopping(Lettuce))
	require.True(t, b.AddTopping(Tomato))
	require.True(t, b.AddTopping(Lettuce))
	assert.Equal(t, []Ingredient{Lettuce, Tomato, Lettuce}, b.Toppings())
	assert.Equal(t, 2, b.ToppingCount(Lettuce))

	assert.False(t, b.FinishAssembling())
	require.True(t, b.StartAssembling())
	require.True(t, b.FinishAssembling())
	assert.True(t, b.Complete())
	assert.True(t, b.Assembled())
	assert.Equal(t, PattyChicken, b.Patty())
}

func TestBurgerBurns(t *testing.T) {
	b := NewBurger(GrillWindow)
	b.AddBottomBun()
	b.AddTopBun()
	b.AddPatty(PattyBeef)
	b.StartCooking()

	cookFor(b, 16)
	assert.True(t, b.Cooked())
	assert.InDelta(t, 0, b.Quality(), 0.5) // 100 - (16-12)*25

	cookFor(b, 5)
	assert.True(t, b.Burned())
	assert.False(t, b.FinishCooking())
}

func TestDrinkFlow(t *testing.T) {
	d := NewDrink(PourWindow)

	assert.False(t, d.FinishFilling())
	assert.False(t, d.AddIce(), "ice goes into a finished drink")
	assert.False(t, d.SetType(DrinkNone))

	require.True(t, d.SetType(Cola))
	assert.False(t, d.SetType(Water), "already pouring")

	cookFor(d, 1)
	assert.False(t, d.Filled())
	assert.False(t, d.FinishFilling())

	cookFor(d, 2)
	assert.True(t, d.Filled())
	assert.InDelta(t, 100, d.Quality(), 0.5)
	assert.InDelta(t, 75, d.FillLevel(), 0.5)

	require.True(t, d.FinishFilling())
	require.True(t, d.AddIce())
	assert.False(t, d.AddIce())
	assert.True(t, d.Complete())
	assert.Equal(t, Cola, d.Type())
}

func TestDrinkOverpourFloor(t *testing.T) {
	d := NewDrink(PourWindow)
	d.SetType(Tea)
	cookFor(d, 10)

	assert.True(t, d.Filled())
	assert.InDelta(t, 50, d.Quality(), 1e-9)
	assert.InDelta(t, 100, d.FillLevel(), 1e-9)
}

func TestWindowQualityPeaksAtIdeal(t *testing.T) {
	for name, w := range map[string]Window{"oven": OvenWindow, "grill": GrillWindow, "pour": PourWindow} {
		t.Run(name, func(t *testing.T) {
			require.True(t, w.Valid())
			assert.InDelta(t, 100, w.At(w.Ideal).Quality, 1e-9)

			// Non-increasing moving away from the ideal in both directions.
			prev := 100.0
			for tm := w.Ideal; tm <= w.Max+15; tm += 0.25 {
				q := w.At(tm).Quality
				assert.LessOrEqual(t, q, prev+1e-9, "t=%.2f", tm)
				prev = q
			}
			prev = 100.0
			for tm := w.Ideal; tm >= w.Min; tm -= 0.25 {
				q := w.At(tm).Quality
				assert.LessOrEqual(t, q, prev+1e-9, "t=%.2f", tm)
				prev = q
			}
		})
	}
}

func TestWindowReadings(t *testing.T) {
	tests := []struct {
		name    string
		t       float64
		quality float64
		ready   bool
		burned  bool
	}{
		{"raw", 5, 100, false, false},
		{"window start", 8, 72, true, false},
		{"ideal", 11.5, 100, true, false},
		{"window end", 15, 72, true, false},
		{"just past window", 16, 52, true, false},
		{"overcooked", 20, 0, true, false},
		{"burned", 25.1, 0, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := OvenWindow.At(tc.t)
			assert.InDelta(t, tc.quality, r.Quality, 1e-6)
			assert.Equal(t, tc.ready, r.Ready)
			assert.Equal(t, tc.burned, r.Burned)
		})
	}
}

func TestParseIngredient(t *testing.T) {
	ing, err := ParseIngredient(" Pepperoni ")
	require.NoError(t, err)
	assert.Equal(t, Pepperoni, ing)
	assert.Equal(t, 3, ing.Price())

	_, err = ParseIngredient("anchovies")
	assert.ErrorIs(t, err, ErrUnknownIngredient)

	var decoded Ingredient
	require.NoError(t, decoded.UnmarshalText([]byte("ham")))
	assert.Equal(t, Ham, decoded)

	drink, err := ParseDrink("juice")
	require.NoError(t, err)
	assert.Equal(t, 3, drink.Price())

	patty, err := ParsePatty("chicken")
	require.NoError(t, err)
	assert.Equal(t, Chicken, patty.Ingredient())
}

func TestLevelShelves(t *testing.T) {
	assert.Equal(t, []Ingredient{Pepperoni, Mushrooms, Cheese}, PizzaToppings(1))
	assert.Equal(t, PizzaToppings(7), PizzaToppings(99), "levels clamp to the last table")
	assert.Equal(t, PizzaToppings(1), PizzaToppings(0))
	assert.Len(t, BurgerToppings(7), 8)
	assert.Equal(t, []DrinkType{Cola, Water}, Drinks(1))

	shelf := Drinks(2)
	shelf[0] = Juice
	assert.Equal(t, Cola, Drinks(2)[0], "returned shelves are copies")
}

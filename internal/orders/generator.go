package orders

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

// Procedural order constants.
const (
	DefaultPenalty  = 5
	minTimeLimit    = 30
	baseTimeLimit   = 75
	timePerLevel    = 5
	baseReward      = 10
	rewardPerLevel  = 3
	requestChance   = 0.3
	sauceChance     = 0.9
	cheeseChance    = 0.8
	iceChance       = 0.7
	impatientFactor = 0.7
	generousFactor  = 1.5
)

// CustomerNames is the pool customer names are drawn from.
var CustomerNames = []string{
	"Anna", "Mikhail", "Sofia", "Alexei", "Ekaterina",
	"Dmitry", "Olga", "Ivan", "Maria", "Sergei",
}

var moodWeights = []struct {
	mood   Mood
	weight float64
}{
	{MoodNeutral, 0.4},
	{MoodHappy, 0.2},
	{MoodImpatient, 0.2},
	{MoodPicky, 0.1},
	{MoodGenerous, 0.1},
}

// Burger toppings served in smaller portions.
var smallPortion = map[kitchen.Ingredient]bool{
	kitchen.Cheese:     true,
	kitchen.Bacon:      true,
	kitchen.Mayonnaise: true,
	kitchen.Ketchup:    true,
}

// Generator produces orders from an injected random source. The same seed
// yields the same order sequence.
type Generator struct {
	rng     *rand.Rand
	catalog *Catalog
}

// NewGenerator creates a generator. A nil rng is seeded with 1.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{rng: rng}
}

// SetCatalog attaches a file catalog. Levels without catalog entries keep
// using procedural generation. A nil catalog detaches it.
func (g *Generator) SetCatalog(c *Catalog) {
	g.catalog = c
}

// Catalog returns the attached catalog, if any.
func (g *Generator) Catalog() *Catalog { return g.catalog }

// Generate returns a fresh order for level.
func (g *Generator) Generate(level int) Order {
	level = kitchen.ClampLevel(level)
	if g.catalog != nil {
		if entry, err := g.catalog.Pick(g.rng, level); err == nil {
			o := entry.toOrder(level)
			o.ID = g.newID()
			o.Customer = g.pickName()
			o.Mood = g.pickMood()
			return o
		}
	}
	return g.Procedural(level)
}

// Procedural builds an order from the level tables, ignoring any catalog.
func (g *Generator) Procedural(level int) Order {
	level = kitchen.ClampLevel(level)
	o := Order{
		ID:            g.newID(),
		Level:         level,
		Type:          kitchen.Kinds[g.rng.Intn(len(kitchen.Kinds))],
		Requirements:  make(map[kitchen.Ingredient]int),
		DoughRequired: true,
		Size:          SizeMedium,
		Penalty:       DefaultPenalty,
	}

	switch o.Type {
	case kitchen.KindPizza:
		g.pizza(&o)
	case kitchen.KindBurger:
		g.burger(&o)
	case kitchen.KindDrink:
		g.drink(&o)
	}

	o.TimeLimit = max(minTimeLimit, baseTimeLimit-timePerLevel*level)
	o.Reward = baseReward + rewardPerLevel*level
	o.Customer = g.pickName()
	o.Mood = g.pickMood()

	switch o.Mood {
	case MoodImpatient:
		o.TimeLimit = int(float64(o.TimeLimit) * impatientFactor)
	case MoodGenerous:
		o.Reward = int(float64(o.Reward) * generousFactor)
	}

	if g.rng.Float64() < requestChance {
		pool := requestPools[o.Type]
		n := g.randint(1, 2)
		for _, i := range g.rng.Perm(len(pool))[:n] {
			o.SpecialRequests = append(o.SpecialRequests, pool[i])
		}
		pinDrinkRequests(&o)
	}

	return o
}

func (g *Generator) pizza(o *Order) {
	o.SauceRequired = g.rng.Float64() < sauceChance
	o.CheeseRequired = g.rng.Float64() < cheeseChance

	shelf := kitchen.PizzaToppings(o.Level)
	k := g.randint(min(1, o.Level), min(3+o.Level/2, len(shelf)))

	// Cheese is a base layer, not a counted topping.
	toppings := slices.DeleteFunc(shelf, func(ing kitchen.Ingredient) bool { return ing == kitchen.Cheese })
	k = min(k, len(toppings))
	for _, i := range g.rng.Perm(len(toppings))[:k] {
		o.Requirements[toppings[i]] = g.randint(1, 2+o.Level/2)
	}
}

func (g *Generator) burger(o *Order) {
	if g.rng.Intn(2) == 0 {
		o.Patty = kitchen.PattyBeef
	} else {
		o.Patty = kitchen.PattyChicken
	}
	o.SauceRequired = true
	o.CheeseRequired = true

	shelf := kitchen.BurgerToppings(o.Level)
	k := min(g.randint(min(2, o.Level), min(4+o.Level/2, len(shelf)+1)), len(shelf))
	for _, i := range g.rng.Perm(len(shelf))[:k] {
		maxCount := 3
		if smallPortion[shelf[i]] {
			maxCount = 2
		}
		o.Requirements[shelf[i]] = g.randint(1, maxCount)
	}
}

func (g *Generator) drink(o *Order) {
	menu := kitchen.Drinks(o.Level)
	o.Drink = menu[g.rng.Intn(len(menu))]
	o.Size = Sizes[g.rng.Intn(len(Sizes))]
	o.IceRequired = g.rng.Float64() < iceChance
}

// pinDrinkRequests makes drink fields agree with the customer's requests.
// Later requests win.
func pinDrinkRequests(o *Order) {
	if o.Type != kitchen.KindDrink {
		return
	}
	for _, r := range o.SpecialRequests {
		switch r {
		case RequestWithIce:
			o.IceRequired = true
		case RequestNoIce:
			o.IceRequired = false
		case RequestLargeCup:
			o.Size = SizeLarge
		case RequestSmallCup:
			o.Size = SizeSmall
		}
	}
}

func (g *Generator) pickName() string {
	return CustomerNames[g.rng.Intn(len(CustomerNames))]
}

func (g *Generator) pickMood() Mood {
	r := g.rng.Float64()
	for _, mw := range moodWeights {
		if r < mw.weight {
			return mw.mood
		}
		r -= mw.weight
	}
	return MoodNeutral
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// randint returns a uniform integer in [lo, hi]. An empty range yields lo.
func (g *Generator) randint(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

package kitchen

import (
	"math"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

// Pizza geometry and thresholds.
const (
	PizzaRadius       = 180.0
	CoverageThreshold = 70.0 // Sauce/cheese coverage that unlocks the next step
	CutsRequired      = 4    // Four lines through the middle give eight slices
	DefaultPour       = 25.0 // Coverage added by one ladle of sauce or handful of cheese
	distributionZones = 3
)

// PizzaState is a step of pizza preparation.
type PizzaState int

const (
	PizzaDough PizzaState = iota
	PizzaSauce
	PizzaCheese
	PizzaTopping
	PizzaCooking
	PizzaCutting
	PizzaComplete
)

func (s PizzaState) String() string {
	switch s {
	case PizzaDough:
		return "dough"
	case PizzaSauce:
		return "sauce"
	case PizzaCheese:
		return "cheese"
	case PizzaTopping:
		return "toppings"
	case PizzaCooking:
		return "cooking"
	case PizzaCutting:
		return "cutting"
	case PizzaComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Topping is one ingredient placed on the pizza.
type Topping struct {
	Ingredient Ingredient
	Pos        core.Point
	Zone       int // 0 = center ring, 2 = outer ring
}

// Cut is a knife stroke in pizza space.
type Cut struct {
	From, To core.Point
}

// Angle returns the direction of the stroke in radians.
func (c Cut) Angle() float64 {
	return c.To.Sub(c.From).Angle()
}

// CutThroughCenter returns a full-diameter cut at the given angle.
func CutThroughCenter(angle float64) Cut {
	to := core.Polar(PizzaRadius, angle)
	return Cut{From: core.Point{X: -to.X, Y: -to.Y}, To: to}
}

// Pizza walks dough → sauce → cheese → toppings → oven → knife.
type Pizza struct {
	oven Window

	state     PizzaState
	hasDough  bool
	hasSauce  bool
	hasCheese bool
	sauce     float64
	cheese    float64
	toppings  []Topping
	cookTime  float64
	cooked    bool
	burned    bool
	cuts      []Cut
	quality   float64
}

// NewPizza returns an empty dough station using the given oven window.
func NewPizza(oven Window) *Pizza {
	return &Pizza{oven: oven, quality: 100}
}

// Kind implements FoodItem.
func (p *Pizza) Kind() Kind { return KindPizza }

// Stage implements FoodItem.
func (p *Pizza) Stage() string { return p.state.String() }

// State returns the current preparation step.
func (p *Pizza) State() PizzaState { return p.state }

// Quality implements FoodItem.
func (p *Pizza) Quality() float64 { return p.quality }

// Complete implements FoodItem.
func (p *Pizza) Complete() bool { return p.state == PizzaComplete }

// Tick implements FoodItem.
func (p *Pizza) Tick(dt float64) { p.UpdateCooking(dt) }

func (p *Pizza) HasDough() bool          { return p.hasDough }
func (p *Pizza) HasSauce() bool          { return p.hasSauce }
func (p *Pizza) HasCheese() bool         { return p.hasCheese }
func (p *Pizza) SauceCoverage() float64  { return p.sauce }
func (p *Pizza) CheeseCoverage() float64 { return p.cheese }
func (p *Pizza) Cooked() bool            { return p.cooked }
func (p *Pizza) Burned() bool            { return p.burned }
func (p *Pizza) CookTime() float64       { return p.cookTime }
func (p *Pizza) CutCount() int           { return len(p.cuts) }

// Toppings returns a copy of the placed toppings.
func (p *Pizza) Toppings() []Topping {
	return append([]Topping(nil), p.toppings...)
}

// Cuts returns a copy of the cuts made so far.
func (p *Pizza) Cuts() []Cut {
	return append([]Cut(nil), p.cuts...)
}

// AddDough rolls out the base.
func (p *Pizza) AddDough() bool {
	if p.state != PizzaDough {
		return false
	}
	p.hasDough = true
	p.state = PizzaSauce
	return true
}

// AddSauce spreads sauce. Reaching the coverage threshold moves on to cheese.
func (p *Pizza) AddSauce(amount float64) bool {
	if p.state != PizzaSauce || !p.hasDough || amount <= 0 {
		return false
	}
	p.sauce = math.Min(100, p.sauce+amount)
	if p.sauce >= CoverageThreshold {
		p.hasSauce = true
		p.state = PizzaCheese
	}
	return true
}

// AddCheese sprinkles cheese. Reaching the coverage threshold opens toppings.
func (p *Pizza) AddCheese(amount float64) bool {
	if p.state != PizzaCheese || !p.hasSauce || amount <= 0 {
		return false
	}
	p.cheese = math.Min(100, p.cheese+amount)
	if p.cheese >= CoverageThreshold {
		p.hasCheese = true
		p.state = PizzaTopping
	}
	return true
}

// AddTopping places an ingredient at (x, y) relative to the pizza center.
// Points outside the crust are rejected.
func (p *Pizza) AddTopping(ing Ingredient, x, y float64) bool {
	if p.state != PizzaTopping || !p.hasCheese || !ing.Valid() {
		return false
	}
	pos := core.Point{X: x, Y: y}
	dist := pos.Len()
	if dist > PizzaRadius {
		return false
	}
	zone := core.Clamp(int(dist/(PizzaRadius/distributionZones)), 0, distributionZones-1)
	p.toppings = append(p.toppings, Topping{Ingredient: ing, Pos: pos, Zone: zone})
	return true
}

// ToppingCount returns how many portions of ing are on the pizza.
func (p *Pizza) ToppingCount(ing Ingredient) int {
	n := 0
	for _, t := range p.toppings {
		if t.Ingredient == ing {
			n++
		}
	}
	return n
}

// Distribution returns the share of toppings in each radial zone.
func (p *Pizza) Distribution() [distributionZones]float64 {
	var dist [distributionZones]float64
	if len(p.toppings) == 0 {
		return dist
	}
	for _, t := range p.toppings {
		dist[t.Zone]++
	}
	for i := range dist {
		dist[i] /= float64(len(p.toppings))
	}
	return dist
}

// StartCooking puts the pizza in the oven. At least one topping is needed.
func (p *Pizza) StartCooking() bool {
	if p.state != PizzaTopping || len(p.toppings) == 0 {
		return false
	}
	p.state = PizzaCooking
	p.cookTime = 0
	return true
}

// UpdateCooking advances the oven timer.
func (p *Pizza) UpdateCooking(dt float64) {
	if p.state != PizzaCooking || dt <= 0 {
		return
	}
	p.cookTime += dt
	r := p.oven.At(p.cookTime)
	if r.Burned {
		p.burned = true
		p.cooked = false
		p.quality = 0
		return
	}
	if r.Ready {
		p.cooked = true
		p.quality = r.Quality
	}
}

// StartCutting takes a cooked pizza out of the oven onto the board.
func (p *Pizza) StartCutting() bool {
	if p.state != PizzaCooking || !p.cooked || p.burned {
		return false
	}
	p.state = PizzaCutting
	return true
}

// AddCut records a knife stroke. The fourth cut finishes the pizza and
// scales quality by how evenly the slices were cut.
func (p *Pizza) AddCut(x1, y1, x2, y2 float64) bool {
	if p.state != PizzaCutting {
		return false
	}
	p.cuts = append(p.cuts, Cut{From: core.Point{X: x1, Y: y1}, To: core.Point{X: x2, Y: y2}})
	if len(p.cuts) >= CutsRequired {
		p.quality *= CutQuality(p.cuts)
		p.state = PizzaComplete
	}
	return true
}

// CutQuality scores how close the first four cuts are to lines at multiples
// of 90° from each other. The result is in [0.5, 1].
func CutQuality(cuts []Cut) float64 {
	if len(cuts) < CutsRequired {
		return 0.5
	}
	const (
		quarter      = math.Pi / 2
		angleEpsilon = 1e-9 // float residue from math.Mod on exact right angles
	)

	var total float64
	pairs := 0
	for i := 0; i < CutsRequired; i++ {
		for j := i + 1; j < CutsRequired; j++ {
			diff := math.Mod(math.Abs(cuts[i].Angle()-cuts[j].Angle()), quarter)
			if off := math.Min(diff, quarter-diff); off > angleEpsilon {
				total += off
			}
			pairs++
		}
	}
	return math.Max(0.5, 1-2*total/float64(pairs))
}

package kitchen

// BurgerState is a step of burger preparation.
type BurgerState int

const (
	BurgerBun BurgerState = iota
	BurgerPatty
	BurgerCooking
	BurgerTopping
	BurgerAssembling
	BurgerComplete
)

func (s BurgerState) String() string {
	switch s {
	case BurgerBun:
		return "bun"
	case BurgerPatty:
		return "patty"
	case BurgerCooking:
		return "grill"
	case BurgerTopping:
		return "toppings"
	case BurgerAssembling:
		return "assembling"
	case BurgerComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Burger walks buns → patty → grill → toppings → assembly.
type Burger struct {
	grill Window

	state        BurgerState
	hasBottomBun bool
	hasTopBun    bool
	patty        Patty
	grilling     bool
	cookTime     float64
	cooked       bool
	burned       bool
	toppings     []Ingredient
	assembled    bool
	quality      float64
}

// NewBurger returns an empty burger station using the given grill window.
func NewBurger(grill Window) *Burger {
	return &Burger{grill: grill, quality: 100}
}

// Kind implements FoodItem.
func (b *Burger) Kind() Kind { return KindBurger }

// Stage implements FoodItem.
func (b *Burger) Stage() string { return b.state.String() }

// State returns the current preparation step.
func (b *Burger) State() BurgerState { return b.state }

// Quality implements FoodItem.
func (b *Burger) Quality() float64 { return b.quality }

// Complete implements FoodItem.
func (b *Burger) Complete() bool { return b.state == BurgerComplete }

// Tick implements FoodItem.
func (b *Burger) Tick(dt float64) { b.UpdateCooking(dt) }

func (b *Burger) HasBottomBun() bool { return b.hasBottomBun }
func (b *Burger) HasTopBun() bool    { return b.hasTopBun }
func (b *Burger) Patty() Patty       { return b.patty }
func (b *Burger) Grilling() bool     { return b.grilling }
func (b *Burger) CookTime() float64  { return b.cookTime }
func (b *Burger) Cooked() bool       { return b.cooked }
func (b *Burger) Burned() bool       { return b.burned }
func (b *Burger) Assembled() bool    { return b.assembled }

// Toppings returns the toppings in the order they were stacked.
func (b *Burger) Toppings() []Ingredient {
	return append([]Ingredient(nil), b.toppings...)
}

// AddBottomBun places the bottom bun.
func (b *Burger) AddBottomBun() bool {
	if b.state != BurgerBun || b.hasBottomBun {
		return false
	}
	b.hasBottomBun = true
	b.checkBuns()
	return true
}

// AddTopBun sets the top bun aside for assembly.
func (b *Burger) AddTopBun() bool {
	if b.state != BurgerBun || b.hasTopBun {
		return false
	}
	b.hasTopBun = true
	b.checkBuns()
	return true
}

func (b *Burger) checkBuns() {
	if b.hasBottomBun && b.hasTopBun {
		b.state = BurgerPatty
	}
}

// AddPatty puts a raw patty on the bottom bun, ready for the grill.
func (b *Burger) AddPatty(kind Patty) bool {
	if b.state != BurgerPatty || !b.hasBottomBun || kind == PattyNone {
		return false
	}
	b.patty = kind
	b.state = BurgerCooking
	return true
}

// StartCooking turns the grill on.
func (b *Burger) StartCooking() bool {
	if b.state != BurgerCooking || b.patty == PattyNone || b.grilling {
		return false
	}
	b.grilling = true
	b.cookTime = 0
	return true
}

// UpdateCooking advances the grill timer.
func (b *Burger) UpdateCooking(dt float64) {
	if b.state != BurgerCooking || !b.grilling || dt <= 0 {
		return
	}
	b.cookTime += dt
	r := b.grill.At(b.cookTime)
	if r.Burned {
		b.burned = true
		b.cooked = false
		b.quality = 0
		return
	}
	if r.Ready {
		b.cooked = true
		b.quality = r.Quality
	}
}

// FinishCooking takes a cooked patty off the grill.
func (b *Burger) FinishCooking() bool {
	if b.state != BurgerCooking || !b.cooked {
		return false
	}
	b.grilling = false
	b.state = BurgerTopping
	return true
}

// AddTopping stacks an ingredient on the patty.
func (b *Burger) AddTopping(ing Ingredient) bool {
	if b.state != BurgerTopping || !b.cooked || !ing.Valid() {
		return false
	}
	b.toppings = append(b.toppings, ing)
	return true
}

// ToppingCount returns how many portions of ing are stacked.
func (b *Burger) ToppingCount(ing Ingredient) int {
	n := 0
	for _, t := range b.toppings {
		if t == ing {
			n++
		}
	}
	return n
}

// StartAssembling closes the toppings step.
func (b *Burger) StartAssembling() bool {
	if b.state != BurgerTopping || !b.cooked {
		return false
	}
	b.state = BurgerAssembling
	return true
}

// FinishAssembling puts the top bun on.
func (b *Burger) FinishAssembling() bool {
	if b.state != BurgerAssembling {
		return false
	}
	b.assembled = true
	b.state = BurgerComplete
	return true
}

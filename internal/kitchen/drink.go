package kitchen

import "math"

// DrinkState is a step of drink preparation.
type DrinkState int

const (
	DrinkEmpty DrinkState = iota
	DrinkFilling
	DrinkComplete
)

func (s DrinkState) String() string {
	switch s {
	case DrinkEmpty:
		return "empty"
	case DrinkFilling:
		return "filling"
	case DrinkComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Drink is a cup under the drink machine.
type Drink struct {
	pour Window

	state     DrinkState
	drinkType DrinkType
	fillTime  float64
	fillLevel float64
	filled    bool
	ice       bool
	quality   float64
}

// NewDrink returns an empty cup using the given pour window.
func NewDrink(pour Window) *Drink {
	return &Drink{pour: pour, quality: 100}
}

// Kind implements FoodItem.
func (d *Drink) Kind() Kind { return KindDrink }

// Stage implements FoodItem.
func (d *Drink) Stage() string { return d.state.String() }

// State returns the current preparation step.
func (d *Drink) State() DrinkState { return d.state }

// Quality implements FoodItem.
func (d *Drink) Quality() float64 { return d.quality }

// Complete implements FoodItem.
func (d *Drink) Complete() bool { return d.state == DrinkComplete }

// Tick implements FoodItem.
func (d *Drink) Tick(dt float64) { d.UpdateFilling(dt) }

func (d *Drink) Type() DrinkType    { return d.drinkType }
func (d *Drink) FillLevel() float64 { return d.fillLevel }
func (d *Drink) FillTime() float64  { return d.fillTime }
func (d *Drink) Filled() bool       { return d.filled }
func (d *Drink) Ice() bool          { return d.ice }

// SetType picks a drink and starts pouring.
func (d *Drink) SetType(t DrinkType) bool {
	if d.state != DrinkEmpty || !t.Valid() {
		return false
	}
	d.drinkType = t
	d.state = DrinkFilling
	d.fillTime = 0
	d.fillLevel = 0
	return true
}

// UpdateFilling advances the pour. The cup is full after Pour.Max seconds.
func (d *Drink) UpdateFilling(dt float64) {
	if d.state != DrinkFilling || dt <= 0 {
		return
	}
	d.fillTime += dt
	if d.pour.Max > 0 {
		d.fillLevel = math.Min(100, d.fillTime/d.pour.Max*100)
	}
	if r := d.pour.At(d.fillTime); r.Ready {
		d.filled = true
		d.quality = r.Quality
	}
}

// FinishFilling stops the machine once the cup holds enough.
func (d *Drink) FinishFilling() bool {
	if d.state != DrinkFilling || !d.filled {
		return false
	}
	d.state = DrinkComplete
	return true
}

// AddIce drops ice into a finished drink.
func (d *Drink) AddIce() bool {
	if d.state != DrinkComplete || d.ice {
		return false
	}
	d.ice = true
	return true
}

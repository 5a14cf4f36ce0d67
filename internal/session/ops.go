package session

import (
	"slices"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

// Player operations. Each acts on the selected ticket's item and returns
// false, changing nothing, when the step is not allowed right now.

func (c *Controller) selectedItem() kitchen.FoodItem {
	if c.phase != PhasePlaying {
		return nil
	}
	if t := c.Selected(); t != nil {
		return t.Item
	}
	return nil
}

func (c *Controller) pizza() *kitchen.Pizza {
	p, _ := c.selectedItem().(*kitchen.Pizza)
	return p
}

func (c *Controller) burger() *kitchen.Burger {
	b, _ := c.selectedItem().(*kitchen.Burger)
	return b
}

func (c *Controller) drink() *kitchen.Drink {
	d, _ := c.selectedItem().(*kitchen.Drink)
	return d
}

// charge takes the ingredient's price from the till.
func (c *Controller) charge(ing kitchen.Ingredient) {
	if !c.profile.ChargeIngredients {
		return
	}
	price := ing.Price()
	c.money -= price
	e := Event{Kind: EventIngredientCharged, Ingredient: ing, Delta: -price}
	if t := c.Selected(); t != nil {
		e.OrderID = t.Order.ID
		e.OrderType = t.Order.Type
		e.Customer = t.Order.Customer
	}
	c.emit(e)
}

// SelectTicket makes ticket i the one being worked on.
func (c *Controller) SelectTicket(i int) bool {
	if c.phase != PhasePlaying || i < 0 || i >= len(c.tickets) {
		return false
	}
	c.selected = i
	return true
}

// NextTicket cycles the selection.
func (c *Controller) NextTicket() bool {
	if c.phase != PhasePlaying || len(c.tickets) < 2 {
		return false
	}
	c.selected = (c.selected + 1) % len(c.tickets)
	return true
}

// Discard throws the selected item away and starts over with a fresh one.
// Ingredients already paid for are lost.
func (c *Controller) Discard() bool {
	t := c.Selected()
	if c.phase != PhasePlaying || t == nil {
		return false
	}
	t.Item = kitchen.NewItem(t.Order.Type, c.timings)
	return true
}

func (c *Controller) AddDough() bool {
	p := c.pizza()
	return p != nil && p.AddDough()
}

func (c *Controller) AddSauce(amount float64) bool {
	p := c.pizza()
	return p != nil && p.AddSauce(amount)
}

func (c *Controller) AddCheese(amount float64) bool {
	p := c.pizza()
	return p != nil && p.AddCheese(amount)
}

// AddTopping places a portion at (x, y) relative to the pizza centre. Only
// ingredients on this level's shelf are available.
func (c *Controller) AddTopping(ing kitchen.Ingredient, x, y float64) bool {
	p := c.pizza()
	if p == nil || !slices.Contains(kitchen.PizzaToppings(c.level), ing) {
		return false
	}
	if !p.AddTopping(ing, x, y) {
		return false
	}
	c.charge(ing)
	return true
}

// StartCooking puts the pizza in the oven.
func (c *Controller) StartCooking() bool {
	p := c.pizza()
	return p != nil && p.StartCooking()
}

// StartCutting takes a baked pizza out of the oven onto the board.
func (c *Controller) StartCutting() bool {
	p := c.pizza()
	return p != nil && p.StartCutting()
}

func (c *Controller) AddCut(x1, y1, x2, y2 float64) bool {
	p := c.pizza()
	return p != nil && p.AddCut(x1, y1, x2, y2)
}

func (c *Controller) AddBottomBun() bool {
	b := c.burger()
	return b != nil && b.AddBottomBun()
}

func (c *Controller) AddTopBun() bool {
	b := c.burger()
	return b != nil && b.AddTopBun()
}

func (c *Controller) AddPatty(kind kitchen.Patty) bool {
	b := c.burger()
	return b != nil && b.AddPatty(kind)
}

// Grill starts the grill, or takes the patty off once it is cooked.
func (c *Controller) Grill() bool {
	b := c.burger()
	if b == nil {
		return false
	}
	return b.StartCooking() || b.FinishCooking()
}

// AddBurgerTopping stacks an ingredient from this level's shelf.
func (c *Controller) AddBurgerTopping(ing kitchen.Ingredient) bool {
	b := c.burger()
	if b == nil || !slices.Contains(kitchen.BurgerToppings(c.level), ing) {
		return false
	}
	if !b.AddTopping(ing) {
		return false
	}
	c.charge(ing)
	return true
}

// Assemble closes the toppings step, or puts the top bun on.
func (c *Controller) Assemble() bool {
	b := c.burger()
	if b == nil {
		return false
	}
	return b.StartAssembling() || b.FinishAssembling()
}

// ChooseDrink starts pouring a drink from this level's machine.
func (c *Controller) ChooseDrink(d kitchen.DrinkType) bool {
	cup := c.drink()
	if cup == nil || !slices.Contains(kitchen.Drinks(c.level), d) {
		return false
	}
	return cup.SetType(d)
}

func (c *Controller) FinishFilling() bool {
	d := c.drink()
	return d != nil && d.FinishFilling()
}

func (c *Controller) AddIce() bool {
	d := c.drink()
	return d != nil && d.AddIce()
}

// Package bot is an autopilot chef. It plays a session through the same
// operations a player uses, with a skill level that controls how often it
// slips.
package bot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

const (
	baseReaction  = 0.2 // seconds between moves at full skill
	extraReaction = 0.8 // added at zero skill
	goldenAngle   = 2.399963229728653
	zoneWidth     = kitchen.PizzaRadius / 3
)

// Chef decides one move at a time for the selected ticket.
type Chef struct {
	skill float64
	rng   *rand.Rand
	wait  float64
	plans map[string]*plan
}

type placement struct {
	ing kitchen.Ingredient
	at  core.Point
}

// plan is what the chef intends to do for one order, mistakes included.
type plan struct {
	toppings []placement         // pizza
	stack    []kitchen.Ingredient // burger
	next     int

	cookAt float64 // oven or grill seconds
	patty  kitchen.Patty
	drink  kitchen.DrinkType
	fillTo float64
	ice    bool
}

// New creates a chef. Skill is clamped to [0, 1]; 1 never slips.
func New(skill float64, seed int64) *Chef {
	return &Chef{
		skill: math.Max(0, math.Min(1, skill)),
		rng:   rand.New(rand.NewSource(seed)),
		plans: make(map[string]*plan),
	}
}

// Skill returns the chef's skill.
func (c *Chef) Skill() float64 { return c.skill }

func (c *Chef) slips() bool {
	return c.rng.Float64() >= c.skill
}

func (c *Chef) reaction() float64 {
	return baseReaction + (1-c.skill)*extraReaction
}

// Act makes at most one move on the selected ticket. dt is the time since
// the previous call. It reports whether a move was made.
func (c *Chef) Act(ctrl *session.Controller, dt float64) bool {
	c.wait -= dt
	if c.wait > 0 || ctrl.Phase() != session.PhasePlaying {
		return false
	}
	t := ctrl.Selected()
	if t == nil {
		return false
	}
	c.prune(ctrl)

	p, ok := c.plans[t.Order.ID]
	if !ok {
		p = c.makePlan(t.Order, ctrl)
		c.plans[t.Order.ID] = p
	}

	var acted bool
	switch item := t.Item.(type) {
	case *kitchen.Pizza:
		acted = c.pizza(ctrl, item, p)
	case *kitchen.Burger:
		acted = c.burger(ctrl, item, p)
	case *kitchen.Drink:
		acted = c.drink(ctrl, item, p)
	}
	if acted {
		c.wait = c.reaction()
	}
	return acted
}

// prune forgets plans for orders that are no longer open.
func (c *Chef) prune(ctrl *session.Controller) {
	if len(c.plans) == 0 {
		return
	}
	open := make(map[string]bool)
	for _, t := range ctrl.Tickets() {
		open[t.Order.ID] = true
	}
	for id := range c.plans {
		if !open[id] {
			delete(c.plans, id)
		}
	}
}

func (c *Chef) makePlan(o orders.Order, ctrl *session.Controller) *plan {
	timings := ctrl.Timings()
	p := &plan{}
	switch o.Type {
	case kitchen.KindPizza:
		p.toppings = c.spread(c.pizzaToppings(o, ctrl.Level()))
		p.cookAt = c.timing(timings.Oven)
	case kitchen.KindBurger:
		p.stack = c.burgerStack(o)
		p.cookAt = c.timing(timings.Grill)
		p.patty = o.Patty
		if p.patty == kitchen.PattyNone {
			p.patty = kitchen.PattyBeef
		}
		if c.slips() && c.slips() {
			p.patty = otherPatty(p.patty)
		}
	case kitchen.KindDrink:
		p.drink = o.Drink
		p.fillTo = o.Size.FillTarget()
		if c.slips() {
			p.fillTo += (c.rng.Float64()*2 - 1) * 25
		}
		p.fillTo = math.Max(0, math.Min(100, p.fillTo))
		p.ice = o.IceRequired
		if c.slips() && c.slips() {
			p.ice = !p.ice
		}
	}
	return p
}

// timing picks when to take an item off the heat.
func (c *Chef) timing(w kitchen.Window) float64 {
	at := w.Ideal
	if c.slips() {
		at += c.rng.Float64()*(w.Max-w.Min+6) - (w.Ideal - w.Min)
	}
	return at
}

// count applies a possible slip to a required portion count.
func (c *Chef) count(n int) int {
	if !c.slips() {
		return n
	}
	if c.rng.Intn(2) == 0 {
		return max(0, n-1)
	}
	return n + 1
}

func (c *Chef) pizzaToppings(o orders.Order, level int) []kitchen.Ingredient {
	var portions []kitchen.Ingredient
	for _, ing := range o.SortedRequirements() {
		for range c.count(o.Requirements[ing]) {
			portions = append(portions, ing)
		}
	}
	if len(portions) == 0 {
		// The oven needs at least one topping.
		for _, ing := range kitchen.PizzaToppings(level) {
			if ing != kitchen.Cheese {
				portions = append(portions, ing)
				break
			}
		}
	}

	// A spread request only passes with all three rings equally covered, so
	// pad to a multiple of three with one extra portion per ingredient.
	if o.HasRequest(orders.RequestEvenDistribution) && !c.slips() {
		reqs := o.SortedRequirements()
		for i := 0; len(portions)%3 != 0 && len(reqs) > 0; i++ {
			portions = append(portions, reqs[i%len(reqs)])
		}
	}
	return portions
}

// spread places portions round-robin over the three rings.
func (c *Chef) spread(portions []kitchen.Ingredient) []placement {
	out := make([]placement, len(portions))
	for i, ing := range portions {
		zone := i % 3
		if c.slips() {
			zone = c.rng.Intn(3)
		}
		r := (float64(zone) + 0.5) * zoneWidth
		out[i] = placement{ing: ing, at: core.Polar(r, float64(i)*goldenAngle)}
	}
	return out
}

func (c *Chef) burgerStack(o orders.Order) []kitchen.Ingredient {
	var stack []kitchen.Ingredient
	for _, ing := range o.SortedRequirements() {
		for range c.count(o.Requirements[ing]) {
			stack = append(stack, ing)
		}
	}
	return stack
}

func otherPatty(p kitchen.Patty) kitchen.Patty {
	if p == kitchen.PattyBeef {
		return kitchen.PattyChicken
	}
	return kitchen.PattyBeef
}

func (c *Chef) serve(ctrl *session.Controller) bool {
	_, ok := ctrl.Serve()
	return ok
}

func (c *Chef) pizza(ctrl *session.Controller, pz *kitchen.Pizza, p *plan) bool {
	switch pz.State() {
	case kitchen.PizzaDough:
		return ctrl.AddDough()
	case kitchen.PizzaSauce:
		return ctrl.AddSauce(kitchen.DefaultPour)
	case kitchen.PizzaCheese:
		return ctrl.AddCheese(kitchen.DefaultPour)
	case kitchen.PizzaTopping:
		if p.next < len(p.toppings) {
			pl := p.toppings[p.next]
			p.next++
			ctrl.AddTopping(pl.ing, pl.at.X, pl.at.Y)
			return true
		}
		if ctrl.StartCooking() {
			return true
		}
		// Nothing ordered was on the shelf; the oven still needs a topping.
		return ctrl.AddTopping(kitchen.PizzaToppings(ctrl.Level())[0], 0, 0)
	case kitchen.PizzaCooking:
		if pz.Burned() {
			return c.restart(ctrl)
		}
		if pz.Cooked() && pz.CookTime() >= p.cookAt {
			return ctrl.StartCutting()
		}
		return false
	case kitchen.PizzaCutting:
		// Alternate the two axes; square cuts keep full quality.
		r := kitchen.PizzaRadius
		if pz.CutCount()%2 == 0 {
			return ctrl.AddCut(-r, 0, r, 0)
		}
		return ctrl.AddCut(0, -r, 0, r)
	case kitchen.PizzaComplete:
		return c.serve(ctrl)
	}
	return false
}

func (c *Chef) burger(ctrl *session.Controller, b *kitchen.Burger, p *plan) bool {
	switch b.State() {
	case kitchen.BurgerBun:
		if !b.HasBottomBun() {
			return ctrl.AddBottomBun()
		}
		return ctrl.AddTopBun()
	case kitchen.BurgerPatty:
		return ctrl.AddPatty(p.patty)
	case kitchen.BurgerCooking:
		switch {
		case !b.Grilling():
			return ctrl.Grill()
		case b.Burned():
			return c.restart(ctrl)
		case b.Cooked() && b.CookTime() >= p.cookAt:
			return ctrl.Grill()
		}
		return false
	case kitchen.BurgerTopping:
		if p.next < len(p.stack) {
			ing := p.stack[p.next]
			p.next++
			ctrl.AddBurgerTopping(ing)
			return true
		}
		return ctrl.Assemble()
	case kitchen.BurgerAssembling:
		return ctrl.Assemble()
	case kitchen.BurgerComplete:
		return c.serve(ctrl)
	}
	return false
}

func (c *Chef) drink(ctrl *session.Controller, d *kitchen.Drink, p *plan) bool {
	switch d.State() {
	case kitchen.DrinkEmpty:
		if ctrl.ChooseDrink(p.drink) {
			return true
		}
		// Not on this machine; pour anything to move the line along.
		p.drink = kitchen.Drinks(ctrl.Level())[0]
		return ctrl.ChooseDrink(p.drink)
	case kitchen.DrinkFilling:
		if d.Filled() && d.FillLevel() >= p.fillTo {
			return ctrl.FinishFilling()
		}
		return false
	case kitchen.DrinkComplete:
		if p.ice && !d.Ice() {
			return ctrl.AddIce()
		}
		return c.serve(ctrl)
	}
	return false
}

// restart throws the item away and replans the order.
func (c *Chef) restart(ctrl *session.Controller) bool {
	t := ctrl.Selected()
	if t == nil || !ctrl.Discard() {
		return false
	}
	c.plans[t.Order.ID] = c.makePlan(t.Order, ctrl)
	return true
}

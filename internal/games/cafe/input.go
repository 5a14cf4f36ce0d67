package cafe

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

// Cursor and knife steps.
const (
	cursorStep = kitchen.PizzaRadius / 8
	knifeStep  = math.Pi / 12
)

// actionOrder is the order actions in one frame are applied.
var actionOrder = []core.Action{
	core.ActionRestart,
	core.ActionConfirm,
	core.ActionNextOrder,
	core.ActionBack,
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
	core.ActionBase, core.ActionSauce, core.ActionCheese,
	core.ActionPatty, core.ActionPlace,
	core.ActionCook, core.ActionCut,
	core.ActionAssemble, core.ActionIce,
	core.ActionPick1, core.ActionPick2, core.ActionPick3,
	core.ActionPick4, core.ActionPick5, core.ActionPick6,
	core.ActionPick7, core.ActionPick8, core.ActionPick9,
	core.ActionServe,
}

// handle applies one action.
func (g *Game) handle(a core.Action) {
	if a == core.ActionRestart {
		g.restart()
		g.step("kitchen restarted")
		return
	}
	if g.ctrl.Phase() != session.PhasePlaying {
		if a == core.ActionConfirm {
			g.advancePhase()
		}
		return
	}

	switch a {
	case core.ActionConfirm, core.ActionServe:
		g.serve()
	case core.ActionNextOrder:
		if g.ctrl.NextTicket() {
			g.resetBench()
		}
	case core.ActionBack:
		g.try(g.ctrl.Discard(), "item binned, start over", "nothing to bin")
	case core.ActionUp:
		g.nudge(0, -1)
	case core.ActionDown:
		g.nudge(0, 1)
	case core.ActionLeft:
		g.nudge(-1, 0)
	case core.ActionRight:
		g.nudge(1, 0)
	default:
		if slot, ok := a.PickSlot(); ok {
			g.pick(slot)
			return
		}
		g.station(a)
	}
}

// advancePhase moves past the start, level complete and end screens.
func (g *Game) advancePhase() {
	switch g.ctrl.Phase() {
	case session.PhaseStart:
		g.ctrl.Start()
	case session.PhaseLevelComplete:
		g.ctrl.Continue()
	case session.PhaseGameOver, session.PhaseGameComplete:
		g.restart()
	}
	g.resetBench()
}

// restart begins a new game under a new session ID.
func (g *Game) restart() {
	g.ctrl.Restart()
	g.sessionID = uuid.NewString()
	g.resetBench()
}

func (g *Game) resetBench() {
	g.cursor = core.Point{}
	g.knife = 0
	g.slot = 0
}

func (g *Game) serve() {
	r, ok := g.ctrl.Serve()
	if !ok {
		g.refuse("not ready to serve")
		return
	}
	g.resetBench()
	logger.Debug("served", "score", r.Score, "tier", r.Tier, "notes", r.Notes)
}

// nudge moves the topping cursor, turns the knife or walks the shelf,
// depending on the current step.
func (g *Game) nudge(dx, dy int) {
	if p := g.pizza(); p != nil {
		switch p.State() {
		case kitchen.PizzaTopping:
			next := core.Point{X: g.cursor.X + float64(dx)*cursorStep, Y: g.cursor.Y + float64(dy)*cursorStep}
			if next.Len() <= kitchen.PizzaRadius {
				g.cursor = next
			}
			return
		case kitchen.PizzaCutting:
			g.knife = math.Mod(g.knife+float64(dx+dy)*knifeStep+2*math.Pi, math.Pi)
			return
		}
	}
	n := len(g.shelf())
	if n > 0 && dx != 0 {
		g.slot = (g.slot + dx + n) % n
	}
}

// pick uses shelf slot i.
func (g *Game) pick(i int) {
	t := g.ctrl.Selected()
	if t == nil {
		return
	}
	if b, ok := t.Burger(); ok && b.State() == kitchen.BurgerPatty {
		switch i {
		case 0:
			g.patty = kitchen.PattyBeef
		case 1:
			g.patty = kitchen.PattyChicken
		default:
			return
		}
		g.addPatty()
		return
	}

	slots := g.shelf()
	if i < 0 || i >= len(slots) {
		return
	}
	g.slot = i
	s := slots[i]
	switch t.Order.Type {
	case kitchen.KindPizza:
		g.step(s.label + " ready, place it on the pizza")
	case kitchen.KindBurger:
		g.try(g.ctrl.AddBurgerTopping(s.ing), "", s.label+" can't go on yet")
	case kitchen.KindDrink:
		g.try(g.ctrl.ChooseDrink(s.drink), "pouring "+s.label, "cup already in use")
	}
}

// station runs the workbench actions.
func (g *Game) station(a core.Action) {
	t := g.ctrl.Selected()
	if t == nil {
		return
	}
	switch t.Order.Type {
	case kitchen.KindPizza:
		g.pizzaAction(a)
	case kitchen.KindBurger:
		g.burgerAction(a)
	case kitchen.KindDrink:
		g.drinkAction(a)
	}
}

func (g *Game) pizzaAction(a core.Action) {
	switch a {
	case core.ActionBase:
		g.try(g.ctrl.AddDough(), "dough rolled out", "dough already down")
	case core.ActionSauce:
		g.try(g.ctrl.AddSauce(kitchen.DefaultPour), "sauce spread", "no room for sauce")
	case core.ActionCheese:
		g.try(g.ctrl.AddCheese(kitchen.DefaultPour), "cheese sprinkled", "no room for cheese")
	case core.ActionPlace:
		g.placeTopping(g.cursor)
	case core.ActionCook:
		p := g.pizza()
		if p != nil && p.State() == kitchen.PizzaCooking {
			g.try(g.ctrl.StartCutting(), fmt.Sprintf("out of the oven at %.1fs", p.CookTime()), "")
			return
		}
		g.try(g.ctrl.StartCooking(), "into the oven", "not ready for the oven")
	case core.ActionCut:
		p := g.pizza()
		if p != nil && p.State() == kitchen.PizzaCooking {
			g.try(g.ctrl.StartCutting(), "onto the board", "")
			return
		}
		g.cut(g.knife)
	}
}

func (g *Game) placeTopping(at core.Point) {
	slots := g.shelf()
	if g.slot >= len(slots) {
		return
	}
	ing := slots[g.slot].ing
	g.try(g.ctrl.AddTopping(ing, at.X, at.Y), "", "can't place "+ing.String()+" now")
}

func (g *Game) cut(angle float64) {
	c := kitchen.CutThroughCenter(angle)
	if g.ctrl.AddCut(c.From.X, c.From.Y, c.To.X, c.To.Y) {
		g.knife = math.Mod(angle+math.Pi/4, math.Pi)
		return
	}
	g.refuse("nothing to cut")
}

func (g *Game) burgerAction(a core.Action) {
	switch a {
	case core.ActionBase:
		g.try(g.ctrl.AddBottomBun(), "bottom bun down", "bun already down")
	case core.ActionSauce:
		g.try(g.ctrl.AddTopBun(), "top bun on", "not time for the top bun")
	case core.ActionPatty:
		if g.patty == kitchen.PattyBeef {
			g.patty = kitchen.PattyChicken
		} else {
			g.patty = kitchen.PattyBeef
		}
		g.step("patty: " + g.patty.String())
	case core.ActionPlace:
		b := g.burger()
		if b != nil && b.State() == kitchen.BurgerPatty {
			g.addPatty()
			return
		}
		slots := g.shelf()
		if g.slot < len(slots) {
			g.try(g.ctrl.AddBurgerTopping(slots[g.slot].ing), "", "can't stack that now")
		}
	case core.ActionCook:
		g.try(g.ctrl.Grill(), "grill", "nothing to grill")
	case core.ActionAssemble:
		g.try(g.ctrl.Assemble(), "assembling", "not ready to assemble")
	}
}

func (g *Game) addPatty() {
	g.try(g.ctrl.AddPatty(g.patty), g.patty.String()+" patty down", "patty not wanted yet")
}

func (g *Game) drinkAction(a core.Action) {
	switch a {
	case core.ActionCook, core.ActionPlace:
		d := g.drink()
		if d != nil && d.State() == kitchen.DrinkEmpty {
			slots := g.shelf()
			if g.slot < len(slots) {
				g.try(g.ctrl.ChooseDrink(slots[g.slot].drink), "pouring "+slots[g.slot].label, "")
			}
			return
		}
		if !g.ctrl.FinishFilling() {
			g.refuse("nothing pouring")
			return
		}
		g.step(fmt.Sprintf("filled to %.0f%%", d.FillLevel()))
	case core.ActionIce:
		g.try(g.ctrl.AddIce(), "ice added", "ice must go in a full cup")
	}
}

// try reports the outcome of an operation on the message line. Empty
// texts are not shown.
func (g *Game) try(ok bool, done, failed string) {
	switch {
	case ok && done != "":
		g.step(done)
	case !ok && failed != "":
		g.refuse(failed)
	}
}

// click hit-tests a mouse press.
func (g *Game) click(x, y int) {
	if g.ctrl.Phase() != session.PhasePlaying {
		g.advancePhase()
		return
	}
	l := g.layout()

	for i, r := range l.tickets {
		if r.Contains(x, y) {
			if g.ctrl.SelectTicket(i) {
				g.resetBench()
			}
			return
		}
	}

	t := g.ctrl.Selected()
	if t == nil {
		return
	}
	for _, b := range l.buttons(t.Order.Type) {
		if b.rect.Contains(x, y) {
			g.handle(b.action)
			return
		}
	}
	for i, s := range g.shelf() {
		if s.rect.Contains(x, y) {
			g.pick(i)
			return
		}
	}

	if p := g.pizza(); p != nil && l.onPizza(x, y) {
		at := l.toPizza(x, y)
		switch p.State() {
		case kitchen.PizzaTopping:
			g.cursor = at
			g.placeTopping(at)
		case kitchen.PizzaCutting:
			g.cut(at.Angle())
		}
	}
}

func (g *Game) layout() layout {
	return newLayout(g.runtime.ScreenW, g.runtime.ScreenH)
}

func (g *Game) shelf() []shelfSlot {
	t := g.ctrl.Selected()
	if t == nil {
		return nil
	}
	return g.layout().shelf(t.Order.Type, g.ctrl.Level())
}

func (g *Game) pizza() *kitchen.Pizza {
	if t := g.ctrl.Selected(); t != nil {
		p, _ := t.Pizza()
		return p
	}
	return nil
}

func (g *Game) burger() *kitchen.Burger {
	if t := g.ctrl.Selected(); t != nil {
		b, _ := t.Burger()
		return b
	}
	return nil
}

func (g *Game) drink() *kitchen.Drink {
	if t := g.ctrl.Selected(); t != nil {
		d, _ := t.Drink()
		return d
	}
	return nil
}

package cafe

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

// Screen geometry.
const (
	hudRows      = 2
	ticketW      = 34
	ticketH      = 5
	pizzaRX      = 16.0
	pizzaRY      = 8.0
	buttonGap    = 1
	shelfFromBot = 5
	btnFromBot   = 3
)

// layout is the screen split for one frame size.
type layout struct {
	w, h    int
	tickets []core.Rect
	bench   core.Rect
	shelfY  int
	buttonY int
	msgY    int
}

func newLayout(w, h int) layout {
	l := layout{
		w:       w,
		h:       h,
		shelfY:  h - shelfFromBot,
		buttonY: h - btnFromBot,
		msgY:    h - 1,
	}
	for y := hudRows; y+ticketH <= l.shelfY-1; y += ticketH {
		l.tickets = append(l.tickets, core.Rect{X: 0, Y: y, W: ticketW, H: ticketH})
	}
	l.bench = core.Rect{X: ticketW + 1, Y: hudRows, W: w - ticketW - 1, H: l.shelfY - hudRows - 1}
	return l
}

// toScreen maps a pizza-space point onto the bench.
func (l layout) toScreen(p core.Point) (int, int) {
	cx, cy := l.bench.Center()
	return cx + int(math.Round(p.X/kitchen.PizzaRadius*pizzaRX)), cy + int(math.Round(p.Y/kitchen.PizzaRadius*pizzaRY))
}

// toPizza maps a bench cell back to pizza space.
func (l layout) toPizza(x, y int) core.Point {
	cx, cy := l.bench.Center()
	return core.Point{
		X: float64(x-cx) / pizzaRX * kitchen.PizzaRadius,
		Y: float64(y-cy) / pizzaRY * kitchen.PizzaRadius,
	}
}

// onPizza reports whether a cell falls inside the pizza disc.
func (l layout) onPizza(x, y int) bool {
	return l.toPizza(x, y).Len() <= kitchen.PizzaRadius
}

// shelfSlot is one pickable entry on the shelf row.
type shelfSlot struct {
	label string
	color core.Color
	ing   kitchen.Ingredient
	drink kitchen.DrinkType
	rect  core.Rect
}

// shelf lists what the station for kind offers at level.
func (l layout) shelf(kind kitchen.Kind, level int) []shelfSlot {
	var slots []shelfSlot
	switch kind {
	case kitchen.KindPizza:
		for _, ing := range kitchen.PizzaToppings(level) {
			slots = append(slots, shelfSlot{label: ing.String(), color: ing.Color(), ing: ing})
		}
	case kitchen.KindBurger:
		for _, ing := range kitchen.BurgerToppings(level) {
			slots = append(slots, shelfSlot{label: ing.String(), color: ing.Color(), ing: ing})
		}
	case kitchen.KindDrink:
		for _, d := range kitchen.Drinks(level) {
			slots = append(slots, shelfSlot{label: d.String(), color: d.Color(), drink: d})
		}
	}
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = fmt.Sprintf("[%d %s]", i+1, s.label)
	}
	rects := placeRow(labels, l.shelfY, l.w)
	for i := range rects {
		slots[i].rect = rects[i]
	}
	return slots[:len(rects)]
}

// button is a clickable action on the button row.
type button struct {
	label  string
	action core.Action
	rect   core.Rect
}

var (
	pizzaButtons = []button{
		{label: "Dough", action: core.ActionBase},
		{label: "Sauce", action: core.ActionSauce},
		{label: "Cheese", action: core.ActionCheese},
		{label: "Oven", action: core.ActionCook},
		{label: "Cut", action: core.ActionCut},
	}
	burgerButtons = []button{
		{label: "Bun", action: core.ActionBase},
		{label: "Patty", action: core.ActionPlace},
		{label: "Grill", action: core.ActionCook},
		{label: "Build", action: core.ActionAssemble},
		{label: "Top bun", action: core.ActionSauce},
	}
	drinkButtons = []button{
		{label: "Stop", action: core.ActionCook},
		{label: "Ice", action: core.ActionIce},
	}
	commonButtons = []button{
		{label: "Serve", action: core.ActionServe},
		{label: "Next", action: core.ActionNextOrder},
		{label: "Trash", action: core.ActionBack},
	}
)

// buttons returns the button row for the station of kind.
func (l layout) buttons(kind kitchen.Kind) []button {
	var row []button
	switch kind {
	case kitchen.KindPizza:
		row = append(row, pizzaButtons...)
	case kitchen.KindBurger:
		row = append(row, burgerButtons...)
	case kitchen.KindDrink:
		row = append(row, drinkButtons...)
	}
	row = append(row, commonButtons...)
	labels := make([]string, len(row))
	for i, b := range row {
		labels[i] = "[" + b.label + "]"
	}
	rects := placeRow(labels, l.buttonY, l.w)
	for i := range rects {
		row[i].rect = rects[i]
	}
	return row[:len(rects)]
}

// placeRow lays labels left to right on row y, dropping what does not fit.
func placeRow(labels []string, y, w int) []core.Rect {
	x := 1
	rects := make([]core.Rect, 0, len(labels))
	for _, label := range labels {
		n := len(label)
		if x+n > w {
			break
		}
		rects = append(rects, core.Rect{X: x, Y: y, W: n, H: 1})
		x += n + buttonGap
	}
	return rects
}

package cafe

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst)

	switch g.ctrl.Phase() {
	case session.PhaseStart:
		g.renderStart(dst)
	case session.PhaseLevelComplete:
		g.renderLevelComplete(dst)
	case session.PhaseGameOver:
		g.renderGameOver(dst)
	case session.PhaseGameComplete:
		g.renderGameComplete(dst)
	default:
		g.renderTickets(dst, l)
		g.renderBench(dst, l)
		g.renderShelf(dst, l)
		g.renderButtons(dst, l)
		if g.paused {
			g.renderPaused(dst)
		}
	}

	g.renderMessages(dst, l)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	msg := "Window too small"
	dst.DrawText((w-len(msg))/2, h/2, msg)
	hint := fmt.Sprintf("Need %dx%d, have %dx%d", minWidth, minHeight, w, h)
	dst.DrawText((w-len(hint))/2, h/2+1, hint)
}

// renderHUD draws level, money and progress on the top two rows.
func (g *Game) renderHUD(dst *core.Screen) {
	target := g.ctrl.Target()
	x := dst.DrawTextColor(0, 0, g.Title(), core.ColorBrightYellow)
	x = dst.DrawTextColor(x+2, 0, fmt.Sprintf("Level %d/%d %s", g.ctrl.Level(), g.ctrl.LevelCount(), target.Name), core.ColorWhite)

	moneyColor := core.ColorBrightGreen
	if g.ctrl.Money() < 0 {
		moneyColor = core.ColorBrightRed
	}
	x = dst.DrawTextColor(x+2, 0, fmt.Sprintf("$%d/%d", g.ctrl.Money(), target.MoneyTarget), moneyColor)
	dst.DrawTextColor(x+2, 0, fmt.Sprintf("Score %d", g.ctrl.Score()), core.ColorWhite)

	timeColor := core.ColorCyan
	if g.ctrl.TimeLeft() < 30 {
		timeColor = core.ColorBrightRed
	}
	x = dst.DrawTextColor(0, 1, fmt.Sprintf("Time %3.0fs", math.Max(0, g.ctrl.TimeLeft())), timeColor)
	x = dst.DrawTextColor(x+2, 1, fmt.Sprintf("Served %d/%d", g.ctrl.Served(), target.Customers), core.ColorWhite)
	x = dst.DrawTextColor(x+2, 1, fmt.Sprintf("Waiting %d", g.ctrl.PendingCount()), core.ColorGray)
	dst.DrawTextColor(x+2, 1, "profile "+g.ctrl.Profile().Name, core.ColorGray)
}

// renderTickets draws one box per open order, most urgent in red.
func (g *Game) renderTickets(dst *core.Screen, l layout) {
	tickets := g.ctrl.Tickets()
	for i, r := range l.tickets {
		if i >= len(tickets) {
			break
		}
		t := tickets[i]

		border := core.ColorGray
		if i == g.ctrl.SelectedIndex() {
			border = core.ColorBrightWhite
		}
		dst.DrawBox(r, border)

		head := fmt.Sprintf("%d %s %s", i+1, t.Order.Customer, face(t.Customer.Expression()))
		dst.DrawTextColor(r.X+1, r.Y, clip(head, r.W-2), border)

		summary := t.Order.Summary()
		inner := r.W - 2
		dst.DrawText(r.X+1, r.Y+1, clip(summary, inner))
		if len(summary) > inner {
			dst.DrawText(r.X+1, r.Y+2, clip(summary[inner:], inner))
		} else if len(t.Order.SpecialRequests) > 0 {
			dst.DrawTextColor(r.X+1, r.Y+2, clip("+ "+joinRequests(t.Order.SpecialRequests), inner), core.ColorMagenta)
		}

		g.renderTimer(dst, r, t)
	}
	if hidden := len(tickets) - len(l.tickets); hidden > 0 {
		last := l.tickets[len(l.tickets)-1]
		dst.DrawTextColor(last.X+1, last.Bottom(), fmt.Sprintf("+%d more", hidden), core.ColorGray)
	}
}

// renderTimer draws the countdown bar on a ticket's last inner row.
func (g *Game) renderTimer(dst *core.Screen, r core.Rect, t *session.Ticket) {
	width := r.W - 10
	left := 1 - t.Urgency()
	filled := int(math.Round(left * float64(width)))

	c := core.ColorGreen
	switch {
	case left < 0.25:
		c = core.ColorBrightRed
	case left < 0.5:
		c = core.ColorYellow
	}
	y := r.Bottom() - 2
	for i := range width {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		dst.SetColor(r.X+1+i, y, ch, c)
	}
	dst.DrawTextColor(r.X+2+width, y, fmt.Sprintf("%3.0fs", math.Max(0, t.Remaining)), c)
}

// renderBench draws the item being prepared for the selected ticket.
func (g *Game) renderBench(dst *core.Screen, l layout) {
	dst.DrawBox(l.bench, core.ColorBrown)
	t := g.ctrl.Selected()
	if t == nil {
		dst.DrawTextCentered(l.bench.Y+l.bench.H/2, "waiting for customers...", core.ColorGray)
		return
	}
	stage := fmt.Sprintf(" %s: %s ", t.Order.Type, t.Item.Stage())
	dst.DrawTextColor(l.bench.X+2, l.bench.Y, stage, core.ColorBrightWhite)

	switch it := t.Item.(type) {
	case *kitchen.Pizza:
		g.renderPizza(dst, l, it)
	case *kitchen.Burger:
		g.renderBurger(dst, l, it)
	case *kitchen.Drink:
		g.renderDrink(dst, l, it)
	}
}

func (g *Game) renderPizza(dst *core.Screen, l layout, p *kitchen.Pizza) {
	if !p.HasDough() {
		g.benchHint(dst, l, "press Dough to roll out the base")
		return
	}

	// Disc: crust on the rim, the top layer inside.
	fill, fillColor := '.', core.ColorCream
	switch {
	case p.Burned():
		fill, fillColor = '%', core.ColorGray
	case p.HasCheese():
		fill, fillColor = ':', core.ColorBrightYellow
	case p.HasSauce():
		fill, fillColor = '~', core.ColorRed
	}
	for y := l.bench.Y + 1; y < l.bench.Bottom()-1; y++ {
		for x := l.bench.X + 1; x < l.bench.Right()-1; x++ {
			d := l.toPizza(x, y).Len()
			switch {
			case d > kitchen.PizzaRadius:
			case d > kitchen.PizzaRadius*0.88:
				dst.SetColor(x, y, 'o', core.ColorOrange)
			default:
				dst.SetColor(x, y, fill, fillColor)
			}
		}
	}

	for _, c := range p.Cuts() {
		g.renderCut(dst, l, c, core.ColorWhite)
	}
	for _, tp := range p.Toppings() {
		x, y := l.toScreen(tp.Pos)
		dst.SetColor(x, y, tp.Ingredient.Glyph(), tp.Ingredient.Color())
	}

	info := l.bench.Bottom() - 2
	switch p.State() {
	case kitchen.PizzaSauce, kitchen.PizzaCheese:
		dst.DrawText(l.bench.X+2, info, fmt.Sprintf("sauce %3.0f%%  cheese %3.0f%%", p.SauceCoverage(), p.CheeseCoverage()))
	case kitchen.PizzaTopping:
		x, y := l.toScreen(g.cursor)
		dst.SetColor(x, y, '+', core.ColorBrightWhite)
		dst.DrawText(l.bench.X+2, info, "arrows move, Place drops the shelf pick, Oven when done")
	case kitchen.PizzaCooking:
		g.renderGauge(dst, l, "oven", p.CookTime(), g.ctrl.Timings().Oven)
	case kitchen.PizzaCutting:
		g.renderCut(dst, l, kitchen.CutThroughCenter(g.knife), core.ColorCyan)
		dst.DrawText(l.bench.X+2, info, fmt.Sprintf("cuts %d/%d, arrows turn the knife", p.CutCount(), kitchen.CutsRequired))
	case kitchen.PizzaComplete:
		dst.DrawTextColor(l.bench.X+2, info, "ready to serve", core.ColorBrightGreen)
	}
}

// renderCut draws a knife line across the pizza.
func (g *Game) renderCut(dst *core.Screen, l layout, c kitchen.Cut, color core.Color) {
	const steps = 48
	for i := range steps + 1 {
		f := float64(i) / steps
		p := core.Point{X: c.From.X + (c.To.X-c.From.X)*f, Y: c.From.Y + (c.To.Y-c.From.Y)*f}
		x, y := l.toScreen(p)
		dst.SetColor(x, y, '/', color)
	}
}

func (g *Game) renderBurger(dst *core.Screen, l layout, b *kitchen.Burger) {
	cx, cy := l.bench.Center()
	const width = 22
	left := cx - width/2

	// Build the stack bottom up.
	var layers []string
	var colors []core.Color
	push := func(s string, c core.Color) {
		layers = append(layers, s)
		colors = append(colors, c)
	}
	if b.HasBottomBun() {
		push(strings.Repeat("▀", width), core.ColorOrange)
	}
	if b.Patty() != kitchen.PattyNone {
		c := core.ColorBrown
		switch {
		case b.Burned():
			c = core.ColorGray
		case !b.Cooked():
			c = core.ColorRed
		}
		push(strings.Repeat("=", width), c)
	}
	for _, ing := range b.Toppings() {
		push(center(ing.String(), width, ing.Glyph()), ing.Color())
	}
	if b.HasTopBun() {
		push(strings.Repeat("▄", width), core.ColorOrange)
	}

	base := cy + len(layers)/2
	for i, s := range layers {
		dst.DrawTextColor(left, base-i, s, colors[i])
	}
	if len(layers) == 0 {
		g.benchHint(dst, l, "press Bun to start")
	}

	info := l.bench.Bottom() - 2
	switch b.State() {
	case kitchen.BurgerPatty:
		dst.DrawText(l.bench.X+2, info, "patty: "+g.patty.String()+" (1 beef, 2 chicken)")
	case kitchen.BurgerCooking:
		if b.Grilling() {
			g.renderGauge(dst, l, "grill", b.CookTime(), g.ctrl.Timings().Grill)
		} else {
			dst.DrawText(l.bench.X+2, info, "press Grill to start")
		}
	case kitchen.BurgerTopping:
		dst.DrawText(l.bench.X+2, info, "pick toppings, Build when done")
	case kitchen.BurgerAssembling:
		dst.DrawText(l.bench.X+2, info, "Top bun, then Build")
	case kitchen.BurgerComplete:
		dst.DrawTextColor(l.bench.X+2, info, "ready to serve", core.ColorBrightGreen)
	}
}

func (g *Game) renderDrink(dst *core.Screen, l layout, d *kitchen.Drink) {
	cx, cy := l.bench.Center()
	const cupW, cupH = 10, 10
	cup := core.Rect{X: cx - cupW/2, Y: cy - cupH/2, W: cupW, H: cupH}
	dst.DrawBox(cup, core.ColorWhite)

	inner := cupH - 2
	level := int(math.Round(d.FillLevel() / 100 * float64(inner)))
	for i := range level {
		y := cup.Bottom() - 2 - i
		for x := cup.X + 1; x < cup.Right()-1; x++ {
			dst.SetColor(x, y, '▒', d.Type().Color())
		}
	}
	if d.Ice() {
		dst.DrawTextColor(cup.X+2, cup.Bottom()-2-max(0, level-1), "▫ ▫ ▫", core.ColorBrightWhite)
	}

	info := l.bench.Bottom() - 2
	switch d.State() {
	case kitchen.DrinkEmpty:
		dst.DrawText(l.bench.X+2, info, "pick a drink to start pouring")
	case kitchen.DrinkFilling:
		g.renderGauge(dst, l, "pour", d.FillTime(), g.ctrl.Timings().Pour)
		dst.DrawText(cup.Right()+1, cup.Y, fmt.Sprintf("%3.0f%%", d.FillLevel()))
	case kitchen.DrinkComplete:
		dst.DrawTextColor(l.bench.X+2, info, "ready to serve", core.ColorBrightGreen)
	}
}

// renderGauge draws a timer against its window: green inside the ideal
// span, red past the maximum.
func (g *Game) renderGauge(dst *core.Screen, l layout, label string, t float64, w kitchen.Window) {
	y := l.bench.Bottom() - 2
	x := dst.DrawTextColor(l.bench.X+2, y, fmt.Sprintf("%s %5.1fs ", label, t), core.ColorWhite)
	width := l.bench.Right() - 2 - x
	if width <= 0 {
		return
	}
	limit := w.Max * 1.5
	if w.Burn > 0 {
		limit = w.Burn
	}
	for i := range width {
		at := float64(i) / float64(width) * limit
		c := core.ColorGray
		switch {
		case at >= w.Min && at <= w.Max:
			c = core.ColorGreen
		case at > w.Max:
			c = core.ColorRed
		}
		ch := '·'
		if at <= t {
			ch = '█'
		}
		dst.SetColor(x+i, y, ch, c)
	}
}

func (g *Game) benchHint(dst *core.Screen, l layout, text string) {
	dst.DrawTextCentered(l.bench.Y+l.bench.H/2, text, core.ColorGray)
}

// renderShelf draws the selectable ingredients or drinks.
func (g *Game) renderShelf(dst *core.Screen, l layout) {
	dst.DrawHLine(0, l.shelfY-1, l.w, '─', core.ColorGray)
	for i, s := range g.shelf() {
		label := fmt.Sprintf("[%d %s]", i+1, s.label)
		c := s.color
		if i == g.slot {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColor(s.rect.X, s.rect.Y, label, c)
	}
}

func (g *Game) renderButtons(dst *core.Screen, l layout) {
	t := g.ctrl.Selected()
	if t == nil {
		return
	}
	for _, b := range l.buttons(t.Order.Type) {
		dst.DrawTextColor(b.rect.X, b.rect.Y, "["+b.label+"]", core.ColorCyan)
	}
}

// renderMessages draws the newest notices on the last row.
func (g *Game) renderMessages(dst *core.Screen, l layout) {
	x := 0
	for _, m := range g.messages.latest(maxShown) {
		c := core.ColorWhite
		switch m.tone {
		case toneGood:
			c = core.ColorBrightGreen
		case toneBad:
			c = core.ColorBrightRed
		}
		x = dst.DrawTextColor(x, l.msgY, m.text, c) + 3
		if x >= l.w {
			break
		}
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	h := g.runtime.ScreenH
	target := g.ctrl.Target()
	dst.DrawTextCentered(h/2-4, strings.ToUpper(g.Title()), core.ColorBrightYellow)
	dst.DrawTextCentered(h/2-2, fmt.Sprintf("Level %d: %s", target.ID, target.Name), core.ColorWhite)
	dst.DrawTextCentered(h/2-1, fmt.Sprintf("Serve %d customers and hold $%d in %.0fs", target.Customers, target.MoneyTarget, target.TimeLimit), core.ColorWhite)
	dst.DrawTextCentered(h/2+1, "Enter to open the kitchen", core.ColorBrightGreen)
}

func (g *Game) renderLevelComplete(dst *core.Screen) {
	h := g.runtime.ScreenH
	dst.DrawTextCentered(h/2-2, fmt.Sprintf("LEVEL %d COMPLETE", g.ctrl.Level()-1), core.ColorBrightGreen)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Money $%d  Score %d", g.ctrl.Money(), g.ctrl.Score()), core.ColorWhite)
	dst.DrawTextCentered(h/2+2, "Enter for the next level", core.ColorBrightYellow)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	h := g.runtime.ScreenH
	dst.DrawTextCentered(h/2-2, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(h/2, g.ctrl.Reason(), core.ColorWhite)
	st := g.ctrl.Stats()
	dst.DrawTextCentered(h/2+1, fmt.Sprintf("Served %d  Rejected %d  Walked out %d", st.TotalServed, st.Rejected, st.TimedOut), core.ColorGray)
	dst.DrawTextCentered(h/2+3, "Enter to try again", core.ColorBrightYellow)
}

func (g *Game) renderGameComplete(dst *core.Screen) {
	h := g.runtime.ScreenH
	rating := g.ctrl.Rating()
	stars := strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	dst.DrawTextCentered(h/2-3, "ALL LEVELS CLEARED", core.ColorBrightGreen)
	dst.DrawTextCentered(h/2-1, stars, core.ColorBrightYellow)
	dst.DrawTextCentered(h/2+1, fmt.Sprintf("Money $%d  Score %d  Served %d", g.ctrl.Money(), g.ctrl.Score(), g.ctrl.TotalServed()), core.ColorWhite)
	dst.DrawTextCentered(h/2+3, "Enter to play again", core.ColorBrightYellow)
}

func (g *Game) renderPaused(dst *core.Screen) {
	h := g.runtime.ScreenH
	dst.DrawTextCentered(h/2, "  PAUSED  ", core.ColorBrightYellow)
}

// face is a short emoticon for a customer's expression.
func face(e orders.Expression) string {
	switch e {
	case orders.ExpressionAngry:
		return ">:("
	case orders.ExpressionImpatient:
		return ":/"
	case orders.Expression(orders.MoodHappy), orders.Expression(orders.MoodGenerous):
		return ":D"
	case orders.Expression(orders.MoodPicky):
		return ":|"
	default:
		return ":)"
	}
}

func joinRequests(rs []orders.SpecialRequest) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// center pads label to width with fill runes on both sides.
func center(label string, width int, fill rune) string {
	pad := max(0, width-len(label)-2)
	left := pad / 2
	return strings.Repeat(string(fill), left) + " " + label + " " + strings.Repeat(string(fill), pad-left)
}

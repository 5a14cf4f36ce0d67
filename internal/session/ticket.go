package session

import (
	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
)

// Ticket is an open order: the customer waiting for it, its countdown and
// the item being prepared for it.
type Ticket struct {
	Order    orders.Order
	Customer *orders.Customer
	// Remaining is the time left before the customer walks out, in seconds.
	Remaining float64
	Item      kitchen.FoodItem

	opened float64
}

func newTicket(o orders.Order, t kitchen.Timings, now float64) *Ticket {
	return &Ticket{
		Order:     o,
		Customer:  orders.NewCustomer(o.Customer, o.Mood),
		Remaining: float64(o.TimeLimit),
		Item:      kitchen.NewItem(o.Type, t),
		opened:    now,
	}
}

// Pizza returns the workbench pizza, if this is a pizza order.
func (t *Ticket) Pizza() (*kitchen.Pizza, bool) {
	p, ok := t.Item.(*kitchen.Pizza)
	return p, ok
}

// Burger returns the workbench burger, if this is a burger order.
func (t *Ticket) Burger() (*kitchen.Burger, bool) {
	b, ok := t.Item.(*kitchen.Burger)
	return b, ok
}

// Drink returns the workbench cup, if this is a drink order.
func (t *Ticket) Drink() (*kitchen.Drink, bool) {
	d, ok := t.Item.(*kitchen.Drink)
	return d, ok
}

// Urgency is the share of the time limit already spent (0-1).
func (t *Ticket) Urgency() float64 {
	if t.Order.TimeLimit <= 0 {
		return 1
	}
	return 1 - max(0, t.Remaining)/float64(t.Order.TimeLimit)
}

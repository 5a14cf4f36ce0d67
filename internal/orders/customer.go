package orders

import "math"

// LeaveThreshold is the patience above which a departing customer still pays
// half of the penalty instead of all of it.
const LeaveThreshold = 30.0

// Expression is how a waiting customer looks.
type Expression string

const (
	ExpressionImpatient Expression = "impatient"
	ExpressionAngry     Expression = "angry"
)

// Customer waits for one order. Patience drains with wait time on its own
// clock, independent of the order's time limit.
type Customer struct {
	Name string
	Mood Mood

	wait        float64
	maxWait     float64
	patience    float64
	maxPatience float64
}

// NewCustomer seats a customer. Mood sets how long they tolerate waiting.
func NewCustomer(name string, mood Mood) *Customer {
	c := &Customer{Name: name, Mood: mood}
	switch mood {
	case MoodImpatient:
		c.maxWait, c.maxPatience = 40, 80
	case MoodPicky:
		c.maxWait, c.maxPatience = 70, 60
	default:
		c.maxWait, c.maxPatience = 60, 100
	}
	c.patience = c.maxPatience
	return c
}

// Update advances the wait clock.
func (c *Customer) Update(dt float64) {
	if dt <= 0 {
		return
	}
	c.wait += dt
	c.patience = math.Max(0, c.maxPatience-c.wait/c.maxWait*100)
}

// Patience returns the remaining patience (0-100).
func (c *Customer) Patience() float64 { return c.patience }

// Wait returns seconds spent waiting.
func (c *Customer) Wait() float64 { return c.wait }

// MaxWait returns how long this customer is willing to wait.
func (c *Customer) MaxWait() float64 { return c.maxWait }

// Exhausted reports whether patience has run out completely.
func (c *Customer) Exhausted() bool { return c.patience <= 0 }

// Expression returns the current face. A customer who has not waited long
// shows their mood.
func (c *Customer) Expression() Expression {
	switch {
	case c.wait > c.maxWait*0.7:
		return ExpressionAngry
	case c.wait > c.maxWait*0.4:
		return ExpressionImpatient
	default:
		return Expression(c.Mood)
	}
}

// Leave reports whether the customer leaves on good enough terms to pay part
// of the penalty.
func (c *Customer) Leave() bool {
	return c.patience > LeaveThreshold
}

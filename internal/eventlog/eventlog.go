// Package eventlog fans session events out to a structured logger and the
// metrics collector. Both sinks are optional.
package eventlog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cafe/internal/metrics"
	"github.com/vovakirdan/tui-cafe/internal/session"
)

// Recorder forwards events to its sinks.
type Recorder struct {
	logger  *log.Logger
	metrics *metrics.Collector
}

// New creates a recorder. Either sink may be nil.
func New(logger *log.Logger, collector *metrics.Collector) *Recorder {
	return &Recorder{logger: logger, metrics: collector}
}

// Record handles a batch of events in order. A nil recorder drops them.
func (r *Recorder) Record(events []session.Event) {
	if r == nil {
		return
	}
	for _, e := range events {
		if r.metrics != nil {
			r.metrics.Observe(e)
		}
		if r.logger != nil {
			Log(r.logger, e)
		}
	}
}

// Log writes one event with its relevant fields as key/value pairs.
// Ingredient charges are frequent and go out at debug level.
func Log(l *log.Logger, e session.Event) {
	msg := e.Kind.String()
	kv := []any{"lvl", e.Level, "money", e.Money}

	switch e.Kind {
	case session.EventOrderSpawned:
		l.Info(msg, append(kv, "order", short(e.OrderID), "type", e.OrderType, "customer", e.Customer)...)
	case session.EventIngredientCharged:
		l.Debug(msg, append(kv, "order", short(e.OrderID), "ingredient", e.Ingredient, "cost", -e.Delta)...)
	case session.EventOrderServed:
		l.Info(msg, append(kv, "order", short(e.OrderID), "type", e.OrderType,
			"score", e.Score, "tier", e.Tier, "reward", e.Delta, "waited", round(e.Waited))...)
	case session.EventOrderRejected:
		l.Warn(msg, append(kv, "order", short(e.OrderID), "type", e.OrderType,
			"score", e.Score, "feedback", e.Feedback, "penalty", -e.Delta)...)
	case session.EventOrderTimedOut:
		l.Warn(msg, append(kv, "order", short(e.OrderID), "type", e.OrderType,
			"customer", e.Customer, "reason", e.Reason, "penalty", -e.Delta)...)
	case session.EventGameOver:
		l.Warn(msg, append(kv, "reason", e.Reason)...)
	default:
		l.Info(msg, kv...)
	}
}

// short trims an order UUID to its first group for readable logs.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func round(sec float64) float64 {
	return float64(int(sec*10)) / 10
}

// Package metrics exposes session activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-cafe/internal/session"
)

// Outcome labels.
const (
	OutcomeServed   = "served"
	OutcomeRejected = "rejected"
	OutcomeTimedOut = "timed_out"
)

// Collector turns session events into metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	spawned       *prometheus.CounterVec
	orders        *prometheus.CounterVec
	scores        *prometheus.HistogramVec
	waits         *prometheus.HistogramVec
	spend         *prometheus.CounterVec
	money         prometheus.Gauge
	level         prometheus.Gauge
	levelsCleared prometheus.Counter
	games         *prometheus.CounterVec
}

// New creates a collector. Runtime collectors are included when withRuntime
// is set.
func New(withRuntime bool) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		spawned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cafe_orders_spawned_total",
				Help: "Orders placed by customers",
			},
			[]string{"type"},
		),
		orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cafe_orders_total",
				Help: "Orders resolved, by outcome",
			},
			[]string{"type", "outcome"},
		),
		scores: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cafe_order_score",
				Help:    "Score given to served items",
				Buckets: prometheus.LinearBuckets(0, 10, 15),
			},
			[]string{"type"},
		),
		waits: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cafe_order_wait_seconds",
				Help:    "Time from order to resolution",
				Buckets: prometheus.LinearBuckets(0, 10, 10),
			},
			[]string{"type", "outcome"},
		),
		spend: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cafe_ingredient_spend_total",
				Help: "Money spent on ingredients",
			},
			[]string{"ingredient"},
		),
		money: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cafe_money",
			Help: "Money in the till",
		}),
		level: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cafe_level",
			Help: "Current level",
		}),
		levelsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cafe_levels_cleared_total",
			Help: "Levels completed",
		}),
		games: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cafe_games_total",
				Help: "Finished games, by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		c.spawned, c.orders, c.scores, c.waits, c.spend,
		c.money, c.level, c.levelsCleared, c.games,
	)
	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Observe records one session event.
func (c *Collector) Observe(e session.Event) {
	kind := e.OrderType.String()
	c.money.Set(float64(e.Money))
	c.level.Set(float64(e.Level))

	switch e.Kind {
	case session.EventOrderSpawned:
		c.spawned.WithLabelValues(kind).Inc()
	case session.EventIngredientCharged:
		c.spend.WithLabelValues(e.Ingredient.String()).Add(float64(-e.Delta))
	case session.EventOrderServed:
		c.orders.WithLabelValues(kind, OutcomeServed).Inc()
		c.scores.WithLabelValues(kind).Observe(float64(e.Score))
		c.waits.WithLabelValues(kind, OutcomeServed).Observe(e.Waited)
	case session.EventOrderRejected:
		c.orders.WithLabelValues(kind, OutcomeRejected).Inc()
		c.scores.WithLabelValues(kind).Observe(float64(e.Score))
		c.waits.WithLabelValues(kind, OutcomeRejected).Observe(e.Waited)
	case session.EventOrderTimedOut:
		c.orders.WithLabelValues(kind, OutcomeTimedOut).Inc()
		c.waits.WithLabelValues(kind, OutcomeTimedOut).Observe(e.Waited)
	case session.EventLevelComplete:
		c.levelsCleared.Inc()
	case session.EventGameOver:
		c.games.WithLabelValues("lost").Inc()
	case session.EventGameComplete:
		c.levelsCleared.Inc()
		c.games.WithLabelValues("won").Inc()
	}
}

// ObserveAll records a batch of events in order.
func (c *Collector) ObserveAll(events []session.Event) {
	for _, e := range events {
		c.Observe(e)
	}
}

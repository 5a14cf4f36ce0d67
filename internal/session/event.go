package session

import (
	"fmt"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/scoring"
)

// EventKind identifies what happened.
type EventKind int

const (
	EventOrderSpawned EventKind = iota
	EventIngredientCharged
	EventOrderServed
	EventOrderRejected
	EventOrderTimedOut
	EventLevelStarted
	EventLevelComplete
	EventGameOver
	EventGameComplete
)

func (k EventKind) String() string {
	switch k {
	case EventOrderSpawned:
		return "order spawned"
	case EventIngredientCharged:
		return "ingredient charged"
	case EventOrderServed:
		return "order served"
	case EventOrderRejected:
		return "order rejected"
	case EventOrderTimedOut:
		return "order timed out"
	case EventLevelStarted:
		return "level started"
	case EventLevelComplete:
		return "level complete"
	case EventGameOver:
		return "game over"
	case EventGameComplete:
		return "game complete"
	default:
		return "unknown"
	}
}

// Event is a notable transition. Fields that do not apply are zero.
type Event struct {
	Kind  EventKind
	Level int

	OrderID   string
	OrderType kitchen.Kind
	Customer  string

	Ingredient kitchen.Ingredient
	// Delta is the money change caused by this event.
	Delta int
	Money int

	Score    int
	Tier     scoring.Tier
	Feedback string
	// Waited is how long the ticket was open, in seconds.
	Waited float64
	Reason string
}

// Text is a one-line description for the message bar.
func (e Event) Text() string {
	switch e.Kind {
	case EventOrderSpawned:
		return fmt.Sprintf("%s wants a %s", e.Customer, e.OrderType)
	case EventIngredientCharged:
		return fmt.Sprintf("%s added (-$%d)", e.Ingredient, -e.Delta)
	case EventOrderServed:
		return fmt.Sprintf("%s! +$%d", e.Tier, e.Delta)
	case EventOrderRejected:
		return fmt.Sprintf("rejected: %s -$%d", e.Feedback, -e.Delta)
	case EventOrderTimedOut:
		if e.Reason != "" {
			return fmt.Sprintf("%s %s (-$%d)", e.Customer, e.Reason, -e.Delta)
		}
		return fmt.Sprintf("%s left (-$%d)", e.Customer, -e.Delta)
	case EventLevelStarted:
		return fmt.Sprintf("level %d", e.Level)
	case EventLevelComplete:
		return fmt.Sprintf("level %d complete!", e.Level)
	case EventGameOver:
		return "game over: " + e.Reason
	case EventGameComplete:
		return fmt.Sprintf("all levels cleared! chef rating %d/5", scoring.Rating(e.Money))
	default:
		return e.Kind.String()
	}
}

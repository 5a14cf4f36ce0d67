package cafe

import "github.com/vovakirdan/tui-cafe/internal/session"

// Message lifetimes in seconds.
const (
	outcomeTTL = 3.0
	stepTTL    = 1.0
	maxShown   = 4
)

type message struct {
	text string
	ttl  float64
	tone tone
}

type tone int

const (
	toneInfo tone = iota
	toneGood
	toneBad
)

// messageLog holds short-lived notices for the message line.
type messageLog struct {
	entries []message
}

func (m *messageLog) push(text string, ttl float64, t tone) {
	m.entries = append(m.entries, message{text: text, ttl: ttl, tone: t})
}

// age expires messages whose lifetime ran out.
func (m *messageLog) age(dt float64) {
	kept := m.entries[:0]
	for _, e := range m.entries {
		e.ttl -= dt
		if e.ttl > 0 {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}

// latest returns up to n live messages, newest last.
func (m *messageLog) latest(n int) []message {
	if len(m.entries) <= n {
		return m.entries
	}
	return m.entries[len(m.entries)-n:]
}

// notify turns a session event into a message.
func (g *Game) notify(e session.Event) {
	switch e.Kind {
	case session.EventIngredientCharged:
		g.messages.push(e.Text(), stepTTL, toneInfo)
	case session.EventOrderServed, session.EventLevelComplete, session.EventGameComplete:
		g.messages.push(e.Text(), outcomeTTL, toneGood)
	case session.EventOrderRejected, session.EventOrderTimedOut, session.EventGameOver:
		g.messages.push(e.Text(), outcomeTTL, toneBad)
	default:
		g.messages.push(e.Text(), outcomeTTL, toneInfo)
	}
}

func (g *Game) step(text string) { g.messages.push(text, stepTTL, toneInfo) }

func (g *Game) refuse(text string) { g.messages.push(text, stepTTL, toneBad) }

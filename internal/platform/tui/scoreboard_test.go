package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/storage"
)

func boardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func kitchenIndex(t *testing.T, m ScoreboardModel, id string) int {
	t.Helper()
	for i, g := range m.games {
		if g.ID == id {
			return i
		}
	}
	t.Fatalf("kitchen %q not registered", id)
	return -1
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "Nothing recorded yet.")
	assert.Contains(t, view, "Kitchens", "wide screens list kitchens in a sidebar")
}

func TestScoreboardSessions(t *testing.T) {
	store := boardStore(t)
	_, err := store.SaveScore("menu_b", 90)
	require.NoError(t, err)
	_, err = store.SaveSession(storage.SessionRecord{
		SessionID: "s-1",
		GameID:    "menu_b",
		Profile:   "rush",
		Level:     3,
		Money:     80,
		Score:     90,
		Served:    7,
		Rejected:  1,
		Outcome:   storage.OutcomeLost,
		Reason:    "out of money",
		Duration:  95,
	})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	for m.games[m.gameCursor].ID != "menu_b" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	assert.Equal(t, kitchenIndex(t, m, "menu_b"), m.gameCursor)
	assert.Len(t, m.scores, 1)
	assert.Contains(t, m.View(), "Games 1")

	next, _ := m.Update(runeKey('s'))
	m = next.(ScoreboardModel)
	require.Equal(t, viewSessions, m.view)

	view := m.View()
	assert.Contains(t, view, "RECENT SESSIONS")
	assert.Contains(t, view, "out of money")
	assert.Contains(t, view, "rush profile")
	assert.Contains(t, view, "1m35s")
}

func TestScoreboardKitchenWraps(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 30)
	require.NotEmpty(t, m.games)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, len(m.games)-1, m.gameCursor)
	assert.NotContains(t, m.View(), "Kitchens", "narrow screens use tabs")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	next, _ := NewScoreboardModel(nil, 100, 30).Update(tea.KeyMsg{Type: tea.KeyEsc})
	m := next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())

	next, _ = NewScoreboardModel(nil, 100, 30).Update(runeKey('q'))
	m = next.(ScoreboardModel)
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

type menuStub struct{ id string }

func (g *menuStub) ID() string                           { return g.id }
func (g *menuStub) Title() string                        { return "Kitchen " + g.id }
func (g *menuStub) Description() string                  { return "a test kitchen" }
func (g *menuStub) Reset(core.RuntimeConfig)             {}
func (g *menuStub) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *menuStub) Render(*core.Screen)                  {}
func (g *menuStub) State() core.GameState                { return core.GameState{} }

func init() {
	for _, id := range []string{"menu_a", "menu_b"} {
		registry.Register(id, func() registry.Game { return &menuStub{id: id} })
	}
}

func press(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	require.Len(t, m.items, 2)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor, "cursor stops at the bottom")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "menu_b", m.Selected().GameID)
}

func TestMenuQuitAndScoreboard(t *testing.T) {
	m, _ := press(NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())

	m, _ = press(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	assert.Equal(t, 120, cfg.ScreenW)
	assert.Equal(t, 40, cfg.ScreenH)
}

func TestMenuShowsRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore("menu_a", 120)
	require.NoError(t, err)

	m := NewMenuModel(store, core.DefaultConfig())
	assert.Equal(t, 120, m.items[0].Best)
	assert.Equal(t, 1, m.items[0].Games)

	view := m.View()
	assert.Contains(t, view, "Kitchen menu_a")
	assert.Contains(t, view, "a test kitchen")
	assert.Contains(t, view, "best 120")
	assert.Contains(t, view, "no sessions yet")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cafe/internal/core"
	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

const cardWidth = 56

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cardStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("214"))
)

// MenuItem is one kitchen on the front door, with its record so far.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int
	Games       int
	Wins        int
	BestLevel   int
}

// record returns the stats line for the card.
func (it MenuItem) record() string {
	if it.Games == 0 {
		return "no sessions yet"
	}
	return fmt.Sprintf("best %d · %d played · %d won · reached level %d",
		it.Best, it.Games, it.Wins, it.BestLevel)
}

// MenuModel is the Bubble Tea model for the kitchen picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered kitchens with their stored records.
// A nil store shows them without records.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		}
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil {
				item.Best = stats.HighScore
				item.Games = stats.GamesCount
				item.Wins = stats.Wins
				item.BestLevel = stats.BestLevel
			}
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)

	case MenuActionDown:
		m.cursor = min(len(m.items)-1, m.cursor+1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		"",
		menuTitleStyle.Render("C A F E"),
		menuDimStyle.Render("pizzas · burgers · drinks"),
		"",
	}

	if len(m.items) == 0 {
		parts = append(parts, "No kitchens registered.")
	}
	for i, item := range m.items {
		style := cardStyle
		title := item.Title
		if i == m.cursor {
			style = activeCardStyle
			title = "> " + title
		}
		body := strings.Join([]string{
			lipgloss.NewStyle().Bold(true).Render(title),
			item.Description,
			menuDimStyle.Render(item.record()),
		}, "\n")
		parts = append(parts, style.Render(body))
	}

	parts = append(parts, "", m.help.View(m.keyMapper.MenuKeys()))

	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

// Selected returns the chosen kitchen, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, resized to the last window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}

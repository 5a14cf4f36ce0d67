package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cafe/internal/registry"
	"github.com/vovakirdan/tui-cafe/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxRows            = 100
	dateLayout         = "Jan 02 15:04"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	outcomeStyles = map[string]lipgloss.Style{
		storage.OutcomeWon:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		storage.OutcomeLost: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		storage.OutcomeQuit: boardDimStyle,
	}
)

// boardView selects what the table lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewSessions
)

func (v boardView) title() string {
	if v == viewSessions {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

func (v boardView) columns() []table.Column {
	if v == viewSessions {
		return []table.Column{
			{Title: "Result", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "Money", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Served", Width: 7},
			{Title: "Date", Width: 12},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 14},
	}
}

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next kitchen")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev kitchen")),
		Toggle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores/sessions")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores and past sessions of each kitchen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       boardView
	scores     []storage.ScoreEntry
	sessions   []storage.SessionRecord
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens on the first registered kitchen. A nil store
// shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.view.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected kitchen's records. Read errors leave the table
// empty.
func (m *ScoreboardModel) load() {
	m.scores, m.sessions, m.stats = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		if scores, err := m.store.TopScores(id, maxRows); err == nil {
			m.scores = scores
		}
		if sessions, err := m.store.RecentSessions(id, maxRows); err == nil {
			m.sessions = sessions
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fill()
}

func (m *ScoreboardModel) fill() {
	var rows []table.Row
	switch m.view {
	case viewSessions:
		for _, s := range m.sessions {
			rows = append(rows, table.Row{
				s.Outcome,
				strconv.Itoa(s.Level),
				fmt.Sprintf("$%d", s.Money),
				strconv.Itoa(s.Score),
				strconv.Itoa(s.Served),
				s.CreatedAt.Format(dateLayout),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format(dateLayout),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	n := len(m.games)
	m.gameCursor = ((m.gameCursor+delta)%n + n) % n
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.table = m.newTable()
			m.fill()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.moveGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.moveGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fill()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	body := panelStyle.Render(m.tableContent())
	if m.sidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.kitchenList(), "  ", body)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, m.kitchenTabs(), "", body)
	}

	lines := []string{"", boardTitleStyle.Render(title), "", body}
	if d := m.sessionDetail(); d != "" {
		lines = append(lines, d)
	}
	if s := m.statsLine(); s != "" {
		lines = append(lines, "", s)
	}
	lines = append(lines, "", boardDimStyle.Render(m.help.View(m.keys)))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

func (m ScoreboardModel) kitchenList() string {
	var b strings.Builder
	b.WriteString("Kitchens\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		b.WriteString("\n")
		if i == m.gameCursor {
			b.WriteString(boardTitleStyle.Render("> " + clipText(g.Title, sidebarWidth-6)))
		} else {
			b.WriteString("  " + clipText(g.Title, sidebarWidth-6))
		}
	}
	return panelStyle.Width(sidebarWidth).Render(b.String())
}

func (m ScoreboardModel) kitchenTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := clipText(g.Title, 10)
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	empty := len(m.scores) == 0
	if m.view == viewSessions {
		empty = len(m.sessions) == 0
	}
	if empty {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("Nothing recorded yet.\nOpen the kitchen to set a high score!")
	}
	return m.table.View()
}

// sessionDetail describes the highlighted session: how it ended, on which
// profile, and for how long.
func (m ScoreboardModel) sessionDetail() string {
	if m.view != viewSessions || len(m.sessions) == 0 {
		return ""
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return ""
	}
	s := m.sessions[i]

	style, ok := outcomeStyles[s.Outcome]
	if !ok {
		style = boardDimStyle
	}
	parts := []string{style.Render(s.Outcome)}
	if s.Reason != "" {
		parts = append(parts, s.Reason)
	}
	if s.Rating > 0 {
		parts = append(parts, strings.Repeat("★", s.Rating))
	}
	parts = append(parts,
		s.Profile+" profile",
		fmt.Sprintf("%d rejected, %d walked out", s.Rejected, s.TimedOut),
		(time.Duration(s.Duration) * time.Second).String(),
	)
	return strings.Join(parts, " · ")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games %d  Wins %d  Best level %d  Served %d  Avg score %.0f",
		m.stats.GamesCount, m.stats.Wins, m.stats.BestLevel, m.stats.TotalServed, m.stats.AvgScore)
}

func clipText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. goBack is true when the player wants
// the menu again rather than to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

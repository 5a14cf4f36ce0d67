package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Confirm  key.Binding
	Serve    key.Binding
	Next     key.Binding
	Trash    key.Binding
	Base     key.Binding
	Sauce    key.Binding
	Cheese   key.Binding
	Patty    key.Binding
	Place    key.Binding
	Cook     key.Binding
	Cut      key.Binding
	Assemble key.Binding
	Ice      key.Binding
	Pick     key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Base, k.Sauce, k.Cheese, k.Place, k.Cook, k.Cut,
		k.Assemble, k.Ice, k.Pick, k.Serve, k.Next, k.Trash, k.Quit,
	}
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Pick},
		{k.Base, k.Sauce, k.Cheese, k.Patty, k.Place},
		{k.Cook, k.Cut, k.Assemble, k.Ice},
		{k.Confirm, k.Serve, k.Next, k.Trash},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/serve")),
		Serve:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "serve")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next order")),
		Trash:    key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("bksp", "trash")),
		Base:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dough/bun")),
		Sauce:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sauce/top bun")),
		Cheese:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cheese")),
		Patty:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "patty kind")),
		Place:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "place")),
		Cook:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "oven/grill/pour")),
		Cut:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
		Assemble: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assemble")),
		Ice:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ice")),
		Pick:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "shelf")),
		Pause:    key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	menu     MenuKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	k := DefaultGameKeyMap()
	return &KeyMapper{
		keys: k,
		menu: DefaultMenuKeyMap(),
		bindings: []actionBinding{
			{k.Up, core.ActionUp},
			{k.Down, core.ActionDown},
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Confirm, core.ActionConfirm},
			{k.Serve, core.ActionServe},
			{k.Next, core.ActionNextOrder},
			{k.Trash, core.ActionBack},
			{k.Base, core.ActionBase},
			{k.Sauce, core.ActionSauce},
			{k.Cheese, core.ActionCheese},
			{k.Patty, core.ActionPatty},
			{k.Place, core.ActionPlace},
			{k.Cook, core.ActionCook},
			{k.Cut, core.ActionCut},
			{k.Assemble, core.ActionAssemble},
			{k.Ice, core.ActionIce},
			{k.Pause, core.ActionPause},
			{k.Restart, core.ActionRestart},
		},
	}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap { return km.keys }

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	if key.Matches(msg, km.keys.Pick) {
		return core.PickAction(int(msg.String()[0] - '1')), false
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap holds the menu bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns the menu bindings for the help line.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns the menu bindings in one column.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open kitchen")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// MenuKeys returns the menu bindings, for help views.
func (km *KeyMapper) MenuKeys() MenuKeyMap { return km.menu }

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.menu.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, km.menu.Back):
		return MenuActionBack
	}
	return MenuActionNone
}

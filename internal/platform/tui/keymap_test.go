package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextOrder},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBack},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlace},
		{"dough", runeKey('d'), core.ActionBase},
		{"oven", runeKey('o'), core.ActionCook},
		{"cut", runeKey('x'), core.ActionCut},
		{"ice", runeKey('i'), core.ActionIce},
		{"serve", runeKey('v'), core.ActionServe},
		{"pause", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"first slot", runeKey('1'), core.ActionPick1},
		{"last slot", runeKey('9'), core.ActionPick9},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.False(t, quit)
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		assert.True(t, quit)
		assert.Equal(t, core.ActionQuit, action)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey('c'), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('3'), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('z'), &frame))

	assert.True(t, frame.Has(core.ActionCheese))
	assert.True(t, frame.Has(core.ActionPick3))
	assert.Len(t, frame.Actions, 2)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
	assert.Len(t, km.MenuKeys().ShortHelp(), 5)
}

func TestHelpListsBindings(t *testing.T) {
	keys := NewKeyMapper().Keys()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
}

// Package tui runs cafe sessions in the terminal with Bubble Tea: the fixed
// tick loop, key and mouse input, menus and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

// TickMsg advances the kitchen clock by one fixed step.
type TickMsg time.Time

// tickCmd schedules the next step of a session running at cfg's rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

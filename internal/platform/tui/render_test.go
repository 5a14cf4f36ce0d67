package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "pizza", core.ColorCream)
	s.DrawTextColor(6, 0, "$30", core.ColorGreen)
	s.DrawTextColor(0, 1, "burger", core.Color(200))

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	assert.Equal(t, []string{"pizza $30   ", "burger      "}, lines)
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorCream; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}

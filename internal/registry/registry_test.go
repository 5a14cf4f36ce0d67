package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "has a blurb" }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	assert.True(t, Exists("stub_a"))
	assert.False(t, Exists("stub_c"))

	ids := IDs()
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	require.NotEqual(t, -1, ia)
	require.NotEqual(t, -1, ib)
	assert.Less(t, ia, ib, "IDs are sorted")

	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "Stub stub_a", g.Title())

	_, err = Create("stub_c")
	assert.ErrorIs(t, err, ErrUnknownGame)

	info, ok := Info("stub_a")
	require.True(t, ok)
	assert.Equal(t, "Stub stub_a", info.Title)
	assert.Empty(t, info.Description)

	assert.Panics(t, func() {
		Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })
	})
}

func TestRegisterReadsDescription(t *testing.T) {
	Register("stub_described", func() Game {
		return &describedGame{stubGame{id: "stub_described"}}
	})

	info, ok := Info("stub_described")
	require.True(t, ok)
	assert.Equal(t, "has a blurb", info.Description)

	_, ok = Info("stub_missing")
	assert.False(t, ok)
}

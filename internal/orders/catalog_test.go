package orders

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadCatalogYAML(t *testing.T) {
	c, err := LoadCatalog(testdata("catalog.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, c.Levels())
	assert.Equal(t, 2, c.Len(1))
	assert.Equal(t, []string{testdata("catalog.yaml")}, c.Files())

	pizza := c.levels[1][0].toOrder(1)
	assert.True(t, pizza.FromCatalog)
	assert.Equal(t, kitchen.KindPizza, pizza.Type)
	assert.Equal(t, map[kitchen.Ingredient]int{kitchen.Pepperoni: 2}, pizza.Requirements, "unknown ingredients are skipped")
	assert.False(t, pizza.SauceRequired)
	assert.True(t, pizza.CheeseRequired)
	assert.Equal(t, 90, pizza.TimeLimit)
	assert.Equal(t, 25, pizza.Reward)
	assert.Equal(t, DefaultPenalty, pizza.Penalty)

	burger := c.levels[1][1].toOrder(1)
	assert.Equal(t, kitchen.PattyChicken, burger.Patty)
	assert.Equal(t, 60, burger.TimeLimit)
	assert.Equal(t, 20, burger.Reward)

	drink := c.levels[2][0].toOrder(2)
	assert.Equal(t, kitchen.Sprite, drink.Drink)
	assert.Equal(t, SizeLarge, drink.Size)
	assert.True(t, drink.IceRequired)
}

func TestLoadCatalogJSON(t *testing.T) {
	c, err := LoadCatalog(testdata("catalog.json"))
	require.NoError(t, err)

	o := c.levels[3][0].toOrder(3)
	assert.False(t, o.CheeseRequired)
	assert.True(t, o.SauceRequired)
	assert.Equal(t, 8, o.Penalty)
	assert.Equal(t, 2, o.Required(kitchen.Onions))
}

func TestLoadCatalogDirectorySkipsInvalid(t *testing.T) {
	c, err := LoadCatalog(testdata("dir"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, c.Levels())
	assert.Len(t, c.Files(), 2)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(testdata("missing.yaml"))
	assert.Error(t, err)

	_, err = LoadCatalog(testdata("dir/broken.yml"))
	assert.ErrorContains(t, err, "parsing")

	_, err = LoadCatalog(testdata("dir/notes.txt"))
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestCatalogPick(t *testing.T) {
	c, err := LoadCatalog(testdata("catalog.yaml"))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, err = c.Pick(rng, 5)
	assert.ErrorIs(t, err, ErrNoCatalogOrders)

	e, err := c.Pick(rng, 2)
	require.NoError(t, err)
	assert.Equal(t, "sprite", e.Drink)
}

func TestCatalogProblems(t *testing.T) {
	c, err := LoadCatalog(testdata("catalog.yaml"))
	require.NoError(t, err)

	problems := c.Problems()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "anchovies")

	clean, err := LoadCatalog(testdata("catalog.json"))
	require.NoError(t, err)
	assert.Empty(t, clean.Problems())
}

func TestCatalogOffShelf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "early.yaml")
	body := `- level: 1
  orders:
    - order_type: pizza
      requirements:
        ham: 1
        pepperoni: 2
    - order_type: drink
      drink: juice
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"level 1 order 1: ham is not on the level 1 pizza shelf",
		"level 1 order 2: juice is not on the level 1 drink machine",
	}, c.Problems())

	pizza := c.levels[1][0].toOrder(1)
	assert.Equal(t, map[kitchen.Ingredient]int{kitchen.Pepperoni: 2}, pizza.Requirements)

	drink := c.levels[1][1].toOrder(1)
	assert.Equal(t, kitchen.Cola, drink.Drink)

	// The same template is fine once the shelf has grown.
	assert.Equal(t, 1, c.levels[1][0].toOrder(7).Required(kitchen.Ham))
}

func TestGeneratorUsesCatalog(t *testing.T) {
	c, err := LoadCatalog(testdata("catalog.yaml"))
	require.NoError(t, err)

	g := newTestGenerator(3)
	g.SetCatalog(c)

	for i := 0; i < 20; i++ {
		o := g.Generate(1)
		assert.True(t, o.FromCatalog)
		assert.NotEmpty(t, o.ID)
		assert.Contains(t, CustomerNames, o.Customer)
		assert.Empty(t, o.SpecialRequests)
	}

	// Levels missing from the catalog fall back silently.
	o := g.Generate(4)
	assert.False(t, o.FromCatalog)
	assert.Equal(t, 4, o.Level)
}

func TestGeneratorWithoutCatalogIsProcedural(t *testing.T) {
	g := newTestGenerator(3)
	g.SetCatalog(nil)
	assert.False(t, g.Generate(1).FromCatalog)
	assert.Nil(t, g.Catalog())
}

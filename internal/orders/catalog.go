package orders

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

// ErrNoCatalogOrders is returned when a catalog has no entries for a level.
var ErrNoCatalogOrders = errors.New("catalog: no orders for level")

// Catalog defaults for fields a file leaves out.
const (
	catalogTimeLimit = 60
	catalogReward    = 20
)

// CatalogOrder is one order template as written in a catalog file.
type CatalogOrder struct {
	OrderType      string         `yaml:"order_type"`
	Requirements   map[string]int `yaml:"requirements"`
	Patty          string         `yaml:"patty"`
	Drink          string         `yaml:"drink"`
	Size           string         `yaml:"size"`
	IceRequired    bool           `yaml:"ice_required"`
	SauceRequired  *bool          `yaml:"sauce_required"`
	CheeseRequired *bool          `yaml:"cheese_required"`
	TimeLimit      int            `yaml:"time_limit"`
	Reward         int            `yaml:"reward"`
	Penalty        int            `yaml:"penalty"`
}

// CatalogLevel groups the templates for one level.
type CatalogLevel struct {
	Level  int            `yaml:"level"`
	Orders []CatalogOrder `yaml:"orders"`
}

// Catalog holds hand-written order templates by level.
type Catalog struct {
	levels map[int][]CatalogOrder
	files  []string
}

// NewCatalog builds a catalog from parsed levels. Entries for the same level
// are merged.
func NewCatalog(levels []CatalogLevel) *Catalog {
	c := &Catalog{levels: make(map[int][]CatalogOrder)}
	for _, lvl := range levels {
		c.levels[lvl.Level] = append(c.levels[lvl.Level], lvl.Orders...)
	}
	return c
}

// LoadCatalog reads a catalog from a YAML or JSON file. A directory is
// scanned recursively and unreadable files inside it are skipped.
func LoadCatalog(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	if !info.IsDir() {
		levels, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		c := NewCatalog(levels)
		c.files = []string{path}
		return c, nil
	}

	var all []CatalogLevel
	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}
		levels, err := loadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		all = append(all, levels...)
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walking directory %s: %w", path, err)
	}

	c := NewCatalog(all)
	c.files = files
	return c, nil
}

func loadFile(path string) ([]CatalogLevel, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("catalog: unsupported extension: %s", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	levels, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}
	return levels, nil
}

// ParseCatalog decodes catalog data. JSON documents parse as YAML.
func ParseCatalog(data []byte) ([]CatalogLevel, error) {
	var levels []CatalogLevel
	if err := yaml.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return levels, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Files lists the files the catalog was loaded from.
func (c *Catalog) Files() []string {
	return append([]string(nil), c.files...)
}

// Levels returns the levels that have at least one entry, ascending.
func (c *Catalog) Levels() []int {
	out := make([]int, 0, len(c.levels))
	for lvl, entries := range c.levels {
		if len(entries) > 0 {
			out = append(out, lvl)
		}
	}
	sort.Ints(out)
	return out
}

// Len returns the number of templates for level.
func (c *Catalog) Len(level int) int {
	return len(c.levels[level])
}

// Pick chooses one template for level uniformly.
func (c *Catalog) Pick(rng *rand.Rand, level int) (CatalogOrder, error) {
	entries := c.levels[level]
	if len(entries) == 0 {
		return CatalogOrder{}, fmt.Errorf("%w %d", ErrNoCatalogOrders, level)
	}
	return entries[rng.Intn(len(entries))], nil
}

// Problems reports template fields that will be ignored or defaulted when the
// catalog is used. An empty result means the catalog is clean.
func (c *Catalog) Problems() []string {
	var out []string
	for _, lvl := range c.Levels() {
		if lvl < 1 || lvl > kitchen.MaxLevel {
			out = append(out, fmt.Sprintf("level %d: outside 1..%d", lvl, kitchen.MaxLevel))
		}
		for i, e := range c.levels[lvl] {
			where := fmt.Sprintf("level %d order %d", lvl, i+1)
			if e.OrderType != "" {
				if _, err := kitchen.ParseKind(e.OrderType); err != nil {
					out = append(out, fmt.Sprintf("%s: %v", where, err))
				}
			}
			kind := e.kind()
			shelf := shelfFor(kind, lvl)
			for _, name := range sortedKeys(e.Requirements) {
				ing, err := kitchen.ParseIngredient(name)
				switch {
				case err != nil:
					out = append(out, fmt.Sprintf("%s: %v", where, err))
				case !slices.Contains(shelf, ing):
					out = append(out, fmt.Sprintf("%s: %s is not on the level %d %s shelf", where, ing, lvl, kind))
				}
			}
			if e.Patty != "" {
				if _, err := kitchen.ParsePatty(e.Patty); err != nil {
					out = append(out, fmt.Sprintf("%s: %v", where, err))
				}
			}
			if e.Drink != "" {
				d, err := kitchen.ParseDrink(e.Drink)
				switch {
				case err != nil:
					out = append(out, fmt.Sprintf("%s: %v", where, err))
				case kind == kitchen.KindDrink && !slices.Contains(kitchen.Drinks(lvl), d):
					out = append(out, fmt.Sprintf("%s: %s is not on the level %d drink machine", where, d, lvl))
				}
			}
		}
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// kind is the template's order type, pizza when missing or unknown.
func (e CatalogOrder) kind() kitchen.Kind {
	if k, err := kitchen.ParseKind(strings.ToLower(e.OrderType)); err == nil {
		return k
	}
	return kitchen.KindPizza
}

// shelfFor returns the toppings a kind can take at level. Drinks take none.
func shelfFor(k kitchen.Kind, level int) []kitchen.Ingredient {
	switch k {
	case kitchen.KindPizza:
		return kitchen.PizzaToppings(level)
	case kitchen.KindBurger:
		return kitchen.BurgerToppings(level)
	default:
		return nil
	}
}

// toOrder converts a template. Unknown names and anything missing from the
// level's shelf are skipped, and missing values take the catalog defaults.
// ID, customer and mood are left to the caller.
func (e CatalogOrder) toOrder(level int) Order {
	o := Order{
		Level:          level,
		Type:           e.kind(),
		Requirements:   make(map[kitchen.Ingredient]int),
		DoughRequired:  true,
		SauceRequired:  true,
		CheeseRequired: true,
		Size:           SizeMedium,
		IceRequired:    e.IceRequired,
		TimeLimit:      e.TimeLimit,
		Reward:         e.Reward,
		Penalty:        e.Penalty,
		FromCatalog:    true,
	}
	shelf := shelfFor(o.Type, level)
	for name, n := range e.Requirements {
		ing, err := kitchen.ParseIngredient(name)
		if err != nil || n <= 0 || !slices.Contains(shelf, ing) {
			continue
		}
		o.Requirements[ing] = n
	}
	if e.SauceRequired != nil {
		o.SauceRequired = *e.SauceRequired
	}
	if e.CheeseRequired != nil {
		o.CheeseRequired = *e.CheeseRequired
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = catalogTimeLimit
	}
	if o.Reward <= 0 {
		o.Reward = catalogReward
	}
	if o.Penalty <= 0 {
		o.Penalty = DefaultPenalty
	}

	switch o.Type {
	case kitchen.KindBurger:
		o.Patty = kitchen.PattyBeef
		if p, err := kitchen.ParsePatty(e.Patty); err == nil {
			o.Patty = p
		}
	case kitchen.KindDrink:
		o.Drink = kitchen.Cola
		if d, err := kitchen.ParseDrink(e.Drink); err == nil && slices.Contains(kitchen.Drinks(level), d) {
			o.Drink = d
		}
		for _, s := range Sizes {
			if string(s) == strings.ToLower(e.Size) {
				o.Size = s
			}
		}
	}
	return o
}

// Package kitchen implements the food preparation state machines (pizza,
// burger, drink) and the ingredient catalog they draw from.
//
// Every preparation step is a guarded transition: it returns false and leaves
// the item untouched when called out of sequence.
package kitchen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-cafe/internal/core"
)

// ErrUnknownIngredient is returned when parsing a name that is not in the catalog.
var ErrUnknownIngredient = errors.New("kitchen: unknown ingredient")

// MaxLevel is the number of levels the availability tables cover.
const MaxLevel = 7

// Ingredient identifies a catalog entry. The zero value is invalid.
type Ingredient int

const (
	IngredientNone Ingredient = iota
	Dough
	Sauce
	Cheese
	Pepperoni
	Mushrooms
	Peppers
	Onions
	Olives
	Tomato
	Sausage
	Basil
	Pineapple
	Ham
	Bacon
	Garlic
	Lettuce
	Pickles
	Beef
	Chicken
	Mayonnaise
	Ketchup
	ingredientCount
)

type catalogEntry struct {
	name  string
	price int
	color core.Color
	glyph rune
}

var ingredients = [ingredientCount]catalogEntry{
	IngredientNone: {"none", 0, core.ColorDefault, '?'},
	Dough:          {"dough", 1, core.ColorCream, 'o'},
	Sauce:          {"sauce", 1, core.ColorRed, '~'},
	Cheese:         {"cheese", 2, core.ColorBrightYellow, '#'},
	Pepperoni:      {"pepperoni", 3, core.ColorBrightRed, 'P'},
	Mushrooms:      {"mushrooms", 2, core.ColorCream, 'M'},
	Peppers:        {"peppers", 2, core.ColorGreen, 'V'},
	Onions:         {"onions", 1, core.ColorMagenta, 'O'},
	Olives:         {"olives", 2, core.ColorGray, '*'},
	Tomato:         {"tomato", 2, core.ColorRed, 'T'},
	Sausage:        {"sausage", 4, core.ColorBrown, 'S'},
	Basil:          {"basil", 1, core.ColorBrightGreen, 'b'},
	Pineapple:      {"pineapple", 3, core.ColorYellow, 'A'},
	Ham:            {"ham", 3, core.ColorOrange, 'H'},
	Bacon:          {"bacon", 4, core.ColorBrightRed, 'B'},
	Garlic:         {"garlic", 1, core.ColorWhite, 'g'},
	Lettuce:        {"lettuce", 1, core.ColorBrightGreen, 'L'},
	Pickles:        {"pickles", 1, core.ColorGreen, 'K'},
	Beef:           {"beef", 5, core.ColorBrown, '='},
	Chicken:        {"chicken", 4, core.ColorCream, '='},
	Mayonnaise:     {"mayonnaise", 1, core.ColorWhite, 'y'},
	Ketchup:        {"ketchup", 1, core.ColorRed, 'k'},
}

// String returns the catalog name.
func (i Ingredient) String() string {
	if i <= IngredientNone || i >= ingredientCount {
		return "unknown"
	}
	return ingredients[i].name
}

// Price returns what the kitchen pays for one portion.
func (i Ingredient) Price() int {
	if !i.Valid() {
		return 0
	}
	return ingredients[i].price
}

// Color returns the display colour.
func (i Ingredient) Color() core.Color {
	if !i.Valid() {
		return core.ColorDefault
	}
	return ingredients[i].color
}

// Glyph returns the single rune used to draw the ingredient.
func (i Ingredient) Glyph() rune {
	if !i.Valid() {
		return '?'
	}
	return ingredients[i].glyph
}

// Valid reports whether i is a catalog entry.
func (i Ingredient) Valid() bool {
	return i > IngredientNone && i < ingredientCount
}

// ParseIngredient looks up an ingredient by name (case-insensitive).
func ParseIngredient(name string) (Ingredient, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := Dough; i < ingredientCount; i++ {
		if ingredients[i].name == name {
			return i, nil
		}
	}
	return IngredientNone, fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
}

// MarshalText implements encoding.TextMarshaler so ingredients can key YAML
// and JSON maps by name.
func (i Ingredient) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIngredient, int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Ingredient) UnmarshalText(text []byte) error {
	parsed, err := ParseIngredient(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// DrinkType identifies a drink on the machine.
type DrinkType int

const (
	DrinkNone DrinkType = iota
	Cola
	Sprite
	Orange
	Coffee
	Tea
	Water
	Juice
	drinkCount
)

var drinks = [drinkCount]catalogEntry{
	DrinkNone: {"none", 0, core.ColorDefault, '?'},
	Cola:      {"cola", 2, core.ColorBrown, 'c'},
	Sprite:    {"sprite", 2, core.ColorBrightGreen, 's'},
	Orange:    {"orange", 2, core.ColorOrange, 'o'},
	Coffee:    {"coffee", 3, core.ColorBrown, 'C'},
	Tea:       {"tea", 2, core.ColorYellow, 't'},
	Water:     {"water", 1, core.ColorCyan, 'w'},
	Juice:     {"juice", 3, core.ColorBrightYellow, 'j'},
}

func (d DrinkType) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return drinks[d].name
}

// Price returns what one cup costs the kitchen.
func (d DrinkType) Price() int {
	if !d.Valid() {
		return 0
	}
	return drinks[d].price
}

// Color returns the display colour.
func (d DrinkType) Color() core.Color {
	if !d.Valid() {
		return core.ColorDefault
	}
	return drinks[d].color
}

// Valid reports whether d is a catalog entry.
func (d DrinkType) Valid() bool {
	return d > DrinkNone && d < drinkCount
}

// ParseDrink looks up a drink by name (case-insensitive).
func ParseDrink(name string) (DrinkType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := Cola; d < drinkCount; d++ {
		if drinks[d].name == name {
			return d, nil
		}
	}
	return DrinkNone, fmt.Errorf("%w: drink %q", ErrUnknownIngredient, name)
}

// Patty is the burger patty kind.
type Patty int

const (
	PattyNone Patty = iota
	PattyBeef
	PattyChicken
)

func (p Patty) String() string {
	switch p {
	case PattyBeef:
		return "beef"
	case PattyChicken:
		return "chicken"
	default:
		return "none"
	}
}

// Ingredient returns the catalog entry the patty is made from.
func (p Patty) Ingredient() Ingredient {
	switch p {
	case PattyBeef:
		return Beef
	case PattyChicken:
		return Chicken
	default:
		return IngredientNone
	}
}

// ParsePatty parses "beef" or "chicken".
func ParsePatty(name string) (Patty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "beef":
		return PattyBeef, nil
	case "chicken":
		return PattyChicken, nil
	}
	return PattyNone, fmt.Errorf("%w: patty %q", ErrUnknownIngredient, name)
}

// Availability per level (index 0 is level 1). Order matters: it is the
// shelf order shown to the player and the order the generator samples from.
var (
	pizzaToppingsByLevel = [MaxLevel][]Ingredient{
		{Pepperoni, Mushrooms, Cheese},
		{Pepperoni, Mushrooms, Peppers, Cheese},
		{Pepperoni, Mushrooms, Peppers, Onions, Cheese},
		{Pepperoni, Mushrooms, Peppers, Onions, Olives, Cheese},
		{Pepperoni, Mushrooms, Peppers, Onions, Olives, Tomato, Cheese},
		{Pepperoni, Mushrooms, Peppers, Onions, Olives, Tomato, Sausage, Cheese},
		{Pepperoni, Mushrooms, Peppers, Onions, Olives, Tomato, Sausage, Basil, Pineapple, Ham, Cheese},
	}

	burgerToppingsByLevel = [MaxLevel][]Ingredient{
		{Lettuce, Tomato},
		{Lettuce, Tomato, Cheese},
		{Lettuce, Tomato, Cheese, Onions},
		{Lettuce, Tomato, Cheese, Onions, Pickles},
		{Lettuce, Tomato, Cheese, Onions, Pickles, Bacon},
		{Lettuce, Tomato, Cheese, Onions, Pickles, Bacon, Mayonnaise},
		{Lettuce, Tomato, Cheese, Onions, Pickles, Bacon, Mayonnaise, Ketchup},
	}

	drinksByLevel = [MaxLevel][]DrinkType{
		{Cola, Water},
		{Cola, Water, Sprite},
		{Cola, Water, Sprite, Orange},
		{Cola, Water, Sprite, Orange, Coffee},
		{Cola, Water, Sprite, Orange, Coffee, Tea},
		{Cola, Water, Sprite, Orange, Coffee, Tea, Juice},
		{Cola, Water, Sprite, Orange, Coffee, Tea, Juice},
	}
)

// ClampLevel maps any level number onto the 1..MaxLevel catalog range.
func ClampLevel(level int) int {
	return core.Clamp(level, 1, MaxLevel)
}

// PizzaToppings returns the pizza shelf for a level. The slice is a copy.
func PizzaToppings(level int) []Ingredient {
	return append([]Ingredient(nil), pizzaToppingsByLevel[ClampLevel(level)-1]...)
}

// BurgerToppings returns the burger shelf for a level. The slice is a copy.
func BurgerToppings(level int) []Ingredient {
	return append([]Ingredient(nil), burgerToppingsByLevel[ClampLevel(level)-1]...)
}

// Drinks returns the drink machine menu for a level. The slice is a copy.
func Drinks(level int) []DrinkType {
	return append([]DrinkType(nil), drinksByLevel[ClampLevel(level)-1]...)
}

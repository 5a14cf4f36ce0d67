// Package orders generates customer orders and models the customers waiting
// for them.
package orders

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
)

// Mood colours how a customer behaves while waiting and paying.
type Mood string

const (
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodImpatient Mood = "impatient"
	MoodPicky     Mood = "picky"
	MoodGenerous  Mood = "generous"
)

// Size is a drink cup size.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists cup sizes in menu order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// FillTarget is the fill level (0-100) a cup of this size should reach.
func (s Size) FillTarget() float64 {
	switch s {
	case SizeSmall:
		return 60
	case SizeLarge:
		return 100
	default:
		return 80
	}
}

// SpecialRequest is an optional modifier a customer attaches to the order.
type SpecialRequest string

const (
	RequestMoreSauce        SpecialRequest = "more sauce"
	RequestDoubleCheese     SpecialRequest = "double cheese"
	RequestCrispyCrust      SpecialRequest = "crispy crust"
	RequestNoBurning        SpecialRequest = "no burning"
	RequestEvenDistribution SpecialRequest = "even distribution"
	RequestExtraSauce       SpecialRequest = "extra sauce"
	RequestCrispyPatty      SpecialRequest = "crispy patty"
	RequestWithIce          SpecialRequest = "with ice"
	RequestNoIce            SpecialRequest = "no ice"
	RequestLargeCup         SpecialRequest = "large cup"
	RequestSmallCup         SpecialRequest = "small cup"
)

// requestPools are the requests a customer may make per order type.
var requestPools = map[kitchen.Kind][]SpecialRequest{
	kitchen.KindPizza:  {RequestMoreSauce, RequestDoubleCheese, RequestCrispyCrust, RequestNoBurning, RequestEvenDistribution},
	kitchen.KindBurger: {RequestDoubleCheese, RequestNoBurning, RequestExtraSauce, RequestCrispyPatty},
	kitchen.KindDrink:  {RequestWithIce, RequestNoIce, RequestLargeCup, RequestSmallCup},
}

// Order is what a customer asks for. Requirements are fixed once generated.
type Order struct {
	ID    string
	Level int
	Type  kitchen.Kind

	// Requirements maps toppings to portion counts (pizza, burger).
	Requirements map[kitchen.Ingredient]int

	DoughRequired  bool
	SauceRequired  bool
	CheeseRequired bool

	Patty kitchen.Patty

	Drink       kitchen.DrinkType
	Size        Size
	IceRequired bool

	TimeLimit int // seconds
	Reward    int
	Penalty   int

	Customer        string
	Mood            Mood
	SpecialRequests []SpecialRequest

	FromCatalog bool
}

// Required returns the required portion count of ing.
func (o Order) Required(ing kitchen.Ingredient) int {
	return o.Requirements[ing]
}

// HasRequest reports whether the customer asked for r.
func (o Order) HasRequest(r SpecialRequest) bool {
	for _, req := range o.SpecialRequests {
		if req == r {
			return true
		}
	}
	return false
}

// SortedRequirements returns requirement keys in catalog order, for stable
// display and feedback.
func (o Order) SortedRequirements() []kitchen.Ingredient {
	keys := make([]kitchen.Ingredient, 0, len(o.Requirements))
	for ing := range o.Requirements {
		keys = append(keys, ing)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Summary is a one-line description for the HUD.
func (o Order) Summary() string {
	var b strings.Builder
	switch o.Type {
	case kitchen.KindDrink:
		fmt.Fprintf(&b, "%s %s", o.Size, o.Drink)
		if o.IceRequired {
			b.WriteString(" with ice")
		} else {
			b.WriteString(" no ice")
		}
	case kitchen.KindBurger:
		fmt.Fprintf(&b, "%s burger", o.Patty)
	default:
		b.WriteString("pizza")
		if !o.SauceRequired {
			b.WriteString(" no sauce")
		}
		if !o.CheeseRequired {
			b.WriteString(" no cheese")
		}
	}

	parts := make([]string, 0, len(o.Requirements))
	for _, ing := range o.SortedRequirements() {
		parts = append(parts, fmt.Sprintf("%s x%d", ing, o.Requirements[ing]))
	}
	if len(parts) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(parts, ", "))
	}
	return b.String()
}

package kitchen

import "fmt"

// Kind is the food category an order asks for.
type Kind int

const (
	KindPizza Kind = iota
	KindBurger
	KindDrink
)

// Kinds lists every food kind in generation order.
var Kinds = []Kind{KindPizza, KindBurger, KindDrink}

func (k Kind) String() string {
	switch k {
	case KindPizza:
		return "pizza"
	case KindBurger:
		return "burger"
	case KindDrink:
		return "drink"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("kitchen: unknown order type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FoodItem is the behaviour shared by everything on the workbench.
type FoodItem interface {
	Kind() Kind
	// Stage is a short name of the current preparation state.
	Stage() string
	Quality() float64
	Complete() bool
	// Tick advances whatever timer is running (oven, grill, pour).
	Tick(dt float64)
}

// Timings groups the preparation windows for one kitchen.
type Timings struct {
	Oven  Window `yaml:"oven"`
	Grill Window `yaml:"grill"`
	Pour  Window `yaml:"pour"`
}

// DefaultTimings returns the standard kitchen windows.
func DefaultTimings() Timings {
	return Timings{Oven: OvenWindow, Grill: GrillWindow, Pour: PourWindow}
}

// NewItem returns a fresh item of the given kind.
func NewItem(kind Kind, t Timings) FoodItem {
	switch kind {
	case KindBurger:
		return NewBurger(t.Grill)
	case KindDrink:
		return NewDrink(t.Pour)
	default:
		return NewPizza(t.Oven)
	}
}

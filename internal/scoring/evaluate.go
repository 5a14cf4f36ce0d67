// Package scoring judges a prepared item against the order it was made for.
//
// Evaluation is pure: neither the item nor the order is modified, so judging
// the same pair twice gives the same Result.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-cafe/internal/kitchen"
	"github.com/vovakirdan/tui-cafe/internal/orders"
)

// PassScore is the lowest final score that counts as a successful order.
const PassScore = 60

// Coverage bounds for sauce and cheese.
const (
	lowCoverage  = 50
	highCoverage = 90
)

// Distribution variance limits. The mean share of each zone is 0.33.
const (
	zoneShare           = 0.33
	maxVariance         = 0.05
	evenRequestVariance = 0.02
)

// Tier grades a successful order and scales the reward.
type Tier int

const (
	TierFail Tier = iota
	TierPass
	TierGood
	TierExcellent
	TierPerfect
)

func (t Tier) String() string {
	switch t {
	case TierPass:
		return "satisfactory"
	case TierGood:
		return "good"
	case TierExcellent:
		return "excellent"
	case TierPerfect:
		return "perfect"
	default:
		return "unsatisfactory"
	}
}

// Multiplier returns the reward multiplier for the tier.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierGood:
		return 1.1
	case TierExcellent:
		return 1.25
	case TierPerfect:
		return 1.5
	case TierPass:
		return 1
	default:
		return 0
	}
}

func (t Tier) note() string {
	switch t {
	case TierGood:
		return "good! +10% pay"
	case TierExcellent:
		return "excellent! +25% pay"
	case TierPerfect:
		return "PERFECT! +50% pay"
	case TierPass:
		return "satisfactory"
	default:
		return "unsatisfactory"
	}
}

// TierFor grades a final score.
func TierFor(final float64) Tier {
	switch {
	case final < PassScore:
		return TierFail
	case final >= 90:
		return TierPerfect
	case final >= 80:
		return TierExcellent
	case final >= 70:
		return TierGood
	default:
		return TierPass
	}
}

// Result is the verdict on a served item.
type Result struct {
	Success bool
	// Feedback is a short summary built from the first few notes.
	Feedback string
	Score    int
	// Reward is the money earned: the order reward scaled by Tier, or 0
	// when the order failed.
	Reward int
	Tier   Tier
	Notes  []string
}

// Evaluate judges item against order.
func Evaluate(item kitchen.FoodItem, order orders.Order) Result {
	if item == nil {
		return fail("nothing to serve")
	}
	if item.Kind() != order.Type {
		return fail(fmt.Sprintf("wrong item: ordered %s, got %s", order.Type, item.Kind()))
	}

	switch it := item.(type) {
	case *kitchen.Pizza:
		return evaluatePizza(it, order)
	case *kitchen.Burger:
		return evaluateBurger(it, order)
	case *kitchen.Drink:
		return evaluateDrink(it, order)
	default:
		return fail(fmt.Sprintf("cannot judge %s", item.Kind()))
	}
}

func fail(reason string) Result {
	return Result{Feedback: reason, Notes: []string{reason}, Tier: TierFail}
}

func evaluatePizza(p *kitchen.Pizza, o orders.Order) Result {
	switch {
	case p.Burned():
		return fail("pizza is burned! -100%")
	case !p.Cooked():
		return fail("pizza is not baked")
	case p.CutCount() < kitchen.CutsRequired:
		return fail("pizza is not cut")
	case o.DoughRequired && !p.HasDough():
		return fail("no dough")
	}

	var notes []string
	score := 0
	if o.SauceRequired {
		score += coveragePenalty(p.SauceCoverage(), "sauce", &notes)
	}
	if o.CheeseRequired {
		score += coveragePenalty(p.CheeseCoverage(), "cheese", &notes)
	}

	ingScore := 0
	for _, ing := range o.SortedRequirements() {
		required := o.Requirements[ing]
		actual := p.ToppingCount(ing)
		switch diff := actual - required; {
		case actual < required:
			notes = append(notes, fmt.Sprintf("missing %s: %d/%d", ing, actual, required))
			ingScore -= 30
		case actual > required*2:
			notes = append(notes, fmt.Sprintf("too much %s", ing))
			ingScore -= 15
		case diff == 0:
			ingScore += 20
		case diff <= 2:
			ingScore += 10
		}
	}

	variance := Variance(p.Distribution())
	if variance > maxVariance {
		notes = append(notes, "toppings are unevenly spread")
		score -= 10
	}

	final := math.Max(0, float64(50+ingScore+score)) * p.Quality() / 100

	if o.HasRequest(orders.RequestEvenDistribution) && variance > evenRequestVariance {
		notes = append(notes, "customer asked for an even spread")
		final *= 0.7
	}
	if o.HasRequest(orders.RequestNoBurning) && p.Quality() < 80 {
		notes = append(notes, "customer asked for no burning")
		final *= 0.8
	}

	return conclude(final, o, notes)
}

func coveragePenalty(coverage float64, layer string, notes *[]string) int {
	switch {
	case coverage < lowCoverage:
		*notes = append(*notes, "too little "+layer)
		return -20
	case coverage > highCoverage:
		*notes = append(*notes, "too much "+layer)
		return -10
	}
	return 0
}

// Variance returns the squared spread of zone shares around an even split.
func Variance(d [3]float64) float64 {
	var v float64
	for _, share := range d {
		v += (share - zoneShare) * (share - zoneShare)
	}
	return v
}

func evaluateBurger(b *kitchen.Burger, o orders.Order) Result {
	switch {
	case b.Burned():
		return fail("burger is burned! -100%")
	case !b.Cooked():
		return fail("patty is undercooked")
	case !b.Assembled():
		return fail("burger is not assembled")
	case !b.HasBottomBun() || !b.HasTopBun():
		return fail("no buns")
	}

	var notes []string
	score := 0
	if b.Patty() != o.Patty {
		notes = append(notes, "wrong patty")
		score -= 30
	}

	ingScore := 0
	for _, ing := range o.SortedRequirements() {
		required := o.Requirements[ing]
		actual := b.ToppingCount(ing)
		switch {
		case actual < required:
			notes = append(notes, fmt.Sprintf("missing %s: %d/%d", ing, actual, required))
			ingScore -= 25
		case actual > required*2:
			notes = append(notes, fmt.Sprintf("too much %s", ing))
			ingScore -= 10
		case actual == required:
			ingScore += 15
		case actual-required == 1:
			ingScore += 10
		}
	}

	final := math.Max(0, float64(50+ingScore+score)) * b.Quality() / 100

	if o.HasRequest(orders.RequestNoBurning) && b.Quality() < 80 {
		notes = append(notes, "customer asked for no burning")
		final *= 0.8
	}

	return conclude(final, o, notes)
}

// Drink match bonuses. A drink has no topping list, so the right drink, the
// right ice and the right size play that part.
const (
	drinkMatchBonus = 20
	iceMatchBonus   = 15
	sizeMatchBonus  = 15
)

func evaluateDrink(d *kitchen.Drink, o orders.Order) Result {
	switch {
	case !d.Filled():
		return fail("drink is not poured")
	case d.Type() != o.Drink:
		return fail(fmt.Sprintf("wrong drink! ordered %s, got %s", o.Drink, d.Type()))
	}

	var notes []string
	score := drinkMatchBonus
	switch {
	case o.IceRequired && !d.Ice():
		notes = append(notes, "no ice")
		score -= 15
	case !o.IceRequired && d.Ice():
		notes = append(notes, "ice not wanted")
		score -= 10
	default:
		score += iceMatchBonus
	}

	switch diff := math.Abs(d.FillLevel() - o.Size.FillTarget()); {
	case diff > 20:
		notes = append(notes, "wrong size")
		score -= 20
	case diff > 10:
		notes = append(notes, "size almost right")
		score -= 5
	default:
		score += sizeMatchBonus
	}

	final := math.Max(0, float64(50+score)) * d.Quality() / 100
	return conclude(final, o, notes)
}

// conclude grades the final score and prices the reward.
func conclude(final float64, o orders.Order, notes []string) Result {
	tier := TierFor(final)
	notes = append(notes, tier.note())

	r := Result{
		Success: tier != TierFail,
		Score:   int(final),
		Tier:    tier,
		Notes:   notes,
	}
	if r.Success {
		r.Reward = int(float64(o.Reward) * tier.Multiplier())
	}

	shown := notes
	if len(shown) > 3 {
		shown = shown[:3]
	}
	r.Feedback = strings.Join(shown, ", ")
	if r.Feedback == "" {
		if r.Success {
			r.Feedback = "OK"
		} else {
			r.Feedback = "doesn't match the order"
		}
	}
	return r
}

// Rating returns the chef's star rating for the money held at the end of
// the game.
func Rating(money int) int {
	switch {
	case money >= 500:
		return 5
	case money >= 400:
		return 4
	case money >= 300:
		return 3
	default:
		return 2
	}
}

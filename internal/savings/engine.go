// Package savings derives savings and progress metrics from focus lists.
//
// Every function in this file is pure. The stateful List in list.go calls
// into them after each swap.
package savings

import (
	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/shopspring/decimal"
)

// TotalPrice sums the price of every item.
func TotalPrice(items []model.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// Difference returns TotalPrice(original) - TotalPrice(current).
// Positive is a saving, negative an overspend. The sign is never clamped.
func Difference(original, current []model.Item) decimal.Decimal {
	return TotalPrice(original).Sub(TotalPrice(current))
}

// MaxSavings returns the best difference reachable by picking the cheapest
// option in every slot. candidates[i] holds the alternatives for original[i].
func MaxSavings(original []model.Item, candidates [][]model.Item) decimal.Decimal {
	if len(original) == 0 {
		return decimal.Zero
	}

	minTotal := decimal.Zero
	for i, orig := range original {
		lo, _ := priceRange(Options(orig, candidatesAt(candidates, i)))
		minTotal = minTotal.Add(lo)
	}

	saved := TotalPrice(original).Sub(minTotal)
	if saved.IsNegative() {
		return decimal.Zero
	}
	return saved
}

// SlotProgress places the current price between the slot's priciest (0) and
// cheapest (1) option. A slot whose options all cost the same scores 1.
func SlotProgress(original, current model.Item, candidates []model.Item) float64 {
	lo, hi := priceRange(Options(original, candidates))
	if !hi.GreaterThan(lo) {
		return 1
	}

	norm := hi.Sub(current.Price).Div(hi.Sub(lo)).InexactFloat64()
	return clamp(norm, 0, 1)
}

// ListProgress is the mean SlotProgress over all slots, or 0 for an empty list.
// original and current must have the same length.
func ListProgress(original, current []model.Item, candidates [][]model.Item) float64 {
	if len(current) == 0 {
		return 0
	}

	var sum float64
	for i := range current {
		sum += SlotProgress(original[i], current[i], candidatesAt(candidates, i))
	}
	return sum / float64(len(current))
}

// ReplacementCandidates returns every option for the slot except the item
// currently occupying it. Items are compared by ID only.
func ReplacementCandidates(s Slot) []model.Item {
	opts := Options(s.original, s.candidates)
	out := make([]model.Item, 0, len(opts))
	for _, o := range opts {
		if o.Is(s.current) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Balance maps a difference onto [-1, 1] relative to the list's max savings.
// It drives the two-sided bar: left is overspend, right is saving.
func Balance(difference, maxSavings decimal.Decimal) float64 {
	if !maxSavings.IsPositive() {
		return 0
	}
	return clamp(difference.Div(maxSavings).InexactFloat64(), -1, 1)
}

// Options returns the full choice set of a slot: the original first, then
// its candidates in catalog order.
func Options(original model.Item, candidates []model.Item) []model.Item {
	out := make([]model.Item, 0, len(candidates)+1)
	out = append(out, original)
	return append(out, candidates...)
}

func priceRange(opts []model.Item) (lo, hi decimal.Decimal) {
	lo, hi = opts[0].Price, opts[0].Price
	for _, o := range opts[1:] {
		if o.Price.LessThan(lo) {
			lo = o.Price
		}
		if o.Price.GreaterThan(hi) {
			hi = o.Price
		}
	}
	return lo, hi
}

func candidatesAt(candidates [][]model.Item, i int) []model.Item {
	if i < len(candidates) {
		return candidates[i]
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

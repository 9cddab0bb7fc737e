package savings

import (
	"math"
	"testing"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func newItem(t *testing.T, name, price string) model.Item {
	t.Helper()
	return model.Item{ID: uuid.New(), Name: name, Price: dec(t, price)}
}

// groceryDef is the Grocery scenario: only Coca-Cola has alternatives.
func groceryDef(t *testing.T) model.ListDef {
	t.Helper()
	return model.ListDef{
		ID:    "grocery",
		Title: "Grocery",
		Originals: []model.Item{
			newItem(t, "Coca-Cola", "2.50"),
			newItem(t, "Cake", "15.00"),
			newItem(t, "Bread", "3.50"),
			newItem(t, "Pasta", "2.00"),
		},
		Candidates: [][]model.Item{
			{newItem(t, "Water", "1.50"), newItem(t, "Wine", "12.00"), newItem(t, "Beer", "8.00")},
			nil,
			nil,
			nil,
		},
	}
}

func TestGroceryScenario_SwapToWater(t *testing.T) {
	def := groceryDef(t)
	l := MustList(def)
	water := def.Candidates[0][0]

	if err := l.Swap(0, water); err != nil {
		t.Fatalf("Swap to Water: %v", err)
	}

	if got := TotalPrice(l.Originals()); !got.Equal(dec(t, "23.00")) {
		t.Errorf("original total = %s, want 23.00", got)
	}
	if got := TotalPrice(l.Current()); !got.Equal(dec(t, "22.00")) {
		t.Errorf("current total = %s, want 22.00", got)
	}
	if got := Difference(l.Originals(), l.Current()); !got.Equal(dec(t, "1.00")) {
		t.Errorf("difference = %s, want 1.00", got)
	}
}

func TestDifference_KeepsOverspendSign(t *testing.T) {
	def := groceryDef(t)
	l := MustList(def)
	wine := def.Candidates[0][1]

	if err := l.Swap(0, wine); err != nil {
		t.Fatalf("Swap to Wine: %v", err)
	}
	if got := l.Result().Difference; !got.Equal(dec(t, "-9.50")) {
		t.Fatalf("difference = %s, want -9.50", got)
	}
}

func TestDifference_ZeroBeforeAnySwap(t *testing.T) {
	for _, def := range catalog.GetLists() {
		l := MustList(def)
		if !TotalPrice(l.Current()).Equal(TotalPrice(l.Originals())) {
			t.Errorf("%s: current total differs from original before swapping", def.ID)
		}
		if d := l.Result().Difference; !d.IsZero() {
			t.Errorf("%s: difference = %s, want 0", def.ID, d)
		}
	}
}

func TestMaxSavings_CatalogGrocery(t *testing.T) {
	def := catalog.GetLists()[0]
	// Cheapest per slot: Water 1.50, Dark Chocolate 4.00, Crackers 2.50, Pasta 2.00.
	got := MaxSavings(def.Originals, def.Candidates)
	if !got.Equal(dec(t, "13.00")) {
		t.Fatalf("MaxSavings = %s, want 13.00", got)
	}
}

func TestMaxSavings_NeverNegative(t *testing.T) {
	pricier := model.ListDef{
		Originals:  []model.Item{newItem(t, "Tap Water", "0.00")},
		Candidates: [][]model.Item{{newItem(t, "Sparkling", "3.00")}},
	}
	if got := MaxSavings(pricier.Originals, pricier.Candidates); !got.IsZero() {
		t.Errorf("MaxSavings = %s, want 0 when original is already cheapest", got)
	}
	if got := MaxSavings(nil, nil); !got.IsZero() {
		t.Errorf("MaxSavings(empty) = %s, want 0", got)
	}
	for _, def := range catalog.GetLists() {
		if got := MaxSavings(def.Originals, def.Candidates); got.IsNegative() {
			t.Errorf("%s: MaxSavings = %s, want >= 0", def.ID, got)
		}
	}
}

func TestSlotProgress(t *testing.T) {
	coke := newItem(t, "Coca-Cola", "2.50")
	water := newItem(t, "Water", "1.50")
	wine := newItem(t, "Wine", "12.00")
	beer := newItem(t, "Beer", "8.00")
	cands := []model.Item{water, wine, beer}

	tests := []struct {
		name    string
		current model.Item
		want    float64
	}{
		{"cheapest", water, 1},
		{"priciest", wine, 0},
		{"original", coke, 9.5 / 10.5},
		{"beer", beer, 4.0 / 10.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotProgress(coke, tt.current, cands)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("SlotProgress = %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestSlotProgress_SinglePriceScoresFull(t *testing.T) {
	balloons := newItem(t, "Balloons", "8.00")
	if got := SlotProgress(balloons, balloons, nil); got != 1 {
		t.Errorf("no candidates: SlotProgress = %v, want 1", got)
	}

	soda := newItem(t, "Soda", "2.50")
	lemonade := newItem(t, "Lemonade", "2.50")
	if got := SlotProgress(soda, lemonade, []model.Item{lemonade}); got != 1 {
		t.Errorf("equal prices: SlotProgress = %v, want 1", got)
	}
}

func TestSlotProgress_BoundedForEveryOption(t *testing.T) {
	for _, def := range catalog.GetLists() {
		for i, orig := range def.Originals {
			for _, cur := range Options(orig, def.Candidates[i]) {
				p := SlotProgress(orig, cur, def.Candidates[i])
				if p < 0 || p > 1 {
					t.Errorf("%s slot %d at %s: progress %v outside [0,1]", def.ID, i, cur.Name, p)
				}
			}
		}
	}
}

func TestListProgress_EmptyList(t *testing.T) {
	if got := ListProgress(nil, nil, nil); got != 0 {
		t.Fatalf("ListProgress(empty) = %v, want 0", got)
	}
}

// moveEverySlot swaps each slot to its cheapest (or priciest) option.
func moveEverySlot(t *testing.T, l *List, cheapest bool) {
	t.Helper()
	for i := 0; i < l.Len(); i++ {
		s := l.Slot(i)
		opts := Options(s.Original(), s.Candidates())
		pick := opts[0]
		for _, o := range opts[1:] {
			if (cheapest && o.Price.LessThan(pick.Price)) || (!cheapest && o.Price.GreaterThan(pick.Price)) {
				pick = o
			}
		}
		if pick.Is(s.Current()) {
			continue
		}
		if err := l.Swap(i, pick); err != nil {
			t.Fatalf("%s slot %d: Swap(%s): %v", l.ID, i, pick.Name, err)
		}
	}
}

func TestCheapestEverywhere_ReachesMaxSavings(t *testing.T) {
	for _, def := range catalog.GetLists() {
		l := MustList(def)
		moveEverySlot(t, l, true)

		r := l.Result()
		if !r.Difference.Equal(r.MaxSavings) {
			t.Errorf("%s: difference = %s, want max savings %s", def.ID, r.Difference, r.MaxSavings)
		}
		if r.Progress != 1 {
			t.Errorf("%s: progress = %v, want 1", def.ID, r.Progress)
		}
	}
}

func TestPriciestEverywhere_ZeroProgress(t *testing.T) {
	for _, def := range catalog.GetLists() {
		l := MustList(def)
		moveEverySlot(t, l, false)

		// Single-price slots always score 1, so they are the only credit left.
		flat := 0
		for i, orig := range def.Originals {
			lo, hi := priceRange(Options(orig, def.Candidates[i]))
			if lo.Equal(hi) {
				flat++
			}
		}
		want := float64(flat) / float64(l.Len())

		if got := l.Result().Progress; math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: progress = %v, want %v", def.ID, got, want)
		}
	}
}

func TestReplacementCandidates_ExcludesCurrentByIdentity(t *testing.T) {
	soda := newItem(t, "Soda", "2.50")
	twinA := newItem(t, "Lemonade", "2.50")
	twinB := newItem(t, "Lemonade", "2.50")
	l := MustList(model.ListDef{
		ID:         "twins",
		Originals:  []model.Item{soda},
		Candidates: [][]model.Item{{twinA, twinB}},
	})

	if err := l.Swap(0, twinA); err != nil {
		t.Fatalf("Swap(twinA): %v", err)
	}

	got := ReplacementCandidates(l.Slot(0))
	if len(got) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(got))
	}
	for _, c := range got {
		if c.Is(twinA) {
			t.Fatal("candidates contain the current item")
		}
	}
	if !got[0].Is(soda) || !got[1].Is(twinB) {
		t.Fatalf("candidates = [%s %s], want [Soda, second Lemonade]", got[0].Name, got[1].Name)
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		diff, max string
		want      float64
	}{
		{"5", "10", 0.5},
		{"-5", "10", -0.5},
		{"-50", "10", -1},
		{"3", "0", 0},
		{"0", "10", 0},
	}
	for _, tt := range tests {
		got := Balance(dec(t, tt.diff), dec(t, tt.max))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Balance(%s, %s) = %v, want %v", tt.diff, tt.max, got, tt.want)
		}
	}
}

package savings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrShapeMismatch means a list definition has a different number of
	// originals and candidate sets.
	ErrShapeMismatch = errors.New("slot count does not match candidate set count")
	// ErrNegativePrice means an item in the definition costs less than zero.
	ErrNegativePrice = errors.New("negative item price")
	// ErrDuplicateItem means two options in the same list share an ID.
	ErrDuplicateItem = errors.New("duplicate item id")
	// ErrSlotRange means a slot index is outside the list.
	ErrSlotRange = errors.New("slot index out of range")
	// ErrInvalidSwap means the target item is not a replacement candidate.
	ErrInvalidSwap = errors.New("item is not a replacement candidate")
)

// SlotState is the observable state of a single slot.
type SlotState int

const (
	AtOriginal SlotState = iota
	Swapped
)

func (s SlotState) String() string {
	if s == Swapped {
		return "swapped"
	}
	return "original"
}

// Slot is one replaceable position in a list.
type Slot struct {
	original   model.Item
	candidates []model.Item
	current    model.Item
}

// Original returns the item the slot started with.
func (s Slot) Original() model.Item { return s.original }

// Current returns the item presently selected.
func (s Slot) Current() model.Item { return s.current }

// Candidates returns a copy of the slot's alternatives.
func (s Slot) Candidates() []model.Item {
	return append([]model.Item(nil), s.candidates...)
}

// State reports whether the slot still holds its original item.
func (s Slot) State() SlotState {
	if s.current.Is(s.original) {
		return AtOriginal
	}
	return Swapped
}

// List is an ordered set of slots under one title. The number of slots and
// each slot's candidates are fixed at construction.
type List struct {
	ID    string
	Title string
	slots []Slot
}

// NewList validates def and builds a list with every slot at its original.
func NewList(def model.ListDef) (*List, error) {
	if len(def.Originals) != len(def.Candidates) {
		return nil, fmt.Errorf("list %q: %d slots, %d candidate sets: %w",
			def.ID, len(def.Originals), len(def.Candidates), ErrShapeMismatch)
	}

	seen := make(map[uuid.UUID]struct{})
	check := func(it model.Item) error {
		if it.Price.IsNegative() {
			return fmt.Errorf("list %q: %s costs %s: %w", def.ID, it.Name, it.Price, ErrNegativePrice)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("list %q: %s: %w", def.ID, it.Name, ErrDuplicateItem)
		}
		seen[it.ID] = struct{}{}
		return nil
	}

	slots := make([]Slot, len(def.Originals))
	for i, orig := range def.Originals {
		if err := check(orig); err != nil {
			return nil, err
		}
		for _, c := range def.Candidates[i] {
			if err := check(c); err != nil {
				return nil, err
			}
		}
		slots[i] = Slot{
			original:   orig,
			candidates: append([]model.Item(nil), def.Candidates[i]...),
			current:    orig,
		}
	}

	return &List{ID: def.ID, Title: def.Title, slots: slots}, nil
}

// MustList is NewList for definitions known to be valid, such as the
// built-in catalog. It panics on error.
func MustList(def model.ListDef) *List {
	l, err := NewList(def)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of slots.
func (l *List) Len() int { return len(l.slots) }

// Slot returns a copy of slot i. It panics if i is out of range.
func (l *List) Slot(i int) Slot { return l.slots[i] }

// IsSwapped reports whether slot i holds something other than its original.
func (l *List) IsSwapped(i int) bool {
	return l.slots[i].State() == Swapped
}

// Originals returns the original item of every slot.
func (l *List) Originals() []model.Item {
	out := make([]model.Item, len(l.slots))
	for i, s := range l.slots {
		out[i] = s.original
	}
	return out
}

// Current returns the currently selected item of every slot.
func (l *List) Current() []model.Item {
	out := make([]model.Item, len(l.slots))
	for i, s := range l.slots {
		out[i] = s.current
	}
	return out
}

// Candidates returns the candidate set of every slot.
func (l *List) Candidates() [][]model.Item {
	out := make([][]model.Item, len(l.slots))
	for i, s := range l.slots {
		out[i] = s.Candidates()
	}
	return out
}

// Swap replaces the item in slot i. to must be one of the slot's
// ReplacementCandidates; otherwise the list is left untouched.
func (l *List) Swap(i int, to model.Item) error {
	if i < 0 || i >= len(l.slots) {
		return fmt.Errorf("list %q slot %d: %w", l.ID, i, ErrSlotRange)
	}

	for _, c := range ReplacementCandidates(l.slots[i]) {
		if c.Is(to) {
			l.slots[i].current = c
			return nil
		}
	}
	return fmt.Errorf("list %q slot %d: %s: %w", l.ID, i, to.Name, ErrInvalidSwap)
}

// Reset puts every slot back on its original item.
func (l *List) Reset() {
	for i := range l.slots {
		l.slots[i].current = l.slots[i].original
	}
}

// OriginalTotal is the price of the untouched list.
func (l *List) OriginalTotal() decimal.Decimal { return TotalPrice(l.Originals()) }

// CurrentTotal is the price of the list as currently selected.
func (l *List) CurrentTotal() decimal.Decimal { return TotalPrice(l.Current()) }

// Result computes the list's difference, max savings and progress.
func (l *List) Result() model.ListResult {
	orig, cur, cands := l.Originals(), l.Current(), l.Candidates()
	return model.ListResult{
		ListID:     l.ID,
		Difference: Difference(orig, cur),
		MaxSavings: MaxSavings(orig, cands),
		Progress:   ListProgress(orig, cur, cands),
	}
}

// OptionByName finds an option of slot i (original or candidate) by
// case-insensitive name.
func (l *List) OptionByName(i int, name string) (model.Item, bool) {
	if i < 0 || i >= len(l.slots) {
		return model.Item{}, false
	}
	s := l.slots[i]
	for _, o := range Options(s.original, s.candidates) {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return model.Item{}, false
}

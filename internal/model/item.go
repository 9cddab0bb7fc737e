// Package model defines domain types for focus lists, savings results and goals.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one purchasable product. Identity is ID, never Name or Price.
type Item struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

// Is reports whether both values refer to the same item.
func (it Item) Is(other Item) bool {
	return it.ID == other.ID
}

// ListDef describes a focus list as parallel arrays: Candidates[i] holds the
// alternatives offered for Originals[i].
type ListDef struct {
	ID         string
	Title      string
	Originals  []Item
	Candidates [][]Item
}

// SavingGoal is the thing the shopper is putting money aside for.
type SavingGoal struct {
	ID   string
	Name string
	Cost decimal.Decimal
}

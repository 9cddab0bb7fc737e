package model

import "github.com/shopspring/decimal"

// ListResult is the engine output for one list at a point in time.
type ListResult struct {
	ListID     string
	Difference decimal.Decimal // original total - current total; negative means overspend
	MaxSavings decimal.Decimal
	Progress   float64 // 0..1, 1 = cheapest possible selection
}

// Summary holds the cross-list aggregate.
type Summary struct {
	TotalDifference decimal.Decimal
	TotalMaxSavings decimal.Decimal
	OverallProgress float64
	Lists           []ListResult
}

// Package pipeline owns the interactive session: the focus lists being
// edited and the cross-list aggregate built from their results.
package pipeline

import (
	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/shopspring/decimal"
)

// Aggregator keeps the last reported result of every list and combines them.
type Aggregator struct {
	order   []string
	results map[string]model.ListResult
}

// NewAggregator starts every list at a zero difference, zero max savings
// and zero progress.
func NewAggregator(listIDs ...string) *Aggregator {
	a := &Aggregator{results: make(map[string]model.ListResult, len(listIDs))}
	for _, id := range listIDs {
		a.Record(model.ListResult{ListID: id})
	}
	return a
}

// Record overwrites the stored result for r.ListID. Unknown IDs are appended.
func (a *Aggregator) Record(r model.ListResult) {
	if _, ok := a.results[r.ListID]; !ok {
		a.order = append(a.order, r.ListID)
	}
	a.results[r.ListID] = r
}

// Result returns the stored result for a list.
func (a *Aggregator) Result(listID string) (model.ListResult, bool) {
	r, ok := a.results[listID]
	return r, ok
}

// TotalDifference sums every list's difference. It may be negative.
func (a *Aggregator) TotalDifference() decimal.Decimal {
	total := decimal.Zero
	for _, r := range a.results {
		total = total.Add(r.Difference)
	}
	return total
}

// TotalMaxSavings sums every list's max savings.
func (a *Aggregator) TotalMaxSavings() decimal.Decimal {
	total := decimal.Zero
	for _, r := range a.results {
		total = total.Add(r.MaxSavings)
	}
	return total
}

// OverallProgress is the unweighted mean of per-list progress. Lists count
// equally regardless of item count or price.
func (a *Aggregator) OverallProgress() float64 {
	if len(a.results) == 0 {
		return 0
	}
	var sum float64
	for _, id := range a.order {
		sum += a.results[id].Progress
	}
	return sum / float64(len(a.results))
}

// Summary snapshots the aggregate with per-list results in record order.
func (a *Aggregator) Summary() model.Summary {
	lists := make([]model.ListResult, len(a.order))
	for i, id := range a.order {
		lists[i] = a.results[id]
	}
	return model.Summary{
		TotalDifference: a.TotalDifference(),
		TotalMaxSavings: a.TotalMaxSavings(),
		OverallProgress: a.OverallProgress(),
		Lists:           lists,
	}
}

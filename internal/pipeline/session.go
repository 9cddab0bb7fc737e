package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/savings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnknownList is returned for a list ID the session does not hold.
var ErrUnknownList = errors.New("unknown list")

// ErrDuplicateList is returned when two definitions share a list ID.
var ErrDuplicateList = errors.New("duplicate list")

// Session owns the lists a user is editing. All mutation goes through Swap
// and ResetList, which recompute the affected list and push its result to
// subscribers. A Session is not safe for concurrent use.
type Session struct {
	lists []*savings.List
	byID  map[string]*savings.List
	agg   *Aggregator
	log   *zap.Logger

	nextSubID int
	subs      map[int]func(model.ListResult)
}

// NewSession builds a list for every definition and records each list's
// untouched result. A nil logger disables logging.
func NewSession(defs []model.ListDef, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		byID: make(map[string]*savings.List, len(defs)),
		agg:  NewAggregator(),
		log:  log,
		subs: make(map[int]func(model.ListResult)),
	}

	for _, def := range defs {
		if _, dup := s.byID[def.ID]; dup {
			return nil, fmt.Errorf("building session: list %q: %w", def.ID, ErrDuplicateList)
		}
		l, err := savings.NewList(def)
		if err != nil {
			return nil, fmt.Errorf("building session: %w", err)
		}
		s.lists = append(s.lists, l)
		s.byID[l.ID] = l
		s.agg.Record(l.Result())
	}

	log.Debug("session started", zap.Int("lists", len(s.lists)))
	return s, nil
}

// Lists returns the session's lists in display order.
func (s *Session) Lists() []*savings.List {
	return append([]*savings.List(nil), s.lists...)
}

// List returns a list by ID.
func (s *Session) List(id string) (*savings.List, bool) {
	l, ok := s.byID[id]
	return l, ok
}

// Swap replaces slot of listID with item. On error nothing changes and no
// subscriber is notified.
func (s *Session) Swap(listID string, slot int, item model.Item) (model.ListResult, error) {
	l, ok := s.byID[listID]
	if !ok {
		return model.ListResult{}, fmt.Errorf("swap in %q: %w", listID, ErrUnknownList)
	}

	if err := l.Swap(slot, item); err != nil {
		s.log.Warn("swap rejected",
			zap.String("list", listID),
			zap.Int("slot", slot),
			zap.String("item", item.Name),
			zap.Error(err))
		return model.ListResult{}, err
	}

	r := s.publish(l)
	s.log.Debug("swapped",
		zap.String("list", listID),
		zap.Int("slot", slot),
		zap.String("item", item.Name),
		zap.String("difference", r.Difference.StringFixed(2)),
		zap.Float64("progress", r.Progress))
	return r, nil
}

// ResetList puts every slot of listID back on its original item.
func (s *Session) ResetList(listID string) (model.ListResult, error) {
	l, ok := s.byID[listID]
	if !ok {
		return model.ListResult{}, fmt.Errorf("reset %q: %w", listID, ErrUnknownList)
	}
	l.Reset()
	s.log.Debug("list reset", zap.String("list", listID))
	return s.publish(l), nil
}

// Result returns the last recorded result for listID.
func (s *Session) Result(listID string) (model.ListResult, bool) {
	return s.agg.Result(listID)
}

// Summary returns the cross-list aggregate.
func (s *Session) Summary() model.Summary {
	return s.agg.Summary()
}

// Subscribe registers fn to receive a list's result after every change to
// that list. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(model.ListResult)) (cancel func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Session) publish(l *savings.List) model.ListResult {
	r := l.Result()
	s.agg.Record(r)
	for _, fn := range s.subs {
		fn(r)
	}
	return r
}

// GoalCoverage is the share of the goal's cost covered by the summary's
// total savings, in [0, 1]. Net overspend covers nothing.
func GoalCoverage(sum model.Summary, goal model.SavingGoal) float64 {
	if !goal.Cost.IsPositive() || !sum.TotalDifference.IsPositive() {
		return 0
	}
	if sum.TotalDifference.GreaterThanOrEqual(goal.Cost) {
		return 1
	}
	return sum.TotalDifference.Div(goal.Cost).InexactFloat64()
}

// Remaining is how much of the goal's cost is still uncovered.
func Remaining(sum model.Summary, goal model.SavingGoal) decimal.Decimal {
	left := goal.Cost.Sub(sum.TotalDifference)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

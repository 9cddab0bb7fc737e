package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/savings"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(catalog.GetLists(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func mustOption(t *testing.T, s *Session, listID string, slot int, name string) model.Item {
	t.Helper()
	l, ok := s.List(listID)
	if !ok {
		t.Fatalf("list %q missing", listID)
	}
	it, ok := l.OptionByName(slot, name)
	if !ok {
		t.Fatalf("%s slot %d has no option %q", listID, slot, name)
	}
	return it
}

func TestNewSession_RecordsInitialResults(t *testing.T) {
	s := newTestSession(t)
	sum := s.Summary()

	var gotIDs []string
	for _, r := range sum.Lists {
		gotIDs = append(gotIDs, r.ListID)
		if !r.Difference.IsZero() {
			t.Errorf("%s: initial difference = %s, want 0", r.ListID, r.Difference)
		}
		if !r.MaxSavings.IsPositive() {
			t.Errorf("%s: initial max savings = %s, want > 0", r.ListID, r.MaxSavings)
		}
	}
	if diff := cmp.Diff(catalog.ListIDs(), gotIDs); diff != "" {
		t.Fatalf("summary list order (-want +got):\n%s", diff)
	}
	if !sum.TotalDifference.IsZero() {
		t.Fatalf("initial total difference = %s, want 0", sum.TotalDifference)
	}
}

func TestNewSession_RejectsBadDefinitions(t *testing.T) {
	defs := catalog.GetLists()
	defs[1].Candidates = defs[1].Candidates[:1]

	if _, err := NewSession(defs, nil); !errors.Is(err, savings.ErrShapeMismatch) {
		t.Fatalf("NewSession err = %v, want ErrShapeMismatch", err)
	}

	dup := catalog.GetLists()
	dup = append(dup, dup[0])
	if _, err := NewSession(dup, nil); !errors.Is(err, ErrDuplicateList) {
		t.Fatalf("NewSession err = %v, want ErrDuplicateList", err)
	}
}

func TestSession_SwapNotifiesSubscribers(t *testing.T) {
	s := newTestSession(t)

	var got []model.ListResult
	cancel := s.Subscribe(func(r model.ListResult) { got = append(got, r) })

	water := mustOption(t, s, "grocery", 0, "Water")
	r, err := s.Swap("grocery", 0, water)
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if !r.Difference.Equal(dec("1.00")) {
		t.Fatalf("difference = %s, want 1.00", r.Difference)
	}
	if len(got) != 1 || got[0].ListID != "grocery" {
		t.Fatalf("notifications = %+v, want one for grocery", got)
	}

	cancel()
	wine := mustOption(t, s, "grocery", 0, "Wine")
	if _, err := s.Swap("grocery", 0, wine); err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d notifications after cancel, want 1", len(got))
	}

	sum := s.Summary()
	if !sum.TotalDifference.Equal(dec("-9.50")) {
		t.Fatalf("total difference = %s, want -9.50", sum.TotalDifference)
	}
}

func TestSession_RejectedSwapIsSilent(t *testing.T) {
	s := newTestSession(t)
	calls := 0
	s.Subscribe(func(model.ListResult) { calls++ })

	water := mustOption(t, s, "grocery", 0, "Water")
	if _, err := s.Swap("hygiene", 0, water); !errors.Is(err, savings.ErrInvalidSwap) {
		t.Fatalf("cross-list swap err = %v, want ErrInvalidSwap", err)
	}
	if _, err := s.Swap("garden", 0, water); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("unknown list err = %v, want ErrUnknownList", err)
	}
	if calls != 0 {
		t.Fatalf("subscriber called %d times for rejected swaps", calls)
	}
	if r, _ := s.Result("hygiene"); !r.Difference.IsZero() {
		t.Fatalf("hygiene difference = %s after rejected swap", r.Difference)
	}
}

func TestSession_ResetList(t *testing.T) {
	s := newTestSession(t)
	stool := mustOption(t, s, "furniture", 0, "Stool")
	if _, err := s.Swap("furniture", 0, stool); err != nil {
		t.Fatal(err)
	}

	r, err := s.ResetList("furniture")
	if err != nil {
		t.Fatalf("ResetList: %v", err)
	}
	if !r.Difference.IsZero() {
		t.Fatalf("difference after reset = %s, want 0", r.Difference)
	}
	if _, err := s.ResetList("nope"); !errors.Is(err, ErrUnknownList) {
		t.Fatalf("ResetList(nope) err = %v, want ErrUnknownList", err)
	}
}

func TestGoalCoverage(t *testing.T) {
	goal := model.SavingGoal{ID: "g", Name: "Goal", Cost: dec("200")}

	tests := []struct {
		total string
		want  float64
	}{
		{"50", 0.25},
		{"200", 1},
		{"900", 1},
		{"0", 0},
		{"-20", 0},
	}
	for _, tt := range tests {
		sum := model.Summary{TotalDifference: dec(tt.total)}
		if got := GoalCoverage(sum, goal); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GoalCoverage(%s) = %v, want %v", tt.total, got, tt.want)
		}
	}

	if got := Remaining(model.Summary{TotalDifference: dec("50")}, goal); !got.Equal(dec("150")) {
		t.Errorf("Remaining = %s, want 150", got)
	}
	if got := Remaining(model.Summary{TotalDifference: dec("500")}, goal); !got.IsZero() {
		t.Errorf("Remaining = %s, want 0", got)
	}
}

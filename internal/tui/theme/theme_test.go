package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("no-such-theme").Name; got != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got)
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(All))
	}
	for i, n := range names {
		if n != All[i].Name {
			t.Errorf("Names()[%d] = %q, want %q", i, n, All[i].Name)
		}
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
}

func TestDifferenceColor(t *testing.T) {
	th := FlexokiDark
	if th.Difference(1) != th.Green {
		t.Error("positive difference should use Green")
	}
	if th.Difference(-1) != th.Red {
		t.Error("negative difference should use Red")
	}
	if th.Difference(0) != th.TextMuted {
		t.Error("zero difference should use TextMuted")
	}
}

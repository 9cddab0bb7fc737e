package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var testTitles = []string{"Start", "Grocery", "Furniture & Appliances", "Housekeeping Supplies", "Summary"}

func TestPageLabelsShortenWhenNarrow(t *testing.T) {
	full := PageLabels(testTitles, 200)
	if full[2] != "Furniture & Appliances" {
		t.Errorf("wide label = %q, want full title", full[2])
	}

	short := PageLabels(testTitles, 30)
	if short[2] != "Furniture" {
		t.Errorf("narrow label = %q, want %q", short[2], "Furniture")
	}
	if short[3] != "Housekee…" {
		t.Errorf("narrow label = %q, want %q", short[3], "Housekee…")
	}
	if short[0] != "Start" {
		t.Errorf("narrow label = %q, want Start", short[0])
	}
}

func TestPageAtXMatchesRenderedWidths(t *testing.T) {
	for _, width := range []int{30, 200} {
		labels := PageLabels(testTitles, width)
		pos := 0
		for i, l := range labels {
			w := PageVisualWidth(l)
			if got := PageAtX(testTitles, width, pos+w/2); got != i {
				t.Errorf("width=%d x=%d -> page %d, want %d", width, pos+w/2, got, i)
			}
			pos += w
			if i < len(labels)-1 {
				if got := PageAtX(testTitles, width, pos); got != -1 {
					t.Errorf("width=%d separator x=%d -> page %d, want -1", width, pos, got)
				}
				pos++
			}
		}
		if got := PageAtX(testTitles, width, pos+5); got != -1 {
			t.Errorf("width=%d past end -> %d, want -1", width, got)
		}
	}
}

func TestRenderPageBarWidth(t *testing.T) {
	out := RenderPageBar(testTitles, 1, 120)
	if got := lipgloss.Width(out); got != 120 {
		t.Errorf("RenderPageBar width = %d, want 120", got)
	}
}

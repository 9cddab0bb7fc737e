package components

import (
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// pageLabelMax is the rune limit for a label once the bar no longer fits.
const pageLabelMax = 9

// PageLabels returns the labels the page bar shows for titles at the given
// width. Full titles are used when they fit, otherwise each is shortened to
// its first word.
func PageLabels(titles []string, width int) []string {
	if barWidth(titles) <= width {
		return append([]string(nil), titles...)
	}

	short := make([]string, len(titles))
	for i, title := range titles {
		word, _, _ := strings.Cut(title, " ")
		runes := []rune(word)
		if len(runes) > pageLabelMax {
			word = string(runes[:pageLabelMax-1]) + "…"
		}
		short[i] = word
	}
	return short
}

// PageVisualWidth is the rendered width of one page label.
func PageVisualWidth(label string) int {
	return lipgloss.Width(label) + 2 // horizontal padding
}

func barWidth(labels []string) int {
	w := 0
	for i, l := range labels {
		w += PageVisualWidth(l)
		if i < len(labels)-1 {
			w++ // separator
		}
	}
	return w
}

// RenderPageBar renders the page bar with the given active index.
func RenderPageBar(titles []string, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.Border).
		Background(t.Surface)

	labels := PageLabels(titles, width)
	var b strings.Builder
	for i, label := range labels {
		if i == activeIdx {
			b.WriteString(activeStyle.Render(label))
		} else {
			b.WriteString(inactiveStyle.Render(label))
		}
		if i < len(labels)-1 {
			b.WriteString(sepStyle.Render("│"))
		}
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(b.String())
}

// PageAtX returns the page index under column x, or -1 if none.
// Hitboxes follow the same widths RenderPageBar uses.
func PageAtX(titles []string, width, x int) int {
	pos := 0
	labels := PageLabels(titles, width)
	for i, label := range labels {
		w := PageVisualWidth(label)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
		if i < len(labels)-1 {
			pos++
		}
	}
	return -1
}

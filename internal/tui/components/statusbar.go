package components

import (
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the running total on the right.
func RenderStatusBar(width int, hints, total string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := ""
	if total != "" {
		right = total + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the total before clipping the hints.
		right = ""
		padding = width - lipgloss.Width(left)
		if padding < 0 {
			padding = 0
		}
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}

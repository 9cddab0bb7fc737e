package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns red/orange/yellow/green as a list moves from
// its priciest to its cheapest options.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.75:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	case pct >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ProgressBar renders a labeled progress bar with a percentage.
// Width is the bar alone; the percentage adds five columns.
func ProgressBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForProgress(pct))).
		Background(t.Surface).
		Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// BalanceBar renders a bar centered on zero: overspend fills left of the
// center in red, savings fill right of it in green. balance is in [-1, 1].
// Width covers both halves plus the center marker.
func BalanceBar(balance float64, width int) string {
	t := theme.Active

	if balance < -1 {
		balance = -1
	}
	if balance > 1 {
		balance = 1
	}

	half := (width - 1) / 2
	if half < 2 {
		half = 2
	}

	filled := int(abs(balance) * float64(half))
	if filled > half {
		filled = half
	}

	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	centerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	saveStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	spendStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	empty := func(n int) string { return emptyStyle.Render(strings.Repeat("░", n)) }

	var left, right string
	switch {
	case balance < 0:
		left = empty(half-filled) + spendStyle.Render(strings.Repeat("█", filled))
		right = empty(half)
	case balance > 0:
		left = empty(half)
		right = saveStyle.Render(strings.Repeat("█", filled)) + empty(half-filled)
	default:
		left = empty(half)
		right = empty(half)
	}

	return left + centerStyle.Render("│") + right
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/savings"
	"github.com/theirongolddev/fixgrocery/internal/tui/components"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderListPage(li int, cw int) string {
	t := theme.Active
	l := a.lists[li]
	r := l.Result()

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Initial Cost", Value: cli.FormatPrice(l.OriginalTotal())},
		{Label: "Updated Cost", Value: cli.FormatPrice(l.CurrentTotal())},
		{
			Label: "Difference",
			Value: cli.FormatSigned(r.Difference),
			Delta: "of " + cli.FormatPrice(r.MaxSavings) + " possible",
			Color: t.Difference(r.Difference.Sign()),
		},
	}, cw)

	var slots string
	if a.picker.open {
		widths := components.LayoutRow(cw, 2)
		slots = components.CardRow([]string{
			components.ContentCard(l.Title, a.renderSlots(l, components.CardInnerWidth(widths[0])), widths[0]),
			components.ContentCard("Replace "+l.Slot(a.picker.slot).Current().Name,
				a.renderPicker(l, components.CardInnerWidth(widths[1])), widths[1]),
		})
	} else {
		slots = components.ContentCard(l.Title, a.renderSlots(l, components.CardInnerWidth(cw)), cw)
	}

	return lipgloss.JoinVertical(lipgloss.Left, metrics, slots, a.renderListProgress(l, cw))
}

// renderSlots draws one line per slot: cursor, current item, price and,
// once swapped, the original it replaced.
func (a App) renderSlots(l *savings.List, inner int) string {
	t := theme.Active

	cursorStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	swappedStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	priceW := 10
	nameW := inner - priceW - 4
	if nameW < 8 {
		nameW = 8
	}

	cursor := a.cursors[a.currentListIdx()]
	var b strings.Builder
	for i := 0; i < l.Len(); i++ {
		slot := l.Slot(i)
		name := slot.Current().Name
		if slot.State() == savings.Swapped {
			name += " (was " + slot.Original().Name + ")"
		}
		line := fmt.Sprintf("%-*s %*s", nameW, truncStr(name, nameW), priceW, cli.FormatPrice(slot.Current().Price))

		if i == cursor {
			b.WriteString(cursorStyle.Render("▸ "))
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render("  "))
			if slot.State() == savings.Swapped {
				b.WriteString(swappedStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
		}
		if i < l.Len()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderPicker lists the replacement candidates for the open slot with
// their price change against the current item.
func (a App) renderPicker(l *savings.List, inner int) string {
	t := theme.Active

	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)

	current := l.Slot(a.picker.slot).Current()

	priceW := 10
	deltaW := 9
	nameW := inner - priceW - deltaW - 4
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	for i, opt := range a.picker.options {
		// Positive means the option is cheaper than what sits in the slot.
		delta := current.Price.Sub(opt.Price)
		deltaStyle := lipgloss.NewStyle().Foreground(t.Difference(delta.Sign())).Background(t.Surface)

		line := fmt.Sprintf("%-*s %*s", nameW, truncStr(opt.Name, nameW), priceW, cli.FormatPrice(opt.Price))
		deltaStr := fmt.Sprintf(" %*s", deltaW, cli.FormatSigned(delta))
		if i == a.picker.cursor {
			b.WriteString(markStyle.Render("▸ "))
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render("  "))
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString(deltaStyle.Render(deltaStr))
		if i < len(a.picker.options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a App) renderListProgress(l *savings.List, cw int) string {
	t := theme.Active
	r := l.Result()

	textStyle := lipgloss.NewStyle().
		Foreground(t.Difference(r.Difference.Sign())).
		Background(t.Surface).
		Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	barW := inner - 18
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(textStyle.Render(cli.DifferenceText(r.Difference)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "Progress")))
	b.WriteString(components.ProgressBar(r.Progress, barW))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "Balance")))
	b.WriteString(components.BalanceBar(savings.Balance(r.Difference, r.MaxSavings), barW))

	return components.ContentCard("Savings", b.String(), cw)
}

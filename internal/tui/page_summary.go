package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/pipeline"
	"github.com/theirongolddev/fixgrocery/internal/tui/components"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryPage(cw int) string {
	t := theme.Active
	sum := a.session.Summary()

	headline := lipgloss.NewStyle().
		Foreground(t.Difference(sum.TotalDifference.Sign())).
		Background(t.Surface).
		Bold(true).
		Render(cli.TotalSavingsText(sum.TotalDifference))
	headCard := components.ContentCard("", headline, cw)

	metrics := components.MetricCardRow([]components.Metric{
		{
			Label: "Total Difference",
			Value: cli.FormatSigned(sum.TotalDifference),
			Color: t.Difference(sum.TotalDifference.Sign()),
		},
		{Label: "Max Savings", Value: cli.FormatPrice(sum.TotalMaxSavings)},
		{Label: "Overall Progress", Value: cli.FormatPercent(sum.OverallProgress)},
	}, cw)

	// Per-list breakdown
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	nameW := 24
	barW := inner - nameW - 12 - 5 - 2
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, r := range sum.Lists {
		title := r.ListID
		if l, ok := a.session.List(r.ListID); ok {
			title = l.Title
		}
		diffStyle := lipgloss.NewStyle().Foreground(t.Difference(r.Difference.Sign())).Background(t.Surface)

		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(title, nameW))))
		b.WriteString(diffStyle.Render(fmt.Sprintf("%12s", cli.FormatSigned(r.Difference))))
		b.WriteString(labelStyle.Render("  "))
		b.WriteString(components.ProgressBar(r.Progress, barW))
		if i < len(sum.Lists)-1 {
			b.WriteString("\n")
		}
	}
	breakdown := components.ContentCard("Lists", b.String(), cw)

	// Goal coverage
	b.Reset()
	coverage := pipeline.GoalCoverage(sum, a.goal)
	b.WriteString(rowStyle.Render(a.goal.Name))
	b.WriteString(labelStyle.Render("  " + cli.FormatPrice(a.goal.Cost)))
	b.WriteString("\n\n")
	b.WriteString(components.ProgressBar(coverage, inner-6))
	b.WriteString("\n")
	if coverage >= 1 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true).
			Render("Goal reached!"))
	} else {
		b.WriteString(labelStyle.Render(cli.FormatPrice(pipeline.Remaining(sum, a.goal)) + " still to go"))
	}
	goal := components.ContentCard("Saving Goal", b.String(), cw)

	return lipgloss.JoinVertical(lipgloss.Left, headCard, metrics, breakdown, goal)
}

package tui

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/tui/components"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderIntroPage(cw int) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	inner := components.CardInnerWidth(cw)

	var b strings.Builder
	b.WriteString(nameStyle.Render(catalog.Shopper.Name))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Width(inner).Render(catalog.Shopper.Message))
	persona := components.ContentCard("", b.String(), cw)

	b.Reset()
	b.WriteString(textStyle.Render(a.goal.Name))
	b.WriteString(mutedStyle.Render("  costs  "))
	b.WriteString(textStyle.Render(cli.FormatPrice(a.goal.Cost)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press g to pick a different goal."))
	goal := components.ContentCard("Saving Goal", b.String(), cw)

	// Number keys jump straight to a page; the intro is page 1.
	b.Reset()
	for i, l := range a.lists {
		b.WriteString(accentStyle.Render(strconv.Itoa(i + 2)))
		b.WriteString(mutedStyle.Render("  "))
		b.WriteString(textStyle.Render(l.Title))
		b.WriteString(mutedStyle.Render("  " + cli.FormatPrice(l.OriginalTotal())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press → to start with the first list."))
	lists := components.ContentCard("Focus Lists", b.String(), cw)

	return lipgloss.JoinVertical(lipgloss.Left, persona, goal, lists)
}

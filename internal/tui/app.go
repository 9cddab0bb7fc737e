// Package tui provides the interactive Bubble Tea walkthrough for fixgrocery.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/config"
	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/pipeline"
	"github.com/theirongolddev/fixgrocery/internal/savings"
	"github.com/theirongolddev/fixgrocery/internal/tui/components"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ListChangedMsg is sent after a swap or reset changes a list.
type ListChangedMsg struct {
	Result model.ListResult
}

// pickerState is the replacement picker overlay on a list page.
type pickerState struct {
	open    bool
	slot    int
	options []model.Item
	cursor  int
}

// App is the root Bubble Tea model.
type App struct {
	session *pipeline.Session
	lists   []*savings.List
	cfg     config.Config
	goal    model.SavingGoal
	log     *zap.Logger

	// Change feed from the session subscription
	changes     chan tea.Msg
	unsubscribe func()
	notice      string

	// UI state
	width    int
	height   int
	page     int
	showHelp bool
	cursors  []int // slot cursor per list
	picker   pickerState

	// Setup and goal forms (huh)
	form      *huh.Form
	formVals  *setupValues
	formKind  formKind
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	minContentHeight = 5

	changeBuffer = 16
)

// NewApp creates the TUI model over an existing session. needSetup shows
// the first-run form before anything else.
func NewApp(session *pipeline.Session, cfg config.Config, needSetup bool, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}

	goal, ok := catalog.GoalByID(cfg.General.Goal)
	if !ok {
		goal, _ = catalog.GoalByID(catalog.DefaultGoalID)
	}

	lists := session.Lists()
	a := App{
		session:   session,
		lists:     lists,
		cfg:       cfg,
		goal:      goal,
		log:       log,
		changes:   make(chan tea.Msg, changeBuffer),
		cursors:   make([]int, len(lists)),
		needSetup: needSetup,
	}

	// Swap runs on the update loop, which is also the only reader.
	// A full buffer drops the notice rather than deadlocking.
	changes := a.changes
	a.unsubscribe = session.Subscribe(func(r model.ListResult) {
		select {
		case changes <- ListChangedMsg{Result: r}:
		default:
		}
	})

	a.page = a.startPage()

	if needSetup {
		a.formVals = &setupValues{goal: goal.ID, theme: theme.Active.Name}
		a.form = newSetupForm(a.formVals)
		a.formKind = formSetup
	}

	return a
}

// startPage honors start_list, then skip_intro.
func (a App) startPage() int {
	if id := a.cfg.General.StartList; id != "" {
		for i, l := range a.lists {
			if l.ID == id {
				return i + 1
			}
		}
	}
	if a.cfg.General.SkipIntro && len(a.lists) > 0 {
		return 1
	}
	return 0
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		waitForChange(a.changes),
	}
	if a.form != nil {
		cmds = append(cmds, a.form.Init())
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks until the session reports the next change.
func waitForChange(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// Page layout: 0 is the intro, one page per list, then the summary.
func (a App) pageCount() int { return len(a.lists) + 2 }

func (a App) summaryPage() int { return len(a.lists) + 1 }

func (a App) onListPage() bool { return a.page >= 1 && a.page <= len(a.lists) }

func (a App) currentListIdx() int { return a.page - 1 }

func (a App) pageTitles() []string {
	titles := make([]string, 0, a.pageCount())
	titles = append(titles, "Start")
	for _, l := range a.lists {
		titles = append(titles, l.Title)
	}
	return append(titles, "Summary")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case ListChangedMsg:
		if l, ok := a.session.List(msg.Result.ListID); ok {
			a.notice = l.Title + ": " + cli.DifferenceText(msg.Result.Difference)
		}
		return a, waitForChange(a.changes)

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a.quit()
		}

		// Forms intercept all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if a.picker.open {
			return a.updatePicker(key)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a.quit()
		case "left", "h":
			a.page = (a.page - 1 + a.pageCount()) % a.pageCount()
			return a, nil
		case "right", "l", "tab":
			a.page = (a.page + 1) % a.pageCount()
			return a, nil
		case "g":
			a.formVals = &setupValues{goal: a.goal.ID, theme: theme.Active.Name}
			a.form = newGoalForm(a.formVals)
			a.formKind = formGoal
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.form.Init()
		}

		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if p := int(key[0] - '1'); p < a.pageCount() {
				a.page = p
			}
			return a, nil
		}

		if a.onListPage() {
			return a.updateListPage(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	return a, tea.Quit
}

func (a App) updateListPage(key string) (tea.Model, tea.Cmd) {
	li := a.currentListIdx()
	l := a.lists[li]

	switch key {
	case "j", "down":
		if a.cursors[li] < l.Len()-1 {
			a.cursors[li]++
		}
	case "k", "up":
		if a.cursors[li] > 0 {
			a.cursors[li]--
		}
	case "enter":
		slot := l.Slot(a.cursors[li])
		opts := savings.ReplacementCandidates(slot)
		if len(opts) == 0 {
			a.notice = slot.Current().Name + " has no alternatives"
			return a, nil
		}
		a.picker = pickerState{open: true, slot: a.cursors[li], options: opts}
	case "r":
		if _, err := a.session.ResetList(l.ID); err != nil {
			a.log.Warn("reset failed", zap.String("list", l.ID), zap.Error(err))
		}
	}
	return a, nil
}

func (a App) updatePicker(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.picker.cursor < len(a.picker.options)-1 {
			a.picker.cursor++
		}
	case "k", "up":
		if a.picker.cursor > 0 {
			a.picker.cursor--
		}
	case "enter":
		a.swapSelected()
		a.picker = pickerState{}
	case "esc", "q":
		a.picker = pickerState{}
	}
	return a, nil
}

func (a *App) swapSelected() {
	if !a.onListPage() || a.picker.cursor >= len(a.picker.options) {
		return
	}
	l := a.lists[a.currentListIdx()]
	item := a.picker.options[a.picker.cursor]
	if _, err := a.session.Swap(l.ID, a.picker.slot, item); err != nil {
		a.notice = "Could not swap: " + err.Error()
	}
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.picker.open {
			return a.updatePicker("up")
		}
		if a.onListPage() {
			return a.updateListPage("up")
		}
	case tea.MouseButtonWheelDown:
		if a.picker.open {
			return a.updatePicker("down")
		}
		if a.onListPage() {
			return a.updateListPage("down")
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		// Page bar is the first line
		if msg.Y == 0 {
			if p := components.PageAtX(a.pageTitles(), a.width, msg.X); p >= 0 {
				a.page = p
				a.picker = pickerState{}
			}
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fixgrocery needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"← → h l", "Previous / Next page"},
			{"1-9", "Jump to page"},
			{"j k", "Move between items"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"Enter", "Pick a replacement / Swap"},
			{"Esc", "Close the picker"},
			{"r", "Reset the current list"},
			{"g", "Change saving goal"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	header := components.RenderPageBar(a.pageTitles(), a.page, w)

	// 2. Status bar
	sum := a.session.Summary()
	statusBar := components.RenderStatusBar(w, a.statusHints(),
		"Total "+cli.FormatSigned(sum.TotalDifference))

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Page content
	var content string
	switch {
	case a.page == 0:
		content = a.renderIntroPage(cw)
	case a.page == a.summaryPage():
		content = a.renderSummaryPage(cw)
	default:
		content = a.renderListPage(a.currentListIdx(), cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when w > cw
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch {
	case a.picker.open:
		return "[j/k]choose  [enter]swap  [esc]cancel"
	case a.onListPage():
		hints := "[←/→]page  [j/k]item  [enter]replace  [r]eset  [?]help  [q]uit"
		if a.notice != "" {
			hints += "  · " + a.notice
		}
		return hints
	default:
		return "[←/→]page  [g]oal  [?]help  [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

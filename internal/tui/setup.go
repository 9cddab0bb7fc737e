package tui

import (
	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/config"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// setupValues are bound to the huh form fields. App holds them by pointer
// so the binding survives App being copied on every Update.
type setupValues struct {
	goal  string
	theme string
}

type formKind int

const (
	formSetup formKind = iota // first run: goal + theme
	formGoal                  // goal only, opened with g
)

func goalOptions() []huh.Option[string] {
	goals := catalog.Goals()
	opts := make([]huh.Option[string], 0, len(goals))
	for _, g := range goals {
		opts = append(opts, huh.NewOption(g.Name+"  "+cli.FormatPrice(g.Cost), g.ID))
	}
	return opts
}

func goalSelect(vals *setupValues) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("What is " + catalog.Shopper.Name + " saving for?").
		Options(goalOptions()...).
		Value(&vals.goal)
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fixgrocery").
				Description(catalog.Shopper.Message+"\n\nSwap items on each list to help "+
					catalog.Shopper.Name+" reach a saving goal."),
			goalSelect(vals),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	).WithTheme(huh.ThemeDracula())
}

func newGoalForm(vals *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(goalSelect(vals)),
	).WithTheme(huh.ThemeDracula())
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.applyFormValues()
		if err := a.saveFormConfig(); err != nil {
			a.notice = "Could not save config: " + err.Error()
			a.log.Warn("saving config", zap.Error(err))
		}
		a.needSetup = false
		a.form, a.formVals = nil, nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.form, a.formVals = nil, nil
		return a, nil
	}

	return a, cmd
}

func (a *App) applyFormValues() {
	if a.formVals == nil {
		return
	}
	if g, ok := catalog.GoalByID(a.formVals.goal); ok {
		a.goal = g
	}
	if a.formKind == formSetup && a.formVals.theme != "" {
		theme.SetActive(a.formVals.theme)
	}
}

// saveFormConfig persists the form choices on top of the loaded config.
func (a *App) saveFormConfig() error {
	a.cfg.General.Goal = a.goal.ID
	if a.formKind == formSetup {
		a.cfg.Appearance.Theme = theme.Active.Name
	}
	return config.Save(a.cfg)
}

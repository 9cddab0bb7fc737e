package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/config"
	"github.com/theirongolddev/fixgrocery/internal/logging"
	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/pipeline"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagTheme   string
	flagGoal    string
	flagLogFile string
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fixgrocery",
	Short: "Swap items on shopping lists and watch the savings add up",
	Long: "Walk through preset focus lists, swap items for cheaper or pricier\n" +
		"alternatives and track savings per list and across all lists.",
	RunE:         runTUI,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (overrides config and FIXGROCERY_THEME)")
	rootCmd.PersistentFlags().StringVarP(&flagGoal, "goal", "g", "", "Saving goal ID (see `fixgrocery goals`)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a JSON debug log to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print tables only")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	cfg.Appearance.Theme = config.ThemeName(cfg)
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}

	if flagGoal != "" {
		if _, ok := catalog.GoalByID(flagGoal); !ok {
			return cfg, fmt.Errorf("unknown goal %q", flagGoal)
		}
		cfg.General.Goal = flagGoal
	}

	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}

	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}

// newLogger builds the logger described by cfg. Logging is off unless a
// log file is configured.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.File, cfg.Log.Level)
}

// newSession starts a session over the built-in catalog.
func newSession(log *zap.Logger) (*pipeline.Session, error) {
	return pipeline.NewSession(catalog.GetLists(), log)
}

// selectedGoal returns the configured goal, falling back to the default.
func selectedGoal(cfg config.Config) model.SavingGoal {
	g, ok := catalog.GoalByID(cfg.General.Goal)
	if !ok {
		g, _ = catalog.GoalByID(catalog.DefaultGoalID)
	}
	return g
}

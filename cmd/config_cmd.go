// Package cmd implements the fixgrocery CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	goal := selectedGoal(cfg)
	fmt.Println("  [General]")
	fmt.Printf("    Saving goal: %s (%s, %s)\n", goal.ID, goal.Name, cli.FormatPrice(goal.Cost))
	if cfg.General.StartList != "" {
		fmt.Printf("    Start list:  %s\n", cfg.General.StartList)
	}
	fmt.Printf("    Skip intro:  %v\n", cfg.General.SkipIntro)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `fixgrocery setup` to reconfigure.")
	return nil
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List saving goals",
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	current := selectedGoal(cfg)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("SAVING GOALS"))
		fmt.Println()
	}

	goals := catalog.Goals()
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		mark := ""
		if g.ID == current.ID {
			mark = "*"
		}
		rows = append(rows, []string{g.ID, g.Name, cli.FormatPrice(g.Cost), mark})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Goal", "Cost", "Selected"},
		Rows:    rows,
	}))

	if !flagQuiet {
		fmt.Println()
		fmt.Println("  Pick one with --goal <id> or `fixgrocery setup`.")
	}
	return nil
}

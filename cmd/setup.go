package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/config"
	"github.com/theirongolddev/fixgrocery/internal/tui/theme"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	cfg = promptSetup(bufio.NewReader(os.Stdin), os.Stdout, cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `fixgrocery setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// promptSetup asks for a saving goal and theme. Empty or invalid answers
// keep the current value.
func promptSetup(in *bufio.Reader, out io.Writer, cfg config.Config) config.Config {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to fixgrocery!")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", catalog.Shopper.Message)

	// 1. Saving goal
	fmt.Fprintln(out, "  1. Saving goal")
	goals := catalog.Goals()
	for i, g := range goals {
		mark := ""
		if g.ID == cfg.General.Goal {
			mark = " [current]"
		}
		fmt.Fprintf(out, "     (%d) %s %s%s\n", i+1, g.Name, cli.FormatPrice(g.Cost), mark)
	}
	if i, ok := readChoice(in, out, len(goals)); ok {
		cfg.General.Goal = goals[i].ID
	}
	fmt.Fprintln(out)

	// 2. Theme
	fmt.Fprintln(out, "  2. Color theme")
	names := theme.Names()
	for i, name := range names {
		mark := ""
		if name == cfg.Appearance.Theme {
			mark = " [current]"
		}
		fmt.Fprintf(out, "     (%d) %s%s\n", i+1, name, mark)
	}
	if i, ok := readChoice(in, out, len(names)); ok {
		cfg.Appearance.Theme = names[i]
	}

	return cfg
}

// readChoice reads a 1-based menu choice and returns it 0-based.
func readChoice(in *bufio.Reader, out io.Writer, n int) (int, bool) {
	fmt.Fprint(out, "     > ")
	line, _ := in.ReadString('\n')
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice - 1, true
}

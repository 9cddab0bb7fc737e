package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/pipeline"
	"github.com/theirongolddev/fixgrocery/internal/savings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errBadSwap = errors.New("swap must look like list:slot:item")

var flagSwaps []string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Apply swaps and print per-list and total savings",
	Example: "  fixgrocery summary --swap grocery:1:Water --swap \"grocery:Cake:Fruit\"\n" +
		"  fixgrocery summary --swap party:2:Potluck --goal medical",
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringArrayVarP(&flagSwaps, "swap", "s", nil,
		"Swap list:slot:item, slot is a 1-based index or the original item name (repeatable)")
	rootCmd.AddCommand(summaryCmd)
}

// swapSpec is one parsed --swap value.
type swapSpec struct {
	List string
	Slot string
	Item string
}

// appliedSwap records a swap for the report.
type appliedSwap struct {
	List string
	From model.Item
	To   model.Item
}

func parseSwap(s string) (swapSpec, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return swapSpec{}, fmt.Errorf("%q: %w", s, errBadSwap)
	}
	spec := swapSpec{
		List: strings.TrimSpace(parts[0]),
		Slot: strings.TrimSpace(parts[1]),
		Item: strings.TrimSpace(parts[2]),
	}
	if spec.List == "" || spec.Slot == "" || spec.Item == "" {
		return swapSpec{}, fmt.Errorf("%q: %w", s, errBadSwap)
	}
	return spec, nil
}

// resolveSlot accepts a 1-based slot number or the slot's original item name.
func resolveSlot(l *savings.List, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > l.Len() {
			return 0, fmt.Errorf("%s slot %d: %w", l.ID, n, savings.ErrSlotRange)
		}
		return n - 1, nil
	}
	for i := 0; i < l.Len(); i++ {
		if strings.EqualFold(l.Slot(i).Original().Name, ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s has no slot %q", l.ID, ref)
}

// applySwaps runs every spec against the session in order and stops at the
// first failure.
func applySwaps(s *pipeline.Session, specs []swapSpec) ([]appliedSwap, error) {
	applied := make([]appliedSwap, 0, len(specs))
	for _, spec := range specs {
		l, ok := s.List(spec.List)
		if !ok {
			return applied, fmt.Errorf("%q: %w", spec.List, pipeline.ErrUnknownList)
		}
		slot, err := resolveSlot(l, spec.Slot)
		if err != nil {
			return applied, err
		}
		item, ok := l.OptionByName(slot, spec.Item)
		if !ok {
			return applied, fmt.Errorf("%s slot %d has no option %q: %w",
				l.ID, slot+1, spec.Item, savings.ErrInvalidSwap)
		}

		from := l.Slot(slot).Current()
		if _, err := s.Swap(l.ID, slot, item); err != nil {
			return applied, err
		}
		applied = append(applied, appliedSwap{List: l.Title, From: from, To: item})
	}
	return applied, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	specs := make([]swapSpec, 0, len(flagSwaps))
	for _, raw := range flagSwaps {
		spec, err := parseSwap(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	session, err := newSession(log)
	if err != nil {
		return err
	}
	applied, err := applySwaps(session, specs)
	if err != nil {
		return err
	}
	log.Info("summary", zap.Int("swaps", len(applied)))

	sum := session.Summary()

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("FIX THE GROCERY  Savings Summary"))
		fmt.Println()
	}

	if len(applied) > 0 {
		rows := make([][]string, 0, len(applied))
		for _, a := range applied {
			rows = append(rows, []string{
				a.List,
				a.From.Name,
				a.To.Name,
				cli.FormatSigned(a.From.Price.Sub(a.To.Price)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Swaps",
			Headers: []string{"List", "From", "To", "Change"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Print(cli.RenderTable(summaryTable(session, sum)))

	if !flagQuiet {
		fmt.Println()
		fmt.Printf("  %s\n", cli.TotalSavingsText(sum.TotalDifference))

		goal := selectedGoal(cfg)
		coverage := pipeline.GoalCoverage(sum, goal)
		fmt.Printf("  %s %s  %s\n", goal.Name, cli.FormatPrice(goal.Cost), cli.RenderProgressBar(coverage, 30))
		if coverage < 1 {
			fmt.Printf("  %s still to go\n", cli.FormatPrice(pipeline.Remaining(sum, goal)))
		}
		fmt.Println()
	}

	return nil
}

func summaryTable(s *pipeline.Session, sum model.Summary) cli.Table {
	rows := make([][]string, 0, len(sum.Lists)+2)
	for _, r := range sum.Lists {
		l, _ := s.List(r.ListID)
		rows = append(rows, []string{
			l.Title,
			cli.FormatPrice(l.OriginalTotal()),
			cli.FormatPrice(l.CurrentTotal()),
			cli.FormatSigned(r.Difference),
			cli.FormatPrice(r.MaxSavings),
			cli.FormatPercent(r.Progress),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"All lists",
		"",
		"",
		cli.FormatSigned(sum.TotalDifference),
		cli.FormatPrice(sum.TotalMaxSavings),
		cli.FormatPercent(sum.OverallProgress),
	})

	return cli.Table{
		Headers: []string{"List", "Initial", "Updated", "Difference", "Max Savings", "Progress"},
		Rows:    rows,
	}
}

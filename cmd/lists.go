package cmd

import (
	"fmt"

	"github.com/theirongolddev/fixgrocery/internal/catalog"
	"github.com/theirongolddev/fixgrocery/internal/cli"
	"github.com/theirongolddev/fixgrocery/internal/model"
	"github.com/theirongolddev/fixgrocery/internal/savings"

	"github.com/spf13/cobra"
)

var flagListID string

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show every focus list with its items and alternatives",
	RunE:  runLists,
}

func init() {
	listsCmd.Flags().StringVarP(&flagListID, "list", "l", "", "Only show this list ID")
	rootCmd.AddCommand(listsCmd)
}

func runLists(_ *cobra.Command, _ []string) error {
	defs := catalog.GetLists()
	if flagListID != "" {
		var picked []model.ListDef
		for _, d := range defs {
			if d.ID == flagListID {
				picked = append(picked, d)
			}
		}
		if len(picked) == 0 {
			return fmt.Errorf("unknown list %q (have %v)", flagListID, catalog.ListIDs())
		}
		defs = picked
	}

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("FOCUS LISTS"))
		fmt.Println()
	}

	for _, d := range defs {
		fmt.Print(cli.RenderTable(listTable(d)))
		if !flagQuiet {
			fmt.Printf("  Starts at %s, up to %s to save\n",
				cli.FormatPrice(savings.TotalPrice(d.Originals)),
				cli.FormatPrice(savings.MaxSavings(d.Originals, d.Candidates)))
		}
		fmt.Println()
	}
	return nil
}

// listTable renders each slot's original followed by its alternatives and
// what each would save against the original.
func listTable(d model.ListDef) cli.Table {
	var rows [][]string
	for i, orig := range d.Originals {
		if i > 0 {
			rows = append(rows, []string{"---"})
		}
		rows = append(rows, []string{orig.Name, cli.FormatPrice(orig.Price), ""})

		var alts []model.Item
		if i < len(d.Candidates) {
			alts = d.Candidates[i]
		}
		if len(alts) == 0 {
			rows = append(rows, []string{"  (no alternatives)", "", ""})
		}
		for _, c := range alts {
			rows = append(rows, []string{
				"  ↳ " + c.Name,
				cli.FormatPrice(c.Price),
				cli.FormatSigned(orig.Price.Sub(c.Price)),
			})
		}
	}

	return cli.Table{
		Title:   fmt.Sprintf("%s (%s)", d.Title, d.ID),
		Headers: []string{"Item", "Price", "Saves"},
		Rows:    rows,
	}
}

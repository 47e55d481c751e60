package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newOverrideCommand() *cobra.Command {
	var dir, year, category string
	var personal bool

	cmd := &cobra.Command{
		Use:   "override <row>",
		Short: "Override one transaction's category (row numbers as printed by classify)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row number %q", args[0])
			}

			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runOverride(e, year, row, category, personal)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().StringVar(&category, "category", "", "target category (required)")
	cmd.Flags().BoolVar(&personal, "personal", false, "flag the transaction personal")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runOverride(e *env, year string, row int, category string, personal bool) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}

	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}
	if row < 1 || row > len(state.Transactions) {
		return fmt.Errorf("row %d out of range 1-%d", row, len(state.Transactions))
	}

	ct, err := e.classifier().Reclassify(state.Transactions[row-1], category, personal)
	if err != nil {
		return err
	}
	state.Transactions[row-1] = ct

	if err := e.store.Save(fy.Label, state); err != nil {
		return err
	}

	fmt.Printf("Row %d (%s) -> %s (ITC %s)\n",
		row, trim(ct.Description, 40), ct.Category, ct.ITCAmount.StringFixed(2))

	details := fmt.Sprintf("row %d -> %s", row, category)
	return e.record("override", details, fy.Label)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/revenue"
)

func newRevenueCommand() *cobra.Command {
	var dir, year string
	var audit bool

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Show deposit revenue by channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runRevenue(e, year, audit)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().BoolVar(&audit, "audit", false, "list the matched deposit rows")

	return cmd
}

func runRevenue(e *env, year string, audit bool) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}

	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}

	res := revenue.Extract(state.Bank())

	fmt.Printf("Revenue - FY %s\n", fy.Label)
	for _, b := range res.Buckets {
		fmt.Printf("  %-12s $%s (%d deposits)\n", b.Channel, b.Total.StringFixed(2), b.Count)
		if audit {
			for _, row := range b.Rows {
				fmt.Printf("    %s  %-50s $%s\n",
					row.Date.Format("2006-01-02"), trim(row.Description, 50), row.Credit.StringFixed(2))
			}
		}
	}
	fmt.Printf("  %-12s $%s\n", "TOTAL", res.Total().StringFixed(2))

	if len(res.Unmatched) > 0 {
		fmt.Printf("  %d credit rows matched no channel (review)\n", len(res.Unmatched))
	}
	return nil
}

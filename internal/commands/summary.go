package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/report"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/revenue"
)

func newSummaryCommand() *cobra.Command {
	var dir, year string
	var income bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Render the year-end filing summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runSummary(e, year, income)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().BoolVar(&income, "income", false, "also render the income statement")

	return cmd
}

func runSummary(e *env, year string, income bool) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}
	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}
	tr, err := e.tracker(state.OpeningBalances)
	if err != nil {
		return err
	}

	rev := revenue.Extract(state.Bank())
	sum := gst.Compute(state.Transactions, state.ManualRevenue, state.SideChannels(), yearPeriod(fy), gst.DefaultRate)
	accounts, err := tr.Balances(state.Transactions, state.LoanAdjustments, fy.End)
	if err != nil {
		return err
	}

	fmt.Print(report.FilingSummary(e.cfg.Business.Name, fy.Label, rev, sum, accounts))
	if income {
		fmt.Println()
		fmt.Print(report.IncomeStatement(e.cfg.Business.Name, "FY "+fy.Label, rev, state.Transactions))
	}
	return nil
}

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newShareholdersCommand() *cobra.Command {
	var dir, year string
	var showMovements bool

	cmd := &cobra.Command{
		Use:   "shareholders",
		Short: "Show shareholder loan balances for a fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runShareholders(e, year, showMovements)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().BoolVar(&showMovements, "movements", false, "list every loan movement")

	return cmd
}

func runShareholders(e *env, year string, showMovements bool) error {
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

	accounts, err := tr.Balances(state.Transactions, state.LoanAdjustments, fy.End)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Shareholder loans - FY %s\n", fy.Label)
	for _, name := range names {
		acct := accounts[name]
		fmt.Printf("\n%s (%s%%)\n", acct.Shareholder, acct.Percent.StringFixed(0))
		fmt.Printf("  Opening balance    $%s\n", acct.OpeningBalance.StringFixed(2))
		fmt.Printf("  Withdrawals        $%s\n", acct.Withdrawals.StringFixed(2))
		fmt.Printf("  Personal expenses  $%s\n", acct.PersonalExpenses.StringFixed(2))
		fmt.Printf("  Closing balance    $%s\n", acct.ClosingBalance.StringFixed(2))
		if acct.TaxableBenefitRisk {
			fmt.Printf("  TAXABLE BENEFIT RISK: $%s owed to the corporation, repay by %s\n",
				acct.AmountOwing.StringFixed(2), acct.Deadline.Format("2006-01-02"))
		}
		if acct.NeedsReview {
			fmt.Println("  NEEDS REVIEW: includes amounts split by ownership percentage")
		}

		if showMovements {
			for _, m := range acct.Movements {
				flag := ""
				if m.Allocated {
					flag = " [split]"
				}
				fmt.Printf("    %s  %-16s $%10s  %s%s\n",
					m.Date.Format("2006-01-02"), m.Kind,
					m.Amount.StringFixed(2), trim(m.Description, 40), flag)
			}
		}
	}

	if len(state.Dividends) > 0 {
		fmt.Printf("\nDividends declared (T5)\n")
		for _, slip := range tr.T5Slips(state.Dividends) {
			fmt.Printf("\n%s (%s%%)\n", slip.Shareholder, slip.Percent.StringFixed(0))
			if slip.ActualEligible.IsPositive() {
				fmt.Printf("  Eligible dividends      $%s (taxable $%s)\n",
					slip.ActualEligible.StringFixed(2), slip.TaxableEligible.StringFixed(2))
			}
			if slip.ActualOther.IsPositive() {
				fmt.Printf("  Non-eligible dividends  $%s (taxable $%s)\n",
					slip.ActualOther.StringFixed(2), slip.TaxableOther.StringFixed(2))
			}
			fmt.Printf("  Taxable total           $%s\n", slip.TaxableTotal().StringFixed(2))
		}
	}
	return nil
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

func newGSTCommand() *cobra.Command {
	var dir, year, start, end string
	var quarter int
	var schedule bool

	cmd := &cobra.Command{
		Use:   "gst",
		Short: "Compute the GST return for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runGST(e, year, quarter, start, end, schedule)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "fiscal quarter 1-4 (default: whole year)")
	cmd.Flags().StringVar(&start, "start", "", "period start YYYY-MM-DD (overrides --quarter)")
	cmd.Flags().StringVar(&end, "end", "", "period end YYYY-MM-DD")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "list the ITC working paper line by line")

	return cmd
}

func runGST(e *env, year string, quarter int, start, end string, schedule bool) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}

	period := yearPeriod(fy)
	label := "FY " + fy.Label
	switch {
	case start != "" || end != "":
		period, err = parsePeriod(start, end)
		if err != nil {
			return err
		}
		label = "custom period"
	case quarter != 0:
		qs, qe, err := fy.Quarter(quarter)
		if err != nil {
			return err
		}
		period = gst.Period{Start: qs, End: qe}
		label = fmt.Sprintf("FY %s Q%d", fy.Label, quarter)
	}

	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}

	summary := gst.Compute(state.Transactions, state.ManualRevenue, state.SideChannels(), period, gst.DefaultRate)

	fmt.Printf("GST Return - %s\n", label)
	fmt.Printf("  Total revenue (GST-inclusive)  $%s\n", summary.TotalRevenue.StringFixed(2))
	fmt.Printf("  GST collected                  $%s\n", summary.GSTCollected.StringFixed(2))
	fmt.Printf("  ITC - bank                     $%s\n", summary.ITCBank.StringFixed(2))
	fmt.Printf("  ITC - cash                     $%s\n", summary.ITCCash.StringFixed(2))
	fmt.Printf("  ITC - personal account         $%s\n", summary.ITCPersonal.StringFixed(2))
	fmt.Printf("  ITC - phone                    $%s\n", summary.ITCPhone.StringFixed(2))
	fmt.Printf("  ITC - home office              $%s\n", summary.ITCHomeOffice.StringFixed(2))
	fmt.Printf("  ITC - vehicle                  $%s\n", summary.ITCVehicle.StringFixed(2))
	fmt.Printf("  Total ITC                      $%s\n", summary.TotalITC.StringFixed(2))

	switch summary.Position {
	case gst.PositionOwing:
		fmt.Printf("  NET GST OWING                  $%s\n", summary.NetGST.StringFixed(2))
	case gst.PositionRefund:
		fmt.Printf("  NET GST REFUND                 $%s\n", summary.NetGST.Neg().StringFixed(2))
	default:
		fmt.Println("  NET GST                        balanced")
	}

	if schedule {
		var inPeriod []model.ClassifiedTransaction
		for _, ct := range state.Transactions {
			if period.Contains(ct.Date) {
				inPeriod = append(inPeriod, ct)
			}
		}
		lines := gst.Schedule(inPeriod)
		fmt.Printf("\nITC schedule (%d claim(s)):\n", len(lines))
		total := decimal.Zero
		for _, l := range lines {
			fmt.Printf("  %s  %-40s gross $%10s  itc $%8s  net $%10s\n",
				l.Transaction.Date.Format("2006-01-02"), trim(l.Transaction.Description, 40),
				l.Gross.StringFixed(2), l.ITC.StringFixed(2), l.Net.StringFixed(2))
			total = total.Add(l.ITC)
		}
		fmt.Printf("  Total ITC per schedule         $%s\n", total.StringFixed(2))
	}

	if issues := gst.ValidateClaims(state.Transactions, gst.DefaultRate); len(issues) > 0 {
		fmt.Printf("\n%d ITC claim issue(s):\n", len(issues))
		for _, is := range issues {
			fmt.Printf("  %s  %-40s %s ($%s)\n",
				is.Transaction.Date.Format("2006-01-02"),
				trim(is.Transaction.Description, 40), is.Issue, is.Amount.StringFixed(2))
		}
	}
	return nil
}

func parsePeriod(start, end string) (gst.Period, error) {
	var p gst.Period
	var err error
	if start != "" {
		p.Start, err = time.Parse("2006-01-02", start)
		if err != nil {
			return p, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if end != "" {
		p.End, err = time.Parse("2006-01-02", end)
		if err != nil {
			return p, fmt.Errorf("invalid --end: %w", err)
		}
	}
	return p, nil
}

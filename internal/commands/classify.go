package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	var dir, year string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Re-run classification over a fiscal year with the current rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			return runClassify(e, year)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")

	return cmd
}

func runClassify(e *env, year string) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}

	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}
	if len(state.Transactions) == 0 {
		fmt.Printf("No transactions stored for FY %s.\n", fy.Label)
		return nil
	}

	classified, malformed := e.classifier().ClassifyAll(state.Bank())
	for _, m := range malformed {
		e.log.Warn().Str("record", m.Error()).Msg("malformed row skipped")
	}

	state.Transactions = classified
	if err := e.store.Save(fy.Label, state); err != nil {
		return err
	}

	review := 0
	for i, ct := range classified {
		if !ct.NeedsReview {
			continue
		}
		review++
		fmt.Printf("  #%-4d %s  %-40s -> %s\n",
			i+1, ct.Date.Format("2006-01-02"), trim(ct.Description, 40), ct.Category)
	}
	fmt.Printf("Classified %d transactions (%d need review, %d malformed)\n",
		len(classified), review, len(malformed))

	return e.record("classify", fmt.Sprintf("%d rows", len(classified)), fy.Label)
}

// trim shortens a description to n characters for display. Slices runes,
// not bytes, so accented descriptions stay intact.
func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

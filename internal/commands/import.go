package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/importer"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

func newImportCommand() *cobra.Command {
	var dir, year, format string
	var scan bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import and classify a bank statement CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			if scan {
				return runImportScan(e, year, format)
			}
			if len(args) != 1 {
				return fmt.Errorf("provide a statement file or --scan")
			}
			return runImportFile(e, year, format, args[0], false)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&year, "year", "", "fiscal year label, e.g. 2024-2025")
	cmd.Flags().StringVar(&format, "format", "cibc", "statement format")
	cmd.Flags().BoolVar(&scan, "scan", false, "import every CSV waiting in import/")

	return cmd
}

func runImportScan(e *env, year, format string) error {
	files, err := importer.Scan(e.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}
	for _, f := range files {
		if err := runImportFile(e, year, format, f.Path, true); err != nil {
			return fmt.Errorf("importing %s: %w", f.Name, err)
		}
		if err := importer.MarkProcessed(e.dir, f.Name); err != nil {
			return err
		}
	}
	return nil
}

func runImportFile(e *env, year, format, path string, scanned bool) error {
	fy, err := e.fiscalYear(year)
	if err != nil {
		return err
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}

	var inYear []model.Transaction
	for _, t := range txns {
		if fy.Contains(t.Date) {
			inYear = append(inYear, t)
		}
	}
	if skipped := len(txns) - len(inYear); skipped > 0 {
		e.log.Warn().Int("rows", skipped).Str("year", fy.Label).Msg("rows outside fiscal year skipped")
	}

	classified, malformed := e.classifier().ClassifyAll(inYear)
	for _, m := range malformed {
		e.log.Warn().Str("record", m.Error()).Msg("malformed row skipped")
	}

	state, err := e.store.Load(fy.Label)
	if err != nil {
		return err
	}
	state.Transactions = append(state.Transactions, classified...)
	if err := e.store.Save(fy.Label, state); err != nil {
		return err
	}

	review := 0
	for _, ct := range classified {
		if ct.NeedsReview {
			review++
		}
	}

	fmt.Printf("Imported %d transactions into FY %s (%d need review, %d malformed)\n",
		len(classified), fy.Label, review, len(malformed))

	details := fmt.Sprintf("%d rows from %s", len(classified), path)
	if scanned {
		details += " (scan)"
	}
	return e.record("import", details, fy.Label)
}

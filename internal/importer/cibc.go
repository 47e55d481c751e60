package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

// CIBCParser parses CIBC business-account CSV exports. The format has no
// header row and carries debit and credit as separate columns:
// date, description, debit, credit[, balance].
type CIBCParser struct{}

const (
	cibcColDate   = 0
	cibcColDesc   = 1
	cibcColDebit  = 2
	cibcColCredit = 3
)

// cibcDateFormats are the date layouts seen across CIBC exports.
var cibcDateFormats = []string{"2006-01-02", "01/02/2006"}

// Format returns the parser name.
func (p *CIBCParser) Format() string { return "cibc" }

// Parse reads a CIBC CSV and returns Transactions.
func (p *CIBCParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // trailing balance column is optional

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CIBC CSV: %w", err)
	}

	var txns []model.Transaction
	for i, rec := range records {
		if isBlankRow(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected at least 3 fields, got %d", i+1, len(rec))
		}
		txn, err := parseCIBCRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseCIBCRow(rec []string) (model.Transaction, error) {
	raw := strings.TrimSpace(rec[cibcColDate])
	var date time.Time
	var err error
	for _, layout := range cibcDateFormats {
		date, err = time.Parse(layout, raw)
		if err == nil {
			break
		}
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}

	debit, err := parseAmount(rec[cibcColDebit])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing debit %q: %w", rec[cibcColDebit], err)
	}

	credit := decimal.Zero
	if len(rec) > cibcColCredit {
		credit, err = parseAmount(rec[cibcColCredit])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing credit %q: %w", rec[cibcColCredit], err)
		}
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[cibcColDesc]),
		Debit:       debit,
		Credit:      credit,
	}, nil
}

// parseAmount reads a statement amount column. Empty means zero, and the
// occasional negative export value is normalized to its magnitude since
// debit and credit already carry the sign by column.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Abs(), nil
}

func isBlankRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

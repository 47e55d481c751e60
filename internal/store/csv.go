package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

const dateFormat = "2006-01-02"

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "date,description,debit,credit,category,itc_amount,personal,review,notes"

const (
	txnNumFields = 9
	colDate      = 0
	colDesc      = 1
	colDebit     = 2
	colCredit    = 3
	colCategory  = 4
	colITC       = 5
	colPersonal  = 6
	colReview    = 7
	colNotes     = 8
)

// ReadTransactions reads all classified rows from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.ClassifiedTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.ClassifiedTransaction
	for i, rec := range records[1:] {
		ct, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, ct)
	}
	return txns, nil
}

// WriteTransactions writes classified rows (including header).
func WriteTransactions(w io.Writer, txns []model.ClassifiedTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, ct := range txns {
		if err := cw.Write(MarshalTransaction(ct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a classified row to a CSV record.
func MarshalTransaction(ct model.ClassifiedTransaction) []string {
	row := make([]string, txnNumFields)
	row[colDate] = ct.Date.Format(dateFormat)
	row[colDesc] = ct.Description

	if !ct.Debit.IsZero() {
		row[colDebit] = ct.Debit.StringFixed(2)
	}
	if !ct.Credit.IsZero() {
		row[colCredit] = ct.Credit.StringFixed(2)
	}

	row[colCategory] = ct.Category
	if !ct.ITCAmount.IsZero() {
		row[colITC] = ct.ITCAmount.StringFixed(2)
	}
	row[colPersonal] = strconv.FormatBool(ct.IsPersonal)
	row[colReview] = strconv.FormatBool(ct.NeedsReview)
	row[colNotes] = ct.Notes
	return row
}

// UnmarshalTransaction converts a CSV record to a classified row.
func UnmarshalTransaction(rec []string) (model.ClassifiedTransaction, error) {
	if len(rec) != txnNumFields {
		return model.ClassifiedTransaction{}, fmt.Errorf("expected %d fields, got %d", txnNumFields, len(rec))
	}

	date, err := time.Parse(dateFormat, rec[colDate])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}

	debit, err := parseOptionalDecimal(rec[colDebit])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing debit %q: %w", rec[colDebit], err)
	}
	credit, err := parseOptionalDecimal(rec[colCredit])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing credit %q: %w", rec[colCredit], err)
	}
	itc, err := parseOptionalDecimal(rec[colITC])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing itc_amount %q: %w", rec[colITC], err)
	}

	personal, err := strconv.ParseBool(rec[colPersonal])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing personal %q: %w", rec[colPersonal], err)
	}
	review, err := strconv.ParseBool(rec[colReview])
	if err != nil {
		return model.ClassifiedTransaction{}, fmt.Errorf("parsing review %q: %w", rec[colReview], err)
	}

	return model.ClassifiedTransaction{
		Transaction: model.Transaction{
			Date:        date,
			Description: rec[colDesc],
			Debit:       debit,
			Credit:      credit,
		},
		Classification: model.Classification{
			Category:    rec[colCategory],
			ITCAmount:   itc,
			IsPersonal:  personal,
			NeedsReview: review,
			Notes:       rec[colNotes],
		},
	}, nil
}

// CashHeader is the CSV header for cash-expenses.csv.
const CashHeader = "date,description,category,amount,meals,receipt"

const (
	cashNumFields  = 6
	cashColDate    = 0
	cashColDesc    = 1
	cashColCat     = 2
	cashColAmount  = 3
	cashColMeals   = 4
	cashColReceipt = 5
)

// ReadExpenses reads all entries from a cash-expenses.csv reader.
func ReadExpenses(r io.Reader) ([]model.ExpenseEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = cashNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.ExpenseEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteExpenses writes expense entries (including header).
func WriteExpenses(w io.Writer, entries []model.ExpenseEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CashHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalExpense converts an expense entry to a CSV record.
func MarshalExpense(e model.ExpenseEntry) []string {
	row := make([]string, cashNumFields)
	row[cashColDate] = e.Date.Format(dateFormat)
	row[cashColDesc] = e.Description
	row[cashColCat] = e.Category
	row[cashColAmount] = e.Amount.StringFixed(2)
	row[cashColMeals] = strconv.FormatBool(e.Meals)
	row[cashColReceipt] = strconv.FormatBool(e.HasReceipt)
	return row
}

// UnmarshalExpense converts a CSV record to an expense entry.
func UnmarshalExpense(rec []string) (model.ExpenseEntry, error) {
	if len(rec) != cashNumFields {
		return model.ExpenseEntry{}, fmt.Errorf("expected %d fields, got %d", cashNumFields, len(rec))
	}

	date, err := time.Parse(dateFormat, rec[cashColDate])
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("parsing date %q: %w", rec[cashColDate], err)
	}
	amount, err := decimal.NewFromString(rec[cashColAmount])
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("parsing amount %q: %w", rec[cashColAmount], err)
	}
	meals, err := strconv.ParseBool(rec[cashColMeals])
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("parsing meals %q: %w", rec[cashColMeals], err)
	}
	receipt, err := strconv.ParseBool(rec[cashColReceipt])
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("parsing receipt %q: %w", rec[cashColReceipt], err)
	}

	return model.ExpenseEntry{
		Date:        date,
		Description: rec[cashColDesc],
		Category:    rec[cashColCat],
		Amount:      amount,
		Meals:       meals,
		HasReceipt:  receipt,
	}, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

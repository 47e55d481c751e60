package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a parsed bank statement row. Debit and credit are
// separate non-negative columns, not a signed amount; a well-formed row has
// exactly one of them nonzero.
type Transaction struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// IsDebit reports whether the row is treated as a debit for classification.
// A row with both sides nonzero counts as a debit.
func (t Transaction) IsDebit() bool {
	return !t.Debit.IsZero()
}

// Classification is attached to a Transaction after rule evaluation.
type Classification struct {
	Category    string
	ITCAmount   decimal.Decimal
	IsPersonal  bool
	NeedsReview bool
	Notes       string
}

// ClassifiedTransaction pairs a bank row with its classification decision.
type ClassifiedTransaction struct {
	Transaction
	Classification
}

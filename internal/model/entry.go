package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry is a manually recorded expense that never appears on the bank
// statement: cash purchases and business purchases made from a personal
// account. Meals marks entries subject to the 50% input-tax-credit limit.
type ExpenseEntry struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Meals       bool
	HasReceipt  bool
}

// ManualRevenueEntry is revenue recorded outside the bank statement, e.g. an
// invoice paid by cheque that has not cleared yet. GSTIncluded reports
// whether Amount already contains GST; exclusive amounts are grossed up
// before aggregation.
type ManualRevenueEntry struct {
	Client      string
	Date        time.Time
	Amount      decimal.Decimal
	GSTIncluded bool
}

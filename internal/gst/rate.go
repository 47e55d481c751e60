// Package gst holds the single GST formula and the period aggregator that
// turns classified transactions and side-channel expenses into a filing
// summary. Every aggregation path in the module goes through Portion so the
// inclusive-amount convention cannot drift between call sites.
package gst

import "github.com/shopspring/decimal"

// DefaultRate is the GST rate for the reference jurisdiction (5%).
var DefaultRate = decimal.NewFromFloat(0.05)

// Portion extracts the GST embedded in a GST-inclusive amount:
// amount * rate / (1 + rate). The result is not rounded; callers round to
// 2 decimal places at the point each line item is produced.
func Portion(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(1).Add(rate))
}

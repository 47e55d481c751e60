package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/revenue"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/shareholder"
)

func sampleData() (revenue.Result, []model.ClassifiedTransaction) {
	day := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	txns := []model.ClassifiedTransaction{
		{
			Transaction: model.Transaction{Date: day, Description: "WIRE TSF ACME", Credit: decimal.NewFromInt(10000)},
			Classification: model.Classification{Category: rules.CategoryRevenue},
		},
		{
			Transaction: model.Transaction{Date: day, Description: "SHELL GAS BAR", Debit: decimal.NewFromFloat(105.00)},
			Classification: model.Classification{Category: rules.CategoryFuel, ITCAmount: decimal.NewFromFloat(5.00)},
		},
		{
			Transaction: model.Transaction{Date: day, Description: "SAFEWAY", Debit: decimal.NewFromFloat(84.50)},
			Classification: model.Classification{Category: rules.CategoryPersonalExpense, IsPersonal: true},
		},
		{
			Transaction: model.Transaction{Date: day, Description: "E-TRANSFER OUT", Debit: decimal.NewFromInt(2000)},
			Classification: model.Classification{Category: rules.CategoryDistribution},
		},
	}

	bank := make([]model.Transaction, len(txns))
	for i, ct := range txns {
		bank[i] = ct.Transaction
	}
	return revenue.Extract(bank), txns
}

func TestIncomeStatement(t *testing.T) {
	rev, txns := sampleData()

	out := IncomeStatement("Cape Oilfield Ltd", "FY 2024-2025", rev, txns)

	assert.Contains(t, out, "INCOME STATEMENT")
	assert.Contains(t, out, "Cape Oilfield Ltd")
	assert.Contains(t, out, "TOTAL REVENUE")
	assert.Contains(t, out, "$10000.00")
	assert.Contains(t, out, rules.CategoryFuel)
	assert.Contains(t, out, "$105.00")
	// Personal rows and distributions stay off the expense side.
	assert.NotContains(t, out, rules.CategoryPersonalExpense)
	assert.NotContains(t, out, rules.CategoryDistribution)
	assert.Contains(t, out, "NET INCOME $9895.00")
}

func TestFilingSummary(t *testing.T) {
	rev, txns := sampleData()
	summary := gst.Compute(txns, nil, gst.SideChannels{}, gst.Period{}, gst.DefaultRate)

	deadline := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	accounts := map[string]*shareholder.LoanAccount{
		"Darrell": {
			Shareholder:        "Darrell",
			Percent:            decimal.NewFromInt(100),
			Withdrawals:        decimal.NewFromInt(2000),
			ClosingBalance:     decimal.NewFromInt(-2000),
			TaxableBenefitRisk: true,
			AmountOwing:        decimal.NewFromInt(2000),
			Deadline:           deadline,
		},
	}

	out := FilingSummary("Cape Oilfield Ltd", "2024-2025", rev, summary, accounts)

	assert.Contains(t, out, "FILING SUMMARY")
	assert.Contains(t, out, "FY 2024-2025")
	assert.Contains(t, out, "GST collected")
	assert.Contains(t, out, "$476.19")
	assert.Contains(t, out, "NET GST OWING")
	assert.Contains(t, out, "TAXABLE BENEFIT RISK")
	assert.Contains(t, out, "2026-11-30")
}

func TestFilingSummary_RefundLabel(t *testing.T) {
	summary := gst.Summary{
		NetGST:   decimal.NewFromFloat(-120.50),
		Position: gst.PositionRefund,
	}

	out := FilingSummary("Cape Oilfield Ltd", "2024-2025", revenue.Extract(nil), summary, nil)
	assert.Contains(t, out, "NET GST REFUND: $120.50")
}

func TestIsExpenseCategory(t *testing.T) {
	assert.True(t, isExpenseCategory(rules.CategoryFuel))
	assert.True(t, isExpenseCategory(rules.CategoryMeals))
	require.False(t, isExpenseCategory(rules.CategoryRevenue))
	assert.False(t, isExpenseCategory(rules.CategoryGSTRemittance))
	assert.False(t, isExpenseCategory(rules.CategoryUncategorized))
}

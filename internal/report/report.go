// Package report renders plain-text filing reports: an income statement
// and the year-end summary an accountant works from.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/revenue"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/shareholder"
)

const rule = "============================================================"

// IncomeStatement renders revenue against per-category business expenses.
// Personal-flagged rows are excluded from expenses; category totals are
// sums of the underlying debit amounts.
func IncomeStatement(businessName, periodLabel string, rev revenue.Result, classified []model.ClassifiedTransaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nINCOME STATEMENT\n%s\nPeriod: %s\n%s\n\n", rule, businessName, periodLabel, rule)

	totalRevenue := rev.Total()
	fmt.Fprintf(&b, "REVENUE\n")
	for _, bucket := range rev.Buckets {
		if bucket.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-34s %s\n", bucket.Channel, money(bucket.Total))
	}
	fmt.Fprintf(&b, "  %-34s %s\n\n", "TOTAL REVENUE", money(totalRevenue))

	byCategory := make(map[string]decimal.Decimal)
	for _, ct := range classified {
		if ct.IsPersonal || !ct.Debit.IsPositive() {
			continue
		}
		if !isExpenseCategory(ct.Category) {
			continue
		}
		byCategory[ct.Category] = byCategory[ct.Category].Add(ct.Debit)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	totalExpenses := decimal.Zero
	fmt.Fprintf(&b, "EXPENSES\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-34s %s\n", name, money(byCategory[name]))
		totalExpenses = totalExpenses.Add(byCategory[name])
	}
	fmt.Fprintf(&b, "  %-34s %s\n\n", "TOTAL EXPENSES", money(totalExpenses))

	fmt.Fprintf(&b, "NET INCOME %s\n", money(totalRevenue.Sub(totalExpenses)))
	return b.String()
}

// FilingSummary renders the year-end figures: revenue by channel, the GST
// return with its owing/refund label, and shareholder loan positions with
// taxable-benefit warnings.
func FilingSummary(businessName, fiscalLabel string, rev revenue.Result, summary gst.Summary, accounts map[string]*shareholder.LoanAccount) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s - FY %s\nFILING SUMMARY\n%s\n\n", rule, businessName, fiscalLabel, rule)

	fmt.Fprintf(&b, "REVENUE\n")
	for _, bucket := range rev.Buckets {
		fmt.Fprintf(&b, "  %-24s %s (%d deposits)\n", bucket.Channel, money(bucket.Total), bucket.Count)
	}
	fmt.Fprintf(&b, "  %-24s %s\n\n", "TOTAL", money(rev.Total()))

	fmt.Fprintf(&b, "GST RETURN\n")
	fmt.Fprintf(&b, "  %-24s %s\n", "GST collected", money(summary.GSTCollected))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - bank", money(summary.ITCBank))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - cash", money(summary.ITCCash))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - personal account", money(summary.ITCPersonal))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - phone", money(summary.ITCPhone))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - home office", money(summary.ITCHomeOffice))
	fmt.Fprintf(&b, "  %-24s %s\n", "ITC - vehicle", money(summary.ITCVehicle))
	fmt.Fprintf(&b, "  %-24s %s\n", "TOTAL ITC", money(summary.TotalITC))
	switch summary.Position {
	case gst.PositionOwing:
		fmt.Fprintf(&b, "  NET GST OWING:  %s\n\n", money(summary.NetGST))
	case gst.PositionRefund:
		fmt.Fprintf(&b, "  NET GST REFUND: %s\n\n", money(summary.NetGST.Neg()))
	default:
		fmt.Fprintf(&b, "  NET GST: balanced\n\n")
	}

	fmt.Fprintf(&b, "SHAREHOLDER LOANS\n")
	names := make([]string, 0, len(accounts))
	for name := range accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		acct := accounts[name]
		fmt.Fprintf(&b, "  %s (%s%%): closing balance %s\n", acct.Shareholder, acct.Percent, money(acct.ClosingBalance))
		if acct.TaxableBenefitRisk {
			fmt.Fprintf(&b, "    TAXABLE BENEFIT RISK: %s owing, repay by %s\n",
				money(acct.AmountOwing), acct.Deadline.Format("2006-01-02"))
		}
		if acct.NeedsReview {
			fmt.Fprintf(&b, "    contains ownership-split allocations - verify attribution\n")
		}
	}
	return b.String()
}

// isExpenseCategory excludes transfers, remittances, loan principal, and
// distribution categories from the expense side of the income statement.
func isExpenseCategory(category string) bool {
	switch category {
	case rules.CategoryRevenue,
		rules.CategoryDistribution,
		rules.CategoryTransfer,
		rules.CategoryGSTRemittance,
		rules.CategoryGSTRefund,
		rules.CategoryTaxInstallment,
		rules.CategoryVehicleLoan,
		rules.CategoryPersonalLoan,
		rules.CategoryUncategorized:
		return false
	}
	return true
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

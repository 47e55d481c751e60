package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
)

// ScheduleLine is one row of the ITC working-paper schedule.
type ScheduleLine struct {
	Transaction model.ClassifiedTransaction
	Gross       decimal.Decimal
	ITC         decimal.Decimal
	Net         decimal.Decimal
}

// Schedule lists every ITC-bearing business expense with its gross, ITC,
// and net-of-GST amounts, for the accountant's working papers.
func Schedule(classified []model.ClassifiedTransaction) []ScheduleLine {
	var lines []ScheduleLine
	for _, ct := range classified {
		if ct.IsPersonal || !ct.ITCAmount.IsPositive() {
			continue
		}
		lines = append(lines, ScheduleLine{
			Transaction: ct,
			Gross:       ct.Debit,
			ITC:         ct.ITCAmount,
			Net:         ct.Debit.Sub(ct.ITCAmount),
		})
	}
	return lines
}

// ClaimIssue flags an ITC claim that would not survive a CRA review.
type ClaimIssue struct {
	Transaction model.ClassifiedTransaction
	Issue       string
	Amount      decimal.Decimal
}

// ValidateClaims checks classified rows for ITC claims that contradict
// their own classification: ITC on a personal row, ITC on an exempt
// category, or meals claimed at the full rate instead of 50%.
func ValidateClaims(classified []model.ClassifiedTransaction, rate decimal.Decimal) []ClaimIssue {
	var issues []ClaimIssue
	for _, ct := range classified {
		if ct.IsPersonal && ct.ITCAmount.IsPositive() {
			issues = append(issues, ClaimIssue{
				Transaction: ct,
				Issue:       "ITC claimed on personal expense",
				Amount:      ct.ITCAmount,
			})
		}
		if noITCCategories[ct.Category] && ct.ITCAmount.IsPositive() {
			issues = append(issues, ClaimIssue{
				Transaction: ct,
				Issue:       fmt.Sprintf("ITC claimed on exempt category %s", ct.Category),
				Amount:      ct.ITCAmount,
			})
		}
		if ct.Category == rules.CategoryMeals && !ct.IsPersonal && ct.Debit.IsPositive() {
			expected := Portion(ct.Debit, rate).Div(decimal.NewFromInt(2)).Round(2)
			if !ct.ITCAmount.Sub(expected).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)) {
				issues = append(issues, ClaimIssue{
					Transaction: ct,
					Issue:       "meals ITC must be claimed at 50%",
					Amount:      ct.ITCAmount.Sub(expected),
				})
			}
		}
	}
	return issues
}

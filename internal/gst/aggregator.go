package gst

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/revenue"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
)

// Period is an inclusive date range. Zero Start or End leaves that side
// unbounded, so the same aggregator serves monthly, quarterly, fiscal-year,
// and custom reporting.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && t.After(p.End) {
		return false
	}
	return true
}

// Position labels which way the net GST flows. Business users act on the
// label, not the sign, so it is exposed alongside the number.
type Position string

const (
	PositionOwing    Position = "owing"
	PositionRefund   Position = "refund"
	PositionBalanced Position = "balanced"
)

// Summary is one period's GST return figures. All revenue figures are
// GST-inclusive; collected GST is revenue * rate/(1+rate). Totals are sums
// of already-rounded line items, so a displayed total always equals the sum
// of its displayed lines.
type Summary struct {
	Period       Period
	Rate         decimal.Decimal
	TotalRevenue decimal.Decimal
	GSTCollected decimal.Decimal

	ITCBank       decimal.Decimal
	ITCCash       decimal.Decimal
	ITCPersonal   decimal.Decimal
	ITCPhone      decimal.Decimal
	ITCHomeOffice decimal.Decimal
	ITCVehicle    decimal.Decimal
	TotalITC      decimal.Decimal

	NetGST   decimal.Decimal
	Position Position
}

// Compute builds the GST return for a period from classified bank
// transactions, manual revenue entries, and side-channel expenses. It is a
// pure function of its inputs; callers pass a consistent snapshot.
func Compute(classified []model.ClassifiedTransaction, manual []model.ManualRevenueEntry, side SideChannels, period Period, rate decimal.Decimal) Summary {
	s := Summary{Period: period, Rate: rate}

	inPeriod := filterPeriod(classified, period)

	// Bank-derived revenue: deposit extraction over the period's rows.
	txns := make([]model.Transaction, len(inPeriod))
	for i, ct := range inPeriod {
		txns[i] = ct.Transaction
	}
	s.TotalRevenue = revenue.Extract(txns).Total()

	// Manual revenue. Exclusive amounts are grossed up so every revenue
	// figure in the summary shares the inclusive convention.
	for _, m := range manual {
		if !period.Contains(m.Date) {
			continue
		}
		amt := m.Amount
		if !m.GSTIncluded {
			amt = amt.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
		}
		s.TotalRevenue = s.TotalRevenue.Add(amt)
	}

	s.GSTCollected = Portion(s.TotalRevenue, rate).Round(2)

	// Bank ITCs: per-line amounts were rounded at classification time.
	for _, ct := range inPeriod {
		if ct.IsPersonal {
			continue
		}
		s.ITCBank = s.ITCBank.Add(ct.ITCAmount)
	}

	for _, e := range side.Cash {
		if period.Contains(e.Date) {
			s.ITCCash = s.ITCCash.Add(entryITC(e, rate))
		}
	}
	for _, e := range side.Personal {
		if period.Contains(e.Date) {
			s.ITCPersonal = s.ITCPersonal.Add(entryITC(e, rate))
		}
	}
	// Phone bills are monthly, so sub-year periods claim the months they
	// cover. Home-office and vehicle figures are annual totals and scale
	// to the period's share of the year.
	frac := period.yearFraction()
	for _, p := range side.Phones {
		s.ITCPhone = s.ITCPhone.Add(p.ITCIn(period, rate))
	}
	if side.HomeOffice != nil {
		s.ITCHomeOffice = Portion(side.HomeOffice.Deductible().Mul(frac), rate).Round(2)
	}
	if side.Vehicle != nil {
		s.ITCVehicle = Portion(side.Vehicle.Deductible().Mul(frac), rate).Round(2)
	}

	s.TotalITC = s.ITCBank.
		Add(s.ITCCash).
		Add(s.ITCPersonal).
		Add(s.ITCPhone).
		Add(s.ITCHomeOffice).
		Add(s.ITCVehicle)

	s.NetGST = s.GSTCollected.Sub(s.TotalITC)
	switch {
	case s.NetGST.IsPositive():
		s.Position = PositionOwing
	case s.NetGST.IsNegative():
		s.Position = PositionRefund
	default:
		s.Position = PositionBalanced
	}
	return s
}

// yearFraction scales annual side-channel amounts for sub-year returns. An
// unbounded or full-year period keeps the whole annual amount.
func (p Period) yearFraction() decimal.Decimal {
	if p.Start.IsZero() || p.End.IsZero() {
		return decimal.NewFromInt(1)
	}
	days := int64(p.End.Sub(p.Start).Hours()/24) + 1
	if days >= 365 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(days).Div(decimal.NewFromInt(365))
}

func filterPeriod(classified []model.ClassifiedTransaction, period Period) []model.ClassifiedTransaction {
	var out []model.ClassifiedTransaction
	for _, ct := range classified {
		if period.Contains(ct.Date) {
			out = append(out, ct)
		}
	}
	return out
}

// noITCCategories lists categories that must never carry an ITC, used by
// claim validation.
var noITCCategories = map[string]bool{
	rules.CategoryInsurance:       true,
	rules.CategoryBankCharges:     true,
	rules.CategoryWages:           true,
	rules.CategoryDistribution:    true,
	rules.CategoryPersonalExpense: true,
	rules.CategoryVehicleLoan:     true,
	rules.CategoryPersonalLoan:    true,
	rules.CategoryGSTRemittance:   true,
	rules.CategoryTaxInstallment:  true,
	rules.CategoryGSTRefund:       true,
	rules.CategoryTransfer:        true,
	rules.CategoryUncategorized:   true,
}

package shareholder

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dividend is one dividend declared by the corporation during the fiscal
// year. Eligible dividends carry the higher T5 gross-up.
type Dividend struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Eligible    bool
}

// T5Slip is one shareholder's dividend income for the year: the actual
// amounts received and the grossed-up taxable amounts reported on the T5.
type T5Slip struct {
	Shareholder     string
	Percent         decimal.Decimal
	ActualEligible  decimal.Decimal
	TaxableEligible decimal.Decimal
	ActualOther     decimal.Decimal
	TaxableOther    decimal.Decimal
}

// T5 gross-up factors. The taxable amount is the actual dividend times the
// factor for its class.
var (
	eligibleGrossUp = decimal.NewFromFloat(1.38)
	otherGrossUp    = decimal.NewFromFloat(1.15)
)

// TaxableTotal is the slip's total taxable dividend income.
func (s T5Slip) TaxableTotal() decimal.Decimal {
	return s.TaxableEligible.Add(s.TaxableOther)
}

// T5Slips splits declared dividends across shareholders by ownership
// percentage and grosses each share up to its taxable amount. The last
// shareholder takes the rounding remainder of each declaration, so the
// actual amounts on the slips sum exactly to what was declared. Slips
// follow the configured shareholder order.
func (t *Tracker) T5Slips(dividends []Dividend) []T5Slip {
	slips := make([]T5Slip, len(t.shareholders))
	for i, sh := range t.shareholders {
		slips[i] = T5Slip{Shareholder: sh.Name, Percent: sh.Percent}
	}

	for _, d := range dividends {
		remaining := d.Amount
		for i, sh := range t.shareholders {
			portion := remaining
			if i < len(t.shareholders)-1 {
				portion = d.Amount.Mul(sh.Percent).Div(hundred).Round(2)
				remaining = remaining.Sub(portion)
			}
			if d.Eligible {
				slips[i].ActualEligible = slips[i].ActualEligible.Add(portion)
			} else {
				slips[i].ActualOther = slips[i].ActualOther.Add(portion)
			}
		}
	}

	for i := range slips {
		slips[i].TaxableEligible = slips[i].ActualEligible.Mul(eligibleGrossUp).Round(2)
		slips[i].TaxableOther = slips[i].ActualOther.Mul(otherGrossUp).Round(2)
	}
	return slips
}

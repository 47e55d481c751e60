package gst

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

// PhoneLine is one person's phone bill record: actual monthly amounts plus
// the business-use percentage that caps the deduction.
type PhoneLine struct {
	Owner       string             `yaml:"owner"`
	Months      map[string]float64 `yaml:"months"`
	BusinessPct float64            `yaml:"business_pct"`
}

// Annual returns the total billed across all recorded months.
func (p PhoneLine) Annual() decimal.Decimal {
	return p.AnnualIn(Period{})
}

// AnnualIn totals the months whose first day falls inside the period.
// Month labels that do not parse as YYYY-MM count toward every period.
func (p PhoneLine) AnnualIn(period Period) decimal.Decimal {
	total := decimal.Zero
	for key, amt := range p.Months {
		if t, err := time.Parse("2006-01", key); err == nil && !period.Contains(t) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(amt))
	}
	return total.Round(2)
}

// Deductible returns the business-use portion of the annual total.
func (p PhoneLine) Deductible() decimal.Decimal {
	return p.DeductibleIn(Period{})
}

// DeductibleIn returns the business-use portion of the period's billing.
func (p PhoneLine) DeductibleIn(period Period) decimal.Decimal {
	pct := decimal.NewFromFloat(p.BusinessPct).Div(decimal.NewFromInt(100))
	return p.AnnualIn(period).Mul(pct).Round(2)
}

// ITC returns the recoverable GST on the deductible portion.
func (p PhoneLine) ITC(rate decimal.Decimal) decimal.Decimal {
	return p.ITCIn(Period{}, rate)
}

// ITCIn returns the recoverable GST on the period's deductible portion.
func (p PhoneLine) ITCIn(period Period, rate decimal.Decimal) decimal.Decimal {
	return Portion(p.DeductibleIn(period), rate).Round(2)
}

// HomeOffice pro-rates annual home costs (utilities, heat, internet) by the
// business-use percentage of the home.
type HomeOffice struct {
	AnnualCosts float64 `yaml:"annual_costs"`
	BusinessPct float64 `yaml:"business_pct"`
}

// Deductible returns the business-use share of annual costs.
func (h HomeOffice) Deductible() decimal.Decimal {
	pct := decimal.NewFromFloat(h.BusinessPct).Div(decimal.NewFromInt(100))
	return decimal.NewFromFloat(h.AnnualCosts).Mul(pct).Round(2)
}

// ITC returns the recoverable GST on the deductible portion.
func (h HomeOffice) ITC(rate decimal.Decimal) decimal.Decimal {
	return Portion(h.Deductible(), rate).Round(2)
}

// Vehicle pro-rates operating costs by business kilometres over total
// kilometres driven, per the vehicle log.
type Vehicle struct {
	OperatingCosts float64 `yaml:"operating_costs"`
	BusinessKM     float64 `yaml:"business_km"`
	TotalKM        float64 `yaml:"total_km"`
}

// Deductible returns the business-kilometre share of operating costs.
// A missing vehicle log (zero total) deducts nothing.
func (v Vehicle) Deductible() decimal.Decimal {
	if v.TotalKM <= 0 {
		return decimal.Zero
	}
	frac := decimal.NewFromFloat(v.BusinessKM).Div(decimal.NewFromFloat(v.TotalKM))
	return decimal.NewFromFloat(v.OperatingCosts).Mul(frac).Round(2)
}

// ITC returns the recoverable GST on the deductible portion.
func (v Vehicle) ITC(rate decimal.Decimal) decimal.Decimal {
	return Portion(v.Deductible(), rate).Round(2)
}

// SideChannels collects expense sources that never touch the corporate bank
// statement but still carry recoverable GST.
type SideChannels struct {
	Cash       []model.ExpenseEntry
	Personal   []model.ExpenseEntry
	Phones     []PhoneLine
	HomeOffice *HomeOffice
	Vehicle    *Vehicle
}

// entryITC computes one manual entry's ITC: amount * rate/(1+rate) * f,
// where f is 0.5 for meals-tagged entries and 1.0 otherwise.
func entryITC(e model.ExpenseEntry, rate decimal.Decimal) decimal.Decimal {
	itc := Portion(e.Amount, rate)
	if e.Meals {
		itc = itc.Div(decimal.NewFromInt(2))
	}
	return itc.Round(2)
}

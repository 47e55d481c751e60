package gst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhoneLine(t *testing.T) {
	p := PhoneLine{
		Owner:       "Darrell",
		Months:      map[string]float64{"2025-01": 84.00, "2025-02": 84.00, "2025-03": 92.40},
		BusinessPct: 80,
	}

	assert.Equal(t, "260.40", p.Annual().StringFixed(2))
	assert.Equal(t, "208.32", p.Deductible().StringFixed(2))
	assert.Equal(t, "9.92", p.ITC(DefaultRate).StringFixed(2))
}

func TestPhoneLine_PeriodKeepsCoveredMonths(t *testing.T) {
	p := PhoneLine{
		Owner:       "Darrell",
		Months:      map[string]float64{"2025-01": 84.00, "2025-02": 84.00, "2025-03": 92.40},
		BusinessPct: 100,
	}
	period := Period{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "168.00", p.AnnualIn(period).StringFixed(2))
	assert.Equal(t, "8.00", p.ITCIn(period, DefaultRate).StringFixed(2))
	assert.Equal(t, "260.40", p.AnnualIn(Period{}).StringFixed(2))
}

func TestPhoneLine_Empty(t *testing.T) {
	var p PhoneLine
	assert.True(t, p.Annual().IsZero())
	assert.True(t, p.ITC(DefaultRate).IsZero())
}

func TestHomeOffice(t *testing.T) {
	h := HomeOffice{AnnualCosts: 4800.00, BusinessPct: 15}

	assert.Equal(t, "720.00", h.Deductible().StringFixed(2))
	assert.Equal(t, "34.29", h.ITC(DefaultRate).StringFixed(2))
}

func TestVehicle(t *testing.T) {
	v := Vehicle{OperatingCosts: 6000.00, BusinessKM: 18000, TotalKM: 24000}

	assert.Equal(t, "4500.00", v.Deductible().StringFixed(2))
	assert.Equal(t, "214.29", v.ITC(DefaultRate).StringFixed(2))
}

func TestVehicle_NoLogDeductsNothing(t *testing.T) {
	v := Vehicle{OperatingCosts: 6000.00, BusinessKM: 18000}

	assert.True(t, v.Deductible().IsZero())
	assert.True(t, v.ITC(DefaultRate).IsZero())
}

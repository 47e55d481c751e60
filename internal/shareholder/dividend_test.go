package shareholder

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT5Slips_NonEligibleGrossUp(t *testing.T) {
	tr, err := NewTracker([]Shareholder{
		{Name: "Darrell", Percent: decimal.NewFromInt(51)},
		{Name: "Michelle", Percent: decimal.NewFromInt(49)},
	}, nil)
	require.NoError(t, err)

	slips := tr.T5Slips([]Dividend{{
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Description: "Mid-year dividend",
		Amount:      decimal.NewFromInt(10000),
	}})
	require.Len(t, slips, 2)

	assert.Equal(t, "Darrell", slips[0].Shareholder)
	assert.Equal(t, "5100.00", slips[0].ActualOther.StringFixed(2))
	assert.Equal(t, "5865.00", slips[0].TaxableOther.StringFixed(2))
	assert.True(t, slips[0].ActualEligible.IsZero())

	assert.Equal(t, "Michelle", slips[1].Shareholder)
	assert.Equal(t, "4900.00", slips[1].ActualOther.StringFixed(2))
	assert.Equal(t, "5635.00", slips[1].TaxableOther.StringFixed(2))
	assert.Equal(t, "5635.00", slips[1].TaxableTotal().StringFixed(2))
}

func TestT5Slips_EligibleGrossUp(t *testing.T) {
	tr, err := NewTracker([]Shareholder{
		{Name: "Darrell", Percent: decimal.NewFromInt(51)},
		{Name: "Michelle", Percent: decimal.NewFromInt(49)},
	}, nil)
	require.NoError(t, err)

	slips := tr.T5Slips([]Dividend{{
		Date:     time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(1000),
		Eligible: true,
	}})
	require.Len(t, slips, 2)

	assert.Equal(t, "510.00", slips[0].ActualEligible.StringFixed(2))
	assert.Equal(t, "703.80", slips[0].TaxableEligible.StringFixed(2))
	assert.True(t, slips[0].ActualOther.IsZero())
	assert.Equal(t, "676.20", slips[1].TaxableEligible.StringFixed(2))
}

func TestT5Slips_RemainderToLastShareholder(t *testing.T) {
	third := decimal.RequireFromString("33.33")
	tr, err := NewTracker([]Shareholder{
		{Name: "A", Percent: third},
		{Name: "B", Percent: third},
		{Name: "C", Percent: decimal.RequireFromString("33.34")},
	}, nil)
	require.NoError(t, err)

	slips := tr.T5Slips([]Dividend{{
		Date:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(100),
	}})
	require.Len(t, slips, 3)

	total := decimal.Zero
	for _, s := range slips {
		total = total.Add(s.ActualOther)
	}
	assert.Equal(t, "100.00", total.StringFixed(2))
	assert.Equal(t, "33.34", slips[2].ActualOther.StringFixed(2))
}

func TestT5Slips_MixedClassesAccumulate(t *testing.T) {
	tr, err := NewTracker([]Shareholder{
		{Name: "Darrell", Percent: decimal.NewFromInt(100)},
	}, nil)
	require.NoError(t, err)

	slips := tr.T5Slips([]Dividend{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(2000)},
		{Date: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(3000)},
		{Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(500), Eligible: true},
	})
	require.Len(t, slips, 1)

	assert.Equal(t, "5000.00", slips[0].ActualOther.StringFixed(2))
	assert.Equal(t, "5750.00", slips[0].TaxableOther.StringFixed(2))
	assert.Equal(t, "500.00", slips[0].ActualEligible.StringFixed(2))
	assert.Equal(t, "690.00", slips[0].TaxableEligible.StringFixed(2))
	assert.Equal(t, "6440.00", slips[0].TaxableTotal().StringFixed(2))
}

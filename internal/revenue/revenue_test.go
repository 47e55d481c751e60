package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
)

func credit(day int, desc string, amount float64) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Credit:      decimal.NewFromFloat(amount),
	}
}

func debit(day int, desc string, amount float64) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Debit:       decimal.NewFromFloat(amount),
	}
}

func TestExtract_ChannelTotals(t *testing.T) {
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF ACME DRILLING", 5000.00),
		credit(5, "MOBILE DEPOSIT", 1200.00),
		credit(7, "BRANCH DEPOSIT", 800.00),
		credit(9, "E-TRANSFER RECEIVED J SMITH", 450.00),
		debit(9, "SHELL GAS BAR", 105.00),
	})

	assert.Equal(t, "5000.00", res.Bucket(ChannelWire).Total.StringFixed(2))
	assert.Equal(t, "1200.00", res.Bucket(ChannelMobile).Total.StringFixed(2))
	assert.Equal(t, "800.00", res.Bucket(ChannelBranch).Total.StringFixed(2))
	assert.Equal(t, "450.00", res.Bucket(ChannelETransfer).Total.StringFixed(2))
	assert.Equal(t, "7450.00", res.Total().StringFixed(2))
	assert.Empty(t, res.Unmatched)
}

func TestExtract_ExactDuplicatesCollapse(t *testing.T) {
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF ACME DRILLING", 5000.00),
		credit(3, "WIRE TSF ACME DRILLING", 5000.00),
	})

	wire := res.Bucket(ChannelWire)
	assert.Equal(t, 1, wire.Count)
	assert.Equal(t, "5000.00", wire.Total.StringFixed(2))
}

func TestExtract_DistinctDescriptionsSurvive(t *testing.T) {
	// Same day, same amount, different payers: both are real deposits.
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF ACME DRILLING", 5000.00),
		credit(3, "WIRE TSF BOREAL ENERGY", 5000.00),
	})

	wire := res.Bucket(ChannelWire)
	assert.Equal(t, 2, wire.Count)
	assert.Equal(t, "10000.00", wire.Total.StringFixed(2))
}

func TestExtract_DifferentDatesSurvive(t *testing.T) {
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF ACME DRILLING", 5000.00),
		credit(4, "WIRE TSF ACME DRILLING", 5000.00),
	})
	assert.Equal(t, 2, res.Bucket(ChannelWire).Count)
}

func TestExtract_ChannelsAreExclusive(t *testing.T) {
	// Matches both wire and e-transfer keywords; wire claims it first.
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF VIA E-TRANSFER", 900.00),
	})

	assert.Equal(t, 1, res.Bucket(ChannelWire).Count)
	assert.Equal(t, 0, res.Bucket(ChannelETransfer).Count)
	assert.Equal(t, "900.00", res.Total().StringFixed(2))
}

func TestExtract_TotalEqualsSumOfBuckets(t *testing.T) {
	res := Extract([]model.Transaction{
		credit(3, "WIRE TSF ACME", 5000.00),
		credit(4, "MOBILE DEPOSIT", 1200.00),
		credit(5, "INTERAC E-TRANSFER", 450.00),
		credit(6, "GOVERNMENT CANADA RIT", 310.00),
	})

	sum := decimal.Zero
	for _, b := range res.Buckets {
		sum = sum.Add(b.Total)
	}
	assert.True(t, res.Total().Equal(sum))
}

func TestExtract_UnmatchedCreditsListed(t *testing.T) {
	res := Extract([]model.Transaction{
		credit(6, "GOVERNMENT CANADA RIT", 310.00),
		credit(7, "WIRE TSF ACME", 5000.00),
	})

	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, "GOVERNMENT CANADA RIT", res.Unmatched[0].Description)
	assert.Equal(t, "5000.00", res.Total().StringFixed(2))
}

func TestExtract_DebitsIgnored(t *testing.T) {
	res := Extract([]model.Transaction{
		debit(3, "WIRE TSF OUTGOING", 2000.00),
	})
	assert.True(t, res.Total().IsZero())
	assert.Empty(t, res.Unmatched)
}

func TestExtract_Empty(t *testing.T) {
	res := Extract(nil)
	assert.True(t, res.Total().IsZero())
	assert.Len(t, res.Buckets, 4)
}

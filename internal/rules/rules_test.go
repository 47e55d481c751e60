package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_RejectsDuplicateCategory(t *testing.T) {
	_, err := NewSet([]Rule{
		{Category: "Fuel", Keywords: []string{"SHELL"}},
		{Category: "Fuel", Keywords: []string{"ESSO"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate category")
}

func TestNewSet_RejectsEmptyCategory(t *testing.T) {
	_, err := NewSet([]Rule{{Keywords: []string{"SHELL"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty category")
}

func TestNewSet_RejectsBadITCRate(t *testing.T) {
	_, err := NewSet([]Rule{{Category: "Fuel", ITCEligible: true, ITCRate: 1.5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,1]")

	_, err = NewSet([]Rule{{Category: "Fuel", ITCEligible: true, ITCRate: -0.1}})
	require.Error(t, err)
}

func TestNewSet_RejectsEligibleWithZeroRate(t *testing.T) {
	_, err := NewSet([]Rule{{Category: "Fuel", ITCEligible: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero itc_rate")
}

func TestNewSet_RejectsUnknownDirection(t *testing.T) {
	_, err := NewSet([]Rule{{Category: "Fuel", Direction: "sideways"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestNewSet_RejectsBadPattern(t *testing.T) {
	_, err := NewSet([]Rule{{Category: "Fuel", Patterns: []string{"("}}})
	require.Error(t, err)
}

func TestMatch_FirstRuleWins(t *testing.T) {
	s, err := NewSet([]Rule{
		{Category: "Specific", Keywords: []string{"WIRE TSF ACME"}},
		{Category: "Broad", Keywords: []string{"WIRE"}},
	})
	require.NoError(t, err)

	r, ok := s.Match("WIRE TSF ACME DRILLING", DirectionCredit)
	require.True(t, ok)
	assert.Equal(t, "Specific", r.Category)

	r, ok = s.Match("WIRE PAYMENT OUT", DirectionDebit)
	require.True(t, ok)
	assert.Equal(t, "Broad", r.Category)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	s, err := NewSet([]Rule{{Category: "Fuel", Keywords: []string{"SHELL"}}})
	require.NoError(t, err)

	_, ok := s.Match("shell gas bar #1234", DirectionDebit)
	assert.True(t, ok)
}

func TestMatch_DirectionGates(t *testing.T) {
	s, err := NewSet([]Rule{
		{Category: "Refund", Keywords: []string{"GOVERNMENT CANADA"}, Direction: DirectionCredit},
		{Category: "Installment", Keywords: []string{"GOVERNMENT CANADA"}, Direction: DirectionDebit},
	})
	require.NoError(t, err)

	r, ok := s.Match("GOVERNMENT CANADA RIT", DirectionCredit)
	require.True(t, ok)
	assert.Equal(t, "Refund", r.Category)

	r, ok = s.Match("GOVERNMENT CANADA TXINS", DirectionDebit)
	require.True(t, ok)
	assert.Equal(t, "Installment", r.Category)
}

func TestMatch_Patterns(t *testing.T) {
	s, err := NewSet([]Rule{{Category: "Fuel", Patterns: []string{`FGP\d+`}}})
	require.NoError(t, err)

	_, ok := s.Match("FGP10433 CARDLOCK", DirectionDebit)
	assert.True(t, ok)

	_, ok = s.Match("FGP CARDLOCK", DirectionDebit)
	assert.False(t, ok)
}

func TestMatch_NoMatch(t *testing.T) {
	s, err := NewSet([]Rule{{Category: "Fuel", Keywords: []string{"SHELL"}}})
	require.NoError(t, err)

	_, ok := s.Match("MYSTERY VENDOR 42", DirectionDebit)
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	s, err := NewSet([]Rule{{Category: "Fuel", Keywords: []string{"SHELL"}, ITCEligible: true, ITCRate: 1.0}})
	require.NoError(t, err)

	r, ok := s.Get("Fuel")
	require.True(t, ok)
	assert.True(t, r.ITCEligible)

	_, ok = s.Get("Nope")
	assert.False(t, ok)
}

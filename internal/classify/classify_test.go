package classify

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(rules.Default(), DefaultConfig())
}

func txn(desc string, debit, credit float64) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Debit:       decimal.NewFromFloat(debit),
		Credit:      decimal.NewFromFloat(credit),
	}
}

func TestClassify_FuelWithFullITC(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("SHELL GAS BAR 1234", 105.00, 0))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryFuel, cl.Category)
	assert.Equal(t, "5.00", cl.ITCAmount.StringFixed(2))
	assert.False(t, cl.IsPersonal)
	assert.False(t, cl.NeedsReview)
}

func TestClassify_MealsAtHalfITC(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("TIM HORTONS #4821", 21.00, 0))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryMeals, cl.Category)
	assert.Equal(t, "0.50", cl.ITCAmount.StringFixed(2))
}

func TestClassify_PersonalHasNoITC(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("SAFEWAY #221", 84.50, 0))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryPersonalExpense, cl.Category)
	assert.True(t, cl.IsPersonal)
	assert.True(t, cl.ITCAmount.IsZero())
}

func TestClassify_CreditHasNoITC(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("WIRE TSF ACME DRILLING", 0, 5000.00))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryRevenue, cl.Category)
	assert.True(t, cl.ITCAmount.IsZero())
}

func TestClassify_NoMatchIsUncategorized(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("MYSTERY VENDOR 9000", 250.00, 0))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryUncategorized, cl.Category)
	assert.True(t, cl.NeedsReview)
	assert.True(t, cl.ITCAmount.IsZero())
	assert.Equal(t, "no rule matched", cl.Notes)
}

func TestClassify_LargePurchaseFlagged(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("HOME DEPOT #7007", 650.00, 0))
	require.NoError(t, err)

	assert.Equal(t, rules.CategoryEquipment, cl.Category)
	assert.True(t, cl.NeedsReview)
	assert.Contains(t, cl.Notes, "capital vs expense")

	// Under the threshold the same category is not flagged.
	cl, err = c.Classify(txn("HOME DEPOT #7007", 120.00, 0))
	require.NoError(t, err)
	assert.False(t, cl.NeedsReview)
}

func TestClassify_ITCNeverExceedsGSTContent(t *testing.T) {
	c := newClassifier(t)

	amounts := []float64{0.01, 1.00, 99.99, 105.00, 1234.56, 50000.00}
	for _, amt := range amounts {
		cl, err := c.Classify(txn("SHELL GAS BAR", amt, 0))
		require.NoError(t, err)

		debit := decimal.NewFromFloat(amt)
		bound := debit.Mul(c.cfg.GSTRate).Div(decimal.NewFromInt(1).Add(c.cfg.GSTRate))
		assert.True(t, cl.ITCAmount.LessThanOrEqual(bound.Round(2)),
			"ITC %s exceeds GST content of %s", cl.ITCAmount, debit)
	}
}

func TestClassify_MalformedRows(t *testing.T) {
	c := newClassifier(t)

	_, err := c.Classify(model.Transaction{
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "BROKEN EXPORT",
		Debit:       decimal.NewFromInt(-10),
	})
	require.Error(t, err)
	var merr *MalformedRecordError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "negative amount", merr.Reason)

	_, err = c.Classify(txn("ZERO ROW", 0, 0))
	require.Error(t, err)
}

func TestClassify_BothSidesNonzeroIsDebit(t *testing.T) {
	c := newClassifier(t)

	cl, err := c.Classify(txn("GOVERNMENT CANADA TX INS", 300.00, 1.00))
	require.NoError(t, err)
	assert.Equal(t, rules.CategoryTaxInstallment, cl.Category)
}

func TestClassifyAll_SkipsBadRowsKeepsGood(t *testing.T) {
	c := newClassifier(t)

	txns := []model.Transaction{
		txn("SHELL GAS BAR", 105.00, 0),
		txn("ZERO ROW", 0, 0),
		txn("TIM HORTONS", 21.00, 0),
	}

	out, bad := c.ClassifyAll(txns)
	require.Len(t, out, 2)
	require.Len(t, bad, 1)
	assert.Equal(t, 1, bad[0].Index)
	assert.Equal(t, rules.CategoryFuel, out[0].Category)
	assert.Equal(t, rules.CategoryMeals, out[1].Category)
}

func TestClassifyAll_Deterministic(t *testing.T) {
	c := newClassifier(t)

	txns := []model.Transaction{
		txn("SHELL GAS BAR", 105.00, 0),
		txn("WIRE TSF ACME", 0, 5000.00),
		txn("MYSTERY VENDOR", 99.00, 0),
	}

	first, _ := c.ClassifyAll(txns)
	second, _ := c.ClassifyAll(txns)
	assert.Equal(t, first, second)
}

func TestReclassify_RecomputesITC(t *testing.T) {
	c := newClassifier(t)

	out, bad := c.ClassifyAll([]model.Transaction{txn("MYSTERY VENDOR", 105.00, 0)})
	require.Empty(t, bad)
	require.Len(t, out, 1)
	require.Equal(t, rules.CategoryUncategorized, out[0].Category)

	ct, err := c.Reclassify(out[0], rules.CategoryFuel, false)
	require.NoError(t, err)
	assert.Equal(t, rules.CategoryFuel, ct.Category)
	assert.Equal(t, "5.00", ct.ITCAmount.StringFixed(2))
	assert.False(t, ct.NeedsReview)
}

func TestReclassify_PersonalOverrideZeroesITC(t *testing.T) {
	c := newClassifier(t)

	out, _ := c.ClassifyAll([]model.Transaction{txn("SHELL GAS BAR", 105.00, 0)})
	require.Len(t, out, 1)

	ct, err := c.Reclassify(out[0], rules.CategoryFuel, true)
	require.NoError(t, err)
	assert.True(t, ct.IsPersonal)
	assert.True(t, ct.ITCAmount.IsZero())
}

func TestReclassify_ToUncategorized(t *testing.T) {
	c := newClassifier(t)

	out, _ := c.ClassifyAll([]model.Transaction{txn("SHELL GAS BAR", 105.00, 0)})
	require.Len(t, out, 1)

	ct, err := c.Reclassify(out[0], rules.CategoryUncategorized, false)
	require.NoError(t, err)
	assert.Equal(t, rules.CategoryUncategorized, ct.Category)
	assert.True(t, ct.ITCAmount.IsZero())
}

func TestReclassify_UnknownCategory(t *testing.T) {
	c := newClassifier(t)

	out, _ := c.ClassifyAll([]model.Transaction{txn("SHELL GAS BAR", 105.00, 0)})
	require.Len(t, out, 1)

	_, err := c.Reclassify(out[0], "Not A Category", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

// Package classify implements the deterministic transaction classifier:
// one rule-table pass per transaction, ITC computation from GST-inclusive
// debits, and batch classification with partial-failure tolerance.
package classify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
)

// Config tunes classification behavior.
type Config struct {
	// GSTRate is the GST rate used for ITC extraction.
	GSTRate decimal.Decimal
	// ReviewAmount flags large debits in ReviewCategories for human review.
	ReviewAmount decimal.Decimal
	// ReviewCategories lists the categories subject to ReviewAmount.
	ReviewCategories []string
}

// DefaultConfig returns the standard 5% rate and the $500 review threshold
// on equipment and vehicle-repair purchases.
func DefaultConfig() Config {
	return Config{
		GSTRate:          gst.DefaultRate,
		ReviewAmount:     decimal.NewFromInt(500),
		ReviewCategories: []string{rules.CategoryEquipment, rules.CategoryVehicle},
	}
}

// Classifier assigns tax categories to bank transactions. It is a pure
// function over its inputs and the rule table; classifying the same
// transaction twice yields the same decision.
type Classifier struct {
	rules       *rules.Set
	cfg         Config
	reviewAbove map[string]bool
}

// New creates a Classifier over a validated rule table.
func New(set *rules.Set, cfg Config) *Classifier {
	above := make(map[string]bool, len(cfg.ReviewCategories))
	for _, c := range cfg.ReviewCategories {
		above[c] = true
	}
	return &Classifier{rules: set, cfg: cfg, reviewAbove: above}
}

// MalformedRecordError reports a row the classifier refuses to process:
// negative amounts, or neither side nonzero. The parser should have
// filtered these; the classifier reports them instead of crashing.
type MalformedRecordError struct {
	Index       int
	Transaction model.Transaction
	Reason      string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d (%s %q): %s",
		e.Index, e.Transaction.Date.Format("2006-01-02"), e.Transaction.Description, e.Reason)
}

func checkWellFormed(t model.Transaction) string {
	if t.Debit.IsNegative() || t.Credit.IsNegative() {
		return "negative amount"
	}
	if t.Debit.IsZero() && t.Credit.IsZero() {
		return "both debit and credit are zero"
	}
	return ""
}

// Classify assigns a category to one transaction. A row with both sides
// nonzero is treated as a debit. No rule match yields the Uncategorized
// sentinel with needs_review set and a zero ITC.
func (c *Classifier) Classify(t model.Transaction) (model.Classification, error) {
	if reason := checkWellFormed(t); reason != "" {
		return model.Classification{}, &MalformedRecordError{Transaction: t, Reason: reason}
	}

	dir := rules.DirectionCredit
	if t.IsDebit() {
		dir = rules.DirectionDebit
	}

	rule, ok := c.rules.Match(t.Description, dir)
	if !ok {
		return model.Classification{
			Category:    rules.CategoryUncategorized,
			ITCAmount:   decimal.Zero,
			NeedsReview: true,
			Notes:       "no rule matched",
		}, nil
	}

	cl := model.Classification{
		Category:    rule.Category,
		ITCAmount:   c.itcFor(rule, t.Debit),
		IsPersonal:  rule.Personal,
		NeedsReview: rule.Review,
	}
	if c.reviewAbove[rule.Category] && t.Debit.GreaterThanOrEqual(c.cfg.ReviewAmount) {
		cl.NeedsReview = true
		cl.Notes = "large purchase - verify capital vs expense"
	}
	return cl, nil
}

// itcFor computes the recoverable GST for a debit under a rule:
// debit * rate/(1+rate) * itc_rate, rounded to 2 decimal places.
func (c *Classifier) itcFor(rule rules.Rule, debit decimal.Decimal) decimal.Decimal {
	if !rule.ITCEligible || rule.Personal || !debit.IsPositive() {
		return decimal.Zero
	}
	return gst.Portion(debit, c.cfg.GSTRate).
		Mul(decimal.NewFromFloat(rule.ITCRate)).
		Round(2)
}

// ClassifyAll classifies every row independently. Malformed rows are
// reported and skipped; valid rows are still classified, so a bad line
// never aborts the batch. Re-running on an unmodified set yields identical
// results.
func (c *Classifier) ClassifyAll(txns []model.Transaction) ([]model.ClassifiedTransaction, []*MalformedRecordError) {
	var out []model.ClassifiedTransaction
	var bad []*MalformedRecordError

	for i, t := range txns {
		cl, err := c.Classify(t)
		if err != nil {
			var merr *MalformedRecordError
			if e, ok := err.(*MalformedRecordError); ok {
				merr = e
			} else {
				merr = &MalformedRecordError{Transaction: t, Reason: err.Error()}
			}
			merr.Index = i
			bad = append(bad, merr)
			continue
		}
		out = append(out, model.ClassifiedTransaction{Transaction: t, Classification: cl})
	}
	return out, bad
}

// Reclassify applies a human category override to one classified row. The
// ITC is recomputed from the new category's rule (never left stale), the
// review flag is cleared, and no other row is touched. Overriding to the
// Uncategorized sentinel zeroes the ITC.
func (c *Classifier) Reclassify(ct model.ClassifiedTransaction, category string, personal bool) (model.ClassifiedTransaction, error) {
	if category == rules.CategoryUncategorized {
		ct.Classification = model.Classification{
			Category:  rules.CategoryUncategorized,
			ITCAmount: decimal.Zero,
		}
		ct.IsPersonal = personal
		return ct, nil
	}

	rule, ok := c.rules.Get(category)
	if !ok {
		return ct, fmt.Errorf("unknown category %q", category)
	}

	override := rule
	override.Personal = personal
	ct.Classification = model.Classification{
		Category:   rule.Category,
		ITCAmount:  c.itcFor(override, ct.Debit),
		IsPersonal: personal,
	}
	return ct, nil
}

// Package shareholder tracks per-shareholder loan balances from corporate
// distributions and business-paid personal expenses, and flags balances
// that risk becoming taxable benefits under the one-year repayment rule.
package shareholder

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/fiscal"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
)

// Shareholder is one owner of the corporation. Patterns are uppercase
// substrings matched against transaction descriptions to attribute a
// movement to this shareholder directly.
type Shareholder struct {
	Name     string
	Percent  decimal.Decimal
	Patterns []string
}

// MovementKind labels a loan-account movement.
type MovementKind string

const (
	KindDistribution MovementKind = "distribution"
	KindPersonal     MovementKind = "personal-expense"
	KindContribution MovementKind = "contribution"
	KindRepayment    MovementKind = "repayment"
)

// Movement is one entry in a loan account. Amount is positive for money
// leaving the corporation toward the shareholder (increasing what they
// owe) and negative for contributions and repayments.
type Movement struct {
	Date        time.Time
	Description string
	Kind        MovementKind
	Amount      decimal.Decimal
	// Allocated marks amounts split by ownership percentage because the
	// row carried no shareholder indicator; such splits need review.
	Allocated bool
}

// Adjustment is a manually recorded loan movement: a shareholder putting
// money into the corporation (contribution) or repaying a drawn balance.
type Adjustment struct {
	Shareholder string
	Date        time.Time
	Description string
	Kind        MovementKind
	Amount      decimal.Decimal
}

// LoanAccount is one shareholder's position at the fiscal year-end.
type LoanAccount struct {
	Shareholder      string
	Percent          decimal.Decimal
	OpeningBalance   decimal.Decimal
	Withdrawals      decimal.Decimal
	PersonalExpenses decimal.Decimal
	ClosingBalance   decimal.Decimal
	Movements        []Movement

	// Deadline is one year past the fiscal year-end. A negative closing
	// balance unpaid by then becomes taxable income to the shareholder.
	Deadline           time.Time
	TaxableBenefitRisk bool
	AmountOwing        decimal.Decimal
	NeedsReview        bool
}

// Tracker computes loan accounts from classified transactions.
type Tracker struct {
	shareholders []Shareholder
	opening      map[string]decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewTracker validates the ownership structure: at least one shareholder,
// unique names, no negative shares, and percentages summing to exactly
// 100. A bad split is a fatal configuration error, never renormalized.
func NewTracker(shareholders []Shareholder, opening map[string]decimal.Decimal) (*Tracker, error) {
	if len(shareholders) == 0 {
		return nil, fmt.Errorf("no shareholders configured")
	}

	seen := make(map[string]bool, len(shareholders))
	total := decimal.Zero
	for _, sh := range shareholders {
		if sh.Name == "" {
			return nil, fmt.Errorf("shareholder with empty name")
		}
		if seen[sh.Name] {
			return nil, fmt.Errorf("duplicate shareholder %q", sh.Name)
		}
		seen[sh.Name] = true
		if sh.Percent.IsNegative() {
			return nil, fmt.Errorf("shareholder %q: negative ownership %s%%", sh.Name, sh.Percent)
		}
		total = total.Add(sh.Percent)
	}
	if !total.Equal(hundred) {
		return nil, fmt.Errorf("ownership percentages sum to %s%%, want 100%%", total)
	}

	if opening == nil {
		opening = map[string]decimal.Decimal{}
	}
	for name := range opening {
		if !seen[name] {
			return nil, fmt.Errorf("opening balance for unknown shareholder %q", name)
		}
	}
	return &Tracker{shareholders: shareholders, opening: opening}, nil
}

// Balances computes each shareholder's loan account at the given fiscal
// year-end. Loan movements come from Shareholder Distribution rows and
// rows flagged personal; a row matching no shareholder's patterns is split
// by ownership percentage and marked for review.
func (t *Tracker) Balances(classified []model.ClassifiedTransaction, adjustments []Adjustment, yearEnd time.Time) (map[string]*LoanAccount, error) {
	accounts := make(map[string]*LoanAccount, len(t.shareholders))
	for _, sh := range t.shareholders {
		accounts[sh.Name] = &LoanAccount{
			Shareholder:    sh.Name,
			Percent:        sh.Percent,
			OpeningBalance: t.opening[sh.Name],
			Deadline:       fiscal.RepaymentDeadline(yearEnd),
		}
	}

	for _, ct := range classified {
		if !ct.Debit.IsPositive() {
			continue
		}

		var kind MovementKind
		switch {
		case ct.Category == rules.CategoryDistribution:
			kind = KindDistribution
		case ct.IsPersonal:
			kind = KindPersonal
		default:
			continue
		}

		if name, ok := t.attribute(ct.Description); ok {
			t.apply(accounts[name], Movement{
				Date:        ct.Date,
				Description: ct.Description,
				Kind:        kind,
				Amount:      ct.Debit,
			})
			continue
		}
		t.split(accounts, ct, kind)
	}

	for _, adj := range adjustments {
		acct, ok := accounts[adj.Shareholder]
		if !ok {
			return nil, fmt.Errorf("adjustment for unknown shareholder %q", adj.Shareholder)
		}
		if adj.Kind != KindContribution && adj.Kind != KindRepayment {
			return nil, fmt.Errorf("adjustment for %q: unsupported kind %q", adj.Shareholder, adj.Kind)
		}
		if adj.Amount.IsNegative() {
			return nil, fmt.Errorf("adjustment for %q: negative amount %s", adj.Shareholder, adj.Amount)
		}
		// Contributions and repayments offset withdrawals, so the closing
		// identity stays opening - withdrawals - personal.
		t.apply(acct, Movement{
			Date:        adj.Date,
			Description: adj.Description,
			Kind:        adj.Kind,
			Amount:      adj.Amount.Neg(),
		})
	}

	for _, acct := range accounts {
		acct.ClosingBalance = acct.OpeningBalance.
			Sub(acct.Withdrawals).
			Sub(acct.PersonalExpenses)
		if acct.ClosingBalance.IsNegative() {
			acct.TaxableBenefitRisk = true
			acct.AmountOwing = acct.ClosingBalance.Neg()
		}
	}
	return accounts, nil
}

// attribute finds the shareholder whose patterns match a description.
func (t *Tracker) attribute(description string) (string, bool) {
	desc := strings.ToUpper(description)
	for _, sh := range t.shareholders {
		for _, p := range sh.Patterns {
			if strings.Contains(desc, strings.ToUpper(p)) {
				return sh.Name, true
			}
		}
	}
	return "", false
}

// split allocates an unattributable amount by ownership percentage. The
// last shareholder takes the remainder so the portions sum exactly to the
// original amount.
func (t *Tracker) split(accounts map[string]*LoanAccount, ct model.ClassifiedTransaction, kind MovementKind) {
	remaining := ct.Debit
	for i, sh := range t.shareholders {
		portion := remaining
		if i < len(t.shareholders)-1 {
			portion = ct.Debit.Mul(sh.Percent).Div(hundred).Round(2)
			remaining = remaining.Sub(portion)
		}
		t.apply(accounts[sh.Name], Movement{
			Date:        ct.Date,
			Description: ct.Description,
			Kind:        kind,
			Amount:      portion,
			Allocated:   true,
		})
		accounts[sh.Name].NeedsReview = true
	}
}

func (t *Tracker) apply(acct *LoanAccount, m Movement) {
	acct.Movements = append(acct.Movements, m)
	if m.Kind == KindPersonal {
		acct.PersonalExpenses = acct.PersonalExpenses.Add(m.Amount)
	} else {
		acct.Withdrawals = acct.Withdrawals.Add(m.Amount)
	}
}

// Package fiscal resolves fiscal-year labels, quarter boundaries, and the
// one-year shareholder-loan repayment deadline.
package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Year is one fiscal year of the corporation. Start and End are inclusive
// calendar dates.
type Year struct {
	Label string
	Start time.Time
	End   time.Time
}

// ParseLabel resolves a label like "2024-2025" against a year-end of
// "MM-DD". The end date falls in the second year of the label; the start is
// the day after the prior year-end. For year_end "11-30", "2024-2025" runs
// Dec 1 2024 through Nov 30 2025.
func ParseLabel(label, yearEnd string) (Year, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return Year{}, fmt.Errorf("invalid fiscal year label %q", label)
	}
	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return Year{}, fmt.Errorf("invalid fiscal year label %q: %w", label, err)
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return Year{}, fmt.Errorf("invalid fiscal year label %q: %w", label, err)
	}
	if second != first+1 {
		return Year{}, fmt.Errorf("fiscal year label %q: years must be consecutive", label)
	}

	end, err := time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", second, yearEnd))
	if err != nil {
		return Year{}, fmt.Errorf("invalid year_end %q: %w", yearEnd, err)
	}

	return Year{
		Label: label,
		Start: end.AddDate(-1, 0, 1),
		End:   end,
	}, nil
}

// Label formats the fiscal year containing a year-end date, e.g. a year
// ending Nov 30 2025 is "2024-2025".
func Label(yearEnd time.Time) string {
	return fmt.Sprintf("%04d-%04d", yearEnd.Year()-1, yearEnd.Year())
}

// LabelFor returns the label of the fiscal year containing a date, for a
// year-end of "MM-DD".
func LabelFor(t time.Time, yearEnd string) (string, error) {
	end, err := time.Parse("2006-01-02", fmt.Sprintf("%04d-%s", t.Year(), yearEnd))
	if err != nil {
		return "", fmt.Errorf("invalid year_end %q: %w", yearEnd, err)
	}
	if t.After(end) {
		end = end.AddDate(1, 0, 0)
	}
	return Label(end), nil
}

// Quarter returns the inclusive date range of fiscal quarter q (1-4).
// Quarters are three calendar months from the fiscal start, so a Dec 1
// start gives Q1 Dec 1 through the end of February, leap-aware.
func (y Year) Quarter(q int) (start, end time.Time, err error) {
	if q < 1 || q > 4 {
		return time.Time{}, time.Time{}, fmt.Errorf("quarter must be 1-4, got %d", q)
	}
	start = y.Start.AddDate(0, 3*(q-1), 0)
	end = start.AddDate(0, 3, -1)
	return start, end, nil
}

// Contains reports whether a date falls inside the fiscal year.
func (y Year) Contains(t time.Time) bool {
	return !t.Before(y.Start) && !t.After(y.End)
}

// RepaymentDeadline is the date by which a shareholder must repay an amount
// owed to the corporation: exactly one year after the fiscal year-end.
// Past it, an unpaid balance becomes a taxable benefit.
func RepaymentDeadline(yearEnd time.Time) time.Time {
	return yearEnd.AddDate(1, 0, 0)
}

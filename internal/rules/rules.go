package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Direction restricts a rule to one side of the statement.
type Direction string

const (
	DirectionAny    Direction = ""
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Rule maps one tax category to the description patterns that select it,
// along with the category's ITC treatment and personal default.
type Rule struct {
	Category    string    `yaml:"category"`
	Keywords    []string  `yaml:"keywords,omitempty"`
	Patterns    []string  `yaml:"patterns,omitempty"`
	Direction   Direction `yaml:"direction,omitempty"`
	ITCEligible bool      `yaml:"itc_eligible,omitempty"`
	ITCRate     float64   `yaml:"itc_rate,omitempty"`
	Personal    bool      `yaml:"personal,omitempty"`
	Review      bool      `yaml:"review,omitempty"`
}

// Set is an ordered rule table. Rules are evaluated top to bottom and the
// first match wins, so more specific entries (named revenue patterns) must
// precede broad catch-alls (generic transfers).
type Set struct {
	rules    []Rule
	compiled [][]*regexp.Regexp
	byName   map[string]int
}

// NewSet validates the rule list and compiles its regex patterns.
// Category names must be unique and ITC rates must lie in [0,1].
func NewSet(list []Rule) (*Set, error) {
	s := &Set{
		rules:    list,
		compiled: make([][]*regexp.Regexp, len(list)),
		byName:   make(map[string]int, len(list)),
	}
	for i, r := range list {
		if r.Category == "" {
			return nil, fmt.Errorf("rule %d: empty category name", i)
		}
		if _, dup := s.byName[r.Category]; dup {
			return nil, fmt.Errorf("rule %d: duplicate category %q", i, r.Category)
		}
		s.byName[r.Category] = i

		if r.ITCRate < 0 || r.ITCRate > 1 {
			return nil, fmt.Errorf("category %q: itc_rate %v outside [0,1]", r.Category, r.ITCRate)
		}
		if r.ITCEligible && r.ITCRate == 0 {
			return nil, fmt.Errorf("category %q: itc_eligible with zero itc_rate", r.Category)
		}

		switch r.Direction {
		case DirectionAny, DirectionDebit, DirectionCredit:
		default:
			return nil, fmt.Errorf("category %q: unknown direction %q", r.Category, r.Direction)
		}

		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("category %q: pattern %q: %w", r.Category, p, err)
			}
			s.compiled[i] = append(s.compiled[i], re)
		}
	}
	return s, nil
}

// Rules returns the ordered rule list.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Get returns the rule for a category name.
func (s *Set) Get(category string) (Rule, bool) {
	i, ok := s.byName[category]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i], true
}

// Match returns the first rule whose keywords or patterns match the
// uppercase-normalized description on the given side of the statement.
func (s *Set) Match(description string, dir Direction) (Rule, bool) {
	desc := strings.ToUpper(description)
	for i, r := range s.rules {
		if r.Direction != DirectionAny && r.Direction != dir {
			continue
		}
		if s.matches(i, desc) {
			return r, true
		}
	}
	return Rule{}, false
}

func (s *Set) matches(i int, desc string) bool {
	for _, kw := range s.rules[i].Keywords {
		if strings.Contains(desc, strings.ToUpper(kw)) {
			return true
		}
	}
	for _, re := range s.compiled[i] {
		if re.MatchString(desc) {
			return true
		}
	}
	return false
}

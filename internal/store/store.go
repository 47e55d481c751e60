// Package store persists one record set per fiscal year under a RigBooks
// data directory: the classified transactions, the manually entered
// expense lists, the shareholder loan records, and the
// phone/home-office/vehicle configuration. The core
// engine stays stateless; callers load a State, run the engine over it,
// and save the result back.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/model"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/shareholder"
)

// Store reads and writes per-fiscal-year state under a data directory.
type Store struct {
	root string
}

// New creates a Store over a data directory.
func New(root string) *Store {
	return &Store{root: root}
}

// State is one fiscal year's record set.
type State struct {
	Transactions  []model.ClassifiedTransaction
	CashExpenses  []model.ExpenseEntry
	ManualRevenue []model.ManualRevenueEntry

	PersonalExpenses []model.ExpenseEntry
	Phones           []gst.PhoneLine
	HomeOffice       *gst.HomeOffice
	Vehicle          *gst.Vehicle

	OpeningBalances map[string]decimal.Decimal
	LoanAdjustments []shareholder.Adjustment
	Dividends       []shareholder.Dividend
}

// SideChannels assembles the state's side-channel expense sources for the
// GST aggregator.
func (s *State) SideChannels() gst.SideChannels {
	return gst.SideChannels{
		Cash:       s.CashExpenses,
		Personal:   s.PersonalExpenses,
		Phones:     s.Phones,
		HomeOffice: s.HomeOffice,
		Vehicle:    s.Vehicle,
	}
}

// Bank returns the state's underlying bank rows without classification.
func (s *State) Bank() []model.Transaction {
	txns := make([]model.Transaction, len(s.Transactions))
	for i, ct := range s.Transactions {
		txns[i] = ct.Transaction
	}
	return txns
}

// extras.yaml carries the non-tabular side of a year's state.
type extrasFile struct {
	ManualRevenue    []manualRevenueYAML `yaml:"manual_revenue,omitempty"`
	PersonalExpenses []expenseYAML       `yaml:"personal_expenses,omitempty"`
	Phones           []gst.PhoneLine     `yaml:"phones,omitempty"`
	HomeOffice       *gst.HomeOffice     `yaml:"home_office,omitempty"`
	Vehicle          *gst.Vehicle        `yaml:"vehicle,omitempty"`
	OpeningBalances  map[string]float64  `yaml:"opening_balances,omitempty"`
	LoanAdjustments  []adjustmentYAML    `yaml:"loan_adjustments,omitempty"`
	Dividends        []dividendYAML      `yaml:"dividends,omitempty"`
}

type adjustmentYAML struct {
	Shareholder string  `yaml:"shareholder"`
	Date        string  `yaml:"date"`
	Description string  `yaml:"description,omitempty"`
	Kind        string  `yaml:"kind"`
	Amount      float64 `yaml:"amount"`
}

type dividendYAML struct {
	Date        string  `yaml:"date"`
	Description string  `yaml:"description,omitempty"`
	Amount      float64 `yaml:"amount"`
	Eligible    bool    `yaml:"eligible,omitempty"`
}

type manualRevenueYAML struct {
	Client      string  `yaml:"client"`
	Date        string  `yaml:"date"`
	Amount      float64 `yaml:"amount"`
	GSTIncluded bool    `yaml:"gst_included"`
}

type expenseYAML struct {
	Date        string  `yaml:"date"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category,omitempty"`
	Amount      float64 `yaml:"amount"`
	Meals       bool    `yaml:"meals,omitempty"`
	Receipt     bool    `yaml:"receipt,omitempty"`
}

const (
	yearsDir         = "years"
	transactionsFile = "transactions.csv"
	cashFile         = "cash-expenses.csv"
	extrasFileName   = "extras.yaml"
)

// Dir returns the directory holding a fiscal year's files.
func (s *Store) Dir(label string) string {
	return filepath.Join(s.root, yearsDir, label)
}

// Load reads a fiscal year's state. A year with no saved files yields an
// empty State, not an error.
func (s *Store) Load(label string) (*State, error) {
	st := &State{}
	dir := s.Dir(label)

	txns, err := readCSVFile(filepath.Join(dir, transactionsFile), ReadTransactions)
	if err != nil {
		return nil, err
	}
	st.Transactions = txns

	cash, err := readCSVFile(filepath.Join(dir, cashFile), ReadExpenses)
	if err != nil {
		return nil, err
	}
	st.CashExpenses = cash

	if err := s.loadExtras(filepath.Join(dir, extrasFileName), st); err != nil {
		return nil, err
	}
	return st, nil
}

// Save writes a fiscal year's state, creating the year directory as needed.
func (s *Store) Save(label string, st *State) error {
	dir := s.Dir(label)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating year dir: %w", err)
	}

	if err := writeFile(filepath.Join(dir, transactionsFile), func(f *os.File) error {
		return WriteTransactions(f, st.Transactions)
	}); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(dir, cashFile), func(f *os.File) error {
		return WriteExpenses(f, st.CashExpenses)
	}); err != nil {
		return err
	}

	return s.saveExtras(filepath.Join(dir, extrasFileName), st)
}

// Years lists the fiscal-year labels with saved state.
func (s *Store) Years() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, yearsDir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading years dir: %w", err)
	}
	var labels []string
	for _, e := range entries {
		if e.IsDir() {
			labels = append(labels, e.Name())
		}
	}
	return labels, nil
}

func (s *Store) loadExtras(path string, st *State) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading extras: %w", err)
	}

	var ef extrasFile
	if err := yaml.Unmarshal(data, &ef); err != nil {
		return fmt.Errorf("parsing extras: %w", err)
	}

	for _, m := range ef.ManualRevenue {
		date, err := time.Parse(dateFormat, m.Date)
		if err != nil {
			return fmt.Errorf("manual revenue date %q: %w", m.Date, err)
		}
		st.ManualRevenue = append(st.ManualRevenue, model.ManualRevenueEntry{
			Client:      m.Client,
			Date:        date,
			Amount:      decimal.NewFromFloat(m.Amount).Round(2),
			GSTIncluded: m.GSTIncluded,
		})
	}
	for _, e := range ef.PersonalExpenses {
		date, err := time.Parse(dateFormat, e.Date)
		if err != nil {
			return fmt.Errorf("personal expense date %q: %w", e.Date, err)
		}
		st.PersonalExpenses = append(st.PersonalExpenses, model.ExpenseEntry{
			Date:        date,
			Description: e.Description,
			Category:    e.Category,
			Amount:      decimal.NewFromFloat(e.Amount).Round(2),
			Meals:       e.Meals,
			HasReceipt:  e.Receipt,
		})
	}
	for _, a := range ef.LoanAdjustments {
		date, err := time.Parse(dateFormat, a.Date)
		if err != nil {
			return fmt.Errorf("loan adjustment date %q: %w", a.Date, err)
		}
		st.LoanAdjustments = append(st.LoanAdjustments, shareholder.Adjustment{
			Shareholder: a.Shareholder,
			Date:        date,
			Description: a.Description,
			Kind:        shareholder.MovementKind(a.Kind),
			Amount:      decimal.NewFromFloat(a.Amount).Round(2),
		})
	}
	for _, d := range ef.Dividends {
		date, err := time.Parse(dateFormat, d.Date)
		if err != nil {
			return fmt.Errorf("dividend date %q: %w", d.Date, err)
		}
		st.Dividends = append(st.Dividends, shareholder.Dividend{
			Date:        date,
			Description: d.Description,
			Amount:      decimal.NewFromFloat(d.Amount).Round(2),
			Eligible:    d.Eligible,
		})
	}
	if len(ef.OpeningBalances) > 0 {
		st.OpeningBalances = make(map[string]decimal.Decimal, len(ef.OpeningBalances))
		for name, amt := range ef.OpeningBalances {
			st.OpeningBalances[name] = decimal.NewFromFloat(amt).Round(2)
		}
	}
	st.Phones = ef.Phones
	st.HomeOffice = ef.HomeOffice
	st.Vehicle = ef.Vehicle
	return nil
}

func (s *Store) saveExtras(path string, st *State) error {
	ef := extrasFile{
		Phones:     st.Phones,
		HomeOffice: st.HomeOffice,
		Vehicle:    st.Vehicle,
	}
	for _, m := range st.ManualRevenue {
		amt, _ := m.Amount.Float64()
		ef.ManualRevenue = append(ef.ManualRevenue, manualRevenueYAML{
			Client:      m.Client,
			Date:        m.Date.Format(dateFormat),
			Amount:      amt,
			GSTIncluded: m.GSTIncluded,
		})
	}
	for _, e := range st.PersonalExpenses {
		amt, _ := e.Amount.Float64()
		ef.PersonalExpenses = append(ef.PersonalExpenses, expenseYAML{
			Date:        e.Date.Format(dateFormat),
			Description: e.Description,
			Category:    e.Category,
			Amount:      amt,
			Meals:       e.Meals,
			Receipt:     e.HasReceipt,
		})
	}
	for _, a := range st.LoanAdjustments {
		amt, _ := a.Amount.Float64()
		ef.LoanAdjustments = append(ef.LoanAdjustments, adjustmentYAML{
			Shareholder: a.Shareholder,
			Date:        a.Date.Format(dateFormat),
			Description: a.Description,
			Kind:        string(a.Kind),
			Amount:      amt,
		})
	}
	for _, d := range st.Dividends {
		amt, _ := d.Amount.Float64()
		ef.Dividends = append(ef.Dividends, dividendYAML{
			Date:        d.Date.Format(dateFormat),
			Description: d.Description,
			Amount:      amt,
			Eligible:    d.Eligible,
		})
	}
	if len(st.OpeningBalances) > 0 {
		ef.OpeningBalances = make(map[string]float64, len(st.OpeningBalances))
		for name, amt := range st.OpeningBalances {
			f, _ := amt.Float64()
			ef.OpeningBalances[name] = f
		}
	}

	data, err := yaml.Marshal(ef)
	if err != nil {
		return fmt.Errorf("marshaling extras: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing extras: %w", err)
	}
	return nil
}

func readCSVFile[T any](path string, read func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

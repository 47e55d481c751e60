package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/auditlog"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/classify"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/config"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/fiscal"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gitops"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/gst"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/rules"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/shareholder"
	"github.com/airunsmybusiness-gif/rigbooks-complete/internal/store"
)

// configFile is the config name at the data directory root.
const configFile = "rigbooks.yaml"

// env holds everything a command needs from a RigBooks data directory.
type env struct {
	dir   string
	cfg   *config.Config
	rules *rules.Set
	store *store.Store
	log   zerolog.Logger
}

// loadEnv reads config and rule table from a data directory.
func loadEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	set, err := rules.Load(absDir)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	return &env{
		dir:   absDir,
		cfg:   cfg,
		rules: set,
		store: store.New(absDir),
		log:   newLogger(),
	}, nil
}

// classifier builds the classifier from the config thresholds.
func (e *env) classifier() *classify.Classifier {
	cfg := classify.DefaultConfig()
	if e.cfg.Thresholds.ReviewAmount > 0 {
		cfg.ReviewAmount = decimal.NewFromFloat(e.cfg.Thresholds.ReviewAmount)
	}
	if len(e.cfg.Thresholds.ReviewCategories) > 0 {
		cfg.ReviewCategories = e.cfg.Thresholds.ReviewCategories
	}
	return classify.New(e.rules, cfg)
}

// fiscalYear resolves a --year label, defaulting to the fiscal year that
// contains today.
func (e *env) fiscalYear(label string) (fiscal.Year, error) {
	if label == "" {
		var err error
		label, err = fiscal.LabelFor(time.Now(), e.cfg.Fiscal.YearEnd)
		if err != nil {
			return fiscal.Year{}, err
		}
	}
	return fiscal.ParseLabel(label, e.cfg.Fiscal.YearEnd)
}

// tracker builds the shareholder loan tracker from config, seeded with the
// year's recorded opening balances.
func (e *env) tracker(opening map[string]decimal.Decimal) (*shareholder.Tracker, error) {
	shs := make([]shareholder.Shareholder, len(e.cfg.Shareholders))
	for i, sc := range e.cfg.Shareholders {
		shs[i] = shareholder.Shareholder{
			Name:     sc.Name,
			Percent:  decimal.NewFromFloat(sc.Percent),
			Patterns: sc.Patterns,
		}
	}
	return shareholder.NewTracker(shs, opening)
}

// yearPeriod is the GST period covering a whole fiscal year.
func yearPeriod(y fiscal.Year) gst.Period {
	return gst.Period{Start: y.Start, End: y.End}
}

// record appends an audit entry and, when enabled, commits the data
// directory. The entry carries the commit hash it landed in.
func (e *env) record(action, details, fiscalLabel string) error {
	hash := ""
	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dir) {
		changed, err := gitops.HasChanges(e.dir)
		if err != nil {
			return err
		}
		if changed {
			hash, err = gitops.CommitAll(e.dir, action+": "+details, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail)
			if err != nil {
				return fmt.Errorf("auto-commit: %w", err)
			}
			e.log.Debug().Str("commit", hash).Msg("committed data directory")
		}
	}

	return auditlog.Append(e.dir, auditlog.Entry{
		Timestamp:  time.Now(),
		Actor:      "cli",
		Action:     action,
		Details:    details,
		FiscalYear: fiscalLabel,
		CommitHash: hash,
	})
}

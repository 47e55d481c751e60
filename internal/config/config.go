package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level rigbooks.yaml configuration.
type Config struct {
	Business     BusinessConfig      `yaml:"business"`
	Fiscal       FiscalConfig        `yaml:"fiscal"`
	Shareholders []ShareholderConfig `yaml:"shareholders"`
	Thresholds   ThresholdsConfig    `yaml:"thresholds"`
	Git          GitConfig           `yaml:"git"`
}

// BusinessConfig identifies the corporation.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// FiscalConfig defines the fiscal year boundary.
type FiscalConfig struct {
	YearEnd string `yaml:"year_end"` // "MM-DD" format, e.g. "11-30"
}

// ShareholderConfig declares one owner: ownership percentage and the
// description patterns that attribute a transfer to them.
type ShareholderConfig struct {
	Name     string   `yaml:"name"`
	Percent  float64  `yaml:"percent"`
	Patterns []string `yaml:"patterns,omitempty"`
}

// ThresholdsConfig controls when classified rows are flagged for review.
type ThresholdsConfig struct {
	ReviewAmount     float64  `yaml:"review_amount"`
	ReviewCategories []string `yaml:"review_categories,omitempty"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a rigbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new corporation:
// a November 30 year-end, an even two-way ownership split to be edited,
// and the $500 large-purchase review threshold.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: "ccpc",
		},
		Fiscal: FiscalConfig{
			YearEnd: "11-30",
		},
		Shareholders: []ShareholderConfig{
			{Name: "Shareholder A", Percent: 51},
			{Name: "Shareholder B", Percent: 49},
		},
		Thresholds: ThresholdsConfig{
			ReviewAmount: 500,
			ReviewCategories: []string{
				"Equipment & Supplies",
				"Vehicle Repairs & Maintenance",
			},
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "RigBooks",
			AuthorEmail: "books@rigbooks.local",
		},
	}
}

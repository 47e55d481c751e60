package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rulesFile is the rule table location inside a RigBooks data directory.
const rulesFile = "rules/categories.yaml"

type fileFormat struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and validates rules/categories.yaml from a data directory.
func Load(root string) (*Set, error) {
	path := filepath.Join(root, filepath.FromSlash(rulesFile))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule table: %w", err)
	}

	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}

	set, err := NewSet(ff.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rule table %s: %w", path, err)
	}
	return set, nil
}

// Save writes a rule table to rules/categories.yaml in a data directory.
func Save(root string, s *Set) error {
	data, err := yaml.Marshal(fileFormat{Rules: s.rules})
	if err != nil {
		return fmt.Errorf("marshaling rule table: %w", err)
	}

	path := filepath.Join(root, filepath.FromSlash(rulesFile))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating rules dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rule table: %w", err)
	}
	return nil
}

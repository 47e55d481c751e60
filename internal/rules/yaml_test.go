package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(dir, Default()))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Rules(), loaded.Rules())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_InvalidTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules", "categories.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	bad := `rules:
  - category: Fuel
    itc_eligible: true
    itc_rate: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule table")
}

func TestLoad_EditedTableKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules", "categories.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	table := `rules:
  - category: Hotshot Runs
    keywords: [HOTSHOT]
    direction: credit
  - category: Fuel
    keywords: [SHELL]
    itc_eligible: true
    itc_rate: 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, s.Rules(), 2)
	assert.Equal(t, "Hotshot Runs", s.Rules()[0].Category)

	r, ok := s.Match("SHELL 4411", DirectionDebit)
	require.True(t, ok)
	assert.Equal(t, "Fuel", r.Category)
}

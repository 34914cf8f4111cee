package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 32, cfg.Pipeline.CacheSize)
	assert.Equal(t, int64(42), cfg.Pipeline.ClusterSeed)
	assert.Equal(t, "2022-08-16", cfg.Pipeline.PolicySplitDate)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
  format: text
pipeline:
  cache_size: 8
  cluster_count: 3
  policy_split_date: "2009-02-17"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 8, cfg.Pipeline.CacheSize)
	assert.Equal(t, 3, cfg.Pipeline.ClusterCount)
	assert.Equal(t, "2009-02-17", cfg.Pipeline.PolicySplitDate)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, int64(42), cfg.Pipeline.ClusterSeed)
	assert.Equal(t, 50, cfg.Pipeline.TopNRecipients)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  cache_size: 8\n"), 0644))

	t.Setenv("FEDSPEND_PIPELINE_CACHE_SIZE", "16")
	t.Setenv("FEDSPEND_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Pipeline.CacheSize)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidSplitDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline:\n  cache_size: 4\n  cluster_count: 2\n  policy_split_date: \"16-08-2022\"\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "policy split date")
}

func TestCategoryOrdering(t *testing.T) {
	// Solar must precede Wind, and both precede the hydro bucket whose
	// "turbine" keyword would otherwise swallow wind turbine awards.
	labels := make([]string, 0, len(TechnologyCategories))
	for _, cat := range TechnologyCategories {
		labels = append(labels, cat.Label)
	}
	assert.Equal(t, "Solar", labels[0])
	assert.Equal(t, "Wind", labels[1])

	solarIdx, hydroIdx := -1, -1
	for i, l := range labels {
		switch l {
		case "Solar":
			solarIdx = i
		case "Hydroelectric":
			hydroIdx = i
		}
	}
	assert.Less(t, solarIdx, hydroIdx)
}

func TestLoadCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `
technology:
  - label: Nuclear
    keywords: [nuclear, reactor]
  - label: Fusion
    keywords: [fusion, tokamak]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cf, err := LoadCategories(path)
	require.NoError(t, err)

	require.Len(t, cf.Technology, 2)
	assert.Equal(t, "Nuclear", cf.Technology[0].Label)
	assert.Equal(t, "Fusion", cf.Technology[1].Label)
	// Absent recipient list falls back to the built-in ordering.
	assert.Equal(t, RecipientTypes, cf.Recipient)
}

func TestLoadCategories_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("technology:\n  - label: \"\"\n    keywords: [x]\n"), 0644))

	_, err := LoadCategories(path)
	assert.Error(t, err)
}

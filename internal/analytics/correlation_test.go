package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedspend/internal/dataset"
	"fedspend/pkg/contracts/domain"
)

func correlationTable() dataset.Table {
	// rising tracks the target exactly, falling inverts it, noise is flat.
	table := make(dataset.Table, 0, 10)
	for i := 0; i < 10; i++ {
		v := float64(i + 1)
		table = append(table, dataset.Row{
			"award_amount": v * 1000,
			"rising":       v,
			"falling":      -v,
			"noise":        7.0,
			"label":        "text column",
		})
	}
	return table
}

func TestAnalyzeCorrelationsExplicitFeatures(t *testing.T) {
	result := AnalyzeCorrelations(correlationTable(), "award_amount", []string{"rising", "falling"})
	require.Equal(t, domain.StatusOK, result.Status)
	require.Len(t, result.Correlations, 2)

	assert.Equal(t, "rising", result.StrongestPositive)
	assert.Equal(t, "falling", result.StrongestNegative)

	for _, c := range result.Correlations {
		assert.True(t, c.Significant, "feature %s", c.Feature)
	}
}

func TestAnalyzeCorrelationsAutoDetectsNumericFeatures(t *testing.T) {
	result := AnalyzeCorrelations(correlationTable(), "award_amount", nil)
	require.Equal(t, domain.StatusOK, result.Status)

	features := make([]string, len(result.Correlations))
	for i, c := range result.Correlations {
		features[i] = c.Feature
	}
	assert.Contains(t, features, "rising")
	assert.Contains(t, features, "falling")
	assert.Contains(t, features, "noise")
	assert.NotContains(t, features, "label")
	assert.NotContains(t, features, "award_amount")
}

func TestAnalyzeCorrelationsRanksByMagnitude(t *testing.T) {
	result := AnalyzeCorrelations(correlationTable(), "award_amount", nil)
	require.Equal(t, domain.StatusOK, result.Status)

	for i := 1; i < len(result.Correlations); i++ {
		assert.GreaterOrEqual(t,
			abs(result.Correlations[i-1].Correlation),
			abs(result.Correlations[i].Correlation))
	}
}

func TestAnalyzeCorrelationsMissingTarget(t *testing.T) {
	result := AnalyzeCorrelations(correlationTable(), "no_such_column", nil)
	assert.Equal(t, domain.StatusInsufficientData, result.Status)

	result = AnalyzeCorrelations(nil, "award_amount", nil)
	assert.Equal(t, domain.StatusInsufficientData, result.Status)
}

func TestAnalyzeCorrelationsSkipsSparseFeatures(t *testing.T) {
	table := dataset.Table{
		{"award_amount": 100.0, "sparse": 1.0},
		{"award_amount": 200.0},
		{"award_amount": 300.0},
	}

	result := AnalyzeCorrelations(table, "award_amount", []string{"sparse", "missing"})
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Empty(t, result.Correlations, "single pairing cannot correlate")
	assert.Empty(t, result.StrongestPositive)
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedspend/pkg/contracts/domain"
)

func TestGenerateInsightsFullInput(t *testing.T) {
	funding, ok := Summarize([]float64{1000000, 2000000, 3000000})
	require.True(t, ok)

	geo := AnalyzeGeographicPatterns([]domain.SummaryRow{
		{Key: "CA", TotalFunding: 4000000},
		{Key: "TX", TotalFunding: 2000000},
	})

	trend := domain.TrendResult{Status: domain.StatusOK, Direction: domain.TrendIncreasing, Strength: 0.9}

	insights := GenerateInsights(InsightInput{
		Funding:    &funding,
		Geographic: &geo,
		Technology: []domain.SummaryRow{{Key: "Solar", TotalFunding: 5000000}},
		Trend:      &trend,
	})

	require.Len(t, insights, 5)

	assert.Equal(t, "summary", insights[0].Type)
	assert.Equal(t, "Funding Overview", insights[0].Title)
	assert.Equal(t, "Total funding of $6,000,000 across 3 awards", insights[0].Description)

	assert.Equal(t, "Average Award Size", insights[1].Title)
	assert.Equal(t, "Average award size is $2,000,000", insights[1].Description)

	assert.Equal(t, "geographic", insights[2].Type)
	assert.Equal(t, "CA leads with $4,000,000", insights[2].Description)

	assert.Equal(t, "technology", insights[3].Type)
	assert.Equal(t, "Solar receives the most funding with $5,000,000", insights[3].Description)

	assert.Equal(t, "trend", insights[4].Type)
	assert.Equal(t, "Funding is increasing over time", insights[4].Description)
	assert.Equal(t, 0.9, insights[4].Value)
}

func TestGenerateInsightsSkipsMissingInputs(t *testing.T) {
	assert.Empty(t, GenerateInsights(InsightInput{}))

	trend := domain.TrendResult{Status: domain.StatusInsufficientData}
	assert.Empty(t, GenerateInsights(InsightInput{Trend: &trend}))

	geo := domain.GeographicPatterns{Status: domain.StatusInsufficientData}
	assert.Empty(t, GenerateInsights(InsightInput{Geographic: &geo}))
}

func TestGenerateInsightsPartialInput(t *testing.T) {
	insights := GenerateInsights(InsightInput{
		Technology: []domain.SummaryRow{{Key: "Wind", TotalFunding: 1234567}},
	})
	require.Len(t, insights, 1)
	assert.Equal(t, "technology", insights[0].Type)
	assert.Equal(t, "Wind receives the most funding with $1,234,567", insights[0].Description)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1234567.89, "1,234,568"},
		{-50000, "-50,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "input %v", tt.in)
	}
}

package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedspend/internal/dataset"
	"fedspend/pkg/contracts/domain"
)

var policySplit = time.Date(2022, 8, 16, 0, 0, 0, 0, time.UTC)

func periodTable(before, after []float64) dataset.Table {
	table := make(dataset.Table, 0, len(before)+len(after))
	for i, v := range before {
		table = append(table, dataset.Row{
			"start_date":   fmt.Sprintf("2020-01-%02d", i+1),
			"award_amount": v,
		})
	}
	for i, v := range after {
		table = append(table, dataset.Row{
			"start_date":   fmt.Sprintf("2023-01-%02d", i+1),
			"award_amount": v,
		})
	}
	return table
}

func TestComparePeriods(t *testing.T) {
	table := periodTable([]float64{100, 200, 300}, []float64{400, 500, 600, 700})

	result := ComparePeriods(table, "start_date", "award_amount", policySplit)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, "2022-08-16", result.SplitDate)

	assert.Equal(t, 3, result.Before.Count)
	assert.Equal(t, 4, result.After.Count)
	assert.InDelta(t, 200.0, result.Before.Mean, 1e-9)
	assert.InDelta(t, 550.0, result.After.Mean, 1e-9)

	meanChange := result.Changes["mean"]
	assert.InDelta(t, 350.0, meanChange.Absolute, 1e-9)
	assert.InDelta(t, 175.0, meanChange.Percent, 1e-9)

	totalChange := result.Changes["total"]
	assert.InDelta(t, 1600.0, totalChange.Absolute, 1e-9)

	countChange := result.Changes["count"]
	assert.InDelta(t, 1.0, countChange.Absolute, 1e-9)

	require.NotNil(t, result.Test)
	assert.True(t, result.Test.SignificantDifference)
}

func TestComparePeriodsSplitDateFallsAfter(t *testing.T) {
	table := dataset.Table{
		{"start_date": "2022-08-15", "award_amount": 100.0},
		{"start_date": "2022-08-16", "award_amount": 200.0},
	}

	result := ComparePeriods(table, "start_date", "award_amount", policySplit)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, 1, result.Before.Count)
	assert.Equal(t, 1, result.After.Count)
	assert.Nil(t, result.Test, "single observations cannot be tested")
}

func TestComparePeriodsEmptyPartition(t *testing.T) {
	tests := []struct {
		name  string
		table dataset.Table
	}{
		{"all before", periodTable([]float64{1, 2, 3}, nil)},
		{"all after", periodTable(nil, []float64{1, 2, 3})},
		{"empty table", nil},
		{"missing columns", dataset.Table{{"other": 1.0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComparePeriods(tt.table, "start_date", "award_amount", policySplit)
			assert.Equal(t, domain.StatusInsufficientDataForComparison, result.Status)
		})
	}
}

func TestComparePeriodsSkipsUnparsableRows(t *testing.T) {
	table := periodTable([]float64{100, 200}, []float64{300, 400})
	table = append(table, dataset.Row{"start_date": "garbage", "award_amount": 999.0})
	table = append(table, dataset.Row{"start_date": "2023-05-01", "award_amount": "not a number"})

	result := ComparePeriods(table, "start_date", "award_amount", policySplit)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, 2, result.Before.Count)
	assert.Equal(t, 2, result.After.Count)
}

package analytics

import (
	"time"

	"fedspend/internal/dataset"
	"fedspend/pkg/contracts/domain"
)

// ComparePeriods partitions the table at the split date (before: date <
// split, after: date >= split) and contrasts the value distributions.
// An empty partition yields the insufficient_data_for_comparison marker.
// When both partitions carry at least two observations, a pooled two-sample
// t-test on the means is included.
func ComparePeriods(table dataset.Table, dateColumn, valueColumn string, split time.Time) domain.PeriodComparison {
	result := domain.PeriodComparison{SplitDate: split.Format("2006-01-02")}

	if len(table) == 0 || !table.HasColumn(dateColumn) || !table.HasColumn(valueColumn) {
		result.Status = domain.StatusInsufficientDataForComparison
		return result
	}

	var before, after []float64
	for _, row := range table {
		date, okDate := row.Time(dateColumn)
		value, okValue := row.Float(valueColumn)
		if !okDate || !okValue {
			continue
		}
		if date.Before(split) {
			before = append(before, value)
		} else {
			after = append(after, value)
		}
	}

	if len(before) == 0 || len(after) == 0 {
		result.Status = domain.StatusInsufficientDataForComparison
		return result
	}

	beforeStats, _ := Summarize(before)
	afterStats, _ := Summarize(after)
	result.Status = domain.StatusOK
	result.Before = beforeStats
	result.After = afterStats
	result.Changes = metricChanges(beforeStats, afterStats)

	if test, ok := tTestIndependent(before, after); ok {
		result.Test = &test
	}

	return result
}

// metricChanges computes the absolute and percent deltas of the headline
// statistics. Percent change is zero when the before value is zero.
func metricChanges(before, after domain.SummaryStatistics) map[string]domain.MetricChange {
	pairs := map[string][2]float64{
		"mean":   {before.Mean, after.Mean},
		"median": {before.Median, after.Median},
		"total":  {before.Total, after.Total},
		"count":  {float64(before.Count), float64(after.Count)},
	}

	changes := make(map[string]domain.MetricChange, len(pairs))
	for metric, pair := range pairs {
		change := domain.MetricChange{Absolute: pair[1] - pair[0]}
		if pair[0] != 0 {
			change.Percent = (pair[1] - pair[0]) / pair[0] * 100
		}
		changes[metric] = change
	}
	return changes
}

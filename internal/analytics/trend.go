package analytics

import (
	"sort"
	"time"

	"fedspend/pkg/contracts/domain"
)

// TimePoint is one dated observation of a value series.
type TimePoint struct {
	Date  time.Time
	Value float64
}

const (
	minTrendPoints    = 3
	minSeasonalPoints = 12
)

// DetectTrend fits an ordinary least-squares line against the sequential
// index of the date-sorted series and classifies the direction: increasing
// or decreasing when the slope is significant at p < 0.05, stable otherwise.
// Fewer than 3 points yield the insufficient_data marker, never an error.
// With at least 12 points a calendar-month seasonal profile is included.
func DetectTrend(points []TimePoint) domain.TrendResult {
	if len(points) < minTrendPoints {
		return domain.TrendResult{
			Status:     domain.StatusInsufficientData,
			DataPoints: len(points),
		}
	}

	sorted := append([]TimePoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	x := make([]float64, len(sorted))
	y := make([]float64, len(sorted))
	for i, pt := range sorted {
		x[i] = float64(i)
		y[i] = pt.Value
	}

	slope, _, r, p := linearFit(x, y)

	direction := domain.TrendStable
	if p < SignificanceLevel {
		if slope > 0 {
			direction = domain.TrendIncreasing
		} else if slope < 0 {
			direction = domain.TrendDecreasing
		}
	}

	result := domain.TrendResult{
		Status:     domain.StatusOK,
		Direction:  direction,
		Strength:   abs(r),
		Slope:      slope,
		RSquared:   r * r,
		PValue:     p,
		DataPoints: len(sorted),
	}

	if len(sorted) >= minSeasonalPoints {
		result.SeasonalPattern = seasonalProfile(sorted)
	}

	return result
}

// seasonalProfile averages values by calendar month.
func seasonalProfile(points []TimePoint) map[int]float64 {
	totals := make(map[int]float64)
	counts := make(map[int]int)
	for _, pt := range points {
		month := int(pt.Date.Month())
		totals[month] += pt.Value
		counts[month]++
	}

	profile := make(map[int]float64, len(totals))
	for month, total := range totals {
		profile[month] = total / float64(counts[month])
	}
	return profile
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedspend/pkg/contracts/domain"
)

func monthlyPoints(values []float64) []TimePoint {
	points := make([]TimePoint, len(values))
	for i, v := range values {
		points[i] = TimePoint{
			Date:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			Value: v,
		}
	}
	return points
}

func TestDetectTrendInsufficientData(t *testing.T) {
	for _, points := range [][]TimePoint{nil, monthlyPoints([]float64{1}), monthlyPoints([]float64{1, 2})} {
		result := DetectTrend(points)
		assert.Equal(t, domain.StatusInsufficientData, result.Status)
		assert.Equal(t, len(points), result.DataPoints)
	}
}

func TestDetectTrendIncreasing(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = float64((i + 1) * 100000)
	}

	result := DetectTrend(monthlyPoints(values))
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, domain.TrendIncreasing, result.Direction)
	assert.InDelta(t, 100000.0, result.Slope, 1e-6)
	assert.InDelta(t, 1.0, result.RSquared, 1e-9)
	assert.Less(t, result.PValue, SignificanceLevel)
	assert.Equal(t, 12, result.DataPoints)
	require.NotNil(t, result.SeasonalPattern)
	assert.Len(t, result.SeasonalPattern, 12)
}

func TestDetectTrendDecreasing(t *testing.T) {
	result := DetectTrend(monthlyPoints([]float64{100, 90, 80, 70, 60, 50}))
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, domain.TrendDecreasing, result.Direction)
	assert.Negative(t, result.Slope)
}

func TestDetectTrendStableWhenNoisy(t *testing.T) {
	result := DetectTrend(monthlyPoints([]float64{50, 80, 20, 70, 40, 60}))
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, domain.TrendStable, result.Direction)
	assert.GreaterOrEqual(t, result.PValue, SignificanceLevel)
}

func TestDetectTrendSortsByDate(t *testing.T) {
	points := monthlyPoints([]float64{10, 20, 30, 40, 50, 60})
	shuffled := []TimePoint{points[3], points[0], points[5], points[1], points[4], points[2]}

	result := DetectTrend(shuffled)
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Equal(t, domain.TrendIncreasing, result.Direction)
	assert.InDelta(t, 10.0, result.Slope, 1e-9)
}

func TestDetectTrendSeasonalProfileBelowYear(t *testing.T) {
	result := DetectTrend(monthlyPoints([]float64{10, 20, 30, 40, 50, 60}))
	require.Equal(t, domain.StatusOK, result.Status)
	assert.Nil(t, result.SeasonalPattern)
}

func TestSeasonalProfileAveragesByMonth(t *testing.T) {
	points := []TimePoint{
		{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Value: 100},
		{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Value: 300},
		{Date: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), Value: 50},
	}

	profile := seasonalProfile(points)
	assert.InDelta(t, 200.0, profile[1], 1e-9)
	assert.InDelta(t, 50.0, profile[6], 1e-9)
}

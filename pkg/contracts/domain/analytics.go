package domain

// Status marks whether an analytics call produced a result or an explicit
// insufficient-data sentinel. Sentinels are ordinary values, never errors.
type Status string

const (
	StatusOK                            Status = "ok"
	StatusInsufficientData              Status = "insufficient_data"
	StatusInsufficientDataForComparison Status = "insufficient_data_for_comparison"
	StatusInsufficientDataForClustering Status = "insufficient_data_for_clustering"
	StatusNoNumericFeatures             Status = "no_numeric_features_available"
)

// TrendDirection classifies the slope of a fitted time series.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// TrendResult holds the outcome of ordinary least-squares trend detection.
type TrendResult struct {
	Status     Status         `json:"status"`
	Direction  TrendDirection `json:"trend_direction,omitempty"`
	Strength   float64        `json:"trend_strength,omitempty"`
	Slope      float64        `json:"slope,omitempty"`
	RSquared   float64        `json:"r_squared,omitempty"`
	PValue     float64        `json:"p_value,omitempty"`
	DataPoints int            `json:"data_points"`

	// SeasonalPattern maps calendar month (1-12) to average value; populated
	// only when at least 12 points were supplied.
	SeasonalPattern map[int]float64 `json:"seasonal_pattern,omitempty"`
}

// FeatureCorrelation is one feature's Pearson correlation against the target.
type FeatureCorrelation struct {
	Feature     string  `json:"feature"`
	Correlation float64 `json:"correlation"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// CorrelationResult ranks candidate features by correlation magnitude.
type CorrelationResult struct {
	Status            Status               `json:"status"`
	Correlations      []FeatureCorrelation `json:"correlations"`
	StrongestPositive string               `json:"strongest_positive,omitempty"`
	StrongestNegative string               `json:"strongest_negative,omitempty"`
}

// SummaryStatistics describes the distribution of a numeric column.
type SummaryStatistics struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	Total    float64 `json:"total"`
	CV       float64 `json:"cv"`
}

// MetricChange is the absolute and percentage delta of one statistic
// between the before and after partitions.
type MetricChange struct {
	Absolute float64 `json:"change_abs"`
	Percent  float64 `json:"change_pct"`
}

// TTestResult reports an independent-samples mean comparison.
type TTestResult struct {
	TStatistic            float64 `json:"t_statistic"`
	PValue                float64 `json:"p_value"`
	SignificantDifference bool    `json:"significant_difference"`
}

// PeriodComparison contrasts the value distribution before and after a split date.
type PeriodComparison struct {
	Status    Status                  `json:"status"`
	Before    SummaryStatistics       `json:"before_period"`
	After     SummaryStatistics       `json:"after_period"`
	Changes   map[string]MetricChange `json:"changes,omitempty"`
	Test      *TTestResult            `json:"statistical_test,omitempty"`
	SplitDate string                  `json:"split_date"`
}

// GeographicPatterns measures the spatial concentration of funding.
type GeographicPatterns struct {
	Status            Status       `json:"status"`
	TotalStates       int          `json:"total_states"`
	StatesWithFunding int          `json:"states_with_funding"`
	GiniCoefficient   float64      `json:"gini_coefficient"`
	Top5Concentration float64      `json:"top_5_concentration"`
	Distribution      []SummaryRow `json:"geographic_distribution"`
	TopStates         []SummaryRow `json:"top_states"`
}

// ClusterResult summarizes a k-means partition of derived feature vectors.
type ClusterResult struct {
	Status           Status                     `json:"status"`
	Clusters         int                        `json:"n_clusters"`
	ClusterSummary   map[int]map[string]float64 `json:"cluster_summary,omitempty"`
	ClusterSizes     map[int]int                `json:"cluster_sizes,omitempty"`
	FeaturesUsed     []string                   `json:"features_used,omitempty"`
	RecordsClustered int                        `json:"total_records_clustered"`
}

// Insight is one automated, human-readable statement about the dataset.
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Metric      string  `json:"metric"`
}

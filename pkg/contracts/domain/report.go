package domain

// DataSummary describes the consolidated dataset at a glance.
type DataSummary struct {
	TotalRecords      int     `json:"total_records"`
	DateRangeStart    string  `json:"date_range_start,omitempty"`
	DateRangeEnd      string  `json:"date_range_end,omitempty"`
	TotalFunding      float64 `json:"total_funding"`
	DuplicatesDropped int     `json:"duplicates_dropped"`
}

// DatasetStatistics is the summary-statistics view of the dataset.
type DatasetStatistics struct {
	TotalRecords              int                `json:"total_records"`
	UniqueRecipients          int                `json:"unique_recipients"`
	UniqueStates              int                `json:"unique_states"`
	Funding                   *SummaryStatistics `json:"funding,omitempty"`
	TechnologyDistribution    map[string]int     `json:"technology_distribution,omitempty"`
	RecipientTypeDistribution map[string]int     `json:"recipient_type_distribution,omitempty"`
}

// GeographicAnalysis bundles the per-state summary with concentration
// patterns and the matching insights.
type GeographicAnalysis struct {
	StateSummary []SummaryRow       `json:"state_summary"`
	Patterns     GeographicPatterns `json:"patterns"`
	Insights     []Insight          `json:"insights"`
}

// TechnologyAnalysis bundles the per-technology summary with insights.
type TechnologyAnalysis struct {
	TechnologySummary []SummaryRow `json:"technology_summary"`
	Insights          []Insight    `json:"insights"`
}

// RecipientAnalysis bundles the top-recipient summary with the clustering
// of derived recipient features.
type RecipientAnalysis struct {
	RecipientSummary []SummaryRow  `json:"recipient_summary"`
	Clustering       ClusterResult `json:"clustering"`
	Insights         []Insight     `json:"insights"`
}

// TimelineAnalysis bundles the resampled series with trend detection and
// the policy-split period comparison.
type TimelineAnalysis struct {
	MonthlySeries    []PeriodRow      `json:"monthly_series"`
	QuarterlySeries  []PeriodRow      `json:"quarterly_series"`
	Trends           TrendResult      `json:"trends"`
	PeriodComparison PeriodComparison `json:"period_comparison"`
	Insights         []Insight        `json:"insights"`
}

// ComprehensiveReport is the full analysis across all dimensions.
type ComprehensiveReport struct {
	Summary         DataSummary        `json:"data_summary"`
	Geographic      GeographicAnalysis `json:"geographic"`
	Technology      TechnologyAnalysis `json:"technology"`
	Recipients      RecipientAnalysis  `json:"recipients"`
	Timeline        TimelineAnalysis   `json:"timeline"`
	OverallInsights []Insight          `json:"overall_insights"`
}

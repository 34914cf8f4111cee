package domain

import "time"

// SummaryRow is one row of an aggregated table: one distinct group-key value
// with the derived metric columns. All summary tables in the pipeline are
// produced by the aggregate package; nothing else computes these columns.
type SummaryRow struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`

	TotalFunding     float64 `json:"total_funding"`
	AwardCount       int     `json:"award_count"`
	AvgAwardSize     float64 `json:"avg_award_size"`
	UniqueRecipients int     `json:"unique_recipients,omitempty"`

	// FundingShare is the row's percentage of the grand total, populated
	// only when share computation was requested.
	FundingShare float64 `json:"funding_share,omitempty"`

	// Recipient-summary extras: first-seen state and modal technology.
	PrimaryState      string `json:"primary_state,omitempty"`
	PrimaryTechnology string `json:"primary_technology,omitempty"`
	RecipientType     string `json:"recipient_type,omitempty"`
}

// PeriodGranularity selects the calendar truncation for time bucketing.
type PeriodGranularity string

const (
	PeriodMonthly    PeriodGranularity = "monthly"
	PeriodQuarterly  PeriodGranularity = "quarterly"
	PeriodFiscalYear PeriodGranularity = "yearly"
)

// PeriodRow is one chronological bucket of the time-series table.
// Growth fields are nil where no prior period exists to compare against.
type PeriodRow struct {
	Period time.Time `json:"period"`
	Label  string    `json:"label"`

	TotalFunding      float64 `json:"total_funding"`
	AwardCount        int     `json:"award_count"`
	UniqueRecipients  int     `json:"unique_recipients"`
	CumulativeFunding float64 `json:"cumulative_funding"`

	GrowthPct    *float64 `json:"total_funding_growth,omitempty"`
	YoYGrowthPct *float64 `json:"total_funding_yoy_growth,omitempty"`
}

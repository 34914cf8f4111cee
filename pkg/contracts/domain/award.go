package domain

import "time"

// SourceKind identifies the logical collection dimension a batch came from.
type SourceKind string

const (
	// SourceTimePeriod marks batches collected per named time window.
	SourceTimePeriod SourceKind = "time_period"
	// SourceCFDA marks batches collected per assistance-listing (CFDA) code.
	SourceCFDA SourceKind = "cfda_specific"
	// SourceKeyword marks batches collected per search keyword.
	SourceKeyword SourceKind = "keyword_specific"
)

// Award represents one normalized federal funding transaction.
// Awards are immutable once categorization has run.
type Award struct {
	ID             string  `json:"award_id"`
	Amount         float64 `json:"award_amount"`
	RecipientName  string  `json:"recipient_name"`
	Description    string  `json:"description"`
	AwardType      string  `json:"award_type"`
	AwardingAgency string  `json:"awarding_agency"`

	// Dates are nil when the upstream value was unparsable.
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	StateCode string `json:"state_code"`
	StateName string `json:"state_name"`

	// Derived by the pipeline, never present on input.
	TechnologyCategory string `json:"technology_category,omitempty"`
	RecipientType      string `json:"recipient_type,omitempty"`
	SizeCategory       string `json:"award_size_category,omitempty"`
	FiscalYear         int    `json:"fiscal_year,omitempty"`
	Quarter            int    `json:"quarter,omitempty"`
	Month              int    `json:"month,omitempty"`
	YearMonth          string `json:"year_month,omitempty"`

	// Provenance, used for audit and filtering but never for dedup keying.
	SourceTag          string     `json:"source_tag,omitempty"`
	DataSource         SourceKind `json:"data_source,omitempty"`
	SourceBatch        string     `json:"source_batch,omitempty"`
	TimePeriodCategory string     `json:"time_period_category,omitempty"`
	PrimaryKeyword     string     `json:"primary_keyword,omitempty"`
}

// HasStartDate reports whether the award carries a parsable start date.
func (a Award) HasStartDate() bool {
	return a.StartDate != nil && !a.StartDate.IsZero()
}

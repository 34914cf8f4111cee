package exporter

import (
	"fmt"

	"fedspend/pkg/contracts/domain"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatOptionalPct formats a nullable growth percentage; nil renders empty.
func formatOptionalPct(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

// summaryHeaders are the columns of an exported summary table.
var summaryHeaders = []string{
	"key", "label", "total_funding", "award_count", "avg_award_size",
	"unique_recipients", "funding_share",
}

// summaryRecord renders one summary row for CSV or Excel output.
func summaryRecord(row domain.SummaryRow) []string {
	return []string{
		row.Key,
		row.Label,
		formatFloat(row.TotalFunding),
		formatInt(row.AwardCount),
		formatFloat(row.AvgAwardSize),
		formatInt(row.UniqueRecipients),
		formatFloat(row.FundingShare),
	}
}

// timeSeriesHeaders are the columns of an exported time-series table.
var timeSeriesHeaders = []string{
	"period", "total_funding", "award_count", "unique_recipients",
	"cumulative_funding", "total_funding_growth", "total_funding_yoy_growth",
}

// timeSeriesRecord renders one period row for CSV or Excel output.
func timeSeriesRecord(row domain.PeriodRow) []string {
	return []string{
		row.Label,
		formatFloat(row.TotalFunding),
		formatInt(row.AwardCount),
		formatInt(row.UniqueRecipients),
		formatFloat(row.CumulativeFunding),
		formatOptionalPct(row.GrowthPct),
		formatOptionalPct(row.YoYGrowthPct),
	}
}

// awardHeaders are the columns of the exported consolidated award table.
var awardHeaders = []string{
	"award_id", "award_amount", "recipient_name", "description", "start_date",
	"end_date", "state_code", "state_name", "technology_category",
	"recipient_type", "award_size_category", "data_source", "source_batch",
}

// awardRecord renders one award for CSV or Excel output.
func awardRecord(a domain.Award) []string {
	start, end := "", ""
	if a.HasStartDate() {
		start = a.StartDate.Format("2006-01-02")
	}
	if a.EndDate != nil && !a.EndDate.IsZero() {
		end = a.EndDate.Format("2006-01-02")
	}
	return []string{
		a.ID,
		formatFloat(a.Amount),
		a.RecipientName,
		a.Description,
		start,
		end,
		a.StateCode,
		a.StateName,
		a.TechnologyCategory,
		a.RecipientType,
		a.SizeCategory,
		string(a.DataSource),
		a.SourceBatch,
	}
}

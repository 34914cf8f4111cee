package dataprocessing

import (
	"sort"
	"strconv"
	"strings"

	pipeerr "fedspend/internal/errors"
	"fedspend/pkg/contracts/domain"
)

// AggregateOptions configures a group-by computation.
type AggregateOptions struct {
	// WithShare adds each group's percentage of the grand total funding.
	WithShare bool
	// TopN truncates the ranked result; 0 keeps every group.
	TopN int
	// Ascending reverses the default descending total-funding sort.
	Ascending bool
}

// groupAccumulator collects the reducer state for one group partition.
type groupAccumulator struct {
	key        string
	label      string
	total      float64
	count      int
	recipients map[string]bool
	firstState string
	firstType  string
	techCounts map[string]int
}

// Aggregate partitions awards by the given field and computes the derived
// metric columns: total_funding, award_count, avg_award_size and the
// distinct recipient count. The sum of per-group total funding always equals
// the sum of the input amounts.
//
// Composite keys are supported by passing multiple fields; group keys are
// joined with "|". Unknown fields fail the call with the offending name.
func Aggregate(awards []domain.Award, opts AggregateOptions, fields ...string) ([]domain.SummaryRow, error) {
	if len(fields) == 0 {
		return nil, pipeerr.UnknownGroupKeyError("")
	}
	for _, f := range fields {
		if !knownGroupField(f) {
			return nil, pipeerr.UnknownGroupKeyError(f)
		}
	}

	groups := make(map[string]*groupAccumulator)

	for _, award := range awards {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = groupFieldValue(award, f)
		}
		key := strings.Join(parts, "|")

		acc, ok := groups[key]
		if !ok {
			acc = &groupAccumulator{
				key:        key,
				label:      groupLabel(award, fields[0]),
				recipients: make(map[string]bool),
				techCounts: make(map[string]int),
				firstState: award.StateCode,
				firstType:  award.RecipientType,
			}
			groups[key] = acc
		}

		acc.total += award.Amount
		acc.count++
		if award.RecipientName != "" {
			acc.recipients[award.RecipientName] = true
		}
		if award.TechnologyCategory != "" {
			acc.techCounts[award.TechnologyCategory]++
		}
	}

	grandTotal := 0.0
	rows := make([]domain.SummaryRow, 0, len(groups))
	for _, acc := range groups {
		row := domain.SummaryRow{
			Key:              acc.key,
			Label:            acc.label,
			TotalFunding:     acc.total,
			AwardCount:       acc.count,
			UniqueRecipients: len(acc.recipients),
			PrimaryState:     acc.firstState,
			RecipientType:    acc.firstType,
		}
		if acc.count > 0 {
			row.AvgAwardSize = acc.total / float64(acc.count)
		}
		row.PrimaryTechnology = modalTechnology(acc.techCounts)
		grandTotal += acc.total
		rows = append(rows, row)
	}

	if opts.WithShare && grandTotal > 0 {
		for i := range rows {
			rows[i].FundingShare = rows[i].TotalFunding / grandTotal * 100
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalFunding != rows[j].TotalFunding {
			if opts.Ascending {
				return rows[i].TotalFunding < rows[j].TotalFunding
			}
			return rows[i].TotalFunding > rows[j].TotalFunding
		}
		return rows[i].Key < rows[j].Key
	})

	if opts.TopN > 0 && len(rows) > opts.TopN {
		rows = rows[:opts.TopN]
	}

	return rows, nil
}

// modalTechnology returns the most frequent technology category, breaking
// ties alphabetically so the result is deterministic.
func modalTechnology(counts map[string]int) string {
	best := ""
	bestCount := 0
	for tech, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || tech < best)) {
			best = tech
			bestCount = count
		}
	}
	return best
}

// knownGroupField reports whether the field is a valid grouping key.
func knownGroupField(field string) bool {
	switch field {
	case "state_code", "state_name", "technology_category", "recipient_type",
		"recipient_name", "award_type", "awarding_agency", "award_size_category",
		"data_source", "time_period_category", "source_batch", "fiscal_year",
		"quarter", "month":
		return true
	}
	return false
}

// groupFieldValue extracts the grouping value for a known field.
func groupFieldValue(award domain.Award, field string) string {
	switch field {
	case "state_code":
		return award.StateCode
	case "state_name":
		return award.StateName
	case "technology_category":
		return award.TechnologyCategory
	case "recipient_type":
		return award.RecipientType
	case "recipient_name":
		return award.RecipientName
	case "award_type":
		return award.AwardType
	case "awarding_agency":
		return award.AwardingAgency
	case "award_size_category":
		return award.SizeCategory
	case "data_source":
		return string(award.DataSource)
	case "time_period_category":
		return award.TimePeriodCategory
	case "source_batch":
		return award.SourceBatch
	case "fiscal_year":
		return strconv.Itoa(award.FiscalYear)
	case "quarter":
		return strconv.Itoa(award.Quarter)
	case "month":
		return strconv.Itoa(award.Month)
	}
	return ""
}

// groupLabel supplies a human-readable label for the primary group field.
func groupLabel(award domain.Award, field string) string {
	if field == "state_code" && award.StateName != "" {
		return award.StateName
	}
	return groupFieldValue(award, field)
}

package analytics

import (
	"fmt"

	"fedspend/pkg/contracts/domain"
)

// InsightInput carries the analytics outputs the insight rules examine.
// Any field may be nil or empty; the corresponding rules are skipped.
type InsightInput struct {
	Funding    *domain.SummaryStatistics
	Geographic *domain.GeographicPatterns
	Technology []domain.SummaryRow
	Trend      *domain.TrendResult
}

// GenerateInsights applies the fixed, ordered rule set and returns the
// insights whose inputs were available. A rule with missing or empty input
// is skipped silently; no partial insight is ever emitted.
func GenerateInsights(input InsightInput) []domain.Insight {
	insights := []domain.Insight{}

	if s := input.Funding; s != nil && s.Count > 0 {
		insights = append(insights, domain.Insight{
			Type:        "summary",
			Title:       "Funding Overview",
			Description: fmt.Sprintf("Total funding of $%s across %d awards", formatAmount(s.Total), s.Count),
			Value:       s.Total,
			Metric:      "total_funding",
		})
		insights = append(insights, domain.Insight{
			Type:        "summary",
			Title:       "Average Award Size",
			Description: fmt.Sprintf("Average award size is $%s", formatAmount(s.Mean)),
			Value:       s.Mean,
			Metric:      "avg_award_size",
		})
	}

	if g := input.Geographic; g != nil && g.Status == domain.StatusOK && len(g.TopStates) > 0 {
		top := g.TopStates[0]
		insights = append(insights, domain.Insight{
			Type:        "geographic",
			Title:       "Top State for Funding",
			Description: fmt.Sprintf("%s leads with $%s", top.Key, formatAmount(top.TotalFunding)),
			Value:       top.TotalFunding,
			Metric:      "state_funding",
		})
	}

	if len(input.Technology) > 0 {
		top := input.Technology[0]
		insights = append(insights, domain.Insight{
			Type:        "technology",
			Title:       "Leading Technology",
			Description: fmt.Sprintf("%s receives the most funding with $%s", top.Key, formatAmount(top.TotalFunding)),
			Value:       top.TotalFunding,
			Metric:      "technology_funding",
		})
	}

	if t := input.Trend; t != nil && t.Status == domain.StatusOK {
		insights = append(insights, domain.Insight{
			Type:        "trend",
			Title:       "Funding Trend",
			Description: fmt.Sprintf("Funding is %s over time", t.Direction),
			Value:       t.Strength,
			Metric:      "trend_strength",
		})
	}

	return insights
}

// formatAmount renders a dollar amount with thousands separators and no
// decimal places.
func formatAmount(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	whole := fmt.Sprintf("%.0f", v)
	out := make([]byte, 0, len(whole)+len(whole)/3)
	for i, digit := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

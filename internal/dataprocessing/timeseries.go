package dataprocessing

import (
	"fmt"
	"sort"
	"time"

	"fedspend/internal/config"
	pipeerr "fedspend/internal/errors"
	"fedspend/pkg/contracts/domain"
)

// BuildTimeSeries buckets awards into calendar periods and computes the
// per-bucket metrics plus a running cumulative sum of total funding. Awards
// without a valid start date are skipped. Buckets are returned in
// chronological order; cumulative funding is non-decreasing because every
// surviving award has a positive amount.
//
// Period-over-period growth is nil for the first bucket (no prior period)
// and for buckets following a zero-funding period. Year-over-year growth is
// populated only once at least 12 periods exist.
func BuildTimeSeries(awards []domain.Award, granularity domain.PeriodGranularity) ([]domain.PeriodRow, error) {
	switch granularity {
	case domain.PeriodMonthly, domain.PeriodQuarterly, domain.PeriodFiscalYear:
	default:
		return nil, pipeerr.UnknownPeriodError(string(granularity))
	}

	type bucket struct {
		total      float64
		count      int
		recipients map[string]bool
	}
	buckets := make(map[time.Time]*bucket)

	for _, award := range awards {
		if !award.HasStartDate() {
			continue
		}
		period := truncatePeriod(*award.StartDate, granularity)
		b, ok := buckets[period]
		if !ok {
			b = &bucket{recipients: make(map[string]bool)}
			buckets[period] = b
		}
		b.total += award.Amount
		b.count++
		if award.RecipientName != "" {
			b.recipients[award.RecipientName] = true
		}
	}

	periods := make([]time.Time, 0, len(buckets))
	for p := range buckets {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	rows := make([]domain.PeriodRow, 0, len(periods))
	cumulative := 0.0
	for _, p := range periods {
		b := buckets[p]
		cumulative += b.total
		rows = append(rows, domain.PeriodRow{
			Period:            p,
			Label:             periodLabel(p, granularity),
			TotalFunding:      b.total,
			AwardCount:        b.count,
			UniqueRecipients:  len(b.recipients),
			CumulativeFunding: cumulative,
		})
	}

	applyGrowthRates(rows)
	return rows, nil
}

// applyGrowthRates fills the period-over-period and, when at least 12
// periods exist, year-over-year growth columns in place.
func applyGrowthRates(rows []domain.PeriodRow) {
	for i := range rows {
		if i > 0 && rows[i-1].TotalFunding != 0 {
			pct := (rows[i].TotalFunding - rows[i-1].TotalFunding) / rows[i-1].TotalFunding * 100
			rows[i].GrowthPct = &pct
		}
	}

	if len(rows) < config.MinimumYoYPeriods {
		return
	}
	for i := config.MinimumYoYPeriods; i < len(rows); i++ {
		base := rows[i-config.MinimumYoYPeriods].TotalFunding
		if base != 0 {
			pct := (rows[i].TotalFunding - base) / base * 100
			rows[i].YoYGrowthPct = &pct
		}
	}
}

// truncatePeriod maps a date onto the first day of its period.
func truncatePeriod(t time.Time, granularity domain.PeriodGranularity) time.Time {
	switch granularity {
	case domain.PeriodQuarterly:
		quarterStart := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
	case domain.PeriodFiscalYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// periodLabel renders the bucket label for reports.
func periodLabel(p time.Time, granularity domain.PeriodGranularity) string {
	switch granularity {
	case domain.PeriodQuarterly:
		return fmt.Sprintf("%d-Q%d", p.Year(), (int(p.Month())-1)/3+1)
	case domain.PeriodFiscalYear:
		return fmt.Sprintf("%d", p.Year())
	default:
		return p.Format("2006-01")
	}
}

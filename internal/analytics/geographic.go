package analytics

import (
	"sort"

	"fedspend/pkg/contracts/domain"
)

const topStatesCount = 5

// AnalyzeGeographicPatterns measures how concentrated funding is across the
// per-location summary rows produced by the aggregator. It reports the Gini
// coefficient over per-location totals, the combined share of the top 5
// locations, and the ranked distribution.
func AnalyzeGeographicPatterns(distribution []domain.SummaryRow) domain.GeographicPatterns {
	if len(distribution) == 0 {
		return domain.GeographicPatterns{Status: domain.StatusInsufficientData}
	}

	ranked := append([]domain.SummaryRow(nil), distribution...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalFunding != ranked[j].TotalFunding {
			return ranked[i].TotalFunding > ranked[j].TotalFunding
		}
		return ranked[i].Key < ranked[j].Key
	})

	totals := make([]float64, 0, len(ranked))
	grandTotal := 0.0
	withFunding := 0
	for _, row := range ranked {
		totals = append(totals, row.TotalFunding)
		grandTotal += row.TotalFunding
		if row.TotalFunding > 0 {
			withFunding++
		}
	}

	topN := topStatesCount
	if len(ranked) < topN {
		topN = len(ranked)
	}
	topShare := 0.0
	if grandTotal > 0 {
		topTotal := 0.0
		for _, row := range ranked[:topN] {
			topTotal += row.TotalFunding
		}
		topShare = topTotal / grandTotal * 100
	}

	return domain.GeographicPatterns{
		Status:            domain.StatusOK,
		TotalStates:       len(ranked),
		StatesWithFunding: withFunding,
		GiniCoefficient:   giniCoefficient(totals),
		Top5Concentration: topShare,
		Distribution:      ranked,
		TopStates:         ranked[:topN],
	}
}

// giniCoefficient measures inequality over non-negative values:
// 0 for a perfectly even distribution, approaching (n-1)/n when a single
// value holds everything. Computed as
// (n + 1 - 2*sum(cumulative sorted values)/sum(values)) / n over
// ascending-sorted values.
func giniCoefficient(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	total := 0.0
	cumulativeSum := 0.0
	running := 0.0
	for _, v := range sorted {
		running += v
		cumulativeSum += running
		total += v
	}
	if total == 0 {
		return 0
	}

	return (float64(n) + 1 - 2*cumulativeSum/total) / float64(n)
}

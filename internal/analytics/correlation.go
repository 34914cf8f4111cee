package analytics

import (
	"sort"

	"fedspend/internal/dataset"
	"fedspend/pkg/contracts/domain"
)

// AnalyzeCorrelations computes the Pearson correlation of every candidate
// feature against the target column and ranks features by correlation
// magnitude. When features is nil, every other numeric column of the table
// is used. Only rows where both target and feature are present contribute
// to a pairing.
func AnalyzeCorrelations(table dataset.Table, target string, features []string) domain.CorrelationResult {
	if len(table) == 0 || !table.HasColumn(target) {
		return domain.CorrelationResult{Status: domain.StatusInsufficientData}
	}

	if features == nil {
		for _, col := range table.NumericColumns() {
			if col != target {
				features = append(features, col)
			}
		}
	}

	correlations := make([]domain.FeatureCorrelation, 0, len(features))
	for _, feature := range features {
		if feature == target || !table.HasColumn(feature) {
			continue
		}

		var x, y []float64
		for _, row := range table {
			tv, okT := row.Float(target)
			fv, okF := row.Float(feature)
			if okT && okF {
				x = append(x, tv)
				y = append(y, fv)
			}
		}
		if len(x) < 2 {
			continue
		}

		r, p := pearson(x, y)
		correlations = append(correlations, domain.FeatureCorrelation{
			Feature:     feature,
			Correlation: r,
			PValue:      p,
			Significant: p < SignificanceLevel,
		})
	}

	result := domain.CorrelationResult{Status: domain.StatusOK, Correlations: correlations}
	if len(correlations) == 0 {
		return result
	}

	sort.Slice(result.Correlations, func(i, j int) bool {
		return abs(result.Correlations[i].Correlation) > abs(result.Correlations[j].Correlation)
	})

	strongestPos := correlations[0]
	strongestNeg := correlations[0]
	for _, c := range correlations {
		if c.Correlation > strongestPos.Correlation {
			strongestPos = c
		}
		if c.Correlation < strongestNeg.Correlation {
			strongestNeg = c
		}
	}
	result.StrongestPositive = strongestPos.Feature
	result.StrongestNegative = strongestNeg.Feature

	return result
}

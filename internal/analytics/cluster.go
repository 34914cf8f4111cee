package analytics

import (
	"math"
	"math/rand"

	"fedspend/internal/dataset"
	"fedspend/pkg/contracts/domain"
)

const kmeansMaxIterations = 100

// Cluster partitions the table's feature vectors into k groups with k-means.
// Features are standardized to zero mean and unit variance first so large
// columns cannot dominate the distance metric. When features is nil, every
// numeric column of the table is used. Centroid initialization draws from
// the supplied seed, so identical inputs and seed produce identical
// assignments.
//
// Rows missing any feature value are excluded. Fewer complete rows than k
// yield insufficient_data_for_clustering; an empty feature list yields
// no_numeric_features_available.
func Cluster(table dataset.Table, features []string, k int, seed int64) domain.ClusterResult {
	if len(table) == 0 {
		return domain.ClusterResult{Status: domain.StatusInsufficientDataForClustering}
	}

	if features == nil {
		features = table.NumericColumns()
	}
	if len(features) == 0 {
		return domain.ClusterResult{Status: domain.StatusNoNumericFeatures}
	}

	// Keep only rows carrying every feature.
	vectors := make([][]float64, 0, len(table))
	for _, row := range table {
		vec := make([]float64, len(features))
		complete := true
		for i, feature := range features {
			v, ok := row.Float(feature)
			if !ok {
				complete = false
				break
			}
			vec[i] = v
		}
		if complete {
			vectors = append(vectors, vec)
		}
	}

	if k < 1 || len(vectors) < k {
		return domain.ClusterResult{Status: domain.StatusInsufficientDataForClustering}
	}

	scaled, _, _ := standardize(vectors)
	assignments := kmeans(scaled, k, seed)

	summary := make(map[int]map[string]float64, k)
	sizes := make(map[int]int, k)
	sums := make(map[int][]float64, k)
	for i, cluster := range assignments {
		sizes[cluster]++
		if sums[cluster] == nil {
			sums[cluster] = make([]float64, len(features))
		}
		for j, v := range vectors[i] {
			sums[cluster][j] += v
		}
	}
	for cluster, featureSums := range sums {
		clusterMeans := make(map[string]float64, len(features))
		for j, feature := range features {
			clusterMeans[feature] = featureSums[j] / float64(sizes[cluster])
		}
		summary[cluster] = clusterMeans
	}

	return domain.ClusterResult{
		Status:           domain.StatusOK,
		Clusters:         k,
		ClusterSummary:   summary,
		ClusterSizes:     sizes,
		FeaturesUsed:     features,
		RecordsClustered: len(vectors),
	}
}

// standardize scales each column to zero mean and unit variance. Columns
// with zero variance are left centered only.
func standardize(vectors [][]float64) (scaled [][]float64, means, stds []float64) {
	if len(vectors) == 0 {
		return nil, nil, nil
	}
	dims := len(vectors[0])
	means = make([]float64, dims)
	stds = make([]float64, dims)

	for j := 0; j < dims; j++ {
		col := make([]float64, len(vectors))
		for i, vec := range vectors {
			col[i] = vec[j]
		}
		means[j] = mean(col)
		stds[j] = populationStd(col, means[j])
	}

	scaled = make([][]float64, len(vectors))
	for i, vec := range vectors {
		row := make([]float64, dims)
		for j, v := range vec {
			row[j] = v - means[j]
			if stds[j] > 0 {
				row[j] /= stds[j]
			}
		}
		scaled[i] = row
	}
	return scaled, means, stds
}

// populationStd is the n-denominator standard deviation used for scaling.
func populationStd(values []float64, m float64) float64 {
	if len(values) == 0 {
		return 0
	}
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// kmeans runs Lloyd's algorithm with centroids initialized from k distinct
// observations chosen by the seeded source.
func kmeans(vectors [][]float64, k int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	dims := len(vectors[0])

	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(vectors))[:k] {
		centroids[i] = append([]float64(nil), vectors[idx]...)
	}

	assignments := make([]int, len(vectors))
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best := 0
			bestDist := math.MaxFloat64
			for c, centroid := range centroids {
				d := squaredDistance(vec, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, vec := range vectors {
			c := assignments[i]
			counts[c]++
			for j, v := range vec {
				sums[c][j] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			for j := range centroids[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	return assignments
}

func squaredDistance(a, b []float64) float64 {
	total := 0.0
	for i := range a {
		d := a[i] - b[i]
		total += d * d
	}
	return total
}

package analytics

import (
	"math"
	"sort"

	"fedspend/pkg/contracts/domain"
)

// SignificanceLevel is the p-value threshold used across the package.
const SignificanceLevel = 0.05

// Summarize computes the distribution summary of a numeric column.
// The second return value is false when no values were supplied.
func Summarize(values []float64) (domain.SummaryStatistics, bool) {
	n := len(values)
	if n == 0 {
		return domain.SummaryStatistics{}, false
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	stats := domain.SummaryStatistics{
		Count:  n,
		Mean:   mean(values),
		Median: quantile(sorted, 0.5),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Q25:    quantile(sorted, 0.25),
		Q75:    quantile(sorted, 0.75),
		Total:  sum(values),
	}
	stats.Std = sampleStd(values, stats.Mean)
	stats.Skewness = skewness(values, stats.Mean, stats.Std)
	stats.Kurtosis = kurtosis(values, stats.Mean, stats.Std)
	if stats.Mean != 0 {
		stats.CV = stats.Std / stats.Mean
	}

	return stats, true
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

// sampleStd is the n-1 standard deviation; zero for fewer than two values.
func sampleStd(values []float64, m float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// quantile interpolates linearly between order statistics; input is sorted.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// skewness is the adjusted Fisher-Pearson coefficient; zero below 3 values.
func skewness(values []float64, m, std float64) float64 {
	n := float64(len(values))
	if n < 3 || std == 0 {
		return 0
	}
	s := 0.0
	for _, v := range values {
		d := (v - m) / std
		s += d * d * d
	}
	return s * n / ((n - 1) * (n - 2))
}

// kurtosis is the unbiased excess kurtosis; zero below 4 values.
func kurtosis(values []float64, m, std float64) float64 {
	n := float64(len(values))
	if n < 4 || std == 0 {
		return 0
	}
	s := 0.0
	for _, v := range values {
		d := (v - m) / std
		s += d * d * d * d
	}
	return s*n*(n+1)/((n-1)*(n-2)*(n-3)) - 3*(n-1)*(n-1)/((n-2)*(n-3))
}

// studentTPValue returns the two-sided p-value of a t statistic with the
// given degrees of freedom, via the regularized incomplete beta function.
func studentTPValue(t, df float64) float64 {
	if df <= 0 {
		return 1
	}
	x := df / (df + t*t)
	return regIncompleteBeta(df/2, 0.5, x)
}

// regIncompleteBeta computes I_x(a, b) using the continued fraction
// expansion with the symmetry transformation for fast convergence.
func regIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lgA, _ := math.Lgamma(a)
	lgB, _ := math.Lgamma(b)
	lgAB, _ := math.Lgamma(a + b)
	front := math.Exp(lgAB - lgA - lgB + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

// betaContinuedFraction evaluates the Lentz continued fraction for the
// incomplete beta function.
func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3e-14
		tiny          = 1e-30
	)

	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)
		m2 := 2 * fm

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del

		if math.Abs(del-1) < epsilon {
			break
		}
	}
	return h
}

// pearson computes the correlation coefficient between two equal-length
// series and its two-sided p-value.
func pearson(x, y []float64) (r, p float64) {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0, 1
	}

	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, 1
	}

	r = sxy / math.Sqrt(sxx*syy)
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	df := float64(n - 2)
	if df <= 0 {
		return r, 1
	}
	if math.Abs(r) == 1 {
		return r, 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	return r, studentTPValue(t, df)
}

// linearFit performs ordinary least squares of y against x, returning the
// slope, intercept, correlation coefficient and the slope's two-sided
// p-value.
func linearFit(x, y []float64) (slope, intercept, r, p float64) {
	n := len(x)
	if n != len(y) || n < 2 {
		return 0, 0, 0, 1
	}

	mx, my := mean(x), mean(y)
	var sxy, sxx float64
	for i := range x {
		dx := x[i] - mx
		sxy += dx * (y[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, my, 0, 1
	}

	slope = sxy / sxx
	intercept = my - slope*mx
	r, p = pearson(x, y)
	return slope, intercept, r, p
}

// tTestIndependent runs a pooled-variance two-sample t-test on the means of
// a and b. The second return value is false when either side has fewer than
// two observations.
func tTestIndependent(a, b []float64) (domain.TTestResult, bool) {
	n1, n2 := len(a), len(b)
	if n1 < 2 || n2 < 2 {
		return domain.TTestResult{}, false
	}

	m1, m2 := mean(a), mean(b)
	s1, s2 := sampleStd(a, m1), sampleStd(b, m2)
	df := float64(n1 + n2 - 2)
	pooled := ((float64(n1-1))*s1*s1 + (float64(n2-1))*s2*s2) / df
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return domain.TTestResult{TStatistic: 0, PValue: 1}, true
	}

	t := (m1 - m2) / se
	p := studentTPValue(t, df)
	return domain.TTestResult{
		TStatistic:            t,
		PValue:                p,
		SignificantDifference: p < SignificanceLevel,
	}, true
}

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ACF calculates the autocorrelation function of a residual sequence.
// Returns normalized autocovariance values for lags 0 to maxLag, or nil
// when the sequence has zero variance or maxLag is negative.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	ss := 0.0
	for _, v := range values {
		diff := v - mean
		ss += diff * diff
	}
	if ss == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / ss
	}
	return acf
}

// CCF calculates the cross-correlation function between residuals and an
// input signal: the normalized cross-covariance of a against b lagged by
// k, for lags 0 to maxLag. The sequences must have the same length.
// Returns nil when either sequence has zero variance, the lengths differ,
// or maxLag is negative.
func CCF(a, b []float64, maxLag int) []float64 {
	n := len(a)
	if len(b) != n {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	meanA := stat.Mean(a, nil)
	meanB := stat.Mean(b, nil)
	ssA, ssB := 0.0, 0.0
	for i := 0; i < n; i++ {
		ssA += (a[i] - meanA) * (a[i] - meanA)
		ssB += (b[i] - meanB) * (b[i] - meanB)
	}
	if ssA == 0 || ssB == 0 {
		return nil
	}

	norm := math.Sqrt(ssA * ssB)
	ccf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (a[i] - meanA) * (b[i-k] - meanB)
		}
		ccf[k] = sum / norm
	}
	return ccf
}

// CorrelationResult represents a correlation sequence with its
// confidence bounds.
type CorrelationResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // 95% confidence bounds (±z/sqrt(n))
}

// ACFWithConfidence calculates the residual ACF with 95% confidence
// bounds. Values inside the bounds at nonzero lags are consistent with
// white residuals.
func ACFWithConfidence(values []float64, maxLag int) *CorrelationResult {
	acf := ACF(values, maxLag)
	if acf == nil {
		return nil
	}
	return withConfidence(acf, len(values))
}

// CCFWithConfidence calculates the residual/input CCF with 95% confidence
// bounds.
func CCFWithConfidence(a, b []float64, maxLag int) *CorrelationResult {
	ccf := CCF(a, b, maxLag)
	if ccf == nil {
		return nil
	}
	return withConfidence(ccf, len(a))
}

func withConfidence(values []float64, n int) *CorrelationResult {
	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	return &CorrelationResult{
		Lags:       lags,
		Values:     values,
		ConfBounds: z / math.Sqrt(float64(n)),
	}
}

// SignificantLags returns the nonzero lags where correlation values
// exceed the confidence bounds.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

package regressors

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// BuildLagged assembles the lagged-signal matrix every candidate term is
// evaluated from. Column 0 is the constant 1, followed by the output at
// each lag in ylag, then each input i at each lag in xlag[i]. The matrix
// keeps the full sample count; rows with unresolved history (t < lag)
// hold zeros and are trimmed by the basis expansion.
//
// x is samples-by-inputs and may be nil for NAR models; y may be nil for
// NFIR models.
func BuildLagged(x *mat.Dense, y []float64, ylag []int, xlag [][]int, model ModelType) (*mat.Dense, error) {
	nInputs := 0
	if x != nil {
		_, nInputs = x.Dims()
	}
	if err := ValidateSpec(1, ylag, xlag, nInputs, model); err != nil {
		return nil, err
	}

	n := len(y)
	if model.UsesInput() {
		xRows, _ := x.Dims()
		if y != nil && xRows != n {
			return nil, fmt.Errorf("%w: %d input samples for %d output samples", ErrInvalidRegressorSpec, xRows, n)
		}
		if !model.UsesOutput() {
			n = xRows
		}
	}

	maxLag := SpecMaxLag(ylag, xlag, model)
	if n <= maxLag {
		return nil, fmt.Errorf("%w: %d samples with max lag %d", ErrInsufficientData, n, maxLag)
	}

	cols := len(ColumnCodes(ylag, xlag, model))
	lagged := mat.NewDense(n, cols, nil)
	for t := 0; t < n; t++ {
		lagged.Set(t, 0, 1)
		col := 1
		if model.UsesOutput() {
			for _, lag := range ylag {
				if t >= lag {
					lagged.Set(t, col, y[t-lag])
				}
				col++
			}
		}
		if model.UsesInput() {
			for i, lags := range xlag {
				for _, lag := range lags {
					if t >= lag {
						lagged.Set(t, col, x.At(t-lag, i))
					}
					col++
				}
			}
		}
	}
	return lagged, nil
}

package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ELSOptions configure the extended least squares iteration.
type ELSOptions struct {
	Options

	// Lag is the residual lag order of the noise model.
	Lag int
	// MaxIter caps the iteration count (default 30).
	MaxIter int
	// Tolerance stops the iteration once no coefficient of the original
	// terms changes by more than it (default 1e-8).
	Tolerance float64
}

// ExtendedLeastSquares de-biases least squares estimates under colored
// residual noise. It alternates between computing residuals from the
// current coefficients and re-estimating on the regressor matrix
// augmented with lagged-residual columns, keeping only the coefficients
// of the original terms between iterations.
//
// It returns the coefficients of the original psi columns and the number
// of iterations run. When the iteration cap is reached before the
// coefficients settle, the last iterate is returned together with an
// error wrapping ErrNonConvergence.
func ExtendedLeastSquares(psi *mat.Dense, y []float64, opts ELSOptions) ([]float64, int, error) {
	if opts.Lag < 1 {
		return nil, 0, fmt.Errorf("estimators: residual lag must be positive, got %d", opts.Lag)
	}
	if opts.MaxIter < 1 {
		opts.MaxIter = 30
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-8
	}

	n, m := psi.Dims()

	theta, err := LeastSquares(psi, y, opts.Options)
	if err != nil {
		return nil, 0, err
	}

	aug := mat.NewDense(n, m+opts.Lag, nil)
	aug.Slice(0, n, 0, m).(*mat.Dense).Copy(psi)

	for it := 1; it <= opts.MaxIter; it++ {
		e := Residuals(psi, y, theta)

		// Lagged-residual columns; rows without residual history stay zero.
		for lag := 1; lag <= opts.Lag; lag++ {
			for t := 0; t < n; t++ {
				v := 0.0
				if t >= lag {
					v = e[t-lag]
				}
				aug.Set(t, m+lag-1, v)
			}
		}

		next, err := LeastSquares(aug, y, opts.Options)
		if err != nil {
			return theta, it, err
		}

		delta := 0.0
		for j := 0; j < m; j++ {
			if d := math.Abs(next[j] - theta[j]); d > delta {
				delta = d
			}
		}
		theta = next[:m]
		if delta < opts.Tolerance {
			return theta, it, nil
		}
	}

	return theta, opts.MaxIter, fmt.Errorf("%w after %d iterations", ErrNonConvergence, opts.MaxIter)
}

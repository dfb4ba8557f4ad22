package estimators

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingularMatrix reports a rank-deficient regressor matrix with no
	// fallback enabled.
	ErrSingularMatrix = errors.New("estimators: singular regressor matrix")

	// ErrNonConvergence reports an extended least squares run that hit its
	// iteration cap. The last iterate is still returned alongside it.
	ErrNonConvergence = errors.New("estimators: extended least squares did not converge")
)

// rankTol is the relative tolerance for the numerical rank in the SVD
// fallback.
const rankTol = 1e-12

// Options configure least squares solves.
type Options struct {
	// LeastNormFallback resolves rank-deficient systems with the
	// minimum-norm SVD solution instead of returning ErrSingularMatrix.
	LeastNormFallback bool
}

// LeastSquares solves psi*theta = y in the least-squares sense via QR.
// The solve is deterministic: repeated calls on the same inputs yield
// identical coefficients. A rank-deficient psi yields ErrSingularMatrix,
// or the minimum-norm solution when opts.LeastNormFallback is set.
func LeastSquares(psi *mat.Dense, y []float64, opts Options) ([]float64, error) {
	n, m := psi.Dims()
	if len(y) != n {
		return nil, fmt.Errorf("estimators: %d samples for %d regressor rows", len(y), n)
	}
	if n < m {
		return nil, fmt.Errorf("%w: %d samples for %d regressors", ErrSingularMatrix, n, m)
	}

	b := mat.NewDense(n, 1, y)

	var qr mat.QR
	qr.Factorize(psi)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		if !opts.LeastNormFallback {
			return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
		}
		return leastNorm(psi, b, m)
	}

	theta := make([]float64, m)
	for i := range theta {
		theta[i] = sol.At(i, 0)
	}
	return theta, nil
}

// leastNorm solves the system by SVD pseudoinverse, returning the
// minimum-norm least-squares solution.
func leastNorm(psi *mat.Dense, b *mat.Dense, m int) ([]float64, error) {
	var svd mat.SVD
	if !svd.Factorize(psi, mat.SVDThin) {
		return nil, fmt.Errorf("%w: SVD factorization failed", ErrSingularMatrix)
	}

	theta := make([]float64, m)
	rank := svd.Rank(rankTol)
	if rank == 0 {
		// Numerically all-zero system; the minimum-norm solution is zero.
		return theta, nil
	}

	var sol mat.Dense
	svd.SolveTo(&sol, b, rank)
	for i := range theta {
		theta[i] = sol.At(i, 0)
	}
	return theta, nil
}

// Residuals returns y minus psi*theta.
func Residuals(psi *mat.Dense, y, theta []float64) []float64 {
	n, m := psi.Dims()
	res := make([]float64, n)
	for t := 0; t < n; t++ {
		pred := 0.0
		for j := 0; j < m; j++ {
			pred += psi.At(t, j) * theta[j]
		}
		res[t] = y[t] - pred
	}
	return res
}

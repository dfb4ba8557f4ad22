// Package estimators solves for the coefficients of selected regressors.
//
// Coefficients are always estimated on the original (non-orthogonalized)
// regressor columns; the orthogonal-stage values computed during term
// selection belong to a transformed basis and are not reused.
//
// # Least Squares
//
// LeastSquares solves the restricted information matrix against the
// target via QR:
//
//	theta, err := estimators.LeastSquares(psiSelected, y, estimators.Options{})
//
// Rank-deficient systems either fail with ErrSingularMatrix or, with
// Options.LeastNormFallback, resolve to the minimum-norm SVD solution.
//
// # Extended Least Squares
//
// When residuals are colored noise, plain least squares is biased.
// ExtendedLeastSquares iteratively augments the regressor set with
// lagged-residual columns and re-estimates until the coefficients of the
// original terms settle:
//
//	theta, iters, err := estimators.ExtendedLeastSquares(psiSelected, y,
//	    estimators.ELSOptions{Lag: 2})
//	if errors.Is(err, estimators.ErrNonConvergence) {
//	    // theta still holds the last iterate
//	}
//
// The residual-lag coefficients are internal bias-correction state and
// are never returned.
package estimators

// Package basis expands lagged-signal matrices into candidate regressor
// columns (the information matrix).
//
// A basis function is a narrow capability interface with a single
// Transform method, so alternative expansions can be plugged into the
// selection engine without touching it. The package ships the polynomial
// expansion used by polynomial NARMAX models:
//
//	lagged, _ := regressors.BuildLagged(x, y, ylag, xlag, regressors.NARX)
//	psi, err := basis.Polynomial{Degree: 2}.Transform(lagged, maxLag, nil)
//
// Passing a non-nil selected slice evaluates only those candidate-table
// indices. The restricted output is column-for-column identical to
// slicing the full expansion; the fast path only skips the combinatorial
// work, which matters when simulating a known structure.
package basis

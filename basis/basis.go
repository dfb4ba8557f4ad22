package basis

import "gonum.org/v1/gonum/mat"

// Function is the contract a basis expansion fulfils: it maps the
// lagged-signal matrix produced by regressors.BuildLagged into candidate
// regressor columns.
//
// Transform drops the first maxLag rows (unresolved history) and returns
// one column per candidate term, in candidate-table order. A nil selected
// slice requests the full expansion; a non-nil slice restricts the output
// to those candidate-table indices without changing their values, which
// lets callers that already know the model structure skip the full
// combinatorial expansion.
type Function interface {
	Transform(lagged mat.Matrix, maxLag int, selected []int) (*mat.Dense, error)
}

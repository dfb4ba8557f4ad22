package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/CaioMizerkowski/sysidentpy/regressors"
)

// Polynomial expands lagged signals into all monomials of the requested
// degree. Because the lagged matrix carries a constant column, the
// expansion contains the intercept and every lower-degree monomial as
// well; the column order matches regressors.Space for the same bounds.
type Polynomial struct {
	Degree int
}

// Transform implements Function.
func (p Polynomial) Transform(lagged mat.Matrix, maxLag int, selected []int) (*mat.Dense, error) {
	if p.Degree < 1 {
		return nil, fmt.Errorf("%w: polynomial degree must be positive, got %d", regressors.ErrInvalidRegressorSpec, p.Degree)
	}
	n, m := lagged.Dims()
	if n <= maxLag {
		return nil, fmt.Errorf("%w: %d samples with max lag %d", regressors.ErrInsufficientData, n, maxLag)
	}

	combos := regressors.Combinations(m, p.Degree)
	pick := combos
	if selected != nil {
		pick = make([][]int, len(selected))
		for i, idx := range selected {
			if idx < 0 || idx >= len(combos) {
				return nil, fmt.Errorf("%w: predefined regressor index %d outside candidate table of size %d", regressors.ErrInvalidRegressorSpec, idx, len(combos))
			}
			pick[i] = combos[idx]
		}
	}

	rows := n - maxLag
	psi := mat.NewDense(rows, len(pick), nil)
	for j, combo := range pick {
		for r := 0; r < rows; r++ {
			v := 1.0
			for _, col := range combo {
				v *= lagged.At(maxLag+r, col)
			}
			psi.Set(r, j, v)
		}
	}
	return psi, nil
}

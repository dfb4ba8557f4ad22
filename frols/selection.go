package frols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateRegressor reports that every remaining candidate is
// linearly dependent on the already-selected terms, so another selection
// round would pick a meaningless term.
var ErrDegenerateRegressor = errors.New("frols: remaining candidates are linearly dependent on the selected terms")

// degenerateTol is the relative squared-norm threshold below which an
// orthogonalized candidate counts as linearly dependent.
const degenerateTol = 1e-12

// selector holds the scratch state of one forward-selection run: the
// candidate columns, the target, and the orthogonal basis built so far.
// The basis columns are owned by the run and discarded with it.
type selector struct {
	psi   *mat.Dense
	y     []float64
	yss   float64   // y'y
	colSS []float64 // original squared norm per candidate column

	selected []int
	errs     []float64
	chosen   []bool
	q        [][]float64 // retained orthogonal columns, selection order
	qss      []float64   // q'q per retained column
}

func newSelector(psi *mat.Dense, y []float64) *selector {
	_, cols := psi.Dims()
	s := &selector{
		psi:    psi,
		y:      y,
		yss:    floats.Dot(y, y),
		colSS:  make([]float64, cols),
		chosen: make([]bool, cols),
	}
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, psi)
		s.colSS[j] = floats.Dot(col, col)
	}
	return s
}

// next runs one selection round: it orthogonalizes every remaining
// candidate against the retained basis, computes its error reduction
// ratio, and keeps the best column. Ties break to the lowest candidate
// index. It returns ErrDegenerateRegressor when no candidate survives
// orthogonalization.
func (s *selector) next() (int, float64, error) {
	_, cols := s.psi.Dims()

	bestIdx := -1
	bestERR := -1.0
	var bestQ []float64

	for j := 0; j < cols; j++ {
		if s.chosen[j] {
			continue
		}

		v := mat.Col(nil, j, s.psi)
		// Project out each prior orthogonal direction sequentially
		// (modified Gram-Schmidt) to limit cancellation error.
		for k := range s.q {
			proj := floats.Dot(v, s.q[k]) / s.qss[k]
			floats.AddScaled(v, -proj, s.q[k])
		}

		vss := floats.Dot(v, v)
		if vss <= degenerateTol*s.colSS[j] || s.colSS[j] == 0 {
			continue
		}

		errRatio := 0.0
		if s.yss > 0 {
			num := floats.Dot(v, s.y)
			errRatio = clamp01(num * num / (vss * s.yss))
		}
		if errRatio > bestERR {
			bestIdx, bestERR, bestQ = j, errRatio, v
		}
	}

	if bestIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %d of %d candidates selected", ErrDegenerateRegressor, len(s.selected), cols)
	}

	s.chosen[bestIdx] = true
	s.selected = append(s.selected, bestIdx)
	s.errs = append(s.errs, bestERR)
	s.q = append(s.q, bestQ)
	s.qss = append(s.qss, floats.Dot(bestQ, bestQ))
	return bestIdx, bestERR, nil
}

// truncate drops every selection after the first k rounds.
func (s *selector) truncate(k int) {
	for _, idx := range s.selected[k:] {
		s.chosen[idx] = false
	}
	s.selected = s.selected[:k]
	s.errs = s.errs[:k]
	s.q = s.q[:k]
	s.qss = s.qss[:k]
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

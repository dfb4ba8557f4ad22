package frols

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func randomMatrix(seed uint64, rows, cols int) *mat.Dense {
	d := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed+1)}
	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, d.Rand())
		}
	}
	return m
}

func TestSelectorOrthogonalBasis(t *testing.T) {
	psi := randomMatrix(1, 50, 6)
	y := make([]float64, 50)
	d := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(9, 10)}
	for i := range y {
		y[i] = d.Rand()
	}

	sel := newSelector(psi, y)
	for r := 0; r < 4; r++ {
		_, _, err := sel.next()
		require.NoError(t, err)
	}

	// Retained columns must be mutually orthogonal.
	for i := 0; i < len(sel.q); i++ {
		for j := i + 1; j < len(sel.q); j++ {
			dot := floats.Dot(sel.q[i], sel.q[j])
			scale := math.Sqrt(sel.qss[i] * sel.qss[j])
			assert.Less(t, math.Abs(dot)/scale, 1e-10, "q[%d] vs q[%d]", i, j)
		}
	}
}

func TestSelectorERRProperties(t *testing.T) {
	psi := randomMatrix(2, 80, 5)
	y := mat.Col(nil, 0, psi) // target is exactly candidate 0

	sel := newSelector(psi, y)
	idx, errRatio, err := sel.next()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1, errRatio, 1e-12)

	// Later rounds explain what is left, which is nothing; ratios stay
	// in [0, 1] and near zero.
	for r := 0; r < 3; r++ {
		_, errRatio, err = sel.next()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, errRatio, 0.0)
		assert.Less(t, errRatio, 1e-10)
	}
}

func TestSelectorTieBreaksToLowestIndex(t *testing.T) {
	// Columns 0 and 1 are identical, so their ratios tie exactly.
	col := []float64{1, 2, 3, 4, 5}
	psi := mat.NewDense(5, 3, nil)
	for r := 0; r < 5; r++ {
		psi.Set(r, 0, col[r])
		psi.Set(r, 1, col[r])
		psi.Set(r, 2, float64(r*r))
	}
	y := []float64{2, 4, 6, 8, 10}

	sel := newSelector(psi, y)
	idx, _, err := sel.next()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestSelectorDegenerate(t *testing.T) {
	// Column 1 duplicates column 0; only two independent directions
	// exist among three candidates.
	psi := mat.NewDense(4, 3, []float64{
		1, 1, 0,
		2, 2, 1,
		3, 3, 0,
		4, 4, 1,
	})
	y := []float64{1, 3, 3, 5}

	sel := newSelector(psi, y)
	_, _, err := sel.next()
	require.NoError(t, err)
	_, _, err = sel.next()
	require.NoError(t, err)
	_, _, err = sel.next()
	require.ErrorIs(t, err, ErrDegenerateRegressor)
}

func TestSelectorZeroTarget(t *testing.T) {
	psi := randomMatrix(3, 20, 4)
	y := make([]float64, 20)

	// With nothing to explain, every ratio is zero and the lowest index
	// wins.
	sel := newSelector(psi, y)
	idx, errRatio, err := sel.next()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Zero(t, errRatio)
}

func TestSelectorTruncate(t *testing.T) {
	psi := randomMatrix(4, 30, 5)
	y := mat.Col(nil, 2, psi)

	sel := newSelector(psi, y)
	for r := 0; r < 4; r++ {
		_, _, err := sel.next()
		require.NoError(t, err)
	}
	dropped := sel.selected[2:]

	sel.truncate(2)
	require.Len(t, sel.selected, 2)
	require.Len(t, sel.errs, 2)
	require.Len(t, sel.q, 2)

	// Truncated candidates become selectable again.
	for _, idx := range dropped {
		assert.False(t, sel.chosen[idx])
	}
}

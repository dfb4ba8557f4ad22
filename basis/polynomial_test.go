package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/CaioMizerkowski/sysidentpy/regressors"
)

func TestPolynomialTransform(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	lagged, err := regressors.BuildLagged(nil, y, regressors.UpTo(2), nil, regressors.NAR)
	require.NoError(t, err)

	psi, err := Polynomial{Degree: 2}.Transform(lagged, 2, nil)
	require.NoError(t, err)

	rows, cols := psi.Dims()
	require.Equal(t, 3, rows) // 5 samples minus 2 warm-up
	require.Equal(t, 6, cols) // C(4, 2) over {1, y(k-1), y(k-2)}

	// Row for t=2: y(k-1)=2, y(k-2)=1. Columns follow the candidate
	// table: 1, y(k-1), y(k-2), y(k-1)^2, y(k-1)y(k-2), y(k-2)^2.
	assert.InDeltaSlice(t, []float64{1, 2, 1, 4, 2, 1}, psi.RawRowView(0), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 4, 3, 16, 12, 9}, psi.RawRowView(2), 1e-12)
}

func TestPolynomialTransformMatchesSpace(t *testing.T) {
	y := []float64{0.3, -1.2, 0.8, 2.1, -0.4, 1.7, 0.9}
	x := mat.NewDense(7, 1, []float64{1.1, -0.2, 0.5, 0.7, -1.4, 0.3, 2.2})

	ylag := regressors.UpTo(2)
	xlag := [][]int{{1, 2}}
	lagged, err := regressors.BuildLagged(x, y, ylag, xlag, regressors.NARX)
	require.NoError(t, err)

	terms, err := regressors.Space(2, ylag, xlag, 1, regressors.NARX)
	require.NoError(t, err)

	psi, err := Polynomial{Degree: 2}.Transform(lagged, 2, nil)
	require.NoError(t, err)

	_, cols := psi.Dims()
	require.Equal(t, len(terms), cols)

	// Column j must be the product of term j's factors evaluated on the
	// raw series.
	for j, term := range terms {
		for r := 0; r < 5; r++ {
			k := r + 2
			want := 1.0
			for _, c := range term {
				switch {
				case c.IsConstant():
				case c.Signal() == 1:
					want *= y[k-c.Lag()]
				default:
					want *= x.At(k-c.Lag(), c.Signal()-2)
				}
			}
			assert.InDelta(t, want, psi.At(r, j), 1e-12, "term %s row %d", term, r)
		}
	}
}

func TestPolynomialTransformSelected(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5, 6}
	lagged, err := regressors.BuildLagged(nil, y, regressors.UpTo(2), nil, regressors.NAR)
	require.NoError(t, err)

	full, err := Polynomial{Degree: 2}.Transform(lagged, 2, nil)
	require.NoError(t, err)

	sub, err := Polynomial{Degree: 2}.Transform(lagged, 2, []int{4, 1})
	require.NoError(t, err)

	rows, cols := sub.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)
	for r := 0; r < rows; r++ {
		assert.Equal(t, full.At(r, 4), sub.At(r, 0))
		assert.Equal(t, full.At(r, 1), sub.At(r, 1))
	}
}

func TestPolynomialTransformErrors(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	lagged, err := regressors.BuildLagged(nil, y, regressors.UpTo(2), nil, regressors.NAR)
	require.NoError(t, err)

	_, err = Polynomial{Degree: 0}.Transform(lagged, 2, nil)
	require.ErrorIs(t, err, regressors.ErrInvalidRegressorSpec)

	_, err = Polynomial{Degree: 2}.Transform(lagged, 4, nil)
	require.ErrorIs(t, err, regressors.ErrInsufficientData)

	_, err = Polynomial{Degree: 2}.Transform(lagged, 2, []int{99})
	require.ErrorIs(t, err, regressors.ErrInvalidRegressorSpec)
}

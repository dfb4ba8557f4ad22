package regressors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuildLaggedNARX(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	x := mat.NewDense(5, 1, []float64{10, 20, 30, 40, 50})

	lagged, err := BuildLagged(x, y, UpTo(2), [][]int{{1, 2}}, NARX)
	require.NoError(t, err)

	rows, cols := lagged.Dims()
	require.Equal(t, 5, rows)
	require.Equal(t, 5, cols)

	// Warm-up rows carry zeros where the lag reaches before the record.
	assert.Equal(t, []float64{1, 0, 0, 0, 0}, lagged.RawRowView(0))
	assert.Equal(t, []float64{1, 1, 0, 10, 0}, lagged.RawRowView(1))
	assert.Equal(t, []float64{1, 2, 1, 20, 10}, lagged.RawRowView(2))
	assert.Equal(t, []float64{1, 4, 3, 40, 30}, lagged.RawRowView(4))
}

func TestBuildLaggedNAR(t *testing.T) {
	y := []float64{1, 2, 3, 4}
	lagged, err := BuildLagged(nil, y, []int{2}, nil, NAR)
	require.NoError(t, err)

	rows, cols := lagged.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, []float64{1, 0}, lagged.RawRowView(1))
	assert.Equal(t, []float64{1, 1}, lagged.RawRowView(2))
	assert.Equal(t, []float64{1, 2}, lagged.RawRowView(3))
}

func TestBuildLaggedNFIR(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	lagged, err := BuildLagged(x, nil, nil, [][]int{{1}, {1, 2}}, NFIR)
	require.NoError(t, err)

	rows, cols := lagged.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)
	assert.Equal(t, []float64{1, 2, 20, 10}, lagged.RawRowView(2))
}

func TestBuildLaggedErrors(t *testing.T) {
	y := []float64{1, 2, 3}
	x := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := BuildLagged(x, []float64{1, 2}, UpTo(1), [][]int{{1}}, NARX)
	require.ErrorIs(t, err, ErrInvalidRegressorSpec)

	_, err = BuildLagged(x, y, UpTo(3), [][]int{{1}}, NARX)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = BuildLagged(nil, y, UpTo(1), nil, NARX)
	require.ErrorIs(t, err, ErrInvalidRegressorSpec)

	_, err = BuildLagged(x, nil, nil, [][]int{{5}}, NFIR)
	require.ErrorIs(t, err, ErrInsufficientData)
}

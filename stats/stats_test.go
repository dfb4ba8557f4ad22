package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func whiteSeries(seed uint64, n int) []float64 {
	w := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed+1)}
	s := make([]float64, n)
	for i := range s {
		s[i] = w.Rand()
	}
	return s
}

func TestACFLagZero(t *testing.T) {
	acf := ACF(whiteSeries(1, 200), 10)
	require.Len(t, acf, 11)
	assert.InDelta(t, 1, acf[0], 1e-12)
}

func TestACFWhiteNoise(t *testing.T) {
	acf := ACF(whiteSeries(2, 1000), 20)
	require.NotNil(t, acf)
	for k := 1; k <= 20; k++ {
		assert.Less(t, math.Abs(acf[k]), 0.1, "lag %d", k)
	}
}

func TestACFPersistentSeries(t *testing.T) {
	w := distuv.Normal{Mu: 0, Sigma: 0.1, Src: rand.NewPCG(3, 4)}
	s := make([]float64, 500)
	for i := 1; i < len(s); i++ {
		s[i] = 0.9*s[i-1] + w.Rand()
	}
	acf := ACF(s, 5)
	require.NotNil(t, acf)
	assert.Greater(t, acf[1], 0.7)
	assert.Greater(t, acf[1], acf[3])
}

func TestACFDegenerate(t *testing.T) {
	assert.Nil(t, ACF([]float64{5, 5, 5, 5}, 2))
	assert.Nil(t, ACF(nil, 2))
	assert.Nil(t, ACF([]float64{1, 2, 3}, -1))
}

func TestCCF(t *testing.T) {
	// b leads a by two samples, so the CCF peaks at lag 2.
	b := whiteSeries(5, 300)
	a := make([]float64, 300)
	for i := 2; i < len(a); i++ {
		a[i] = b[i-2]
	}
	ccf := CCF(a, b, 5)
	require.Len(t, ccf, 6)
	assert.Greater(t, ccf[2], 0.9)
	assert.Less(t, math.Abs(ccf[0]), 0.15)
	assert.Less(t, math.Abs(ccf[1]), 0.15)
}

func TestCCFInvalid(t *testing.T) {
	assert.Nil(t, CCF([]float64{1, 2}, []float64{1, 2, 3}, 1))
	assert.Nil(t, CCF([]float64{1, 1, 1}, []float64{1, 2, 3}, 1))
}

func TestACFWithConfidence(t *testing.T) {
	n := 400
	res := ACFWithConfidence(whiteSeries(6, n), 15)
	require.NotNil(t, res)
	require.Len(t, res.Values, 16)
	require.Len(t, res.Lags, 16)
	assert.InDelta(t, 1.96/math.Sqrt(float64(n)), res.ConfBounds, 1e-3)

	// White residuals should leave nearly every nonzero lag inside the
	// bounds; allow the odd excursion the 95% level implies.
	sig := SignificantLags(res.Values, res.ConfBounds)
	assert.LessOrEqual(t, len(sig), 3)
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1, 0.02, 0.3, -0.25, 0.01}
	assert.Equal(t, []int{2, 3}, SignificantLags(values, 0.1))
	assert.Empty(t, SignificantLags(values, 0.5))
}

func TestLjungBoxWhite(t *testing.T) {
	res := LjungBox(whiteSeries(7, 500), 10, 0)
	require.NotNil(t, res)
	assert.Equal(t, 10, res.Lags)
	assert.Equal(t, 10, res.DOF)
	assert.Greater(t, res.PValue, 0.05)
}

func TestLjungBoxAutocorrelated(t *testing.T) {
	w := distuv.Normal{Mu: 0, Sigma: 0.1, Src: rand.NewPCG(8, 9)}
	s := make([]float64, 300)
	for i := 1; i < len(s); i++ {
		s[i] = 0.8*s[i-1] + w.Rand()
	}
	res := LjungBox(s, 10, 0)
	require.NotNil(t, res)
	assert.Less(t, res.PValue, 0.01)
	assert.Greater(t, res.Statistic, 100.0)
}

func TestLjungBoxFitDF(t *testing.T) {
	s := whiteSeries(10, 200)
	res := LjungBox(s, 10, 4)
	require.NotNil(t, res)
	assert.Equal(t, 6, res.DOF)

	// fitdf at or above the lag count floors the degrees of freedom.
	res = LjungBox(s, 3, 10)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.DOF)
}

func TestBoxPierce(t *testing.T) {
	white := whiteSeries(13, 500)
	res := BoxPierce(white, 10, 0)
	require.NotNil(t, res)
	assert.Equal(t, 10, res.Lags)
	assert.Equal(t, 10, res.DOF)
	assert.Greater(t, res.PValue, 0.05)

	// The Ljung-Box small-sample correction inflates every summand, so
	// Box-Pierce is always the smaller statistic.
	lb := LjungBox(white, 10, 0)
	require.NotNil(t, lb)
	assert.Less(t, res.Statistic, lb.Statistic)

	w := distuv.Normal{Mu: 0, Sigma: 0.1, Src: rand.NewPCG(14, 15)}
	s := make([]float64, 300)
	for i := 1; i < len(s); i++ {
		s[i] = 0.8*s[i-1] + w.Rand()
	}
	res = BoxPierce(s, 10, 0)
	require.NotNil(t, res)
	assert.Less(t, res.PValue, 0.01)

	assert.Nil(t, BoxPierce(whiteSeries(16, 5), 3, 0))
	assert.Nil(t, BoxPierce(white, 0, 0))
}

func TestDurbinWatson(t *testing.T) {
	res := DurbinWatson(whiteSeries(17, 1000))
	require.NotNil(t, res)
	assert.InDelta(t, 2, res.Statistic, 0.3)

	// Positive first-order autocorrelation pulls the statistic below 2.
	w := distuv.Normal{Mu: 0, Sigma: 0.1, Src: rand.NewPCG(18, 19)}
	s := make([]float64, 500)
	for i := 1; i < len(s); i++ {
		s[i] = 0.8*s[i-1] + w.Rand()
	}
	res = DurbinWatson(s)
	require.NotNil(t, res)
	assert.Less(t, res.Statistic, 1.0)

	// Alternating residuals push it above 2.
	alt := make([]float64, 100)
	for i := range alt {
		alt[i] = 1 - 2*float64(i%2)
	}
	res = DurbinWatson(alt)
	require.NotNil(t, res)
	assert.Greater(t, res.Statistic, 3.0)

	assert.Nil(t, DurbinWatson([]float64{1}))
	assert.Nil(t, DurbinWatson(make([]float64, 20)))
}

func TestLjungBoxTooShort(t *testing.T) {
	assert.Nil(t, LjungBox(whiteSeries(11, 5), 3, 0))
	assert.Nil(t, LjungBox(whiteSeries(12, 100), 0, 0))
}

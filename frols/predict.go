package frols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/CaioMizerkowski/sysidentpy/regressors"
)

var errNotFitted = errors.New("frols: model must be fitted before prediction")

// OneStepAhead predicts every sample from the measured history: each
// prediction uses the true lagged outputs and inputs. The information
// matrix is rebuilt restricted to the selected terms only. The first
// max-lag entries of the result are the initial conditions from y;
// y may be nil for NFIR models, whose warm-up entries stay zero.
func (m *Model) OneStepAhead(x *mat.Dense, y []float64) ([]float64, error) {
	if err := m.checkPredictArgs(x); err != nil {
		return nil, err
	}

	lagged, err := regressors.BuildLagged(x, y, m.run.YLag, m.run.XLag, m.run.ModelType)
	if err != nil {
		return nil, err
	}
	psi, err := m.run.Basis.Transform(lagged, m.maxLag, m.pivot)
	if err != nil {
		return nil, err
	}

	rows, _ := lagged.Dims()
	yhat := make([]float64, rows)
	if y != nil {
		copy(yhat[:m.maxLag], y[:m.maxLag])
	}
	for t := 0; t < rows-m.maxLag; t++ {
		pred := 0.0
		for j := range m.theta {
			pred += psi.At(t, j) * m.theta[j]
		}
		yhat[m.maxLag+t] = pred
	}
	return yhat, nil
}

// NStepAhead predicts in blocks of steps samples: each block free-runs
// from the measured output history at its start, so a prediction error
// compounds for at most steps samples before the next block re-anchors
// on y. steps = 1 reproduces OneStepAhead; a horizon past the record
// length reproduces the free run. y may be nil for NFIR models.
func (m *Model) NStepAhead(x *mat.Dense, y []float64, steps int) ([]float64, error) {
	if err := m.checkPredictArgs(x); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", regressors.ErrInvalidRegressorSpec, steps)
	}

	n := len(y)
	if m.run.ModelType.UsesInput() {
		xRows, _ := x.Dims()
		if y != nil && xRows != n {
			return nil, fmt.Errorf("%w: %d input samples for %d output samples", regressors.ErrInvalidRegressorSpec, xRows, n)
		}
		if !m.run.ModelType.UsesOutput() {
			n = xRows
		}
	}
	if n <= m.maxLag {
		return nil, fmt.Errorf("%w: %d samples with max lag %d", regressors.ErrInsufficientData, n, m.maxLag)
	}

	yhat := make([]float64, n)
	if y != nil {
		copy(yhat[:m.maxLag], y[:m.maxLag])
	}
	for t := m.maxLag; t < n; t++ {
		// Lags reaching before the current block read the measured
		// output, lags inside it read earlier predictions.
		blockStart := m.maxLag + (t-m.maxLag)/steps*steps
		pred := 0.0
		for i, term := range m.Terms {
			v := 1.0
			for _, c := range term.Term {
				switch {
				case c.IsConstant():
				case c.Signal() == 1:
					if idx := t - c.Lag(); idx < blockStart {
						v *= y[idx]
					} else {
						v *= yhat[idx]
					}
				default:
					v *= x.At(t-c.Lag(), c.Signal()-2)
				}
			}
			pred += m.theta[i] * v
		}
		yhat[t] = pred
	}
	return yhat, nil
}

// Predict runs a free-run simulation driven by the input signal: after
// the initial conditions, every lagged output the model consumes is its
// own earlier prediction. y0 must supply at least max-lag initial output
// samples; the simulation horizon is the input length. NAR models have
// no input and use Forecast instead.
func (m *Model) Predict(x *mat.Dense, y0 []float64) ([]float64, error) {
	if err := m.checkPredictArgs(x); err != nil {
		return nil, err
	}
	if !m.run.ModelType.UsesInput() {
		return nil, fmt.Errorf("%w: %s models are simulated with Forecast", regressors.ErrInvalidRegressorSpec, m.run.ModelType)
	}
	rows, _ := x.Dims()
	return m.simulate(rows, x, y0)
}

// Forecast free-runs a NAR model for the given number of steps beyond
// the initial conditions in y0.
func (m *Model) Forecast(y0 []float64, steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	if m.run.ModelType.UsesInput() {
		return nil, fmt.Errorf("%w: %s models are simulated with Predict", regressors.ErrInvalidRegressorSpec, m.run.ModelType)
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", regressors.ErrInvalidRegressorSpec, steps)
	}
	return m.simulate(m.maxLag+steps, nil, y0)
}

func (m *Model) simulate(horizon int, x *mat.Dense, y0 []float64) ([]float64, error) {
	if len(y0) < m.maxLag {
		return nil, fmt.Errorf("%w: %d initial conditions with max lag %d", regressors.ErrInsufficientData, len(y0), m.maxLag)
	}

	yhat := make([]float64, horizon)
	copy(yhat[:m.maxLag], y0[:m.maxLag])
	for t := m.maxLag; t < horizon; t++ {
		pred := 0.0
		for i, term := range m.Terms {
			v := 1.0
			for _, c := range term.Term {
				switch {
				case c.IsConstant():
					// multiplies by 1
				case c.Signal() == 1:
					v *= yhat[t-c.Lag()]
				default:
					v *= x.At(t-c.Lag(), c.Signal()-2)
				}
			}
			pred += m.theta[i] * v
		}
		yhat[t] = pred
	}
	return yhat, nil
}

func (m *Model) checkPredictArgs(x *mat.Dense) error {
	if !m.fitted {
		return errNotFitted
	}
	nInputs := 0
	if x != nil {
		_, nInputs = x.Dims()
	}
	if nInputs != m.nInputs {
		return fmt.Errorf("%w: model was fitted with %d inputs, got %d", regressors.ErrInvalidRegressorSpec, m.nInputs, nInputs)
	}
	return nil
}

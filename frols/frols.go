// Package frols implements Forward Regression Orthogonal Least Squares
// model structure selection for polynomial NARMAX models.
package frols

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/CaioMizerkowski/sysidentpy/estimators"
	"github.com/CaioMizerkowski/sysidentpy/regressors"
	"github.com/CaioMizerkowski/sysidentpy/stats"
)

// SelectedTerm is one regressor of the final model, in selection order.
type SelectedTerm struct {
	Term        regressors.Term
	Index       int // column in the candidate term table
	ERR         float64
	Coefficient float64
}

// Model represents a polynomial NARMAX model identified by FROLS.
type Model struct {
	// Terms holds the selected regressors in selection order; the first
	// term has the highest marginal ERR.
	Terms []SelectedTerm
	// Residuals is output minus model prediction, one value per valid
	// sample (the first max-lag samples carry no residual).
	Residuals []float64
	// InfoValues is the information-criterion trace of automatic mode,
	// one value per scanned model size.
	InfoValues []float64
	// ELSIterations is the number of extended least squares iterations
	// run, 0 when ELS is disabled.
	ELSIterations int
	// ELSConverged is false when extended least squares hit its
	// iteration cap; the coefficients then hold the last iterate.
	ELSConverged bool

	cfg     *Config
	run     *Config // normalized snapshot of cfg from the last Fit
	pivot   []int
	theta   []float64
	maxLag  int
	nInputs int
	fitted  bool
}

// New creates a model with the given configuration. A nil cfg uses
// DefaultConfig. The configuration is validated at Fit time.
func New(cfg *Config) *Model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Model{cfg: cfg}
}

// Fit identifies the model structure and estimates its parameters from
// training data. x is samples-by-inputs (nil for NAR models); y is the
// output signal. Each call owns its scratch state exclusively, so
// independent models may fit concurrently.
func (m *Model) Fit(x *mat.Dense, y []float64) error {
	nInputs := 0
	if x != nil {
		_, nInputs = x.Dims()
	}
	cfg, err := m.cfg.normalize(nInputs)
	if err != nil {
		return err
	}
	if len(y) == 0 {
		return fmt.Errorf("%w: output signal is required", regressors.ErrInvalidRegressorSpec)
	}

	lagged, err := regressors.BuildLagged(x, y, cfg.YLag, cfg.XLag, cfg.ModelType)
	if err != nil {
		return err
	}
	maxLag := regressors.SpecMaxLag(cfg.YLag, cfg.XLag, cfg.ModelType)

	space, err := regressors.Space(cfg.Degree, cfg.YLag, cfg.XLag, nInputs, cfg.ModelType)
	if err != nil {
		return err
	}
	psi, err := cfg.Basis.Transform(lagged, maxLag, nil)
	if err != nil {
		return err
	}
	yTrim := y[maxLag:]

	sel := newSelector(psi, yTrim)
	var trace []float64
	if cfg.OrderSelection {
		if trace, err = m.scanOrders(cfg, sel, psi, yTrim); err != nil {
			return err
		}
	} else {
		for r := 0; r < cfg.NTerms; r++ {
			if _, _, err := sel.next(); err != nil {
				return err
			}
		}
	}

	psiSel := columns(psi, sel.selected)
	opts := estimators.Options{LeastNormFallback: cfg.LeastNormFallback}

	theta := []float64(nil)
	iterations := 0
	converged := true
	if cfg.ExtendedLeastSquares {
		theta, iterations, err = estimators.ExtendedLeastSquares(psiSel, yTrim, estimators.ELSOptions{
			Options:   opts,
			Lag:       cfg.ELag,
			MaxIter:   cfg.ELSMaxIter,
			Tolerance: cfg.ELSTolerance,
		})
		if errors.Is(err, estimators.ErrNonConvergence) {
			converged = false
			cfg.Logger.Warn("extended least squares hit its iteration cap",
				zap.Int("iterations", iterations),
				zap.Float64("tolerance", cfg.ELSTolerance))
		} else if err != nil {
			return err
		}
	} else if theta, err = estimators.LeastSquares(psiSel, yTrim, opts); err != nil {
		return err
	}

	terms := make([]SelectedTerm, len(sel.selected))
	for i, idx := range sel.selected {
		terms[i] = SelectedTerm{
			Term:        space[idx],
			Index:       idx,
			ERR:         sel.errs[i],
			Coefficient: theta[i],
		}
	}

	m.Terms = terms
	m.Residuals = estimators.Residuals(psiSel, yTrim, theta)
	m.InfoValues = trace
	m.ELSIterations = iterations
	m.ELSConverged = converged
	m.run = cfg
	m.pivot = sel.selected
	m.theta = theta
	m.maxLag = maxLag
	m.nInputs = nInputs
	m.fitted = true
	return nil
}

// scanOrders runs automatic mode: up to NInfoValues selection rounds,
// scoring each nested model size with the configured criterion, then
// truncates the selection to the size that minimized it. Later rounds
// exist only to expose the criterion's trend.
func (m *Model) scanOrders(cfg *Config, sel *selector, psi *mat.Dense, y []float64) ([]float64, error) {
	crit, err := criterionByName(cfg.Criterion)
	if err != nil {
		return nil, err
	}
	opts := estimators.Options{LeastNormFallback: cfg.LeastNormFallback}

	_, candidates := psi.Dims()
	rounds := cfg.NInfoValues
	if rounds > candidates {
		rounds = candidates
	}

	n := len(y)
	var trace []float64
	for r := 1; r <= rounds; r++ {
		idx, errRatio, err := sel.next()
		if err != nil {
			if r == 1 {
				return nil, err
			}
			// The independent candidates ran out; score what we have.
			cfg.Logger.Debug("order scan stopped early", zap.Int("round", r), zap.Error(err))
			break
		}

		psiSel := columns(psi, sel.selected)
		theta, err := estimators.LeastSquares(psiSel, y, opts)
		if err != nil {
			return nil, err
		}
		res := estimators.Residuals(psiSel, y, theta)
		value := crit(n, r, floats.Dot(res, res)/float64(n))
		trace = append(trace, value)

		cfg.Logger.Debug("selection round",
			zap.Int("round", r),
			zap.Int("candidate", idx),
			zap.Float64("err", errRatio),
			zap.String("criterion", cfg.Criterion),
			zap.Float64("value", value))
	}

	best := 0
	for i, v := range trace {
		if v < trace[best] {
			best = i
		}
	}
	sel.truncate(best + 1)
	return trace, nil
}

// NTerms returns the number of selected terms.
func (m *Model) NTerms() int { return len(m.Terms) }

// MaxLag returns the warm-up sample count of the fitted model.
func (m *Model) MaxLag() int { return m.maxLag }

// Summary summarizes a fitted model.
type Summary struct {
	ModelType        regressors.ModelType
	NTerms           int
	Terms            []SelectedTerm
	NObs             int // valid samples used for estimation
	ResidualVariance float64
	InfoValues       []float64
	LjungBox         *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, nil before Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	n := len(m.Residuals)
	variance := 0.0
	if n > 0 {
		variance = floats.Dot(m.Residuals, m.Residuals) / float64(n)
	}

	return &Summary{
		ModelType:        m.run.ModelType,
		NTerms:           len(m.Terms),
		Terms:            m.Terms,
		NObs:             n,
		ResidualVariance: variance,
		InfoValues:       m.InfoValues,
		LjungBox:         stats.LjungBox(m.Residuals, 10, len(m.Terms)),
	}
}

// String renders the fitted model equation.
func (m *Model) String() string {
	if !m.fitted {
		return "unfitted model"
	}
	s := "y(k) ="
	for i, term := range m.Terms {
		if i > 0 {
			s += " +"
		}
		s += fmt.Sprintf(" %.4f*%s", term.Coefficient, term.Term)
	}
	return s
}

// columns copies the named candidate columns into a new matrix, in order.
func columns(psi *mat.Dense, idxs []int) *mat.Dense {
	rows, _ := psi.Dims()
	out := mat.NewDense(rows, len(idxs), nil)
	for j, idx := range idxs {
		for r := 0; r < rows; r++ {
			out.Set(r, j, psi.At(r, idx))
		}
	}
	return out
}

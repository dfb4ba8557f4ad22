package frols

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/CaioMizerkowski/sysidentpy/basis"
	"github.com/CaioMizerkowski/sysidentpy/regressors"
)

// Config holds configuration for FROLS model identification.
type Config struct {
	// YLag lists the output lags in the candidate space. UpTo(n) covers
	// the common 1..n form.
	YLag []int
	// XLag lists the input lags, one list per input. When nil, every
	// input gets UpTo(2) at fit time.
	XLag [][]int
	// Degree is the polynomial nonlinearity degree (default: 2).
	Degree int
	// ModelType selects the candidate space: NARMAX, NARX, NAR or NFIR.
	ModelType regressors.ModelType
	// Basis overrides the basis expansion. When nil, Polynomial{Degree}
	// is used.
	Basis basis.Function

	// OrderSelection picks the term count automatically with an
	// information criterion. When false, exactly NTerms terms are
	// selected.
	OrderSelection bool
	// NTerms is the term count in fixed-size mode.
	NTerms int
	// NInfoValues is the number of nested model sizes scanned in
	// automatic mode (default: 10).
	NInfoValues int
	// Criterion names the information criterion for automatic mode:
	// "aic", "aicc", "bic", "fpe" or "lilc" (default: "aic").
	Criterion string

	// ExtendedLeastSquares enables iterative colored-noise bias
	// correction. Only valid for NARMAX models.
	ExtendedLeastSquares bool
	// ELag is the residual lag order used by extended least squares
	// (default: 2).
	ELag int
	// ELSMaxIter caps the extended least squares iterations (default: 30).
	ELSMaxIter int
	// ELSTolerance is the coefficient-change threshold that stops the
	// extended least squares iteration (default: 1e-8).
	ELSTolerance float64

	// LeastNormFallback resolves singular estimation systems with the
	// minimum-norm solution instead of failing.
	LeastNormFallback bool

	// Logger receives a debug-level trace of selection rounds and
	// estimation warnings. Defaults to a nop logger.
	Logger *zap.Logger
}

// DefaultConfig returns the default FROLS configuration: a degree-2
// polynomial NARMAX candidate space with output and input lags up to 2,
// and automatic order selection by AIC over 10 model sizes.
func DefaultConfig() *Config {
	return &Config{
		YLag:           regressors.UpTo(2),
		Degree:         2,
		ModelType:      regressors.NARMAX,
		OrderSelection: true,
		NInfoValues:    10,
		Criterion:      "aic",
		ELag:           2,
		ELSMaxIter:     30,
		ELSTolerance:   1e-8,
	}
}

// normalize fills defaults for the given input count and validates the
// configuration. It returns a copy; the caller's Config is not modified.
func (c *Config) normalize(nInputs int) (*Config, error) {
	cfg := *c
	if cfg.Degree == 0 {
		cfg.Degree = 2
	}
	if cfg.XLag == nil && cfg.ModelType.UsesInput() {
		cfg.XLag = make([][]int, nInputs)
		for i := range cfg.XLag {
			cfg.XLag[i] = regressors.UpTo(2)
		}
	}
	if cfg.Basis == nil {
		cfg.Basis = basis.Polynomial{Degree: cfg.Degree}
	}
	if cfg.Criterion == "" {
		cfg.Criterion = "aic"
	}
	if cfg.ELag == 0 {
		cfg.ELag = 2
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if err := regressors.ValidateSpec(cfg.Degree, cfg.YLag, cfg.XLag, nInputs, cfg.ModelType); err != nil {
		return nil, err
	}
	if cfg.OrderSelection {
		if cfg.NInfoValues < 1 {
			return nil, fmt.Errorf("%w: NInfoValues must be positive in automatic mode, got %d", regressors.ErrInvalidRegressorSpec, cfg.NInfoValues)
		}
		if _, err := criterionByName(cfg.Criterion); err != nil {
			return nil, err
		}
	} else if cfg.NTerms < 1 {
		return nil, fmt.Errorf("%w: NTerms must be positive in fixed-size mode, got %d", regressors.ErrInvalidRegressorSpec, cfg.NTerms)
	}
	if cfg.ExtendedLeastSquares {
		if cfg.ModelType != regressors.NARMAX {
			return nil, fmt.Errorf("%w: extended least squares requires a NARMAX model, got %s", regressors.ErrInvalidRegressorSpec, cfg.ModelType)
		}
		if cfg.ELag < 1 {
			return nil, fmt.Errorf("%w: ELag must be positive, got %d", regressors.ErrInvalidRegressorSpec, cfg.ELag)
		}
	}
	return &cfg, nil
}

package frols

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/CaioMizerkowski/sysidentpy/regressors"
)

// criterionFunc scores a nested model from the valid sample count n, the
// term count r, and the residual variance sigma2 = RSS/n. Lower is
// better; larger criteria penalize more terms.
type criterionFunc func(n, r int, sigma2 float64) float64

// The penalized log-variance forms below treat every selected term as
// one effective parameter.
var criteria = map[string]criterionFunc{
	"aic": func(n, r int, sigma2 float64) float64 {
		return float64(n)*logVar(sigma2) + 2*float64(r)
	},
	"aicc": func(n, r int, sigma2 float64) float64 {
		aic := float64(n)*logVar(sigma2) + 2*float64(r)
		if n-r-1 <= 0 {
			return math.Inf(1)
		}
		return aic + 2*float64(r)*float64(r+1)/float64(n-r-1)
	},
	"bic": func(n, r int, sigma2 float64) float64 {
		return float64(n)*logVar(sigma2) + float64(r)*math.Log(float64(n))
	},
	"fpe": func(n, r int, sigma2 float64) float64 {
		if n-r <= 0 {
			return math.Inf(1)
		}
		return float64(n)*logVar(sigma2) + float64(n)*math.Log(float64(n+r)/float64(n-r))
	},
	"lilc": func(n, r int, sigma2 float64) float64 {
		return float64(n)*logVar(sigma2) + 2*float64(r)*math.Log(math.Log(float64(n)))
	},
}

// logVar guards the log of a residual variance that collapsed to zero on
// an exactly-fit model.
func logVar(sigma2 float64) float64 {
	if sigma2 <= 0 {
		sigma2 = math.SmallestNonzeroFloat64
	}
	return math.Log(sigma2)
}

// Criteria lists the recognized information criterion names.
func Criteria() []string {
	names := make([]string, 0, len(criteria))
	for name := range criteria {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func criterionByName(name string) (criterionFunc, error) {
	fn, ok := criteria[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown information criterion %q (have %s)",
			regressors.ErrInvalidRegressorSpec, name, strings.Join(Criteria(), ", "))
	}
	return fn, nil
}

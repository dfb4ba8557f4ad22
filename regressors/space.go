package regressors

import "fmt"

// ModelType selects which signals feed the candidate term space.
type ModelType int

const (
	// NARMAX models use lagged outputs and inputs, with lagged residual
	// terms available for extended least squares noise compensation.
	NARMAX ModelType = iota
	// NARX models use lagged outputs and inputs.
	NARX
	// NAR models use lagged outputs only.
	NAR
	// NFIR models use lagged inputs only.
	NFIR
)

// String returns the model type name.
func (m ModelType) String() string {
	switch m {
	case NARMAX:
		return "NARMAX"
	case NARX:
		return "NARX"
	case NAR:
		return "NAR"
	case NFIR:
		return "NFIR"
	default:
		return fmt.Sprintf("ModelType(%d)", int(m))
	}
}

// UsesOutput reports whether the candidate space includes output lags.
func (m ModelType) UsesOutput() bool { return m != NFIR }

// UsesInput reports whether the candidate space includes input lags.
func (m ModelType) UsesInput() bool { return m != NAR }

// UpTo returns the lag list {1, ..., n}, the scalar lag specification.
func UpTo(n int) []int {
	if n < 1 {
		return nil
	}
	lags := make([]int, n)
	for i := range lags {
		lags[i] = i + 1
	}
	return lags
}

// MaxLag returns the largest lag across the output lag list and every
// per-input lag list.
func MaxLag(ylag []int, xlag [][]int) int {
	maxLag := 0
	for _, lag := range ylag {
		if lag > maxLag {
			maxLag = lag
		}
	}
	for _, lags := range xlag {
		for _, lag := range lags {
			if lag > maxLag {
				maxLag = lag
			}
		}
	}
	return maxLag
}

// SpecMaxLag returns the largest lag among the lag lists the model type
// actually uses, which is the number of warm-up samples a fit discards.
func SpecMaxLag(ylag []int, xlag [][]int, model ModelType) int {
	if !model.UsesOutput() {
		ylag = nil
	}
	if !model.UsesInput() {
		xlag = nil
	}
	return MaxLag(ylag, xlag)
}

// ValidateSpec checks degree and lag bounds against the model type and
// input count. It returns ErrInvalidRegressorSpec on any inconsistency.
func ValidateSpec(degree int, ylag []int, xlag [][]int, nInputs int, model ModelType) error {
	if degree < 1 {
		return fmt.Errorf("%w: degree must be positive, got %d", ErrInvalidRegressorSpec, degree)
	}
	if model.UsesOutput() {
		if len(ylag) == 0 {
			return fmt.Errorf("%w: %s requires at least one output lag", ErrInvalidRegressorSpec, model)
		}
		for _, lag := range ylag {
			if lag < 1 || lag >= codeBase {
				return fmt.Errorf("%w: output lag %d out of range [1, %d]", ErrInvalidRegressorSpec, lag, codeBase-1)
			}
		}
	}
	if model.UsesInput() {
		if nInputs < 1 {
			return fmt.Errorf("%w: %s requires at least one input", ErrInvalidRegressorSpec, model)
		}
		if len(xlag) != nInputs {
			return fmt.Errorf("%w: %d input lag lists for %d inputs", ErrInvalidRegressorSpec, len(xlag), nInputs)
		}
		for i, lags := range xlag {
			if len(lags) == 0 {
				return fmt.Errorf("%w: input %d has no lags", ErrInvalidRegressorSpec, i+1)
			}
			for _, lag := range lags {
				if lag < 1 || lag >= codeBase {
					return fmt.Errorf("%w: input %d lag %d out of range [1, %d]", ErrInvalidRegressorSpec, i+1, lag, codeBase-1)
				}
			}
		}
	} else if nInputs != 0 {
		return fmt.Errorf("%w: %s takes no inputs, got %d", ErrInvalidRegressorSpec, model, nInputs)
	}
	return nil
}

// ColumnCodes returns the code of every column of the lagged matrix built
// by BuildLagged, in column order: the constant column, then output lags,
// then input lags per input.
func ColumnCodes(ylag []int, xlag [][]int, model ModelType) []Code {
	codes := []Code{ConstantCode}
	if model.UsesOutput() {
		for _, lag := range ylag {
			codes = append(codes, NewCode(1, lag))
		}
	}
	if model.UsesInput() {
		for i, lags := range xlag {
			for _, lag := range lags {
				codes = append(codes, NewCode(i+2, lag))
			}
		}
	}
	return codes
}

// Combinations enumerates every multiset of degree column indices drawn
// from 0..n-1, as non-decreasing tuples in lexicographic order. Both the
// candidate term table and the polynomial expansion iterate this order,
// which fixes the column indexing used throughout a fit.
func Combinations(n, degree int) [][]int {
	if n < 1 || degree < 1 {
		return nil
	}
	var combos [][]int
	idx := make([]int, degree)
	for {
		combos = append(combos, append([]int(nil), idx...))
		j := degree - 1
		for j >= 0 && idx[j] == n-1 {
			j--
		}
		if j < 0 {
			return combos
		}
		idx[j]++
		for k := j + 1; k < degree; k++ {
			idx[k] = idx[j]
		}
	}
}

// Space generates the full candidate term table for the given bounds.
// The table is ordered by Combinations over the lagged-matrix columns;
// the first entry is always the intercept term. The table order defines
// the candidate indices used by selection and the predefined-regressors
// path.
func Space(degree int, ylag []int, xlag [][]int, nInputs int, model ModelType) ([]Term, error) {
	if err := ValidateSpec(degree, ylag, xlag, nInputs, model); err != nil {
		return nil, err
	}
	codes := ColumnCodes(ylag, xlag, model)
	combos := Combinations(len(codes), degree)
	terms := make([]Term, len(combos))
	for i, combo := range combos {
		term := make(Term, degree)
		for j, col := range combo {
			term[j] = codes[col]
		}
		terms[i] = term
	}
	return terms, nil
}

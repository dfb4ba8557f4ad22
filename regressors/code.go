package regressors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRegressorSpec reports degree or lag bounds that cannot
	// describe a valid candidate space.
	ErrInvalidRegressorSpec = errors.New("regressors: invalid regressor specification")

	// ErrInsufficientData reports fewer samples than the requested lags need.
	ErrInsufficientData = errors.New("regressors: insufficient data for the requested lags")
)

// codeBase separates the signal index from the lag inside a Code.
// Lags are therefore limited to codeBase-1.
const codeBase = 1000

// Code identifies one lagged-signal factor of a candidate term.
// The constant factor is 0, output lags are 1*codeBase+lag, and input i
// (0-based) lags are (i+2)*codeBase+lag. y(k-1) is 1001, x1(k-2) is 2002.
type Code int

// ConstantCode is the reserved code for the constant (intercept) factor.
const ConstantCode Code = 0

// NewCode builds the code for signal index at the given lag.
// Signal 1 is the output; signal i+2 is input i.
func NewCode(signal, lag int) Code {
	return Code(signal*codeBase + lag)
}

// Signal returns the signal index encoded in c (0 = constant, 1 = output,
// i+2 = input i).
func (c Code) Signal() int { return int(c) / codeBase }

// Lag returns the lag encoded in c. The constant code has lag 0.
func (c Code) Lag() int { return int(c) % codeBase }

// IsConstant reports whether c is the constant factor.
func (c Code) IsConstant() bool { return c == ConstantCode }

// String renders c in the conventional notation: "1", "y(k-1)", "x2(k-3)".
func (c Code) String() string {
	switch {
	case c.IsConstant():
		return "1"
	case c.Signal() == 1:
		return fmt.Sprintf("y(k-%d)", c.Lag())
	default:
		return fmt.Sprintf("x%d(k-%d)", c.Signal()-1, c.Lag())
	}
}

// Term is one candidate regressor: the product of its factor codes.
// A term holds exactly one code per degree slot; lower-degree terms are
// padded with ConstantCode. The intercept term is all ConstantCode.
type Term []Code

// Degree returns the number of non-constant factors in t.
func (t Term) Degree() int {
	d := 0
	for _, c := range t {
		if !c.IsConstant() {
			d++
		}
	}
	return d
}

// MaxLag returns the largest lag referenced by t, 0 for the intercept.
func (t Term) MaxLag() int {
	maxLag := 0
	for _, c := range t {
		if c.Lag() > maxLag {
			maxLag = c.Lag()
		}
	}
	return maxLag
}

// IsIntercept reports whether t is the constant term.
func (t Term) IsIntercept() bool { return t.Degree() == 0 }

// Equal reports whether t and other name the same term.
func (t Term) Equal(other Term) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders t with factors in descending code order, matching the
// conventional display: "x1(k-1)y(k-1)", "y(k-2)^2", "1".
func (t Term) String() string {
	if t.IsIntercept() {
		return "1"
	}

	// Codes within a term are non-decreasing; walk backwards and group
	// repeated factors into powers.
	var b strings.Builder
	for i := len(t) - 1; i >= 0; {
		c := t[i]
		if c.IsConstant() {
			i--
			continue
		}
		power := 1
		for i-power >= 0 && t[i-power] == c {
			power++
		}
		b.WriteString(c.String())
		if power > 1 {
			fmt.Fprintf(&b, "^%d", power)
		}
		i -= power
	}
	return b.String()
}

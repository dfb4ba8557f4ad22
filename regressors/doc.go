// Package regressors encodes candidate NARMAX regressors and builds the
// lagged-signal matrices they are evaluated from.
//
// Every candidate term is a plain immutable value: a Term is a fixed-size
// multiset of integer Codes, one per degree slot, where each Code names a
// signal and a lag. The encoding is positional: the constant factor is 0,
// output lags are 1000+lag, and input i lags are (i+2)*1000+lag, so
// y(k-1) is 1001 and x1(k-2) is 2002.
//
// # Candidate Term Tables
//
// Space generates the full search space for a set of lag and degree
// bounds. The table order is fixed by Combinations and shared with the
// basis expansion, so a term's table index is also its column index in
// the information matrix:
//
//	terms, err := regressors.Space(2, regressors.UpTo(2), [][]int{{1, 2}}, 1, regressors.NARX)
//	// terms[0].String() == "1"
//	// terms[1].String() == "y(k-1)"
//
// Lag specifications come in two forms: UpTo(n) expands the scalar form
// into {1..n}, and explicit lists select individual lags per signal
// (one list per input for xlag).
//
// # Lagged Matrices
//
// BuildLagged assembles the raw lagged columns (constant, output lags,
// input lags) that a basis function expands into candidate regressor
// columns. The first MaxLag rows carry unresolved history and are
// dropped during expansion.
package regressors

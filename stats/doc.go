// Package stats provides residual diagnostics for fitted NARMAX models.
//
// An adequate model leaves residuals that look like white noise: the
// residual autocorrelation and the cross-correlation between residuals
// and each input should be near zero at every nonzero lag. The functions
// here compute those sequences; the acceptance threshold policy is left
// to the caller.
//
// # Correlation Diagnostics
//
// Compute correlations with confidence bounds:
//
//	acf := stats.ACFWithConfidence(model.Residuals, 20)
//	bad := stats.SignificantLags(acf.Values, acf.ConfBounds)
//	// bad is empty for white residuals (up to the confidence level)
//
//	ccf := stats.CCFWithConfidence(model.Residuals, input, 20)
//
// # Whiteness Test
//
// Test residuals for autocorrelation as a single statistic:
//
//	lb := stats.LjungBox(model.Residuals, 10, len(model.Terms))
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
//
// BoxPierce is the uncorrected variant of the same test, and
// DurbinWatson screens for first-order autocorrelation alone.
package stats

// Package frols implements Forward Regression Orthogonal Least Squares
// (FROLS) model structure selection for polynomial NARMAX models.
//
// FROLS ranks candidate regressors by their Error Reduction Ratio (ERR):
// each selection round orthogonalizes every remaining candidate against
// the already-selected terms with modified Gram-Schmidt and keeps the
// candidate explaining the largest fraction of the remaining output
// variance. Selection runs either for a fixed term count or, in
// automatic mode, until an information criterion scanned over nested
// model sizes picks the best size.
//
// # Basic Usage
//
// Fit a model with a fixed number of terms:
//
//	cfg := frols.DefaultConfig()
//	cfg.OrderSelection = false
//	cfg.NTerms = 3
//	model := frols.New(cfg)
//	if err := model.Fit(x, y); err != nil {
//	    log.Fatal(err)
//	}
//	for _, term := range model.Terms {
//	    fmt.Printf("%-16s %9.4f  ERR=%.6f\n", term.Term, term.Coefficient, term.ERR)
//	}
//
// # Automatic Order Selection
//
// Scan nested model sizes and keep the size minimizing a criterion:
//
//	cfg := frols.DefaultConfig()
//	cfg.Criterion = "bic"
//	cfg.NInfoValues = 15
//	model := frols.New(cfg)
//	err := model.Fit(x, y)
//	// model.InfoValues holds the criterion trace for reporting
//
// # Colored Noise
//
// Under colored residual noise, enable extended least squares to
// de-bias the coefficient estimates:
//
//	cfg.ExtendedLeastSquares = true
//	cfg.ELag = 2
//
// # Validation
//
// Analyze model residuals to check adequacy:
//
//	summary := model.Summary()
//	// summary.LjungBox tests residual whiteness
//	// stats.CCFWithConfidence(model.Residuals, input, 20) checks inputs
//
// Fitted models support OneStepAhead prediction and free-run simulation
// with Predict (input-driven models) or Forecast (NAR models).
package frols

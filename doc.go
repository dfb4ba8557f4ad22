// Package sysidentpy provides nonlinear dynamic system identification with NARMAX models.
//
// The library identifies parsimonious polynomial NARMAX models from
// input/output time-series data: it builds a candidate space of nonlinear
// regressor terms from lagged signals, ranks and selects the most relevant
// terms with the Forward Regression Orthogonal Least Squares (FROLS)
// algorithm, estimates their coefficients by ordinary or extended least
// squares, and validates the fitted model through residual correlation
// diagnostics.
//
// # Features
//
//   - Polynomial NARMAX, NARX, NAR, and NFIR model structures
//   - FROLS term selection ranked by Error Reduction Ratio (ERR)
//   - Automatic model-order selection using information criteria (AIC, AICc, BIC, FPE, LILC)
//   - Ordinary least squares and extended least squares (colored-noise bias correction)
//   - Residual autocorrelation and cross-correlation diagnostics
//   - One-step-ahead prediction and free-run simulation of fitted models
//
// # Quick Start
//
// Fit a NARX model with a fixed number of terms:
//
//	cfg := frols.DefaultConfig()
//	cfg.ModelType = regressors.NARX
//	cfg.OrderSelection = false
//	cfg.NTerms = 3
//	model := frols.New(cfg)
//	err := model.Fit(x, y)
//	yhat, _ := model.Predict(x, y[:model.MaxLag()])
//
// Let an information criterion pick the model size:
//
//	cfg := frols.DefaultConfig()
//	cfg.Criterion = "bic"
//	cfg.NInfoValues = 15
//	model := frols.New(cfg)
//	err := model.Fit(x, y)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regressors: regressor encoding, candidate term tables, lagged matrices
//   - basis: basis-function expansion of lagged signals into candidate columns
//   - frols: term selection (FROLS), model fitting, prediction
//   - estimators: least squares and extended least squares parameter estimation
//   - stats: residual diagnostics (ACF, CCF, Ljung-Box)
//
// # References
//
//   - Billings, S. A. (2013). Nonlinear System Identification: NARMAX Methods
//     in the Time, Frequency, and Spatio-Temporal Domains
//   - Chen, S., Billings, S. A., & Luo, W. (1989). Orthogonal least squares
//     methods and their application to non-linear system identification
package sysidentpy

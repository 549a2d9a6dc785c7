// Package stats provides small numeric helpers used when analysing model
// outputs: standard errors that tolerate missing values, z-scores, min-max
// rescaling, rounding to a multiple and binomial confidence intervals.
//
// Missing values are represented as NaN. Helpers that accept an ignoreNaN
// flag skip them; others document how NaN inputs are handled.
package stats

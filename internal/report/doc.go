// Package report turns the final_summary table into analyst output: cohort
// statistics split on a profit-margin threshold, a two-sample confidence
// comparison, a profit-margin histogram, and a full CSV export.
package report

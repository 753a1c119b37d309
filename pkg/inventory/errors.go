package inventory

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, config)
//	if errors.Is(err, inventory.ErrConnectionFailed) {
//	    // Database unreachable: fatal, nothing was loaded
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrFileRead indicates a CSV file could not be read or parsed.
	// Recovered per file: the run continues with the remaining files.
	ErrFileRead = errors.New("file read failed")

	// ErrSchemaMismatch indicates a CSV is missing a column its destination
	// table requires. Aborts that file's load only.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrLoadFailed indicates one or more CSV loads failed during a run.
	ErrLoadFailed = errors.New("load failed")

	// ErrAggregationFailed indicates the final_summary rebuild failed.
	// Fatal: the summary depends on all source tables being present.
	ErrAggregationFailed = errors.New("aggregation failed")

	// ErrExportFailed indicates the report or CSV export failed.
	ErrExportFailed = errors.New("export failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrLoadFailed), errors.Is(err, ErrFileRead), errors.Is(err, ErrSchemaMismatch):
		return ExitLoadFailed
	case errors.Is(err, ErrAggregationFailed):
		return ExitAggregationFailed
	case errors.Is(err, ErrExportFailed):
		return ExitExportFailed
	}

	errStr := err.Error()

	// Flag and argument parse errors surface as plain errors from the CLI layer
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts ",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}

package inventory

import (
	"errors"
	"fmt"
	"time"
)

// ColumnType is the inferred storage type for a CSV column.
type ColumnType int

const (
	ColumnText   ColumnType = iota // free-form text (the fallback)
	ColumnBigint                   // integer-valued in every sampled row
	ColumnDouble                   // numeric-valued in every sampled row
)

// SQLType returns the PostgreSQL type used when creating the column.
func (t ColumnType) SQLType() string {
	switch t {
	case ColumnBigint:
		return "BIGINT"
	case ColumnDouble:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

// String returns a human-readable string representation of the ColumnType.
func (t ColumnType) String() string {
	switch t {
	case ColumnBigint:
		return "bigint"
	case ColumnDouble:
		return "double"
	case ColumnText:
		return "text"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Column is a destination table column derived from a CSV header field.
// Names are sanitized (trimmed, spaces replaced with underscores) but
// otherwise preserve the header's casing; DDL and DML quote them.
type Column struct {
	Name string
	Type ColumnType
}

// CSVFile describes a discovered CSV file and its inferred schema.
type CSVFile struct {
	// Path is the absolute or data-dir-relative path to the file.
	Path string

	// Name is the filename only: "purchases.csv".
	Name string

	// Table is the destination table name: filename minus extension, lower-cased.
	Table string

	// Columns are the sanitized header columns with types inferred from a
	// bounded sample of data rows.
	Columns []Column

	// HasDataRows reports whether at least one data row follows the header.
	// Files without data rows are skipped with a logged warning.
	HasDataRows bool

	// Size and modification time, for logging.
	SizeBytes  int64
	ModifiedAt time.Time
}

// PipelineConfig contains all parameters for an ingestion run.
type PipelineConfig struct {
	// DataDir is the directory scanned for CSV files.
	DataDir string

	// ConnectionString is the PostgreSQL connection string (URI or DSN format).
	ConnectionString string

	// ChunkSize is the row batch size for chunked loads. Zero means
	// DefaultChunkSize.
	ChunkSize int

	// LogDir is where the run log file is written. Zero value means
	// DefaultLogDir.
	LogDir string

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the PipelineConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PipelineConfig) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf("DataDir is required: %w", ErrInvalidConfig))
	}

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	if c.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("chunk size cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ReportConfig contains all parameters for the reporting and export step.
type ReportConfig struct {
	// ConnectionString is the PostgreSQL connection string (URI or DSN format).
	ConnectionString string

	// ExportPath is the destination for the final_summary CSV export.
	// Zero value means DefaultExportPath.
	ExportPath string

	// ChartPath is the destination for the distribution chart HTML file.
	// Zero value means DefaultChartPath.
	ChartPath string

	// MarginThreshold splits vendors into high/low performing cohorts:
	// rows with ProfitMargin above the threshold are the high cohort.
	MarginThreshold float64

	// Confidence is the confidence level for cohort interval estimates.
	// Zero value means DefaultConfidence (0.95).
	Confidence float64

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ReportConfig has all required fields and valid values.
func (c *ReportConfig) Validate() error {
	var errs []error

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("ConnectionString is required: %w", ErrInvalidConfig))
	}

	// Confidence defaults to 0.95 if unset
	if c.Confidence == 0 {
		c.Confidence = DefaultConfidence
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		errs = append(errs, fmt.Errorf("confidence must be in (0, 1): %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

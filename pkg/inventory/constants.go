package inventory

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Run completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or parameters
	ExitConnectionError   = 11 // Failed to connect to database
	ExitLoadFailed        = 12 // One or more CSV loads failed
	ExitAggregationFailed = 13 // final_summary rebuild failed
	ExitExportFailed      = 14 // Report or CSV export failed
)

const (
	// DefaultChunkSize is the number of CSV rows written per batch during a load.
	// Batching bounds memory usage regardless of input file size.
	DefaultChunkSize = 10000

	// DefaultLogDir is where run logs are written when no log directory is configured.
	DefaultLogDir = "logs"

	// DefaultExportPath is the default destination for the final_summary CSV export.
	DefaultExportPath = "final_summary.csv"

	// DefaultChartPath is the default destination for the report's distribution chart.
	DefaultChartPath = "profit_margin_distribution.html"

	// DefaultConfidence is the confidence level used for cohort interval estimates.
	DefaultConfidence = 0.95

	// CSVExtension is the file extension recognized by directory discovery.
	CSVExtension = ".csv"

	// TypeInferenceSampleRows caps how many data rows the scanner inspects
	// when inferring column types from values.
	TypeInferenceSampleRows = 100
)

// Source and derived table names. Each discovered CSV maps to the table named
// after its filename minus extension; these four receive canonical schemas.
const (
	TablePurchases      = "purchases"
	TablePurchasePrices = "purchase_prices"
	TableVendorInvoice  = "vendor_invoice"
	TableSales          = "sales"

	// SummaryTable is the derived per-vendor/per-brand profitability table.
	// It is fully recomputed (drop and replace) on every aggregation run.
	SummaryTable = "final_summary"
)

package inventory

// FileScanner defines the interface for discovering CSV files and inferring
// their destination schemas. Implementations must be safe for concurrent use
// by multiple goroutines.
type FileScanner interface {
	// ScanDirectory recursively scans a directory and returns metadata for
	// every file with a .csv extension, sorted by path. A missing or empty
	// directory yields an empty result, not an error. Columns and
	// HasDataRows are not populated; call ReadSchema per file so a malformed
	// file fails that file alone, not the whole discovery.
	ScanDirectory(dataDir string) ([]CSVFile, error)

	// ReadSchema reads the file's header and a bounded sample of data rows,
	// filling in Columns (sanitized names, inferred types) and HasDataRows.
	// Errors wrap ErrFileRead.
	ReadSchema(file *CSVFile) error
}

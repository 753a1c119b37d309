// Package scanner provides CSV file discovery and schema inference.
//
// The scanner package is responsible for:
//   - Recursively discovering CSV files in the data directory
//   - Mapping each filename (minus extension) to a destination table name
//   - Sanitizing header column names for use as SQL identifiers
//   - Inferring column types from a bounded sample of data rows
//
// Discovery and schema reading are separate steps: a malformed file surfaces
// when its schema is read, so one bad file never aborts discovery of its
// siblings.
package scanner

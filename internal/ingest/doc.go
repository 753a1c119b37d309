// Package ingest streams discovered CSV files into their destination tables.
//
// Each file is loaded in one transaction: the destination table is dropped
// and recreated, then rows are copied in fixed-size batches. A failed load
// rolls the transaction back, leaving the previous table contents intact,
// and never aborts sibling files. Values that do not parse as the column's
// type load as NULL, mirroring TRY_CAST semantics.
package ingest

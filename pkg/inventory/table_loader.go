package inventory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableLoader defines the interface for streaming a CSV file into its
// destination table in fixed-size batches. A load fully replaces the table's
// previous contents.
type TableLoader interface {
	// LoadFile recreates the destination table for the given file and streams
	// its rows into it in chunkSize batches, returning the number of rows
	// inserted. The recreate and the load happen in one transaction, so a
	// failed load leaves the previous table contents untouched.
	LoadFile(ctx context.Context, pool *pgxpool.Pool, file CSVFile, chunkSize int) (int64, error)
}

// Aggregator defines the interface for rebuilding the final_summary table
// from the four source tables.
type Aggregator interface {
	// Rebuild drops and recreates final_summary from the current contents of
	// purchases, purchase_prices, vendor_invoice and sales. The recomputation
	// is pure and idempotent: unchanged sources yield identical output.
	Rebuild(ctx context.Context, pool *pgxpool.Pool) error
}

package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/db/manager"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Aggregator rebuilds the final_summary table.
// Stateless apart from its logger; safe for concurrent use.
type Aggregator struct {
	manager *manager.Manager
	logger  inventory.Logger
}

// New creates a new Aggregator.
// Panics if logger is nil.
func New(logger inventory.Logger) *Aggregator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Aggregator{manager: manager.New(), logger: logger}
}

// Rebuild drops and recreates final_summary from the current source tables
// in one transaction. The optional sources (purchase_prices, vendor_invoice)
// are created empty if no CSV ever loaded them; a missing purchases or sales
// table wraps inventory.ErrAggregationFailed and aborts the run.
func (a *Aggregator) Rebuild(ctx context.Context, pool *pgxpool.Pool) error {
	a.logger.Verbose("rebuilding %s", inventory.SummaryTable)
	start := time.Now()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v: %w", err, inventory.ErrAggregationFailed)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, table := range []string{inventory.TablePurchasePrices, inventory.TableVendorInvoice} {
		if err := a.manager.EnsureTable(ctx, tx, table); err != nil {
			return fmt.Errorf("%v: %w", err, inventory.ErrAggregationFailed)
		}
	}

	if _, err := tx.Exec(ctx, dropSummarySQL); err != nil {
		return fmt.Errorf("failed to drop %s: %v: %w", inventory.SummaryTable, err, inventory.ErrAggregationFailed)
	}

	tag, err := tx.Exec(ctx, createSummarySQL)
	if err != nil {
		return fmt.Errorf("summary query failed: %v: %w", err, inventory.ErrAggregationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s rebuild: %v: %w", inventory.SummaryTable, err, inventory.ErrAggregationFailed)
	}

	a.logger.Info("rebuilt %s: %d rows in %s",
		inventory.SummaryTable, tag.RowsAffected(), time.Since(start).Round(time.Millisecond))
	return nil
}

// ReadAll reads every final_summary row in deterministic order
// (TotalPurchaseDollars descending, then vendor and brand).
func ReadAll(ctx context.Context, pool *pgxpool.Pool) ([]inventory.SummaryRow, error) {
	rows, err := pool.Query(ctx, readSummarySQL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inventory.SummaryTable, err)
	}
	defer rows.Close()

	var result []inventory.SummaryRow
	for rows.Next() {
		var r inventory.SummaryRow
		if err := rows.Scan(
			&r.VendorNumber, &r.VendorName, &r.Brand, &r.Description,
			&r.PurchasePrice, &r.ActualPrice, &r.Volume,
			&r.TotalPurchaseQuantity, &r.TotalPurchaseDollars,
			&r.TotalSalesQuantity, &r.TotalSalesDollars, &r.TotalSalesPrice,
			&r.TotalExciseTax, &r.FreightCost,
			&r.GrossProfit, &r.ProfitMargin, &r.StockTurnover, &r.SalesToPurchaseRatio,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", inventory.SummaryTable, err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inventory.SummaryTable, err)
	}
	return result, nil
}

// Verify Aggregator implements the interface at compile time
var _ inventory.Aggregator = (*Aggregator)(nil)

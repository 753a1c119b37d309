package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Exporter writes final_summary rows to a CSV file.
type Exporter struct {
	logger inventory.Logger
}

// NewExporter creates a new Exporter.
// Panics if logger is nil.
func NewExporter(logger inventory.Logger) *Exporter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Exporter{logger: logger}
}

// WriteCSV writes rows to path, creating parent directories as needed and
// truncating any existing file. The header and column order match the
// final_summary table. Failures wrap inventory.ErrExportFailed.
func (e *Exporter) WriteCSV(path string, rows []inventory.SummaryRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory %s: %v: %w",
				dir, err, inventory.ErrExportFailed)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %v: %w",
			path, err, inventory.ErrExportFailed)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(inventory.SummaryColumns); err != nil {
		return fmt.Errorf("failed to write export header: %v: %w", err, inventory.ErrExportFailed)
	}
	for i := range rows {
		if err := w.Write(csvRecord(&rows[i])); err != nil {
			return fmt.Errorf("failed to write export row %d: %v: %w", i+1, err, inventory.ErrExportFailed)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export file %s: %v: %w", path, err, inventory.ErrExportFailed)
	}

	e.logger.Info("exported %d rows to %s", len(rows), path)
	return nil
}

func csvRecord(r *inventory.SummaryRow) []string {
	return []string{
		strconv.FormatInt(r.VendorNumber, 10),
		r.VendorName,
		r.Brand,
		r.Description,
		formatFloat(r.PurchasePrice),
		formatFloat(r.ActualPrice),
		strconv.FormatInt(r.Volume, 10),
		strconv.FormatInt(r.TotalPurchaseQuantity, 10),
		formatFloat(r.TotalPurchaseDollars),
		strconv.FormatInt(r.TotalSalesQuantity, 10),
		formatFloat(r.TotalSalesDollars),
		formatFloat(r.TotalSalesPrice),
		formatFloat(r.TotalExciseTax),
		formatFloat(r.FreightCost),
		formatFloat(r.GrossProfit),
		formatFloat(r.ProfitMargin),
		formatFloat(r.StockTurnover),
		formatFloat(r.SalesToPurchaseRatio),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package manager

import (
	"fmt"
	"strings"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// canonicalSchemas are the columns the aggregation query depends on, per
// source table. A load always creates these columns even when the CSV omits
// some of them (the omitted ones stay NULL and aggregate as zero); extra CSV
// columns are appended with their inferred types. Brand is TEXT: brand codes
// are numeric in practice but that is not guaranteed.
var canonicalSchemas = map[string][]inventory.Column{
	inventory.TablePurchases: {
		{Name: "VendorNumber", Type: inventory.ColumnBigint},
		{Name: "VendorName", Type: inventory.ColumnText},
		{Name: "Brand", Type: inventory.ColumnText},
		{Name: "Description", Type: inventory.ColumnText},
		{Name: "PurchasePrice", Type: inventory.ColumnDouble},
		{Name: "Quantity", Type: inventory.ColumnBigint},
		{Name: "Dollars", Type: inventory.ColumnDouble},
	},
	inventory.TablePurchasePrices: {
		{Name: "Brand", Type: inventory.ColumnText},
		{Name: "Price", Type: inventory.ColumnDouble},
		{Name: "Volume", Type: inventory.ColumnBigint},
	},
	inventory.TableVendorInvoice: {
		{Name: "VendorNumber", Type: inventory.ColumnBigint},
		{Name: "Freight", Type: inventory.ColumnDouble},
	},
	inventory.TableSales: {
		{Name: "VendorNo", Type: inventory.ColumnBigint},
		{Name: "Brand", Type: inventory.ColumnText},
		{Name: "SalesQuantity", Type: inventory.ColumnBigint},
		{Name: "SalesDollars", Type: inventory.ColumnDouble},
		{Name: "SalesPrice", Type: inventory.ColumnDouble},
		{Name: "ExciseTax", Type: inventory.ColumnDouble},
	},
}

// requiredColumns are the grouping keys each source table must carry.
// A CSV missing one of these aborts that file's load with a schema mismatch.
var requiredColumns = map[string][]string{
	inventory.TablePurchases:      {"VendorNumber", "Brand"},
	inventory.TablePurchasePrices: {"Brand"},
	inventory.TableVendorInvoice:  {"VendorNumber"},
	inventory.TableSales:          {"VendorNo", "Brand"},
}

// MergeSchema combines a CSV's inferred header columns with the canonical
// schema of its destination table.
//
// For the four known source tables: canonical columns come first (canonical
// types win over inferred ones), then any extra CSV columns in header order.
// Missing required columns wrap inventory.ErrSchemaMismatch. Unknown tables
// use the header schema as-is.
func MergeSchema(table string, header []inventory.Column) ([]inventory.Column, error) {
	canonical, known := canonicalSchemas[table]
	if !known {
		return header, nil
	}

	byName := make(map[string]inventory.Column, len(header))
	for _, c := range header {
		byName[strings.ToLower(c.Name)] = c
	}

	for _, name := range requiredColumns[table] {
		if _, ok := byName[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("table %s: missing required column %s: %w",
				table, name, inventory.ErrSchemaMismatch)
		}
	}

	merged := make([]inventory.Column, 0, len(canonical)+len(header))
	covered := make(map[string]bool, len(canonical))
	for _, c := range canonical {
		merged = append(merged, c)
		covered[strings.ToLower(c.Name)] = true
	}
	for _, c := range header {
		if !covered[strings.ToLower(c.Name)] {
			merged = append(merged, c)
		}
	}

	return merged, nil
}

// CanonicalColumn reports whether the named column is part of the table's
// canonical schema, and returns its canonical definition if so.
func CanonicalColumn(table, name string) (inventory.Column, bool) {
	for _, c := range canonicalSchemas[table] {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return inventory.Column{}, false
}

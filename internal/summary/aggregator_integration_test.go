package summary_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/files/scanner"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/ingest"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/logging"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/summary"
	testhelpers "github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/testing"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// loadFixtures ingests a full set of source CSVs so the aggregation query
// has all four tables to join.
func loadFixtures(t *testing.T, connString string, files map[string][]string) {
	t.Helper()

	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool,
		inventory.TablePurchases, inventory.TablePurchasePrices,
		inventory.TableVendorInvoice, inventory.TableSales, inventory.SummaryTable)

	dir := t.TempDir()
	for name, lines := range files {
		testhelpers.WriteCSV(t, dir, name, lines...)
	}

	logger := logging.NewNullLogger()
	svc := ingest.NewService(scanner.NewScanner(), ingest.NewLoader(logger), logger)
	require.NoError(t, svc.Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          dir,
		ConnectionString: connString,
	}))
}

func standardFixtures() map[string][]string {
	return map[string][]string{
		"purchases.csv": {
			"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
			"1,Vendor A,101,Gin,10,6,60",
			"1,Vendor A,101,Gin,10,4,40",
			"2,Vendor B,202,Rum,20,5,100",
		},
		"sales.csv": {
			"VendorNo,Brand,SalesQuantity,SalesDollars,SalesPrice,ExciseTax",
			"1,101,5,90,18,1.5",
			"1,101,3,60,20,1.0",
		},
		"purchase_prices.csv": {
			"Brand,Price,Volume",
			"101,15.99,750",
		},
		"vendor_invoice.csv": {
			"VendorNumber,Freight",
			"1,12.5",
			"1,7.5",
		},
	}
}

func findRow(t *testing.T, rows []inventory.SummaryRow, vendor int64, brand string) inventory.SummaryRow {
	t.Helper()
	for _, r := range rows {
		if r.VendorNumber == vendor && r.Brand == brand {
			return r
		}
	}
	t.Fatalf("no summary row for vendor %d brand %s", vendor, brand)
	return inventory.SummaryRow{}
}

func TestAggregator_Rebuild_DerivedMetrics(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	loadFixtures(t, connString, standardFixtures())

	pool := testhelpers.GetTestPool(t, connString)
	agg := summary.New(logging.NewNullLogger())
	ctx := context.Background()

	require.NoError(t, agg.Rebuild(ctx, pool))

	rows, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	r := findRow(t, rows, 1, "101")
	assert.Equal(t, "Vendor A", r.VendorName)
	assert.Equal(t, "Gin", r.Description)
	assert.Equal(t, int64(10), r.TotalPurchaseQuantity)
	assert.Equal(t, 100.0, r.TotalPurchaseDollars)
	assert.Equal(t, int64(8), r.TotalSalesQuantity)
	assert.Equal(t, 150.0, r.TotalSalesDollars)
	assert.Equal(t, 2.5, r.TotalExciseTax)
	assert.Equal(t, 20.0, r.FreightCost)
	assert.Equal(t, 15.99, r.ActualPrice)
	assert.Equal(t, int64(750), r.Volume)

	// GrossProfit = sales dollars - purchase dollars
	assert.Equal(t, 50.0, r.GrossProfit)
	// ProfitMargin is a ratio of gross profit to sales dollars
	assert.InDelta(t, 50.0/150.0, r.ProfitMargin, 1e-9)
	assert.InDelta(t, 0.8, r.StockTurnover, 1e-9)
	assert.InDelta(t, 1.5, r.SalesToPurchaseRatio, 1e-9)
}

func TestAggregator_Rebuild_TwoFileScenario(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)

	// Only purchases and sales are loaded; the optional freight and catalog
	// tables are created empty during the rebuild.
	loadFixtures(t, connString, map[string][]string{
		"purchases.csv": {
			"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
			"1,Vendor A,A,Gin,10,10,100",
		},
		"sales.csv": {
			"VendorNo,Brand,SalesQuantity,SalesDollars,SalesPrice,ExciseTax",
			"1,A,8,150,18.75,2.5",
		},
	})

	pool := testhelpers.GetTestPool(t, connString)
	agg := summary.New(logging.NewNullLogger())
	ctx := context.Background()

	require.NoError(t, agg.Rebuild(ctx, pool))
	rows, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := findRow(t, rows, 1, "A")
	assert.Equal(t, 50.0, r.GrossProfit)
	assert.InDelta(t, 0.333, r.ProfitMargin, 0.001)
	assert.InDelta(t, 0.8, r.StockTurnover, 1e-9)
	assert.Zero(t, r.FreightCost)
	assert.Zero(t, r.ActualPrice)
}

func TestAggregator_Rebuild_ZeroGuardsForUnsoldBrand(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	loadFixtures(t, connString, standardFixtures())

	pool := testhelpers.GetTestPool(t, connString)
	agg := summary.New(logging.NewNullLogger())
	ctx := context.Background()

	require.NoError(t, agg.Rebuild(ctx, pool))
	rows, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)

	// Vendor B brand 202 was purchased but never sold
	r := findRow(t, rows, 2, "202")
	assert.Equal(t, 100.0, r.TotalPurchaseDollars)
	assert.Zero(t, r.TotalSalesDollars)
	assert.Equal(t, -100.0, r.GrossProfit)
	assert.Zero(t, r.ProfitMargin)
	assert.Zero(t, r.StockTurnover)
	assert.Zero(t, r.SalesToPurchaseRatio)
	// No freight or catalog record either
	assert.Zero(t, r.FreightCost)
	assert.Zero(t, r.ActualPrice)
}

func TestAggregator_Rebuild_IsIdempotent(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	loadFixtures(t, connString, standardFixtures())

	pool := testhelpers.GetTestPool(t, connString)
	agg := summary.New(logging.NewNullLogger())
	ctx := context.Background()

	require.NoError(t, agg.Rebuild(ctx, pool))
	first, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)

	require.NoError(t, agg.Rebuild(ctx, pool))
	second, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregator_Rebuild_MissingSourceTableFails(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool,
		inventory.TablePurchases, inventory.TablePurchasePrices,
		inventory.TableVendorInvoice, inventory.TableSales, inventory.SummaryTable)

	agg := summary.New(logging.NewNullLogger())
	err := agg.Rebuild(context.Background(), pool)
	require.Error(t, err)
	assert.ErrorIs(t, err, inventory.ErrAggregationFailed)
}

func TestReadAll_OrderedByPurchaseDollars(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	loadFixtures(t, connString, standardFixtures())

	pool := testhelpers.GetTestPool(t, connString)
	agg := summary.New(logging.NewNullLogger())
	ctx := context.Background()

	require.NoError(t, agg.Rebuild(ctx, pool))
	rows, err := summary.ReadAll(ctx, pool)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.GreaterOrEqual(t, rows[0].TotalPurchaseDollars, rows[1].TotalPurchaseDollars)
}

package ingest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/files/scanner"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/ingest"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/logging"
	testhelpers "github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/testing"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

func newTestService() *ingest.Service {
	logger := logging.NewNullLogger()
	return ingest.NewService(scanner.NewScanner(), ingest.NewLoader(logger), logger)
}

func countRows(t *testing.T, connString, table string) int64 {
	t.Helper()
	pool := testhelpers.GetTestPool(t, connString)
	var n int64
	err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM "`+table+`"`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestService_Run_LoadsEveryFile(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "purchases", "sales")

	dir := t.TempDir()
	testhelpers.WriteCSV(t, dir, "purchases.csv",
		"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
		"1,Vendor A,101,Gin,10,6,60",
		"1,Vendor A,101,Gin,10,4,40",
		"2,Vendor B,202,Rum,20,5,100")
	testhelpers.WriteCSV(t, dir, "sales.csv",
		"VendorNo,Brand,SalesQuantity,SalesDollars,SalesPrice,ExciseTax",
		"1,101,8,150,18.75,2.5")

	err := newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          dir,
		ConnectionString: connString,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), countRows(t, connString, "purchases"))
	assert.Equal(t, int64(1), countRows(t, connString, "sales"))
}

func TestService_Run_EmptyDataDirIsNotAnError(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)

	err := newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          t.TempDir(),
		ConnectionString: connString,
	})
	assert.NoError(t, err)
}

func TestService_Run_SkipsHeaderOnlyFiles(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "sales")

	dir := t.TempDir()
	testhelpers.WriteCSV(t, dir, "sales.csv",
		"VendorNo,Brand,SalesQuantity,SalesDollars,SalesPrice,ExciseTax")

	err := newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          dir,
		ConnectionString: connString,
	})
	require.NoError(t, err)

	// Skipped entirely: no table was created
	var exists bool
	err = pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'sales')`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_Run_BadFileDoesNotBlockSiblings(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "purchases", "sales")

	dir := t.TempDir()
	// sales.csv is missing its required Brand column
	testhelpers.WriteCSV(t, dir, "sales.csv",
		"VendorNo,SalesDollars",
		"1,150")
	testhelpers.WriteCSV(t, dir, "purchases.csv",
		"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
		"1,Vendor A,101,Gin,10,10,100")

	err := newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          dir,
		ConnectionString: connString,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, inventory.ErrLoadFailed)

	// The good file still loaded
	assert.Equal(t, int64(1), countRows(t, connString, "purchases"))
}

func TestLoader_ReplacesPreviousContents(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "purchases")

	ctx := context.Background()
	svc := newTestService()

	dir1 := t.TempDir()
	testhelpers.WriteCSV(t, dir1, "purchases.csv",
		"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
		"1,Vendor A,101,Gin,10,6,60",
		"1,Vendor A,101,Gin,10,4,40")
	require.NoError(t, svc.Run(ctx, pool, inventory.PipelineConfig{
		DataDir: dir1, ConnectionString: connString,
	}))
	require.Equal(t, int64(2), countRows(t, connString, "purchases"))

	dir2 := t.TempDir()
	testhelpers.WriteCSV(t, dir2, "purchases.csv",
		"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
		"2,Vendor B,202,Rum,20,5,100")
	require.NoError(t, svc.Run(ctx, pool, inventory.PipelineConfig{
		DataDir: dir2, ConnectionString: connString,
	}))

	// Reload replaces, never appends
	assert.Equal(t, int64(1), countRows(t, connString, "purchases"))
}

func TestLoader_MissingCanonicalColumnsLoadAsNull(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "purchases")

	dir := t.TempDir()
	// Required keys only; Dollars, Quantity etc. are absent from the CSV
	testhelpers.WriteCSV(t, dir, "purchases.csv",
		"VendorNumber,Brand",
		"1,101")

	require.NoError(t, newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir: dir, ConnectionString: connString,
	}))

	var dollars *float64
	err := pool.QueryRow(context.Background(), `SELECT "Dollars" FROM purchases`).Scan(&dollars)
	require.NoError(t, err)
	assert.Nil(t, dollars)
}

func TestLoader_UnparseableValuesLoadAsNull(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "purchases")

	dir := t.TempDir()
	testhelpers.WriteCSV(t, dir, "purchases.csv",
		"VendorNumber,VendorName,Brand,Description,PurchasePrice,Quantity,Dollars",
		"1,Vendor A,101,Gin,not-a-number,10,100")

	require.NoError(t, newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir: dir, ConnectionString: connString,
	}))

	var price *float64
	err := pool.QueryRow(context.Background(), `SELECT "PurchasePrice" FROM purchases`).Scan(&price)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestLoader_ChunkedLoadCrossesBatchBoundary(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	pool := testhelpers.GetTestPool(t, connString)
	testhelpers.DropTables(t, pool, "vendor_invoice")

	dir := t.TempDir()
	lines := []string{"VendorNumber,Freight"}
	for i := 0; i < 25; i++ {
		lines = append(lines, "1,0.5")
	}
	testhelpers.WriteCSV(t, dir, "vendor_invoice.csv", lines...)

	require.NoError(t, newTestService().Run(context.Background(), pool, inventory.PipelineConfig{
		DataDir:          dir,
		ConnectionString: connString,
		ChunkSize:        10, // forces two full batches plus a partial flush
	}))

	assert.Equal(t, int64(25), countRows(t, connString, "vendor_invoice"))
}

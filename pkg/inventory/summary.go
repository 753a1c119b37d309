package inventory

// SummaryColumns is the column order of the final_summary table, preserved by
// the aggregation rebuild and by the CSV export. Descriptive columns come
// first, then the summed measures, then the derived metrics.
var SummaryColumns = []string{
	"VendorNumber",
	"VendorName",
	"Brand",
	"Description",
	"PurchasePrice",
	"ActualPrice",
	"Volume",
	"TotalPurchaseQuantity",
	"TotalPurchaseDollars",
	"TotalSalesQuantity",
	"TotalSalesDollars",
	"TotalSalesPrice",
	"TotalExciseTax",
	"FreightCost",
	"GrossProfit",
	"ProfitMargin",
	"StockTurnover",
	"SalesToPurchaseRatio",
}

// SummaryRow is one final_summary row: the profitability of a single
// (VendorNumber, Brand) pair. NULL measures read back as zero.
type SummaryRow struct {
	VendorNumber          int64
	VendorName            string
	Brand                 string
	Description           string
	PurchasePrice         float64
	ActualPrice           float64
	Volume                int64
	TotalPurchaseQuantity int64
	TotalPurchaseDollars  float64
	TotalSalesQuantity    int64
	TotalSalesDollars     float64
	TotalSalesPrice       float64
	TotalExciseTax        float64
	FreightCost           float64
	GrossProfit           float64
	ProfitMargin          float64
	StockTurnover         float64
	SalesToPurchaseRatio  float64
}

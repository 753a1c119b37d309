package summary

const dropSummarySQL = `DROP TABLE IF EXISTS final_summary`

// createSummarySQL builds final_summary from the four source tables.
//
// purchases drives the result: sales, freight and catalog prices hang off it
// with LEFT JOINs, so a (vendor, brand) pair that was purchased but never
// sold (or has no price/freight record) still appears with zeroed measures.
// ProfitMargin is a ratio, not a percentage. Every division guards its
// denominator; the guarded value is 0.
const createSummarySQL = `
CREATE TABLE final_summary AS
WITH freight_summary AS (
    SELECT
        "VendorNumber",
        SUM("Freight") AS "FreightCost"
    FROM vendor_invoice
    WHERE "VendorNumber" IS NOT NULL
    GROUP BY "VendorNumber"
),
price_summary AS (
    SELECT
        "Brand",
        MAX("Price")  AS "ActualPrice",
        MAX("Volume") AS "Volume"
    FROM purchase_prices
    WHERE "Brand" IS NOT NULL
    GROUP BY "Brand"
),
purchase_summary AS (
    SELECT
        p."VendorNumber",
        MAX(BTRIM(p."VendorName"))     AS "VendorName",
        p."Brand",
        MAX(p."Description")           AS "Description",
        MAX(p."PurchasePrice")         AS "PurchasePrice",
        COALESCE(SUM(p."Quantity"), 0) AS "TotalPurchaseQuantity",
        COALESCE(SUM(p."Dollars"), 0)  AS "TotalPurchaseDollars"
    FROM purchases p
    WHERE p."VendorNumber" IS NOT NULL
      AND p."Brand" IS NOT NULL
    GROUP BY p."VendorNumber", p."Brand"
),
sales_summary AS (
    SELECT
        s."VendorNo"                        AS "VendorNumber",
        s."Brand",
        COALESCE(SUM(s."SalesQuantity"), 0) AS "TotalSalesQuantity",
        COALESCE(SUM(s."SalesDollars"), 0)  AS "TotalSalesDollars",
        COALESCE(SUM(s."SalesPrice"), 0)    AS "TotalSalesPrice",
        COALESCE(SUM(s."ExciseTax"), 0)     AS "TotalExciseTax"
    FROM sales s
    WHERE s."VendorNo" IS NOT NULL
      AND s."Brand" IS NOT NULL
    GROUP BY s."VendorNo", s."Brand"
)
SELECT
    ps."VendorNumber",
    COALESCE(ps."VendorName", '')        AS "VendorName",
    ps."Brand",
    COALESCE(ps."Description", '')       AS "Description",
    COALESCE(ps."PurchasePrice", 0)      AS "PurchasePrice",
    COALESCE(pr."ActualPrice", 0)        AS "ActualPrice",
    COALESCE(pr."Volume", 0)             AS "Volume",
    ps."TotalPurchaseQuantity",
    ps."TotalPurchaseDollars",
    COALESCE(ss."TotalSalesQuantity", 0) AS "TotalSalesQuantity",
    COALESCE(ss."TotalSalesDollars", 0)  AS "TotalSalesDollars",
    COALESCE(ss."TotalSalesPrice", 0)    AS "TotalSalesPrice",
    COALESCE(ss."TotalExciseTax", 0)     AS "TotalExciseTax",
    COALESCE(fs."FreightCost", 0)        AS "FreightCost",
    COALESCE(ss."TotalSalesDollars", 0) - ps."TotalPurchaseDollars" AS "GrossProfit",
    CASE
        WHEN COALESCE(ss."TotalSalesDollars", 0) = 0 THEN 0
        ELSE (ss."TotalSalesDollars" - ps."TotalPurchaseDollars") / ss."TotalSalesDollars"
    END AS "ProfitMargin",
    CASE
        WHEN ps."TotalPurchaseQuantity" = 0 THEN 0
        ELSE COALESCE(ss."TotalSalesQuantity", 0)::double precision / ps."TotalPurchaseQuantity"
    END AS "StockTurnover",
    CASE
        WHEN ps."TotalPurchaseDollars" = 0 THEN 0
        ELSE COALESCE(ss."TotalSalesDollars", 0) / ps."TotalPurchaseDollars"
    END AS "SalesToPurchaseRatio"
FROM purchase_summary ps
LEFT JOIN sales_summary   ss ON ps."VendorNumber" = ss."VendorNumber" AND ps."Brand" = ss."Brand"
LEFT JOIN freight_summary fs ON ps."VendorNumber" = fs."VendorNumber"
LEFT JOIN price_summary   pr ON ps."Brand" = pr."Brand"
ORDER BY ps."TotalPurchaseDollars" DESC, ps."VendorNumber", ps."Brand"
`

// readSummarySQL reads final_summary back in a deterministic order, used by
// the exporter and the report.
const readSummarySQL = `
SELECT
    "VendorNumber", "VendorName", "Brand", "Description",
    "PurchasePrice", "ActualPrice", "Volume",
    "TotalPurchaseQuantity", "TotalPurchaseDollars",
    "TotalSalesQuantity", "TotalSalesDollars", "TotalSalesPrice",
    "TotalExciseTax", "FreightCost",
    "GrossProfit", "ProfitMargin", "StockTurnover", "SalesToPurchaseRatio"
FROM final_summary
ORDER BY "TotalPurchaseDollars" DESC, "VendorNumber", "Brand"
`

// Package summary rebuilds the final_summary table: one row of
// profitability metrics per (VendorNumber, Brand), derived from the four
// source tables in a single aggregation query.
//
// The rebuild is drop-and-replace inside one transaction and is a pure
// recomputation: running it twice over unchanged sources yields identical
// contents. All ratio metrics guard their denominators, so a pair with zero
// purchases or sales produces zeros, never an error.
package summary

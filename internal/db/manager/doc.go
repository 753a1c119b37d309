// Package manager owns destination table schemas and lifecycle.
//
// The manager package is responsible for:
//   - Canonical schemas for the four source tables and their required columns
//   - Merging a CSV's inferred header schema with the canonical schema
//   - Drop-and-recreate DDL, the explicit schema step that precedes each load
//
// Tables are recreated inside the caller's transaction, so a failed load
// rolls back to the previous table contents.
package manager

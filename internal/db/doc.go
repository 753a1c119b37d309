// Package db establishes PostgreSQL connection pools from a connection
// string and translates raw connection failures into actionable errors.
package db

package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Executor is the subset of pgx command execution the manager needs.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so tables can be recreated
// inside a load transaction.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Manager implements destination table lifecycle operations.
// Stateless and safe for concurrent use.
type Manager struct{}

// New creates a new table Manager.
func New() *Manager {
	return &Manager{}
}

// RecreateTable drops and recreates the table with the given columns.
// Run it on a transaction so a subsequent load failure restores the
// previous contents.
func (m *Manager) RecreateTable(ctx context.Context, exec Executor, table string, columns []inventory.Column) error {
	if len(columns) == 0 {
		return fmt.Errorf("table %q has no columns: %w", table, inventory.ErrSchemaMismatch)
	}

	if _, err := exec.Exec(ctx, BuildDropTableSQL(table)); err != nil {
		return fmt.Errorf("failed to drop table %q: %w", table, err)
	}
	if _, err := exec.Exec(ctx, BuildCreateTableSQL(table, columns)); err != nil {
		return fmt.Errorf("failed to create table %q: %w", table, err)
	}
	return nil
}

// EnsureTable creates the table with its canonical schema if it does not
// exist yet. Used for optional source tables the aggregation joins against.
func (m *Manager) EnsureTable(ctx context.Context, exec Executor, table string) error {
	canonical, known := canonicalSchemas[table]
	if !known {
		return fmt.Errorf("table %q has no canonical schema: %w", table, inventory.ErrSchemaMismatch)
	}
	if _, err := exec.Exec(ctx, BuildEnsureTableSQL(table, canonical)); err != nil {
		return fmt.Errorf("failed to ensure table %q: %w", table, err)
	}
	return nil
}

// BuildDropTableSQL returns the DROP statement for a table.
func BuildDropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{table}.Sanitize())
}

// BuildCreateTableSQL returns the CREATE statement for a table. Column names
// keep their CSV casing and are quoted via pgx.Identifier.
func BuildCreateTableSQL(table string, columns []inventory.Column) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = fmt.Sprintf("%s %s", pgx.Identifier{c.Name}.Sanitize(), c.Type.SQLType())
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pgx.Identifier{table}.Sanitize(), strings.Join(defs, ", "))
}

// BuildEnsureTableSQL returns the CREATE IF NOT EXISTS statement for a table.
func BuildEnsureTableSQL(table string, columns []inventory.Column) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = fmt.Sprintf("%s %s", pgx.Identifier{c.Name}.Sanitize(), c.Type.SQLType())
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", pgx.Identifier{table}.Sanitize(), strings.Join(defs, ", "))
}

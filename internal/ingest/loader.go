package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/db/manager"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/files/scanner"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Loader streams a CSV file into its destination table in chunked batches.
type Loader struct {
	manager *manager.Manager
	logger  inventory.Logger
}

// NewLoader creates a new chunked table loader.
// Panics if logger is nil.
func NewLoader(logger inventory.Logger) *Loader {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{
		manager: manager.New(),
		logger:  logger,
	}
}

// LoadFile recreates the destination table and copies the file's rows into
// it in chunkSize batches, all in one transaction. Returns the number of
// rows inserted. file.Columns must already be populated via ReadSchema.
func (l *Loader) LoadFile(ctx context.Context, pool *pgxpool.Pool, file inventory.CSVFile, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = inventory.DefaultChunkSize
	}

	columns, err := manager.MergeSchema(file.Table, file.Columns)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return 0, fmt.Errorf("could not open %s: %v: %w", file.Path, err, inventory.ErrFileRead)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %v: %w", file.Name, err, inventory.ErrFileRead)
	}

	// Map each CSV field position to its slot in the merged column list.
	slot := make(map[string]int, len(columns))
	for i, c := range columns {
		slot[strings.ToLower(c.Name)] = i
	}
	headerNames := scanner.SanitizeColumns(header)
	fieldSlot := make([]int, len(headerNames))
	for i, name := range headerNames {
		j, ok := slot[strings.ToLower(name)]
		if !ok {
			j = -1
		}
		fieldSlot[i] = j
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction for %s: %w", file.Table, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := l.manager.RecreateTable(ctx, tx, file.Table, columns); err != nil {
		return 0, err
	}

	columnNames := make([]string, len(columns))
	for i, c := range columns {
		columnNames[i] = c.Name
	}

	var total int64
	chunk := make([][]any, 0, chunkSize)

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{file.Table}, columnNames, pgx.CopyFromRows(chunk))
		if err != nil {
			return fmt.Errorf("failed to copy batch into %s: %w", file.Table, err)
		}
		total += n
		l.logger.Verbose("  inserted %d rows into %s (%d total)", n, file.Table, total)
		chunk = chunk[:0]
		return nil
	}

	for {
		rec, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// Malformed row aborts this file's load; the deferred
			// rollback restores the previous table contents.
			return 0, fmt.Errorf("malformed row in %s: %v: %w", file.Name, readErr, inventory.ErrFileRead)
		}

		row := make([]any, len(columns))
		for i := 0; i < len(rec) && i < len(fieldSlot); i++ {
			if j := fieldSlot[i]; j >= 0 {
				row[j] = parseValue(rec[i], columns[j].Type)
			}
		}

		chunk = append(chunk, row)
		if len(chunk) == chunkSize {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}

	if err := flush(); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit load of %s: %w", file.Table, err)
	}
	return total, nil
}

// parseValue converts a CSV field into the column's Go value. Empty fields
// and values that do not parse as the column's type load as NULL.
func parseValue(raw string, t inventory.ColumnType) any {
	val := strings.TrimSpace(raw)
	if val == "" {
		return nil
	}

	switch t {
	case inventory.ColumnBigint:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil
		}
		return n
	case inventory.ColumnDouble:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return val
	}
}

// Verify Loader implements the interface at compile time
var _ inventory.TableLoader = (*Loader)(nil)

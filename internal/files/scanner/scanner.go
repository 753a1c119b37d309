package scanner

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Scanner discovers CSV files and infers destination table schemas.
// Safe for concurrent use by multiple goroutines.
type Scanner struct {
	sampleRows int
}

// NewScanner creates a new file scanner. Type inference inspects at most
// inventory.TypeInferenceSampleRows data rows per file.
func NewScanner() *Scanner {
	return &Scanner{sampleRows: inventory.TypeInferenceSampleRows}
}

// ScanDirectory recursively scans dataDir and returns metadata for every
// .csv file (case-insensitive), sorted by path. A missing directory yields
// an empty result, not an error.
func (s *Scanner) ScanDirectory(dataDir string) ([]inventory.CSVFile, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat data directory %s: %w", dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data path is not a directory: %s", dataDir)
	}

	var files []inventory.CSVFile
	err = filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), inventory.CSVExtension) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		files = append(files, inventory.CSVFile{
			Path:       path,
			Name:       d.Name(),
			Table:      TableNameForFile(d.Name()),
			SizeBytes:  fi.Size(),
			ModifiedAt: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic load order
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// TableNameForFile maps a CSV filename to its destination table name:
// extension stripped, spaces replaced with underscores, lower-cased.
func TableNameForFile(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	return strings.ToLower(base)
}

// ReadSchema reads the file's header and a bounded sample of data rows,
// filling in file.Columns and file.HasDataRows. A file with no header at all
// is treated as having zero data rows, not as an error. Parse failures wrap
// inventory.ErrFileRead.
func (s *Scanner) ReadSchema(file *inventory.CSVFile) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("could not open %s: %v: %w", file.Path, err, inventory.ErrFileRead)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		file.Columns = nil
		file.HasDataRows = false
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %v: %w", file.Name, err, inventory.ErrFileRead)
	}

	names := SanitizeColumns(header)

	// Per-column flags for sample-based type inference. Empty values are
	// treated as NULL and do not disqualify a numeric type.
	allInt := make([]bool, len(names))
	allFloat := make([]bool, len(names))
	seen := make([]bool, len(names))
	for i := range names {
		allInt[i] = true
		allFloat[i] = true
	}

	rows := 0
	for rows < s.sampleRows {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed row in %s: %v: %w", file.Name, err, inventory.ErrFileRead)
		}
		rows++

		for i := 0; i < len(names) && i < len(rec); i++ {
			val := strings.TrimSpace(rec[i])
			if val == "" {
				continue
			}
			seen[i] = true
			if _, err := strconv.ParseInt(val, 10, 64); err != nil {
				allInt[i] = false
			}
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				allFloat[i] = false
			}
		}
	}

	columns := make([]inventory.Column, len(names))
	for i, name := range names {
		columns[i] = inventory.Column{Name: name, Type: inferredType(seen[i], allInt[i], allFloat[i])}
	}

	file.Columns = columns
	file.HasDataRows = rows > 0
	return nil
}

func inferredType(seen, allInt, allFloat bool) inventory.ColumnType {
	switch {
	case !seen:
		// No values sampled: keep the widest type
		return inventory.ColumnText
	case allInt:
		return inventory.ColumnBigint
	case allFloat:
		return inventory.ColumnDouble
	default:
		return inventory.ColumnText
	}
}

// SanitizeColumns normalizes raw header fields into SQL-safe column names:
// UTF-8 BOM stripped, whitespace trimmed, inner spaces replaced with
// underscores. Empty names become column_N; duplicates get a _N suffix so
// the destination table is always creatable.
func SanitizeColumns(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]int, len(header))

	for i, raw := range header {
		name := strings.TrimPrefix(raw, "\ufeff")
		name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		key := strings.ToLower(name)
		if n, dup := used[key]; dup {
			used[key] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			used[key] = 1
		}
		names[i] = name
	}
	return names
}

// Verify Scanner implements the interface at compile time
var _ inventory.FileScanner = (*Scanner)(nil)

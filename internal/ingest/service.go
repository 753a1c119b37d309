package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/checksum"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Service orchestrates an ingestion run: discovery, then one chunked load
// per file. File-level failures (unreadable file, missing required column)
// are logged and recovered so sibling files still load; the run as a whole
// still fails if any file failed.
//
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type Service struct {
	scanner  inventory.FileScanner
	loader   inventory.TableLoader
	logger   inventory.Logger
	checksum checksum.SHA256
}

// NewService creates a new ingestion service with all dependencies injected.
// Panics if any dependency is nil: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-run.
func NewService(scanner inventory.FileScanner, loader inventory.TableLoader, logger inventory.Logger) *Service {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{scanner: scanner, loader: loader, logger: logger, checksum: checksum.New()}
}

// Run discovers every CSV under config.DataDir and loads each into its
// destination table. Returns an error wrapping inventory.ErrLoadFailed if
// any file failed; an empty or missing data directory is a warning, not an
// error.
func (s *Service) Run(ctx context.Context, pool *pgxpool.Pool, config inventory.PipelineConfig) error {
	runID := uuid.New()
	s.logger.Info("starting ingestion run %s (data dir: %s)", runID, config.DataDir)

	files, err := s.scanner.ScanDirectory(config.DataDir)
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		s.logger.Warn("no CSV files under %s", config.DataDir)
		return nil
	}

	failed := 0
	for _, file := range files {
		if err := s.loadOne(ctx, pool, file, config.ChunkSize); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("run %s: %d of %d file loads failed: %w",
			runID, failed, len(files), inventory.ErrLoadFailed)
	}
	s.logger.Info("ingestion run %s complete: %d files loaded", runID, len(files))
	return nil
}

func (s *Service) loadOne(ctx context.Context, pool *pgxpool.Pool, file inventory.CSVFile, chunkSize int) error {
	if err := s.scanner.ReadSchema(&file); err != nil {
		s.logger.Warn("skipping %s: %v", file.Name, err)
		return err
	}
	if !file.HasDataRows {
		s.logger.Warn("skipping empty file: %s", file.Path)
		return nil
	}

	s.logger.Verbose("loading %s -> table %s (%d columns)", file.Path, file.Table, len(file.Columns))
	if sum, err := s.checksum.CalculateFile(file.Path); err == nil {
		s.logger.Verbose("  %s sha256=%s", file.Name, sum)
	}
	rows, err := s.loader.LoadFile(ctx, pool, file, chunkSize)
	if err != nil {
		s.logger.Error("failed to load %s into table %s: %v", file.Name, file.Table, err)
		return err
	}

	s.logger.Info("loaded %d rows into %s from %s", rows, file.Table, file.Name)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/db"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/files/scanner"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load CSV files into source tables",
	Long: `Ingest scans the data directory and bulk-loads each CSV file into its
own table, named after the file. Each table is dropped and recreated, so a
run fully replaces that file's previous contents.

final_summary is not touched; run "inventory aggregate" (or "inventory run")
to rebuild it from the freshly loaded tables.

Examples:
  inventory ingest --data-dir ./data
  inventory ingest --chunk-size 5000 -v`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

var ingestFlags pipelineFlagValues

func init() {
	rootCmd.AddCommand(ingestCmd)
	registerPipelineFlags(ingestCmd, &ingestFlags)
}

func runIngest(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildPipelineConfig(&ingestFlags, verbose)
	if err != nil {
		return err
	}

	logger, closeLogger := newRunLogger(config.LogDir, verbose)
	defer closeLogger()

	service := ingest.NewService(scanner.NewScanner(), ingest.NewLoader(logger), logger)

	ctx, cancel := newSignalContext()
	defer cancel()

	pool, err := db.Connect(ctx, config.ConnectionString)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := service.Run(ctx, pool, config); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	return nil
}

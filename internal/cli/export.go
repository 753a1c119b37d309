package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/db"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/logging"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/report"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/summary"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write final_summary to a CSV file",
	Long: `Export writes every final_summary row to a CSV file, in the table's
column order, sorted by total purchase dollars descending.

Examples:
  inventory export
  inventory export -o reports/final_summary.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportFlags reportFlagValues

func init() {
	rootCmd.AddCommand(exportCmd)
	registerReportFlags(exportCmd, &exportFlags, false)
}

func runExport(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildReportConfig(&exportFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)

	ctx, cancel := newSignalContext()
	defer cancel()

	pool, err := db.Connect(ctx, config.ConnectionString)
	if err != nil {
		return err
	}
	defer pool.Close()

	rows, err := summary.ReadAll(ctx, pool)
	if err != nil {
		return fmt.Errorf("%v: %w", err, inventory.ErrExportFailed)
	}
	return report.NewExporter(logger).WriteCSV(config.ExportPath, rows)
}

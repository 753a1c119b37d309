package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/db"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/logging"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze final_summary and produce analyst output",
	Long: `Report reads final_summary and produces the full analyst output:

1. A CSV export of every summary row
2. A profit-margin histogram as a standalone HTML file
3. Cohort statistics (brands above and below the margin threshold) with
   confidence intervals, printed to stdout
4. Welch's t-test comparing the two cohorts' mean margins

Examples:
  inventory report
  inventory report --margin-threshold 0.2 --confidence 0.99
  inventory report -o reports/summary.csv --chart reports/margins.html`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var reportFlags reportFlagValues

func init() {
	rootCmd.AddCommand(reportCmd)
	registerReportFlags(reportCmd, &reportFlags, true)
}

func runReport(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	config, err := buildReportConfig(&reportFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	service := report.NewService(report.NewExporter(logger), logger)

	ctx, cancel := newSignalContext()
	defer cancel()

	pool, err := db.Connect(ctx, config.ConnectionString)
	if err != nil {
		return err
	}
	defer pool.Close()

	return service.Run(ctx, pool, config, os.Stdout)
}

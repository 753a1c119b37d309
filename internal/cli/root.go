package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  _                      _
 (_)_ ____   _____ _ __ | |_ ___  _ __ _   _
 | | '_ \ \ / / _ \ '_ \| __/ _ \| '__| | | |
 | | | | \ V /  __/ | | | || (_) | |  | |_| |
 |_|_| |_|\_/ \___|_| |_|\__\___/|_|   \__, |
                                       |___/`

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "CSV-to-PostgreSQL inventory analysis pipeline",
	Long: asciiLogo + `

inventory ingests vendor CSV exports into PostgreSQL, aggregates them into
a per-brand profitability summary, and produces analyst reports.

The pipeline stages:
  ingest     Discover CSV files and bulk-load them into source tables
  aggregate  Rebuild the final_summary table from the source tables
  run        ingest followed by aggregate
  export     Write final_summary to a CSV file
  report     Cohort statistics, significance test, and margin histogram

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  12 - One or more CSV loads failed
  13 - final_summary rebuild failed
  14 - Export or report output failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for inventory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

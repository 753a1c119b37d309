package report

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/summary"
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// Cohort names used in the stats table and the t-test summary.
const (
	cohortHigh = "high margin"
	cohortLow  = "low margin"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Service produces the analyst report from the final_summary table.
type Service struct {
	exporter *Exporter
	logger   inventory.Logger
}

// NewService creates a new report Service.
// Panics if any dependency is nil.
func NewService(exporter *Exporter, logger inventory.Logger) *Service {
	if exporter == nil {
		panic("exporter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{exporter: exporter, logger: logger}
}

// Run reads final_summary, writes the CSV export and the margin histogram,
// and renders the cohort statistics to out. An empty summary table is not an
// error: the export and chart are still written and the report says so.
func (s *Service) Run(ctx context.Context, pool *pgxpool.Pool, cfg inventory.ReportConfig, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rows, err := summary.ReadAll(ctx, pool)
	if err != nil {
		return fmt.Errorf("%v: %w", err, inventory.ErrExportFailed)
	}
	s.logger.Verbose("loaded %d summary rows", len(rows))

	if err := s.exporter.WriteCSV(cfg.ExportPath, rows); err != nil {
		return err
	}

	margins := make([]float64, len(rows))
	var high, low []float64
	for i, r := range rows {
		margins[i] = r.ProfitMargin
		if r.ProfitMargin >= cfg.MarginThreshold {
			high = append(high, r.ProfitMargin)
		} else {
			low = append(low, r.ProfitMargin)
		}
	}

	if err := WriteMarginHistogram(cfg.ChartPath, margins, cfg.MarginThreshold); err != nil {
		return err
	}
	s.logger.Info("wrote margin histogram to %s", cfg.ChartPath)

	s.render(out, cfg, rows, high, low)
	return nil
}

func (s *Service) render(out io.Writer, cfg inventory.ReportConfig, rows []inventory.SummaryRow, high, low []float64) {
	fmt.Fprintln(out, titleStyle.Render("Vendor performance report"))
	fmt.Fprintf(out, "%d brands, margin threshold %.2f, confidence %.0f%%\n\n",
		len(rows), cfg.MarginThreshold, cfg.Confidence*100)

	if len(rows) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("final_summary is empty; run the pipeline first"))
		return
	}

	cohorts := []CohortStats{
		Describe(cohortHigh, high, cfg.Confidence),
		Describe(cohortLow, low, cfg.Confidence),
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Cohort", "Brands", "Mean margin", "Std dev", "Min", "Max",
			fmt.Sprintf("%.0f%% CI", cfg.Confidence*100))
	for _, c := range cohorts {
		t.Row(
			c.Name,
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%.4f", c.Mean),
			fmt.Sprintf("%.4f", c.StdDev),
			fmt.Sprintf("%.4f", c.Min),
			fmt.Sprintf("%.4f", c.Max),
			fmt.Sprintf("[%.4f, %.4f]", c.CILow, c.CIHigh),
		)
	}
	fmt.Fprintln(out, t.Render())

	if res, ok := WelchTTest(high, low, cfg.Confidence); ok {
		verdict := "not significant"
		if res.Significant {
			verdict = "significant"
		}
		fmt.Fprintf(out, "\nWelch's t-test: t=%.4f, df=%.1f, p=%.4g (%s at %.0f%% confidence)\n",
			res.TStatistic, res.DegreesOfFreedom, res.PValue, verdict, cfg.Confidence*100)
	} else {
		fmt.Fprintln(out, mutedStyle.Render("\nt-test skipped: each cohort needs at least two brands"))
	}
}

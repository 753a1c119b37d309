package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// histogramBins is the number of buckets in the profit-margin histogram.
const histogramBins = 20

// WriteMarginHistogram renders a histogram of profit margins to a standalone
// HTML file at path. An empty input still produces a (blank) chart so the
// output file always exists after a successful report run.
func WriteMarginHistogram(path string, margins []float64, threshold float64) error {
	labels, counts := binMargins(margins, histogramBins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Profit Margin Distribution",
			Subtitle: fmt.Sprintf("%d brands, cohort threshold %.2f", len(margins), threshold),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Profit margin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Brands"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries("brands", data)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create chart directory %s: %v: %w",
				dir, err, inventory.ErrExportFailed)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %v: %w", path, err, inventory.ErrExportFailed)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %v: %w", err, inventory.ErrExportFailed)
	}
	return nil
}

// binMargins buckets values into bins equal-width bins across [min, max].
// Returns the bin labels (lower bounds) and per-bin counts.
func binMargins(values []float64, bins int) ([]string, []int) {
	labels := make([]string, bins)
	counts := make([]int, bins)
	if len(values) == 0 {
		for i := range labels {
			labels[i] = ""
		}
		return labels, counts
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / float64(bins)
	if width == 0 {
		// All values identical; one populated bin.
		width = 1
	}

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3f", lo+float64(i)*width)
	}
	return labels, counts
}

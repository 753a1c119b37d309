package report

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CohortStats describes one margin cohort of final_summary rows.
type CohortStats struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	// CILow and CIHigh bound the mean at the configured confidence level.
	CILow  float64
	CIHigh float64
}

// TTestResult is a Welch's two-sample t-test over the margin cohorts.
type TTestResult struct {
	TStatistic       float64
	DegreesOfFreedom float64
	PValue           float64
	// Significant is true when PValue < 1 - confidence.
	Significant bool
}

// Describe computes cohort statistics over values at the given confidence
// level. Fewer than two values yields a degenerate interval equal to the
// mean (or zeros for an empty cohort).
func Describe(name string, values []float64, confidence float64) CohortStats {
	s := CohortStats{Name: name, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Mean = stat.Mean(values, nil)
	s.Min = values[0]
	s.Max = values[0]
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.CILow = s.Mean
	s.CIHigh = s.Mean
	if len(values) < 2 {
		return s
	}

	s.StdDev = math.Sqrt(stat.Variance(values, nil))
	dist := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    float64(len(values) - 1),
	}
	t := dist.Quantile(1 - (1-confidence)/2)
	margin := t * s.StdDev / math.Sqrt(float64(len(values)))
	s.CILow = s.Mean - margin
	s.CIHigh = s.Mean + margin
	return s
}

// WelchTTest runs Welch's unequal-variance t-test between two samples.
// Returns ok=false when either sample has fewer than two values or both
// variances are zero, in which case no test statistic exists.
func WelchTTest(a, b []float64, confidence float64) (TTestResult, bool) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, false
	}

	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)
	na := float64(len(a))
	nb := float64(len(b))

	se2 := varA/na + varB/nb
	if se2 == 0 {
		return TTestResult{}, false
	}

	t := (meanA - meanB) / math.Sqrt(se2)

	// Welch-Satterthwaite degrees of freedom.
	num := se2 * se2
	den := (varA/na)*(varA/na)/(na-1) + (varB/nb)*(varB/nb)/(nb-1)
	df := num / den

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.CDF(-math.Abs(t))

	return TTestResult{
		TStatistic:       t,
		DegreesOfFreedom: df,
		PValue:           p,
		Significant:      p < 1-confidence,
	}, true
}

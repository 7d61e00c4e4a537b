package pathstat

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/stochsim/sim"
)

// Summary condenses a sample of values into its usual descriptive
// statistics. Quantiles are empirical (no interpolation).
type Summary struct {
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Q05    float64
	Median float64
	Q95    float64
}

// Terminal returns a copy of the final row of m: the value of every path
// at the horizon.
func Terminal(m sim.Matrix) []float64 {
	if m.Rows() == 0 {
		return nil
	}
	last := m[m.Rows()-1]
	out := make([]float64, len(last))
	copy(out, last)
	return out
}

// Summarize computes the Summary of xs without mutating it. An empty
// sample yields a zero Summary.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(xs, nil),
		Std:    stat.StdDev(xs, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// MeanPath returns the average trajectory: the mean across paths at every
// time step.
func MeanPath(m sim.Matrix) []float64 {
	out := make([]float64, m.Rows())
	for i := range m {
		out[i] = stat.Mean(m[i], nil)
	}
	return out
}

package pathstat

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/stochsim/sim"
)

// LogReturns returns the step-to-step log returns of a single path.
// Paths shorter than two points have no returns.
func LogReturns(path []float64) []float64 {
	if len(path) < 2 {
		return nil
	}
	out := make([]float64, len(path)-1)
	for i := range out {
		out[i] = math.Log(path[i+1] / path[i])
	}
	return out
}

// RealizedVol is the annualized sample standard deviation of the log
// returns of one path observed at interval dt (in years).
func RealizedVol(path []float64, dt float64) float64 {
	r := LogReturns(path)
	if len(r) < 2 {
		return 0
	}
	return stat.StdDev(r, nil) / math.Sqrt(dt)
}

// TerminalCorrelation is the Pearson correlation between the terminal
// values of two runs, matched path by path.
func TerminalCorrelation(a, b sim.Matrix) float64 {
	return stat.Correlation(Terminal(a), Terminal(b), nil)
}

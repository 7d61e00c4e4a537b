package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Request holds the per-call parameters of a simulation. The same Request
// shape serves every process; fields a process has no use for (V0 under
// GBM) are ignored.
type Request struct {
	// S0 is the initial value placed in row 0 of every path.
	S0 float64 `yaml:"s0"`
	// V0 is the initial variance, used only by stochastic-volatility
	// processes.
	V0 float64 `yaml:"v0"`
	// T is the time horizon in years.
	T float64 `yaml:"t"`
	// Paths is the number of independent sample paths (columns).
	Paths int `yaml:"paths"`
	// Steps is the number of time steps; the returned grid has Steps+1 rows.
	Steps int `yaml:"steps"`
	// Seed reseeds the process's draw stream before generating when
	// nonzero. Zero leaves the stream where the previous call left it.
	Seed int64 `yaml:"seed"`
	// Antithetic negates every Brownian increment, producing the mirror
	// image of the paths the same seed generates without it.
	Antithetic bool `yaml:"antithetic"`
}

// Dt returns the uniform step width T/Steps.
func (r Request) Dt() float64 {
	return r.T / float64(r.Steps)
}

// Times returns the simulation time grid: Steps+1 equally spaced points
// from 0 to T inclusive.
func (r Request) Times() []float64 {
	if r.Steps < 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, r.Steps+1), 0, r.T)
}

// Validate reports whether the request describes a well-posed simulation.
// Processes skip it by default; see the validation option on the model
// constructors.
func (r Request) Validate() error {
	if r.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidParameter, r.Steps)
	}
	if r.Paths < 1 {
		return fmt.Errorf("%w: paths must be at least 1, got %d", ErrInvalidParameter, r.Paths)
	}
	if r.T <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %f", ErrInvalidParameter, r.T)
	}
	return nil
}

package sim

// Process generates sample paths of a stochastic process. Implementations
// hold their model parameters and a draw stream; repeated calls continue
// that stream unless the request carries a seed.
type Process interface {
	// Simulate returns a (Steps+1)×Paths grid of sampled values whose
	// row 0 is the initial condition. The grid is newly allocated and
	// owned by the caller.
	Simulate(req Request) (Matrix, error)
}

// VarianceProcess is a Process that evolves an instantaneous variance
// alongside the price and can return both grids from one set of draws.
type VarianceProcess interface {
	Process

	// SimulateWithVariance returns the price grid and the variance grid
	// of the same run. It consumes exactly the draws Simulate consumes.
	SimulateWithVariance(req Request) (price, variance Matrix, err error)
}

// Forkable is a Process that can produce an independent copy of itself
// over a caller-supplied draw stream. Forks share parameters but never
// generator state, which makes them safe to run concurrently.
type Forkable interface {
	Process

	Fork(src *NormalSource) Process
}

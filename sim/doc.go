// Package sim provides core primitives for Monte Carlo path simulation.
//
// The package defines the fundamental types shared by all stochastic
// process implementations:
//
//   - [Matrix]: dense path grid, one row per time step, one column per path
//   - [Request]: per-call simulation parameters (horizon, grid, seed)
//   - [Process]: interface for path-generating processes
//   - [NormalSource]: seedable standard-normal draw stream
//   - [Ensemble]: parallel path generation over independent draw streams
//
// # Example
//
//	proc := models.NewGBM(0.05, 0.2)
//	paths, _ := proc.Simulate(sim.Request{S0: 100, T: 1, Steps: 252, Paths: 1000, Seed: 42})
//
// # Thread Safety
//
// Process and NormalSource instances are NOT thread-safe. For parallel
// generation, use the [Ensemble] type, which gives every worker a forked
// process over an independently seeded source.
package sim

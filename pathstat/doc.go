// Package pathstat computes summary statistics over simulated path grids.
//
// The package operates on [sim.Matrix] values produced by any process:
//
//   - [Terminal]: the cross-section of final values
//   - [Summarize]: moments and quantiles of a sample
//   - [MeanPath]: the average trajectory
//   - [LogReturns] / [RealizedVol]: per-path return analysis
//   - [TerminalCorrelation]: dependence between two runs
//
// # Example
//
//	paths, _ := proc.Simulate(req)
//	summary := pathstat.Summarize(pathstat.Terminal(paths))
package pathstat

// Package models provides the stochastic processes the simulator samples.
//
// Each model implements the [sim.Process] interface, holding its
// parameters and a private draw stream:
//
//   - [GBM]: geometric Brownian motion via its closed-form solution
//   - [Heston]: square-root stochastic volatility via Euler or Milstein stepping
//   - [Basket]: correlated multi-asset geometric Brownian motion
//
// Processes are built directly or through [New] with an options map:
//
//	proc, err := models.New("heston", map[string]any{
//		"mu": 0.03, "kappa": 2.0, "theta": 0.04, "eta": 0.3, "rho": -0.7,
//	})
//
// # Reproducibility
//
// A process owns one draw stream for its lifetime. Successive simulations
// continue that stream; a request carrying a nonzero seed rewinds it to a
// fixed point first, making the run reproducible draw for draw.
package models

package models

import (
	"fmt"
	"math"

	"github.com/san-kum/stochsim/sim"
)

// Heston is the square-root stochastic-volatility model: instantaneous
// variance mean-reverts at rate Kappa toward Theta with vol-of-vol Eta,
// and its driving noise is correlated with the price noise by Rho.
type Heston struct {
	Mu    float64
	Kappa float64
	Theta float64
	Eta   float64
	Rho   float64
	// Milstein selects the higher-order variance update; construction
	// defaults it on.
	Milstein bool

	src    *sim.NormalSource
	strict bool
}

func NewHeston(mu, kappa, theta, eta, rho float64, opts ...Option) *Heston {
	s := newSettings(opts)
	return &Heston{
		Mu:       mu,
		Kappa:    kappa,
		Theta:    theta,
		Eta:      eta,
		Rho:      rho,
		Milstein: !s.euler,
		src:      s.src,
		strict:   s.strict,
	}
}

// Simulate generates price paths, discarding the variance grid the run
// evolves internally. It consumes exactly the draws SimulateWithVariance
// consumes.
func (h *Heston) Simulate(req sim.Request) (sim.Matrix, error) {
	price, _, err := h.simulate(req)
	return price, err
}

// SimulateWithVariance generates price paths together with the variance
// grid of the same run. Row 0 of the price grid is exactly S0 and row 0
// of the variance grid is V0 (reflected to |V0| when negative).
func (h *Heston) SimulateWithVariance(req sim.Request) (sim.Matrix, sim.Matrix, error) {
	return h.simulate(req)
}

func (h *Heston) simulate(req sim.Request) (sim.Matrix, sim.Matrix, error) {
	if h.strict {
		if err := h.validate(req); err != nil {
			return nil, nil, err
		}
	}
	if req.Seed != 0 {
		h.src.Reseed(req.Seed)
	}

	sign := 1.0
	if req.Antithetic {
		sign = -1.0
	}
	dt := req.Dt()
	sqdt := math.Sqrt(dt)

	steps := req.Steps
	if steps < 0 {
		steps = 0
	}

	// Both grids are drawn in full before stepping: all variance draws
	// first, then all price draws.
	z1 := sim.NewMatrix(steps, req.Paths)
	h.src.FillMatrix(z1)
	z2 := sim.NewMatrix(steps, req.Paths)
	h.src.FillMatrix(z2)

	// Correlate before any antithetic flip; the flip applies to both
	// correlated grids.
	c := math.Sqrt(1 - h.Rho*h.Rho)
	for i := range z1 {
		for j := range z1[i] {
			z2[i][j] = sign * (h.Rho*z1[i][j] + c*z2[i][j])
			z1[i][j] *= sign
		}
	}

	rows := steps + 1
	v := sim.NewMatrix(rows, req.Paths)
	x := sim.NewMatrix(rows, req.Paths)
	for j := range v[0] {
		v[0][j] = req.V0
	}

	for i := 0; i < steps; i++ {
		vi, vn := v[i], v[i+1]
		for j := range vi {
			dv := h.Kappa*(h.Theta-vi[j])*dt + h.Eta*math.Sqrt(vi[j])*sqdt*z1[i][j]
			if h.Milstein {
				dv += h.Eta * h.Eta / 4 * (z1[i][j]*z1[i][j] - 1) * dt
			}
			vn[j] = vi[j] + dv
		}

		// Reflect the whole variance history accumulated so far, negating
		// negative entries rather than clamping them. Rows past i+1 are
		// still zero, so sweeping 0..i+1 touches everything a full-grid
		// sweep would. With a negative V0 this re-folds row 0 itself,
		// which is the one case where the history-wide sweep is
		// observable.
		for k := 0; k <= i+1; k++ {
			row := v[k]
			for j, val := range row {
				if val < 0 {
					row[j] = -val
				}
			}
		}

		// The log-price advances on the post-reflection variance at i.
		xi, xn := x[i], x[i+1]
		for j := range xi {
			xn[j] = xi[j] + (h.Mu-0.5*vi[j])*dt + math.Sqrt(vi[j])*sqdt*z2[i][j]
		}
	}

	price := sim.NewMatrix(rows, req.Paths)
	for i := range price {
		for j := range price[i] {
			price[i][j] = req.S0 * math.Exp(x[i][j])
		}
	}
	return price, v, nil
}

func (h *Heston) validate(req sim.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if h.Rho < -1 || h.Rho > 1 {
		return fmt.Errorf("%w: correlation must lie in [-1, 1], got %f", sim.ErrInvalidParameter, h.Rho)
	}
	return nil
}

func (h *Heston) Fork(src *sim.NormalSource) sim.Process {
	return &Heston{
		Mu:       h.Mu,
		Kappa:    h.Kappa,
		Theta:    h.Theta,
		Eta:      h.Eta,
		Rho:      h.Rho,
		Milstein: h.Milstein,
		src:      src,
		strict:   h.strict,
	}
}

func (h *Heston) GetParams() map[string]float64 {
	return map[string]float64{
		"mu":    h.Mu,
		"kappa": h.Kappa,
		"theta": h.Theta,
		"eta":   h.Eta,
		"rho":   h.Rho,
	}
}

package models

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/stochsim/sim"
)

// GBM is geometric Brownian motion with constant drift and volatility,
// sampled exactly through the closed-form solution of its SDE.
type GBM struct {
	Mu    float64
	Sigma float64

	src    *sim.NormalSource
	strict bool
}

func NewGBM(mu, sigma float64, opts ...Option) *GBM {
	s := newSettings(opts)
	return &GBM{
		Mu:     mu,
		Sigma:  sigma,
		src:    s.src,
		strict: s.strict,
	}
}

// Simulate generates lognormal price paths. Row 0 is exactly S0 for every
// path, and an antithetic request mirrors the Brownian path the same seed
// produces without the flag.
func (g *GBM) Simulate(req sim.Request) (sim.Matrix, error) {
	if g.strict {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}
	if req.Seed != 0 {
		g.src.Reseed(req.Seed)
	}

	sign := 1.0
	if req.Antithetic {
		sign = -1.0
	}
	sqdt := math.Sqrt(req.Dt())

	rows := req.Steps + 1
	if req.Steps < 1 {
		rows = 1
	}

	w := sim.NewMatrix(rows, req.Paths)
	g.src.FillMatrix(w)

	// Scale draws to increments and accumulate down the time axis. The
	// t=0 row is drawn and summed like any other, then zeroed below, so
	// the first step carries its own draw plus the t=0 draw.
	for i := range w {
		floats.Scale(sign*sqdt, w[i])
		if i > 0 {
			floats.Add(w[i], w[i-1])
		}
	}
	for j := range w[0] {
		w[0][j] = 0
	}

	times := req.Times()
	drift := g.Mu - 0.5*g.Sigma*g.Sigma

	s := sim.NewMatrix(rows, req.Paths)
	for i := range s {
		dft := drift * times[i]
		for j := range s[i] {
			s[i][j] = req.S0 * math.Exp(dft+g.Sigma*w[i][j])
		}
	}
	return s, nil
}

func (g *GBM) Fork(src *sim.NormalSource) sim.Process {
	return &GBM{Mu: g.Mu, Sigma: g.Sigma, src: src, strict: g.strict}
}

func (g *GBM) GetParams() map[string]float64 {
	return map[string]float64{"mu": g.Mu, "sigma": g.Sigma}
}

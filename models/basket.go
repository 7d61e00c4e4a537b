package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/san-kum/stochsim/sim"
)

// Asset names one basket component and its lognormal dynamics.
type Asset struct {
	Name  string
	S0    float64
	Mu    float64
	Sigma float64
}

// Basket generates correlated geometric Brownian paths for a set of
// assets driven by one correlation matrix.
type Basket struct {
	assets []Asset
	dist   *distmv.Normal
	src    *sim.NormalSource
	strict bool
}

// NewBasket builds a basket over corr, the full n×n correlation matrix in
// row-major order. Construction fails when the matrix does not fit the
// asset count or is not positive definite.
func NewBasket(assets []Asset, corr []float64, opts ...Option) (*Basket, error) {
	n := len(assets)
	if n == 0 {
		return nil, fmt.Errorf("%w: basket needs at least one asset", sim.ErrInvalidParameter)
	}
	if len(corr) != n*n {
		return nil, fmt.Errorf("%w: correlation matrix must be %dx%d, got %d entries", sim.ErrInvalidParameter, n, n, len(corr))
	}
	seen := make(map[string]bool, n)
	for _, a := range assets {
		if seen[a.Name] {
			return nil, fmt.Errorf("%w: duplicate asset name %q", sim.ErrInvalidParameter, a.Name)
		}
		seen[a.Name] = true
	}

	s := newSettings(opts)
	dist, ok := distmv.NewNormal(make([]float64, n), mat.NewSymDense(n, corr), s.src.Source())
	if !ok {
		return nil, fmt.Errorf("%w: correlation matrix is not positive definite", sim.ErrInvalidParameter)
	}
	return &Basket{assets: assets, dist: dist, src: s.src, strict: s.strict}, nil
}

// Simulate returns one path grid per asset, keyed by asset name. Each
// step of each path consumes one correlated draw vector shared by all
// assets; an antithetic request negates the whole vector.
func (b *Basket) Simulate(req sim.Request) (map[string]sim.Matrix, error) {
	if b.strict {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}
	if req.Seed != 0 {
		b.src.Reseed(req.Seed)
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
	rows := steps + 1

	grids := make([]sim.Matrix, len(b.assets))
	out := make(map[string]sim.Matrix, len(b.assets))
	for a, asset := range b.assets {
		g := sim.NewMatrix(rows, req.Paths)
		for j := range g[0] {
			g[0][j] = asset.S0
		}
		grids[a] = g
		out[asset.Name] = g
	}

	z := make([]float64, len(b.assets))
	for j := 0; j < req.Paths; j++ {
		for i := 0; i < steps; i++ {
			b.dist.Rand(z)
			for a, asset := range b.assets {
				drift := (asset.Mu - 0.5*asset.Sigma*asset.Sigma) * dt
				grids[a][i+1][j] = grids[a][i][j] * math.Exp(drift+asset.Sigma*sqdt*sign*z[a])
			}
		}
	}
	return out, nil
}

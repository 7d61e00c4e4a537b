package models

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/stochsim/sim"
)

func twoAssets() []Asset {
	return []Asset{
		{Name: "AAA", S0: 100, Mu: 0.05, Sigma: 0.2},
		{Name: "BBB", S0: 50, Mu: 0.02, Sigma: 0.3},
	}
}

func TestNewBasket_Errors(t *testing.T) {
	tests := []struct {
		name   string
		assets []Asset
		corr   []float64
	}{
		{"no assets", nil, nil},
		{"corr size mismatch", twoAssets(), []float64{1, 0.5}},
		{"not positive definite", twoAssets(), []float64{1, 1.5, 1.5, 1}},
		{"duplicate names", []Asset{{Name: "AAA"}, {Name: "AAA"}}, []float64{1, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBasket(tt.assets, tt.corr)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, sim.ErrInvalidParameter) {
				t.Errorf("error %v does not wrap ErrInvalidParameter", err)
			}
		})
	}
}

func TestBasket_InitialRowAndShape(t *testing.T) {
	b, err := NewBasket(twoAssets(), []float64{1, 0.5, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}

	out, err := b.Simulate(sim.Request{T: 1, Steps: 12, Paths: 6, Seed: 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d grids, want 2", len(out))
	}
	for name, want := range map[string]float64{"AAA": 100, "BBB": 50} {
		g, ok := out[name]
		if !ok {
			t.Fatalf("missing grid for %s", name)
		}
		if g.Rows() != 13 || g.Cols() != 6 {
			t.Errorf("%s shape = %dx%d, want 13x6", name, g.Rows(), g.Cols())
		}
		for j := 0; j < 6; j++ {
			if g[0][j] != want {
				t.Errorf("%s[0][%d] = %v, want exactly %v", name, j, g[0][j], want)
			}
		}
	}
}

func TestBasket_SeededDeterminism(t *testing.T) {
	b, err := NewBasket(twoAssets(), []float64{1, 0.5, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	req := sim.Request{T: 1, Steps: 8, Paths: 4, Seed: 42}

	first, err := b.Simulate(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Simulate(req)
	if err != nil {
		t.Fatal(err)
	}

	for name := range first {
		if !equalMatrices(first[name], second[name]) {
			t.Errorf("%s: two runs with the same seed differ", name)
		}
	}
}

// The antithetic run negates every correlated draw vector, so the
// per-step shocks recovered from the log increments mirror exactly.
func TestBasket_AntitheticMirrors(t *testing.T) {
	assets := twoAssets()
	b, err := NewBasket(assets, []float64{1, 0.5, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	req := sim.Request{T: 1, Steps: 8, Paths: 4, Seed: 13}

	plain, err := b.Simulate(req)
	if err != nil {
		t.Fatal(err)
	}
	req.Antithetic = true
	anti, err := b.Simulate(req)
	if err != nil {
		t.Fatal(err)
	}

	dt := req.Dt()
	sqdt := math.Sqrt(dt)
	for _, a := range assets {
		p, m := plain[a.Name], anti[a.Name]
		drift := (a.Mu - 0.5*a.Sigma*a.Sigma) * dt
		for i := 0; i < req.Steps; i++ {
			for j := 0; j < req.Paths; j++ {
				zp := (math.Log(p[i+1][j]/p[i][j]) - drift) / (a.Sigma * sqdt)
				za := (math.Log(m[i+1][j]/m[i][j]) - drift) / (a.Sigma * sqdt)
				if math.Abs(zp+za) > 1e-9 {
					t.Fatalf("%s step %d path %d: shock %v and mirror %v", a.Name, i, j, zp, za)
				}
			}
		}
	}
}

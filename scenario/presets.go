package scenario

import "github.com/san-kum/stochsim/sim"

// Presets are ready-made scenarios covering the common calibrations.
var Presets = map[string]*Scenario{
	"gbm-baseline": {
		Name:    "gbm-baseline",
		Process: "gbm",
		Params:  map[string]any{"mu": 0.05, "sigma": 0.2},
		Request: sim.Request{S0: 100, T: 1.0, Steps: 252, Paths: 1000, Seed: 42},
	},
	"gbm-drift-free": {
		Name:    "gbm-drift-free",
		Process: "gbm",
		Params:  map[string]any{"mu": 0.0, "sigma": 0.15},
		Request: sim.Request{S0: 100, T: 0.5, Steps: 126, Paths: 2000},
	},
	"heston-calm": {
		Name:    "heston-calm",
		Process: "heston",
		Params: map[string]any{
			"mu": 0.03, "kappa": 2.0, "theta": 0.04, "eta": 0.3, "rho": -0.7,
		},
		Request: sim.Request{S0: 100, V0: 0.04, T: 1.0, Steps: 252, Paths: 1000, Seed: 7},
	},
	// 2*kappa*theta < eta^2: the variance process hugs zero and leans on
	// the reflection floor.
	"heston-feller-violated": {
		Name:    "heston-feller-violated",
		Process: "heston",
		Params: map[string]any{
			"mu": 0.0, "kappa": 1.0, "theta": 0.02, "eta": 1.0, "rho": -0.9,
		},
		Request: sim.Request{S0: 100, V0: 0.02, T: 1.0, Steps: 504, Paths: 500},
	},
	"heston-euler": {
		Name:    "heston-euler",
		Process: "heston",
		Params: map[string]any{
			"mu": 0.03, "kappa": 2.0, "theta": 0.04, "eta": 0.3, "rho": -0.7,
			"milstein": false,
		},
		Request: sim.Request{S0: 100, V0: 0.04, T: 1.0, Steps: 252, Paths: 1000, Seed: 7},
	},
}

// Preset returns the named scenario, or nil when it does not exist.
func Preset(name string) *Scenario {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	return sc
}

// Names lists the available presets.
func Names() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

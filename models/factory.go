package models

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/san-kum/stochsim/sim"
)

type gbmSpec struct {
	Mu    float64 `mapstructure:"mu"`
	Sigma float64 `mapstructure:"sigma"`
}

type hestonSpec struct {
	Mu       float64 `mapstructure:"mu"`
	Kappa    float64 `mapstructure:"kappa"`
	Theta    float64 `mapstructure:"theta"`
	Eta      float64 `mapstructure:"eta"`
	Rho      float64 `mapstructure:"rho"`
	Milstein bool    `mapstructure:"milstein"`
}

// New builds a process from its kind name and an options map. Recognized
// kinds are "gbm" (mu, sigma) and "heston" (mu, kappa, theta, eta, rho,
// milstein; milstein defaults to true). Unknown kinds and unrecognized
// option keys are errors.
func New(kind string, spec map[string]any, opts ...Option) (sim.Process, error) {
	switch strings.ToLower(kind) {
	case "gbm":
		var s gbmSpec
		if err := decodeSpec(spec, &s); err != nil {
			return nil, fmt.Errorf("gbm spec: %w", err)
		}
		return NewGBM(s.Mu, s.Sigma, opts...), nil

	case "heston":
		s := hestonSpec{Milstein: true}
		if err := decodeSpec(spec, &s); err != nil {
			return nil, fmt.Errorf("heston spec: %w", err)
		}
		h := NewHeston(s.Mu, s.Kappa, s.Theta, s.Eta, s.Rho, opts...)
		h.Milstein = s.Milstein
		return h, nil

	default:
		return nil, fmt.Errorf("unknown process kind: %s", kind)
	}
}

// decodeSpec fills result from the options map, rejecting keys the target
// does not define.
func decodeSpec(spec map[string]any, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      result,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(spec)
}

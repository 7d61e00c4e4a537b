package models

import "github.com/san-kum/stochsim/sim"

type settings struct {
	src    *sim.NormalSource
	strict bool
	euler  bool
}

func newSettings(opts []Option) settings {
	s := settings{src: sim.NewNormalSource(0)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures a process at construction time.
type Option func(*settings)

// WithSource injects the draw stream the process will consume. Without it
// a process starts on a time-seeded stream of its own.
func WithSource(src *sim.NormalSource) Option {
	return func(s *settings) { s.src = src }
}

// WithValidation makes simulation calls reject ill-posed requests and
// parameters instead of letting degenerate values propagate through the
// formulas.
func WithValidation() Option {
	return func(s *settings) { s.strict = true }
}

// WithEuler selects the plain Euler variance update on processes with a
// discretization scheme, in place of the default Milstein correction.
// Processes without a scheme ignore it.
func WithEuler() Option {
	return func(s *settings) { s.euler = true }
}

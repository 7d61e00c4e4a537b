package scenario

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/stochsim/models"
	"github.com/san-kum/stochsim/sim"
)

// Scenario is a named, serializable simulation setup: a process kind with
// its parameter map and the request to run it under.
type Scenario struct {
	Name    string         `yaml:"name"`
	Process string         `yaml:"process"`
	Params  map[string]any `yaml:"params"`
	Request sim.Request    `yaml:"request"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := new(Scenario)
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	logrus.Debugf("scenario %q loaded from %s", sc.Name, path)
	return sc, nil
}

// Save writes the scenario to a YAML file.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the scenario's process and returns it together with
// the request to run it under.
func (s *Scenario) Build(opts ...models.Option) (sim.Process, sim.Request, error) {
	proc, err := models.New(s.Process, s.Params, opts...)
	if err != nil {
		return nil, sim.Request{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return proc, s.Request, nil
}

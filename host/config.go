// Package host drives plugin nodes through their capability tables: it loads
// a scenario, synthesizes the input signals, advances every node once per
// tick, and records the outputs.
package host

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WaveformSpec selects and parameterizes one input signal generator.
// Fields that a shape does not use are ignored for that shape.
type WaveformSpec struct {
	Shape       string  `yaml:"shape"`        // "constant", "sine", "pulse" or "noise"
	Value       float64 `yaml:"value"`        // constant level; offset for sine
	Amplitude   float64 `yaml:"amplitude"`    // sine amplitude; pulse high level
	PeriodTicks uint64  `yaml:"period_ticks"` // sine/pulse period (must be > 0)
	HighTicks   uint64  `yaml:"high_ticks"`   // pulse high duration per period
	Min         float64 `yaml:"min"`          // noise lower bound
	Max         float64 `yaml:"max"`          // noise upper bound
}

// NodeSpec describes one node instance to create and drive.
type NodeSpec struct {
	Kind   string                  `yaml:"kind"`
	Params map[string]float64      `yaml:"params"`
	Inputs map[string]WaveformSpec `yaml:"inputs"`
}

// Scenario is the full YAML scenario schema.
type Scenario struct {
	HorizonTicks uint64     `yaml:"horizon_ticks"`
	Seed         int64      `yaml:"seed"`
	Nodes        []NodeSpec `yaml:"nodes"`
}

// LoadScenario reads and strictly parses a scenario file; unknown YAML fields
// are rejected so schema typos fail loudly instead of silently dropping
// signal sources.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var sc Scenario
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks structural constraints that the tick loop relies on.
func (sc *Scenario) Validate() error {
	if sc.HorizonTicks == 0 {
		return fmt.Errorf("horizon_ticks must be > 0")
	}
	if len(sc.Nodes) == 0 {
		return fmt.Errorf("at least one node is required")
	}
	for i, ns := range sc.Nodes {
		if ns.Kind == "" {
			return fmt.Errorf("node %d: kind must not be empty", i)
		}
		for port, ws := range ns.Inputs {
			if err := ws.validate(); err != nil {
				return fmt.Errorf("node %d input %q: %w", i, port, err)
			}
		}
	}
	return nil
}

// DefaultScenario returns the built-in demo: one fast chemical synapse with a
// sinusoidal presynaptic drive and a resting postsynaptic potential.
func DefaultScenario() *Scenario {
	return &Scenario{
		HorizonTicks: 1000,
		Seed:         42,
		Nodes: []NodeSpec{
			{
				Kind: "fast_chemical_synapse",
				Inputs: map[string]WaveformSpec{
					"pre":  {Shape: "sine", Amplitude: 2.0, PeriodTicks: 100},
					"post": {Shape: "constant", Value: 0.0},
				},
			},
		},
	}
}

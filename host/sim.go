package host

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rtsyn/synapse-sim/plugin"
)

// boundInput pairs a declared input port with the waveform that drives it.
type boundInput struct {
	port string
	wave Waveform
}

// instance is one live node: its handle, its kind's capability table, the
// inputs it is driven by, and the output ports it declares.
type instance struct {
	id      plugin.ID
	kind    string
	api     *plugin.API
	handle  *plugin.Handle
	inputs  []boundInput
	outputs []string
}

// Simulator advances a set of plugin nodes in lockstep, one tick at a time.
// It talks to nodes exclusively through their capability tables, the same
// way an out-of-process host would. Single-goroutine: calls against a handle
// are never issued concurrently.
type Simulator struct {
	horizon   uint64
	instances []*instance
	recorders []Recorder
}

// NewSimulator creates and configures every node in the scenario. Parameters
// are applied as a JSON configuration blob through SetConfigJSON, and port
// lists are read back from the kind's describe blobs, so the wiring exercises
// the exact surface a foreign host sees.
func NewSimulator(sc *Scenario, recorders ...Recorder) (*Simulator, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{horizon: sc.HorizonTicks, recorders: recorders}
	for i, ns := range sc.Nodes {
		api, ok := plugin.Lookup(ns.Kind)
		if !ok {
			s.Close()
			return nil, fmt.Errorf("node %d: %w: %s (registered: %v)", i, plugin.ErrKindNotFound, ns.Kind, plugin.Kinds())
		}

		id := plugin.ID(i + 1)
		inst := &instance{
			id:     id,
			kind:   ns.Kind,
			api:    api,
			handle: api.Create(id),
		}

		if len(ns.Params) > 0 {
			blob, err := json.Marshal(ns.Params)
			if err != nil {
				api.Destroy(inst.handle)
				s.Close()
				return nil, fmt.Errorf("node %d: encode params: %w", i, err)
			}
			api.SetConfigJSON(inst.handle, blob)
		}

		bound, err := bindInputs(id, ns, api, sc.Seed)
		if err != nil {
			api.Destroy(inst.handle)
			s.Close()
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		inst.inputs = bound

		if err := json.Unmarshal([]byte(api.OutputsJSON(inst.handle)), &inst.outputs); err != nil {
			api.Destroy(inst.handle)
			s.Close()
			return nil, fmt.Errorf("node %d: decode output ports: %w", i, err)
		}

		s.instances = append(s.instances, inst)
		logrus.Debugf("created node %d kind=%s inputs=%d outputs=%v", id, ns.Kind, len(inst.inputs), inst.outputs)
	}
	return s, nil
}

// bindInputs builds a waveform for each driven port, in sorted port order so
// stochastic draws are reproducible. Specs naming ports the node does not
// declare are dropped with a warning; the node itself would ignore the writes
// silently, and the warning is the only diagnostic the host layer offers.
func bindInputs(id plugin.ID, ns NodeSpec, api *plugin.API, seed int64) ([]boundInput, error) {
	var declared []string
	if err := json.Unmarshal([]byte(api.InputsJSON(nil)), &declared); err != nil {
		return nil, fmt.Errorf("decode input ports: %w", err)
	}
	known := make(map[string]bool, len(declared))
	for _, port := range declared {
		known[port] = true
	}

	ports := make([]string, 0, len(ns.Inputs))
	for port := range ns.Inputs {
		if !known[port] {
			logrus.Warnf("node %d kind=%s: input %q not declared by the node, dropping its waveform", id, ns.Kind, port)
			continue
		}
		ports = append(ports, port)
	}
	sort.Strings(ports)

	bound := make([]boundInput, 0, len(ports))
	for _, port := range ports {
		rng := rand.New(rand.NewSource(derivedSeed(seed, fmt.Sprintf("node_%d/%s", id, port))))
		wave, err := NewWaveform(ns.Inputs[port], rng)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", port, err)
		}
		bound = append(bound, boundInput{port: port, wave: wave})
	}
	return bound, nil
}

// Run executes the tick loop: per tick, push every driven input, advance,
// then read and record every declared output.
func (s *Simulator) Run() error {
	logrus.Infof("starting run: %d nodes, horizon=%d ticks", len(s.instances), s.horizon)

	for tick := uint64(0); tick < s.horizon; tick++ {
		for _, inst := range s.instances {
			for _, in := range inst.inputs {
				inst.api.SetInput(inst.handle, in.port, in.wave.At(tick))
			}
			inst.api.Process(inst.handle, tick)

			for _, port := range inst.outputs {
				sample := Sample{
					Tick:  tick,
					Node:  inst.id,
					Kind:  inst.kind,
					Port:  port,
					Value: inst.api.GetOutput(inst.handle, port),
				}
				for _, rec := range s.recorders {
					if err := rec.Record(sample); err != nil {
						return fmt.Errorf("record tick %d node %d: %w", tick, inst.id, err)
					}
				}
			}
		}
	}

	logrus.Info("run complete")
	return nil
}

// Close destroys every node handle. Idempotent: destroyed handles are inert.
func (s *Simulator) Close() {
	for _, inst := range s.instances {
		inst.api.Destroy(inst.handle)
	}
}

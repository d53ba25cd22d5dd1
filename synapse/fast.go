// Package synapse implements chemical synapse node models for the
// tick-driven simulation boundary defined in the plugin package.
package synapse

import (
	"math"

	"github.com/rtsyn/synapse-sim/plugin"
)

// Kind is the stable tag under which the fast chemical synapse registers.
const Kind = "fast_chemical_synapse"

// Port names declared by the fast chemical synapse.
const (
	PortPre  = "pre"   // presynaptic membrane potential
	PortPost = "post"  // postsynaptic membrane potential
	PortISyn = "i_syn" // computed synaptic current
)

// Parameter names recognized in configuration payloads.
const (
	ParamGFast = "g_fast" // maximal synaptic conductance
	ParamESyn  = "e_syn"  // synaptic reversal potential
	ParamSFast = "s_fast" // gating slope
	ParamVFast = "v_fast" // gating half-activation threshold
)

// Default parameter values, matching the graded-transmission
// parameterization used in hybrid-circuit experiments.
const (
	DefaultGFast = 0.208
	DefaultESyn  = -1.92
	DefaultSFast = 0.44
	DefaultVFast = -1.66
)

// FastChemicalSynapse models a fast (instantaneous) chemical synapse: the
// synaptic current follows the presynaptic potential through a sigmoidal
// gating term with no internal kinetics. The model is memoryless across
// ticks; each Advance recomputes the current fresh from the latest input
// and parameter values.
type FastChemicalSynapse struct {
	id plugin.ID

	pre    float64
	post   float64
	output float64

	gFast float64
	eSyn  float64
	sFast float64
	vFast float64

	lastTick uint64
}

// New returns a fast chemical synapse with all parameters at their defaults,
// both inputs at 0, and an output of 0 until the first Advance.
func New(id plugin.ID) *FastChemicalSynapse {
	return &FastChemicalSynapse{
		id:    id,
		gFast: DefaultGFast,
		eSyn:  DefaultESyn,
		sFast: DefaultSFast,
		vFast: DefaultVFast,
	}
}

// ID returns the host-assigned instance identity.
func (s *FastChemicalSynapse) ID() plugin.ID { return s.id }

func (s *FastChemicalSynapse) Meta() plugin.Meta {
	return plugin.Meta{
		Name: "Fast Chemical Synapse",
		Kind: Kind,
		Defaults: []plugin.Param{
			{Name: ParamGFast, Value: DefaultGFast},
			{Name: ParamESyn, Value: DefaultESyn},
			{Name: ParamSFast, Value: DefaultSFast},
			{Name: ParamVFast, Value: DefaultVFast},
		},
	}
}

func (s *FastChemicalSynapse) Inputs() []string {
	return []string{PortPre, PortPost}
}

func (s *FastChemicalSynapse) Outputs() []string {
	return []string{PortISyn}
}

// SetParam overwrites one parameter; unknown names are silently ignored.
func (s *FastChemicalSynapse) SetParam(name string, value float64) {
	switch name {
	case ParamGFast:
		s.gFast = value
	case ParamESyn:
		s.eSyn = value
	case ParamSFast:
		s.sFast = value
	case ParamVFast:
		s.vFast = value
	}
}

// SetInput overwrites one input port; unknown names are silently ignored.
func (s *FastChemicalSynapse) SetInput(port string, value float64) {
	switch port {
	case PortPre:
		s.pre = value
	case PortPost:
		s.post = value
	}
}

// Advance recomputes the synaptic current:
//
//	i_syn = g_fast * (post - e_syn) / (1 + exp(s_fast * (v_fast - pre)))
//
// Total for all float inputs; overflow to Inf or NaN propagates to the
// output unclamped. The tick index is recorded but not used: the model has
// no dependence on elapsed ticks.
func (s *FastChemicalSynapse) Advance(tick uint64) {
	gate := math.Exp(s.sFast * (s.vFast - s.pre))
	s.output = s.gFast * (s.post - s.eSyn) / (1 + gate)
	s.lastTick = tick
}

// Output returns the stored current for "i_syn" and 0 for any other name.
func (s *FastChemicalSynapse) Output(port string) float64 {
	if port == PortISyn {
		return s.output
	}
	return 0
}

var api = plugin.NewAPI(func(id plugin.ID) plugin.Node { return New(id) })

// API returns the capability table for the fast chemical synapse. The table
// is built once at load time and never mutated.
func API() *plugin.API { return api }

func init() {
	plugin.MustRegister(Kind, api)
}

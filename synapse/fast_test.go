package synapse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtsyn/synapse-sim/plugin"
)

// expectedCurrent evaluates the gating expression directly for comparison.
func expectedCurrent(pre, post, gFast, eSyn, sFast, vFast float64) float64 {
	return gFast * (post - eSyn) / (1 + math.Exp(sFast*(vFast-pre)))
}

func TestAdvance_MatchesGatingExpression(t *testing.T) {
	cases := []struct {
		name      string
		pre, post float64
	}{
		{"resting", 0, 0},
		{"depolarized pre", 1.5, -0.5},
		{"hyperpolarized pre", -3.0, 0.75},
		{"both negative", -1.66, -1.92},
		{"large swing", 40, -60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(1)
			s.SetInput(PortPre, tc.pre)
			s.SetInput(PortPost, tc.post)
			s.Advance(0)

			want := expectedCurrent(tc.pre, tc.post, DefaultGFast, DefaultESyn, DefaultSFast, DefaultVFast)
			assert.InDelta(t, want, s.Output(PortISyn), 1e-12)
		})
	}
}

func TestAdvance_RestingDefaultsConcreteValue(t *testing.T) {
	// With defaults and pre=post=0:
	//   gate  = exp(0.44 * (-1.66 - 0)) = exp(-0.7304)
	//   i_syn = 0.208 * (0 - (-1.92)) / (1 + gate) ≈ 0.2695
	s := New(1)
	s.Advance(0)
	assert.InDelta(t, 0.2695, s.Output(PortISyn), 1e-3)
}

func TestOutput_ZeroBeforeFirstAdvance(t *testing.T) {
	s := New(1)
	assert.Equal(t, 0.0, s.Output(PortISyn))
}

func TestOutput_UnknownPortReadsZero(t *testing.T) {
	s := New(1)
	s.SetInput(PortPost, 5)
	s.Advance(0)

	require.NotZero(t, s.Output(PortISyn))
	assert.Equal(t, 0.0, s.Output("i_slow"))
	assert.Equal(t, 0.0, s.Output(""))
}

func TestSetInput_UnknownPortLeavesStateUnchanged(t *testing.T) {
	s := New(1)
	s.SetInput(PortPre, 0.5)
	s.SetInput(PortPost, -0.25)
	s.Advance(0)
	baseline := s.Output(PortISyn)

	s.SetInput("axon", 99)
	s.Advance(1)
	assert.Equal(t, baseline, s.Output(PortISyn))
}

func TestSetParam_OverridesSingleParameter(t *testing.T) {
	s := New(1)
	s.SetParam(ParamGFast, 1.0)
	s.SetInput(PortPre, 0.3)
	s.SetInput(PortPost, -0.7)
	s.Advance(0)

	want := expectedCurrent(0.3, -0.7, 1.0, DefaultESyn, DefaultSFast, DefaultVFast)
	assert.InDelta(t, want, s.Output(PortISyn), 1e-12)
}

func TestAdvance_RecomputesOnRepeatedTickIndex(t *testing.T) {
	s := New(1)
	s.SetInput(PortPre, 0.1)
	s.Advance(5)
	first := s.Output(PortISyn)

	// New input, same tick index: output is recomputed, not cached.
	s.SetInput(PortPre, 2.0)
	s.Advance(5)
	assert.NotEqual(t, first, s.Output(PortISyn))
}

func TestAdvance_DegenerateFloatsPropagate(t *testing.T) {
	s := New(1)
	s.SetInput(PortPre, math.Inf(-1)) // gate overflows to +Inf
	s.SetInput(PortPost, 1)
	s.Advance(0)
	assert.Equal(t, 0.0, s.Output(PortISyn))

	s.SetInput(PortPre, math.NaN())
	s.Advance(1)
	assert.True(t, math.IsNaN(s.Output(PortISyn)))
}

func TestMeta_DeclaresSchema(t *testing.T) {
	s := New(42)
	meta := s.Meta()

	assert.Equal(t, "Fast Chemical Synapse", meta.Name)
	assert.Equal(t, Kind, meta.Kind)
	assert.Equal(t, []plugin.Param{
		{Name: ParamGFast, Value: DefaultGFast},
		{Name: ParamESyn, Value: DefaultESyn},
		{Name: ParamSFast, Value: DefaultSFast},
		{Name: ParamVFast, Value: DefaultVFast},
	}, meta.Defaults)

	assert.Equal(t, []string{PortPre, PortPost}, s.Inputs())
	assert.Equal(t, []string{PortISyn}, s.Outputs())
	assert.Equal(t, plugin.ID(42), s.ID())
}

func TestAPI_RegisteredAndServesWireFormats(t *testing.T) {
	api, ok := plugin.Lookup(Kind)
	require.True(t, ok)
	assert.Same(t, API(), api)

	assert.JSONEq(t, `{"name":"Fast Chemical Synapse","kind":"fast_chemical_synapse"}`, api.MetaJSON(nil))
	assert.JSONEq(t, `["pre","post"]`, api.InputsJSON(nil))
	assert.JSONEq(t, `["i_syn"]`, api.OutputsJSON(nil))
}

func TestAPI_FullBoundaryScenario(t *testing.T) {
	api := API()
	h := api.Create(3)
	require.NotNil(t, h)
	defer api.Destroy(h)

	api.SetConfigJSON(h, []byte(`{"g_fast": 1.0}`))
	api.SetInput(h, PortPre, 0.0)
	api.SetInput(h, PortPost, 0.0)
	api.Process(h, 0)

	// Only g_fast changed; remaining parameters keep their defaults.
	want := expectedCurrent(0, 0, 1.0, DefaultESyn, DefaultSFast, DefaultVFast)
	assert.InDelta(t, want, api.GetOutput(h, PortISyn), 1e-12)
}

func TestAPI_MalformedConfigRetainsDefaults(t *testing.T) {
	api := API()
	h := api.Create(1)
	defer api.Destroy(h)

	api.SetConfigJSON(h, []byte(`{"g_fast": 5.0, "e_syn":`))
	api.Process(h, 0)

	want := expectedCurrent(0, 0, DefaultGFast, DefaultESyn, DefaultSFast, DefaultVFast)
	assert.InDelta(t, want, api.GetOutput(h, PortISyn), 1e-12)
}

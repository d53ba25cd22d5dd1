package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SingleSeries(t *testing.T) {
	var samples []Sample
	for i, v := range []float64{1, 2, 3, 4, 5} {
		samples = append(samples, Sample{
			Tick: uint64(i), Node: 1, Kind: "fast_chemical_synapse", Port: "i_syn", Value: v,
		})
	}

	summaries := Summarize(samples)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.5811, s.Std, 1e-3)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3.0, s.P50, 1e-12)
}

func TestSummarize_GroupsAndOrdersSeries(t *testing.T) {
	samples := []Sample{
		{Node: 2, Port: "i_syn", Value: 10},
		{Node: 1, Port: "i_syn", Value: 1},
		{Node: 2, Port: "i_syn", Value: 20},
		{Node: 1, Port: "i_syn", Value: 3},
	}

	summaries := Summarize(samples)
	require.Len(t, summaries, 2)

	assert.Less(t, summaries[0].Node, summaries[1].Node)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 2.0, summaries[0].Mean, 1e-12)
	assert.InDelta(t, 15.0, summaries[1].Mean, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
}

package host

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRecorder_WritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	rec, err := NewCSVRecorder(path, "run-1")
	require.NoError(t, err)

	require.NoError(t, rec.Record(Sample{Tick: 0, Node: 1, Kind: "fast_chemical_synapse", Port: "i_syn", Value: 0.25}))
	require.NoError(t, rec.Record(Sample{Tick: 1, Node: 1, Kind: "fast_chemical_synapse", Port: "i_syn", Value: -0.5}))
	require.NoError(t, rec.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "run_id,tick,node,kind,port,value", lines[0])
	assert.Equal(t, "run-1,0,1,fast_chemical_synapse,i_syn,0.25", lines[1])
	assert.Equal(t, "run-1,1,1,fast_chemical_synapse,i_syn,-0.5", lines[2])
}

func TestMemoryRecorder_KeepsArrivalOrder(t *testing.T) {
	rec := NewMemoryRecorder()
	require.NoError(t, rec.Record(Sample{Tick: 2, Value: 1}))
	require.NoError(t, rec.Record(Sample{Tick: 1, Value: 2}))
	require.NoError(t, rec.Close())

	samples := rec.Samples()
	require.Len(t, samples, 2)
	assert.Equal(t, uint64(2), samples[0].Tick)
	assert.Equal(t, uint64(1), samples[1].Tick)
}

func TestNewRunID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}

package host

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/rtsyn/synapse-sim/plugin"
)

// Sample is one recorded output value: which node produced what on which
// port at which tick.
type Sample struct {
	Tick  uint64
	Node  plugin.ID
	Kind  string
	Port  string
	Value float64
}

// Recorder receives every output sample produced by a simulation run.
// Close flushes and releases the sink; Record must not be called afterwards.
type Recorder interface {
	Record(s Sample) error
	Close() error
}

// NewRunID returns a fresh identifier tying a run's samples together across
// sinks.
func NewRunID() string {
	return uuid.NewString()
}

// MemoryRecorder accumulates samples in memory, for summaries and tests.
type MemoryRecorder struct {
	samples []Sample
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{samples: make([]Sample, 0)}
}

func (r *MemoryRecorder) Record(s Sample) error {
	r.samples = append(r.samples, s)
	return nil
}

func (r *MemoryRecorder) Close() error { return nil }

// Samples returns the recorded samples in arrival order.
func (r *MemoryRecorder) Samples() []Sample { return r.samples }

// CSVRecorder appends one line per sample to a CSV file.
type CSVRecorder struct {
	file  *os.File
	w     *bufio.Writer
	runID string
}

// NewCSVRecorder creates (truncating) the target file and writes the header.
func NewCSVRecorder(path, runID string) (*CSVRecorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv trace: %w", err)
	}

	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintln(w, "run_id,tick,node,kind,port,value"); err != nil {
		file.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return &CSVRecorder{file: file, w: w, runID: runID}, nil
}

func (r *CSVRecorder) Record(s Sample) error {
	_, err := fmt.Fprintf(r.w, "%s,%d,%d,%s,%s,%g\n", r.runID, s.Tick, s.Node, s.Kind, s.Port, s.Value)
	return err
}

func (r *CSVRecorder) Close() error {
	if err := r.w.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("flush csv trace: %w", err)
	}
	return r.file.Close()
}

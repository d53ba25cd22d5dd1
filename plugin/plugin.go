package plugin

// ID identifies one node instance. It is assigned by the host at creation,
// kept for host-side bookkeeping, and never interpreted by the node.
type ID uint64

// Param is one (name, default value) pair in a node kind's declared schema.
type Param struct {
	Name  string
	Value float64
}

// Meta describes a node kind: a human-readable display name, a stable kind
// tag identifying the computational family, and the declared parameters with
// their defaults. Meta is fixed at construction; configuration updates change
// live parameter values, never this schema.
type Meta struct {
	Name     string
	Kind     string
	Defaults []Param
}

// Node is the model side of the boundary: a deterministic mapping from
// (current inputs, current parameters) to one scalar output per output port,
// advanced once per tick by the host.
//
// All name-keyed methods follow the silent-degrade policy: unknown parameter
// or port names are ignored on writes and yield 0 on reads. None of these
// methods may fail or panic for any finite or non-finite float input.
type Node interface {
	// Meta returns the immutable kind description.
	Meta() Meta

	// Inputs and Outputs return the fixed port name sets, declared once at
	// construction and identical for every instance of the kind.
	Inputs() []string
	Outputs() []string

	// SetParam overwrites one named parameter value. Unknown names are
	// silently ignored so a host can apply partial or forward-versioned
	// configuration best-effort.
	SetParam(name string, value float64)

	// SetInput overwrites the named input port's current value. Unknown
	// port names are silently ignored.
	SetInput(port string, value float64)

	// Advance recomputes the output from the current inputs and parameters.
	// It recomputes unconditionally on every call, including repeated calls
	// for the same tick index. Degenerate float results (Inf, NaN) propagate
	// to the output unmodified.
	Advance(tick uint64)

	// Output returns the most recently computed value for the named output
	// port, or 0 if the name matches no declared output port. Before the
	// first Advance the output is its initial 0 value.
	Output(port string) float64
}

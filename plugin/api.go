package plugin

// Handle is the opaque capability token a host holds for one node instance.
// It exclusively owns the node state between Create and Destroy; the host
// never reaches the Node behind it except through an API table. A nil Handle
// is accepted by every entry point.
type Handle struct {
	node Node
}

// API is the capability table for one node kind: the fixed set of entry
// points a host binds once (via the registry or a kind package's accessor)
// and then calls per tick. A table is constructed once, never mutated, and
// safe to share read-only across any number of goroutines; calls against a
// single Handle must be serialized by the host.
type API struct {
	// Create allocates a fresh node instance and returns the Handle that
	// exclusively owns it. Never fails.
	Create func(id ID) *Handle

	// Destroy releases the instance behind the Handle. A nil Handle is a
	// no-op. Releasing is one-shot; the Handle holds nothing afterwards.
	Destroy func(h *Handle)

	// MetaJSON, InputsJSON and OutputsJSON serve the kind's immutable
	// description as JSON. They depend only on the kind, not the instance,
	// so they answer identically for any Handle, including nil.
	MetaJSON    func(h *Handle) string
	InputsJSON  func(h *Handle) string
	OutputsJSON func(h *Handle) string

	// SetConfigJSON parses raw as a JSON object of parameter name → number
	// and forwards each numeric entry to the node. A payload that is not a
	// JSON object is discarded in its entirety; prior values are retained.
	// No error is surfaced either way.
	SetConfigJSON func(h *Handle, raw []byte)

	// SetInput writes one input port by name; unknown ports are ignored.
	SetInput func(h *Handle, port string, value float64)

	// Process advances the node one tick.
	Process func(h *Handle, tick uint64)

	// GetOutput reads one output port by name; unknown ports read as 0.
	GetOutput func(h *Handle, port string) float64
}

// NewAPI builds the capability table for a node kind from its instance
// factory. The kind's metadata and port lists are serialized once, from a
// throwaway prototype instance, so the describe entry points are pure
// constants for the life of the process.
func NewAPI(factory func(id ID) Node) *API {
	proto := factory(0)
	metaBlob := marshalMeta(proto.Meta())
	inputsBlob := marshalPorts(proto.Inputs())
	outputsBlob := marshalPorts(proto.Outputs())

	return &API{
		Create: func(id ID) *Handle {
			return &Handle{node: factory(id)}
		},
		Destroy: func(h *Handle) {
			if h == nil {
				return
			}
			h.node = nil
		},
		MetaJSON:    func(*Handle) string { return metaBlob },
		InputsJSON:  func(*Handle) string { return inputsBlob },
		OutputsJSON: func(*Handle) string { return outputsBlob },
		SetConfigJSON: func(h *Handle, raw []byte) {
			if h == nil || h.node == nil {
				return
			}
			applyConfig(h.node, raw)
		},
		SetInput: func(h *Handle, port string, value float64) {
			if h == nil || h.node == nil {
				return
			}
			h.node.SetInput(port, value)
		},
		Process: func(h *Handle, tick uint64) {
			if h == nil || h.node == nil {
				return
			}
			h.node.Advance(tick)
		},
		GetOutput: func(h *Handle, port string) float64 {
			if h == nil || h.node == nil {
				return 0
			}
			return h.node.Output(port)
		},
	}
}

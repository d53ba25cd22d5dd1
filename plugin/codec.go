package plugin

import "encoding/json"

// metaWire is the on-the-wire shape of a kind description. The declared
// parameter defaults stay host-internal; only name and kind cross the
// boundary.
type metaWire struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func marshalMeta(m Meta) string {
	// Marshalling a flat struct of two strings cannot fail.
	blob, _ := json.Marshal(metaWire{Name: m.Name, Kind: m.Kind})
	return string(blob)
}

func marshalPorts(ports []string) string {
	if ports == nil {
		ports = []string{}
	}
	blob, _ := json.Marshal(ports)
	return string(blob)
}

// applyConfig parses raw as a JSON object and forwards every numeric entry
// to the node's SetParam. Unknown keys pass through and are ignored by the
// node; non-numeric values are skipped key-wise; an unparseable payload is
// dropped wholesale so prior parameter values stay untouched.
func applyConfig(n Node, raw []byte) {
	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return
	}
	for name, value := range cfg {
		if v, ok := value.(float64); ok {
			n.SetParam(name, v)
		}
	}
}

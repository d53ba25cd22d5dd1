// Package plugin defines the boundary between a simulation host and the
// biophysical node models it schedules once per tick.
//
// # Reading Guide
//
// Start with these three files to understand the contract:
//   - plugin.go: the Node interface and the immutable Meta/Port schema
//   - api.go: the per-kind capability table and the opaque Handle
//   - registry.go: kind string → capability table lookup
//
// # The contract
//
// A host holds only an opaque *Handle per node instance and talks to it
// exclusively through the entry points of an API table. All exchange is
// string-keyed: input and output ports are addressed by name, configuration
// arrives as a JSON blob of parameter name → number, and metadata/port lists
// are served back as JSON. The error taxonomy is "silent degrade to default":
// unknown port or parameter names are no-ops, malformed configuration is
// discarded wholesale, and a nil Handle turns every call into a no-op (writes)
// or a zero return (reads). Nothing a host can pass across this boundary makes
// a node panic.
//
// Node models live in sub-packages that register their capability tables via
// init() (see the synapse package).
package plugin

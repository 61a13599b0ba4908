// Package netlist reconstructs a signal-level netlist graph from the
// flattened, per-bit output of a logic synthesis tool.
//
// The input (see package yosys for the JSON ingest) describes every port
// and cell connection as an ordered array of bit identifiers: net
// tokens, the constants 0/1, or a no-connect marker. This package turns
// that into named multi-bit wires (paths) with exactly one driver and
// one or more consumers, synthesizing "split" and "join" nodes wherever
// a consumer's bit range does not line up 1:1 with a driver's.
//
// # Pipeline
//
// For each module declaration the builder runs, in order:
//  1. Instantiate netnames, boundary ports and cells.
//  2. Materialize constant bit runs into CONST driver ports backed by
//     freshly allocated net tokens (constants.go).
//  3. Resolve every consumer bit string against the known drivers,
//     discovering required splits and joins (resolver.go).
//  4. Synthesize split/join nodes from the resolver output (synth.go).
//  5. Stitch one path per driver and attach consumers by exact bit
//     match, resolving display names against declared aliases
//     (stitch.go).
//  6. Prune paths without a usable connection and validate the module.
//
// The pipeline is synchronous and pure: no I/O, no shared state beyond
// the module under construction. All pools and accumulators iterate in
// insertion order, so reconstruction is deterministic across runs.
//
// # Usage
//
//	doc, err := yosys.ParseFile("design.json")
//	if err != nil { ... }
//	decls, err := doc.Decls()
//	if err != nil { ... }
//	design, err := netlist.Build(decls)
//	if err != nil {
//		// err joins one ModuleError per rejected module; accepted
//		// modules are still present in design.
//	}
//	for _, m := range design.Modules {
//		for _, p := range m.Paths { ... }
//	}
package netlist

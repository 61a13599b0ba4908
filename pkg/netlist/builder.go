package netlist

import (
	"errors"
	"sort"
)

// The builder drives the reconstruction pipeline once per module:
// netnames, boundary ports and cells are instantiated from the declared
// input, constants are materialized, signals resolved, split/join nodes
// synthesized, paths stitched and pruned, and the result validated. A
// module either completes every stage or is rejected wholesale.

// PortDecl declares one boundary port of a module.
type PortDecl struct {
	Name      string
	Direction Direction
	Bits      BitString
}

// CellPortDecl declares one connection of a cell.
type CellPortDecl struct {
	Name      string
	Direction Direction
	Bits      BitString
}

// CellDecl declares one cell instance with its ordered connections.
type CellDecl struct {
	Name  string
	Type  string
	Ports []CellPortDecl
}

// NetnameDecl declares a user-visible alias for a bit string.
type NetnameDecl struct {
	Name   string
	Bits   BitString
	Hidden bool
	// UnusedBits are positions to drop from Bits before registration,
	// from the input's unused_bits attribute.
	UnusedBits []int
}

// ModuleDecl is the flattened per-module input of the pipeline, as
// produced by the JSON ingest layer.
type ModuleDecl struct {
	Name     string
	Ports    []PortDecl
	Cells    []CellDecl
	Netnames []NetnameDecl
	// Blackbox modules are library parts and are skipped entirely.
	Blackbox bool
	// Top marks the design's top-level unit.
	Top bool
}

// buildState tracks the assembler's per-module progress.
type buildState uint8

const (
	stateParsing buildState = iota
	stateValidating
	stateAccepted
	stateRejected
)

// Build reconstructs every declared module and collects them into a
// design. A rejected module does not stop its siblings: Build returns
// the accepted design together with the joined ModuleErrors of all
// rejections, so callers can surface them and still use what parsed.
func Build(decls []ModuleDecl) (*Design, error) {
	design := NewDesign()
	var rejections []error

	for _, decl := range decls {
		if decl.Blackbox {
			continue
		}

		module, err := BuildModule(decl)
		if err != nil {
			rejections = append(rejections, err)
			continue
		}

		design.AddModule(module)
		if decl.Top {
			design.Top = module
		}
	}

	return design, errors.Join(rejections...)
}

// BuildModule runs the full pipeline for a single module declaration.
func BuildModule(decl ModuleDecl) (*Module, error) {
	b := moduleBuilder{
		module: NewModule(decl.Name),
		state:  stateParsing,
	}
	return b.build(decl)
}

type moduleBuilder struct {
	module *Module
	state  buildState
}

func (b *moduleBuilder) reject(format string, args ...interface{}) error {
	b.state = stateRejected
	return moduleErrorf(b.module.Name, format, args...)
}

func (b *moduleBuilder) build(decl ModuleDecl) (*Module, error) {
	if err := b.parseNetnames(decl.Netnames); err != nil {
		return nil, err
	}
	if err := b.parsePorts(decl.Ports); err != nil {
		return nil, err
	}
	if err := b.parseCells(decl.Cells); err != nil {
		return nil, err
	}

	m := b.module
	if len(m.Ports) == 0 && len(m.Nodes) == 0 {
		return nil, b.reject("no ports or nodes")
	}

	translations := materializeConstants(m)
	r := resolveModule(m)
	synthesizeNodes(m, r)
	stitchSignals(m, translations)
	pruneDanglingPaths(m)

	b.state = stateValidating
	if m.hasInvalidPaths() {
		return nil, b.reject("invalid paths")
	}
	if m.IsEmpty() {
		return nil, b.reject("empty module")
	}

	b.state = stateAccepted
	return m, nil
}

func (b *moduleBuilder) parseNetnames(decls []NetnameDecl) error {
	for _, decl := range decls {
		if len(decl.Bits) == 0 {
			return b.reject("netname %q has no bits", decl.Name)
		}

		// Aliases binding only constants or no-connects name nothing the
		// reconstruction can attach to.
		if allConstOrNoConnect(decl.Bits) {
			continue
		}

		bits := dropUnusedBits(decl.Bits, decl.UnusedBits)
		if len(bits) == 0 {
			continue
		}

		if existing := b.module.NetnameByBits(bits); existing != nil {
			existing.AddAlternative(decl.Name)
			continue
		}

		b.module.AddNetname(&Netname{
			Name:   decl.Name,
			Bits:   bits,
			Hidden: decl.Hidden,
		})
	}
	return nil
}

func (b *moduleBuilder) parsePorts(decls []PortDecl) error {
	for _, decl := range decls {
		if len(decl.Bits) == 0 {
			return b.reject("port %q has no bits", decl.Name)
		}
		b.module.AddPort(&Port{
			Name:      decl.Name,
			Direction: decl.Direction,
			Bits:      decl.Bits.Clone(),
		})
	}
	return nil
}

func (b *moduleBuilder) parseCells(decls []CellDecl) error {
	for _, decl := range decls {
		if decl.Type == "" {
			return b.reject("cell %q has no type", decl.Name)
		}
		if len(decl.Ports) == 0 {
			return b.reject("cell %q has no port connections", decl.Name)
		}

		ports := make([]*Port, 0, len(decl.Ports))
		for _, portDecl := range decl.Ports {
			if len(portDecl.Bits) == 0 {
				return b.reject("cell %q port %q has no bits", decl.Name, portDecl.Name)
			}
			ports = append(ports, &Port{
				Name:      portDecl.Name,
				Direction: portDecl.Direction,
				Bits:      portDecl.Bits.Clone(),
			})
		}

		b.module.AddNode(newNode(decl.Name, decl.Type, ports))
	}
	return nil
}

// resolveModule collects the driver and consumer pools and runs the
// resolver over every consumer. Ports with no-connect bits stay out of
// both pools.
func resolveModule(m *Module) *resolver {
	var sources, sinks []BitString

	for _, p := range m.Ports {
		if p.HasNoConnectBits() {
			continue
		}
		switch p.Direction {
		case Input, Const:
			sources = append(sources, p.Bits.Clone())
		case Output:
			sinks = append(sinks, p.Bits.Clone())
		}
	}
	for _, n := range m.Nodes {
		for _, p := range n.Ports {
			if p.HasNoConnectBits() {
				continue
			}
			switch p.Direction {
			case Input:
				sinks = append(sinks, p.Bits.Clone())
			case Output:
				sources = append(sources, p.Bits.Clone())
			}
		}
	}

	// The resolver consumes from a claim pool; iterate over a snapshot so
	// every declared consumer is visited once.
	pending := make([]BitString, len(sinks))
	copy(pending, sinks)

	r := newResolver(sources, sinks)
	for _, sink := range pending {
		r.resolve(sink, 0)
	}
	return r
}

func allConstOrNoConnect(bits BitString) bool {
	for _, b := range bits {
		if b.Kind == BitNet {
			return false
		}
	}
	return true
}

// dropUnusedBits removes the given positions from bits. Indices are
// applied highest first; out-of-range entries are ignored.
func dropUnusedBits(bits BitString, unused []int) BitString {
	if len(unused) == 0 {
		return bits.Clone()
	}

	sorted := make([]int, len(unused))
	copy(sorted, unused)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	out := bits.Clone()
	for _, idx := range sorted {
		if idx < 0 || idx >= len(out) {
			continue
		}
		out = append(out[:idx], out[idx+1:]...)
	}
	return out
}

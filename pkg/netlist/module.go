package netlist

// Module owns the reconstructed graph of one circuit unit: its boundary
// ports (including synthesized CONST drivers), cells and synthetic
// split/join nodes, wires, and declared net aliases. Slices keep
// insertion order; that order is the iteration order everywhere.
type Module struct {
	Name     string
	Ports    []*Port
	Nodes    []*Node
	Paths    []*Path
	Netnames []*Netname
}

// NewModule returns an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddPort appends a boundary port.
func (m *Module) AddPort(p *Port) {
	m.Ports = append(m.Ports, p)
}

// AddNode appends a node.
func (m *Module) AddNode(n *Node) {
	m.Nodes = append(m.Nodes, n)
}

// AddPath appends a path.
func (m *Module) AddPath(p *Path) {
	m.Paths = append(m.Paths, p)
}

// AddNetname appends a net alias.
func (m *Module) AddNetname(n *Netname) {
	m.Netnames = append(m.Netnames, n)
}

// RemovePath deletes the path from the module, preserving the order of
// the remaining paths.
func (m *Module) RemovePath(p *Path) {
	for i, candidate := range m.Paths {
		if candidate == p {
			m.Paths = append(m.Paths[:i], m.Paths[i+1:]...)
			return
		}
	}
}

// AllPorts returns every port of the module: boundary ports first, then
// node-owned ports in node order.
func (m *Module) AllPorts() []*Port {
	ports := make([]*Port, 0, len(m.Ports))
	ports = append(ports, m.Ports...)
	for _, n := range m.Nodes {
		ports = append(ports, n.Ports...)
	}
	return ports
}

// NetnameByBits returns the first net alias declared for exactly the
// given bits, or nil.
func (m *Module) NetnameByBits(bits BitString) *Netname {
	for _, n := range m.Netnames {
		if n.Bits.Equal(bits) {
			return n
		}
	}
	return nil
}

// PathByBits returns the first path carrying exactly the given bits, or
// nil.
func (m *Module) PathByBits(bits BitString) *Path {
	for _, p := range m.Paths {
		if p.Bits.Equal(bits) {
			return p
		}
	}
	return nil
}

// MaxBitToken returns the highest numeric net token observed on any port
// of the module. Fresh tokens for materialized constants are allocated
// past this value.
func (m *Module) MaxBitToken() uint64 {
	var max uint64
	for _, p := range m.AllPorts() {
		if v := p.Bits.MaxToken(); v > max {
			max = v
		}
	}
	return max
}

// IsEmpty reports whether the module holds no paths, nodes, or ports.
func (m *Module) IsEmpty() bool {
	return len(m.Paths) == 0 && len(m.Nodes) == 0 && len(m.Ports) == 0
}

// hasInvalidPaths reports whether the module has no paths at all, or any
// path without a usable connection.
func (m *Module) hasInvalidPaths() bool {
	if len(m.Paths) == 0 {
		return true
	}
	for _, p := range m.Paths {
		if !p.HasConnection() {
			return true
		}
	}
	return false
}

// Design is the set of accepted modules of one synthesized design, in
// declaration order.
type Design struct {
	Modules []*Module
	// Top is the module carrying the design's top attribute, nil when the
	// input does not mark one.
	Top *Module

	byName map[string]*Module
}

// NewDesign returns an empty design.
func NewDesign() *Design {
	return &Design{byName: make(map[string]*Module)}
}

// AddModule appends an accepted module.
func (d *Design) AddModule(m *Module) {
	d.Modules = append(d.Modules, m)
	d.byName[m.Name] = m
}

// Module returns the module with the given name, or nil.
func (d *Design) Module(name string) *Module {
	return d.byName[name]
}

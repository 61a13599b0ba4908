package netlist

import (
	"fmt"
	"strconv"
)

// Direction is the electrical direction of a port.
type Direction uint8

const (
	// Input ports drive a signal into a node, or into the module when they
	// sit on the module boundary.
	Input Direction = iota
	// Output ports consume a signal from inside a node, or leave the
	// module when they sit on the boundary.
	Output
	// Const ports are synthesized drivers for constant bit runs.
	Const
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case Const:
		return "const"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Synthetic node type tags.
const (
	NodeTypeSplit = "split"
	NodeTypeJoin  = "join"
)

// Port is a named connection point: a module boundary port when Node is
// nil, otherwise one pin group of a cell. Its bit string is never empty.
type Port struct {
	Name      string
	Direction Direction
	Bits      BitString

	// Node is the owning cell, nil for boundary and CONST ports.
	Node *Node
	// Path is the wire the port was stitched to, nil when unattached.
	Path *Path

	// constBits retains the literal constant run a CONST port replaced.
	constBits BitString
	// constValue caches the numeric value of constBits, LSB first.
	constValue uint64
}

// Width returns the number of bits of the port.
func (p *Port) Width() int {
	return len(p.Bits)
}

// HasConstBits reports whether the port's bit string holds constant bits.
func (p *Port) HasConstBits() bool {
	return p.Bits.HasConst()
}

// HasNoConnectBits reports whether the port's bit string holds a
// no-connect marker.
func (p *Port) HasNoConnectBits() bool {
	return p.Bits.HasNoConnect()
}

// HasConnection reports whether the port is attached to a path. Ports
// with no-connect bits count as connected: the absence of a wire is
// intentional there.
func (p *Port) HasConnection() bool {
	return p.Path != nil || p.HasNoConnectBits()
}

// ConstValue returns the numeric value of the constant run a CONST port
// replaced, with bit 0 as the least significant position. It returns 0
// for non-CONST ports.
func (p *Port) ConstValue() uint64 {
	if p.Direction != Const {
		return 0
	}
	return p.constValue
}

// ConstValueString renders the constant value in the given base (10 or
// 16), e.g. "5" or "0x5". Other bases fall back to decimal.
func (p *Port) ConstValueString(base int) string {
	if base == 16 {
		return "0x" + strconv.FormatUint(p.ConstValue(), 16)
	}
	return strconv.FormatUint(p.ConstValue(), 10)
}

// replaceBits splices repl over the inclusive range [start, end] of the
// port's bit string, preserving its length.
func (p *Port) replaceBits(start, end int, repl BitString) {
	for i := start; i <= end && i < len(p.Bits); i++ {
		p.Bits[i] = repl[i-start]
	}
}

// newConstPort builds a CONST driver port for a materialized constant
// run. bits are the freshly allocated net tokens, literal the replaced
// constants.
func newConstPort(name string, bits, literal BitString) *Port {
	var value uint64
	for i := len(literal) - 1; i >= 0; i-- {
		value = value<<1 | literal[i].ConstValue()
	}
	return &Port{
		Name:       name,
		Direction:  Const,
		Bits:       bits,
		constBits:  literal.Clone(),
		constValue: value,
	}
}

// Node is a cell instance, or a synthesized split/join. It owns its ports.
type Node struct {
	Name  string
	Type  string
	Ports []*Port
}

// IsSynthetic reports whether the node was synthesized during
// reconstruction rather than declared as a cell.
func (n *Node) IsSynthetic() bool {
	return n.Type == NodeTypeSplit || n.Type == NodeTypeJoin
}

// HasConnection reports whether every port of the node is attached.
func (n *Node) HasConnection() bool {
	for _, p := range n.Ports {
		if !p.HasConnection() {
			return false
		}
	}
	return true
}

// newNode builds a node and sets the back-reference on every owned port.
func newNode(name, typ string, ports []*Port) *Node {
	n := &Node{Name: name, Type: typ, Ports: ports}
	for _, p := range ports {
		p.Node = n
	}
	return n
}

// Path is a reconstructed wire: one driver, any number of consumers, all
// sharing exactly the path's bit string.
type Path struct {
	Name   string
	Bits   BitString
	Hidden bool

	// Source is the single driver port, nil when the wire is undriven.
	Source *Port
	// Destinations are the consumer ports attached to the wire.
	Destinations []*Port
	// AlternativeNames are further user-declared names for the same bits.
	AlternativeNames []string
}

// Width returns the electrical width of the path.
func (p *Path) Width() int {
	return len(p.Bits)
}

// HasNoConnectBits reports whether the path's bit string holds a
// no-connect marker.
func (p *Path) HasNoConnectBits() bool {
	return p.Bits.HasNoConnect()
}

// HasConnection reports whether the path carries a usable wire: a driver
// with at least one consumer, or an intentional no-connect.
func (p *Path) HasConnection() bool {
	if p.Source != nil && len(p.Destinations) > 0 {
		return true
	}
	return p.HasNoConnectBits()
}

// Netname is a user-declared alias binding a bit string to a preferred
// display name.
type Netname struct {
	Name         string
	Bits         BitString
	Hidden       bool
	Alternatives []string
}

// AddAlternative records a further name declared for the same bits.
func (n *Netname) AddAlternative(name string) {
	n.Alternatives = append(n.Alternatives, name)
}

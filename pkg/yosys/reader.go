package yosys

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

// Parse decodes a Yosys JSON document. A document without a non-empty
// modules object is structurally broken and yields a StructuralError;
// per-module defects are left for Decls to report.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("yosys: failed to decode document: %w", err)
	}

	modulesRaw, ok := top[keyModules]
	if !ok {
		return nil, &netlist.StructuralError{Reason: "no modules object in document"}
	}

	modules, err := decodeOrdered(modulesRaw)
	if err != nil {
		return nil, fmt.Errorf("yosys: failed to decode modules: %w", err)
	}
	if len(modules) == 0 {
		return nil, &netlist.StructuralError{Reason: "no modules object in document"}
	}

	doc := &Document{byName: make(map[string]*RawModule)}
	for _, entry := range modules {
		module, err := decodeModule(entry.name, entry.value)
		if err != nil {
			return nil, err
		}
		doc.Modules = append(doc.Modules, module)
		doc.byName[module.Name] = module
	}

	return doc, nil
}

// ParseFile reads and decodes the document at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yosys: failed to read file: %w", err)
	}
	return Parse(data)
}

// Decls converts the document into the declaration form consumed by
// netlist.Build. Modules with defective declarations (invalid
// directions, empty bit arrays, mismatched cell tables) are skipped and
// reported as ModuleErrors joined into the returned error; valid
// siblings convert regardless.
func (d *Document) Decls() ([]netlist.ModuleDecl, error) {
	var decls []netlist.ModuleDecl
	var rejections []error

	for _, module := range d.Modules {
		decl, err := module.decl()
		if err != nil {
			rejections = append(rejections, err)
			continue
		}
		decls = append(decls, decl)
	}

	return decls, errors.Join(rejections...)
}

func (m *RawModule) decl() (netlist.ModuleDecl, error) {
	decl := netlist.ModuleDecl{
		Name:     m.Name,
		Blackbox: m.IsBlackbox(),
		Top:      m.IsTop(),
	}

	for _, port := range m.Ports {
		direction, err := parseDirection(port.Direction)
		if err != nil {
			return decl, moduleErr(m.Name, "port %q: %v", port.Name, err)
		}
		bits, err := decodeBits(port.Bits)
		if err != nil {
			return decl, moduleErr(m.Name, "port %q: %v", port.Name, err)
		}
		decl.Ports = append(decl.Ports, netlist.PortDecl{
			Name:      port.Name,
			Direction: direction,
			Bits:      bits,
		})
	}

	for _, cell := range m.Cells {
		cellDecl, err := m.cellDecl(cell)
		if err != nil {
			return decl, err
		}
		decl.Cells = append(decl.Cells, cellDecl)
	}

	for _, netname := range m.Netnames {
		bits, err := decodeBits(netname.Bits)
		if err != nil {
			return decl, moduleErr(m.Name, "netname %q: %v", netname.Name, err)
		}
		unused, err := parseUnusedBits(netname.UnusedBits)
		if err != nil {
			return decl, moduleErr(m.Name, "netname %q: %v", netname.Name, err)
		}
		decl.Netnames = append(decl.Netnames, netlist.NetnameDecl{
			Name:       netname.Name,
			Bits:       bits,
			Hidden:     netname.HideName == 1,
			UnusedBits: unused,
		})
	}

	return decl, nil
}

func (m *RawModule) cellDecl(cell RawCell) (netlist.CellDecl, error) {
	var typ string
	if err := json.Unmarshal(cell.Type, &typ); err != nil {
		return netlist.CellDecl{}, moduleErr(m.Name, "cell %q: type is not a string", cell.Name)
	}

	if len(cell.PortDirections) == 0 || len(cell.Connections) == 0 {
		return netlist.CellDecl{}, moduleErr(m.Name, "cell %q: no port directions or connections", cell.Name)
	}
	if len(cell.PortDirections) != len(cell.Connections) {
		return netlist.CellDecl{}, moduleErr(m.Name,
			"cell %q: %d port directions but %d connections",
			cell.Name, len(cell.PortDirections), len(cell.Connections))
	}

	connections := make(map[string][]json.RawMessage, len(cell.Connections))
	for _, conn := range cell.Connections {
		connections[conn.Name] = conn.Bits
	}

	decl := netlist.CellDecl{Name: cell.Name, Type: typ}
	for _, pd := range cell.PortDirections {
		direction, err := parseDirection(pd.Direction)
		if err != nil {
			return netlist.CellDecl{}, moduleErr(m.Name, "cell %q port %q: %v", cell.Name, pd.Name, err)
		}
		rawBits, ok := connections[pd.Name]
		if !ok {
			return netlist.CellDecl{}, moduleErr(m.Name, "cell %q port %q: no connection", cell.Name, pd.Name)
		}
		bits, err := decodeBits(rawBits)
		if err != nil {
			return netlist.CellDecl{}, moduleErr(m.Name, "cell %q port %q: %v", cell.Name, pd.Name, err)
		}
		decl.Ports = append(decl.Ports, netlist.CellPortDecl{
			Name:      pd.Name,
			Direction: direction,
			Bits:      bits,
		})
	}

	return decl, nil
}

func parseDirection(s string) (netlist.Direction, error) {
	switch s {
	case dirInput:
		return netlist.Input, nil
	case dirOutput:
		return netlist.Output, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// decodeBits converts a raw Yosys bit array: integers are net tokens,
// the strings "0" and "1" constants, "x" a no-connect marker.
func decodeBits(raw []json.RawMessage) (netlist.BitString, error) {
	if len(raw) == 0 {
		return nil, errors.New("no bits found")
	}

	bits := make(netlist.BitString, 0, len(raw))
	for _, r := range raw {
		trimmed := bytes.TrimSpace(r)
		if len(trimmed) == 0 {
			return nil, errors.New("empty bit value")
		}

		if trimmed[0] == '"' {
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil {
				return nil, fmt.Errorf("invalid bit value %s", trimmed)
			}
			switch s {
			case "0":
				bits = append(bits, netlist.ConstBit(false))
			case "1":
				bits = append(bits, netlist.ConstBit(true))
			case "x":
				bits = append(bits, netlist.NoConnectBit())
			default:
				return nil, fmt.Errorf("invalid bit value %q", s)
			}
			continue
		}

		// Net tokens are JSON integers; keep their decimal spelling as
		// the opaque token.
		if _, err := strconv.ParseUint(string(trimmed), 10, 64); err != nil {
			return nil, fmt.Errorf("invalid bit value %s", trimmed)
		}
		bits = append(bits, netlist.NetBit(string(trimmed)))
	}

	return bits, nil
}

// parseUnusedBits splits the space-separated index list of the
// unused_bits attribute.
func parseUnusedBits(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var indices []int
	for _, field := range strings.Fields(s) {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid unused_bits entry %q", field)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func moduleErr(module, format string, args ...interface{}) *netlist.ModuleError {
	return &netlist.ModuleError{Module: module, Reason: fmt.Sprintf(format, args...)}
}

// Package yosys reads the JSON netlist documents emitted by the Yosys
// write_json backend and converts them into the declaration form the
// netlist package reconstructs from.
package yosys

import (
	"encoding/json"
)

// JSON key and value constants of the Yosys document format.
const (
	keyModules        = "modules"
	keyAttributes     = "attributes"
	keyPorts          = "ports"
	keyCells          = "cells"
	keyNetnames       = "netnames"
	keyDirection      = "direction"
	keyBits           = "bits"
	keyType           = "type"
	keyPortDirections = "port_directions"
	keyConnections    = "connections"
	keyHideName       = "hide_name"
	keyUnusedBits     = "unused_bits"

	attrBlackbox = "blackbox"
	attrTop      = "top"

	dirInput  = "input"
	dirOutput = "output"
)

// Document is a decoded Yosys JSON netlist. Modules keep their
// declaration order.
type Document struct {
	Modules []*RawModule

	byName map[string]*RawModule
}

// Module returns the raw module with the given name, or nil.
func (d *Document) Module(name string) *RawModule {
	return d.byName[name]
}

// RawModule is one module as spelled in the document, before any
// reconstruction. Ports, cells and netnames keep declaration order; bit
// arrays stay as raw JSON until conversion.
type RawModule struct {
	Name       string
	Attributes map[string]json.RawMessage
	Ports      []RawPort
	Cells      []RawCell
	Netnames   []RawNetname
}

// IsBlackbox reports whether the module carries a blackbox attribute,
// marking it as a library part to skip.
func (m *RawModule) IsBlackbox() bool {
	return m.hasAttribute(attrBlackbox)
}

// IsTop reports whether the module carries the design's top attribute.
func (m *RawModule) IsTop() bool {
	return m.hasAttribute(attrTop)
}

func (m *RawModule) hasAttribute(name string) bool {
	raw, ok := m.Attributes[name]
	if !ok {
		return false
	}
	return string(raw) != "null"
}

// RawPort is one boundary port declaration.
type RawPort struct {
	Name      string
	Direction string
	Bits      []json.RawMessage
}

// RawCell is one cell declaration. PortDirections and Connections are
// parallel, keyed by cell port name, in declaration order.
type RawCell struct {
	Name           string
	Type           json.RawMessage
	PortDirections []RawCellPortDirection
	Connections    []RawCellConnection
}

// RawCellPortDirection is one entry of a cell's port_directions object.
type RawCellPortDirection struct {
	Name      string
	Direction string
}

// RawCellConnection is one entry of a cell's connections object.
type RawCellConnection struct {
	Name string
	Bits []json.RawMessage
}

// RawNetname is one netname declaration.
type RawNetname struct {
	Name       string
	HideName   int
	Bits       []json.RawMessage
	UnusedBits string
}

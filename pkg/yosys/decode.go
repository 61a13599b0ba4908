package yosys

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedEntry is one key/value pair of a JSON object, in document
// order. encoding/json maps forget declaration order, and the pipeline
// needs it for deterministic reconstruction, so objects whose order
// matters are walked with a token decoder instead.
type orderedEntry struct {
	name  string
	value json.RawMessage
}

// decodeOrdered walks a JSON object and returns its entries in
// declaration order. null decodes to no entries.
func decodeOrdered(data json.RawMessage) ([]orderedEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []orderedEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		entries = append(entries, orderedEntry{name: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return entries, nil
}

func decodeModule(name string, data json.RawMessage) (*RawModule, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("yosys: failed to decode module %q: %w", name, err)
	}

	module := &RawModule{Name: name}

	if raw, ok := fields[keyAttributes]; ok {
		if err := json.Unmarshal(raw, &module.Attributes); err != nil {
			return nil, fmt.Errorf("yosys: module %q: bad attributes: %w", name, err)
		}
	}

	ports, err := decodeOrdered(fields[keyPorts])
	if err != nil {
		return nil, fmt.Errorf("yosys: module %q: bad ports: %w", name, err)
	}
	for _, entry := range ports {
		var port struct {
			Direction string            `json:"direction"`
			Bits      []json.RawMessage `json:"bits"`
		}
		if err := json.Unmarshal(entry.value, &port); err != nil {
			return nil, fmt.Errorf("yosys: module %q port %q: %w", name, entry.name, err)
		}
		module.Ports = append(module.Ports, RawPort{
			Name:      entry.name,
			Direction: port.Direction,
			Bits:      port.Bits,
		})
	}

	cells, err := decodeOrdered(fields[keyCells])
	if err != nil {
		return nil, fmt.Errorf("yosys: module %q: bad cells: %w", name, err)
	}
	for _, entry := range cells {
		cell, err := decodeCell(entry.name, entry.value)
		if err != nil {
			return nil, fmt.Errorf("yosys: module %q: %w", name, err)
		}
		module.Cells = append(module.Cells, cell)
	}

	netnames, err := decodeOrdered(fields[keyNetnames])
	if err != nil {
		return nil, fmt.Errorf("yosys: module %q: bad netnames: %w", name, err)
	}
	for _, entry := range netnames {
		var netname struct {
			HideName   int               `json:"hide_name"`
			Bits       []json.RawMessage `json:"bits"`
			Attributes struct {
				UnusedBits string `json:"unused_bits"`
			} `json:"attributes"`
		}
		if err := json.Unmarshal(entry.value, &netname); err != nil {
			return nil, fmt.Errorf("yosys: module %q netname %q: %w", name, entry.name, err)
		}
		module.Netnames = append(module.Netnames, RawNetname{
			Name:       entry.name,
			HideName:   netname.HideName,
			Bits:       netname.Bits,
			UnusedBits: netname.Attributes.UnusedBits,
		})
	}

	return module, nil
}

func decodeCell(name string, data json.RawMessage) (RawCell, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return RawCell{}, fmt.Errorf("cell %q: %w", name, err)
	}

	cell := RawCell{Name: name, Type: fields[keyType]}

	directions, err := decodeOrdered(fields[keyPortDirections])
	if err != nil {
		return RawCell{}, fmt.Errorf("cell %q: bad port_directions: %w", name, err)
	}
	for _, entry := range directions {
		var direction string
		if err := json.Unmarshal(entry.value, &direction); err != nil {
			return RawCell{}, fmt.Errorf("cell %q port %q: %w", name, entry.name, err)
		}
		cell.PortDirections = append(cell.PortDirections, RawCellPortDirection{
			Name:      entry.name,
			Direction: direction,
		})
	}

	connections, err := decodeOrdered(fields[keyConnections])
	if err != nil {
		return RawCell{}, fmt.Errorf("cell %q: bad connections: %w", name, err)
	}
	for _, entry := range connections {
		var bits []json.RawMessage
		if err := json.Unmarshal(entry.value, &bits); err != nil {
			return RawCell{}, fmt.Errorf("cell %q port %q: %w", name, entry.name, err)
		}
		cell.Connections = append(cell.Connections, RawCellConnection{
			Name: entry.name,
			Bits: bits,
		})
	}

	return cell, nil
}

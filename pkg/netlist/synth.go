package netlist

import "strconv"

// synthesizeNodes turns the resolver's split/join requests into concrete
// nodes on the module. Join nodes are created first, then splits,
// matching the order the stitcher later scans drivers in. Synthetic
// ports take part in stitching exactly like ordinary cell ports.
func synthesizeNodes(m *Module, r *resolver) {
	createJoinNodes(m, r.joins)
	createSplitNodes(m, r.splits)
}

// createSplitNodes adds one "split" node per driver that must be
// decomposed: an `in` port with the driver's bits and one `outN` port
// per sub-string, in discovery order.
func createSplitNodes(m *Module, splits *seqMap) {
	for i := 0; i < splits.len(); i++ {
		source := splits.keys[i]
		children := splits.parts[i]

		ports := make([]*Port, 0, len(children)+1)
		ports = append(ports, &Port{
			Name:      "in",
			Direction: Input,
			Bits:      source.Clone(),
		})
		for j, child := range children {
			ports = append(ports, &Port{
				Name:      "out" + strconv.Itoa(j),
				Direction: Output,
				Bits:      child.Clone(),
			})
		}

		m.AddNode(newNode("split"+strconv.Itoa(i), NodeTypeSplit, ports))
	}
}

// createJoinNodes adds one "join" node per composite that must be
// assembled: one `inN` port per part, in discovery order, and an `out`
// port with the composite bits.
func createJoinNodes(m *Module, joins *seqMap) {
	for i := 0; i < joins.len(); i++ {
		composite := joins.keys[i]
		parts := joins.parts[i]

		ports := make([]*Port, 0, len(parts)+1)
		for j, part := range parts {
			ports = append(ports, &Port{
				Name:      "in" + strconv.Itoa(j),
				Direction: Input,
				Bits:      part.Clone(),
			})
		}
		ports = append(ports, &Port{
			Name:      "out",
			Direction: Output,
			Bits:      composite.Clone(),
		})

		m.AddNode(newNode("join"+strconv.Itoa(i), NodeTypeJoin, ports))
	}
}

package netlist

import "strconv"

// bitsTranslation records how constant materialization rewrote one
// port's bit string. The stitcher uses it to recover user-declared names
// for constant-derived paths.
type bitsTranslation struct {
	original  BitString
	rewritten BitString
}

// translationTable is the per-module list of rewrites, in processing
// order.
type translationTable []bitsTranslation

// originalFor returns the pre-materialization bit string of the port
// whose rewritten bits contain sub, or nil when no rewrite matches.
func (t translationTable) originalFor(sub BitString) BitString {
	for _, entry := range t {
		if entry.rewritten.Contains(sub) {
			return entry.original
		}
	}
	return nil
}

// materializeConstants replaces constant bit runs on every consumer-side
// port (boundary outputs and node inputs) with freshly allocated net
// tokens, and adds one CONST driver port per run to the module boundary.
// Fresh tokens count up from one past the highest token in the module.
// Returns the original-to-rewritten translation for every touched port.
func materializeConstants(m *Module) translationTable {
	var hosts []*Port

	for _, p := range m.Ports {
		if p.Direction == Output && p.HasConstBits() {
			hosts = append(hosts, p)
		}
	}
	for _, n := range m.Nodes {
		for _, p := range n.Ports {
			if p.Direction == Input && p.HasConstBits() {
				hosts = append(hosts, p)
			}
		}
	}

	counter := m.MaxBitToken()
	var table translationTable

	for _, host := range hosts {
		original := host.Bits.Clone()

		for _, seg := range SegmentBits(host.Bits) {
			if !seg.IsConst() {
				continue
			}

			fresh := make(BitString, len(seg.Bits))
			for i := range fresh {
				counter++
				fresh[i] = NetBit(strconv.FormatUint(counter, 10))
			}

			constPort := newConstPort(host.Name+"_const", fresh, seg.Bits)
			m.AddPort(constPort)

			host.replaceBits(seg.Start, seg.End, fresh)
		}

		table = append(table, bitsTranslation{
			original:  original,
			rewritten: host.Bits.Clone(),
		})
	}

	return table
}

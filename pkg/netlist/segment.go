package netlist

// Segment is a maximal run of bits sharing one classification
// (constant vs everything else). Start and End are inclusive indices into
// the segmented bit string.
type Segment struct {
	Start int
	End   int
	Bits  BitString
}

// IsConst reports whether the run holds constant bits.
func (s Segment) IsConst() bool {
	return len(s.Bits) > 0 && s.Bits[0].IsConst()
}

// SegmentBits splits bits into maximal alternating runs of constant and
// non-constant bits, in position order. Concatenating the returned runs
// reproduces the input exactly; adjacent runs never share a
// classification.
func SegmentBits(bits BitString) []Segment {
	if len(bits) == 0 {
		return nil
	}

	var segments []Segment
	start := 0
	lastConst := bits[0].IsConst()

	for i := 1; i < len(bits); i++ {
		isConst := bits[i].IsConst()
		if isConst == lastConst {
			continue
		}
		segments = append(segments, Segment{
			Start: start,
			End:   i - 1,
			Bits:  bits.Slice(start, i),
		})
		start = i
		lastConst = isConst
	}

	segments = append(segments, Segment{
		Start: start,
		End:   len(bits) - 1,
		Bits:  bits.Slice(start, len(bits)),
	})

	return segments
}

package netlist

import "testing"

func TestSegmentBits(t *testing.T) {
	tests := []struct {
		name string
		bits BitString
		want []BitString
	}{
		{"empty", bs(), nil},
		{"single net", bs("2"), []BitString{bs("2")}},
		{"single const", bs("1"), []BitString{bs("1")}},
		{"all nets", bs("2", "3", "4"), []BitString{bs("2", "3", "4")}},
		{"all consts", bs("0", "1", "0"), []BitString{bs("0", "1", "0")}},
		{
			"const run in the middle",
			bs("2", "0", "1", "3"),
			[]BitString{bs("2"), bs("0", "1"), bs("3")},
		},
		{
			"leading and trailing consts",
			bs("0", "2", "3", "1", "1"),
			[]BitString{bs("0"), bs("2", "3"), bs("1", "1")},
		},
		{
			"no-connect counts as non-constant",
			bs("x", "2", "0"),
			[]BitString{bs("x", "2"), bs("0")},
		},
	}

	for _, tt := range tests {
		segments := SegmentBits(tt.bits)
		if len(segments) != len(tt.want) {
			t.Errorf("%s: got %d segments, want %d", tt.name, len(segments), len(tt.want))
			continue
		}
		for i, seg := range segments {
			if !seg.Bits.Equal(tt.want[i]) {
				t.Errorf("%s: segment %d = %s, want %s", tt.name, i, seg.Bits, tt.want[i])
			}
		}
	}
}

func TestSegmentBitsRoundTrip(t *testing.T) {
	inputs := []BitString{
		bs("2"),
		bs("2", "0", "1", "3"),
		bs("0", "0", "2", "1", "x", "0"),
		bs("1", "0", "1", "0"),
		bs("2", "3", "4", "5", "0"),
	}

	for _, bits := range inputs {
		segments := SegmentBits(bits)

		// Concatenating the runs in order reproduces the input.
		var rebuilt BitString
		for _, seg := range segments {
			rebuilt = append(rebuilt, seg.Bits...)
		}
		if !rebuilt.Equal(bits) {
			t.Errorf("round trip of %s gave %s", bits, rebuilt)
		}

		// Ranges are contiguous and inclusive.
		next := 0
		for _, seg := range segments {
			if seg.Start != next {
				t.Errorf("%s: segment starts at %d, want %d", bits, seg.Start, next)
			}
			if seg.End-seg.Start+1 != len(seg.Bits) {
				t.Errorf("%s: segment range [%d,%d] does not match %d bits",
					bits, seg.Start, seg.End, len(seg.Bits))
			}
			next = seg.End + 1
		}
		if next != len(bits) {
			t.Errorf("%s: segments cover %d bits, want %d", bits, next, len(bits))
		}

		// Adjacent runs never share a classification.
		for i := 1; i < len(segments); i++ {
			if segments[i].IsConst() == segments[i-1].IsConst() {
				t.Errorf("%s: segments %d and %d share a classification", bits, i-1, i)
			}
		}
	}
}

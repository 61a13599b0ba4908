package netlist

import (
	"strconv"
	"strings"
)

// BitKind classifies a single position of a bit string.
type BitKind uint8

const (
	// BitNet is a reference to a single-bit wire, identified by an opaque
	// token shared by every port that connects to that wire.
	BitNet BitKind = iota
	// BitZero is the constant logic value 0.
	BitZero
	// BitOne is the constant logic value 1.
	BitOne
	// BitNoConnect marks a bit that is intentionally left unconnected.
	BitNoConnect
)

// Bit is one position of a bit string: a net token, a constant, or a
// no-connect marker. Bits are plain comparable values.
type Bit struct {
	Kind  BitKind
	Token string // net token, set only for BitNet
}

// NetBit returns a net-reference bit for the given token.
func NetBit(token string) Bit {
	return Bit{Kind: BitNet, Token: token}
}

// ConstBit returns the constant bit for v (false = 0, true = 1).
func ConstBit(v bool) Bit {
	if v {
		return Bit{Kind: BitOne}
	}
	return Bit{Kind: BitZero}
}

// NoConnectBit returns the no-connect marker bit.
func NoConnectBit() Bit {
	return Bit{Kind: BitNoConnect}
}

// IsConst reports whether the bit is a constant 0 or 1.
func (b Bit) IsConst() bool {
	return b.Kind == BitZero || b.Kind == BitOne
}

// ConstValue returns 0 or 1 for constant bits and 0 otherwise.
func (b Bit) ConstValue() uint64 {
	if b.Kind == BitOne {
		return 1
	}
	return 0
}

// String renders the bit the way Yosys JSON spells it.
func (b Bit) String() string {
	switch b.Kind {
	case BitZero:
		return "0"
	case BitOne:
		return "1"
	case BitNoConnect:
		return "x"
	default:
		return b.Token
	}
}

// key returns an unambiguous encoding of the bit. Net tokens are prefixed
// so that a token spelled "0" can never collide with the constant 0.
func (b Bit) key() string {
	if b.Kind == BitNet {
		return "n" + b.Token
	}
	return b.String()
}

// BitString is an ordered sequence of bits. Index 0 is the least
// significant position. The length is the electrical width.
type BitString []Bit

// Equal reports whether a and other hold the same bits in the same order.
func (a BitString) Equal(other BitString) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// Index returns the position of the first contiguous occurrence of sub in
// a, or -1 when sub does not occur. The empty string occurs at 0.
func (a BitString) Index(sub BitString) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(a); i++ {
		if a[i : i+len(sub)].Equal(sub) {
			return i
		}
	}
	return -1
}

// Contains reports whether sub occurs contiguously inside a.
func (a BitString) Contains(sub BitString) bool {
	return a.Index(sub) >= 0
}

// Slice returns a copy of a[start:end]. Out-of-range bounds are clamped so
// that worklist arithmetic can run past the end and get an empty string.
func (a BitString) Slice(start, end int) BitString {
	if start < 0 {
		start = 0
	}
	if end > len(a) {
		end = len(a)
	}
	if start >= end {
		return BitString{}
	}
	out := make(BitString, end-start)
	copy(out, a[start:end])
	return out
}

// Clone returns an independent copy of a.
func (a BitString) Clone() BitString {
	out := make(BitString, len(a))
	copy(out, a)
	return out
}

// HasConst reports whether any bit is a constant 0 or 1.
func (a BitString) HasConst() bool {
	for _, b := range a {
		if b.IsConst() {
			return true
		}
	}
	return false
}

// HasNoConnect reports whether any bit is a no-connect marker.
func (a BitString) HasNoConnect() bool {
	for _, b := range a {
		if b.Kind == BitNoConnect {
			return true
		}
	}
	return false
}

// MaxToken returns the largest numeric value among the net tokens of a.
// Tokens that do not parse as unsigned integers are ignored.
func (a BitString) MaxToken() uint64 {
	var max uint64
	for _, b := range a {
		if b.Kind != BitNet {
			continue
		}
		if v, err := strconv.ParseUint(b.Token, 10, 64); err == nil && v > max {
			max = v
		}
	}
	return max
}

// Key returns a stable encoding of the whole string, usable as a map key.
func (a BitString) Key() string {
	parts := make([]string, len(a))
	for i, b := range a {
		parts[i] = b.key()
	}
	return strings.Join(parts, ",")
}

// String renders the bit string in Yosys array spelling, e.g. [2,3,"0"].
func (a BitString) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		if b.Kind == BitNet {
			sb.WriteString(b.Token)
		} else {
			sb.WriteByte('"')
			sb.WriteString(b.String())
			sb.WriteByte('"')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Package netref parses net reference selectors used by the command
// line tools to pick out wires and bit ranges, e.g. "data", "data[3]"
// or "data[7:2]". Indices are inclusive and follow the hardware
// convention: bit 0 is the least significant position, ranges are
// written msb:lsb.
package netref

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Int", Pattern: `\d+`},
	// Yosys names may carry $, backslash and dot prefixes.
	{Name: "Ident", Pattern: `[A-Za-z_$\\.][A-Za-z0-9_$.\\]*`},
	{Name: "Punct", Pattern: `[\[\]:]`},
})

var refParser = participle.MustBuild[Ref](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Ref is a parsed net reference: a name with an optional bit selection.
type Ref struct {
	Name  string    `parser:"@Ident"`
	Range *BitRange `parser:"(\"[\" @@ \"]\")?"`
}

// BitRange selects a single bit or an inclusive msb:lsb range.
type BitRange struct {
	MSB int  `parser:"@Int"`
	LSB *int `parser:"(\":\" @Int)?"`
}

// Parse parses a selector. The range, when present, must satisfy
// msb >= lsb.
func Parse(input string) (*Ref, error) {
	ref, err := refParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("netref: invalid selector %q: %w", input, err)
	}
	if r := ref.Range; r != nil && r.LSB != nil && r.MSB < *r.LSB {
		return nil, fmt.Errorf("netref: invalid selector %q: range %d:%d is reversed", input, r.MSB, *r.LSB)
	}
	return ref, nil
}

// Matches reports whether the selector names the given wire.
func (r *Ref) Matches(name string) bool {
	return r.Name == name
}

// Bounds returns the selected inclusive bit positions (low, high). A
// bare name selects nothing specific and reports ok = false.
func (r *Ref) Bounds() (low, high int, ok bool) {
	if r.Range == nil {
		return 0, 0, false
	}
	if r.Range.LSB == nil {
		return r.Range.MSB, r.Range.MSB, true
	}
	return *r.Range.LSB, r.Range.MSB, true
}

// Width returns the number of bits the selector picks, or 0 for a bare
// name (meaning the whole wire, whatever its width).
func (r *Ref) Width() int {
	low, high, ok := r.Bounds()
	if !ok {
		return 0
	}
	return high - low + 1
}

// Slice extracts the selected bits from a wire's bit string. A bare
// name returns the whole string.
func (r *Ref) Slice(bits netlist.BitString) (netlist.BitString, error) {
	low, high, ok := r.Bounds()
	if !ok {
		return bits, nil
	}
	if high >= len(bits) {
		return nil, fmt.Errorf("netref: bit %d out of range for %d-bit wire %s", high, len(bits), r.Name)
	}
	return bits.Slice(low, high+1), nil
}

// String renders the selector back in its input form.
func (r *Ref) String() string {
	if r.Range == nil {
		return r.Name
	}
	if r.Range.LSB == nil {
		return fmt.Sprintf("%s[%d]", r.Name, r.Range.MSB)
	}
	return fmt.Sprintf("%s[%d:%d]", r.Name, r.Range.MSB, *r.Range.LSB)
}

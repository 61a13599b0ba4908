package netref

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

func TestParseBareName(t *testing.T) {
	ref, err := Parse("data")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ref.Name != "data" || ref.Range != nil {
		t.Errorf("unexpected ref: %+v", ref)
	}
	if ref.Width() != 0 {
		t.Errorf("bare name width = %d, want 0", ref.Width())
	}
	if ref.String() != "data" {
		t.Errorf("String() = %q", ref.String())
	}
}

func TestParseSingleBit(t *testing.T) {
	ref, err := Parse("data[3]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	low, high, ok := ref.Bounds()
	if !ok || low != 3 || high != 3 {
		t.Errorf("Bounds = %d,%d,%v", low, high, ok)
	}
	if ref.Width() != 1 {
		t.Errorf("Width = %d, want 1", ref.Width())
	}
	if ref.String() != "data[3]" {
		t.Errorf("String() = %q", ref.String())
	}
}

func TestParseRange(t *testing.T) {
	ref, err := Parse("data[7:2]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	low, high, ok := ref.Bounds()
	if !ok || low != 2 || high != 7 {
		t.Errorf("Bounds = %d,%d,%v", low, high, ok)
	}
	if ref.Width() != 6 {
		t.Errorf("Width = %d, want 6", ref.Width())
	}
	if ref.String() != "data[7:2]" {
		t.Errorf("String() = %q", ref.String())
	}
}

func TestParseYosysNames(t *testing.T) {
	for _, name := range []string{"$auto$wire.1", `\clk_i`, "net.a_b"} {
		ref, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", name, err)
			continue
		}
		if ref.Name != name {
			t.Errorf("Parse(%q).Name = %q", name, ref.Name)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"data[",
		"data[3",
		"data[a]",
		"data[2:7]", // reversed range
		"[3]",
	} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}

func TestSlice(t *testing.T) {
	bits := netlist.BitString{
		netlist.NetBit("2"),
		netlist.NetBit("3"),
		netlist.NetBit("4"),
		netlist.NetBit("5"),
	}

	ref, err := Parse("w[2:1]")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got, err := ref.Slice(bits)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	want := netlist.BitString{netlist.NetBit("3"), netlist.NetBit("4")}
	if !got.Equal(want) {
		t.Errorf("Slice = %s, want %s", got, want)
	}

	bare, _ := Parse("w")
	got, err = bare.Slice(bits)
	if err != nil || !got.Equal(bits) {
		t.Errorf("bare name should select the whole wire")
	}

	wide, _ := Parse("w[9:0]")
	if _, err := wide.Slice(bits); err == nil {
		t.Errorf("out-of-range selection should fail")
	}
}

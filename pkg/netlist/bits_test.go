package netlist

import "testing"

// bs builds a bit string from shorthand tokens: "0" and "1" are
// constants, "x" the no-connect marker, anything else a net token.
func bs(tokens ...string) BitString {
	bits := make(BitString, len(tokens))
	for i, tok := range tokens {
		switch tok {
		case "0":
			bits[i] = ConstBit(false)
		case "1":
			bits[i] = ConstBit(true)
		case "x":
			bits[i] = NoConnectBit()
		default:
			bits[i] = NetBit(tok)
		}
	}
	return bits
}

func TestBitStringEqual(t *testing.T) {
	a := bs("2", "3", "0")
	b := bs("2", "3", "0")
	c := bs("2", "3", "1")

	if !a.Equal(b) {
		t.Errorf("identical bit strings should be equal")
	}
	if a.Equal(c) {
		t.Errorf("bit strings with different constants should differ")
	}
	if a.Equal(a.Slice(0, 2)) {
		t.Errorf("bit strings of different length should differ")
	}
}

func TestBitStringConstVsTokenDistinct(t *testing.T) {
	// A net token spelled "0" must not collide with the constant 0.
	token := BitString{NetBit("0")}
	constant := bs("0")

	if token.Equal(constant) {
		t.Errorf("net token \"0\" must differ from constant 0")
	}
	if token.Key() == constant.Key() {
		t.Errorf("keys must distinguish token \"0\" from constant 0, both %q", token.Key())
	}
}

func TestBitStringIndex(t *testing.T) {
	haystack := bs("2", "3", "4", "5")

	tests := []struct {
		name string
		sub  BitString
		want int
	}{
		{"prefix", bs("2", "3"), 0},
		{"middle", bs("3", "4"), 1},
		{"suffix", bs("5"), 3},
		{"whole", bs("2", "3", "4", "5"), 0},
		{"absent", bs("4", "3"), -1},
		{"too long", bs("2", "3", "4", "5", "6"), -1},
		{"empty", bs(), 0},
	}

	for _, tt := range tests {
		if got := haystack.Index(tt.sub); got != tt.want {
			t.Errorf("%s: Index(%s) = %d, want %d", tt.name, tt.sub, got, tt.want)
		}
	}
}

func TestBitStringSliceClamps(t *testing.T) {
	a := bs("2", "3", "4")

	if got := a.Slice(1, 3); !got.Equal(bs("3", "4")) {
		t.Errorf("Slice(1,3) = %s", got)
	}
	if got := a.Slice(2, 10); !got.Equal(bs("4")) {
		t.Errorf("Slice past end should clamp, got %s", got)
	}
	if got := a.Slice(3, 3); len(got) != 0 {
		t.Errorf("empty slice expected, got %s", got)
	}
	if got := a.Slice(5, 2); len(got) != 0 {
		t.Errorf("inverted slice should be empty, got %s", got)
	}
}

func TestBitStringSliceIsCopy(t *testing.T) {
	a := bs("2", "3", "4")
	s := a.Slice(0, 2)
	s[0] = NetBit("9")

	if a[0] != NetBit("2") {
		t.Errorf("mutating a slice must not touch the original")
	}
}

func TestBitStringPredicates(t *testing.T) {
	if !bs("2", "0", "3").HasConst() {
		t.Errorf("HasConst missed a constant")
	}
	if bs("2", "3").HasConst() {
		t.Errorf("HasConst false positive")
	}
	if !bs("2", "x").HasNoConnect() {
		t.Errorf("HasNoConnect missed a marker")
	}
	if bs("2", "0").HasNoConnect() {
		t.Errorf("HasNoConnect false positive")
	}
}

func TestBitStringMaxToken(t *testing.T) {
	if got := bs("2", "17", "5", "0", "x").MaxToken(); got != 17 {
		t.Errorf("MaxToken = %d, want 17", got)
	}
	if got := bs("0", "1", "x").MaxToken(); got != 0 {
		t.Errorf("MaxToken of constants = %d, want 0", got)
	}
	// Non-numeric tokens are ignored.
	if got := bs("alpha", "3").MaxToken(); got != 3 {
		t.Errorf("MaxToken with non-numeric token = %d, want 3", got)
	}
}

func TestBitStringString(t *testing.T) {
	got := bs("2", "0", "x").String()
	want := `[2,"0","x"]`
	if got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

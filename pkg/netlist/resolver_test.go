package netlist

import "testing"

func resolveAll(sources, sinks []BitString) *resolver {
	pending := make([]BitString, len(sinks))
	copy(pending, sinks)

	r := newResolver(sources, sinks)
	for _, sink := range pending {
		r.resolve(sink, 0)
	}
	return r
}

func TestResolveExactMatch(t *testing.T) {
	r := resolveAll(
		[]BitString{bs("2", "3")},
		[]BitString{bs("2", "3")},
	)

	if r.splits.len() != 0 {
		t.Errorf("exact match must not request splits")
	}
	if r.joins.len() != 0 {
		t.Errorf("exact match must not request joins")
	}
}

func TestResolveSplit(t *testing.T) {
	wide := bs("2", "3", "4", "5")
	r := resolveAll(
		[]BitString{wide},
		[]BitString{bs("2", "3"), bs("4", "5")},
	)

	if r.joins.len() != 0 {
		t.Errorf("unexpected joins: %d", r.joins.len())
	}
	if r.splits.len() != 1 {
		t.Fatalf("expected one split source, got %d", r.splits.len())
	}
	if !r.splits.keys[0].Equal(wide) {
		t.Errorf("split source = %s, want %s", r.splits.keys[0], wide)
	}

	parts := r.splits.parts[0]
	if len(parts) != 2 {
		t.Fatalf("expected two split parts, got %d", len(parts))
	}
	if !parts[0].Equal(bs("2", "3")) || !parts[1].Equal(bs("4", "5")) {
		t.Errorf("split parts in discovery order, got %s then %s", parts[0], parts[1])
	}

	// The split outputs became drivers.
	if r.sources.indexOf(bs("2", "3")) < 0 || r.sources.indexOf(bs("4", "5")) < 0 {
		t.Errorf("split parts must join the source pool")
	}
}

func TestResolveJoin(t *testing.T) {
	sink := bs("2", "3")
	r := resolveAll(
		[]BitString{bs("2"), bs("3")},
		[]BitString{sink},
	)

	if r.splits.len() != 0 {
		t.Errorf("unexpected splits: %d", r.splits.len())
	}
	if r.joins.len() != 1 {
		t.Fatalf("expected one join, got %d", r.joins.len())
	}
	if !r.joins.keys[0].Equal(sink) {
		t.Errorf("join composite = %s, want %s", r.joins.keys[0], sink)
	}

	parts := r.joins.parts[0]
	if len(parts) != 2 || !parts[0].Equal(bs("2")) || !parts[1].Equal(bs("3")) {
		t.Errorf("join parts wrong: %v", parts)
	}
}

func TestResolveUnresolvedTail(t *testing.T) {
	// Only "2" exists as a source anywhere; "9" stays unresolved.
	sink := bs("2", "9")
	r := resolveAll(
		[]BitString{bs("2")},
		[]BitString{sink},
	)

	if r.joins.len() != 1 {
		t.Fatalf("expected one join for the resolved head, got %d", r.joins.len())
	}
	parts := r.joins.parts[0]
	if len(parts) != 1 || !parts[0].Equal(bs("2")) {
		t.Errorf("only the head should resolve, got %v", parts)
	}

	// The unresolved bit never became a source.
	if r.sources.indexOf(bs("9")) >= 0 {
		t.Errorf("unresolved bit must not enter the source pool")
	}
}

func TestResolveNestedSink(t *testing.T) {
	// B contains A, and A is itself an unresolved sink: resolving B
	// forces A's internal composition to be worked out first.
	a := bs("2", "3")
	b := bs("2", "3", "4")
	r := resolveAll(
		[]BitString{bs("2"), bs("3"), bs("4")},
		[]BitString{b, a},
	)

	if r.joins.len() != 2 {
		t.Fatalf("expected joins for both composites, got %d", r.joins.len())
	}

	// B was resolved first: its parts are A (via the nested resolve)
	// and the trailing bit.
	if !r.joins.keys[0].Equal(b) {
		t.Errorf("first join key = %s, want %s", r.joins.keys[0], b)
	}
	bParts := r.joins.parts[0]
	if len(bParts) != 2 || !bParts[0].Equal(a) || !bParts[1].Equal(bs("4")) {
		t.Errorf("B parts = %v", bParts)
	}

	// The nested resolve recorded A's own composition.
	if !r.joins.keys[1].Equal(a) {
		t.Errorf("second join key = %s, want %s", r.joins.keys[1], a)
	}
	aParts := r.joins.parts[1]
	if len(aParts) != 2 || !aParts[0].Equal(bs("2")) || !aParts[1].Equal(bs("3")) {
		t.Errorf("A parts = %v", aParts)
	}

	// A became a source, so its own pass finds an exact match and adds
	// nothing further.
	if r.sources.indexOf(a) < 0 {
		t.Errorf("nested composite must join the source pool")
	}
}

func TestResolveClaimsSinkOnce(t *testing.T) {
	sink := bs("2")
	r := newResolver(
		[]BitString{bs("2")},
		[]BitString{sink},
	)
	r.resolve(sink, 0)

	if r.sinks.indexOf(sink) >= 0 {
		t.Errorf("resolved sink must leave the sink pool")
	}
}

func TestSeqMapOrderAndDedup(t *testing.T) {
	m := newSeqMap()
	m.add(bs("2", "3"), bs("2"))
	m.add(bs("4"), bs("4"))
	m.add(bs("2", "3"), bs("3"))
	m.add(bs("2", "3"), bs("2")) // duplicate part

	if m.len() != 2 {
		t.Fatalf("len = %d, want 2", m.len())
	}
	if !m.keys[0].Equal(bs("2", "3")) || !m.keys[1].Equal(bs("4")) {
		t.Errorf("keys must keep first-insertion order")
	}
	if len(m.parts[0]) != 2 {
		t.Errorf("duplicate part must be dropped, have %d", len(m.parts[0]))
	}
}

package netlist

// The signal resolver decides, for every consumer bit string, how it can
// be produced from the known driver bit strings: an exact match, a split
// out of a wider driver, a join of narrower pieces, or a mix of all
// three. It only records what must be synthesized; node construction
// happens afterwards (synth.go).
//
// All pools and accumulators are scanned front to back in insertion
// order, so the first structural match wins deterministically. That
// order is an implementation property, not an API promise.

// maxResolveDepth bounds the nested-join recursion. Every level adds a
// freshly resolved string to the source pool, so real inputs stay far
// below the bound; it exists to make termination explicit.
const maxResolveDepth = 256

// bitsPool is an insertion-ordered pool of bit strings.
type bitsPool struct {
	items []BitString
}

func (p *bitsPool) add(b BitString) {
	p.items = append(p.items, b)
}

// indexOf returns the position of the first entry equal to b, or -1.
func (p *bitsPool) indexOf(b BitString) int {
	for i, item := range p.items {
		if item.Equal(b) {
			return i
		}
	}
	return -1
}

// indexOfContaining returns the position of the first entry that holds b
// as a contiguous sub-string, or -1. An entry equal to b also matches.
func (p *bitsPool) indexOfContaining(b BitString) int {
	for i, item := range p.items {
		if item.Contains(b) {
			return i
		}
	}
	return -1
}

func (p *bitsPool) removeValue(b BitString) {
	if i := p.indexOf(b); i >= 0 {
		p.items = append(p.items[:i], p.items[i+1:]...)
	}
}

// seqMap maps a bit string to an ordered list of component bit strings.
// Keys iterate in first-insertion order; duplicate parts for the same
// key are dropped.
type seqMap struct {
	keys  []BitString
	parts [][]BitString
	index map[string]int
}

func newSeqMap() *seqMap {
	return &seqMap{index: make(map[string]int)}
}

func (m *seqMap) add(key, part BitString) {
	i, ok := m.index[key.Key()]
	if !ok {
		i = len(m.keys)
		m.index[key.Key()] = i
		m.keys = append(m.keys, key.Clone())
		m.parts = append(m.parts, nil)
	}
	for _, existing := range m.parts[i] {
		if existing.Equal(part) {
			return
		}
	}
	m.parts[i] = append(m.parts[i], part.Clone())
}

func (m *seqMap) len() int {
	return len(m.keys)
}

// resolver carries the shared state of one module's resolution run.
type resolver struct {
	sources *bitsPool
	sinks   *bitsPool
	splits  *seqMap // driver bits -> sub-strings to split out
	joins   *seqMap // composite bits -> parts to join
}

func newResolver(sources, sinks []BitString) *resolver {
	return &resolver{
		sources: &bitsPool{items: sources},
		sinks:   &bitsPool{items: sinks},
		splits:  newSeqMap(),
		joins:   newSeqMap(),
	}
}

// task is one pending range [start, end) of the string under resolution.
type task struct {
	start, end int
	query      BitString
}

// resolve works out how toSolve can be driven, recording required splits
// and joins. Segments that match nothing stay unresolved and simply
// produce no wire.
func (r *resolver) resolve(toSolve BitString, depth int) {
	// A sink string is claimed the moment its resolution starts.
	r.sinks.removeValue(toSolve)

	tasks := []task{{0, len(toSolve), toSolve.Clone()}}

	for len(tasks) > 0 {
		cur := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]

		if cur.start >= len(toSolve) || cur.end-cur.start < 1 {
			continue
		}

		query := cur.query

		// Exact driver match: the segment is satisfied directly.
		if r.sources.indexOf(query) >= 0 {
			if !query.Equal(toSolve) {
				r.joins.add(toSolve, query)
			}
			tasks = append(tasks, r.remainder(toSolve, cur.end))
			continue
		}

		// The segment sits inside a wider driver: split it out. The
		// split output becomes a driver for later queries.
		if i := r.sources.indexOfContaining(query); i >= 0 {
			if !query.Equal(toSolve) {
				r.joins.add(toSolve, query)
			}
			r.splits.add(r.sources.items[i], query)
			r.sources.add(query)
			tasks = append(tasks, r.remainder(toSolve, cur.end))
			continue
		}

		// Another unresolved consumer also wants a wire containing the
		// segment: resolve the segment as its own full query against a
		// scratch sink pool to discover its internal split/join chain,
		// then treat it as a driver.
		if r.sinks.indexOfContaining(query) >= 0 {
			if !query.Equal(toSolve) {
				r.joins.add(toSolve, query)
			}
			if depth < maxResolveDepth {
				saved := r.sinks
				r.sinks = &bitsPool{}
				r.resolve(query, depth+1)
				r.sinks = saved
			}
			r.sources.add(query)
			if toSolve.Contains(query) {
				tasks = append(tasks, r.remainder(toSolve, cur.end))
			}
			continue
		}

		// No structural match: shrink the query by one bit from the end
		// and retry. A one-bit query shrinks to empty and is discarded
		// above, leaving the bit unresolved.
		tasks = append(tasks, task{
			start: cur.start,
			end:   cur.start + len(query) - 1,
			query: toSolve.Slice(cur.start, cur.start+len(query)-1),
		})
	}
}

// remainder builds the task covering everything after end.
func (r *resolver) remainder(toSolve BitString, end int) task {
	return task{
		start: end,
		end:   len(toSolve),
		query: toSolve.Slice(end, len(toSolve)),
	}
}

package spent

// Stats accumulates the timing statistics of one span identity.
type Stats struct {
	// ElapsedExclusive counts cycles spent in the span's own code, excluding
	// nested spans. It is signed because child exits subtract their duration
	// from it, and the running value may dip negative until the enclosing
	// invocation unwinds.
	ElapsedExclusive int64
	// ElapsedInclusive counts cycles of the most recent completed invocation
	// including everything beneath it, chained onto the accumulation that
	// preceded that invocation.
	ElapsedInclusive uint64
	// HitCount is the number of completed invocations.
	HitCount uint64

	// order is the first-seen sequence number, used only for presentation.
	order uint64
}

// Leaf reports whether the span never measured a nested child. Valid only
// after full unwind, when a nonnegative exclusive accumulator is guaranteed.
func (st *Stats) Leaf() bool {
	return uint64(st.ElapsedExclusive) == st.ElapsedInclusive
}

// token carries the state a [Span] needs between enter and exit.
type token struct {
	id              SpanID
	parent          SpanID
	begin           uint64
	inclusiveBefore uint64
	hasParent       bool
}

// enter looks up or creates the statistics for id, stamps the start cycle,
// links the currently-active span as parent, and makes id current.
//
// inclusiveBefore snapshots the accumulated inclusive time so that exit can
// write the invocation's own full span on top of it rather than
// double-accumulating across re-entrant calls.
func (p *Profiler) enter(id SpanID) token {
	if p.table == nil {
		p.table = make(map[SpanID]*Stats, tableCapacity)
	}

	st, ok := p.table[id]
	if !ok {
		p.nextOrder++
		st = &Stats{order: p.nextOrder}
		p.table[id] = st
	}

	tok := token{
		id:              id,
		parent:          p.current,
		hasParent:       p.active,
		begin:           p.cfg.read(),
		inclusiveBefore: st.ElapsedInclusive,
	}

	p.current, p.active = id, true

	return tok
}

// exit attributes the elapsed cycles for one completed invocation and
// restores the parent span as current. The parent's exclusive time was
// provisionally over-counted while this child ran, so the child's duration
// is subtracted from it.
func (p *Profiler) exit(tok token) {
	st, ok := p.table[tok.id]
	if !ok {
		panic("spent: exit of span " + tok.id.String() + " without matching enter")
	}

	duration := p.cfg.read() - tok.begin

	st.ElapsedExclusive += int64(duration)
	st.ElapsedInclusive = tok.inclusiveBefore + duration
	st.HitCount++

	p.current, p.active = tok.parent, tok.hasParent

	if tok.hasParent {
		parent, ok := p.table[tok.parent]
		if !ok {
			panic("spent: parent span " + tok.parent.String() + " missing from table")
		}

		parent.ElapsedExclusive -= int64(duration)
	}
}

// Stats returns the recorded statistics for id, or nil if the span was never
// entered. The returned value is live; callers must not retain it across
// further measurement.
func (p *Profiler) Stats(id SpanID) *Stats {
	return p.table[id]
}

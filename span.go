package spent

// Kind classifies the region of code a span covers.
type Kind uint8

const (
	// KindFunc spans a whole function body.
	KindFunc Kind = iota
	// KindLoop spans a named loop body.
	KindLoop
	// KindSection spans an arbitrary named section.
	KindSection
)

// String returns the display suffix for the kind.
func (k Kind) String() string {
	switch k {
	case KindLoop:
		return "loop"
	case KindSection:
		return "section"
	default:
		return "fn"
	}
}

// SpanID names a span: the enclosing function plus a kind and, for loops and
// sections, a label. It is a comparable value type; two SpanIDs key the same
// table entry iff every field is equal, so the same logical span accumulates
// across re-entries.
type SpanID struct {
	Func  string
	Label string
	Kind  Kind
}

// String returns the display form of the identity:
// "fn::fn", "fn::label::loop", or "fn::label::section".
func (id SpanID) String() string {
	switch id.Kind {
	case KindLoop, KindSection:
		return id.Func + "::" + id.Label + "::" + id.Kind.String()
	default:
		return id.Func + "::" + id.Kind.String()
	}
}

// Span is a scoped measurement guard. It is created by [Profiler.Func],
// [Profiler.Loop], or [Profiler.Section], and its [Span.End] must run on
// every exit path of the instrumented block, exactly once:
//
//	defer p.Func("decode").End()
type Span struct {
	p     *Profiler
	tok   token
	ended bool
}

// Func opens a whole-function span named after the enclosing function.
func (p *Profiler) Func(name string) *Span {
	return p.span(SpanID{Func: name, Kind: KindFunc})
}

// Loop opens a span for the loop labeled label inside function fn.
func (p *Profiler) Loop(fn, label string) *Span {
	return p.span(SpanID{Func: fn, Label: label, Kind: KindLoop})
}

// Section opens a span for the section labeled label inside function fn.
func (p *Profiler) Section(fn, label string) *Span {
	return p.span(SpanID{Func: fn, Label: label, Kind: KindSection})
}

func (p *Profiler) span(id SpanID) *Span {
	return &Span{p: p, tok: p.enter(id)}
}

// End closes the span: it attributes the elapsed cycles, increments the hit
// count, and restores the previously-active span as current.
//
// Ending a span twice is an instrumentation bug and panics.
func (s *Span) End() {
	if s.ended {
		panic("spent: span " + s.tok.id.String() + " ended twice")
	}

	s.ended = true
	s.p.exit(s.tok)
}

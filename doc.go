// Package spent is a lightweight, hierarchical code-instrumentation profiler.
//
// Call sites mark the start and end of logical spans (function bodies, loop
// bodies, or arbitrary sections). Per-span cycle counts accumulate in a
// single table owned by a [Profiler], and [Profiler.EndAndPrint] renders a
// breakdown of total time, hit counts, and self/total percentages in
// first-seen order.
//
// # Usage
//
//	spent.BeginProfile()
//	defer spent.EndAndPrintProfile()
//
//	func parse(buf []byte) {
//	    defer spent.Default.Func("parse").End()
//
//	    sp := spent.Default.Loop("parse", "pairs")
//	    for ... { ... }
//	    sp.End()
//	}
//
// Time spent in a nested span is subtracted from its parent's exclusive
// time, so the report never double-counts a cycle.
//
// A Profiler carries no synchronization. Span enter/exit is assumed to never
// race; confine each Profiler to a single goroutine.
package spent

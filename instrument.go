package spent

import (
	"runtime"
	"strings"
)

// Instrument runs fn inside a whole-function span named name. It is the
// decorator form of [Profiler.Func] for call sites that prefer wrapping over
// defer:
//
//	p.Instrument("compress", func() { compress(buf) })
func (p *Profiler) Instrument(name string, fn func()) {
	defer p.Func(name).End()

	fn()
}

// InstrumentErr is [Profiler.Instrument] for workloads that return an error.
func (p *Profiler) InstrumentErr(name string, fn func() error) error {
	defer p.Func(name).End()

	return fn()
}

// Caller returns the package-qualified name of the function skip frames
// above the caller. Caller(0) names the calling function itself, so a span
// can be opened without repeating the function's name:
//
//	defer p.Func(spent.Caller(0)).End()
//
// The module path prefix is trimmed; "unknown" is returned if the stack
// cannot be resolved.
func Caller(skip int) string {
	var pcs [1]uintptr

	// Skip runtime.Callers and Caller itself.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return "unknown"
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.Function == "" {
		return "unknown"
	}

	name := frame.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return name
}

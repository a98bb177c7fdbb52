// Package profile provides optional pprof-based runtime profiling so Go's
// sampling profiler can run beside the cycle-count profiler.
//
// Profiling must be enabled at build time with the "pprof" build tag; the
// default build compiles every operation to a no-op with zero overhead.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
//	defer p.Start().Stop()
//
// When built with the pprof tag this package also imports [net/http/pprof],
// registering the /debug/pprof/ HTTP handlers for hosts that serve HTTP.
// Analyze output with:
//
//	go tool pprof <dir>/cpu.pprof
package profile

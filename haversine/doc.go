// Package haversine is the sample workload profiled by the spent CLI:
// great-circle distances over generated coordinate pairs, deserialized by a
// deliberately hand-written JSON parser so the profiler has real work to
// attribute.
package haversine

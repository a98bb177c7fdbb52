//go:build amd64

package clock

// readCycles reads the time-stamp counter via RDTSC.
//
//go:noescape
func readCycles() uint64

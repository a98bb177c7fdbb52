//go:build arm64

package clock

// readCycles reads the virtual counter-timer register CNTVCT_EL0.
//
//go:noescape
func readCycles() uint64

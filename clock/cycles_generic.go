//go:build !amd64 && !arm64

package clock

import "time"

// readCycles falls back to the monotonic nanosecond clock on architectures
// without a wired-up counter.
func readCycles() uint64 {
	return uint64(time.Since(epoch))
}

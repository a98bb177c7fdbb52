package clock

import (
	"sync"
	"time"
)

// DefaultCalibration is the wall-clock window used by [Frequency].
// 100ms comfortably exceeds the clock resolution of every supported OS, so
// the measured wall delta is never zero.
const DefaultCalibration = 100 * time.Millisecond

// nanosPerSecond is the fixed frequency of [ReadWallNanos].
const nanosPerSecond = 1_000_000_000

// epoch anchors [ReadWallNanos] to an arbitrary process-local zero so that
// readings use the monotonic clock, never the calendar clock.
//
//nolint:gochecknoglobals
var epoch = time.Now()

// ReadCycles returns the current value of the hardware cycle counter.
// Counts are relative and monotonically increasing; only deltas are
// meaningful.
func ReadCycles() uint64 {
	return readCycles()
}

// ReadWallNanos returns the OS monotonic clock normalized to nanoseconds
// since an arbitrary epoch.
func ReadWallNanos() uint64 {
	return uint64(time.Since(epoch))
}

// EstimateFrequency estimates the cycle counter frequency in cycles per
// second by busy-waiting until at least window of wall time has elapsed and
// dividing the observed cycle delta by the observed wall delta.
//
// The spin is bounded and synchronous. Callers needing a timeout must wrap
// this externally.
func EstimateFrequency(window time.Duration) uint64 {
	cycleStart := readCycles()
	wallStart := ReadWallNanos()

	wallEnd := wallStart
	for wallEnd-wallStart < uint64(window) {
		wallEnd = ReadWallNanos()
	}

	cycleEnd := readCycles()

	cycleDelta := cycleEnd - cycleStart
	wallDelta := wallEnd - wallStart

	return (cycleDelta*nanosPerSecond + wallDelta/2) / wallDelta
}

// Frequency returns the calibrated cycle counter frequency in cycles per
// second, measured once over [DefaultCalibration] and memoized for the life
// of the process. Recalibrating mid-run would invalidate comparisons against
// cycle counts already recorded, so every caller shares this one estimate.
//
//nolint:gochecknoglobals
var Frequency = sync.OnceValue(
	func() uint64 {
		return EstimateFrequency(DefaultCalibration)
	},
)

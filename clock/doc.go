// Package clock reads a relative hardware cycle counter and estimates its
// frequency by racing it against the OS monotonic clock.
//
// [ReadCycles] is the counter used to stamp every span enter and exit. It
// costs a handful of cycles: RDTSC on amd64, CNTVCT_EL0 on arm64, and the
// monotonic nanosecond clock everywhere else (where cycle counts degenerate
// to nanosecond counts and calibration converges on ~1 GHz).
//
// Cycle counts are only comparable against the frequency they were calibrated
// with, so [Frequency] is memoized for the life of the process.
package clock

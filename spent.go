package spent

import (
	"sync"
	"time"

	"github.com/ardnew/spent/clock"
)

// tableCapacity is the initial span table allocation.
const tableCapacity = 4096

// config holds the measurement parameters of a [Profiler].
type config struct {
	read   func() uint64
	freq   uint64
	window time.Duration
}

// Option applies a configuration option to a [Profiler] under construction.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithClock returns a functional option that replaces the hardware cycle
// counter with read. Tests use this to drive the profiler with a
// deterministic counter.
func WithClock(read func() uint64) Option {
	return func(cfg config) config {
		if read != nil {
			cfg.read = read
		}

		return cfg
	}
}

// WithFrequency returns a functional option that sets the cycles-per-second
// conversion used for presentation, bypassing calibration entirely.
func WithFrequency(hz uint64) Option {
	return func(cfg config) config {
		cfg.freq = hz

		return cfg
	}
}

// WithCalibration returns a functional option that sets the wall-clock
// window used to calibrate the counter frequency on [Profiler.Begin].
func WithCalibration(window time.Duration) Option {
	return func(cfg config) config {
		if window > 0 {
			cfg.window = window
		}

		return cfg
	}
}

// Profiler owns every span statistic recorded during one measured run: the
// span table, the currently-active span slot, the calibrated counter
// frequency, and the global start stamp.
//
// The zero value is not usable; construct with [New]. A Profiler performs no
// locking: span enter/exit must never race, so confine each Profiler to a
// single goroutine.
type Profiler struct {
	cfg config

	table     map[SpanID]*Stats
	current   SpanID
	active    bool
	nextOrder uint64

	once    sync.Once
	start   uint64
	started bool
}

// New creates a Profiler. Without options it reads the hardware cycle
// counter and calibrates its frequency over [clock.DefaultCalibration] on
// the first call to [Profiler.Begin].
func New(opts ...Option) *Profiler {
	cfg := config{
		read:   clock.ReadCycles,
		window: clock.DefaultCalibration,
	}

	return &Profiler{cfg: apply(cfg, opts...)}
}

// Begin starts the measured window: it calibrates the counter frequency
// (unless injected with [WithFrequency]), creates the span table if absent,
// and records the global start cycle count.
//
// Begin is memoized. A second call is a no-op and never clears statistics
// already recorded.
func (p *Profiler) Begin() {
	p.once.Do(func() {
		if p.cfg.freq == 0 {
			if p.cfg.window == clock.DefaultCalibration {
				p.cfg.freq = clock.Frequency()
			} else {
				p.cfg.freq = clock.EstimateFrequency(p.cfg.window)
			}
		}

		if p.table == nil {
			p.table = make(map[SpanID]*Stats, tableCapacity)
		}

		p.start = p.cfg.read()
		p.started = true
	})
}

// Frequency returns the cycles-per-second conversion in effect, or zero
// before [Profiler.Begin].
func (p *Profiler) Frequency() uint64 {
	return p.cfg.freq
}

// Default is the process-wide profiler used by the package-level lifecycle
// functions. It inherits the Profiler's single-goroutine contract.
//
//nolint:gochecknoglobals
var Default = New()

// BeginProfile starts [Default]. Call it once, as early as possible in the
// program's execution.
func BeginProfile() {
	Default.Begin()
}

// EndAndPrintProfile ends [Default] and renders its report to stdout. Call
// it once, as late as possible. It panics if BeginProfile was never called.
func EndAndPrintProfile(opts ...ReportOption) error {
	return Default.EndAndPrint(opts...)
}

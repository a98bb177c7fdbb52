package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler configures the optional pprof integration.
type Profiler struct {
	// Mode selects the profile to record; see [Modes].
	Mode string
	// Path is the directory profile files are written to.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a handle for stopping it.
//
// If the binary was built without the pprof tag, or Mode is empty or
// unrecognized, the returned handle is a no-op. Both Start and Stop are
// always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}

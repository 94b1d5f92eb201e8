package profile

// Profiler describes one profiling session.
type Profiler struct {
	Mode  string // One of [Modes]; empty disables profiling
	Path  string // Output directory; empty selects a temporary directory
	Quiet bool   // Suppress the profiler's own log messages
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling and returns the handle that stops it.
// Start never fails: an empty or unsupported mode, or a binary built
// without [Tag], yields a no-op [Stopper].
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}

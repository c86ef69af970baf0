// trace.go — the two ways a flub trace gets populated.
//
//   - manual:    Throw seeds an empty trace; every caller on the way up
//                records itself with Append.
//   - backtrace: Throw captures the call stack once; Append does nothing.
//
// The build picks one with the flubbacktrace tag (see defaultTracer).
// ThrowTraced and TossTraced accept either explicitly.
//
// Trace storage is append-only and insertion-ordered. Growth goes through the
// record's allocator; when a step fails the record is marked truncated, the
// existing entries stay, and later appends are dropped.
package flub

// Tracer populates flub traces. Implementations live in this package; use
// NewManualTracer or NewBacktraceTracer.
type Tracer interface {
	// seed allocates the initial trace of f. skip is how many frames above
	// seed's caller the throwing function sits. false means allocation failed.
	seed(a Allocator, f *Flub, skip int) bool
	// extend records site on f.
	extend(f *Flub, site string)
	String() string
}

type manualTracer struct{}

// NewManualTracer returns the tracer that relies on Append.
func NewManualTracer() Tracer { return manualTracer{} }

func (manualTracer) String() string { return "manual" }

func (manualTracer) seed(a Allocator, f *Flub, _ int) bool {
	trace, ok := a.Trace()
	if !ok {
		return false
	}
	f.trace = trace
	return true
}

func (manualTracer) extend(f *Flub, site string) {
	if !f.diag {
		return
	}
	grow(f, site)
}

type backtraceTracer struct {
	capturer StackCapturer
	depth    int
}

// NewBacktraceTracer returns the tracer that captures up to depth frames
// with c when the flub is thrown. A nil c uses RuntimeCapturer; depth <= 0
// uses BacktraceDepth.
func NewBacktraceTracer(c StackCapturer, depth int) Tracer {
	if c == nil {
		c = RuntimeCapturer{}
	}
	if depth <= 0 {
		depth = BacktraceDepth
	}
	return backtraceTracer{capturer: c, depth: depth}
}

func (backtraceTracer) String() string { return "backtrace" }

func (t backtraceTracer) seed(a Allocator, f *Flub, skip int) bool {
	trace, ok := a.Trace()
	if !ok {
		return false
	}
	f.trace = trace
	for _, sym := range t.capturer.Capture(skip+1, t.depth) {
		if !grow(f, sym) {
			break
		}
	}
	return true
}

// extend is a no-op: the trace was complete when the flub was thrown.
func (backtraceTracer) extend(*Flub, string) {}

// grow appends site to f's trace through f's allocator and reports whether
// the entry was recorded.
func grow(f *Flub, site string) bool {
	if f.truncated {
		return false
	}
	trace, ok := f.alloc.Grow(f.trace, site)
	if !ok {
		f.truncated = true
		return false
	}
	f.trace = trace
	return true
}

//go:build flubbacktrace

package flub

// BacktraceBuild reports whether the binary was built with the flubbacktrace tag.
const BacktraceBuild = true

var defaultTracer Tracer = backtraceTracer{capturer: RuntimeCapturer{}, depth: BacktraceDepth}

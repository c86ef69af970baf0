//go:build !flubbacktrace

package flub

// BacktraceBuild reports whether the binary was built with the flubbacktrace tag.
const BacktraceBuild = false

var defaultTracer Tracer = manualTracer{}

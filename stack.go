// stack.go — call-stack capture for backtrace-traced flubs.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (inlined frames expand correctly).
//   - Bounded depth: never more than maxDepth symbols.
//   - Opaque to the rest of the package: tracers only see []string.
package flub

import (
	"fmt"
	"runtime"
)

// BacktraceDepth bounds the number of frames a backtrace tracer records.
const BacktraceDepth = 32

// StackCapturer captures the current call stack as symbol strings,
// innermost frame first. skip=0 starts at the caller of Capture. The result
// holds at most maxDepth entries.
type StackCapturer interface {
	Capture(skip, maxDepth int) []string
}

// RuntimeCapturer captures stacks with the Go runtime. Symbols have the form
// "pkg.Func /abs/path/file.go:123".
type RuntimeCapturer struct{}

func (RuntimeCapturer) Capture(skip, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = BacktraceDepth
	}

	// +2 skips runtime.Callers and Capture itself.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]string, 0, n)
	for len(out) < maxDepth {
		fr, more := frames.Next()
		out = append(out, fmt.Sprintf("%s %s:%d", fr.Function, fr.File, fr.Line))
		if !more {
			break
		}
	}
	return out
}

var _ StackCapturer = RuntimeCapturer{}

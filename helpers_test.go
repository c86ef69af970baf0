// helpers_test.go — shared fixtures for the package tests.
package flub

import (
	"bytes"
	"testing"
)

// requireVerbose skips tests that assert on verbose records.
func requireVerbose(t testing.TB) {
	t.Helper()
	if CompactBuild {
		t.Skip("built with flubcompact")
	}
}

// throwManual throws with the manual tracer whatever the build tags.
func throwManual(a Allocator, message string, code Code) Ref {
	return ThrowTraced(a, NewManualTracer(), message, code)
}

// failingAllocator wraps the default allocator and fails the steps it is
// told to. growLimit < 0 never fails growth.
type failingAllocator struct {
	failNew     bool
	failMessage bool
	failTrace   bool
	growLimit   int

	traceCalls int
	releases   int
}

func newFailingAllocator() *failingAllocator {
	return &failingAllocator{growLimit: -1}
}

func (a *failingAllocator) New() *Flub {
	if a.failNew {
		return nil
	}
	return defaultAllocator.New()
}

func (a *failingAllocator) Message(msg string) (string, bool) {
	if a.failMessage {
		return "", false
	}
	return defaultAllocator.Message(msg)
}

func (a *failingAllocator) Trace() ([]string, bool) {
	a.traceCalls++
	if a.failTrace {
		return nil, false
	}
	return defaultAllocator.Trace()
}

func (a *failingAllocator) Grow(trace []string, site string) ([]string, bool) {
	if a.growLimit >= 0 && len(trace) >= a.growLimit {
		return trace, false
	}
	return defaultAllocator.Grow(trace, site)
}

func (a *failingAllocator) Release(f *Flub) {
	a.releases++
	defaultAllocator.Release(f)
}

var _ Allocator = (*failingAllocator)(nil)

// textReporter returns a reporter writing into a fresh buffer.
func textReporter() (*TextReporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewTextReporter(&buf), &buf
}

// fakeCapturer returns fixed symbols and records the arguments it got.
type fakeCapturer struct {
	symbols  []string
	gotSkip  int
	gotDepth int
}

func (c *fakeCapturer) Capture(skip, maxDepth int) []string {
	c.gotSkip, c.gotDepth = skip, maxDepth
	if len(c.symbols) > maxDepth {
		return c.symbols[:maxDepth]
	}
	return c.symbols
}

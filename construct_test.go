// construct_test.go — Throw, Toss and their degraded outcomes.
package flub

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticFlub lives for the whole test binary, like a C static.
var staticFlub Flub

func TestThrow_ThenAppendThenCatch(t *testing.T) {
	requireVerbose(t)

	r := throwManual(nil, "Badness ensued!", 0xDEADBEEF)
	r = Append(r, "world")

	assert.Equal(t, Code(0xDEADBEEF), r.Code())
	msg, _ := r.Message()
	assert.Equal(t, "Badness ensued!", msg)
	trace, _ := r.Trace()
	assert.Equal(t, []string{"world"}, trace)

	rep, buf := textReporter()
	r = CatchTo(rep, r)
	assert.False(t, r.Failed(), "Catch returns the zero Ref")

	out := buf.String()
	assert.Contains(t, out, "Error Code: 3735928559 (0xdeadbeef)")
	assert.Contains(t, out, "Message: Badness ensued!")
	assert.Contains(t, out, "\t-world\n")
}

func TestThrow_RecordIsOwned(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	r := Throw("m", 3)
	require.Equal(t, kindRecord, r.kind)
	assert.True(t, r.f.owned)
	assert.Equal(t, Allocator(defaultAllocator), r.f.alloc)
	assert.Equal(t, defaultTracer, r.f.tracer)
	Free(r)
}

func TestThrowWith_NilAllocatorUsesDefault(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	r := ThrowWith(nil, "m", 3)
	require.Equal(t, kindRecord, r.kind)
	assert.Equal(t, Allocator(defaultAllocator), r.f.alloc)
	Free(r)
}

func TestToss_StaticStorageSurvivesGrab(t *testing.T) {
	requireVerbose(t)

	r := TossTraced(nil, NewManualTracer(), &staticFlub, "Badness ensued!", 0xDEADBEEF)
	require.Equal(t, kindRecord, r.kind)
	assert.Same(t, &staticFlub, r.f)
	assert.False(t, staticFlub.owned)

	rep, buf := textReporter()
	r = GrabTo(rep, r)
	assert.False(t, r.Failed())

	out := buf.String()
	assert.Contains(t, out, "Error Code: 3735928559 (0xdeadbeef)")
	assert.Contains(t, out, "Message: Badness ensued!")

	// Diagnostics are gone, the storage and its code are not.
	assert.Equal(t, Code(0xDEADBEEF), staticFlub.Code())
	assert.Empty(t, staticFlub.message)
	assert.Nil(t, staticFlub.trace)
	assert.False(t, staticFlub.diag)

	// The storage can be tossed into again.
	r = TossTraced(nil, NewManualTracer(), &staticFlub, "again", 7)
	assert.Same(t, &staticFlub, r.f)
	msg, ok := r.Message()
	require.True(t, ok)
	assert.Equal(t, "again", msg)
	GrabTo(discardReporter{}, r)
}

func TestToss_DefaultStrategies(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	var f Flub
	r := Toss(&f, "m", 4)
	assert.Same(t, &f, r.f)
	assert.Equal(t, defaultTracer, f.tracer)
	Free(r)
}

func TestToss_NilTargetIsBad(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	r := Toss(nil, "m", 11)
	assert.True(t, r.Bad())
	assert.Equal(t, Code(11), r.Code())
}

func TestThrow_MessageAllocationFails(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	a := newFailingAllocator()
	a.failMessage = true
	r := throwManual(a, "lost", 21)

	require.True(t, r.Failed())
	assert.False(t, r.Bad())
	assert.Equal(t, Code(21), r.Code())
	_, ok := r.Message()
	assert.False(t, ok)
	_, ok = r.Trace()
	assert.False(t, ok)
	assert.Zero(t, a.traceCalls, "no trace is allocated without a message")
	Free(r)
}

func TestThrow_TraceAllocationFails(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	a := newFailingAllocator()
	a.failTrace = true
	r := throwManual(a, "lost", 22)

	assert.Equal(t, Code(22), r.Code())
	_, ok := r.Message()
	assert.False(t, ok, "the message is dropped with the trace")
	assert.Empty(t, r.f.message)
	assert.Nil(t, r.f.trace)
	Free(r)
}

func TestThrow_RecordAllocationFails(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	a := newFailingAllocator()
	a.failNew = true
	r := throwManual(a, "lost", 0xDEADBEEF)

	require.True(t, r.Failed())
	assert.True(t, r.Bad())
	assert.Equal(t, Code(0xDEADBEEF), r.Code())
	_, ok := r.Message()
	assert.False(t, ok)

	rep, buf := textReporter()
	CatchTo(rep, r)
	assert.Contains(t, buf.String(), PlaceholderConstructionFailed)
	assert.Contains(t, buf.String(), "allocation failed")
	assert.Zero(t, a.releases, "nothing to release")
}

func TestThrow_ZeroCodeStillConstructs(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	r := Throw("zero", CodeOK)
	assert.True(t, r.Failed(), "verbose records fail even with code 0")
	assert.Equal(t, CodeOK, r.Code())
	Free(r)
}

func TestWarnZeroCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	assert.False(t, warnZeroCode(log, 5))
	assert.Empty(t, buf.String())

	assert.True(t, warnZeroCode(log, CodeOK))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "code 0")
}

// report_test.go — reporters.
package flub

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEvent(t *testing.T, r Ref) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	NewLogReporter(zerolog.New(&buf)).Report(r)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev), "one JSON event: %s", buf.String())
	return ev
}

func TestLogReporter_Record(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	r := throwManual(BoundedAllocator{MaxTrace: 1}, "Badness ensued!", 0xDEADBEEF).Append("a").Append("b")
	defer Free(r)

	ev := logEvent(t, r)
	assert.Equal(t, "error", ev["level"])
	assert.Equal(t, "Badness ensued!", ev["message"])
	assert.EqualValues(t, 0xDEADBEEF, ev["code"])
	assert.Equal(t, "verbose", ev["mode"])
	assert.Equal(t, []any{"a"}, ev["trace"])
	assert.Equal(t, true, ev["truncated"])
}

func TestLogReporter_Degraded(t *testing.T) {
	requireVerbose(t)
	t.Parallel()

	a := newFailingAllocator()
	a.failMessage = true
	r := throwManual(a, "lost", 5)
	defer Free(r)

	ev := logEvent(t, r)
	assert.Equal(t, PlaceholderAllocFailed, ev["message"])
	assert.Equal(t, true, ev["diagnostics_missing"])
	assert.NotContains(t, ev, "trace")
}

func TestLogReporter_Compact(t *testing.T) {
	t.Parallel()

	ev := logEvent(t, compactRef(1))
	assert.EqualValues(t, 1, ev["code"])
	assert.Equal(t, "compact", ev["mode"])
	assert.Equal(t, "flub", ev["message"])
}

func TestLogReporter_Bad(t *testing.T) {
	t.Parallel()

	ev := logEvent(t, badRef(2))
	assert.Equal(t, PlaceholderConstructionFailed, ev["message"])
	assert.Equal(t, true, ev["construction_failed"])
}

func TestCatchTo_LogReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	CatchTo(NewLogReporter(zerolog.New(&buf)), compactRef(77))
	assert.Contains(t, buf.String(), `"code":77`)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	rep, buf := textReporter()
	rep.Report(compactRef(5))
	assert.Equal(t, "5\n", buf.String())
}

func TestNewTextReporter_NilWriterUsesStderr(t *testing.T) {
	t.Parallel()

	rep := NewTextReporter(nil)
	assert.Equal(t, os.Stderr, rep.w)
	assert.NotPanics(t, func() { rep.Report(Ref{}) })
}

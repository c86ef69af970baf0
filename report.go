// report.go — where Catch and Grab send their report.
//
// Catch and Grab write to standard error through a TextReporter. CatchTo and
// GrabTo take any Reporter, e.g. a LogReporter that turns the report into a
// single structured zerolog event.
package flub

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Reporter receives exactly one report per consumed failure.
type Reporter interface {
	Report(r Ref)
}

// TextReporter writes the text report of format.go to a stream.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a reporter writing to w. A nil w means standard
// error.
func NewTextReporter(w io.Writer) *TextReporter {
	if w == nil {
		w = os.Stderr
	}
	return &TextReporter{w: w}
}

// Report writes r's report. Write errors are dropped: the failure is
// already being handled and there is nowhere better to send them.
func (t *TextReporter) Report(r Ref) {
	_ = Fprint(t.w, r)
}

var stderrReporter Reporter = NewTextReporter(os.Stderr)

// LogReporter reports each failure as one error-level zerolog event.
type LogReporter struct {
	log zerolog.Logger
}

// NewLogReporter returns a reporter logging through log.
func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs r with the flub message (or a placeholder) as the log message.
func (l *LogReporter) Report(r Ref) {
	ev := l.log.Error().
		Uint64("code", uint64(r.Code())).
		Str("mode", r.Mode().String())

	msg := "flub"
	switch {
	case r.Bad():
		msg = PlaceholderConstructionFailed
		ev = ev.Bool("construction_failed", true)
	case r.kind == kindCompact:
	default:
		m, ok := r.Message()
		if !ok {
			msg = PlaceholderAllocFailed
			ev = ev.Bool("diagnostics_missing", true)
			break
		}
		trace, _ := r.Trace()
		msg = m
		ev = ev.Strs("trace", trace)
		if r.Truncated() {
			ev = ev.Bool("truncated", true)
		}
	}
	ev.Msg(msg)
}

var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*LogReporter)(nil)
)

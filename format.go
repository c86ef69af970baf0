// format.go — the text a flub report is made of.
//
// Verbose block (records and the bad sentinel):
//
//	<blank>
//	*** FLUB ***
//	Error Code: 3735928559 (0xdeadbeef)
//	Message: Badness ensued!
//	Stack Trace:
//		-world
//		-outer
//	*****************
//	<blank>
//
// A trace line starting with '!' instead of '-' marks missing diagnostics:
// either the trace was truncated or it was never allocated.
//
// Compact: the decimal code on a line of its own.
//
// fmt verbs on Ref:
//
//	%s, %v → concise one-liner ("flub 1: message")
//	%+v    → the verbose block (compact line for compact Refs)
//	%d, %x → the code
//	%q     → quoted one-liner
package flub

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	reportHeader = "*** FLUB ***"
	reportFooter = "*****************"

	entryMarker      = '-'
	incompleteMarker = '!'
)

// Placeholders printed in place of missing diagnostics.
const (
	PlaceholderAllocFailed        = "<allocation failed>"
	PlaceholderConstructionFailed = "<flub allocation failed>"
	TruncatedMarker               = "<trace truncated>"
)

// Print writes r's report to standard error without releasing anything.
func Print(r Ref) error { return Fprint(os.Stderr, r) }

// Fprint writes r's report to w without releasing anything. A success Ref
// writes nothing.
func Fprint(w io.Writer, r Ref) error {
	if !r.Failed() {
		return nil
	}
	var b strings.Builder
	writeReport(&b, r)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeReport(b *strings.Builder, r Ref) {
	if r.kind == kindCompact {
		b.WriteString(r.code.String())
		b.WriteByte('\n')
		return
	}

	code := r.Code()
	b.WriteString("\n" + reportHeader + "\n")
	fmt.Fprintf(b, "Error Code: %s (%s)\n", code, code.Hex())

	switch {
	case r.kind == kindBad:
		b.WriteString("Message: " + PlaceholderConstructionFailed + "\n")
		b.WriteString("Stack Trace:\n")
		writeEntry(b, incompleteMarker, PlaceholderAllocFailed)
	case !r.f.diag:
		b.WriteString("Message: " + PlaceholderAllocFailed + "\n")
		b.WriteString("Stack Trace:\n")
		writeEntry(b, incompleteMarker, PlaceholderAllocFailed)
	default:
		b.WriteString("Message: " + r.f.message + "\n")
		b.WriteString("Stack Trace:\n")
		for _, site := range r.f.trace {
			writeEntry(b, entryMarker, site)
		}
		if r.f.truncated {
			writeEntry(b, incompleteMarker, TruncatedMarker)
		}
	}

	b.WriteString(reportFooter + "\n\n")
}

func writeEntry(b *strings.Builder, marker byte, text string) {
	b.WriteByte('\t')
	b.WriteByte(marker)
	b.WriteString(text)
	b.WriteByte('\n')
}

// String returns the concise one-line form of r.
func (r Ref) String() string {
	switch r.kind {
	case kindNone:
		return "ok"
	case kindCompact:
		return "flub " + r.code.String()
	case kindBad:
		return "flub " + r.code.String() + ": " + PlaceholderConstructionFailed
	}
	if msg, ok := r.Message(); ok {
		return "flub " + r.f.code.String() + ": " + msg
	}
	return "flub " + r.f.code.String() + ": " + PlaceholderAllocFailed
}

func (r Ref) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			var b strings.Builder
			if r.Failed() {
				writeReport(&b, r)
			}
			_, _ = io.WriteString(s, b.String())
			return
		}
		_, _ = io.WriteString(s, r.String())
	case 'd':
		_, _ = io.WriteString(s, r.Code().String())
	case 'x':
		_, _ = io.WriteString(s, strconv.FormatUint(uint64(r.Code()), 16))
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(r.String()))
	default:
		_, _ = io.WriteString(s, r.String())
	}
}

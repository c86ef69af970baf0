// flub.go — the flub record, the Ref handed up the call chain, and accessors.
//
// Representation:
//   - Ref is a small value type (a tagged union). It is returned by value and
//     never boxed, so a compact Ref costs no allocation.
//   - Only the record kind carries a pointer. A compact Ref holds the code and
//     nothing else, so there is no object to read through by mistake.
//   - The zero Ref means success.
//
// Ownership:
//   - Whoever holds a failed Ref owns it. Ownership moves with the return.
//   - Exactly one of Catch, Grab or Free ends it. After that the Ref is dead;
//     debug builds (flubdebug) panic on reuse, production builds do not check.
package flub

type refKind uint8

const (
	kindNone    refKind = iota // success
	kindRecord                 // verbose: points at a live *Flub
	kindCompact                // compact: the code is the whole value
	kindBad                    // the record itself could not be allocated
)

// Flub is the verbose failure record. The zero value is ready to be used as
// caller-supplied storage for Toss, with any storage duration.
//
// Fields are unexported: read a flub through the Ref that names it.
type Flub struct {
	code      Code
	message   string
	trace     []string
	diag      bool // message and trace are both present
	truncated bool // trace growth failed; entries after the last are lost
	owned     bool // built by Throw; Catch hands it back to alloc
	released  bool
	alloc     Allocator
	tracer    Tracer
}

// Code returns the code last stored in f. It is meant for owners of Toss
// storage and stays readable after Grab.
func (f *Flub) Code() Code { return f.code }

// Message returns f's message, if it still holds one.
func (f *Flub) Message() (string, bool) { return f.message, f.diag }

// Ref is what a failing function returns. Check it with Failed, annotate it
// with Append, and end it with Catch or Grab.
type Ref struct {
	f    *Flub
	code Code
	kind refKind
}

func recordRef(f *Flub) Ref { return Ref{f: f, kind: kindRecord} }

// compactRef stores the code in the Ref itself. Code 0 collapses to success,
// which is why throwing with 0 is flagged in debug builds.
func compactRef(code Code) Ref {
	if code == CodeOK {
		return Ref{}
	}
	return Ref{code: code, kind: kindCompact}
}

// badRef is the sentinel for a record that could not be allocated. The code
// is kept so the report can still say what failed.
func badRef(code Code) Ref { return Ref{code: code, kind: kindBad} }

// Failed reports whether r carries a failure.
func (r Ref) Failed() bool { return r.kind != kindNone }

// Bad reports whether r is the construction-failed sentinel.
func (r Ref) Bad() bool { return r.kind == kindBad }

// Mode reports the representation r was built with.
func (r Ref) Mode() Mode {
	switch r.kind {
	case kindRecord, kindBad:
		return ModeVerbose
	case kindCompact:
		return ModeCompact
	default:
		return CurrentMode()
	}
}

// Code returns the failure code, or CodeOK for success.
func (r Ref) Code() Code {
	switch r.kind {
	case kindRecord:
		assertLive(r.f)
		return r.f.code
	case kindCompact, kindBad:
		return r.code
	default:
		return CodeOK
	}
}

// Yoink extracts the raw code from r.
func Yoink(r Ref) Code { return r.Code() }

// Message returns the flub message. ok is false when no message exists:
// compact Refs, the bad sentinel, and records whose diagnostics could not be
// allocated.
func (r Ref) Message() (msg string, ok bool) {
	if r.kind != kindRecord {
		return "", false
	}
	assertLive(r.f)
	if !r.f.diag {
		return "", false
	}
	return r.f.message, true
}

// Trace returns a copy of the call-site trace, outermost caller last. ok is
// false exactly when Message reports no message.
func (r Ref) Trace() (trace []string, ok bool) {
	if r.kind != kindRecord {
		return nil, false
	}
	assertLive(r.f)
	if !r.f.diag {
		return nil, false
	}
	out := make([]string, len(r.f.trace))
	copy(out, r.f.trace)
	return out, true
}

// Truncated reports whether the trace lost entries to a failed growth step.
func (r Ref) Truncated() bool {
	if r.kind != kindRecord {
		return false
	}
	assertLive(r.f)
	return r.f.truncated
}

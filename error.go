// error.go — bridging a flub into Go's error interface.
//
// A Ref is not an error: converting it would box the value and cost the
// allocation compact builds exist to avoid. Err takes an explicit snapshot
// instead. The snapshot owns copies of the diagnostics, so it stays valid after
// the flub is caught.
//
// Interop:
//   - errors.Is matches two snapshots with the same code.
//   - CodeOf and HasCode (predicates.go) find a snapshot anywhere in a
//     %w / errors.Join chain.
package flub

import "strings"

// Error is an immutable snapshot of a failed Ref.
type Error struct {
	Code      Code
	Message   string // empty when the flub had no diagnostics
	Trace     []string
	Truncated bool
	Mode      Mode
	Bad       bool // the flub record could not be allocated
}

// Err returns a snapshot of r as an error, or nil if r is success.
func (r Ref) Err() error {
	if !r.Failed() {
		return nil
	}
	e := &Error{
		Code:      r.Code(),
		Truncated: r.Truncated(),
		Mode:      r.Mode(),
		Bad:       r.Bad(),
	}
	e.Message, _ = r.Message()
	e.Trace, _ = r.Trace()
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("flub ")
	b.WriteString(e.Code.String())
	switch {
	case e.Bad:
		b.WriteString(": " + PlaceholderConstructionFailed)
	case e.Message != "":
		b.WriteString(": " + e.Message)
	}
	if len(e.Trace) > 0 || e.Truncated {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Trace, " <- "))
		if e.Truncated {
			if len(e.Trace) > 0 {
				b.WriteString(" <- ")
			}
			b.WriteString(TruncatedMarker)
		}
		b.WriteString("]")
	}
	return b.String()
}

// Is reports whether target is a flub snapshot with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

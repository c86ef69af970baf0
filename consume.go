// consume.go — the terminal end of a flub's life.
//
//   - Grab:   report, then release the diagnostics. The record survives, which
//             is what caller-owned storage (Toss) wants.
//   - Catch:  Grab, then hand a thrown record back to its allocator.
//   - Free:   Catch without the report.
//   - Handle: Catch from a defer, so a flub is never left unconsumed.
//
// All of them return the zero Ref so callers can clear their variable in the
// same statement:
//
//	r = flub.Catch(r)
//
// Consuming the same flub twice is a contract violation. Debug builds panic on
// it; production builds do not look.
package flub

// Catch reports r to standard error and releases it completely.
func Catch(r Ref) Ref { return CatchTo(stderrReporter, r) }

// CatchTo is Catch with an explicit reporter. A nil rep reports to standard
// error.
func CatchTo(rep Reporter, r Ref) Ref {
	if !r.Failed() {
		return Ref{}
	}
	orStderr(rep).Report(r)
	release(r, true)
	return Ref{}
}

// Grab reports r to standard error and releases its diagnostics but not the
// record itself.
func Grab(r Ref) Ref { return GrabTo(stderrReporter, r) }

// GrabTo is Grab with an explicit reporter. A nil rep reports to standard
// error.
func GrabTo(rep Reporter, r Ref) Ref {
	if !r.Failed() {
		return Ref{}
	}
	orStderr(rep).Report(r)
	release(r, false)
	return Ref{}
}

// Free releases r without reporting it.
func Free(r Ref) Ref {
	release(r, true)
	return Ref{}
}

// Handle catches *r if it failed and clears it. It is meant to be deferred
// right after the Ref is declared:
//
//	var r flub.Ref
//	defer flub.Handle(&r)
func Handle(r *Ref) { HandleTo(stderrReporter, r) }

// HandleTo is Handle with an explicit reporter.
func HandleTo(rep Reporter, r *Ref) {
	if r == nil || !r.Failed() {
		return
	}
	*r = CatchTo(rep, *r)
}

func orStderr(rep Reporter) Reporter {
	if rep == nil {
		return stderrReporter
	}
	return rep
}

// release drops r's diagnostics and, when storage is set and the record came
// from an allocator's New, returns the record as well. Compact Refs and the
// bad sentinel own nothing.
func release(r Ref, storage bool) {
	if r.kind != kindRecord {
		return
	}
	f := r.f
	assertLive(f)

	if storage && f.owned {
		f.alloc.Release(f)
		return
	}
	f.message = ""
	f.trace = nil
	f.diag = false
	f.truncated = false
	f.released = true
}

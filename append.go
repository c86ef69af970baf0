// append.go — annotating an in-flight flub on its way up the call chain.
//
// Append is the only operation that mutates a live flub, and it only ever
// adds to the end of the trace. It never fails: a growth step that cannot be
// allocated marks the trace truncated and the flub is returned unchanged
// otherwise.
//
// Append is the identity for:
//   - success, compact Refs and the bad sentinel (nothing to extend)
//   - records without diagnostics
//   - records built with the backtrace tracer
package flub

// Append records site at the end of r's trace and returns r.
//
//	func bar() flub.Ref {
//		if r := foo(); r.Failed() {
//			return flub.Append(r, "bar()")
//		}
//		return flub.Ref{}
//	}
func Append(r Ref, site string) Ref {
	if CompactBuild || r.kind != kindRecord {
		return r
	}
	assertLive(r.f)
	r.f.tracer.extend(r.f, site)
	return r
}

// Append is the method form of Append, for chaining.
func (r Ref) Append(site string) Ref { return Append(r, site) }

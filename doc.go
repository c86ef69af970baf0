// doc.go — package documentation for flub
//
// Package flub passes failures up a call chain as explicit values. A function
// that can fail returns a Ref; callers check it, optionally annotate it with
// their own name, and a terminal handler reports and releases it:
//
//	func foo() flub.Ref {
//		return flub.Throw("An error occurred!", 1)
//	}
//
//	func bar() flub.Ref {
//		if r := foo(); r.Failed() {
//			return r.Append("bar()")
//		}
//		return flub.Ref{}
//	}
//
//	func main() {
//		if r := bar(); r.Failed() {
//			flub.Catch(r)
//		}
//	}
//
// # Representations
//
// A build is either verbose or compact, chosen with the flubcompact build tag.
// There is no runtime switch.
//
//	+----------+-----------------------------+-------------------------------+
//	| Mode     | What a failed Ref holds     | Cost                          |
//	+----------+-----------------------------+-------------------------------+
//	| verbose  | pointer to a pooled record  | one record, message copy,     |
//	|          | (code, message, trace)      | trace growth on Append        |
//	| compact  | the code itself             | nothing; Ref is a plain value |
//	+----------+-----------------------------+-------------------------------+
//
// In compact builds Message and Trace report nothing, Append is the identity
// and reports print only the code. Code 0 means success in both modes; a
// compact flub thrown with 0 is success, which is why flubdebug builds warn
// about it.
//
// # Lifecycle
//
//   - Throw builds a record from an Allocator; Toss initializes storage the
//     caller already has (a package-level var, a struct field).
//   - Append adds the caller's name to the end of the trace.
//   - Catch reports and releases everything; Grab reports and releases the
//     diagnostics but leaves caller storage alone; Free releases silently.
//   - defer flub.Handle(&r) catches whatever is left in r at scope exit.
//
// Each flub is consumed exactly once. A Ref used after it was consumed is
// undefined; flubdebug builds panic.
//
// # Allocation failures
//
// Allocation is routed through an Allocator so that running out is a
// represented state, not a crash:
//
//   - No record: Throw returns the bad sentinel (Ref.Bad). Catch prints a
//     construction-failed report for it.
//   - No message or no trace: the record keeps its code and has neither.
//   - Trace growth fails: the trace is marked truncated and the report ends
//     with a '!' line.
//
// BoundedAllocator puts limits on message length and trace depth.
//
// # Traces
//
// By default the trace is built by hand with Append. The flubbacktrace build
// tag switches Throw to capture the call stack once (up to BacktraceDepth
// frames) and makes Append a no-op. ThrowTraced selects either strategy
// explicitly.
//
// # Reports and interop
//
// Catch and Grab write a fixed text block to standard error; CatchTo and
// GrabTo accept a Reporter, e.g. NewLogReporter for zerolog. Ref implements
// fmt.Formatter (%v one line, %+v full block). Ref.Err converts to an error
// snapshot that works with errors.Is, CodeOf and HasCode.
package flub

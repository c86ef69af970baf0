// construct.go — building flubs at the point of failure.
//
// Scope:
//   - Throw:  new record from an allocator (verbose) or the code itself (compact).
//   - Toss:   initialize caller-supplied storage in place (verbose) or fall back
//             to Throw (compact; the storage is ignored).
//   - *With / *Traced variants take an explicit allocator and tracer.
//
// Diagnostics are all-or-nothing: the message is copied first and the trace is
// only seeded if that worked. If either step fails the record keeps its code
// and reports no message and no trace. If the record itself cannot be had the
// result is the bad sentinel.
package flub

// Throw returns a new failure with message and code.
func Throw(message string, code Code) Ref {
	return throw(defaultAllocator, defaultTracer, message, code, 1)
}

// ThrowWith is Throw with an explicit allocator. Compact builds ignore a.
func ThrowWith(a Allocator, message string, code Code) Ref {
	return throw(a, defaultTracer, message, code, 1)
}

// ThrowTraced is Throw with an explicit allocator and trace strategy.
func ThrowTraced(a Allocator, t Tracer, message string, code Code) Ref {
	return throw(a, t, message, code, 1)
}

// Toss initializes target with message and code and returns a Ref to it.
// target may live anywhere, including package scope; Grab releases its
// diagnostics and leaves it reusable. A nil target yields the bad sentinel.
func Toss(target *Flub, message string, code Code) Ref {
	return toss(defaultAllocator, defaultTracer, target, message, code, 1)
}

// TossTraced is Toss with an explicit allocator and trace strategy.
func TossTraced(a Allocator, t Tracer, target *Flub, message string, code Code) Ref {
	return toss(a, t, target, message, code, 1)
}

func throw(a Allocator, t Tracer, message string, code Code, skip int) Ref {
	if debugChecks {
		warnZeroCode(debugLog, code)
	}
	if CompactBuild {
		return compactRef(code)
	}
	a, t = orDefaults(a, t)

	f := a.New()
	if f == nil {
		return badRef(code)
	}
	initRecord(a, t, f, message, code, skip+1)
	f.owned = true
	return recordRef(f)
}

func toss(a Allocator, t Tracer, target *Flub, message string, code Code, skip int) Ref {
	if debugChecks {
		warnZeroCode(debugLog, code)
	}
	if CompactBuild {
		return compactRef(code)
	}
	if target == nil {
		return badRef(code)
	}
	a, t = orDefaults(a, t)

	initRecord(a, t, target, message, code, skip+1)
	return recordRef(target)
}

func orDefaults(a Allocator, t Tracer) (Allocator, Tracer) {
	if a == nil {
		a = defaultAllocator
	}
	if t == nil {
		t = defaultTracer
	}
	return a, t
}

// initRecord resets f and fills in its code and, if both can be allocated,
// its message and trace.
func initRecord(a Allocator, t Tracer, f *Flub, message string, code Code, skip int) {
	*f = Flub{code: code, alloc: a, tracer: t}

	msg, ok := a.Message(message)
	if !ok {
		return
	}
	if !t.seed(a, f, skip+1) {
		f.trace = nil
		return
	}
	f.message = msg
	f.diag = true
}

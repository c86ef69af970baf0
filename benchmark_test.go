package flub

import "testing"

func BenchmarkThrowCatch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := Throw("boom", 1)
		CatchTo(discardReporter{}, r)
	}
}

func BenchmarkAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := ThrowTraced(nil, NewManualTracer(), "boom", 1)
		r = r.Append("a").Append("b").Append("c")
		Free(r)
	}
}

func BenchmarkBacktrace(b *testing.B) {
	t := NewBacktraceTracer(nil, 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Free(ThrowTraced(nil, t, "boom", 1))
	}
}

func BenchmarkCompact(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		codeSink = Yoink(compactRef(Code(i) + 1))
	}
}

func BenchmarkTossGrab(b *testing.B) {
	var f Flub
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := Toss(&f, "boom", 1)
		GrabTo(discardReporter{}, r)
	}
}

func BenchmarkFprint(b *testing.B) {
	r := ThrowTraced(nil, NewManualTracer(), "boom", 0xDEADBEEF).Append("a").Append("b")
	defer Free(r)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Fprint(discardWriter{}, r)
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

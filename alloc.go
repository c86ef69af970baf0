// alloc.go — where flub records and their diagnostics come from.
//
// Every allocation a verbose flub makes goes through an Allocator: the record,
// the owned copy of the message, the initial trace and each trace growth step.
// A step that reports failure is represented, never fatal:
//   - New fails      → Throw returns the bad sentinel.
//   - Message/Trace  → the record keeps its code and drops both diagnostics.
//   - Grow fails     → the trace is marked truncated.
//
// The default allocator pools records: Catch hands a thrown record back and
// the next Throw reuses it.
package flub

import (
	"strings"
	"sync"
)

// initialTraceCap is the capacity of a freshly seeded manual trace.
const initialTraceCap = 4

// Allocator supplies the storage of verbose flubs. A false ok (or a nil
// record from New) means the allocation failed.
type Allocator interface {
	// New returns a zeroed record, or nil.
	New() *Flub
	// Message returns an owned copy of msg.
	Message(msg string) (owned string, ok bool)
	// Trace returns an empty trace ready to be grown.
	Trace() (trace []string, ok bool)
	// Grow returns trace extended by site. On failure trace is left intact.
	Grow(trace []string, site string) (grown []string, ok bool)
	// Release takes back a record built by New.
	Release(f *Flub)
}

type heapAllocator struct {
	pool sync.Pool
}

func newHeapAllocator() *heapAllocator {
	return &heapAllocator{
		pool: sync.Pool{New: func() any { return new(Flub) }},
	}
}

var defaultAllocator = newHeapAllocator()

// DefaultAllocator returns the pooled heap allocator used by Throw and Toss.
func DefaultAllocator() Allocator { return defaultAllocator }

func (h *heapAllocator) New() *Flub {
	f, _ := h.pool.Get().(*Flub)
	if f == nil {
		return nil
	}
	*f = Flub{}
	return f
}

func (h *heapAllocator) Message(msg string) (string, bool) {
	return strings.Clone(msg), true
}

func (h *heapAllocator) Trace() ([]string, bool) {
	return make([]string, 0, initialTraceCap), true
}

func (h *heapAllocator) Grow(trace []string, site string) ([]string, bool) {
	return append(trace, site), true
}

func (h *heapAllocator) Release(f *Flub) {
	*f = Flub{released: true}
	// Debug builds keep released records out of the pool so reuse of a dead
	// Ref still trips assertLive.
	if !debugChecks {
		h.pool.Put(f)
	}
}

// BoundedAllocator caps message length and trace depth on top of the default
// allocator. A zero limit means unbounded. Exceeding MaxMessage degrades the
// flub to code-only; exceeding MaxTrace truncates the trace.
type BoundedAllocator struct {
	MaxMessage int
	MaxTrace   int
}

func (b BoundedAllocator) New() *Flub { return defaultAllocator.New() }

func (b BoundedAllocator) Message(msg string) (string, bool) {
	if b.MaxMessage > 0 && len(msg) > b.MaxMessage {
		return "", false
	}
	return defaultAllocator.Message(msg)
}

func (b BoundedAllocator) Trace() ([]string, bool) { return defaultAllocator.Trace() }

func (b BoundedAllocator) Grow(trace []string, site string) ([]string, bool) {
	if b.MaxTrace > 0 && len(trace) >= b.MaxTrace {
		return trace, false
	}
	return defaultAllocator.Grow(trace, site)
}

func (b BoundedAllocator) Release(f *Flub) { defaultAllocator.Release(f) }

var (
	_ Allocator = (*heapAllocator)(nil)
	_ Allocator = BoundedAllocator{}
)

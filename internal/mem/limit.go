package mem

import "fmt"

// LimitAllocator wraps another Allocator with a cumulative byte budget.
// Once the budget would be exceeded the allocation fails and the wrapped
// allocator is not called, so callers can exercise recovery paths
// deterministically. Accounting is cumulative: blocks handed back to the
// garbage collector are not credited.
//
// Not safe for concurrent use.
type LimitAllocator struct {
	inner Allocator
	limit int
	used  int
}

// NewLimitAllocator returns a LimitAllocator with the given byte budget,
// backed by GoAllocator.
func NewLimitAllocator(limit int) *LimitAllocator {
	return &LimitAllocator{inner: GoAllocator{}, limit: limit}
}

// Allocate charges size bytes against the budget, then delegates.
func (a *LimitAllocator) Allocate(size, align int) ([]byte, error) {
	if size > a.limit-a.used {
		return nil, fmt.Errorf("mem: allocate %d bytes: budget of %d exhausted (%d used): %w",
			size, a.limit, a.used, ErrAllocFailed)
	}
	b, err := a.inner.Allocate(size, align)
	if err == nil {
		a.used += size
	}
	return b, err
}

// Allocated returns the number of bytes charged so far.
func (a *LimitAllocator) Allocated() int {
	return a.used
}

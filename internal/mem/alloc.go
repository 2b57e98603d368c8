// Package mem provides aligned heap allocation for buffer storage.
//
// Go's make does not guarantee the base address of a byte slice; small
// slices in particular are frequently misaligned. Allocators here
// over-allocate and offset to the next aligned boundary, then reslice
// with an explicit capacity so callers observe exactly the size they
// asked for.
package mem

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrAllocFailed is the sentinel wrapped by every allocation failure.
var ErrAllocFailed = errors.New("mem: allocation failed")

const maxInt = int(^uint(0) >> 1)

// Allocator produces aligned byte blocks.
//
// Allocate returns a slice of length and capacity size whose base
// address is a multiple of align, or nil with no allocation when size
// is 0. There is no Free: blocks are reclaimed by the garbage
// collector once the last reference is dropped.
type Allocator interface {
	Allocate(size, align int) ([]byte, error)
}

// GoAllocator allocates aligned blocks from the Go heap. It is the
// default allocator and is safe for concurrent use.
type GoAllocator struct{}

// Allocate returns a size-byte block aligned to align bytes.
// align must be a power of two; violating that is a caller bug and panics.
func (GoAllocator) Allocate(size, align int) ([]byte, error) {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("mem: alignment %d is not a power of two", align))
	}
	if size < 0 || size > maxInt-align {
		return nil, fmt.Errorf("mem: allocate %d bytes: %w", size, ErrAllocFailed)
	}
	if size == 0 {
		return nil, nil
	}

	raw := make([]byte, size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % uintptr(align)); rem != 0 {
		off = align - rem
	}
	return raw[off : off+size : off+size], nil
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr uintptr, align int) bool {
	return align > 0 && addr%uintptr(align) == 0
}

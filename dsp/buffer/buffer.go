package buffer

import (
	"bytes"
	"fmt"

	"github.com/luwangg/ODR-DabMod/internal/mem"
)

// Alignment is the base-address alignment, in bytes, of every block a
// Buffer allocates. 32 bytes satisfies AVX/AVX2 aligned loads.
const Alignment = 32

const maxInt = int(^uint(0) >> 1)

// Buffer owns one contiguous, exclusively held byte block with a
// logical length that can be smaller than the allocated capacity.
// The zero value (and New) is an empty buffer with no storage.
//
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	data  []byte // aligned block; len(data) is the capacity
	n     int    // logical length, 0 <= n <= len(data)
	alloc mem.Allocator
}

// New returns an empty buffer. No allocation happens until data is added.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// FromBytes returns a buffer holding a copy of p.
// A nil or empty p yields an empty buffer with no allocation.
func FromBytes(p []byte, opts ...Option) (*Buffer, error) {
	b := New(opts...)
	if err := b.AppendBytes(p); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the allocated capacity in bytes. Capacity never shrinks
// for the lifetime of the buffer.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the logical contents as a borrowed view. The view is
// invalidated by any subsequent mutating call; callers must not retain
// it across mutations and must not grow it.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.n]
}

// SetLength sets the logical length to n, clamping negative n to 0.
//
// Within the current capacity only the length changes; bytes beyond a
// shrunken length stay allocated and their values are unspecified once
// the length grows back over them. Beyond the current capacity a new
// aligned block of exactly n bytes is allocated, the old contents are
// copied, and the old block is dropped. On allocation failure the
// buffer keeps its previous block, length, and capacity.
func (b *Buffer) SetLength(n int) error {
	if n < 0 {
		n = 0
	}
	if n <= len(b.data) {
		b.n = n
		return nil
	}
	grown, err := b.allocator().Allocate(n, Alignment)
	if err != nil {
		return fmt.Errorf("buffer: grow to %d bytes: %w", n, err)
	}
	copy(grown, b.data[:b.n])
	b.data = grown
	b.n = n
	return nil
}

// SetBytes replaces the logical contents with a copy of p, reusing the
// existing capacity when it suffices. If a required grow fails the
// buffer is left valid but empty, with its capacity intact.
func (b *Buffer) SetBytes(p []byte) error {
	b.n = 0
	return b.AppendBytes(p)
}

// AppendBytes appends a copy of p after the current contents, growing
// the buffer by len(p). Appending an empty slice never allocates and
// changes nothing. On failure the existing contents are untouched.
func (b *Buffer) AppendBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if b.n > maxInt-len(p) {
		return fmt.Errorf("buffer: append %d bytes to %d: %w", len(p), b.n, mem.ErrAllocFailed)
	}
	off := b.n
	if err := b.SetLength(off + len(p)); err != nil {
		return err
	}
	copy(b.data[off:b.n], p)
	return nil
}

// Append appends a copy of other's contents. A nil or empty other is a
// no-op. Appending a buffer to itself is allowed.
func (b *Buffer) Append(other *Buffer) error {
	if other == nil {
		return nil
	}
	return b.AppendBytes(other.Bytes())
}

// CopyFrom replaces the contents with a deep copy of other's, reusing
// capacity when sufficient. The two buffers never share storage.
// A nil other empties the buffer; copying from itself is a no-op.
func (b *Buffer) CopyFrom(other *Buffer) error {
	if other == b {
		return nil
	}
	if other == nil {
		return b.SetBytes(nil)
	}
	return b.SetBytes(other.Bytes())
}

// Clone returns a new buffer holding a deep copy of the contents, with
// capacity equal to the logical length and the same allocator.
func (b *Buffer) Clone() (*Buffer, error) {
	c := &Buffer{alloc: b.alloc}
	if err := c.AppendBytes(b.Bytes()); err != nil {
		return nil, err
	}
	return c, nil
}

// Equal reports whether the logical contents match by value.
// A nil other compares equal to an empty buffer.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return b.n == 0
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Zero sets the logical contents to 0.
func (b *Buffer) Zero() {
	for i := range b.data[:b.n] {
		b.data[i] = 0
	}
}

func (b *Buffer) allocator() mem.Allocator {
	if b.alloc == nil {
		return mem.GoAllocator{}
	}
	return b.alloc
}

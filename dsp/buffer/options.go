package buffer

import "github.com/luwangg/ODR-DabMod/internal/mem"

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithAllocator sets the allocator used for every growth of this
// buffer. A nil allocator is ignored and the default Go heap allocator
// stays in effect.
func WithAllocator(a mem.Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}

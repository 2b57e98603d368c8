package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure in
// processing loops. Pooled buffers keep their capacity between uses, so
// a steady-state pipeline stops allocating once its largest block size
// has been seen.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool whose buffers are constructed with the given
// options.
func NewPool(opts ...Option) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return New(opts...)
			},
		},
	}
}

// Get returns a buffer with the requested logical length, zeroed.
// Callers must return it via Put when done. If growing a pooled buffer
// fails, the buffer goes back to the pool unchanged and the error is
// returned.
func (p *Pool) Get(length int) (*Buffer, error) {
	b := p.pool.Get().(*Buffer)
	if err := b.SetLength(length); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	b.Zero()
	return b, nil
}

// Put returns a buffer to the pool for reuse.
// The caller must not use the buffer after calling Put. Nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

package buffer

import "unsafe"

// Sample views reinterpret the aligned block for in-place processing by
// numeric stages. Each view covers the prefix of whole elements that
// fit in the logical length; trailing bytes of a partial element are
// not included. Like Bytes, a view is invalidated by any subsequent
// mutating call.
//
// The 32-byte base alignment guarantees every view is aligned for the
// element type, including full-width AVX vector loads over it.

// Float32s returns the contents viewed as float32 samples.
func (b *Buffer) Float32s() []float32 {
	n := b.n / 4
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), n)
}

// Float64s returns the contents viewed as float64 samples.
func (b *Buffer) Float64s() []float64 {
	n := b.n / 8
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), n)
}

// Complex64s returns the contents viewed as complex64 samples, the
// native I/Q format of the modulation pipeline.
func (b *Buffer) Complex64s() []complex64 {
	n := b.n / 8
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*complex64)(unsafe.Pointer(&b.data[0])), n)
}

// Complex128s returns the contents viewed as complex128 samples.
func (b *Buffer) Complex128s() []complex128 {
	n := b.n / 16
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*complex128)(unsafe.Pointer(&b.data[0])), n)
}

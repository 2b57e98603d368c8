package buffer

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/luwangg/ODR-DabMod/internal/mem"
)

func TestViewLengths(t *testing.T) {
	b := New()
	if err := b.SetLength(20); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	if got := len(b.Float32s()); got != 5 {
		t.Fatalf("Float32s len = %d, want 5", got)
	}
	if got := len(b.Float64s()); got != 2 {
		t.Fatalf("Float64s len = %d, want 2", got)
	}
	if got := len(b.Complex64s()); got != 2 {
		t.Fatalf("Complex64s len = %d, want 2", got)
	}
	if got := len(b.Complex128s()); got != 1 {
		t.Fatalf("Complex128s len = %d, want 1", got)
	}
}

func TestViewsEmptyAreNil(t *testing.T) {
	b := New()
	if b.Float32s() != nil || b.Float64s() != nil || b.Complex64s() != nil || b.Complex128s() != nil {
		t.Fatal("views over an empty buffer should be nil")
	}
	// A partial element is not exposed either.
	if err := b.SetLength(7); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	if b.Float64s() != nil {
		t.Fatal("Float64s over 7 bytes should be nil")
	}
}

func TestFloat64ViewInPlace(t *testing.T) {
	b := New()
	if err := b.SetLength(32); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	v := b.Float64s()
	v[0] = 3.5
	v[3] = -1.25

	if got := b.Float64s()[0]; got != 3.5 {
		t.Fatalf("view readback = %v, want 3.5", got)
	}
	// The same bits must be visible through the byte view.
	bits := binary.NativeEndian.Uint64(b.Bytes()[:8])
	if math.Float64frombits(bits) != 3.5 {
		t.Fatalf("byte view disagrees with sample view: %v", math.Float64frombits(bits))
	}
}

func TestComplex64ViewInPlace(t *testing.T) {
	b := New()
	if err := b.SetLength(64); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	iq := b.Complex64s()
	for i := range iq {
		iq[i] = complex(float32(i), -float32(i))
	}
	got := b.Complex64s()
	for i := range got {
		if got[i] != complex(float32(i), -float32(i)) {
			t.Fatalf("sample %d = %v", i, got[i])
		}
	}
}

func TestViewBaseAligned(t *testing.T) {
	b := New()
	if err := b.SetLength(256); err != nil {
		t.Fatalf("SetLength failed: %v", err)
	}
	v := b.Float64s()
	if !mem.IsAligned(uintptr(unsafe.Pointer(&v[0])), Alignment) {
		t.Fatalf("Float64s base %p not %d-byte aligned", &v[0], Alignment)
	}
	c := b.Complex128s()
	if !mem.IsAligned(uintptr(unsafe.Pointer(&c[0])), Alignment) {
		t.Fatalf("Complex128s base %p not %d-byte aligned", &c[0], Alignment)
	}
}

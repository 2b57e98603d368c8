package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	if DetectFeatures() != DetectFeatures() {
		t.Fatal("DetectFeatures should return a stable cached value")
	}
}

func TestVectorWidth(t *testing.T) {
	cases := []struct {
		name string
		f    Features
		want int
	}{
		{"none", Features{}, 8},
		{"sse2", Features{HasSSE2: true}, 16},
		{"neon", Features{HasNEON: true}, 16},
		{"avx", Features{HasSSE2: true, HasAVX: true}, 32},
		{"avx2", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, 32},
		{"avx512", Features{HasSSE2: true, HasAVX2: true, HasAVX512: true}, 64},
	}
	for _, tc := range cases {
		if got := VectorWidth(tc.f); got != tc.want {
			t.Fatalf("VectorWidth(%s) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestVectorWidthPowerOfTwo(t *testing.T) {
	w := VectorWidth(DetectFeatures())
	if w <= 0 || w&(w-1) != 0 {
		t.Fatalf("VectorWidth = %d, want a positive power of two", w)
	}
}

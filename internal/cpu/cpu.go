// Package cpu detects the SIMD capabilities of the running processor.
//
// The buffer layer guarantees a fixed base-address alignment so that
// vectorized consumers can issue aligned loads; this package reports
// which vector extensions are actually present and how wide their
// registers are, so tooling and tests can check the alignment constant
// against real hardware.
//
// Detection runs once, on first use, and is cached.
package cpu

import "sync"

// Features describes the SIMD extensions available on this processor.
type Features struct {
	// x86-64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// arm64
	HasNEON bool

	Architecture string // runtime.GOARCH
}

var (
	detected   Features
	detectOnce sync.Once
)

// DetectFeatures returns the cached CPU features. Safe for concurrent use.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// VectorWidth returns the widest vector register width, in bytes, that
// the given features support. Without any SIMD extension it returns 8,
// the scalar word size.
func VectorWidth(f Features) int {
	switch {
	case f.HasAVX512:
		return 64
	case f.HasAVX2, f.HasAVX:
		return 32
	case f.HasSSE2, f.HasNEON:
		return 16
	default:
		return 8
	}
}

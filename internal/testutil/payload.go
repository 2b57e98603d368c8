// Package testutil provides deterministic byte payloads for buffer tests.
package testutil

import "math/rand"

// Pattern returns n bytes with a position-derived repeating pattern, so
// copy and append bugs show up as recognizable value mismatches.
func Pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 1)
	}
	return out
}

// Noise returns n pseudo-random bytes from a fixed seed for reproducibility.
func Noise(seed int64, n int) []byte {
	out := make([]byte, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

// Repeat returns n copies of the byte v.
func Repeat(v byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = v
	}
	return out
}

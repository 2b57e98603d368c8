// Package buffer provides the aligned byte buffer that carries binary
// payloads between processing stages. Every allocated block starts on a
// 32-byte boundary so vectorized consumers (AVX loads, FFT kernels) can
// process it in place, and every copy is a deep copy: no two buffers
// ever share a block.
//
// Growth is exact-fit rather than geometric. Stages size their output
// once per processing block, so the buffer trades potential repeated
// reallocation under incremental appends for a tight peak-memory bound;
// callers that size buffers precisely can rely on Cap matching their
// request. Shrinking the length never releases or reallocates capacity.
package buffer

// Package fft implements the 1D and 2D discrete Fourier transforms used by
// the stencil pipeline: an in-place radix-2 path for power-of-two lengths and
// a Bluestein chirp-convolution path for everything else.
//
// Both directions follow the unnormalized convention: the inverse transform
// is not divided by the length. Normalization is the caller's policy.
package fft

import (
	"errors"
	"math"
)

// Direction selects between the forward and inverse transform.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

// sign returns the twiddle exponent sign for the direction:
// -1 for Forward (exp(-2πik/n)), +1 for Inverse.
func (d Direction) sign() float64 {
	if d == Inverse {
		return 1.0
	}
	return -1.0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when Radix2 is given a length that is not
	// a power of two. Arbitrary lengths must go through Bluestein.
	ErrInvalidLength = errors.New("tealeaf: invalid transform length")

	// ErrDimensionMismatch is returned when a field's element count does not
	// match the expected square side length.
	ErrDimensionMismatch = errors.New("tealeaf: field dimension mismatch")

	// ErrNilField is returned when a nil buffer is passed to a transform.
	ErrNilField = errors.New("tealeaf: nil field")
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	m := 1
	for m < n {
		m <<= 1
	}

	return m
}

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of
// unity) for a size-n transform: W^k = exp(sign·2πik/n) for k = 0..n-1,
// where sign is -1 for Forward and +1 for Inverse.
func ComputeTwiddleFactors(n int, dir Direction) []complex128 {
	if n <= 0 {
		return nil
	}

	twiddle := make([]complex128, n)
	for k := 0; k < n; k++ {
		angle := dir.sign() * 2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 transform.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = reverseBits(i, bits)
	}

	return bitrev
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// Radix2 computes the in-place DFT of data using the iterative decimation-in-
// time algorithm: bit-reversal permutation followed by the butterfly network.
// The length must be a power of two; lengths 0 and 1 are trivial no-ops.
//
// The inverse direction is unnormalized: callers wanting the conventional
// inverse must divide by len(data) themselves. Bluestein relies on this when
// it normalizes its convolution by the padded length instead.
func Radix2(data []complex128, dir Direction) error {
	n := len(data)
	if n <= 1 {
		return nil
	}

	if !IsPowerOfTwo(n) {
		return ErrInvalidLength
	}

	bitrev := ComputeBitReversalIndices(n)
	for i, j := range bitrev {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}

	twiddle := ComputeTwiddleFactors(n, dir)

	// Stages of widening butterflies. A stage of width 'length' uses every
	// (n/length)-th entry of the full twiddle table, so the summation order
	// is identical on every run regardless of stage width.
	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		stride := n / length

		for start := 0; start < n; start += length {
			for j := 0; j < half; j++ {
				w := twiddle[j*stride]
				u := data[start+j]
				v := data[start+j+half] * w
				data[start+j] = u + v
				data[start+j+half] = u - v
			}
		}
	}

	return nil
}

package fft

import "math"

// ComputeChirpSequence returns the quadratic-phase chirp for a size-n
// Bluestein transform: a[k] = exp(sign·iπk²/n) for k = 0..n-1.
//
// The exponent k² is reduced modulo 2n before the trig evaluation; πk²/n is
// periodic in k² with period 2n, and the reduction keeps the argument small
// enough that cos/sin stay accurate for large k.
func ComputeChirpSequence(n int, dir Direction) []complex128 {
	if n <= 0 {
		return nil
	}

	chirp := make([]complex128, n)
	for k := 0; k < n; k++ {
		k2 := (k * k) % (2 * n)
		angle := dir.sign() * math.Pi * float64(k2) / float64(n)
		chirp[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return chirp
}

// Bluestein computes the in-place DFT of data for arbitrary length n >= 1 by
// re-expressing it as a circular convolution of padded power-of-two length
// M = NextPowerOfTwo(2n-1), evaluated with three Radix2 passes.
//
// Power-of-two lengths short-circuit to Radix2 directly; both paths agree
// within floating-point tolerance. Like Radix2, the inverse direction is
// unnormalized.
func Bluestein(data []complex128, dir Direction) error {
	n := len(data)
	if n <= 1 {
		return nil
	}

	if IsPowerOfTwo(n) {
		return Radix2(data, dir)
	}

	m := NextPowerOfTwo(2*n - 1)
	chirp := ComputeChirpSequence(n, dir)

	// Chirp-premodulated input, zero-padded to the convolution length.
	a := make([]complex128, m)
	for k := 0; k < n; k++ {
		a[k] = data[k] * chirp[k]
	}

	// Chirp filter with symmetric circular placement: b[k] = b[m-k] is the
	// conjugate chirp, so the linear correlation becomes circular.
	b := make([]complex128, m)
	b[0] = 1
	for k := 1; k < n; k++ {
		w := complex(real(chirp[k]), -imag(chirp[k]))
		b[k] = w
		b[m-k] = w
	}

	// Convolution theorem: multiply spectra, then invert. Radix2's inverse
	// is unnormalized, so the true convolution needs an explicit division
	// by m (not n).
	if err := Radix2(a, Forward); err != nil {
		return err
	}
	if err := Radix2(b, Forward); err != nil {
		return err
	}
	for k := range a {
		a[k] *= b[k]
	}
	if err := Radix2(a, Inverse); err != nil {
		return err
	}

	scale := complex(1.0/float64(m), 0)
	for k := 0; k < n; k++ {
		data[k] = chirp[k] * a[k] * scale
	}

	return nil
}

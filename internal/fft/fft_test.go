package fft

import (
	"errors"
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"
)

const tol = 1e-9

func assertApproxComplex(t *testing.T, got, want complex128, tolerance float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tolerance {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertSliceApprox(t *testing.T, got, want []complex128, tolerance float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		assertApproxComplex(t, got[i], want[i], tolerance, "index %d", i)
	}
}

func randomComplex(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return data
}

func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{5, false},
		{8, true},
		{12, false},
		{256, true},
		{420, false},
		{1024, true},
		{-1, false},
		{-2, false},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {9, 16}, {839, 1024},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestComputeBitReversalIndices(t *testing.T) {
	t.Parallel()

	got := ComputeBitReversalIndices(8)
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bitrev[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestComputeTwiddleFactors(t *testing.T) {
	t.Parallel()

	// Forward twiddles are exp(-2πik/n); the inverse table is the conjugate.
	fwd := ComputeTwiddleFactors(8, Forward)
	inv := ComputeTwiddleFactors(8, Inverse)

	assertApproxComplex(t, fwd[0], 1, tol, "fwd[0]")
	assertApproxComplex(t, fwd[2], complex(0, -1), tol, "fwd[2]")
	for k := range fwd {
		assertApproxComplex(t, inv[k], cmplx.Conj(fwd[k]), tol, "inv[%d] vs conj(fwd[%d])", k, k)
	}
}

func TestRadix2ImpulseFlatSpectrum(t *testing.T) {
	t.Parallel()

	// The spectrum of a unit impulse is flat: every bin equals (1, 0).
	data := make([]complex128, 8)
	data[0] = 1

	if err := Radix2(data, Forward); err != nil {
		t.Fatalf("Radix2: %v", err)
	}
	for i, v := range data {
		assertApproxComplex(t, v, 1, tol, "bin %d", i)
	}
}

func TestRadix2InvalidLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 5, 6, 7, 12, 420} {
		n := n
		data := make([]complex128, n)
		if err := Radix2(data, Forward); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Radix2(len %d) = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestRadix2TrivialLengths(t *testing.T) {
	t.Parallel()

	if err := Radix2(nil, Forward); err != nil {
		t.Errorf("Radix2(nil) = %v, want nil", err)
	}

	data := []complex128{complex(3, -2)}
	if err := Radix2(data, Inverse); err != nil {
		t.Errorf("Radix2(len 1) = %v, want nil", err)
	}
	assertApproxComplex(t, data[0], complex(3, -2), 0, "length-1 input must pass through")
}

func TestRadix2RoundTrip(t *testing.T) {
	t.Parallel()

	// Forward followed by the unnormalized inverse scales by n.
	for _, n := range []int{2, 4, 8, 16, 64, 256} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			data := randomComplex(n, int64(n))
			orig := make([]complex128, n)
			copy(orig, data)

			if err := Radix2(data, Forward); err != nil {
				t.Fatalf("forward: %v", err)
			}
			if err := Radix2(data, Inverse); err != nil {
				t.Fatalf("inverse: %v", err)
			}

			for i := range data {
				assertApproxComplex(t, data[i], orig[i]*complex(float64(n), 0), tol*float64(n), "index %d", i)
			}
		})
	}
}

func TestRadix2Linearity(t *testing.T) {
	t.Parallel()

	const n = 64

	x := randomComplex(n, 12345)
	y := randomComplex(n, 67890)
	a := complex(2.5, 1.3)
	b := complex(-1.7, 0.8)

	combined := make([]complex128, n)
	for i := 0; i < n; i++ {
		combined[i] = a*x[i] + b*y[i]
	}

	if err := Radix2(combined, Forward); err != nil {
		t.Fatalf("combined: %v", err)
	}
	if err := Radix2(x, Forward); err != nil {
		t.Fatalf("x: %v", err)
	}
	if err := Radix2(y, Forward); err != nil {
		t.Fatalf("y: %v", err)
	}

	for i := 0; i < n; i++ {
		assertApproxComplex(t, combined[i], a*x[i]+b*y[i], 1e-8, "index %d", i)
	}
}

func TestRadix2KnownDFT(t *testing.T) {
	t.Parallel()

	// DFT of [1, 2, 3, 4]: X[0]=10, X[1]=-2+2i, X[2]=-2, X[3]=-2-2i.
	data := []complex128{1, 2, 3, 4}
	if err := Radix2(data, Forward); err != nil {
		t.Fatalf("Radix2: %v", err)
	}

	want := []complex128{10, complex(-2, 2), -2, complex(-2, -2)}
	assertSliceApprox(t, data, want, tol)
}

package fft

// Transform1D dispatches a single line to the radix-2 or Bluestein path
// depending on whether its length is a power of two.
func Transform1D(line []complex128, dir Direction) error {
	if IsPowerOfTwo(len(line)) || len(line) <= 1 {
		return Radix2(line, dir)
	}
	return Bluestein(line, dir)
}

// Transform2D computes the separable 2D DFT of a square field stored
// row-major in data with the given side length: every row is transformed
// independently, then every column of the result. The row-then-column order
// is the same for both directions, so a forward and an unnormalized inverse
// pass compose to the identity scaled by side².
//
// The field is validated before any entry is written: a nil buffer or a
// length other than side² leaves data untouched and reports the error.
func Transform2D(data []complex128, side int, dir Direction) error {
	if data == nil {
		return ErrNilField
	}
	if side < 1 || len(data) != side*side {
		return ErrDimensionMismatch
	}

	for r := 0; r < side; r++ {
		if err := Transform1D(data[r*side:(r+1)*side], dir); err != nil {
			return err
		}
	}

	// Columns are gathered into a scratch line so the 1D kernels keep their
	// contiguous in-place contract.
	col := make([]complex128, side)
	for c := 0; c < side; c++ {
		for r := 0; r < side; r++ {
			col[r] = data[r*side+c]
		}
		if err := Transform1D(col, dir); err != nil {
			return err
		}
		for r := 0; r < side; r++ {
			data[r*side+c] = col[r]
		}
	}

	return nil
}

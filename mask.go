package tealeaf

// Mask zeroes every frequency-domain entry of f lying in the axis-aligned
// band: cells (r, c) with cutoff <= r <= side-cutoff OR cutoff <= c <=
// side-cutoff (upper bound per mode). Entries near the zero-frequency edges
// of either axis survive; the central band along each axis is cleared. This
// is the band rule, not a radially symmetric low-pass.
//
// The operation is in-place and idempotent. The cutoff must lie in
// [0, side/2].
func Mask(f *Field, cutoff int, mode MaskBoundaryMode) error {
	if f == nil || f.data == nil {
		return ErrNilField
	}
	if cutoff < 0 || cutoff > f.side/2 {
		return ErrInvalidCutoff
	}

	banded := func(i int) bool {
		if i < cutoff {
			return false
		}
		if mode == BoundaryExclusive {
			return i < f.side-cutoff
		}
		return i <= f.side-cutoff
	}

	for r := 0; r < f.side; r++ {
		rowBanded := banded(r)
		for c := 0; c < f.side; c++ {
			if rowBanded || banded(c) {
				f.data[r*f.side+c] = 0
			}
		}
	}

	return nil
}

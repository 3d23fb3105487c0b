package tealeaf

import "github.com/jdsimcoe/teaLeaf/internal/fft"

// Direction selects between the forward and inverse transform.
// The canonical definition is in internal/fft.
type Direction = fft.Direction

// Transform directions re-exported for callers of the public API.
const (
	Forward = fft.Forward
	Inverse = fft.Inverse
)

// MaskBoundaryMode fixes the upper-boundary operator of the frequency mask's
// band rule. The source material disagrees between `row <= side-cutoff` and
// `row < side-cutoff`; the choice is an explicit configuration, not an
// implementation accident.
type MaskBoundaryMode int

const (
	// BoundaryInclusive zeroes rows/columns in [cutoff, side-cutoff]. This is
	// the canonical mode.
	BoundaryInclusive MaskBoundaryMode = iota

	// BoundaryExclusive zeroes rows/columns in [cutoff, side-cutoff).
	BoundaryExclusive
)

// NormalizationMode fixes whether the inverse 2D transform is divided by
// side². The stencil bit pattern is identical either way; the mode only
// changes the scale of the raw field and the threshold constant.
type NormalizationMode int

const (
	// NormalizeNone keeps the unnormalized inverse; thresholding compares
	// against side²/2. This is the canonical mode.
	NormalizeNone NormalizationMode = iota

	// NormalizeInverse divides the inverse transform by side²; thresholding
	// compares against 1/2.
	NormalizeInverse
)

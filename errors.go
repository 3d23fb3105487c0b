package tealeaf

import (
	"errors"

	"github.com/jdsimcoe/teaLeaf/internal/fft"
)

// Sentinel errors returned by stencil operations. The transform-level errors
// are shared with internal/fft so errors.Is works across the API boundary.
var (
	// ErrInvalidLength is returned when the radix-2 path is handed a length
	// that is not a power of two. Arbitrary field sizes are legal; they are
	// routed through the Bluestein path instead.
	ErrInvalidLength = fft.ErrInvalidLength

	// ErrDimensionMismatch is returned when a field's side length disagrees
	// with the size expected at a stage boundary.
	ErrDimensionMismatch = fft.ErrDimensionMismatch

	// ErrNilField is returned when a nil field or buffer reaches a stage.
	ErrNilField = fft.ErrNilField

	// ErrInvalidCutoff is returned when the frequency cutoff lies outside
	// [0, side/2].
	ErrInvalidCutoff = errors.New("tealeaf: cutoff outside [0, side/2]")

	// ErrInvalidSize is returned when a field size smaller than 1 is
	// configured.
	ErrInvalidSize = errors.New("tealeaf: field size must be at least 1")
)

// Package tealeaf deterministically derives a binary stencil from a seed:
// seeded noise fills a square field, a separable 2D Fourier transform moves
// it to the frequency domain, a band mask strips the configured frequencies,
// and the inverse transform plus a fixed threshold turn the result into a
// boolean pattern. The same seed and configuration always produce the same
// stencil.
package tealeaf

// Config bundles the knobs of one generation run. The zero value is not
// usable; Size must be at least 1 and Cutoff within [0, Size/2]. Size does
// not have to be a power of two: transforms of other sizes go through the
// Bluestein path.
type Config struct {
	// Size is the side length of the square field.
	Size int

	// Cutoff is the band boundary of the frequency mask.
	Cutoff int

	// Boundary selects the mask's upper-bound operator.
	Boundary MaskBoundaryMode

	// Normalization selects whether the inverse transform is divided by
	// Size². The stencil bits are unaffected.
	Normalization NormalizationMode

	// Noise overrides the default seeded noise source. Leave nil for the
	// built-in stream.
	Noise NoiseSource
}

// Stencil is the output of one generation run: the thresholded bits and the
// pre-threshold real field, both row-major with the configured side length.
type Stencil struct {
	side int
	bits []bool
	raw  []float64
}

// Side returns the side length of the stencil.
func (s *Stencil) Side() int {
	return s.side
}

// At reports whether the cell at (row, col) is set.
func (s *Stencil) At(row, col int) bool {
	return s.bits[row*s.side+col]
}

// Raw returns the pre-threshold real component at (row, col). Its scale
// depends on the configured NormalizationMode.
func (s *Stencil) Raw(row, col int) float64 {
	return s.raw[row*s.side+col]
}

// Bits exposes the row-major bit slice. Callers must treat it as read-only.
func (s *Stencil) Bits() []bool {
	return s.bits
}

// Generate runs the full pipeline for one seed: noise, forward transform,
// mask, inverse transform, threshold. Every run allocates fresh buffers and
// lookup tables; concurrent calls with independent seeds need no locking.
func Generate(seed uint32, cfg Config) (*Stencil, error) {
	if cfg.Size < 1 {
		return nil, ErrInvalidSize
	}
	if cfg.Cutoff < 0 || cfg.Cutoff > cfg.Size/2 {
		return nil, ErrInvalidCutoff
	}

	src := cfg.Noise
	if src == nil {
		src = NewNoise(seed)
	}

	field, err := NewFieldFromBits(src.Bits(cfg.Size*cfg.Size), cfg.Size)
	if err != nil {
		return nil, err
	}

	if err := field.Transform(Forward); err != nil {
		return nil, err
	}
	if err := Mask(field, cfg.Cutoff, cfg.Boundary); err != nil {
		return nil, err
	}
	if err := field.Transform(Inverse); err != nil {
		return nil, err
	}

	n2 := float64(cfg.Size) * float64(cfg.Size)
	scale := 1.0
	threshold := n2 / 2
	if cfg.Normalization == NormalizeInverse {
		scale = 1.0 / n2
		threshold = 0.5
	}

	s := &Stencil{
		side: cfg.Size,
		bits: make([]bool, cfg.Size*cfg.Size),
		raw:  make([]float64, cfg.Size*cfg.Size),
	}
	for i, v := range field.Data() {
		// Imaginary parts are numerical residue after the round trip and do
		// not participate in the decision.
		s.raw[i] = real(v) * scale
		s.bits[i] = s.raw[i] > threshold
	}

	return s, nil
}

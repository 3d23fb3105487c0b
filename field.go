package tealeaf

import "github.com/jdsimcoe/teaLeaf/internal/fft"

// Field is a square matrix of complex values stored row-major. It is the
// unit of exchange between pipeline stages: each stage either mutates a field
// it was handed exclusively or allocates a fresh one, never both.
type Field struct {
	side int
	data []complex128
}

// NewField returns an all-zero field with the given side length.
func NewField(side int) (*Field, error) {
	if side < 1 {
		return nil, ErrInvalidSize
	}

	return &Field{
		side: side,
		data: make([]complex128, side*side),
	}, nil
}

// NewFieldFromBits returns a field whose real components are the given 0/1
// bits in row-major order and whose imaginary components are zero. The bit
// slice length must be side².
func NewFieldFromBits(bits []uint8, side int) (*Field, error) {
	if side < 1 {
		return nil, ErrInvalidSize
	}
	if bits == nil {
		return nil, ErrNilField
	}
	if len(bits) != side*side {
		return nil, ErrDimensionMismatch
	}

	f := &Field{
		side: side,
		data: make([]complex128, side*side),
	}
	for i, b := range bits {
		f.data[i] = complex(float64(b), 0)
	}

	return f, nil
}

// Side returns the side length of the field.
func (f *Field) Side() int {
	return f.side
}

// At returns the entry at (row, col).
func (f *Field) At(row, col int) complex128 {
	return f.data[row*f.side+col]
}

// Set writes the entry at (row, col).
func (f *Field) Set(row, col int, v complex128) {
	f.data[row*f.side+col] = v
}

// Data exposes the row-major backing slice. Mutating it mutates the field;
// the caller takes over the single-writer role while it holds the slice.
func (f *Field) Data() []complex128 {
	return f.data
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	data := make([]complex128, len(f.data))
	copy(data, f.data)

	return &Field{side: f.side, data: data}
}

// Transform applies the separable 2D DFT to the field in place, rows first
// and then columns, dispatching each line to the radix-2 or Bluestein path
// by length. The inverse direction is unnormalized.
func (f *Field) Transform(dir Direction) error {
	if f == nil || f.data == nil {
		return ErrNilField
	}

	return fft.Transform2D(f.data, f.side, dir)
}

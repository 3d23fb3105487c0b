package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

// gridFromRows builds a test Grid from string rows: '#' set, anything else
// unset. Raw values mirror the bits as 0/1.
type testGrid struct {
	side int
	bits []bool
}

func gridFromRows(t *testing.T, rows ...string) *testGrid {
	t.Helper()

	side := len(rows)
	g := &testGrid{side: side, bits: make([]bool, side*side)}
	for r, row := range rows {
		if len(row) != side {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), side)
		}
		for c := range row {
			g.bits[r*side+c] = row[c] == '#'
		}
	}

	return g
}

func (g *testGrid) Side() int { return g.side }

func (g *testGrid) At(row, col int) bool { return g.bits[row*g.side+col] }

func (g *testGrid) Raw(row, col int) float64 {
	if g.At(row, col) {
		return 1
	}
	return 0
}

func TestImageDimensions(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"#..",
		".#.",
		"..#",
	)

	img := Image(g, Options{Scale: 4})
	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 12 {
		t.Errorf("bounds = %v, want 12x12", bounds)
	}
}

func TestImageFillsSetCells(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"#.",
		".#",
	)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := Image(g, Options{Scale: 1, Fill: color.Black, Background: white})

	if got := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y; got != 0 {
		t.Errorf("set cell (0,0) luminance = %d, want 0", got)
	}
	if got := color.GrayModel.Convert(img.At(1, 0)).(color.Gray).Y; got != 255 {
		t.Errorf("unset cell (1,0) luminance = %d, want 255", got)
	}
}

func TestWritePNGProducesDecodableOutput(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"##",
		"..",
	)

	var buf bytes.Buffer
	if err := WritePNG(&buf, g, Options{Scale: 3}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 6 {
		t.Errorf("decoded size %dx%d, want 6x6", cfg.Width, cfg.Height)
	}
}

func TestRawImageNormalizesRange(t *testing.T) {
	t.Parallel()

	g := gridFromRows(t,
		"#.",
		".#",
	)

	img := RawImage(g, Options{Scale: 1})

	hi := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y
	lo := color.GrayModel.Convert(img.At(1, 0)).(color.Gray).Y
	if hi != 255 {
		t.Errorf("max raw value rendered as %d, want 255", hi)
	}
	if lo != 0 {
		t.Errorf("min raw value rendered as %d, want 0", lo)
	}
}

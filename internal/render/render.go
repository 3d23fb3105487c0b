// Package render turns a generated stencil into pixels or vector paths.
// Raster output goes through fogleman/gg; vector output is an SVG document
// built from per-row runs of set cells.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// Grid is the read-only view of a generated stencil that the renderers
// consume: the thresholded bit per cell and the pre-threshold real value.
// *tealeaf.Stencil satisfies it.
type Grid interface {
	Side() int
	At(row, col int) bool
	Raw(row, col int) float64
}

// Options controls rasterization.
type Options struct {
	// Scale is the pixel width of one stencil cell. Values below 1 are
	// treated as 1.
	Scale int

	// Fill is the color of set cells. Nil means opaque black.
	Fill color.Color

	// Background is the color behind unset cells. Nil means fully
	// transparent.
	Background color.Color
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

func (o Options) fill() color.Color {
	if o.Fill == nil {
		return color.Black
	}
	return o.Fill
}

// rasterize draws the stencil onto a fresh context, one filled Scale×Scale
// square per set cell.
func rasterize(s Grid, opts Options) *gg.Context {
	side := s.Side()
	scale := opts.scale()

	ctx := gg.NewContext(side*scale, side*scale)
	if opts.Background != nil {
		ctx.SetColor(opts.Background)
		ctx.Clear()
	}

	ctx.SetColor(opts.fill())
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if s.At(r, c) {
				ctx.DrawRectangle(float64(c*scale), float64(r*scale), float64(scale), float64(scale))
			}
		}
	}
	ctx.Fill()

	return ctx
}

// Image rasterizes the stencil: every set cell becomes a Scale×Scale square
// of the fill color.
func Image(s Grid, opts Options) image.Image {
	return rasterize(s, opts).Image()
}

// WritePNG rasterizes the stencil and encodes it as PNG.
func WritePNG(w io.Writer, s Grid, opts Options) error {
	return rasterize(s, opts).EncodePNG(w)
}

// RawImage renders the pre-threshold field as grayscale, normalizing the
// value range to [0, 255]. Useful for inspecting what a mask configuration
// leaves behind before the threshold collapses it.
func RawImage(s Grid, opts Options) image.Image {
	side := s.Side()
	scale := opts.scale()

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := s.Raw(r, c)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	ctx := gg.NewContext(side*scale, side*scale)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			g := uint8(255 * (s.Raw(r, c) - lo) / span)
			ctx.SetColor(color.Gray{Y: g})
			ctx.DrawRectangle(float64(c*scale), float64(r*scale), float64(scale), float64(scale))
			ctx.Fill()
		}
	}

	return ctx.Image()
}

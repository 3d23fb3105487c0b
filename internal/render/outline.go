package render

import (
	"fmt"
	"io"
)

// Run is a maximal horizontal run of set cells: columns [Start, End) of one
// row.
type Run struct {
	Row   int
	Start int
	End   int
}

// Runs extracts the per-row runs of set cells in row-major order.
func Runs(s Grid) []Run {
	var runs []Run

	side := s.Side()
	for r := 0; r < side; r++ {
		start := -1
		for c := 0; c < side; c++ {
			switch {
			case s.At(r, c) && start < 0:
				start = c
			case !s.At(r, c) && start >= 0:
				runs = append(runs, Run{Row: r, Start: start, End: c})
				start = -1
			}
		}
		if start >= 0 {
			runs = append(runs, Run{Row: r, Start: start, End: side})
		}
	}

	return runs
}

// WriteSVG emits the stencil as a vector outline: one SVG path containing a
// rectangle subpath per run, filled with opts.Fill (black by default).
// Unset cells stay transparent regardless of opts.Background, matching the
// raster renderer's treatment of a nil background.
func WriteSVG(w io.Writer, s Grid, opts Options) error {
	side := s.Side()
	scale := opts.scale()
	size := side * scale

	r, g, b, _ := opts.fill().RGBA()

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		size, size, size, size); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "<path fill=\"#%02x%02x%02x\" d=\"", r>>8, g>>8, b>>8); err != nil {
		return err
	}
	for _, run := range Runs(s) {
		if _, err := fmt.Fprintf(w, "M%d %dh%dv%dh-%dz",
			run.Start*scale, run.Row*scale, (run.End-run.Start)*scale, scale, (run.End-run.Start)*scale); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\"/>\n</svg>\n"); err != nil {
		return err
	}

	return nil
}

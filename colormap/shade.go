package colormap

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ShadeOptions controls how a scalar field is mapped onto the colormap.
type ShadeOptions struct {
	// Bounds is the (low, high) value range spanned by the colormap.
	// Nil selects the min/max of the unmasked field values.
	Bounds *[2]float64

	// Gap is a sentinel value rendered transparent. NaN is always
	// rendered transparent.
	Gap *float64
}

// Shade renders a 2D scalar field as an RGBA raster.
//
// field is indexed [row][column]; row 0 becomes the top image row. Each
// value is linearly mapped to a quantization level, rounded, clipped,
// and looked up in the colormap; the NaN/gap mask becomes the alpha
// channel. A numerically degenerate value span is widened around the
// mean so the mapping never divides by near-zero.
func (c Colormap) Shade(field [][]float64, opts ShadeOptions) (*image.NRGBA, error) {
	rows := len(field)
	if rows == 0 || len(field[0]) == 0 {
		return nil, fmt.Errorf("shade: empty field")
	}
	cols := len(field[0])
	for i, row := range field {
		if len(row) != cols {
			return nil, fmt.Errorf("shade: ragged field (row %d has %d values, want %d)", i, len(row), cols)
		}
	}

	masked := func(v float64) bool {
		return math.IsNaN(v) || (opts.Gap != nil && v == *opts.Gap)
	}

	var lo, hi float64
	if opts.Bounds != nil {
		lo = math.Min(opts.Bounds[0], opts.Bounds[1])
		hi = math.Max(opts.Bounds[0], opts.Bounds[1])
	} else {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, row := range field {
			for _, v := range row {
				if masked(v) {
					continue
				}
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
		if lo > hi {
			return nil, fmt.Errorf("shade: field contains no unmasked values")
		}
	}

	// Widen a span that is indistinguishable from numerical noise so the
	// data stays centered instead of banding. A field that is uniformly
	// zero has no magnitude to widen by and gets a unit span.
	switch delta, avg := hi-lo, 0.5*math.Abs(hi+lo); {
	case delta == 0 && avg == 0:
		lo, hi = -0.5, 0.5
	case delta*1e8 <= avg:
		hi += 0.5 * avg
		lo -= 0.5 * avg
	}

	n := len(c.colors)
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y, row := range field {
		for x, v := range row {
			idx := 0
			if !masked(v) {
				f := (v - lo) / (hi - lo)
				f = math.Min(1.0, math.Max(0.0, f))
				idx = int(math.Round(f * float64(n-1)))
			}
			col := c.colors[idx]
			off := img.PixOffset(x, y)
			img.Pix[off+0] = uint8(col[0]*255 + 0.5)
			img.Pix[off+1] = uint8(col[1]*255 + 0.5)
			img.Pix[off+2] = uint8(col[2]*255 + 0.5)
			if masked(v) {
				img.Pix[off+3] = 0
			} else {
				img.Pix[off+3] = 255
			}
		}
	}
	return img, nil
}

// Ribbon renders the colormap itself as a preview strip of the given
// pixel dimensions, one vertical band per quantization level.
func (c Colormap) Ribbon(width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("ribbon: invalid dimensions %dx%d", width, height)
	}
	strip := image.NewNRGBA(image.Rect(0, 0, len(c.colors), 1))
	for i, col := range c.colors {
		off := strip.PixOffset(i, 0)
		strip.Pix[off+0] = uint8(col[0]*255 + 0.5)
		strip.Pix[off+1] = uint8(col[1]*255 + 0.5)
		strip.Pix[off+2] = uint8(col[2]*255 + 0.5)
		strip.Pix[off+3] = 255
	}
	return imaging.Resize(strip, width, height, imaging.NearestNeighbor), nil
}

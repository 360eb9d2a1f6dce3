package grid

import "math"

// PrimitiveOptions controls AddPrimitive.
//
// CellAddressed interprets dimension and center in cells instead of
// physical length, with center naming a voxel rather than a point.
// Fill defaults to the largest material index plus one. Rotation's
// zero value leaves the primitive axis-aligned. Periodic wraps the
// primitive around the box.
type PrimitiveOptions struct {
	Fill          *int32
	Rotation      Rotation
	Inverse       bool
	Periodic      bool
	CellAddressed bool
}

// AddPrimitive inserts a superellipsoid into the microstructure. A cell
// center x is inside when sum_k |x_k/r_k|^(2^exponent_k) <= 1 with
// r = dimension/2, evaluated in the frame rotated by opts.Rotation and
// centered on center. Inside cells are set to fill, or outside cells
// when Inverse.
func (g *Grid) AddPrimitive(dimension, center, exponent [3]float64, opts PrimitiveOptions) *Grid {
	fill := g.MaxMaterial() + 1
	if opts.Fill != nil {
		fill = *opts.Fill
	}

	sp := g.spacing()
	var r, c [3]float64
	for k := 0; k < 3; k++ {
		if opts.CellAddressed {
			r[k] = dimension[k] / 2.0 * sp[k]
			c[k] = (center[k] + 0.5) * sp[k]
		} else {
			r[k] = dimension[k] / 2.0
			c[k] = center[k] - g.origin[k]
		}
	}

	// Evaluate around the box center when periodic; the mask is rolled
	// onto the requested center afterwards so it wraps cleanly.
	var coordOrigin [3]float64
	for k := 0; k < 3; k++ {
		if opts.Periodic {
			coordOrigin[k] = -0.5 * g.size[k]
			if opts.CellAddressed {
				coordOrigin[k] = -0.5 * (g.size[k] + sp[k])
			}
		} else {
			coordOrigin[k] = -c[k]
		}
	}

	power := [3]float64{
		math.Exp2(exponent[0]),
		math.Exp2(exponent[1]),
		math.Exp2(exponent[2]),
	}
	outside := make([]bool, len(g.material))
	for i := range outside {
		x, y, z := splitIndex(g.cells, i)
		v := opts.Rotation.Apply([3]float64{
			(float64(x)+0.5)*sp[0] + coordOrigin[0],
			(float64(y)+0.5)*sp[1] + coordOrigin[1],
			(float64(z)+0.5)*sp[2] + coordOrigin[2],
		})
		sum := 0.0
		for k := 0; k < 3; k++ {
			sum += math.Pow(math.Abs(v[k]/r[k]), power[k])
		}
		outside[i] = sum > 1.0
	}

	if opts.Periodic {
		var shift [3]int
		for k := 0; k < 3; k++ {
			shift[k] = int(math.RoundToEven((c[k]/g.size[k] - 0.5) * float64(g.cells[k])))
		}
		outside = rollMask(outside, g.cells, shift)
	}

	material := make([]int32, len(g.material))
	for i, out := range outside {
		if out != opts.Inverse {
			material[i] = g.material[i]
		} else {
			material[i] = fill
		}
	}
	return g.derived(material, g.cells, g.size, g.origin, "AddPrimitive")
}

// rollMask shifts the mask cyclically, shift[k] cells towards higher
// indices along axis k.
func rollMask(mask []bool, cells [3]int, shift [3]int) []bool {
	wrap := func(i, s, n int) int {
		return (((i - s) % n) + n) % n
	}
	out := make([]bool, len(mask))
	for i := range out {
		x, y, z := splitIndex(cells, i)
		sx := wrap(x, shift[0], cells[0])
		sy := wrap(y, shift[1], cells[1])
		sz := wrap(z, shift[2], cells[2])
		out[i] = mask[sx+cells[0]*(sy+cells[1]*sz)]
	}
	return out
}

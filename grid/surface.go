package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/grainforge/microgrid/internal/provenance"
)

// Surface names a triply periodic minimal surface family.
//
// Implicit forms follow Blanquer et al., Biofabrication 9(2):025001,
// 2017 and Wohlgemuth et al., Macromolecules 34(17):6083-6089, 2001.
type Surface string

const (
	SchwarzP        Surface = "Schwarz P"
	DoublePrimitive Surface = "Double Primitive"
	SchwarzD        Surface = "Schwarz D"
	ComplementaryD  Surface = "Complementary D"
	DoubleDiamond   Surface = "Double Diamond"
	Dprime          Surface = "Dprime"
	Gyroid          Surface = "Gyroid"
	Gprime          Surface = "Gprime"
	KarcherK        Surface = "Karcher K"
	Lidinoid        Surface = "Lidinoid"
	Neovius         Surface = "Neovius"
	FisherKochS     Surface = "Fisher-Koch S"
)

var minimalSurfaces = map[Surface]func(x, y, z float64) float64{
	SchwarzP: func(x, y, z float64) float64 {
		return math.Cos(x) + math.Cos(y) + math.Cos(z)
	},
	DoublePrimitive: func(x, y, z float64) float64 {
		return 0.5*(math.Cos(x)*math.Cos(y)+math.Cos(y)*math.Cos(z)+math.Cos(z)*math.Cos(x)) +
			0.2*(math.Cos(2*x)+math.Cos(2*y)+math.Cos(2*z))
	},
	SchwarzD: func(x, y, z float64) float64 {
		return math.Sin(x)*math.Sin(y)*math.Sin(z) +
			math.Sin(x)*math.Cos(y)*math.Cos(z) +
			math.Cos(x)*math.Cos(y)*math.Sin(z) +
			math.Cos(x)*math.Sin(y)*math.Cos(z)
	},
	ComplementaryD: func(x, y, z float64) float64 {
		return math.Cos(3*x+y)*math.Cos(z) - math.Sin(3*x-y)*math.Sin(z) +
			math.Cos(x+3*y)*math.Cos(z) + math.Sin(x-3*y)*math.Sin(z) +
			math.Cos(x-y)*math.Cos(3*z) - math.Sin(x+y)*math.Sin(3*z)
	},
	DoubleDiamond: func(x, y, z float64) float64 {
		return 0.5 * (math.Sin(x)*math.Sin(y) +
			math.Sin(y)*math.Sin(z) +
			math.Sin(z)*math.Sin(x) +
			math.Cos(x)*math.Cos(y)*math.Cos(z))
	},
	Dprime: func(x, y, z float64) float64 {
		return 0.5*(math.Cos(x)*math.Cos(y)*math.Cos(z)+
			math.Cos(x)*math.Sin(y)*math.Sin(z)+
			math.Sin(x)*math.Cos(y)*math.Sin(z)+
			math.Sin(x)*math.Sin(y)*math.Cos(z)-
			math.Sin(2*x)*math.Sin(2*y)-
			math.Sin(2*y)*math.Sin(2*z)-
			math.Sin(2*z)*math.Sin(2*x)) - 0.2
	},
	Gyroid: func(x, y, z float64) float64 {
		return math.Cos(x)*math.Sin(y) + math.Cos(y)*math.Sin(z) + math.Cos(z)*math.Sin(x)
	},
	Gprime: func(x, y, z float64) float64 {
		return math.Sin(2*x)*math.Cos(y)*math.Sin(z) +
			math.Sin(2*y)*math.Cos(z)*math.Sin(x) +
			math.Sin(2*z)*math.Cos(x)*math.Sin(y) + 0.32
	},
	KarcherK: func(x, y, z float64) float64 {
		return 0.3*(math.Cos(x)+math.Cos(y)+math.Cos(z)+
			math.Cos(x)*math.Cos(y)+math.Cos(y)*math.Cos(z)+math.Cos(z)*math.Cos(x)) -
			0.4*(math.Cos(2*x)+math.Cos(2*y)+math.Cos(2*z)) + 0.2
	},
	Lidinoid: func(x, y, z float64) float64 {
		return 0.5*(math.Sin(2*x)*math.Cos(y)*math.Sin(z)+
			math.Sin(2*y)*math.Cos(z)*math.Sin(x)+
			math.Sin(2*z)*math.Cos(x)*math.Sin(y)-
			math.Cos(2*x)*math.Cos(2*y)-
			math.Cos(2*y)*math.Cos(2*z)-
			math.Cos(2*z)*math.Cos(2*x)) + 0.15
	},
	Neovius: func(x, y, z float64) float64 {
		return 3*(math.Cos(x)+math.Cos(y)+math.Cos(z)) +
			4*math.Cos(x)*math.Cos(y)*math.Cos(z)
	},
	FisherKochS: func(x, y, z float64) float64 {
		return math.Cos(2*x)*math.Sin(y)*math.Cos(z) +
			math.Cos(x)*math.Cos(2*y)*math.Sin(z) +
			math.Sin(x)*math.Cos(y)*math.Cos(2*z)
	},
}

// Surfaces returns the implemented surface names in sorted order.
func Surfaces() []Surface {
	out := make([]Surface, 0, len(minimalSurfaces))
	for s := range minimalSurfaces {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SurfaceOptions controls FromMinimalSurface. Threshold splits the two
// phases along the level set (default 0). Periods repeats the unit
// cell; zero means one period. Materials holds the IDs for the two
// phases, defaulting to (0, 1); cells with surface value above the
// threshold get Materials[1].
type SurfaceOptions struct {
	Threshold float64
	Periods   int
	Materials [2]int32
}

// FromMinimalSurface builds a two-phase grid from the implicit form of
// a triply periodic minimal surface.
func FromMinimalSurface(cells [3]int, size [3]float64, surface Surface, opts *SurfaceOptions) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	f, ok := minimalSurfaces[surface]
	if !ok {
		return nil, fmt.Errorf("unknown minimal surface %q", surface)
	}

	o := SurfaceOptions{Materials: [2]int32{0, 1}}
	if opts != nil {
		o = *opts
		if o.Materials == ([2]int32{}) {
			o.Materials = [2]int32{0, 1}
		}
	}
	periods := o.Periods
	if periods < 1 {
		periods = 1
	}

	angle := func(i, n int) float64 {
		return float64(periods) * 2.0 * math.Pi * (float64(i) + 0.5) / float64(n)
	}
	material := make([]int32, cells[0]*cells[1]*cells[2])
	i := 0
	for z := 0; z < cells[2]; z++ {
		az := angle(z, cells[2])
		for y := 0; y < cells[1]; y++ {
			ay := angle(y, cells[1])
			for x := 0; x < cells[0]; x++ {
				if o.Threshold < f(angle(x, cells[0]), ay, az) {
					material[i] = o.Materials[1]
				} else {
					material[i] = o.Materials[0]
				}
				i++
			}
		}
	}
	return &Grid{
		material: material,
		cells:    cells,
		size:     size,
		comments: []string{provenance.Stamp("Grid", "FromMinimalSurface")},
	}, nil
}

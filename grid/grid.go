package grid

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/grainforge/microgrid/internal/provenance"
)

// Grid is a voxelized geometry definition: a dense 3D array of material
// indices plus the physical size and origin of the box it fills.
//
// The material array is stored flat in x-fastest (column-major) order:
// index = x + nx*(y + ny*z). Grids are value objects; transforms return
// new instances and never mutate their receiver.
type Grid struct {
	material []int32
	cells    [3]int
	size     [3]float64
	origin   [3]float64
	comments []string
}

// New creates a grid from a flat x-fastest material array.
//
// len(material) must equal cells[0]*cells[1]*cells[2] with every cell
// count at least 1, and size components must be non-negative. The
// material slice and comments are copied.
func New(material []int32, cells [3]int, size [3]float64, origin [3]float64, comments []string) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	if want := cells[0] * cells[1] * cells[2]; len(material) != want {
		return nil, fmt.Errorf("%w: %d material entries for %v cells (want %d)",
			ErrShape, len(material), cells, want)
	}
	if size[0] < 0 || size[1] < 0 || size[2] < 0 {
		return nil, fmt.Errorf("invalid size %v", size)
	}

	g := &Grid{
		material: make([]int32, len(material)),
		cells:    cells,
		size:     size,
		origin:   origin,
		comments: make([]string, len(comments)),
	}
	copy(g.material, material)
	copy(g.comments, comments)
	return g, nil
}

// Cells returns the number of cells in x, y, z direction.
func (g *Grid) Cells() [3]int { return g.cells }

// Size returns the physical size of the grid.
func (g *Grid) Size() [3]float64 { return g.size }

// Origin returns the coordinates of the grid's lower corner.
func (g *Grid) Origin() [3]float64 { return g.origin }

// Comments returns a copy of the provenance log.
func (g *Grid) Comments() []string {
	out := make([]string, len(g.comments))
	copy(out, g.comments)
	return out
}

// Material returns a copy of the flat x-fastest material array.
func (g *Grid) Material() []int32 {
	out := make([]int32, len(g.material))
	copy(out, g.material)
	return out
}

// At returns the material index of cell (x, y, z).
func (g *Grid) At(x, y, z int) int32 {
	return g.material[x+g.cells[0]*(y+g.cells[1]*z)]
}

// NumMaterials returns the number of distinct material indices.
func (g *Grid) NumMaterials() int {
	seen := make(map[int32]struct{})
	for _, m := range g.material {
		seen[m] = struct{}{}
	}
	return len(seen)
}

// MaxMaterial returns the largest material index.
func (g *Grid) MaxMaterial() int32 {
	max := g.material[0]
	for _, m := range g.material[1:] {
		if m > max {
			max = m
		}
	}
	return max
}

// Equal reports whether both grids have the same cells, material array,
// and (within floating tolerance) size and origin. Comments are not
// compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.cells != other.cells {
		return false
	}
	for i := 0; i < 3; i++ {
		if !approx(g.size[i], other.size[i]) || !approx(g.origin[i], other.origin[i]) {
			return false
		}
	}
	for i, m := range g.material {
		if m != other.material[i] {
			return false
		}
	}
	return true
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
}

// String summarizes cells, size, origin, and material count.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cells:  %d × %d × %d\n", g.cells[0], g.cells[1], g.cells[2])
	fmt.Fprintf(&b, "size:   %g × %g × %g m³\n", g.size[0], g.size[1], g.size[2])
	fmt.Fprintf(&b, "origin: %g   %g   %g m\n", g.origin[0], g.origin[1], g.origin[2])

	n := g.NumMaterials()
	min, max := g.material[0], g.MaxMaterial()
	for _, m := range g.material {
		if m < min {
			min = m
		}
	}
	if min == 0 && int(max)+1 == n {
		fmt.Fprintf(&b, "# materials: %d", n)
	} else {
		fmt.Fprintf(&b, "# materials: %d (min: %d, max: %d)", n, min, max)
	}
	return b.String()
}

// derived builds the successor grid of a transform, appending a
// provenance stamp for op to the comment log.
func (g *Grid) derived(material []int32, cells [3]int, size, origin [3]float64, op string) *Grid {
	comments := make([]string, len(g.comments), len(g.comments)+1)
	copy(comments, g.comments)
	comments = append(comments, provenance.Stamp("Grid", op))
	return &Grid{material: material, cells: cells, size: size, origin: origin, comments: comments}
}

// uniqueSorted returns the distinct material values in ascending order.
func uniqueSorted(material []int32) []int32 {
	seen := make(map[int32]struct{})
	for _, m := range material {
		seen[m] = struct{}{}
	}
	out := make([]int32, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// spacing returns the per-cell physical spacing along each axis.
func (g *Grid) spacing() [3]float64 {
	return [3]float64{
		g.size[0] / float64(g.cells[0]),
		g.size[1] / float64(g.cells[1]),
		g.size[2] / float64(g.cells[2]),
	}
}

// cellCenter returns the physical coordinates of the center of cell
// (x, y, z) relative to the given origin.
func cellCenter(cells [3]int, size, origin [3]float64, x, y, z int) [3]float64 {
	return [3]float64{
		(float64(x)+0.5)*size[0]/float64(cells[0]) + origin[0],
		(float64(y)+0.5)*size[1]/float64(cells[1]) + origin[1],
		(float64(z)+0.5)*size[2]/float64(cells[2]) + origin[2],
	}
}

// splitIndex decomposes a flat x-fastest index into cell coordinates.
func splitIndex(cells [3]int, i int) (x, y, z int) {
	x = i % cells[0]
	y = (i / cells[0]) % cells[1]
	z = i / (cells[0] * cells[1])
	return x, y, z
}

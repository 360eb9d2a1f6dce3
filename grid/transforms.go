package grid

import (
	"fmt"
	"sort"
)

// gather builds a new material array where the new coordinate j along
// axis a reads from old coordinate idx[a][j]. A nil entry keeps the
// axis unchanged.
func gather(material []int32, cells [3]int, idx [3][]int) ([]int32, [3]int) {
	var newCells [3]int
	for a := 0; a < 3; a++ {
		if idx[a] == nil {
			newCells[a] = cells[a]
		} else {
			newCells[a] = len(idx[a])
		}
	}
	src := func(a, j int) int {
		if idx[a] == nil {
			return j
		}
		return idx[a][j]
	}
	out := make([]int32, newCells[0]*newCells[1]*newCells[2])
	i := 0
	for z := 0; z < newCells[2]; z++ {
		oz := src(2, z)
		for y := 0; y < newCells[1]; y++ {
			oy := src(1, y)
			base := cells[0] * (oy + cells[1]*oz)
			for x := 0; x < newCells[0]; x++ {
				out[i] = material[src(0, x)+base]
				i++
			}
		}
	}
	return out, newCells
}

// Mirror extends the grid by appending a reversed copy of itself along
// each given direction. With reflect the outermost layers repeat, so a
// length n axis grows to 2n; without it the boundary layers are shared
// and the axis grows to 2n-2.
func (g *Grid) Mirror(dirs []Direction, reflect bool) (*Grid, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: no directions given", ErrDirection)
	}
	var idx [3][]int
	for _, d := range dirs {
		n := g.cells[d]
		ix := make([]int, 0, 2*n)
		for i := 0; i < n; i++ {
			ix = append(ix, i)
		}
		if reflect {
			for i := n - 1; i >= 0; i-- {
				ix = append(ix, i)
			}
		} else {
			for i := n - 2; i >= 1; i-- {
				ix = append(ix, i)
			}
		}
		idx[d] = ix
	}
	material, cells := gather(g.material, g.cells, idx)
	sp := g.spacing()
	size := [3]float64{
		sp[0] * float64(cells[0]),
		sp[1] * float64(cells[1]),
		sp[2] * float64(cells[2]),
	}
	return g.derived(material, cells, size, g.origin, "Mirror"), nil
}

// Flip reverses the cell order along each given direction.
func (g *Grid) Flip(dirs []Direction) (*Grid, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: no directions given", ErrDirection)
	}
	var idx [3][]int
	for _, d := range dirs {
		n := g.cells[d]
		ix := make([]int, n)
		for i := range ix {
			ix[i] = n - 1 - i
		}
		idx[d] = ix
	}
	material, cells := gather(g.material, g.cells, idx)
	return g.derived(material, cells, g.size, g.origin, "Flip"), nil
}

// Scale resamples the material array to a new cell count by
// nearest-neighbor lookup while keeping the physical size. Source
// indices past the boundary wrap around the box when periodic and
// clamp to the boundary otherwise.
func (g *Grid) Scale(cells [3]int, periodic bool) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	var idx [3][]int
	for a := 0; a < 3; a++ {
		n, m := g.cells[a], cells[a]
		ix := make([]int, m)
		for j := 0; j < m; j++ {
			i := (2*j + 1) * n / (2 * m)
			if periodic {
				i = ((i % n) + n) % n
			} else if i < 0 {
				i = 0
			} else if i >= n {
				i = n - 1
			}
			ix[j] = i
		}
		idx[a] = ix
	}
	material, newCells := gather(g.material, g.cells, idx)
	return g.derived(material, newCells, g.size, g.origin, "Scale"), nil
}

// Canvas crops or pads the grid to a new cell count. offset shifts the
// existing material within the new frame, cells outside the overlap are
// set to fill (largest material index plus one when nil), and size and
// origin follow the new frame so the cell spacing stays constant.
func (g *Grid) Canvas(cells [3]int, offset [3]int, fill *int32) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	f := g.MaxMaterial() + 1
	if fill != nil {
		f = *fill
	}
	material := make([]int32, cells[0]*cells[1]*cells[2])
	for i := range material {
		material[i] = f
	}

	var lo, hi, dstLo [3]int
	for a := 0; a < 3; a++ {
		bound := min(g.cells[a], cells[a]+offset[a])
		lo[a] = clampInt(offset[a], 0, bound)
		hi[a] = clampInt(offset[a]+cells[a], 0, bound)
		dstBound := min(cells[a], g.cells[a]-offset[a])
		dstLo[a] = clampInt(-offset[a], 0, dstBound)
	}
	for z := lo[2]; z < hi[2]; z++ {
		for y := lo[1]; y < hi[1]; y++ {
			for x := lo[0]; x < hi[0]; x++ {
				dst := (dstLo[0] + x - lo[0]) +
					cells[0]*((dstLo[1]+y-lo[1])+cells[1]*(dstLo[2]+z-lo[2]))
				material[dst] = g.material[x+g.cells[0]*(y+g.cells[1]*z)]
			}
		}
	}

	sp := g.spacing()
	size := [3]float64{
		sp[0] * float64(cells[0]),
		sp[1] * float64(cells[1]),
		sp[2] * float64(cells[2]),
	}
	origin := [3]float64{
		g.origin[0] + float64(offset[0])*sp[0],
		g.origin[1] + float64(offset[1])*sp[1],
		g.origin[2] + float64(offset[2])*sp[2],
	}
	return g.derived(material, cells, size, origin, "Canvas"), nil
}

// Substitute replaces material indices, mapping from[i] to to[i].
// Matches are taken against the original array, so the substitutions
// do not chain.
func (g *Grid) Substitute(from, to []int32) (*Grid, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d source and %d target materials", ErrShape, len(from), len(to))
	}
	mapping := make(map[int32]int32, len(from))
	for i, f := range from {
		mapping[f] = to[i]
	}
	material := make([]int32, len(g.material))
	for i, m := range g.material {
		if t, ok := mapping[m]; ok {
			material[i] = t
		} else {
			material[i] = m
		}
	}
	return g.derived(material, g.cells, g.size, g.origin, "Substitute"), nil
}

// Sort relabels materials so that IDs increase in the order values
// first appear in the flat array: the value at the origin voxel becomes
// the smallest ID. The set of material values is preserved.
func (g *Grid) Sort() *Grid {
	var appearance []int32
	seen := make(map[int32]struct{})
	for _, m := range g.material {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			appearance = append(appearance, m)
		}
	}
	sorted := make([]int32, len(appearance))
	copy(sorted, appearance)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mapping := make(map[int32]int32, len(appearance))
	for r, f := range appearance {
		mapping[f] = sorted[r]
	}
	material := make([]int32, len(g.material))
	for i, m := range g.material {
		material[i] = mapping[m]
	}
	return g.derived(material, g.cells, g.size, g.origin, "Sort")
}

// Renumber relabels materials to the dense range 0..N-1, preserving
// their relative order.
func (g *Grid) Renumber() *Grid {
	unique := uniqueSorted(g.material)
	mapping := make(map[int32]int32, len(unique))
	for r, u := range unique {
		mapping[u] = int32(r)
	}
	material := make([]int32, len(g.material))
	for i, m := range g.material {
		material[i] = mapping[m]
	}
	return g.derived(material, g.cells, g.size, g.origin, "Renumber")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package grid

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// neighborhood iterates a cubic window of edge length w centered on
// (x, y, z), wrapping indices around the box when periodic and clamping
// them to the boundary otherwise.
func (g *Grid) neighborhood(x, y, z, w int, periodic bool, visit func(m int32)) {
	half := w / 2
	wrap := func(i, n int) int {
		if periodic {
			return ((i % n) + n) % n
		}
		return clampInt(i, 0, n-1)
	}
	for dz := -half; dz < w-half; dz++ {
		oz := wrap(z+dz, g.cells[2])
		for dy := -half; dy < w-half; dy++ {
			oy := wrap(y+dy, g.cells[1])
			base := g.cells[0] * (oy + g.cells[1]*oz)
			for dx := -half; dx < w-half; dx++ {
				visit(g.material[wrap(x+dx, g.cells[0])+base])
			}
		}
	}
}

// Clean smooths the microstructure by assigning each cell the most
// frequent material within a cubic stencil window; ties go to the
// smallest value. When selection is non-nil only cells currently
// holding one of the selected materials may change, and the window is
// forced to odd edge length. Slabs along z are processed in parallel.
func (g *Grid) Clean(stencil int, selection []int32, periodic bool) (*Grid, error) {
	if stencil < 1 {
		return nil, fmt.Errorf("%w: stencil size %d", ErrShape, stencil)
	}
	w := stencil
	var selected map[int32]struct{}
	if selection != nil {
		w = stencil/2*2 + 1
		selected = make(map[int32]struct{}, len(selection))
		for _, s := range selection {
			selected[s] = struct{}{}
		}
	}

	material := make([]int32, len(g.material))
	parallel.Line(g.cells[2], func(start, end int) {
		counts := make(map[int32]int, w*w*w)
		for z := start; z < end; z++ {
			for y := 0; y < g.cells[1]; y++ {
				for x := 0; x < g.cells[0]; x++ {
					i := x + g.cells[0]*(y+g.cells[1]*z)
					me := g.material[i]
					if selected != nil {
						if _, ok := selected[me]; !ok {
							material[i] = me
							continue
						}
					}
					clear(counts)
					g.neighborhood(x, y, z, w, periodic, func(m int32) {
						counts[m]++
					})
					best, bestN := me, -1
					for m, n := range counts {
						if n > bestN || (n == bestN && m < best) {
							best, bestN = m, n
						}
					}
					material[i] = best
				}
			}
		}
	})
	return g.derived(material, g.cells, g.size, g.origin, "Clean"), nil
}

// VicinityOffset offsets the material index of every cell whose
// neighborhood is tainted. With an empty trigger list a cell is tainted
// by any neighbor holding a different material; otherwise only by
// neighbors holding a trigger material other than its own. The window
// edge length is 1+2*vicinity and offset defaults to the largest
// material index plus one.
func (g *Grid) VicinityOffset(vicinity int, offset *int32, trigger []int32, periodic bool) (*Grid, error) {
	if vicinity < 0 {
		return nil, fmt.Errorf("%w: vicinity %d", ErrShape, vicinity)
	}
	off := g.MaxMaterial() + 1
	if offset != nil {
		off = *offset
	}
	triggers := make(map[int32]struct{}, len(trigger))
	for _, t := range trigger {
		triggers[t] = struct{}{}
	}

	w := 1 + 2*vicinity
	material := make([]int32, len(g.material))
	parallel.Line(g.cells[2], func(start, end int) {
		for z := start; z < end; z++ {
			for y := 0; y < g.cells[1]; y++ {
				for x := 0; x < g.cells[0]; x++ {
					i := x + g.cells[0]*(y+g.cells[1]*z)
					me := g.material[i]
					tainted := false
					g.neighborhood(x, y, z, w, periodic, func(m int32) {
						if tainted {
							return
						}
						if len(triggers) == 0 {
							tainted = m != me
							return
						}
						if _, ok := triggers[m]; ok && m != me {
							tainted = true
						}
					})
					if tainted {
						material[i] = me + off
					} else {
						material[i] = me
					}
				}
			}
		}
	})
	return g.derived(material, g.cells, g.size, g.origin, "VicinityOffset"), nil
}

package grid

import (
	"github.com/grainforge/microgrid/mesh"
)

// GrainBoundaries extracts the grain boundary network as a quad mesh
// on the node lattice. A face is part of the network when the two
// cells sharing it along one of the given directions (all three when
// dirs is nil) hold different materials. With periodic, faces wrapping
// around the box are included; otherwise the outer box faces never
// count as boundaries.
func (g *Grid) GrainBoundaries(periodic bool, dirs []Direction) (*mesh.Quads, error) {
	if dirs == nil {
		dirs = []Direction{DirX, DirY, DirZ}
	} else if len(dirs) == 0 {
		return nil, ErrDirection
	}
	want := [3]bool{}
	for _, d := range dirs {
		want[d] = true
	}

	npx := g.cells[0] + 1
	npy := g.cells[1] + 1
	npz := g.cells[2] + 1
	npxy := npx * npy

	// Quad node offsets relative to the face's base node, one row per
	// face normal.
	offsets := [3][4]int{
		{0, npx, npxy + npx, npxy},
		{0, npxy, npxy + 1, 1},
		{0, 1, npx + 1, npx},
	}

	var quads [][4]int
	for i := 0; i < 3; i++ {
		if !want[i] {
			continue
		}
		for pz := 0; pz < npz; pz++ {
			for py := 0; py < npy; py++ {
				for px := 0; px < npx; px++ {
					p := [3]int{px, py, pz}
					if !periodic && (p[i] == 0 || p[i] == g.cells[i]) {
						continue
					}
					q := p
					if q[i] == g.cells[i] {
						q[i] = 0
					}
					skip := false
					for j := 0; j < 3; j++ {
						if j != i && q[j] >= g.cells[j] {
							skip = true
							break
						}
					}
					if skip {
						continue
					}
					r := q
					r[i] = (q[i] - 1 + g.cells[i]) % g.cells[i]
					if g.At(q[0], q[1], q[2]) == g.At(r[0], r[1], r[2]) {
						continue
					}
					base := px + npx*(py+npy*pz)
					quads = append(quads, [4]int{
						base + offsets[i][0],
						base + offsets[i][1],
						base + offsets[i][2],
						base + offsets[i][3],
					})
				}
			}
		}
	}

	sp := g.spacing()
	points := make([][3]float64, npx*npy*npz)
	n := 0
	for pz := 0; pz < npz; pz++ {
		for py := 0; py < npy; py++ {
			for px := 0; px < npx; px++ {
				points[n] = [3]float64{
					float64(px)*sp[0] + g.origin[0],
					float64(py)*sp[1] + g.origin[1],
					float64(pz)*sp[2] + g.origin[2],
				}
				n++
			}
		}
	}
	return &mesh.Quads{Points: points, Cells: quads}, nil
}

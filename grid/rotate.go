package grid

import "math"

// Rotate rotates the microstructure by r, applied as three sequential
// in-plane rotations following the Bunge angle decomposition. The cell
// array grows to hold the rotated bounding box, with uncovered cells
// set to fill (largest material index plus one when nil). Plane
// rotations whose bounding box keeps the cell count are applied as
// exact quarter-turns to avoid resampling error. The origin shifts so
// the box stays centered on the original volume.
func (g *Grid) Rotate(r Rotation, fill *int32) *Grid {
	f := g.MaxMaterial() + 1
	if fill != nil {
		f = *fill
	}

	phi1, capPhi, phi2 := r.EulerAngles()
	angles := [3]float64{phi2, capPhi, phi1}
	planes := [3][2]int{{0, 1}, {1, 2}, {0, 1}}

	material, cells := g.material, g.cells
	for step := 0; step < 3; step++ {
		material, cells = rotatePlane(material, cells, angles[step], planes[step], f)
	}

	sp := g.spacing()
	size := [3]float64{
		sp[0] * float64(cells[0]),
		sp[1] * float64(cells[1]),
		sp[2] * float64(cells[2]),
	}
	origin := [3]float64{
		g.origin[0] - float64(cells[0]-g.cells[0])*0.5*sp[0],
		g.origin[1] - float64(cells[1]-g.cells[1])*0.5*sp[1],
		g.origin[2] - float64(cells[2]-g.cells[2])*0.5*sp[2],
	}
	return g.derived(material, cells, size, origin, "Rotate")
}

// rotatePlane rotates the array by angle degrees in the plane spanned
// by axes[0] and axes[1], expanding the two plane dimensions to the
// rotated bounding box.
func rotatePlane(material []int32, cells [3]int, angle float64, axes [2]int, fill int32) ([]int32, [3]int) {
	a, b := axes[0], axes[1]
	na, nb := cells[a], cells[b]
	s, c := math.Sincos(angle * math.Pi / 180.0)

	naOut := int(math.Abs(float64(na)*c) + math.Abs(float64(nb)*s) + 0.5)
	nbOut := int(math.Abs(float64(na)*s) + math.Abs(float64(nb)*c) + 0.5)

	if naOut*nbOut == na*nb {
		k := int(math.RoundToEven(angle / 90.0))
		return rot90(material, cells, k, axes)
	}

	outCells := cells
	outCells[a], outCells[b] = naOut, nbOut
	out := make([]int32, outCells[0]*outCells[1]*outCells[2])

	inCenterA, inCenterB := float64(na-1)/2, float64(nb-1)/2
	outCenterA, outCenterB := float64(naOut-1)/2, float64(nbOut-1)/2
	for i := range out {
		var pos [3]int
		pos[0], pos[1], pos[2] = splitIndex(outCells, i)
		du := float64(pos[a]) - outCenterA
		dv := float64(pos[b]) - outCenterB
		ia := int(math.Round(c*du + s*dv + inCenterA))
		ib := int(math.Round(-s*du + c*dv + inCenterB))
		if ia < 0 || ia >= na || ib < 0 || ib >= nb {
			out[i] = fill
			continue
		}
		pos[a], pos[b] = ia, ib
		out[i] = material[pos[0]+cells[0]*(pos[1]+cells[1]*pos[2])]
	}
	return out, outCells
}

// rot90 rotates the array by k quarter-turns from axes[0] towards
// axes[1].
func rot90(material []int32, cells [3]int, k int, axes [2]int) ([]int32, [3]int) {
	k = ((k % 4) + 4) % 4
	if k == 0 {
		out := make([]int32, len(material))
		copy(out, material)
		return out, cells
	}

	a, b := axes[0], axes[1]
	na, nb := cells[a], cells[b]
	outCells := cells
	if k != 2 {
		outCells[a], outCells[b] = nb, na
	}
	out := make([]int32, len(material))
	for i := range out {
		var pos [3]int
		pos[0], pos[1], pos[2] = splitIndex(outCells, i)
		ia, ib := pos[a], pos[b]
		switch k {
		case 1:
			pos[a], pos[b] = ib, nb-1-ia
		case 2:
			pos[a], pos[b] = na-1-ia, nb-1-ib
		case 3:
			pos[a], pos[b] = na-1-ib, ia
		}
		out[i] = material[pos[0]+cells[0]*(pos[1]+cells[1]*pos[2])]
	}
	return out, outCells
}

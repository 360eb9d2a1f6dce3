package grid

import (
	"fmt"
	"sort"

	"github.com/grainforge/microgrid/internal/provenance"
)

// Table provides columnar access to tabular point data. Get returns
// the rows of a (possibly multi-column) labeled column set.
type Table interface {
	Get(label string) ([][]float64, error)
}

// FromTable builds a grid from regularly gridded point data. The
// coordinates label must hold one 3D cell-center point per row in
// x-fastest order on a uniform lattice; cells, size, and origin are
// derived from it. Rows with identical values across all label columns
// share a material index, assigned densely in order of first
// appearance.
func FromTable(tab Table, coordinates string, labels []string) (*Grid, error) {
	points, err := tab.Get(coordinates)
	if err != nil {
		return nil, err
	}
	cells, size, origin, err := pointGeometry(points)
	if err != nil {
		return nil, err
	}

	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no labels given", ErrShape)
	}
	rows := make([][]float64, len(points))
	for _, l := range labels {
		col, err := tab.Get(l)
		if err != nil {
			return nil, err
		}
		if len(col) != len(points) {
			return nil, fmt.Errorf("%w: label %q has %d rows, coordinates have %d",
				ErrShape, l, len(col), len(points))
		}
		for i := range rows {
			rows[i] = append(rows[i], col[i]...)
		}
	}

	material := denseIDs(rows)

	return &Grid{
		material: material,
		cells:    cells,
		size:     size,
		origin:   origin,
		comments: []string{provenance.Stamp("Grid", "FromTable")},
	}, nil
}

// denseIDs assigns one material index per distinct row, densely in
// order of first appearance.
func denseIDs(rows [][]float64) []int32 {
	material := make([]int32, len(rows))
	var next int32
	ids := make(map[string]int32)
	for i, row := range rows {
		key := fmt.Sprint(row)
		id, ok := ids[key]
		if !ok {
			id = next
			ids[key] = id
			next++
		}
		material[i] = id
	}
	return material
}

// pointGeometry derives cells, size, and origin from ordered
// cell-center coordinates. Axes holding a single coordinate value get
// a box stretching from zero to twice that value.
func pointGeometry(points [][]float64) (cells [3]int, size, origin [3]float64, err error) {
	if len(points) == 0 {
		return cells, size, origin, fmt.Errorf("%w: no coordinates", ErrShape)
	}
	for a := 0; a < 3; a++ {
		seen := make(map[float64]struct{})
		for _, p := range points {
			if len(p) != 3 {
				return cells, size, origin, fmt.Errorf("%w: coordinate row of length %d", ErrShape, len(p))
			}
			seen[p[a]] = struct{}{}
		}
		coords := make([]float64, 0, len(seen))
		for c := range seen {
			coords = append(coords, c)
		}
		sort.Float64s(coords)

		n := len(coords)
		cells[a] = n
		if n == 1 {
			size[a] = 2 * coords[0]
			origin[a] = 0
			continue
		}
		spacing := (coords[n-1] - coords[0]) / float64(n-1)
		size[a] = spacing * float64(n)
		origin[a] = coords[0] - spacing/2
	}
	if want := cells[0] * cells[1] * cells[2]; len(points) != want {
		return cells, size, origin, fmt.Errorf("%w: %d coordinates for %v cells (want %d)",
			ErrShape, len(points), cells, want)
	}

	// Ordering check: every point must sit on its lattice position.
	for i, p := range points {
		x, y, z := splitIndex(cells, i)
		want := cellCenter(cells, size, origin, x, y, z)
		for a := 0; a < 3; a++ {
			if !approx(p[a], want[a]) {
				return cells, size, origin, fmt.Errorf("%w: coordinates not in x-fastest order on a uniform lattice", ErrShape)
			}
		}
	}
	return cells, size, origin, nil
}

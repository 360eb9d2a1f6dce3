package mesh

import "fmt"

// Quads is an unstructured mesh of quadrilateral faces over a shared
// vertex list. Cells index into Points.
type Quads struct {
	Points [][3]float64
	Cells  [][4]int
}

// NumPoints returns the number of vertices.
func (q *Quads) NumPoints() int { return len(q.Points) }

// NumCells returns the number of quad faces.
func (q *Quads) NumCells() int { return len(q.Cells) }

// Validate checks that every connectivity entry references an existing
// vertex.
func (q *Quads) Validate() error {
	for i, cell := range q.Cells {
		for _, n := range cell {
			if n < 0 || n >= len(q.Points) {
				return fmt.Errorf("quad %d references vertex %d outside [0,%d)", i, n, len(q.Points))
			}
		}
	}
	return nil
}

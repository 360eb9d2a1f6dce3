package grid

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/grainforge/microgrid/internal/provenance"
)

// TessellationOptions tunes the cell assignment loop of the
// tessellation factories. Workers defaults to GOMAXPROCS. Progress, if
// set, is called periodically with the number of assigned cells; it
// must be safe for concurrent use. Neither option affects the result.
type TessellationOptions struct {
	Workers  int
	Progress func(done, total int)
}

// progressBatch is the number of cells assigned between Progress calls
// within a worker.
const progressBatch = 1024

func (o TessellationOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// assignCells fills material[i] for every cell index by calling pick
// with the cell center, distributing contiguous index ranges over a
// worker pool.
func assignCells(material []int32, cells [3]int, size [3]float64, opts TessellationOptions, pick func(p [3]float64) int32) {
	total := len(material)
	workers := opts.workers()
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	var done atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, total)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			pending := 0
			for i := start; i < end; i++ {
				x, y, z := splitIndex(cells, i)
				material[i] = pick(cellCenter(cells, size, [3]float64{}, x, y, z))
				if pending++; opts.Progress != nil && pending == progressBatch {
					opts.Progress(int(done.Add(int64(pending))), total)
					pending = 0
				}
			}
			if opts.Progress != nil && pending > 0 {
				opts.Progress(int(done.Add(int64(pending))), total)
			}
		}(start, end)
	}
	wg.Wait()
}

// seedPoint is a tessellation seed in the kd-tree, tagged with the
// index of the seed it replicates.
type seedPoint struct {
	pos [3]float64
	id  int32
}

func (p seedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(seedPoint)
	return p.pos[d] - q.pos[d]
}

func (p seedPoint) Dims() int { return 3 }

func (p seedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(seedPoint)
	var sum float64
	for k := 0; k < 3; k++ {
		d := p.pos[k] - q.pos[k]
		sum += d * d
	}
	return sum
}

type seedPoints []seedPoint

func (p seedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p seedPoints) Len() int                      { return len(p) }
func (p seedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p seedPoints) Pivot(d kdtree.Dim) int {
	return seedPlane{Dim: d, seedPoints: p}.pivot()
}

// seedPlane sorts seedPoints along a single dimension for tree
// construction.
type seedPlane struct {
	kdtree.Dim
	seedPoints
}

func (p seedPlane) Less(i, j int) bool {
	return p.seedPoints[i].pos[p.Dim] < p.seedPoints[j].pos[p.Dim]
}
func (p seedPlane) Slice(start, end int) kdtree.SortSlicer {
	p.seedPoints = p.seedPoints[start:end]
	return p
}
func (p seedPlane) Swap(i, j int) {
	p.seedPoints[i], p.seedPoints[j] = p.seedPoints[j], p.seedPoints[i]
}
func (p seedPlane) pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// replicate tiles the seeds over the 3x3x3 neighborhood of the box so
// that nearest-seed queries see periodic images. Each image keeps the
// index of its original seed.
func replicate(seeds [][3]float64, size [3]float64) []seedPoint {
	out := make([]seedPoint, 0, 27*len(seeds))
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for i, s := range seeds {
					out = append(out, seedPoint{
						pos: [3]float64{
							s[0] + float64(dx)*size[0],
							s[1] + float64(dy)*size[1],
							s[2] + float64(dz)*size[2],
						},
						id: int32(i),
					})
				}
			}
		}
	}
	return out
}

func seedMaterial(seeds [][3]float64, material []int32) ([]int32, error) {
	if material == nil {
		material = make([]int32, len(seeds))
		for i := range material {
			material[i] = int32(i)
		}
		return material, nil
	}
	if len(material) != len(seeds) {
		return nil, fmt.Errorf("%w: %d materials for %d seeds", ErrShape, len(material), len(seeds))
	}
	return material, nil
}

// FromVoronoiTessellation builds a grid by assigning every cell the
// material of its nearest seed. material maps seeds to material
// indices and defaults to the seed index. With periodic, distances are
// measured on the torus spanned by size.
func FromVoronoiTessellation(cells [3]int, size [3]float64, seeds [][3]float64, material []int32, periodic bool, opts TessellationOptions) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds", ErrShape)
	}
	material, err := seedMaterial(seeds, material)
	if err != nil {
		return nil, err
	}

	var points seedPoints
	if periodic {
		points = replicate(seeds, size)
	} else {
		points = make(seedPoints, len(seeds))
		for i, s := range seeds {
			points[i] = seedPoint{pos: s, id: int32(i)}
		}
	}
	tree := kdtree.New(points, false)

	out := make([]int32, cells[0]*cells[1]*cells[2])
	assignCells(out, cells, size, opts, func(p [3]float64) int32 {
		got, _ := tree.Nearest(seedPoint{pos: p})
		return material[got.(seedPoint).id]
	})

	return &Grid{
		material: out,
		cells:    cells,
		size:     size,
		comments: []string{provenance.Stamp("Grid", "FromVoronoiTessellation")},
	}, nil
}

// FromLaguerreTessellation builds a grid by assigning every cell the
// material of the seed with the smallest power distance, squared
// Euclidean distance minus the seed's weight. Heavier seeds claim
// larger cells. Evaluation is exhaustive over all seeds (replicated
// for periodic boxes), so large seed counts are markedly slower than
// the Voronoi factory.
func FromLaguerreTessellation(cells [3]int, size [3]float64, seeds [][3]float64, weights []float64, material []int32, periodic bool, opts TessellationOptions) (*Grid, error) {
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: cells %v", ErrShape, cells)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds", ErrShape)
	}
	if len(weights) != len(seeds) {
		return nil, fmt.Errorf("%w: %d weights for %d seeds", ErrShape, len(weights), len(seeds))
	}
	material, err := seedMaterial(seeds, material)
	if err != nil {
		return nil, err
	}

	var points []seedPoint
	if periodic {
		points = replicate(seeds, size)
	} else {
		points = make([]seedPoint, len(seeds))
		for i, s := range seeds {
			points[i] = seedPoint{pos: s, id: int32(i)}
		}
	}

	out := make([]int32, cells[0]*cells[1]*cells[2])
	assignCells(out, cells, size, opts, func(p [3]float64) int32 {
		best := int32(0)
		bestDist := 0.0
		for i, s := range points {
			var d float64
			for k := 0; k < 3; k++ {
				dk := p[k] - s.pos[k]
				d += dk * dk
			}
			d -= weights[s.id]
			if i == 0 || d < bestDist {
				best, bestDist = s.id, d
			}
		}
		return material[best]
	})

	return &Grid{
		material: out,
		cells:    cells,
		size:     size,
		comments: []string{provenance.Stamp("Grid", "FromLaguerreTessellation")},
	}, nil
}

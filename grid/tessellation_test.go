package grid

import (
	"errors"
	"sync"
	"testing"
)

func TestFromVoronoiTessellation(t *testing.T) {
	cells := [3]int{4, 1, 1}
	size := [3]float64{4, 1, 1}
	seeds := [][3]float64{{1, 0.5, 0.5}, {3, 0.5, 0.5}}

	t.Run("nearest seed wins", func(t *testing.T) {
		g, err := FromVoronoiTessellation(cells, size, seeds, nil, false, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		want := []int32{0, 0, 1, 1}
		got := g.Material()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("material = %v, want %v", got, want)
			}
		}
	})

	t.Run("seed materials", func(t *testing.T) {
		g, err := FromVoronoiTessellation(cells, size, seeds, []int32{5, 9}, false, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		want := []int32{5, 5, 9, 9}
		got := g.Material()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("material = %v, want %v", got, want)
			}
		}
	})

	t.Run("periodic wrap", func(t *testing.T) {
		// A single seed near the upper box face claims the lowest cell
		// through the periodic image.
		g, err := FromVoronoiTessellation(cells, size, [][3]float64{{3.9, 0.5, 0.5}}, nil, true, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if g.NumMaterials() != 1 {
			t.Errorf("NumMaterials() = %d, want 1", g.NumMaterials())
		}
	})

	t.Run("independent of worker count", func(t *testing.T) {
		var grids []*Grid
		for _, workers := range []int{1, 3, 16} {
			g, err := FromVoronoiTessellation([3]int{8, 8, 8}, [3]float64{1, 1, 1},
				[][3]float64{{0.1, 0.2, 0.3}, {0.8, 0.5, 0.2}, {0.4, 0.9, 0.7}},
				nil, true, TessellationOptions{Workers: workers})
			if err != nil {
				t.Fatal(err)
			}
			grids = append(grids, g)
		}
		for _, g := range grids[1:] {
			if !g.Equal(grids[0]) {
				t.Fatal("tessellation depends on worker count")
			}
		}
	})

	t.Run("progress reaches total", func(t *testing.T) {
		var mu sync.Mutex
		last, total := 0, 0
		_, err := FromVoronoiTessellation(cells, size, seeds, nil, false, TessellationOptions{
			Workers: 2,
			Progress: func(done, n int) {
				mu.Lock()
				if done > last {
					last = done
				}
				total = n
				mu.Unlock()
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if last != 4 || total != 4 {
			t.Errorf("progress ended at %d/%d, want 4/4", last, total)
		}
	})

	t.Run("progress is incremental", func(t *testing.T) {
		// A single worker on a grid spanning several batches must report
		// more than once, with monotonically growing counts.
		calls, last := 0, 0
		_, err := FromVoronoiTessellation([3]int{32, 16, 8}, [3]float64{1, 1, 1},
			[][3]float64{{0.5, 0.5, 0.5}}, nil, false, TessellationOptions{
				Workers: 1,
				Progress: func(done, n int) {
					calls++
					if done <= last {
						t.Errorf("progress went from %d to %d", last, done)
					}
					last = done
					if n != 32*16*8 {
						t.Errorf("total = %d, want %d", n, 32*16*8)
					}
				},
			})
		if err != nil {
			t.Fatal(err)
		}
		if calls < 2 {
			t.Errorf("progress reported %d times, want several", calls)
		}
		if last != 32*16*8 {
			t.Errorf("final count %d, want %d", last, 32*16*8)
		}
	})

	t.Run("validation", func(t *testing.T) {
		if _, err := FromVoronoiTessellation(cells, size, nil, nil, false, TessellationOptions{}); !errors.Is(err, ErrShape) {
			t.Errorf("no seeds: got %v, want ErrShape", err)
		}
		if _, err := FromVoronoiTessellation(cells, size, seeds, []int32{1}, false, TessellationOptions{}); !errors.Is(err, ErrShape) {
			t.Errorf("material length mismatch: got %v, want ErrShape", err)
		}
	})
}

func TestFromLaguerreTessellation(t *testing.T) {
	cells := [3]int{4, 1, 1}
	size := [3]float64{4, 1, 1}
	seeds := [][3]float64{{1, 0.5, 0.5}, {3, 0.5, 0.5}}

	t.Run("zero weights match Voronoi", func(t *testing.T) {
		v, err := FromVoronoiTessellation([3]int{6, 6, 6}, [3]float64{1, 1, 1},
			[][3]float64{{0.1, 0.2, 0.3}, {0.8, 0.5, 0.2}, {0.4, 0.9, 0.7}},
			nil, true, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		l, err := FromLaguerreTessellation([3]int{6, 6, 6}, [3]float64{1, 1, 1},
			[][3]float64{{0.1, 0.2, 0.3}, {0.8, 0.5, 0.2}, {0.4, 0.9, 0.7}},
			[]float64{0, 0, 0}, nil, true, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if !l.Equal(v) {
			t.Error("unweighted Laguerre differs from Voronoi")
		}
	})

	t.Run("heavy seed claims all", func(t *testing.T) {
		g, err := FromLaguerreTessellation(cells, size, seeds, []float64{0, 100}, nil, false, TessellationOptions{})
		if err != nil {
			t.Fatal(err)
		}
		for i, m := range g.Material() {
			if m != 1 {
				t.Fatalf("cell %d = %d, want 1", i, m)
			}
		}
	})

	t.Run("weights length mismatch", func(t *testing.T) {
		if _, err := FromLaguerreTessellation(cells, size, seeds, []float64{1}, nil, false, TessellationOptions{}); !errors.Is(err, ErrShape) {
			t.Errorf("got %v, want ErrShape", err)
		}
	})
}

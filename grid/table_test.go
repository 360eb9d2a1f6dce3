package grid

import (
	"errors"
	"fmt"
	"testing"
)

// memTable is a columnar in-memory Table.
type memTable map[string][][]float64

func (m memTable) Get(label string) ([][]float64, error) {
	col, ok := m[label]
	if !ok {
		return nil, fmt.Errorf("label %q not found", label)
	}
	return col, nil
}

func TestFromTable(t *testing.T) {
	// 2x2x1 cell centers in x-fastest order, spacing 0.5 in x and y.
	coords := [][]float64{
		{0.25, 0.25, 0.5},
		{0.75, 0.25, 0.5},
		{0.25, 0.75, 0.5},
		{0.75, 0.75, 0.5},
	}

	t.Run("geometry and dense ids", func(t *testing.T) {
		tab := memTable{
			"pos":   coords,
			"phase": {{9}, {9}, {4}, {4}},
		}
		g, err := FromTable(tab, "pos", []string{"phase"})
		if err != nil {
			t.Fatal(err)
		}
		if g.Cells() != [3]int{2, 2, 1} {
			t.Fatalf("Cells() = %v, want [2 2 1]", g.Cells())
		}
		if g.Size() != [3]float64{1, 1, 1} {
			t.Errorf("Size() = %v, want [1 1 1]", g.Size())
		}
		if g.Origin() != [3]float64{0, 0, 0} {
			t.Errorf("Origin() = %v, want zero", g.Origin())
		}
		want := []int32{0, 0, 1, 1}
		got := g.Material()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("material = %v, want %v", got, want)
			}
		}
	})

	t.Run("multiple labels combine", func(t *testing.T) {
		tab := memTable{
			"pos":   coords,
			"phase": {{1}, {1}, {1}, {1}},
			"ori":   {{0, 0}, {0, 1}, {0, 0}, {0, 1}},
		}
		g, err := FromTable(tab, "pos", []string{"phase", "ori"})
		if err != nil {
			t.Fatal(err)
		}
		want := []int32{0, 1, 0, 1}
		got := g.Material()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("material = %v, want %v", got, want)
			}
		}
	})

	t.Run("row count mismatch", func(t *testing.T) {
		tab := memTable{
			"pos":   coords,
			"phase": {{1}, {1}},
		}
		if _, err := FromTable(tab, "pos", []string{"phase"}); !errors.Is(err, ErrShape) {
			t.Errorf("got %v, want ErrShape", err)
		}
	})

	t.Run("irregular coordinates", func(t *testing.T) {
		bad := make([][]float64, len(coords))
		copy(bad, coords)
		bad[0], bad[1] = bad[1], bad[0] // breaks x-fastest ordering
		tab := memTable{
			"pos":   bad,
			"phase": {{1}, {1}, {1}, {1}},
		}
		if _, err := FromTable(tab, "pos", []string{"phase"}); !errors.Is(err, ErrShape) {
			t.Errorf("got %v, want ErrShape", err)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		tab := memTable{"pos": coords}
		if _, err := FromTable(tab, "pos", []string{"missing"}); err == nil {
			t.Error("want error for unknown label")
		}
	})
}

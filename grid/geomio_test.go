package grid

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGeomRoundTrip(t *testing.T) {
	material := []int32{0, 1, 1, 2, 2, 2, 0, 1}
	g, err := New(material, [3]int{2, 2, 2}, [3]float64{1e-5, 1e-5, 2e-5}, [3]float64{0, 0, 1e-6}, []string{"synthetic bicrystal"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := g.SaveGeom(&buf); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadGeom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(g) {
		t.Error("geom round trip changed the grid")
	}
	if c := loaded.Comments(); len(c) == 0 || c[0] != "synthetic bicrystal" {
		t.Errorf("Comments() = %v, want the original comment first", c)
	}
}

func TestLoadGeom(t *testing.T) {
	t.Run("run compression", func(t *testing.T) {
		input := `4 header
some comment
grid   a 6 b 1 c 1
size   x 6 y 1 z 1
origin x 0 y 0 z 0
2 of 0
1 to 3 # inline comment
0
`
		g, err := LoadGeom(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		want := []int32{0, 0, 1, 2, 3, 0}
		got := g.Material()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("material = %v, want %v", got, want)
			}
		}
	})

	t.Run("one-based indices shift down", func(t *testing.T) {
		input := `3 header
grid   a 2 b 1 c 1
size   x 2 y 1 z 1
origin x 0 y 0 z 0
1 2
`
		g, err := LoadGeom(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Material(); got[0] != 0 || got[1] != 1 {
			t.Errorf("material = %v, want [0 1]", got)
		}
	})

	t.Run("descending range", func(t *testing.T) {
		input := `3 header
grid   a 3 b 1 c 1
size   x 3 y 1 z 1
origin x 0 y 0 z 0
3 to 1
`
		g, err := LoadGeom(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Material(); got[0] != 2 || got[1] != 1 || got[2] != 0 {
			t.Errorf("material = %v, want [2 1 0]", got)
		}
	})

	t.Run("format errors", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"empty", ""},
			{"missing header keyword", "4 lines\n"},
			{"short header", "2 header\ngrid a 1 b 1 c 1\nsize x 1 y 1 z 1\n1\n"},
			{"missing size", "3 header\ngrid a 1 b 1 c 1\nnote\nnote\n0\n"},
			{"entry count mismatch", "3 header\ngrid a 2 b 1 c 1\nsize x 2 y 1 z 1\norigin x 0 y 0 z 0\n0 1 0\n"},
			{"non-integer material", "3 header\ngrid a 1 b 1 c 1\nsize x 1 y 1 z 1\norigin x 0 y 0 z 0\n0.5\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := LoadGeom(strings.NewReader(tt.input)); !errors.Is(err, ErrFormat) {
					t.Errorf("got %v, want ErrFormat", err)
				}
			})
		}
	})
}

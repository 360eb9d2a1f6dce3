package colormap

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/grainforge/microgrid/internal/provenance"
)

// paraviewEntry is the JSON shape Paraview expects for an imported
// colormap definition.
type paraviewEntry struct {
	Creator    string    `json:"Creator"`
	ColorSpace string    `json:"ColorSpace"`
	Name       string    `json:"Name"`
	DefaultMap bool      `json:"DefaultMap"`
	RGBPoints  []float64 `json:"RGBPoints"`
}

// SaveParaview writes the colormap as a Paraview JSON definition: a flat
// RGBPoints list of (index, R, G, B) tuples with colors rounded to six
// decimals.
func (c Colormap) SaveParaview(w io.Writer) error {
	points := make([]float64, 0, 4*len(c.colors))
	for i, col := range c.colors {
		points = append(points, float64(i),
			round6(col[0]), round6(col[1]), round6(col[2]))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode([]paraviewEntry{{
		Creator:    provenance.Stamp("Colormap", ""),
		ColorSpace: "RGB",
		Name:       c.Name,
		DefaultMap: true,
		RGBPoints:  points,
	}}); err != nil {
		return fmt.Errorf("save paraview colormap: %w", err)
	}
	return nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// SaveASCII writes the colormap as a plain RGB table with a creator
// comment line.
func (c Colormap) SaveASCII(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Creator: %s\n", provenance.Stamp("Colormap", ""))
	b.WriteString("1_RGB 2_RGB 3_RGB\n")
	for _, col := range c.colors {
		fmt.Fprintf(&b, "%g %g %g\n", col[0], col[1], col[2])
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("save ASCII colormap: %w", err)
	}
	return nil
}

// SaveGOM writes the colormap in the legend format of GOM Aramis. Colors
// are emitted in reverse order as 8-bit integers.
func (c Colormap) SaveGOM(w io.Writer) error {
	name := strings.ReplaceAll(c.Name, " ", "_")
	var b strings.Builder
	fmt.Fprintf(&b, "1 1 %s 9 %s ", name, name)
	b.WriteString("0 1 0 3 0 0 -1 9 \\ 0 0 0 255 255 255 0 0 255 ")
	fmt.Fprintf(&b, "30 NO_UNIT 1 1 64 64 64 255 1 0 0 0 0 0 0 3 0 %d", len(c.colors))
	// Each entry carries its own leading space; joining adds a second
	// one between consecutive entries.
	entries := make([]string, 0, len(c.colors))
	for i := len(c.colors) - 1; i >= 0; i-- {
		col := c.colors[i]
		entries = append(entries, fmt.Sprintf(" 0 %d %d %d 255 1",
			int(col[0]*255), int(col[1]*255), int(col[2]*255)))
	}
	b.WriteString(strings.Join(entries, " "))
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("save GOM colormap: %w", err)
	}
	return nil
}

// SaveGmsh writes the colormap as a gmsh color table.
func (c Colormap) SaveGmsh(w io.Writer) error {
	var b strings.Builder
	b.WriteString("View.ColorTable = {\n")
	for i, col := range c.colors {
		fmt.Fprintf(&b, "%g,%g,%g,", col[0]*255, col[1]*255, col[2]*255)
		if i < len(c.colors)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("save gmsh colormap: %w", err)
	}
	return nil
}

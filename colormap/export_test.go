package colormap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/grainforge/microgrid/colorspace"
)

func TestSaveParaview(t *testing.T) {
	c := mustFromRange(t, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}, colorspace.RGB, "blue_to_black", 4)

	var buf bytes.Buffer
	if err := c.SaveParaview(&buf); err != nil {
		t.Fatalf("SaveParaview: %v", err)
	}

	var out []struct {
		Creator    string    `json:"Creator"`
		ColorSpace string    `json:"ColorSpace"`
		Name       string    `json:"Name"`
		DefaultMap bool      `json:"DefaultMap"`
		RGBPoints  []float64 `json:"RGBPoints"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1", len(out))
	}
	e := out[0]
	if e.ColorSpace != "RGB" || e.Name != "blue_to_black" || !e.DefaultMap {
		t.Errorf("header fields: %+v", e)
	}
	if !strings.Contains(e.Creator, "microgrid.Colormap") {
		t.Errorf("creator stamp: %q", e.Creator)
	}
	if len(e.RGBPoints) != 4*4 {
		t.Fatalf("RGBPoints length: got %d, want 16", len(e.RGBPoints))
	}
	// First tuple is (0, R, G, B) of the first color.
	if e.RGBPoints[0] != 0 || e.RGBPoints[3] != 1 {
		t.Errorf("first RGB point: %v", e.RGBPoints[:4])
	}
}

func TestSaveASCII(t *testing.T) {
	c := mustFromRange(t, [3]float64{0, 0, 0}, [3]float64{1, 1, 1}, colorspace.RGB, "gray", 3)

	var buf bytes.Buffer
	if err := c.SaveASCII(&buf); err != nil {
		t.Fatalf("SaveASCII: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+3 {
		t.Fatalf("got %d lines, want 5: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "# Creator:") {
		t.Errorf("first line: %q", lines[0])
	}
	if lines[1] != "1_RGB 2_RGB 3_RGB" {
		t.Errorf("column header: %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); len(fields) != 3 {
		t.Errorf("data row: %q", lines[2])
	}
}

func TestSaveGOM(t *testing.T) {
	c, err := New("blue to black", [][3]float64{{0, 0, 1}, {0, 0, 0.5}, {0, 0, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := c.SaveGOM(&buf); err != nil {
		t.Fatalf("SaveGOM: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "1 1 blue_to_black 9 blue_to_black ") {
		t.Errorf("GOM header: %q", out[:40])
	}
	if !strings.Contains(out, " 3 0 3 ") {
		t.Errorf("GOM color count field missing: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("GOM output must end with a newline")
	}
	// Colors are written in reverse: black first, blue last. Entries
	// are separated by a double space.
	if !strings.Contains(out, "3 0 3 0 0 0 0 255 1") {
		t.Errorf("reversed first color: %q", out)
	}
	if !strings.Contains(out, " 0 0 0 0 255 1  0 0 0 127 255 1  0 0 0 255 255 1\n") {
		t.Errorf("entry separator: %q", out)
	}
}

func TestSaveGmsh(t *testing.T) {
	c, err := New("gray", [][3]float64{{0, 0, 0}, {1, 1, 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := c.SaveGmsh(&buf); err != nil {
		t.Fatalf("SaveGmsh: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "View.ColorTable = {\n") {
		t.Errorf("gmsh header: %q", out)
	}
	if !strings.HasSuffix(out, "\n}\n") {
		t.Errorf("gmsh footer: %q", out)
	}
	if !strings.Contains(out, "0,0,0,") || !strings.Contains(out, "255,255,255,") {
		t.Errorf("gmsh rows: %q", out)
	}
}

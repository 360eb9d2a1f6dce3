package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// LoadGeom reads the legacy geom text format: a `<n> header` line,
// n header lines carrying `grid` / `size` / `origin` keyword entries
// and free-form comments, then whitespace-separated material indices
// in x-fastest order. Runs may be compressed as `count of value` or
// `from to to`. Trailing `#` comments are ignored everywhere. A
// one-based material numbering (smallest index above zero) is shifted
// down to zero-based.
func LoadGeom(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	}
	first := strings.Fields(sc.Text())
	if len(first) < 2 || !strings.HasPrefix(strings.ToLower(first[1]), "head") {
		return nil, fmt.Errorf("%w: missing header length information", ErrFormat)
	}
	headerLength, err := strconv.Atoi(first[0])
	if err != nil || headerLength < 3 {
		return nil, fmt.Errorf("%w: invalid header length %q", ErrFormat, first[0])
	}

	var (
		cells     [3]int
		size      [3]float64
		origin    [3]float64
		comments  []string
		haveCells bool
		haveSize  bool
	)
	for i := 0; i < headerLength; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: header ends after %d of %d lines", ErrFormat, i, headerLength)
		}
		line := sc.Text()
		items := strings.Fields(strings.ToLower(strings.SplitN(line, "#", 2)[0]))
		key := ""
		if len(items) > 0 {
			key = items[0]
		}
		switch key {
		case "grid":
			v, err := keywordValues(items, "a", "b", "c")
			if err != nil {
				return nil, err
			}
			for a := 0; a < 3; a++ {
				cells[a] = int(v[a])
			}
			haveCells = true
		case "size":
			v, err := keywordValues(items, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			size = v
			haveSize = true
		case "origin":
			v, err := keywordValues(items, "x", "y", "z")
			if err != nil {
				return nil, err
			}
			origin = v
		default:
			comments = append(comments, strings.TrimSpace(line))
		}
	}
	if !haveCells || !haveSize {
		return nil, fmt.Errorf("%w: missing grid or size keyword", ErrFormat)
	}
	if cells[0] < 1 || cells[1] < 1 || cells[2] < 1 {
		return nil, fmt.Errorf("%w: grid %v", ErrFormat, cells)
	}

	want := cells[0] * cells[1] * cells[2]
	values := make([]float64, 0, want)
	for sc.Scan() {
		items := strings.Fields(strings.SplitN(sc.Text(), "#", 2)[0])
		entry, err := expandRun(items)
		if err != nil {
			return nil, err
		}
		values = append(values, entry...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: %d entries found, %d expected", ErrFormat, len(values), want)
	}

	allInt := true
	minVal := math.Inf(1)
	for _, v := range values {
		if v != math.Trunc(v) {
			allInt = false
			break
		}
		if v < minVal {
			minVal = v
		}
	}
	if !allInt {
		return nil, fmt.Errorf("%w: non-integer material index", ErrFormat)
	}
	shift := int32(0)
	if minVal > 0 {
		shift = 1
	}
	material := make([]int32, want)
	for i, v := range values {
		material[i] = int32(v) - shift
	}
	return New(material, cells, size, origin, comments)
}

func keywordValues(items []string, keys ...string) ([3]float64, error) {
	kv := make(map[string]string)
	for i := 1; i+1 < len(items); i += 2 {
		kv[items[i]] = items[i+1]
	}
	var out [3]float64
	for a, k := range keys {
		s, ok := kv[k]
		if !ok {
			return out, fmt.Errorf("%w: %s line misses key %q", ErrFormat, items[0], k)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, fmt.Errorf("%w: %s %s: %v", ErrFormat, items[0], k, err)
		}
		out[a] = v
	}
	return out, nil
}

// expandRun decodes one data line, expanding `count of value` and
// `from to to` run compression.
func expandRun(items []string) ([]float64, error) {
	if len(items) == 3 {
		switch strings.ToLower(items[1]) {
		case "of":
			n, err := strconv.Atoi(items[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: run length %q", ErrFormat, items[0])
			}
			v, err := strconv.ParseFloat(items[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: run value %q", ErrFormat, items[2])
			}
			out := make([]float64, n)
			for i := range out {
				out[i] = v
			}
			return out, nil
		case "to":
			from, err1 := strconv.Atoi(items[0])
			to, err2 := strconv.Atoi(items[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: range %q to %q", ErrFormat, items[0], items[2])
			}
			step := 1
			if to < from {
				step = -1
			}
			out := make([]float64, 0, (to-from)*step+1)
			for v := from; v != to+step; v += step {
				out = append(out, float64(v))
			}
			return out, nil
		}
	}
	out := make([]float64, 0, len(items))
	for _, s := range items {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: material entry %q", ErrFormat, s)
		}
		out = append(out, v)
	}
	return out, nil
}

// SaveGeom writes the legacy geom text format: comments and geometry
// keywords in the header, then one line of material indices per (y, z)
// row, column-padded to the widest index.
func (g *Grid) SaveGeom(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d header\n", len(g.comments)+4)
	for _, c := range g.comments {
		fmt.Fprintln(bw, c)
	}
	fmt.Fprintf(bw, "grid   a %d b %d c %d\n", g.cells[0], g.cells[1], g.cells[2])
	fmt.Fprintf(bw, "size   x %g y %g z %g\n", g.size[0], g.size[1], g.size[2])
	fmt.Fprintf(bw, "origin x %g y %g z %g\n", g.origin[0], g.origin[1], g.origin[2])
	fmt.Fprintln(bw, "homogenization 1")

	width := 1
	if max := g.MaxMaterial(); max > 0 {
		width = 1 + int(math.Floor(math.Log10(float64(max))))
	}
	for row := 0; row < g.cells[1]*g.cells[2]; row++ {
		base := row * g.cells[0]
		for x := 0; x < g.cells[0]; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			fmt.Fprintf(bw, "%*d", width, g.material[base+x])
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

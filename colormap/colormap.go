package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/grainforge/microgrid/colorspace"
)

// ErrColorBounds reports bound colors outside the legal range of their
// color model.
var ErrColorBounds = errors.New("color out of bounds")

// Colormap is an ordered sequence of RGB triples with components in
// [0,1]. It is immutable after construction; Reversed and Concat return
// new instances.
type Colormap struct {
	Name   string
	colors [][3]float64
}

// New creates a colormap from a color sequence. The sequence is copied.
func New(name string, colors [][3]float64) (Colormap, error) {
	if len(colors) == 0 {
		return Colormap{}, fmt.Errorf("colormap %q: empty color sequence", name)
	}
	c := make([][3]float64, len(colors))
	copy(c, colors)
	return Colormap{Name: name, colors: c}, nil
}

// Len returns the number of quantization levels.
func (c Colormap) Len() int { return len(c.colors) }

// At returns the i-th color.
func (c Colormap) At(i int) [3]float64 { return c.colors[i] }

// Colors returns a copy of the color sequence.
func (c Colormap) Colors() [][3]float64 {
	out := make([][3]float64, len(c.colors))
	copy(out, c.colors)
	return out
}

// Equal reports whether both colormaps have the same length and
// element-wise identical colors. Names are not compared.
func (c Colormap) Equal(other Colormap) bool {
	if len(c.colors) != len(other.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != other.colors[i] {
			return false
		}
	}
	return true
}

// Reversed returns the colormap in reverse order. An empty name selects
// the parent name with an "_r" suffix; reversing twice restores the
// original name.
func (c Colormap) Reversed(name string) Colormap {
	if name == "" {
		name = c.Name + "_r"
		if strings.HasSuffix(name, "_r_r") {
			name = name[:len(name)-4]
		}
	}
	rev := make([][3]float64, len(c.colors))
	for i, col := range c.colors {
		rev[len(c.colors)-1-i] = col
	}
	return Colormap{Name: name, colors: rev}
}

// Concat appends the colors of other, naming the result "a+b".
func (c Colormap) Concat(other Colormap) Colormap {
	out := make([][3]float64, 0, len(c.colors)+len(other.colors))
	out = append(out, c.colors...)
	out = append(out, other.colors...)
	return Colormap{Name: c.Name + "+" + other.Name, colors: out}
}

// Palette returns the colormap as a standard library color palette.
func (c Colormap) Palette() color.Palette {
	p := make(color.Palette, len(c.colors))
	for i, col := range c.colors {
		p[i] = colorful.Color{R: col[0], G: col[1], B: col[2]}.Clamped()
	}
	return p
}

// FromRange creates a perceptually uniform colormap between two
// (inclusive) bound colors given in the stated model.
//
// Both bounds are converted to Msh space and interpolated there over n
// evenly spaced fractions; each interpolated point is converted back to
// RGB. n must be at least 2. Bounds outside the legal range of the model
// fail with ErrColorBounds.
func FromRange(low, high [3]float64, model colorspace.Model, name string, n int) (Colormap, error) {
	if n < 2 {
		return Colormap{}, fmt.Errorf("colormap %q: need at least 2 quantization levels, got %d", name, n)
	}
	if err := checkBounds(model, low); err != nil {
		return Colormap{}, err
	}
	if err := checkBounds(model, high); err != nil {
		return Colormap{}, err
	}

	lo, err := colorspace.ToMsh(model, low)
	if err != nil {
		return Colormap{}, err
	}
	hi, err := colorspace.ToMsh(model, high)
	if err != nil {
		return Colormap{}, err
	}

	fracs := floats.Span(make([]float64, n), 0, 1)
	colors := make([][3]float64, n)
	for i, f := range fracs {
		colors[i] = colorspace.MshToRGB(interpolateMsh(f, lo, hi))
	}
	return Colormap{Name: name, colors: colors}, nil
}

func checkBounds(model colorspace.Model, c [3]float64) error {
	out := false
	switch model {
	case colorspace.RGB:
		out = c[0] < 0 || c[1] < 0 || c[2] < 0 || c[0] > 1 || c[1] > 1 || c[2] > 1
	case colorspace.HSV, colorspace.HSL:
		out = c[0] < 0 || c[1] < 0 || c[2] < 0 || c[0] > 360 || c[1] > 1 || c[2] > 1
	case colorspace.Lab:
		out = c[0] < 0
	}
	if out {
		return fmt.Errorf("%w: %s color %v", ErrColorBounds, model, c)
	}
	return nil
}

// interpolateMsh interpolates between two Msh colors at the given
// fraction. Saturated colors far apart in hue travel through an
// unsaturated pivot; a nearly unsaturated endpoint borrows an adjusted
// hue from the saturated one to avoid hue artifacts.
func interpolateMsh(frac float64, low, high [3]float64) [3]float64 {
	lo, hi := low, high

	if lo[1] > 0.05 && hi[1] > 0.05 && math.Abs(lo[2]-hi[2]) > math.Pi/3.0 {
		mMid := math.Max(math.Max(lo[0], hi[0]), 88.0)
		if frac < 0.5 {
			hi = [3]float64{mMid, 0, 0}
			frac *= 2.0
		} else {
			lo = [3]float64{mMid, 0, 0}
			frac = 2.0*frac - 1.0
		}
	}
	if lo[1] < 0.05 && hi[1] > 0.05 {
		lo[2] = adjustHue(hi, lo)
	} else if lo[1] > 0.05 && hi[1] < 0.05 {
		hi[2] = adjustHue(lo, hi)
	}

	return [3]float64{
		(1.0-frac)*lo[0] + frac*hi[0],
		(1.0-frac)*lo[1] + frac*hi[1],
		(1.0-frac)*lo[2] + frac*hi[2],
	}
}

// adjustHue derives a hue for an unsaturated color from a saturated one,
// spun away to keep the interpolation path smooth.
func adjustHue(sat, unsat [3]float64) float64 {
	if sat[0] >= unsat[0] {
		return sat[2]
	}
	spin := sat[1] / math.Sin(sat[1]) * math.Sqrt(unsat[0]*unsat[0]-sat[0]*sat[0]) / sat[0]
	if sat[2] < -math.Pi/3.0 {
		spin = -spin
	}
	return sat[2] + spin
}

// predefined maps preset names to RGB bound pairs.
var predefined = map[string]struct{ low, high [3]float64 }{
	"orientation": {[3]float64{0.933334, 0.878432, 0.878431}, [3]float64{0.250980, 0.007843, 0.000000}},
	"strain":      {[3]float64{0.941177, 0.941177, 0.870588}, [3]float64{0.266667, 0.266667, 0.000000}},
	"stress":      {[3]float64{0.878432, 0.874511, 0.949019}, [3]float64{0.000002, 0.000000, 0.286275}},
}

// Predefined lists the available preset names in sorted order.
func Predefined() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromPredefined creates a preset colormap with n quantization levels.
func FromPredefined(name string, n int) (Colormap, error) {
	def, ok := predefined[name]
	if !ok {
		return Colormap{}, fmt.Errorf("unknown predefined colormap %q (have %s)",
			name, strings.Join(Predefined(), ", "))
	}
	return FromRange(def.low, def.high, colorspace.RGB, name, n)
}

package colorspace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel reports a color model name outside the supported set.
var ErrUnknownModel = errors.New("unknown color model")

// Model identifies one of the supported color models.
type Model int

const (
	RGB Model = iota // Red Green Blue, components in [0,1]
	HSV              // Hue [0,360], Saturation [0,1], Value [0,1]
	HSL              // Hue [0,360], Saturation [0,1], Luminance [0,1]
	XYZ              // CIE XYZ (D65)
	Lab              // CIE Lab (D65)
	Msh              // magnitude / saturation angle / hue angle
)

var modelNames = map[Model]string{
	RGB: "rgb",
	HSV: "hsv",
	HSL: "hsl",
	XYZ: "xyz",
	Lab: "lab",
	Msh: "msh",
}

// String returns the lowercase model name.
func (m Model) String() string {
	if s, ok := modelNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel maps a case-insensitive model name to its Model value.
func ParseModel(name string) (Model, error) {
	for m, s := range modelNames {
		if s == strings.ToLower(name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// toMsh dispatches a conversion from the given model into Msh space.
var toMsh = map[Model]func([3]float64) [3]float64{
	RGB: RGBToMsh,
	HSV: HSVToMsh,
	HSL: HSLToMsh,
	XYZ: XYZToMsh,
	Lab: LabToMsh,
	Msh: func(c [3]float64) [3]float64 { return c },
}

// ToMsh converts a color given in an arbitrary model into Msh space.
func ToMsh(m Model, c [3]float64) ([3]float64, error) {
	f, ok := toMsh[m]
	if !ok {
		return [3]float64{}, fmt.Errorf("%w: %v", ErrUnknownModel, m)
	}
	return f(c), nil
}

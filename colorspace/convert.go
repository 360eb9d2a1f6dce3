package colorspace

import "math"

const (
	eps   = 216.0 / 24389.0
	kappa = 24389.0 / 27.0
)

// refWhite is the D65 reference white (observer 2°).
var refWhite = [3]float64{0.95047, 1.00000, 1.08883}

// HSVToRGB converts Hue Saturation Value to Red Green Blue.
func HSVToRGB(hsv [3]float64) [3]float64 {
	h, s, v := hsv[0]/360.0, hsv[1], hsv[2]
	if s == 0 {
		return [3]float64{v, v, v}
	}
	h = h - math.Floor(h)
	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	i %= 6
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch i {
	case 0:
		return [3]float64{v, t, p}
	case 1:
		return [3]float64{q, v, p}
	case 2:
		return [3]float64{p, v, t}
	case 3:
		return [3]float64{p, q, v}
	case 4:
		return [3]float64{t, p, v}
	default:
		return [3]float64{v, p, q}
	}
}

// RGBToHSV converts Red Green Blue to Hue Saturation Value.
func RGBToHSV(rgb [3]float64) [3]float64 {
	maxc := math.Max(rgb[0], math.Max(rgb[1], rgb[2]))
	minc := math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
	if maxc == minc {
		return [3]float64{0, 0, maxc}
	}
	return [3]float64{hue(rgb) * 360.0, (maxc - minc) / maxc, maxc}
}

// HSLToRGB converts Hue Saturation Luminance to Red Green Blue.
func HSLToRGB(hsl [3]float64) [3]float64 {
	h, s, l := hsl[0]/360.0, hsl[1], hsl[2]
	if s == 0 {
		return [3]float64{l, l, l}
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2
	return [3]float64{
		hlsComponent(m1, m2, h+1.0/3.0),
		hlsComponent(m1, m2, h),
		hlsComponent(m1, m2, h-1.0/3.0),
	}
}

// RGBToHSL converts Red Green Blue to Hue Saturation Luminance.
func RGBToHSL(rgb [3]float64) [3]float64 {
	maxc := math.Max(rgb[0], math.Max(rgb[1], rgb[2]))
	minc := math.Min(rgb[0], math.Min(rgb[1], rgb[2]))
	l := (maxc + minc) / 2.0
	if maxc == minc {
		return [3]float64{0, 0, l}
	}
	var s float64
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2.0 - maxc - minc)
	}
	return [3]float64{hue(rgb) * 360.0, s, l}
}

// hue returns the fractional hue in [0,1) for a non-gray RGB triple.
func hue(rgb [3]float64) (h float64) {
	r, g, b := rgb[0], rgb[1], rgb[2]
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	if maxc == minc {
		return 0
	}
	d := maxc - minc
	rc := (maxc - r) / d
	gc := (maxc - g) / d
	bc := (maxc - b) / d
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = h / 6.0
	h -= math.Floor(h)
	return h
}

func hlsComponent(m1, m2, hue float64) float64 {
	hue -= math.Floor(hue)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6.0
	default:
		return m1
	}
}

// XYZToRGB converts CIE XYZ to Red Green Blue.
//
// The result is companded for sRGB and clipped to [0,1].
func XYZToRGB(xyz [3]float64) [3]float64 {
	m := [3][3]float64{
		{3.240969942, -1.537383178, -0.498610760},
		{-0.969243636, 1.875967502, 0.041555057},
		{0.055630080, -0.203976959, 1.056971514},
	}
	var rgb [3]float64
	for i := 0; i < 3; i++ {
		lin := m[i][0]*xyz[0] + m[i][1]*xyz[1] + m[i][2]*xyz[2]
		var v float64
		if lin > 0.0031308 {
			v = math.Pow(lin, 1.0/2.4)*1.0555 - 0.0555
		} else {
			v = lin * 12.92
		}
		rgb[i] = math.Min(1.0, math.Max(0.0, v))
	}
	return rgb
}

// RGBToXYZ converts Red Green Blue to CIE XYZ.
func RGBToXYZ(rgb [3]float64) [3]float64 {
	var lin [3]float64
	for i, v := range rgb {
		if v > 0.04045 {
			lin[i] = math.Pow((v+0.0555)/1.0555, 2.4)
		} else {
			lin[i] = v / 12.92
		}
	}
	m := [3][3]float64{
		{0.412390799, 0.357584339, 0.180480788},
		{0.212639006, 0.715168679, 0.072192315},
		{0.019330819, 0.119194780, 0.950532152},
	}
	var xyz [3]float64
	for i := 0; i < 3; i++ {
		xyz[i] = m[i][0]*lin[0] + m[i][1]*lin[1] + m[i][2]*lin[2]
	}
	return xyz
}

// LabToXYZ converts CIE Lab to CIE XYZ against the D65 reference white.
func LabToXYZ(lab [3]float64) [3]float64 {
	fx := (lab[0]+16.0)/116.0 + lab[1]/500.0
	fy := (lab[0] + 16.0) / 116.0
	fz := (lab[0]+16.0)/116.0 - lab[2]/200.0

	var xyz [3]float64
	if fx3 := fx * fx * fx; fx3 > eps {
		xyz[0] = fx3
	} else {
		xyz[0] = (116.0*fx - 16.0) / kappa
	}
	if lab[0] > kappa*eps {
		xyz[1] = fy * fy * fy
	} else {
		xyz[1] = lab[0] / kappa
	}
	if fz3 := fz * fz * fz; fz3 > eps {
		xyz[2] = fz3
	} else {
		xyz[2] = (116.0*fz - 16.0) / kappa
	}
	for i := range xyz {
		xyz[i] *= refWhite[i]
	}
	return xyz
}

// XYZToLab converts CIE XYZ to CIE Lab against the D65 reference white.
func XYZToLab(xyz [3]float64) [3]float64 {
	var f [3]float64
	for i := range xyz {
		r := xyz[i] / refWhite[i]
		if r > eps {
			f[i] = math.Cbrt(r)
		} else {
			f[i] = (kappa*r + 16.0) / 116.0
		}
	}
	return [3]float64{
		116.0*f[1] - 16.0,
		500.0 * (f[0] - f[1]),
		200.0 * (f[1] - f[2]),
	}
}

// LabToMsh converts CIE Lab to Msh (magnitude, saturation angle, hue angle).
func LabToMsh(lab [3]float64) [3]float64 {
	m := math.Sqrt(lab[0]*lab[0] + lab[1]*lab[1] + lab[2]*lab[2])
	if m <= 1e-8 {
		return [3]float64{m, 0, 0}
	}
	return [3]float64{
		m,
		math.Acos(lab[0] / m),
		math.Atan2(lab[2], lab[1]),
	}
}

// MshToLab converts Msh back to CIE Lab via spherical-to-Cartesian mapping.
func MshToLab(msh [3]float64) [3]float64 {
	return [3]float64{
		msh[0] * math.Cos(msh[1]),
		msh[0] * math.Sin(msh[1]) * math.Cos(msh[2]),
		msh[0] * math.Sin(msh[1]) * math.Sin(msh[2]),
	}
}

// LabToRGB converts CIE Lab to Red Green Blue.
func LabToRGB(lab [3]float64) [3]float64 { return XYZToRGB(LabToXYZ(lab)) }

// RGBToLab converts Red Green Blue to CIE Lab.
func RGBToLab(rgb [3]float64) [3]float64 { return XYZToLab(RGBToXYZ(rgb)) }

// MshToRGB converts Msh to Red Green Blue.
func MshToRGB(msh [3]float64) [3]float64 { return LabToRGB(MshToLab(msh)) }

// RGBToMsh converts Red Green Blue to Msh.
func RGBToMsh(rgb [3]float64) [3]float64 { return LabToMsh(RGBToLab(rgb)) }

// HSVToMsh converts Hue Saturation Value to Msh.
func HSVToMsh(hsv [3]float64) [3]float64 { return RGBToMsh(HSVToRGB(hsv)) }

// HSLToMsh converts Hue Saturation Luminance to Msh.
func HSLToMsh(hsl [3]float64) [3]float64 { return RGBToMsh(HSLToRGB(hsl)) }

// XYZToMsh converts CIE XYZ to Msh.
func XYZToMsh(xyz [3]float64) [3]float64 { return LabToMsh(XYZToLab(xyz)) }

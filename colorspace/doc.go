// Package colorspace implements bidirectional conversions between the
// color models used for colormap construction: RGB, HSV, HSL, CIE XYZ,
// CIE Lab, and Msh.
//
// All kernels are pure functions over a single [3]float64 value; callers
// map over collections themselves. RGB components live in [0,1], HSV/HSL
// hue in degrees [0,360], Lab in the usual CIE 1976 ranges, and Msh is
// the magnitude/angle reparametrization of Lab (M = ‖Lab‖,
// s = arccos(L/M), h = atan2(b,a)) used for perceptually uniform
// interpolation.
//
// XYZ conversions use sRGB companding (linear threshold 0.0031308 resp.
// 0.04045, gamma 2.4) with D65 matrices; Lab uses the CIE 1976 two-part
// function with ε = 216/24389 and κ = 24389/27 against the D65 reference
// white (0.95047, 1.00000, 1.08883).
//
// References:
//
//	K. Moreland, Proceedings of the 5th International Symposium on
//	Advances in Visual Computing, 2009
//	https://doi.org/10.1007/978-3-642-10520-3_9
package colorspace

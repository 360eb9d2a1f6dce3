package grid

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation is a proper rotation given by Bunge Euler angles, the z-x-z
// convention common in texture analysis. Angles are in degrees with
// phi1, phi2 in [0, 360) and Phi in [0, 180].
type Rotation struct {
	phi1, capPhi, phi2 float64
	m                  *mat.Dense
}

// FromEuler builds a rotation from Bunge Euler angles in degrees.
func FromEuler(phi1, capPhi, phi2 float64) Rotation {
	m := &mat.Dense{}
	m.Mul(zRot(phi2), zxComposite(capPhi, phi1))
	return Rotation{phi1: phi1, capPhi: capPhi, phi2: phi2, m: m}
}

func zxComposite(capPhi, phi1 float64) *mat.Dense {
	m := &mat.Dense{}
	m.Mul(xRot(capPhi), zRot(phi1))
	return m
}

func zRot(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180.0)
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

func xRot(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180.0)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// EulerAngles returns the Bunge angles (phi1, Phi, phi2) in degrees.
func (r Rotation) EulerAngles() (phi1, capPhi, phi2 float64) {
	return r.phi1, r.capPhi, r.phi2
}

// Matrix returns the 3x3 rotation matrix.
func (r Rotation) Matrix() mat.Matrix {
	if r.m == nil {
		return zRot(0)
	}
	return r.m
}

// Apply rotates the vector v.
func (r Rotation) Apply(v [3]float64) [3]float64 {
	if r.m == nil {
		return v
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = r.m.At(i, 0)*v[0] + r.m.At(i, 1)*v[1] + r.m.At(i, 2)*v[2]
	}
	return out
}

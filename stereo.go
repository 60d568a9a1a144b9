package mobius

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NorthPole is the image of [Infinity] under stereographic projection.
var NorthPole = mgl64.Vec3{0, 0, 1}

// Stereo maps a point of the extended plane to the unit sphere, projecting
// from the north pole (0, 0, 1). The unit circle is mapped to the equator, 0
// to the south pole and [Infinity] to the north pole.
func Stereo(z complex128) mgl64.Vec3 {
	if IsInf(z) {
		return NorthPole
	}
	x, y := real(z), imag(z)
	r2 := x*x + y*y
	d := 1 / (1 + r2)
	return mgl64.Vec3{2 * x * d, 2 * y * d, (r2 - 1) * d}
}

// StereoInverse maps a point on the unit sphere back to the extended plane.
// It is the inverse of [Stereo]. The north pole maps to [Infinity]. v is
// assumed to have unit length; this isn't checked.
func StereoInverse(v mgl64.Vec3) complex128 {
	if v.Z() == 1 {
		return Infinity
	}
	s := 1 / (1 - v.Z())
	return canonical(complex(v.X()*s, v.Y()*s))
}

// ApplySphere evaluates f on the Riemann sphere, that is it computes
// Stereo(f(StereoInverse(v))).
func (f LFT) ApplySphere(v mgl64.Vec3) mgl64.Vec3 {
	return Stereo(f.Apply(StereoInverse(v)))
}

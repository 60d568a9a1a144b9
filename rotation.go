package mobius

import (
	"github.com/go-gl/mathgl/mgl64"
)

// FromRotation returns the transformation that corresponds to rotating the
// Riemann sphere by q. That is, for all z, the result f satisfies
//
//	f(z) = StereoInverse(q · Stereo(z))
//
// up to rounding. q must be a rotation matrix (orthogonal with determinant
// +1); this isn't checked.
//
// Since a linear fractional transformation is determined by the images of
// three points, it suffices to rotate the projections of 0, 1 and infinity.
func FromRotation(q mgl64.Mat3) (LFT, error) {
	src := [3]complex128{0, 1, Infinity}
	var dst [3]complex128
	for i, z := range src {
		dst[i] = StereoInverse(q.Mul3x1(Stereo(z)))
	}
	return MapPoints(src[0], dst[0], src[1], dst[1], src[2], dst[2])
}

// RotationAbout returns the transformation that corresponds to rotating the
// Riemann sphere by angle radians about axis, counter-clockwise when looking
// down the axis towards the origin.
func RotationAbout(axis mgl64.Vec3, angle float64) (LFT, error) {
	if axis.Len() == 0 {
		return LFT{}, ErrZeroAxis
	}
	return FromRotation(mgl64.HomogRotate3D(angle, axis.Normalize()).Mat3())
}

// FromQuat returns the transformation that corresponds to rotating the
// Riemann sphere by the rotation quaternion q. q is normalized first.
func FromQuat(q mgl64.Quat) (LFT, error) {
	return FromRotation(q.Normalize().Mat4().Mat3())
}

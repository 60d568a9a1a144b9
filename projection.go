package mobius

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// StereographicProjection implements [s2.Projection] using [Stereo] and
// [StereoInverse]. The north pole projects to (+Inf, +Inf).
type StereographicProjection struct{}

// Project converts a point on the sphere to a point in the plane.
func (StereographicProjection) Project(p s2.Point) r2.Point {
	z := StereoInverse(mgl64.Vec3{p.X, p.Y, p.Z})
	if IsInf(z) {
		return r2.Point{X: math.Inf(1), Y: math.Inf(1)}
	}
	return r2.Point{X: real(z), Y: imag(z)}
}

// Unproject converts a point in the plane to a point on the sphere.
// Points with an infinite coordinate map to the north pole.
func (StereographicProjection) Unproject(p r2.Point) s2.Point {
	v := Stereo(complex(p.X, p.Y))
	return s2.Point{Vector: r3.Vector{X: v[0], Y: v[1], Z: v[2]}}
}

// FromLatLng projects a latitude/longitude pair onto the plane.
func (sp StereographicProjection) FromLatLng(ll s2.LatLng) r2.Point {
	return sp.Project(s2.PointFromLatLng(ll))
}

// ToLatLng returns the latitude/longitude of the point projecting to p.
func (sp StereographicProjection) ToLatLng(p r2.Point) s2.LatLng {
	return s2.LatLngFromPoint(sp.Unproject(p))
}

// Interpolate interpolates linearly in the plane.
func (StereographicProjection) Interpolate(f float64, a, b r2.Point) r2.Point {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// WrapDistance returns (0, 0); the projection doesn't wrap.
func (StereographicProjection) WrapDistance() r2.Point {
	return r2.Point{}
}

// WrapDestination returns b; the projection doesn't wrap.
func (StereographicProjection) WrapDestination(a, b r2.Point) r2.Point {
	return b
}

package mobius

import (
	"math"
	"math/cmplx"
)

// Circline is a generalized circle: a circle or a line of the extended plane.
// Lines are circles that pass through infinity.
//
// A circline is described by three distinct points on it. This
// representation is closed under linear fractional transformations, which
// map circlines to circlines; see [Circline.Transform]. Values with
// coinciding points don't describe a circline.
type Circline struct {
	P0, P1, P2 complex128
}

// NewCircle returns the circle with the given center and radius. It returns
// an error wrapping [ErrDuplicatePoints] if the radius is zero or too small
// to separate points around center.
func NewCircle(center complex128, radius float64) (Circline, error) {
	r := complex(radius, 0)
	return newCircline(center+r, center+r*1i, center-r)
}

// NewLine returns the line through p and q. It returns an error wrapping
// [ErrDuplicatePoints] if p and q are the same point, or if either of them
// is infinite.
func NewLine(p, q complex128) (Circline, error) {
	return newCircline(p, q, Infinity)
}

func newCircline(p0, p1, p2 complex128) (Circline, error) {
	if !distinct(p0, p1, p2) {
		return Circline{}, &PointsError{Points: [3]complex128{p0, p1, p2}}
	}
	return Circline{P0: p0, P1: p1, P2: p2}, nil
}

// Transform returns the image of c under f.
func (c Circline) Transform(f LFT) Circline {
	return Circline{
		P0: f.Apply(c.P0),
		P1: f.Apply(c.P1),
		P2: f.Apply(c.P2),
	}
}

// IsLine reports whether c passes through infinity. Three finite points are
// considered collinear if the sine of the angle they span at P0 is at most
// tolerance.
func (c Circline) IsLine(tolerance float64) bool {
	if IsInf(c.P0) || IsInf(c.P1) || IsInf(c.P2) {
		return true
	}
	u := c.P1 - c.P0
	v := c.P2 - c.P0
	return math.Abs(cross(u, v)) <= tolerance*cmplx.Abs(u)*cmplx.Abs(v)
}

// finite returns two distinct finite points of c.
func (c Circline) finite() (complex128, complex128) {
	switch {
	case IsInf(c.P0):
		return c.P1, c.P2
	case IsInf(c.P1):
		return c.P0, c.P2
	default:
		return c.P0, c.P1
	}
}

// Center returns the center of the circle. The second return value is false
// if c is a line.
func (c Circline) Center() (complex128, bool) {
	if IsInf(c.P0) || IsInf(c.P1) || IsInf(c.P2) {
		return 0, false
	}
	u := c.P1 - c.P0
	v := c.P2 - c.P0
	den := cmplx.Conj(u)*v - u*cmplx.Conj(v)
	if den == 0 {
		return 0, false
	}
	uu := complex(real(u)*real(u)+imag(u)*imag(u), 0)
	vv := complex(real(v)*real(v)+imag(v)*imag(v), 0)
	return c.P0 + (uu*v-vv*u)/den, true
}

// Radius returns the radius of the circle, or +Inf if c is a line.
func (c Circline) Radius() float64 {
	center, ok := c.Center()
	if !ok {
		return math.Inf(1)
	}
	return cmplx.Abs(c.P0 - center)
}

// Contains reports whether the distance between z and c is at most
// tolerance. Infinity lies on every line and on no circle. Collinearity is
// decided with [DefaultTolerance].
func (c Circline) Contains(z complex128, tolerance float64) bool {
	if c.IsLine(DefaultTolerance) {
		if IsInf(z) {
			return true
		}
		p, q := c.finite()
		d := q - p
		return math.Abs(cross(d, z-p))/cmplx.Abs(d) <= tolerance
	}
	if IsInf(z) {
		return false
	}
	center, _ := c.Center()
	return math.Abs(cmplx.Abs(z-center)-c.Radius()) <= tolerance
}

// cross returns the z component of the cross product of u and v, treated as
// vectors in the plane.
func cross(u, v complex128) float64 {
	return real(u)*imag(v) - imag(u)*real(v)
}

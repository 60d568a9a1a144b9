package mobius

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Infinity is the point at infinity of the extended complex plane.
//
// Every function in this package that returns the point at infinity returns
// exactly this value. On input, any value with an infinite real or imaginary
// part denotes the point at infinity.
var Infinity = cmplx.Inf()

// IsInf reports whether z is the point at infinity.
func IsInf(z complex128) bool {
	return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}

// SamePoint reports whether z and w are the same point of the extended plane.
// Finite points are compared exactly; all infinite points are equal.
func SamePoint(z, w complex128) bool {
	if IsInf(z) || IsInf(w) {
		return IsInf(z) && IsInf(w)
	}
	return z == w
}

// distinct reports whether a, b and c are pairwise different points.
func distinct(a, b, c complex128) bool {
	return !SamePoint(a, b) && !SamePoint(b, c) && !SamePoint(a, c)
}

// canonical maps every representation of infinity to [Infinity].
func canonical(z complex128) complex128 {
	if IsInf(z) {
		return Infinity
	}
	return z
}

// unsign replaces negative zeros in z with positive zeros.
func unsign(z complex128) complex128 {
	re, im := real(z), imag(z)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	return complex(re, im)
}

func isFinite(z complex128) bool {
	return !IsInf(z) && !cmplx.IsNaN(z)
}

func formatPoint(z complex128) string {
	if IsInf(z) {
		return "∞"
	}
	return strconv.FormatComplex(z, 'g', -1, 128)
}

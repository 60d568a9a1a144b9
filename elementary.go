package mobius

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance is the tolerance used by [LFT.Kind] and
// [LFT.FixedPoints] to decide whether a transformation is parabolic.
const DefaultTolerance = 1e-9

// Reciprocal is the transformation z ↦ 1/z. It swaps 0 and infinity.
var Reciprocal = LFT{0, 1, 1, 0}

// Translation returns the transformation z ↦ z + b.
func Translation(b complex128) (LFT, error) {
	return New(1, b, 0, 1)
}

// Dilation returns the transformation z ↦ k·z, which scales by |k| and
// rotates by arg(k) around the origin.
func Dilation(k complex128) (LFT, error) {
	return New(k, 0, 0, 1)
}

// IsAffine reports whether f fixes infinity, in which case it is of the
// form z ↦ α·z + β.
func (f LFT) IsAffine() bool {
	return f.C == 0
}

// Kind classifies transformations by their conjugacy class.
type Kind int

const (
	KindIdentity Kind = iota
	// Exactly one fixed point, conjugate to a translation.
	KindParabolic
	// Conjugate to a rotation z ↦ e^{iθ}·z.
	KindElliptic
	// Conjugate to a real dilation z ↦ k·z, k > 0.
	KindHyperbolic
	// Conjugate to any other dilation.
	KindLoxodromic
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindParabolic:
		return "parabolic"
	case KindElliptic:
		return "elliptic"
	case KindHyperbolic:
		return "hyperbolic"
	case KindLoxodromic:
		return "loxodromic"
	default:
		return "Kind(?)"
	}
}

// normalizedTrace computes tr²/det, which doesn't depend on the choice of
// coefficients.
func (f LFT) normalizedTrace() complex128 {
	tr := f.Trace()
	return tr * tr / f.Determinant()
}

// Kind classifies the transformation using the normalized trace σ = tr²/det:
// parabolic for σ = 4, elliptic for real σ in [0, 4), hyperbolic for real
// σ > 4 and loxodromic otherwise. Comparisons use [DefaultTolerance].
func (f LFT) Kind() Kind {
	if f.IsIdentity() {
		return KindIdentity
	}
	sigma := f.normalizedTrace()
	if cmplx.Abs(sigma-4) <= DefaultTolerance {
		return KindParabolic
	}
	if math.Abs(imag(sigma)) > DefaultTolerance {
		return KindLoxodromic
	}
	switch s := real(sigma); {
	case s < -DefaultTolerance:
		return KindLoxodromic
	case s < 4:
		return KindElliptic
	default:
		return KindHyperbolic
	}
}

// FixedPoints returns the points z with f(z) = z. n is the number of distinct
// fixed points: 2 in general, 1 for parabolic transformations and 0 for the
// identity, which fixes every point. Unused results are zero.
func (f LFT) FixedPoints() (z1, z2 complex128, n int) {
	switch f.Kind() {
	case KindIdentity:
		return 0, 0, 0
	case KindParabolic:
		if f.IsAffine() {
			return Infinity, 0, 1
		}
		return (f.A - f.D) / (2 * f.C), 0, 1
	}
	if f.IsAffine() {
		// a·z + b = d·z
		return f.B / (f.D - f.A), Infinity, 2
	}
	// c·z² + (d − a)·z − b = 0, with discriminant tr² − 4·det.
	tr := f.Trace()
	root := cmplx.Sqrt(tr*tr - 4*f.Determinant())
	amd := f.A - f.D
	return (amd + root) / (2 * f.C), (amd - root) / (2 * f.C), 2
}

package mobius

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// LFT describes a linear fractional transformation via coefficients.
//
// If the coefficients are (a, b, c, d), then the transformation maps z to
//
//	(a·z + b) / (c·z + d)
//
// and corresponds to the matrix
//
//	| a b |
//	| c d |
//
// The representation is not unique: for any nonzero k, the coefficients
// (k·a, k·b, k·c, k·d) describe the same transformation. Use [LFT.Equal], not
// ==, to compare transformations.
//
// Valid values are only obtained from the constructors in this package. They
// have finite coefficients and a nonzero determinant. The zero value is not
// a valid transformation.
type LFT struct {
	A, B, C, D complex128
}

// Identity is the identity transformation.
var Identity = LFT{1, 0, 0, 1}

// New returns the transformation with coefficients (a, b, c, d).
//
// It returns an error wrapping [ErrNonFiniteCoefficient] if any coefficient
// is infinite or NaN, and one wrapping [ErrSingular] if a·d − b·c = 0. The
// error is a [*CoefficientError].
func New(a, b, c, d complex128) (LFT, error) {
	f := LFT{a, b, c, d}
	if !isFinite(a) || !isFinite(b) || !isFinite(c) || !isFinite(d) {
		return LFT{}, &CoefficientError{Coefficients: f.Coefficients(), Err: ErrNonFiniteCoefficient}
	}
	if f.Determinant() == 0 {
		return LFT{}, &CoefficientError{Coefficients: f.Coefficients(), Err: ErrSingular}
	}
	return f, nil
}

// FromMatrix returns the transformation described by the matrix m, where
// m[0] is the first row.
func FromMatrix(m [2][2]complex128) (LFT, error) {
	return New(m[0][0], m[0][1], m[1][0], m[1][1])
}

// ThreePoint returns the transformation that maps a to 0, b to 1 and c to
// infinity.
//
// The points must be pairwise distinct, otherwise an error wrapping
// [ErrDuplicatePoints] is returned. At most one of them can be infinite.
func ThreePoint(a, b, c complex128) (LFT, error) {
	if !distinct(a, b, c) {
		return LFT{}, &PointsError{Points: [3]complex128{a, b, c}}
	}
	switch {
	case IsInf(a):
		return New(0, b-c, 1, -c)
	case IsInf(b):
		return New(1, -a, 1, -c)
	case IsInf(c):
		return New(1, -a, 0, b-a)
	default:
		return New(b-c, -a*(b-c), b-a, -c*(b-a))
	}
}

// MapPoints returns the unique transformation that maps a to aa, b to bb and
// c to cc.
//
// Both a, b, c and aa, bb, cc have to be pairwise distinct, otherwise an error
// wrapping [ErrDuplicatePoints] is returned.
func MapPoints(a, aa, b, bb, c, cc complex128) (LFT, error) {
	from, err := ThreePoint(a, b, c)
	if err != nil {
		return LFT{}, err
	}
	to, err := ThreePoint(aa, bb, cc)
	if err != nil {
		return LFT{}, err
	}
	return to.Inverse().Mul(from)
}

// Coefficients returns the coefficients (a, b, c, d) of the transformation.
func (f LFT) Coefficients() [4]complex128 {
	return [4]complex128{f.A, f.B, f.C, f.D}
}

// Matrix returns the coefficient matrix, row by row.
func (f LFT) Matrix() [2][2]complex128 {
	return [2][2]complex128{{f.A, f.B}, {f.C, f.D}}
}

// Determinant computes a·d − b·c.
func (f LFT) Determinant() complex128 {
	return f.A*f.D - f.B*f.C
}

// Trace computes a + d.
func (f LFT) Trace() complex128 {
	return f.A + f.D
}

// Inverse computes the inverse transformation.
//
// It panics if f is not a valid transformation, such as the zero value.
func (f LFT) Inverse() LFT {
	inv, err := New(f.D, -f.B, -f.C, f.A)
	if err != nil {
		panic(fmt.Sprintf("mobius: inverse of invalid transformation: %s", err))
	}
	return inv
}

// Mul computes the composition f ∘ g, that is the transformation that first
// applies g and then f.
//
// The product of two valid transformations is valid in exact arithmetic.
// If rounding makes the product singular, an error wrapping [ErrSingular]
// is returned.
func (f LFT) Mul(g LFT) (LFT, error) {
	return New(
		f.A*g.A+f.B*g.C,
		f.A*g.B+f.B*g.D,
		f.C*g.A+f.D*g.C,
		f.C*g.B+f.D*g.D,
	)
}

// Compose computes fs[0] ∘ fs[1] ∘ … ∘ fs[n-1]. The last transformation is
// applied first. Composing zero transformations yields [Identity].
func Compose(fs ...LFT) (LFT, error) {
	out := Identity
	for _, f := range fs {
		var err error
		out, err = out.Mul(f)
		if err != nil {
			return LFT{}, err
		}
	}
	return out, nil
}

// IsIdentity reports whether the coefficient matrix is a scalar multiple of
// the identity matrix, that is b = c = 0 and a = d. The comparison is exact.
func (f LFT) IsIdentity() bool {
	return f.B == 0 && f.C == 0 && f.A == f.D
}

// Equal reports whether f and g describe the same transformation, which is
// the case if f ∘ g⁻¹ is the identity.
//
// Representations that differ by a scalar factor can round differently when
// evaluated. Equal therefore also requires f and g to map 0, 1 and infinity
// to identical points, which are the values [LFT.Hash] is computed from.
// Scaling the coefficients by a power of two never changes the result.
func (f LFT) Equal(g LFT) bool {
	h, err := f.Mul(g.Inverse())
	if err != nil || !h.IsIdentity() {
		return false
	}
	return f.images() == g.images()
}

// Apply evaluates the transformation at z. z may be [Infinity], and the
// result is [Infinity] whenever the transformation maps z to the point at
// infinity.
func (f LFT) Apply(z complex128) complex128 {
	if IsInf(z) {
		return quotient(f.A, f.C)
	}
	return quotient(f.A*z+f.B, f.C*z+f.D)
}

// quotient computes w1/w2 as a point of the extended plane. Equal operands
// yield exactly 1.
func quotient(w1, w2 complex128) complex128 {
	switch {
	case w2 == 0:
		return Infinity
	case w1 == w2:
		return 1
	}
	return canonical(w1 / w2)
}

// images returns f(0), f(1) and f(∞) with negative zeros replaced by
// positive ones.
func (f LFT) images() [3]complex128 {
	return [3]complex128{
		unsign(f.Apply(0)),
		unsign(f.Apply(1)),
		unsign(f.Apply(Infinity)),
	}
}

// Hash returns a hash of the transformation that is consistent with
// [LFT.Equal]: transformations that are equal have equal hashes.
//
// The hash is computed from the images of 0, 1 and infinity.
func (f LFT) Hash() uint64 {
	var buf [6 * 8]byte
	b := buf[:0]
	for _, z := range f.images() {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(real(z)))
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(imag(z)))
	}
	return xxhash.Sum64(b)
}

func (f LFT) String() string {
	return fmt.Sprintf("LFT(%v, %v, %v, %v)", f.A, f.B, f.C, f.D)
}

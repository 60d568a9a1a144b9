package mobius

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFiniteCoefficient is returned when a coefficient is infinite or NaN.
	ErrNonFiniteCoefficient = errors.New("mobius: non-finite coefficient")

	// ErrSingular is returned when the coefficients satisfy a·d − b·c = 0 and
	// thus do not describe a bijection of the extended plane.
	ErrSingular = errors.New("mobius: singular transformation")

	// ErrDuplicatePoints is returned when points that have to be pairwise
	// distinct coincide. All infinite points compare equal.
	ErrDuplicatePoints = errors.New("mobius: duplicate points")

	// ErrZeroAxis is returned when a rotation axis has zero length.
	ErrZeroAxis = errors.New("mobius: zero rotation axis")
)

// CoefficientError describes coefficients that were rejected by [New].
//
// Err is either [ErrNonFiniteCoefficient] or [ErrSingular].
type CoefficientError struct {
	Coefficients [4]complex128
	Err          error
}

func (err *CoefficientError) Error() string {
	c := err.Coefficients
	return fmt.Sprintf("%s: (%v, %v, %v, %v)", err.Err, c[0], c[1], c[2], c[3])
}

func (err *CoefficientError) Unwrap() error { return err.Err }

// PointsError describes a point triple rejected by [ThreePoint], [NewCircle]
// or [NewLine]. It unwraps to [ErrDuplicatePoints].
type PointsError struct {
	Points [3]complex128
}

func (err *PointsError) Error() string {
	p := err.Points
	return fmt.Sprintf("%s: %s, %s, %s", ErrDuplicatePoints, formatPoint(p[0]), formatPoint(p[1]), formatPoint(p[2]))
}

func (err *PointsError) Unwrap() error { return ErrDuplicatePoints }

// Package mobius implements linear fractional (Möbius) transformations of the
// extended complex plane, and their relationship to rotations of the Riemann
// sphere.
//
// # Transformations
//
// A linear fractional transformation is a map
//
//	z ↦ (a·z + b) / (c·z + d),  a·d − b·c ≠ 0
//
// of the extended complex plane, which is the complex plane together with a
// single point at infinity. [LFT] represents such a map by its four
// coefficients. The coefficients are only determined up to a common nonzero
// factor, which is why transformations are compared with [LFT.Equal] and
// hashed with [LFT.Hash] instead of by their coefficients.
//
// Transformations can be built from coefficients ([New], [FromMatrix]), from
// the images of three points ([ThreePoint], [MapPoints]), or from elementary
// maps ([Translation], [Dilation], [Reciprocal]). They compose via [LFT.Mul]
// and [Compose], which behave like matrix multiplication: f.Mul(g) first
// applies g, then f.
//
// # The point at infinity
//
// Points are complex128 values. The point at infinity is [Infinity]. Any
// value with an infinite component is accepted as the point at infinity, and
// functions in this package always return exactly [Infinity] for it, never
// NaN.
//
// # The Riemann sphere
//
// [Stereo] and [StereoInverse] implement stereographic projection between the
// extended plane and the unit sphere, with infinity at the north pole.
// Rotations of the sphere correspond to transformations of the plane;
// [FromRotation] computes the transformation for a rotation matrix.
// [StereographicProjection] exposes the projection as an [s2.Projection].
//
// # Generalized circles
//
// Transformations map circles and lines to circles and lines. [Circline]
// represents either, and [Circline.Transform] computes images.
//
// # Errors
//
// Constructors validate their inputs and report failures as errors that
// wrap one of [ErrNonFiniteCoefficient], [ErrSingular], [ErrDuplicatePoints]
// or [ErrZeroAxis]. Use [errors.Is] to tell them apart.
//
// # Literature
//
//   - [Möbius transformation]
//   - [Stereographic projection]
//   - Tristan Needham, Visual Complex Analysis, chapter 3
//
// [Möbius transformation]: https://en.wikipedia.org/wiki/M%C3%B6bius_transformation
// [Stereographic projection]: https://en.wikipedia.org/wiki/Stereographic_projection
package mobius

// Package gcs provides the curve kernel of a 2D geometric constraint solver:
// parametric curves whose points and normals can be evaluated together with
// their first derivatives with respect to any one solver parameter.
//
// The package does not solve constraint systems itself. A solver owns the
// parameters, decides which of them are free, and calls into the curves to
// compute residuals and gradients.
//
// # Parameters
//
// All scalars that define a curve live in a [Params] arena owned by the
// solver. Curves store [Param] handles into the arena instead of numbers, and
// read the current values whenever they are evaluated.
//
// Handles double as differentiation tokens. Evaluation methods take a
// derivparam argument, and every returned [DeriVec2] carries the derivative of
// the result with respect to that parameter. Handles are compared by identity:
// a curve knows that a coordinate has a derivative of 1 because its handle is
// derivparam, not because it holds a particular value. Passing [NoParam]
// yields plain values with zero derivatives.
//
// # Curves
//
// The package includes the following curves, all implementing [Curve]:
//   - [Line]
//   - [Circle] and [Arc]
//   - [Ellipse] and [ArcOfEllipse]
//   - [Hyperbola] and [ArcOfHyperbola]
//   - [Parabola] and [ArcOfParabola]
//   - [BSpline], rational and optionally periodic
//
// The arc variants compose the underlying curve with a [Trim], holding start
// and end points and curve parameters. Trims do not influence evaluation.
//
// # Snapshots
//
// [Curve.PushOwnParams] and [Curve.ReconstructOnNewPvec] flatten a curve's
// handles into a slice and read them back, in the same, type-specific order.
// A solver uses this to move curves onto a new parameter vector, for example
// after copying the free parameters into a working arena, without knowing
// anything about the curve types. [PushAll] and [ReconstructAll] do the same
// for a list of curves.
//
// # Degenerate geometry
//
// Evaluation never fails. Zero-length vectors have a length derivative of 1
// and normalize to the zero vector, so that solvers can step away from
// singular configurations instead of propagating NaNs. Divisions by zero
// focal distances or weight sums are not checked for; callers are expected to
// avoid such configurations.
package gcs

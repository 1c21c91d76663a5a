package gcs

import (
	"errors"
	"fmt"
)

// ErrShortPvec is returned by [ReconstructAll] when the parameter vector ends
// before all curves have been reconstructed.
var ErrShortPvec = errors.New("parameter vector too short")

// Curve describes the geometries known to the solver.
//
// All methods that take a derivparam return derivatives with respect to that
// parameter. Pass [NoParam] to get plain values.
type Curve interface {
	// Value returns the point on the curve at the curve parameter u.
	//
	// du is the derivative of u itself with respect to derivparam. It is
	// usually zero, unless u is a solver parameter.
	Value(ps *Params, u, du float64, derivparam Param) DeriVec2

	// CalculateNormal returns a vector normal to the curve at p, which is
	// assumed to lie on the curve. The vector is generally not normalized.
	CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2

	// PushOwnParams appends the curve's parameters to pvec, in a fixed order,
	// and returns how many it appended.
	PushOwnParams(pvec *[]Param) int

	// ReconstructOnNewPvec reads the curve's parameters from pvec, starting
	// at *cnt, in the same order PushOwnParams writes them. It advances *cnt
	// past the consumed parameters.
	ReconstructOnNewPvec(pvec []Param, cnt *int)

	// Copy returns an independent copy of the curve. The copy refers to the
	// same parameters as the original.
	Copy() Curve

	// Kind reports the type of the curve.
	Kind() Kind
}

// Kind identifies the concrete type of a [Curve].
type Kind int

const (
	LineKind Kind = iota + 1
	CircleKind
	ArcKind
	EllipseKind
	ArcOfEllipseKind
	HyperbolaKind
	ArcOfHyperbolaKind
	ParabolaKind
	ArcOfParabolaKind
	BSplineKind
)

func (k Kind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case CircleKind:
		return "Circle"
	case ArcKind:
		return "Arc"
	case EllipseKind:
		return "Ellipse"
	case ArcOfEllipseKind:
		return "ArcOfEllipse"
	case HyperbolaKind:
		return "Hyperbola"
	case ArcOfHyperbolaKind:
		return "ArcOfHyperbola"
	case ParabolaKind:
		return "Parabola"
	case ArcOfParabolaKind:
		return "ArcOfParabola"
	case BSplineKind:
		return "BSpline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Trim holds the trimming data of arcs: the start and end points and the
// start and end values of the curve parameter. It is composed into the arc
// variants of the curves and is independent of the underlying curve's own
// parameters.
type Trim struct {
	Start      Point
	End        Point
	StartAngle Param
	EndAngle   Param
}

// NewTrim creates the parameters of a trim in ps.
func NewTrim(ps *Params, start, end Vec2, startAngle, endAngle float64) Trim {
	return Trim{
		Start:      NewPoint(ps, start.X, start.Y),
		End:        NewPoint(ps, end.X, end.Y),
		StartAngle: ps.New(startAngle),
		EndAngle:   ps.New(endAngle),
	}
}

// PushOwnParams appends start, end, start angle, and end angle to pvec.
func (t Trim) PushOwnParams(pvec *[]Param) int {
	cnt := t.Start.PushOwnParams(pvec)
	cnt += t.End.PushOwnParams(pvec)
	*pvec = append(*pvec, t.StartAngle, t.EndAngle)
	return cnt + 2
}

func (t *Trim) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	t.Start.ReconstructOnNewPvec(pvec, cnt)
	t.End.ReconstructOnNewPvec(pvec, cnt)
	t.StartAngle = pvec[*cnt]
	*cnt++
	t.EndAngle = pvec[*cnt]
	*cnt++
}

// PushAll appends the parameters of all curves to pvec and returns the total
// count.
func PushAll(curves []Curve, pvec *[]Param) int {
	n := 0
	for _, c := range curves {
		n += c.PushOwnParams(pvec)
	}
	return n
}

// ReconstructAll reads back the parameters of all curves from pvec, in the
// order [PushAll] wrote them. It returns the number of parameters consumed.
//
// If pvec is too short, ReconstructAll stops before the offending curve, which
// is left unchanged, and returns an error wrapping [ErrShortPvec].
func ReconstructAll(curves []Curve, pvec []Param) (int, error) {
	cnt := 0
	var scratch []Param
	for i, c := range curves {
		scratch = scratch[:0]
		if n := c.PushOwnParams(&scratch); cnt+n > len(pvec) {
			return cnt, fmt.Errorf("curve %d (%v) needs %d parameters at offset %d, have %d: %w",
				i, c.Kind(), n, cnt, len(pvec), ErrShortPvec)
		}
		c.ReconstructOnNewPvec(pvec, &cnt)
	}
	return cnt, nil
}

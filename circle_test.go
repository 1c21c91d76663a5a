package gcs

import (
	"math"
	"testing"
)

func TestCircleUnit(t *testing.T) {
	ps := NewParams()
	c := &Circle{Center: NewPoint(ps, 0, 0), Rad: ps.New(1)}

	diff(t, Vec(1, 0), c.Value(ps, 0, 0, NoParam).Value(), approx)
	diff(t, Vec(0, 1), c.Value(ps, math.Pi/2, 0, NoParam).Value(), approx)

	p := NewPoint(ps, 1, 0)
	diff(t, DVec(-1, 0, 0, 0), c.CalculateNormal(ps, p, NoParam))
	diff(t, DVec(-1, 0, -1, 0), c.CalculateNormal(ps, p, p.X))
	diff(t, DVec(-1, 0, 1, 0), c.CalculateNormal(ps, p, c.Center.X))

	// Growing the radius moves the point outwards.
	diff(t, DVec(0, 1, 0, 1), c.Value(ps, math.Pi/2, 0, c.Rad), approx)

	for _, u := range []float64{-3, -1, 0.5, 2} {
		d := c.Value(ps, u, 0, NoParam).Value().Sub(c.Center.Vec(ps))
		if r2 := d.Hypot2(); math.Abs(r2-1) > 1e-12 {
			t.Errorf("at u=%g: squared distance from center %v, want 1", u, r2)
		}
		if a := d.Angle(); math.Abs(a-u) > 1e-12 {
			t.Errorf("at u=%g: angle %v", u, a)
		}
	}

	if a := c.Area(ps); math.Abs(a-math.Pi) > 1e-15 {
		t.Errorf("got area %v, want π", a)
	}
}

func TestCircleDerivatives(t *testing.T) {
	ps := NewParams()
	c := &Circle{Center: NewPoint(ps, 2, -1), Rad: ps.New(3)}
	p := NewPoint(ps, 4, 1)
	for _, u := range []float64{0, 1, 2.5, -4} {
		checkDerivatives(t, ps, ownParams(c), func(dp Param) DeriVec2 {
			return c.Value(ps, u, 0, dp)
		})
		checkCurveParamDerivative(t, ps, c, u)
	}
	checkDerivatives(t, ps, append(ownParams(c), p.X, p.Y), func(dp Param) DeriVec2 {
		return c.CalculateNormal(ps, p, dp)
	})
}

func TestArcEvaluatesLikeCircle(t *testing.T) {
	ps := NewParams()
	a := &Arc{
		Circle: Circle{Center: NewPoint(ps, 1, 1), Rad: ps.New(2)},
		Trim:   NewTrim(ps, Vec(3, 1), Vec(1, 3), 0, math.Pi/2),
	}
	c := a.Circle
	for _, u := range []float64{0, 0.5, math.Pi / 2} {
		diff(t, c.Value(ps, u, 0, c.Rad), a.Value(ps, u, 0, c.Rad))
		// The trim does not influence the curve.
		diff(t, c.Value(ps, u, 0, NoParam), a.Value(ps, u, 0, a.StartAngle))
	}
	if k := a.Kind(); k != ArcKind {
		t.Errorf("got kind %v, want %v", k, ArcKind)
	}
}

package gcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// testCurves returns one curve of each kind, plus a periodic B-spline.
func testCurves(ps *Params) []Curve {
	return []Curve{
		&Line{NewPoint(ps, 1, -2), NewPoint(ps, 4, 2.5)},
		&Circle{Center: NewPoint(ps, 2, -1), Rad: ps.New(3)},
		&Arc{
			Circle: Circle{Center: NewPoint(ps, 1, 1), Rad: ps.New(2)},
			Trim:   NewTrim(ps, Vec(3, 1), Vec(1, 3), 0, math.Pi/2),
		},
		newTestEllipse(ps),
		&ArcOfEllipse{Ellipse: *newTestEllipse(ps), Trim: NewTrim(ps, Vec(0, 0), Vec(1, 1), -1, 1)},
		newTestHyperbola(ps),
		&ArcOfHyperbola{Hyperbola: *newTestHyperbola(ps), Trim: NewTrim(ps, Vec(3, 4), Vec(5, 6), -1, 1)},
		newTestParabola(ps),
		&ArcOfParabola{Parabola: *newTestParabola(ps), Trim: NewTrim(ps, Vec(0, 0), Vec(0, 0), -2, 2)},
		clampedCubic(ps),
		periodicCubic(ps),
	}
}

func TestPushOwnParamsCounts(t *testing.T) {
	ps := NewParams()
	want := []int{4, 3, 9, 5, 11, 5, 11, 4, 10, 22, 21}
	for i, c := range testCurves(ps) {
		pvec := []Param{NoParam}
		n := c.PushOwnParams(&pvec)
		if n != want[i] {
			t.Errorf("%v pushed %d parameters, want %d", c.Kind(), n, want[i])
		}
		if len(pvec) != n+1 {
			t.Errorf("%v reported %d parameters but appended %d", c.Kind(), n, len(pvec)-1)
		}
	}
}

func TestPushOwnParamsOrder(t *testing.T) {
	ps := NewParams()
	a := &Arc{
		Circle: Circle{Center: NewPoint(ps, 1, 1), Rad: ps.New(2)},
		Trim:   NewTrim(ps, Vec(3, 1), Vec(1, 3), 0, math.Pi/2),
	}
	diff(t, []Param{
		a.Center.X, a.Center.Y, a.Rad,
		a.Start.X, a.Start.Y, a.End.X, a.End.Y, a.StartAngle, a.EndAngle,
	}, ownParams(a))

	bs := newTestBSpline(ps,
		[]Vec2{{0, 0}, {1, 1}},
		[]float64{1, 2},
		[]float64{0, 1},
		[]int{2, 2},
		1, false)
	diff(t, []Param{
		bs.Poles[0].X, bs.Poles[0].Y, bs.Poles[1].X, bs.Poles[1].Y,
		bs.Weights[0], bs.Weights[1],
		bs.Knots[0], bs.Knots[1],
		bs.Start.X, bs.Start.Y, bs.End.X, bs.End.Y,
	}, ownParams(bs))
}

func TestReconstructOnNewPvec(t *testing.T) {
	ps := NewParams()
	p := NewPoint(ps, 0.5, 0.25)
	for _, c := range testCurves(ps) {
		pvec := []Param{NoParam, NoParam}
		c.PushOwnParams(&pvec)

		// Move the parameters into a new arena.
		ps2 := NewParams()
		pvec2 := []Param{NoParam, NoParam}
		for _, q := range pvec[2:] {
			pvec2 = append(pvec2, ps2.New(ps.Value(q)))
		}
		p2 := NewPoint(ps2, 0.5, 0.25)

		cp := c.Copy()
		cnt := 2
		cp.ReconstructOnNewPvec(pvec2, &cnt)
		if cnt != len(pvec2) {
			t.Errorf("%v: cursor at %d, want %d", c.Kind(), cnt, len(pvec2))
		}
		diff(t, pvec2[2:], ownParams(cp))
		diff(t, pvec[2:], ownParams(c))

		// No arithmetic happens, so results are bit-identical.
		diff(t, c.Value(ps, 0.5, 0, NoParam), cp.Value(ps2, 0.5, 0, NoParam))
		diff(t, c.Value(ps, 0.5, 1, pvec[2]), cp.Value(ps2, 0.5, 1, pvec2[2]))
		diff(t, c.CalculateNormal(ps, p, NoParam), cp.CalculateNormal(ps2, p2, NoParam))
	}
}

func TestReconstructAll(t *testing.T) {
	ps := NewParams()
	curves := testCurves(ps)
	var pvec []Param
	n := PushAll(curves, &pvec)
	require.Len(t, pvec, n)

	copies := make([]Curve, len(curves))
	for i, c := range curves {
		copies[i] = c.Copy()
	}
	got, err := ReconstructAll(copies, pvec)
	require.NoError(t, err)
	require.Equal(t, n, got)

	last := curves[len(curves)-1]
	got, err = ReconstructAll(copies, pvec[:n-1])
	require.ErrorIs(t, err, ErrShortPvec)
	require.Equal(t, n-len(ownParams(last)), got)
}

func TestCopyIsIndependent(t *testing.T) {
	ps := NewParams()
	for _, c := range testCurves(ps) {
		before := ownParams(c)
		cp := c.Copy()
		require.Equal(t, c.Kind(), cp.Kind())

		pvec := ownParams(cp)
		for i := range pvec {
			pvec[i] = ps.New(0)
		}
		cnt := 0
		cp.ReconstructOnNewPvec(pvec, &cnt)
		require.Equal(t, before, ownParams(c), "%v", c.Kind())
		require.Equal(t, pvec, ownParams(cp), "%v", c.Kind())
	}
}

func TestCurveParamDerivative(t *testing.T) {
	ps := NewParams()
	for _, c := range testCurves(ps) {
		for _, u := range []float64{0.5, 1.3} {
			checkCurveParamDerivative(t, ps, c, u)
		}
	}
}

func TestKindString(t *testing.T) {
	ps := NewParams()
	want := []string{
		"Line", "Circle", "Arc", "Ellipse", "ArcOfEllipse", "Hyperbola",
		"ArcOfHyperbola", "Parabola", "ArcOfParabola", "BSpline", "BSpline",
	}
	for i, c := range testCurves(ps) {
		require.Equal(t, want[i], c.Kind().String())
	}
	require.Equal(t, "Kind(99)", Kind(99).String())
}

package gcs

import "math"

// Ellipse is defined by its center, one of its foci, and the minor radius.
// The major radius is derived from the focal distance.
//
// The ellipse is parametrized by the eccentric anomaly u: in the ellipse's
// local coordinate system, Value(u) = (a·cos u, b·sin u), with the x axis
// pointing from the center to Focus1.
type Ellipse struct {
	Center Point
	Focus1 Point
	RadMin Param
}

var _ Curve = (*Ellipse)(nil)

func (e *Ellipse) Kind() Kind { return EllipseKind }

// RadMajD returns the major radius and its derivative for pre-built center
// and focus vectors and a minor radius b with derivative db.
func (e *Ellipse) RadMajD(center, f1 DeriVec2, b, db float64) (float64, float64) {
	cf, dcf := f1.Sub(center).HypotD()
	// a² = b² + cf², which is the formula for the length of the vector (b, cf).
	return DVec(b, cf, db, dcf).HypotD()
}

// RadMaj returns the major radius and its derivative with respect to
// derivparam.
func (e *Ellipse) RadMaj(ps *Params, derivparam Param) (float64, float64) {
	c := NewDeriVec2FromPoint(ps, e.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, e.Focus1, derivparam)
	return e.RadMajD(c, f1, ps.Value(e.RadMin), deriv(e.RadMin, derivparam))
}

// Focus2 returns the second focus, 2·center − focus1.
func (e *Ellipse) Focus2(ps *Params, derivparam Param) DeriVec2 {
	c := NewDeriVec2FromPoint(ps, e.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, e.Focus1, derivparam)
	return c.LinComb(2, f1, -1)
}

// CalculateNormal returns the sum of the unit vectors from p to both foci.
// By the reflection property of the ellipse, this is the inward normal.
func (e *Ellipse) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	cv := NewDeriVec2FromPoint(ps, e.Center, derivparam)
	f1v := NewDeriVec2FromPoint(ps, e.Focus1, derivparam)
	pv := NewDeriVec2FromPoint(ps, p, derivparam)

	f2v := cv.LinComb(2, f1v, -1)
	pf1 := f1v.Sub(pv)
	pf2 := f2v.Sub(pv)
	return pf1.Normalize().Add(pf2.Normalize())
}

func (e *Ellipse) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	// center + a_vec·cos(u) + b_vec·sin(u)
	c := NewDeriVec2FromPoint(ps, e.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, e.Focus1, derivparam)

	emaj := f1.Sub(c).Normalize()
	emin := emaj.Rotate90CCW()
	b, db := ps.Value(e.RadMin), deriv(e.RadMin, derivparam)
	a, da := e.RadMajD(c, f1, b, db)
	avec := emaj.MulD(a, da)
	bvec := emin.MulD(b, db)

	si, dsi, co, dco := sincosD(u, du)
	return avec.MulD(co, dco).Add(bvec.MulD(si, dsi)).Add(c)
}

// Area returns the area of the ellipse.
func (e *Ellipse) Area(ps *Params) float64 {
	a, _ := e.RadMaj(ps, NoParam)
	return math.Pi * a * ps.Value(e.RadMin)
}

func (e *Ellipse) PushOwnParams(pvec *[]Param) int {
	cnt := e.Center.PushOwnParams(pvec)
	cnt += e.Focus1.PushOwnParams(pvec)
	*pvec = append(*pvec, e.RadMin)
	return cnt + 1
}

func (e *Ellipse) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	e.Center.ReconstructOnNewPvec(pvec, cnt)
	e.Focus1.ReconstructOnNewPvec(pvec, cnt)
	e.RadMin = pvec[*cnt]
	*cnt++
}

func (e *Ellipse) Copy() Curve {
	cp := *e
	return &cp
}

package gcs

import "math"

// Hyperbola is defined like [Ellipse], by its center, a focus, and the minor
// radius, except that the major radius satisfies a² = cf² − b².
//
// Value(u) = (a·cosh u, b·sinh u) in the local coordinate system, which traces
// the branch around Focus1.
type Hyperbola struct {
	Center Point
	Focus1 Point
	RadMin Param
}

var _ Curve = (*Hyperbola)(nil)

func (h *Hyperbola) Kind() Kind { return HyperbolaKind }

// RadMajD returns the major radius and its derivative for pre-built center
// and focus vectors and a minor radius b with derivative db.
func (h *Hyperbola) RadMajD(center, f1 DeriVec2, b, db float64) (float64, float64) {
	cf, dcf := f1.Sub(center).HypotD()
	a := math.Sqrt(cf*cf - b*b)
	return a, (dcf*cf - db*b) / a
}

// RadMaj returns the major radius and its derivative with respect to
// derivparam.
func (h *Hyperbola) RadMaj(ps *Params, derivparam Param) (float64, float64) {
	c := NewDeriVec2FromPoint(ps, h.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, h.Focus1, derivparam)
	return h.RadMajD(c, f1, ps.Value(h.RadMin), deriv(h.RadMin, derivparam))
}

// Focus2 returns the second focus, 2·center − focus1.
func (h *Hyperbola) Focus2(ps *Params, derivparam Param) DeriVec2 {
	c := NewDeriVec2FromPoint(ps, h.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, h.Focus1, derivparam)
	return c.LinComb(2, f1, -1)
}

// CalculateNormal returns the sum of the unit vectors from Focus1 to p and
// from p to the second focus.
func (h *Hyperbola) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	cv := NewDeriVec2FromPoint(ps, h.Center, derivparam)
	f1v := NewDeriVec2FromPoint(ps, h.Focus1, derivparam)
	pv := NewDeriVec2FromPoint(ps, p, derivparam)

	f2v := cv.LinComb(2, f1v, -1)
	// Unlike for the ellipse, the first focal vector is inverted.
	pf1 := f1v.Sub(pv).Negate()
	pf2 := f2v.Sub(pv)
	return pf1.Normalize().Add(pf2.Normalize())
}

func (h *Hyperbola) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	// center + a_vec·cosh(u) + b_vec·sinh(u)
	c := NewDeriVec2FromPoint(ps, h.Center, derivparam)
	f1 := NewDeriVec2FromPoint(ps, h.Focus1, derivparam)

	emaj := f1.Sub(c).Normalize()
	emin := emaj.Rotate90CCW()
	b, db := ps.Value(h.RadMin), deriv(h.RadMin, derivparam)
	a, da := h.RadMajD(c, f1, b, db)
	avec := emaj.MulD(a, da)
	bvec := emin.MulD(b, db)

	co, si := math.Cosh(u), math.Sinh(u)
	dco, dsi := si*du, co*du
	return avec.MulD(co, dco).Add(bvec.MulD(si, dsi)).Add(c)
}

func (h *Hyperbola) PushOwnParams(pvec *[]Param) int {
	cnt := h.Center.PushOwnParams(pvec)
	cnt += h.Focus1.PushOwnParams(pvec)
	*pvec = append(*pvec, h.RadMin)
	return cnt + 1
}

func (h *Hyperbola) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	h.Center.ReconstructOnNewPvec(pvec, cnt)
	h.Focus1.ReconstructOnNewPvec(pvec, cnt)
	h.RadMin = pvec[*cnt]
	*cnt++
}

func (h *Hyperbola) Copy() Curve {
	cp := *h
	return &cp
}

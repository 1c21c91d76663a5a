package gcs

import "math"

// Circle is parametrized by angle: u = 0 is at Center + (Rad, 0) and the
// curve runs counter-clockwise.
type Circle struct {
	Center Point
	Rad    Param
}

var _ Curve = (*Circle)(nil)

func (c *Circle) Kind() Kind { return CircleKind }

// Radius returns the current radius.
func (c *Circle) Radius(ps *Params) float64 {
	return ps.Value(c.Rad)
}

func (c *Circle) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	cv := NewDeriVec2FromPoint(ps, c.Center, derivparam)
	ex := DVec(ps.Value(c.Rad), 0, deriv(c.Rad, derivparam), 0)
	ey := ex.Rotate90CCW()
	si, dsi, co, dco := sincosD(u, du)
	return cv.Add(ex.MulD(co, dco).Add(ey.MulD(si, dsi)))
}

// CalculateNormal returns the vector from p to the center.
func (c *Circle) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	cv := NewDeriVec2FromPoint(ps, c.Center, derivparam)
	pv := NewDeriVec2FromPoint(ps, p, derivparam)
	return cv.Sub(pv)
}

// Area returns the area of the circle.
func (c *Circle) Area(ps *Params) float64 {
	r := c.Radius(ps)
	return math.Pi * r * r
}

func (c *Circle) PushOwnParams(pvec *[]Param) int {
	cnt := c.Center.PushOwnParams(pvec)
	*pvec = append(*pvec, c.Rad)
	return cnt + 1
}

func (c *Circle) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	c.Center.ReconstructOnNewPvec(pvec, cnt)
	c.Rad = pvec[*cnt]
	*cnt++
}

func (c *Circle) Copy() Curve {
	cp := *c
	return &cp
}

package gcs

// Parabola is defined by its vertex and focus. In the local coordinate system,
// with the x axis pointing from the vertex to the focus,
//
//	Value(u) = (u²/(4f), u)
//
// where f is the focal length.
type Parabola struct {
	Vertex Point
	Focus1 Point
}

var _ Curve = (*Parabola)(nil)

func (pb *Parabola) Kind() Kind { return ParabolaKind }

// FocalLength returns the distance between vertex and focus and its
// derivative.
func (pb *Parabola) FocalLength(ps *Params, derivparam Param) (float64, float64) {
	c := NewDeriVec2FromPoint(ps, pb.Vertex, derivparam)
	f1 := NewDeriVec2FromPoint(ps, pb.Focus1, derivparam)
	return f1.Sub(c).HypotD()
}

// CalculateNormal returns the difference of the unit vector along the axis,
// pointing away from the focus, and the unit vector from p to the focus.
//
// p is as far from the focus as from the directrix, so the difference of the
// two unit vectors bisects the angle between them and is normal at p.
func (pb *Parabola) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	cv := NewDeriVec2FromPoint(ps, pb.Vertex, derivparam)
	f1v := NewDeriVec2FromPoint(ps, pb.Focus1, derivparam)
	pv := NewDeriVec2FromPoint(ps, p, derivparam)
	return cv.Sub(f1v).Normalize().Sub(f1v.Sub(pv).Normalize())
}

func (pb *Parabola) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	c := NewDeriVec2FromPoint(ps, pb.Vertex, derivparam)
	f1 := NewDeriVec2FromPoint(ps, pb.Focus1, derivparam)

	fv := f1.Sub(c)
	f, df := fv.HypotD()

	xdir := fv.Normalize()
	ydir := xdir.Rotate90CCW()

	dirx := xdir.MulD(u, du).MulD(u, du).DivD(4*f, 4*df)
	diry := ydir.MulD(u, du)
	return c.Add(dirx.Add(diry))
}

func (pb *Parabola) PushOwnParams(pvec *[]Param) int {
	return pb.Vertex.PushOwnParams(pvec) + pb.Focus1.PushOwnParams(pvec)
}

func (pb *Parabola) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	pb.Vertex.ReconstructOnNewPvec(pvec, cnt)
	pb.Focus1.ReconstructOnNewPvec(pvec, cnt)
}

func (pb *Parabola) Copy() Curve {
	cp := *pb
	return &cp
}

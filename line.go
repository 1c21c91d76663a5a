package gcs

// Line is the line through P1 and P2. It is parametrized so that u = 0 is at
// P1 and u = 1 is at P2.
type Line struct {
	P1 Point
	P2 Point
}

var _ Curve = (*Line)(nil)

func (l *Line) Kind() Kind { return LineKind }

// Value linearly interpolates between P1 and P2.
func (l *Line) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	p1 := NewDeriVec2FromPoint(ps, l.P1, derivparam)
	p2 := NewDeriVec2FromPoint(ps, l.P2, derivparam)
	return p1.Add(p2.Sub(p1).MulD(u, du))
}

// CalculateNormal returns the direction of the line rotated by 90°
// counter-clockwise. It doesn't depend on p.
func (l *Line) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	p1 := NewDeriVec2FromPoint(ps, l.P1, derivparam)
	p2 := NewDeriVec2FromPoint(ps, l.P2, derivparam)
	return p2.Sub(p1).Rotate90CCW()
}

// Length returns the distance between P1 and P2.
func (l *Line) Length(ps *Params) float64 {
	return l.P2.Vec(ps).Sub(l.P1.Vec(ps)).Hypot()
}

func (l *Line) PushOwnParams(pvec *[]Param) int {
	return l.P1.PushOwnParams(pvec) + l.P2.PushOwnParams(pvec)
}

func (l *Line) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	l.P1.ReconstructOnNewPvec(pvec, cnt)
	l.P2.ReconstructOnNewPvec(pvec, cnt)
}

func (l *Line) Copy() Curve {
	cp := *l
	return &cp
}

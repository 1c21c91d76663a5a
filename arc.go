package gcs

// The arc types evaluate exactly like the curves they trim. Their trims are
// data for constraints and display; Value and CalculateNormal ignore them.

// Arc is a circular arc.
type Arc struct {
	Circle
	Trim
}

var _ Curve = (*Arc)(nil)

func (a *Arc) Kind() Kind { return ArcKind }

func (a *Arc) PushOwnParams(pvec *[]Param) int {
	cnt := a.Circle.PushOwnParams(pvec)
	return cnt + a.Trim.PushOwnParams(pvec)
}

func (a *Arc) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	a.Circle.ReconstructOnNewPvec(pvec, cnt)
	a.Trim.ReconstructOnNewPvec(pvec, cnt)
}

func (a *Arc) Copy() Curve {
	cp := *a
	return &cp
}

// ArcOfEllipse is an elliptical arc.
type ArcOfEllipse struct {
	Ellipse
	Trim
}

var _ Curve = (*ArcOfEllipse)(nil)

func (a *ArcOfEllipse) Kind() Kind { return ArcOfEllipseKind }

func (a *ArcOfEllipse) PushOwnParams(pvec *[]Param) int {
	cnt := a.Ellipse.PushOwnParams(pvec)
	return cnt + a.Trim.PushOwnParams(pvec)
}

func (a *ArcOfEllipse) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	a.Ellipse.ReconstructOnNewPvec(pvec, cnt)
	a.Trim.ReconstructOnNewPvec(pvec, cnt)
}

func (a *ArcOfEllipse) Copy() Curve {
	cp := *a
	return &cp
}

// ArcOfHyperbola is an arc of one branch of a hyperbola.
type ArcOfHyperbola struct {
	Hyperbola
	Trim
}

var _ Curve = (*ArcOfHyperbola)(nil)

func (a *ArcOfHyperbola) Kind() Kind { return ArcOfHyperbolaKind }

func (a *ArcOfHyperbola) PushOwnParams(pvec *[]Param) int {
	cnt := a.Hyperbola.PushOwnParams(pvec)
	return cnt + a.Trim.PushOwnParams(pvec)
}

func (a *ArcOfHyperbola) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	a.Hyperbola.ReconstructOnNewPvec(pvec, cnt)
	a.Trim.ReconstructOnNewPvec(pvec, cnt)
}

func (a *ArcOfHyperbola) Copy() Curve {
	cp := *a
	return &cp
}

// ArcOfParabola is an arc of a parabola.
type ArcOfParabola struct {
	Parabola
	Trim
}

var _ Curve = (*ArcOfParabola)(nil)

func (a *ArcOfParabola) Kind() Kind { return ArcOfParabolaKind }

func (a *ArcOfParabola) PushOwnParams(pvec *[]Param) int {
	cnt := a.Parabola.PushOwnParams(pvec)
	return cnt + a.Trim.PushOwnParams(pvec)
}

func (a *ArcOfParabola) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	a.Parabola.ReconstructOnNewPvec(pvec, cnt)
	a.Trim.ReconstructOnNewPvec(pvec, cnt)
}

func (a *ArcOfParabola) Copy() Curve {
	cp := *a
	return &cp
}

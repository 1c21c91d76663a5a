package gcs

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidBSpline is returned by [BSpline.Validate] for inconsistent
// pole, weight, knot, or multiplicity arrays.
var ErrInvalidBSpline = errors.New("invalid B-spline")

// BSpline is a rational, non-uniform B-spline of arbitrary degree. It may be
// periodic.
//
// Knots holds the distinct knot values and Mult their multiplicities. The
// full knot vector used for evaluation is derived from both and cached; see
// [BSpline.FlattenedKnots].
//
// The curve parameter u ranges over the knot values, from the first knot to
// the last. Periodic splines accept any u and repeat with the period
// Knots[last] − Knots[0].
type BSpline struct {
	Poles    []Point
	Weights  []Param
	Knots    []Param
	Mult     []int
	Degree   int
	Periodic bool
	// Start and End are the end points of the curve, kept in sync with the
	// curve by constraints.
	Start Point
	End   Point

	flattenedKnots []float64
}

var _ Curve = (*BSpline)(nil)

func (bs *BSpline) Kind() Kind { return BSplineKind }

// Validate checks that the arrays of the B-spline fit together.
func (bs *BSpline) Validate() error {
	if bs.Degree < 1 {
		return fmt.Errorf("%w: degree %d", ErrInvalidBSpline, bs.Degree)
	}
	if len(bs.Weights) != len(bs.Poles) {
		return fmt.Errorf("%w: %d weights for %d poles", ErrInvalidBSpline, len(bs.Weights), len(bs.Poles))
	}
	if len(bs.Mult) != len(bs.Knots) {
		return fmt.Errorf("%w: %d multiplicities for %d knots", ErrInvalidBSpline, len(bs.Mult), len(bs.Knots))
	}
	if len(bs.Knots) < 2 {
		return fmt.Errorf("%w: need at least 2 knots, got %d", ErrInvalidBSpline, len(bs.Knots))
	}
	sum := 0
	for i, m := range bs.Mult {
		if m < 1 || m > bs.Degree+1 {
			return fmt.Errorf("%w: multiplicity %d of knot %d out of range [1, %d]", ErrInvalidBSpline, m, i, bs.Degree+1)
		}
		sum += m
	}
	if bs.Periodic {
		if sum-bs.Mult[len(bs.Mult)-1] != len(bs.Poles) {
			return fmt.Errorf("%w: periodic spline with %d poles needs multiplicities (without the last) to sum to %d, got %d",
				ErrInvalidBSpline, len(bs.Poles), len(bs.Poles), sum-bs.Mult[len(bs.Mult)-1])
		}
	} else if sum != len(bs.Poles)+bs.Degree+1 {
		return fmt.Errorf("%w: %d poles of degree %d need multiplicities to sum to %d, got %d",
			ErrInvalidBSpline, len(bs.Poles), bs.Degree, len(bs.Poles)+bs.Degree+1, sum)
	}
	return nil
}

// SetupFlattenedKnots expands Knots and Mult into the full, non-decreasing
// knot vector.
//
// For periodic splines, degree+1−Mult[0] knots are copied from each end of the
// vector to the other, shifted by the period.
func (bs *BSpline) SetupFlattenedKnots(ps *Params) {
	var fk []float64
	for i, k := range bs.Knots {
		v := ps.Value(k)
		for range bs.Mult[i] {
			fk = append(fk, v)
		}
	}

	if c := bs.Degree + 1 - bs.Mult[0]; bs.Periodic && c > 0 {
		period := ps.Value(bs.Knots[len(bs.Knots)-1]) - ps.Value(bs.Knots[0])
		n := len(fk)
		multFront := bs.Mult[0]
		multBack := bs.Mult[len(bs.Mult)-1]

		front := slices.Clone(fk[n-multBack-c : n-multBack])
		back := slices.Clone(fk[multFront : multFront+c])
		for i := range front {
			front[i] -= period
		}
		for i := range back {
			back[i] += period
		}
		fk = slices.Concat(front, fk, back)
	}
	bs.flattenedKnots = fk
}

// FlattenedKnots returns the full knot vector, computing it on first use.
//
// The result is cached. Call [BSpline.InvalidateKnots] after changing Knots,
// Mult, or the values of the knot parameters.
func (bs *BSpline) FlattenedKnots(ps *Params) []float64 {
	if len(bs.flattenedKnots) == 0 {
		bs.SetupFlattenedKnots(ps)
	}
	return bs.flattenedKnots
}

// InvalidateKnots drops the cached full knot vector.
func (bs *BSpline) InvalidateKnots() {
	bs.flattenedKnots = nil
}

// SplineValue evaluates a spline of degree p at x using de Boor's algorithm,
// where x lies in the knot span [flatknots[k], flatknots[k+1]) and d holds the
// p+1 coefficients active in that span.
//
// d is overwritten. SplineValue returns 0 if p is out of range for d.
func SplineValue(x float64, k, p int, d, flatknots []float64) float64 {
	if p < 0 || p >= len(d) {
		return 0
	}
	for r := 1; r <= p; r++ {
		for j := p; j > r-1; j-- {
			alpha := (x - flatknots[j+k-p]) / (flatknots[j+1+k-r] - flatknots[j+k-p])
			d[j] = (1.0-alpha)*d[j-1] + alpha*d[j]
		}
	}
	return d[p]
}

// LinCombFactor returns the value at x of the degree p basis function of pole
// i, for x in the knot span starting at flattened knot k. It is the factor of
// pole i in the linear combination that forms the curve point.
func (bs *BSpline) LinCombFactor(ps *Params, x float64, k, i, p int) float64 {
	fk := bs.FlattenedKnots(ps)
	idx := i + p - k
	if idx < 0 || idx > p {
		return 0
	}
	d := make([]float64, p+1)
	d[idx] = 1.0
	return SplineValue(x, k, p, d, fk)
}

// wrap maps u into [Knots[0], Knots[last]) for periodic splines. For all
// other splines, u is returned unchanged.
func (bs *BSpline) wrap(ps *Params, u float64) float64 {
	if !bs.Periodic {
		return u
	}
	first := ps.Value(bs.Knots[0])
	period := ps.Value(bs.Knots[len(bs.Knots)-1]) - first
	if period <= 0 {
		return u
	}
	u = first + math.Mod(u-first, period)
	if u < first {
		u += period
	}
	return u
}

// startPole returns the index of the first pole affecting the curve at u.
func (bs *BSpline) startPole(ps *Params, u float64) int {
	sp := 0
	for j := 1; j < len(bs.Mult) && ps.Value(bs.Knots[j]) <= u; j++ {
		sp += bs.Mult[j]
	}
	if last := len(bs.Poles) - bs.Degree - 1; !bs.Periodic && sp > last {
		// Past the last knot, extrapolate the last span.
		sp = last
	}
	return sp
}

// splineWindow is the set of degree+1 poles affecting the curve in one knot
// span.
type splineWindow struct {
	bs    *BSpline
	ps    *Params
	fk    []float64
	start int
}

func (bs *BSpline) window(ps *Params, u float64) splineWindow {
	return splineWindow{
		bs:    bs,
		ps:    ps,
		fk:    bs.FlattenedKnots(ps),
		start: bs.startPole(ps, u),
	}
}

func (w splineWindow) n() int { return w.bs.Degree + 1 }

// k returns the index of the knot span in the flattened knots.
func (w splineWindow) k() int { return w.start + w.bs.Degree }

func (w splineWindow) pole(i int) Point {
	return w.bs.Poles[(w.start+i)%len(w.bs.Poles)]
}

func (w splineWindow) weight(i int) Param {
	return w.bs.Weights[(w.start+i)%len(w.bs.Weights)]
}

// coeffs returns the homogeneous coefficients x·w, y·w, and w of the window.
func (w splineWindow) coeffs() (xw, yw, ww []float64) {
	n := w.n()
	xw = make([]float64, n)
	yw = make([]float64, n)
	ww = make([]float64, n)
	for i := range n {
		x, y := w.pole(i).Coords(w.ps)
		wt := w.ps.Value(w.weight(i))
		xw[i] = x * wt
		yw[i] = y * wt
		ww[i] = wt
	}
	return xw, yw, ww
}

// slopeCoeffs returns the coefficients of the derivative spline, divided by
// the degree.
func (w splineWindow) slopeCoeffs(c []float64) []float64 {
	p := w.bs.Degree
	sd := make([]float64, p)
	for i := 1; i <= p; i++ {
		sd[i-1] = (c[i] - c[i-1]) / (w.fk[w.start+i+p] - w.fk[w.start+i])
	}
	return sd
}

// slopeSlopeCoeffs returns the coefficients of the second derivative spline,
// divided by degree·(degree−1), given the output of slopeCoeffs.
func (w splineWindow) slopeSlopeCoeffs(sd []float64) []float64 {
	p := w.bs.Degree
	if p < 2 {
		return nil
	}
	ssd := make([]float64, p-1)
	for i := 1; i < p; i++ {
		ssd[i-1] = (sd[i] - sd[i-1]) / (w.fk[w.start+i+p] - w.fk[w.start+i+1])
	}
	return ssd
}

// eval evaluates the spline with coefficients c at u. c is not modified.
func (w splineWindow) eval(u float64, c []float64) float64 {
	return SplineValue(u, w.k(), w.bs.Degree, slices.Clone(c), w.fk)
}

// evalSlope evaluates the first derivative of the spline with coefficients c.
func (w splineWindow) evalSlope(u float64, c []float64) float64 {
	p := w.bs.Degree
	return float64(p) * SplineValue(u, w.k(), p-1, w.slopeCoeffs(c), w.fk)
}

// evalSlopeSlope evaluates the second derivative of the spline with
// coefficients c. It is zero for splines of degree less than 2.
func (w splineWindow) evalSlopeSlope(u float64, c []float64) float64 {
	p := w.bs.Degree
	if p < 2 {
		return 0
	}
	ssd := w.slopeSlopeCoeffs(w.slopeCoeffs(c))
	return float64(p*(p-1)) * SplineValue(u, w.k(), p-2, ssd, w.fk)
}

// basis returns the value and the derivative of the basis function of the
// i-th pole of the window.
func (w splineWindow) basis(u float64, i int) (float64, float64) {
	unit := make([]float64, w.n())
	unit[i] = 1
	return w.eval(u, unit), w.evalSlope(u, unit)
}

// Homogeneous is a point of a rational spline in homogeneous coordinates,
// together with the derivatives with respect to the curve parameter.
type Homogeneous struct {
	XW, YW, W    float64
	DXW, DYW, DW float64
}

// Point returns the Cartesian point XW/W, YW/W.
func (h Homogeneous) Point() Vec2 {
	return Vec(h.XW/h.W, h.YW/h.W)
}

// Tangent returns the derivative of the Cartesian point, multiplied by W².
func (h Homogeneous) Tangent() Vec2 {
	return Vec(h.W*h.DXW-h.DW*h.XW, h.W*h.DYW-h.DW*h.YW)
}

func (w splineWindow) homogeneous(u float64) Homogeneous {
	xw, yw, ww := w.coeffs()
	return Homogeneous{
		XW:  w.eval(u, xw),
		YW:  w.eval(u, yw),
		W:   w.eval(u, ww),
		DXW: w.evalSlope(u, xw),
		DYW: w.evalSlope(u, yw),
		DW:  w.evalSlope(u, ww),
	}
}

// ValueHomogeneous evaluates the numerator and denominator splines of the
// curve at u and their derivatives with respect to u.
func (bs *BSpline) ValueHomogeneous(ps *Params, u float64) Homogeneous {
	u = bs.wrap(ps, u)
	return bs.window(ps, u).homogeneous(u)
}

// Value returns the point of the curve at u.
//
// The derivative is the tangent scaled by du, plus the derivative with respect
// to derivparam if it is a pole coordinate or a weight. Knots are treated as
// constants.
func (bs *BSpline) Value(ps *Params, u, du float64, derivparam Param) DeriVec2 {
	u = bs.wrap(ps, u)
	w := bs.window(ps, u)
	h := w.homogeneous(u)
	tg := h.Tangent()
	w2 := h.W * h.W
	ret := DeriVec2{
		X:  h.XW / h.W,
		Y:  h.YW / h.W,
		DX: du * tg.X / w2,
		DY: du * tg.Y / w2,
	}
	if derivparam == NoParam {
		return ret
	}

	for i := range w.n() {
		pole, wp := w.pole(i), w.weight(i)
		if derivparam != pole.X && derivparam != pole.Y && derivparam != wp {
			continue
		}
		factor, _ := w.basis(u, i)
		switch derivparam {
		case pole.X:
			ret.DX += factor * w.ps.Value(wp) / h.W
		case pole.Y:
			ret.DY += factor * w.ps.Value(wp) / h.W
		case wp:
			x, y := pole.Coords(ps)
			ret.DX += factor * (x - ret.X) / h.W
			ret.DY += factor * (y - ret.Y) / h.W
		}
	}
	return ret
}

// CalculateNormal returns a vector normal to the curve at p, pointing to the
// left when walking along the curve from start to end.
//
// It is only implemented for non-periodic splines whose end knots have
// multiplicity greater than the degree, and only at exactly the start or end
// point. There, the tangent is defined by the first or last two poles. For
// all other points, the zero vector is returned and must not be relied upon.
// Use [BSpline.CalculateNormalAt] for arbitrary points on the curve.
func (bs *BSpline) CalculateNormal(ps *Params, p Point, derivparam Param) DeriVec2 {
	if bs.Periodic || bs.Mult[0] <= bs.Degree || bs.Mult[len(bs.Mult)-1] <= bs.Degree {
		return DeriVec2{}
	}
	n := len(bs.Poles)
	var from, to Point
	switch {
	case p.Coincident(ps, bs.Start):
		from, to = bs.Poles[0], bs.Poles[1]
	case p.Coincident(ps, bs.End):
		from, to = bs.Poles[n-2], bs.Poles[n-1]
	default:
		return DeriVec2{}
	}
	tg := NewDeriVec2FromPoint(ps, to, derivparam).Sub(NewDeriVec2FromPoint(ps, from, derivparam))
	return tg.Rotate90CCW()
}

// CalculateNormalAt returns a vector normal to the curve at the curve
// parameter held by param, pointing to the left of the direction of travel.
// The vector is the tangent of the homogeneous curve, W·(X, Y)′ − W′·(X, Y),
// rotated by 90°.
//
// derivparam may be a pole coordinate, a weight, or param itself. Knots are
// treated as constants.
func (bs *BSpline) CalculateNormalAt(ps *Params, param Param, derivparam Param) DeriVec2 {
	u := bs.wrap(ps, ps.Value(param))
	w := bs.window(ps, u)
	xw, yw, ww := w.coeffs()
	h := w.homogeneous(u)
	tg := h.Tangent()
	result := DeriVec2{X: tg.X, Y: tg.Y}

	if derivparam == NoParam {
		return result.Rotate90CCW()
	}

	if derivparam == param {
		// The terms with W′·X′ cancel out.
		result.DX = h.W*w.evalSlopeSlope(u, xw) - w.evalSlopeSlope(u, ww)*h.XW
		result.DY = h.W*w.evalSlopeSlope(u, yw) - w.evalSlopeSlope(u, ww)*h.YW
		return result.Rotate90CCW()
	}

	for i := range w.n() {
		pole, wp := w.pole(i), w.weight(i)
		if derivparam != pole.X && derivparam != pole.Y && derivparam != wp {
			continue
		}
		factor, slope := w.basis(u, i)
		wt := ps.Value(wp)
		switch derivparam {
		case pole.X:
			result.DX += wt * (h.W*slope - h.DW*factor)
		case pole.Y:
			result.DY += wt * (h.W*slope - h.DW*factor)
		case wp:
			x, y := pole.Coords(ps)
			result.DX += factor*(h.DXW-h.DW*x) - slope*(h.XW-h.W*x)
			result.DY += factor*(h.DYW-h.DW*y) - slope*(h.YW-h.W*y)
		}
	}
	return result.Rotate90CCW()
}

func (bs *BSpline) PushOwnParams(pvec *[]Param) int {
	cnt := 0
	for _, pole := range bs.Poles {
		cnt += pole.PushOwnParams(pvec)
	}
	*pvec = append(*pvec, bs.Weights...)
	cnt += len(bs.Weights)
	*pvec = append(*pvec, bs.Knots...)
	cnt += len(bs.Knots)
	cnt += bs.Start.PushOwnParams(pvec)
	cnt += bs.End.PushOwnParams(pvec)
	return cnt
}

// ReconstructOnNewPvec reads back the parameters written by PushOwnParams. It
// invalidates the cached knot vector.
func (bs *BSpline) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	for i := range bs.Poles {
		bs.Poles[i].ReconstructOnNewPvec(pvec, cnt)
	}
	for i := range bs.Weights {
		bs.Weights[i] = pvec[*cnt]
		*cnt++
	}
	for i := range bs.Knots {
		bs.Knots[i] = pvec[*cnt]
		*cnt++
	}
	bs.Start.ReconstructOnNewPvec(pvec, cnt)
	bs.End.ReconstructOnNewPvec(pvec, cnt)
	bs.InvalidateKnots()
}

func (bs *BSpline) Copy() Curve {
	cp := *bs
	cp.Poles = slices.Clone(bs.Poles)
	cp.Weights = slices.Clone(bs.Weights)
	cp.Knots = slices.Clone(bs.Knots)
	cp.Mult = slices.Clone(bs.Mult)
	cp.flattenedKnots = slices.Clone(bs.flattenedKnots)
	return &cp
}

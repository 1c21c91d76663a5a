package gcs

import (
	"fmt"
	"math"
)

// Point is a pair of parameters holding the x and y coordinates of a point.
type Point struct {
	X Param
	Y Param
}

// NewPoint adds two parameters with the values x and y to ps and returns the
// point made from them.
func NewPoint(ps *Params, x, y float64) Point {
	return Point{X: ps.New(x), Y: ps.New(y)}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%v, %v)", pt.X, pt.Y)
}

// Coords returns the current coordinates of the point.
func (pt Point) Coords(ps *Params) (float64, float64) {
	return ps.Value(pt.X), ps.Value(pt.Y)
}

// Vec returns the current position of the point as a vector from the origin.
func (pt Point) Vec(ps *Params) Vec2 {
	return Vec(pt.Coords(ps))
}

// Set moves the point to (x, y).
func (pt Point) Set(ps *Params, x, y float64) {
	ps.SetValue(pt.X, x)
	ps.SetValue(pt.Y, y)
}

// Coincident reports whether pt and o currently have exactly the same
// coordinates.
func (pt Point) Coincident(ps *Params, o Point) bool {
	x0, y0 := pt.Coords(ps)
	x1, y1 := o.Coords(ps)
	return x0 == x1 && y0 == y1
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN(ps *Params) bool {
	x, y := pt.Coords(ps)
	return math.IsNaN(x) || math.IsNaN(y)
}

// PushOwnParams appends x and y to pvec and returns 2.
func (pt Point) PushOwnParams(pvec *[]Param) int {
	*pvec = append(*pvec, pt.X, pt.Y)
	return 2
}

// ReconstructOnNewPvec reads x and y from pvec at *cnt and advances *cnt.
func (pt *Point) ReconstructOnNewPvec(pvec []Param, cnt *int) {
	pt.X = pvec[*cnt]
	*cnt++
	pt.Y = pvec[*cnt]
	*cnt++
}

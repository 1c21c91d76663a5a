package gcs

import (
	"fmt"
	"math"
)

// DeriVec2 is a 2D vector together with its derivative with respect to a
// single scalar, usually the derivparam of the current evaluation.
//
// All operations propagate the derivative alongside the value, using the usual
// rules of differentiation.
type DeriVec2 struct {
	X  float64
	Y  float64
	DX float64
	DY float64
}

// DVec returns the vector ⟨x, y⟩ with the derivative ⟨dx, dy⟩.
func DVec(x, y, dx, dy float64) DeriVec2 {
	return DeriVec2{X: x, Y: y, DX: dx, DY: dy}
}

// NewDeriVec2FromPoint returns the current position of p. A component has a
// derivative of 1 if its parameter is derivparam, and 0 otherwise.
func NewDeriVec2FromPoint(ps *Params, p Point, derivparam Param) DeriVec2 {
	x, y := p.Coords(ps)
	return DeriVec2{
		X:  x,
		Y:  y,
		DX: deriv(p.X, derivparam),
		DY: deriv(p.Y, derivparam),
	}
}

func (v DeriVec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩′⟨%g, %g⟩", v.X, v.Y, v.DX, v.DY)
}

// Value returns the vector without its derivative.
func (v DeriVec2) Value() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Deriv returns the derivative of the vector.
func (v DeriVec2) Deriv() Vec2 {
	return Vec2{X: v.DX, Y: v.DY}
}

// Hypot returns the length of the vector.
func (v DeriVec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// HypotD returns the length of the vector and its derivative.
//
// The derivative of a zero-length vector is 1.
func (v DeriVec2) HypotD() (l, dl float64) {
	l = v.Hypot()
	if l == 0 {
		return l, 1.0
	}
	return l, (v.X*v.DX + v.Y*v.DY) / l
}

// Normalize returns the unit vector pointing in the direction of v.
//
// The derivative is that of a unit vector: it has no component along the
// vector itself. A zero-length vector yields a zero vector that carries the
// original derivative.
func (v DeriVec2) Normalize() DeriVec2 {
	l := v.Hypot()
	if l == 0 {
		return DeriVec2{DX: v.DX, DY: v.DY}
	}
	ret := DeriVec2{
		X:  v.X / l,
		Y:  v.Y / l,
		DX: v.DX / l,
		DY: v.DY / l,
	}
	// Remove the collinear part of the derivative.
	dsc := ret.DX*ret.X + ret.DY*ret.Y
	ret.DX -= dsc * ret.X
	ret.DY -= dsc * ret.Y
	return ret
}

// Dot returns the dot product of v and o and its derivative.
func (v DeriVec2) Dot(o DeriVec2) (float64, float64) {
	return v.X*o.X + v.Y*o.Y,
		v.DX*o.X + v.X*o.DX + v.DY*o.Y + v.Y*o.DY
}

// Cross returns the z component of the cross product of v and o and its
// derivative.
func (v DeriVec2) Cross(o DeriVec2) (float64, float64) {
	return v.X*o.Y - v.Y*o.X,
		v.DX*o.Y + v.X*o.DY - v.DY*o.X - v.Y*o.DX
}

// Add returns v+o.
func (v DeriVec2) Add(o DeriVec2) DeriVec2 {
	return DeriVec2{
		X:  v.X + o.X,
		Y:  v.Y + o.Y,
		DX: v.DX + o.DX,
		DY: v.DY + o.DY,
	}
}

// Sub returns v-o.
func (v DeriVec2) Sub(o DeriVec2) DeriVec2 {
	return DeriVec2{
		X:  v.X - o.X,
		Y:  v.Y - o.Y,
		DX: v.DX - o.DX,
		DY: v.DY - o.DY,
	}
}

// Mul scales v by a constant.
func (v DeriVec2) Mul(f float64) DeriVec2 {
	return DeriVec2{
		X:  v.X * f,
		Y:  v.Y * f,
		DX: v.DX * f,
		DY: v.DY * f,
	}
}

// MulD scales v by val, whose derivative is dval.
func (v DeriVec2) MulD(val, dval float64) DeriVec2 {
	return DeriVec2{
		X:  v.X * val,
		Y:  v.Y * val,
		DX: v.DX*val + v.X*dval,
		DY: v.DY*val + v.Y*dval,
	}
}

// DivD divides v by val, whose derivative is dval.
func (v DeriVec2) DivD(val, dval float64) DeriVec2 {
	val2 := val * val
	return DeriVec2{
		X:  v.X / val,
		Y:  v.Y / val,
		DX: v.DX/val - v.X*dval/val2,
		DY: v.DY/val - v.Y*dval/val2,
	}
}

// LinComb returns a·v + b·o.
func (v DeriVec2) LinComb(a float64, o DeriVec2, b float64) DeriVec2 {
	return DeriVec2{
		X:  a*v.X + b*o.X,
		Y:  a*v.Y + b*o.Y,
		DX: a*v.DX + b*o.DX,
		DY: a*v.DY + b*o.DY,
	}
}

// Negate returns -v.
func (v DeriVec2) Negate() DeriVec2 {
	return v.Mul(-1)
}

// Rotate90CCW rotates v by 90° counter-clockwise, mapping (x, y) to (-y, x).
func (v DeriVec2) Rotate90CCW() DeriVec2 {
	return DeriVec2{X: -v.Y, Y: v.X, DX: -v.DY, DY: v.DX}
}

// Rotate90CW rotates v by 90° clockwise, mapping (x, y) to (y, -x).
func (v DeriVec2) Rotate90CW() DeriVec2 {
	return DeriVec2{X: v.Y, Y: -v.X, DX: v.DY, DY: -v.DX}
}

// sincosD returns sin(u) and cos(u) together with their derivatives, given
// the derivative du of u.
func sincosD(u, du float64) (si, dsi, co, dco float64) {
	si, co = math.Sincos(u)
	return si, co * du, co, -si * du
}

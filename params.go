package gcs

import (
	"fmt"
	"slices"
)

// Param is a handle to a scalar parameter stored in a [Params] arena.
//
// Handles are compared by identity, never by the value they refer to. Two
// parameters holding the same number are still different parameters. The
// zero value is [NoParam].
type Param uint32

// NoParam refers to no parameter. Passed as the derivparam argument of an
// evaluation, it requests plain values: all derivatives with respect to
// solver parameters are zero.
const NoParam Param = 0

func (p Param) String() string {
	if p == NoParam {
		return "p<none>"
	}
	return fmt.Sprintf("p%d", uint32(p)-1)
}

// Params is the flat parameter store owned by a solver.
//
// Curves never own parameters. They hold handles into a Params and read the
// current values whenever they are evaluated. Handles stay valid for the
// lifetime of the arena; slots are never moved or reused.
type Params struct {
	values []float64
}

// NewParams returns an arena holding the given values, in order.
func NewParams(values ...float64) *Params {
	return &Params{values: slices.Clone(values)}
}

// New adds a parameter with initial value v and returns its handle.
func (ps *Params) New(v float64) Param {
	ps.values = append(ps.values, v)
	return Param(len(ps.values))
}

// Len returns the number of parameters in the arena.
func (ps *Params) Len() int {
	return len(ps.values)
}

// Handles returns the handles of all parameters, in creation order.
func (ps *Params) Handles() []Param {
	out := make([]Param, len(ps.values))
	for i := range out {
		out[i] = Param(i + 1)
	}
	return out
}

func (ps *Params) index(p Param) int {
	if p == NoParam {
		panic("gcs: use of NoParam")
	}
	i := int(p) - 1
	if i >= len(ps.values) {
		panic(fmt.Sprintf("gcs: parameter %v out of range [0:%d]", p, len(ps.values)))
	}
	return i
}

// Value returns the current value of p.
func (ps *Params) Value(p Param) float64 {
	return ps.values[ps.index(p)]
}

// SetValue changes the value of p.
func (ps *Params) SetValue(p Param, v float64) {
	ps.values[ps.index(p)] = v
}

// Snapshot returns a copy of all parameter values.
func (ps *Params) Snapshot() []float64 {
	return slices.Clone(ps.values)
}

// Restore overwrites the parameter values with a snapshot previously taken
// with [Params.Snapshot]. It panics if the snapshot has a different length.
func (ps *Params) Restore(values []float64) {
	if len(values) != len(ps.values) {
		panic(fmt.Sprintf("gcs: restoring %d values into arena of %d", len(values), len(ps.values)))
	}
	copy(ps.values, values)
}

// deriv returns 1 if p is the parameter being differentiated against, and 0
// otherwise.
func deriv(p, derivparam Param) float64 {
	if p != NoParam && p == derivparam {
		return 1
	}
	return 0
}

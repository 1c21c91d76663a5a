package gcs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// checkDerivatives compares the derivative reported by eval for each of the
// given parameters with a central difference.
func checkDerivatives(t *testing.T, ps *Params, params []Param, eval func(derivparam Param) DeriVec2) {
	t.Helper()
	const eps = 1e-6
	for _, p := range params {
		got := eval(p).Deriv()

		v := ps.Value(p)
		ps.SetValue(p, v+eps)
		hi := eval(NoParam).Value()
		ps.SetValue(p, v-eps)
		lo := eval(NoParam).Value()
		ps.SetValue(p, v)

		want := hi.Sub(lo).Mul(1 / (2 * eps))
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
			t.Errorf("derivative with respect to %v (value %g):\n%s", p, v, d)
		}
	}
}

// checkCurveParamDerivative compares the derivative of Value with respect to
// the curve parameter, requested via du = 1, with a central difference.
func checkCurveParamDerivative(t *testing.T, ps *Params, c Curve, u float64) {
	t.Helper()
	const eps = 1e-6
	got := c.Value(ps, u, 1, NoParam).Deriv()
	hi := c.Value(ps, u+eps, 0, NoParam).Value()
	lo := c.Value(ps, u-eps, 0, NoParam).Value()
	want := hi.Sub(lo).Mul(1 / (2 * eps))
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
		t.Errorf("%v: derivative with respect to u at %g:\n%s", c.Kind(), u, d)
	}
}

// ownParams returns the parameters of c, in push order.
func ownParams(c Curve) []Param {
	var pvec []Param
	c.PushOwnParams(&pvec)
	return pvec
}

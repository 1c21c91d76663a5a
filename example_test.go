package gcs_test

import (
	"fmt"
	"math"

	"honnef.co/go/gcs"
)

func ExampleCircle_Value() {
	ps := gcs.NewParams()
	c := &gcs.Circle{Center: gcs.NewPoint(ps, 0, 0), Rad: ps.New(1)}

	// The point at u = π/2 and how it moves when the radius changes.
	v := c.Value(ps, math.Pi/2, 0, c.Rad)
	fmt.Printf("point (%.3f, %.3f), d/dr (%.3f, %.3f)\n", v.X, v.Y, v.DX, v.DY)
	// Output: point (0.000, 1.000), d/dr (0.000, 1.000)
}

func ExampleReconstructAll() {
	ps := gcs.NewParams()
	l := &gcs.Line{P1: gcs.NewPoint(ps, 0, 0), P2: gcs.NewPoint(ps, 2, 0)}

	var pvec []gcs.Param
	gcs.PushAll([]gcs.Curve{l}, &pvec)

	// Move a copy of the line onto a working set of parameters, which can be
	// changed without affecting the original.
	work := gcs.NewParams()
	moved := make([]gcs.Param, len(pvec))
	for i, p := range pvec {
		moved[i] = work.New(ps.Value(p))
	}
	trial := l.Copy()
	if _, err := gcs.ReconstructAll([]gcs.Curve{trial}, moved); err != nil {
		panic(err)
	}
	work.SetValue(moved[3], 1)

	fmt.Println(l.Value(ps, 1, 0, gcs.NoParam).Value())
	fmt.Println(trial.Value(work, 1, 0, gcs.NoParam).Value())
	// Output:
	// ⟨2, 0⟩
	// ⟨2, 1⟩
}

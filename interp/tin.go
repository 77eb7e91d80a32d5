// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package interp

import (
	"github.com/2dChan/dtin"
	"github.com/2dChan/dtin/predicates"
	"github.com/golang/geo/r2"
)

// TIN estimates z by barycentric linear interpolation inside the
// containing triangle.
type TIN struct{}

func (TIN) Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result {
	out := make([]Result, len(locs))
	for i, p := range locs {
		tr, err := t.Locate(p.X, p.Y)
		if err != nil {
			out[i] = Result{Err: err}
			continue
		}
		x0, y0, z0, _ := t.GetPoint(tr.V[0])
		x1, y1, z1, _ := t.GetPoint(tr.V[1])
		x2, y2, z2, _ := t.GetPoint(tr.V[2])
		v0 := r2.Point{X: x0, Y: y0}
		v1 := r2.Point{X: x1, Y: y1}
		v2 := r2.Point{X: x2, Y: y2}

		a0 := predicates.SignedArea2(p, v1, v2)
		a1 := predicates.SignedArea2(p, v2, v0)
		a2 := predicates.SignedArea2(p, v0, v1)
		total := a0 + a1 + a2

		z := (z0*a0 + z1*a1 + z2*a2) / total
		out[i] = Result{Z: z}
	}
	return out
}

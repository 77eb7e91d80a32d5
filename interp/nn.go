// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package interp

import (
	"github.com/2dChan/dtin"
	"github.com/golang/geo/r2"
)

// NN estimates z as the elevation of the nearest live vertex.
type NN struct{}

func (NN) Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result {
	out := make([]Result, len(locs))
	for i, p := range locs {
		vi, err := t.ClosestPoint(p.X, p.Y)
		if err != nil {
			out[i] = Result{Err: err}
			continue
		}
		_, _, z, _ := t.GetPoint(vi)
		out[i] = Result{Z: z}
	}
	return out
}

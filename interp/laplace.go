// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package interp

import (
	"errors"

	"github.com/2dChan/dtin"
	"github.com/2dChan/dtin/predicates"
	"github.com/golang/geo/r2"
)

// Laplace estimates z by weighting neighbours with the ratio of their
// shared Voronoi-edge length to their distance from the probe point. It
// inserts a temporary probe vertex and always removes it before
// returning. The probe's slot stays tombstoned unless it reused a freed
// one, so NumberOfRemovedVertices can grow by one per probe.
type Laplace struct{}

func (Laplace) Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result {
	out := make([]Result, len(locs))
	for i, p := range locs {
		out[i] = laplaceOne(t, p)
	}
	return out
}

func laplaceOne(t *dtin.Triangulation, p r2.Point) Result {
	if _, err := t.Locate(p.X, p.Y); err != nil {
		return Result{Err: err}
	}

	pi, err := t.InsertOnePt(p.X, p.Y, 0, nil)
	if err != nil {
		var dup *dtin.DuplicatePointError
		if errors.As(err, &dup) {
			_, _, z, _ := t.GetPoint(dup.ExistingID)
			return Result{Z: z}
		}
		return Result{Err: err}
	}

	onHull, _ := t.IsVertexOnConvexHull(pi)
	if onHull {
		_ = t.Remove(pi)
		return Result{Err: dtin.ErrOutsideConvexHull}
	}

	link, _ := t.AdjacentVerticesToVertex(pi)
	n := len(link)
	px, py, _, _ := t.GetPoint(pi)
	pp := r2.Point{X: px, Y: py}

	centres := make([]r2.Point, n)
	for j, v := range link {
		u := link[(j+1)%n]
		vx, vy, _, _ := t.GetPoint(v)
		ux, uy, _, _ := t.GetPoint(u)
		centres[j] = predicates.Circumcenter(pp, r2.Point{X: vx, Y: vy}, r2.Point{X: ux, Y: uy})
	}

	var z, sumW float64
	for j, v := range link {
		prev := (j - 1 + n) % n
		edgeLen := predicates.Distance2D(centres[j], centres[prev])
		vx, vy, vz, _ := t.GetPoint(v)
		dist := predicates.Distance2D(pp, r2.Point{X: vx, Y: vy})
		weight := edgeLen / dist
		z += weight * vz
		sumW += weight
	}

	_ = t.Remove(pi)
	return Result{Z: z / sumW}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package interp

import (
	"errors"

	"github.com/2dChan/dtin"
	"github.com/golang/geo/r2"
)

// NNI estimates z by Sibson's natural-neighbour interpolation: each
// neighbour is weighted by the "stolen area" its Voronoi cell loses to
// a temporary probe vertex, divided by that probe vertex's own cell
// area. When Precompute is set, every live vertex's pre-insertion
// Voronoi area is computed once up front, amortising the cost over a
// batch of probes at the expense of one full area sweep.
type NNI struct {
	Precompute bool
}

func (n NNI) Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result {
	var pre map[int]float64
	if n.Precompute {
		pre = make(map[int]float64, t.NumberOfVertices())
		for _, id := range t.AllVertices() {
			a, _ := t.VoronoiCellArea(id, true)
			pre[id] = a
		}
	}

	out := make([]Result, len(locs))
	for i, p := range locs {
		out[i] = n.one(t, p, pre)
	}
	return out
}

func (n NNI) one(t *dtin.Triangulation, p r2.Point, pre map[int]float64) Result {
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

	nns, _ := t.AdjacentVerticesToVertex(pi)
	afterAreas := make([]float64, len(nns))
	for j, nn := range nns {
		afterAreas[j], _ = t.VoronoiCellArea(nn, true)
	}
	newArea, _ := t.VoronoiCellArea(pi, true)

	// removing pi restores the original geometry, so a post-removal
	// area query (when not precomputed) gives each neighbour's true
	// pre-insertion area.
	_ = t.Remove(pi)

	var z float64
	for j, nn := range nns {
		var before float64
		if pre != nil {
			before = pre[nn]
		} else {
			before, _ = t.VoronoiCellArea(nn, true)
		}
		weight := before - afterAreas[j]
		_, _, nz, _ := t.GetPoint(nn)
		z += weight * nz
	}
	return Result{Z: z / newArea}
}

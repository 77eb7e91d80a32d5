// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package interp

import (
	"math"

	"github.com/2dChan/dtin"
	"github.com/2dChan/dtin/predicates"
	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r2"
)

// IDW estimates z by inverse-distance weighting over every live vertex
// within Radius of the probe, weighted by d^-Power. It builds its own
// 2D spatial index of the triangulation's vertices once per call; the
// triangulation itself is never mutated (unlike Laplace and NNI, which
// must insert and remove a probe vertex to read Voronoi neighbourhood
// data).
type IDW struct {
	Radius float64
	Power  float64
}

const idwTreeMinChildren = 25
const idwTreeMaxChildren = 50

type idwSite struct {
	id   int
	z    float64
	x, y float64
}

func (s *idwSite) Bounds() *rtreego.Rect {
	r, err := rtreego.NewRect(rtreego.Point{s.x, s.y}, []float64{1e-9, 1e-9})
	if err != nil {
		panic(err)
	}
	return r
}

func (w IDW) Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result {
	tree := rtreego.NewTree(2, idwTreeMinChildren, idwTreeMaxChildren)
	for _, id := range t.AllVertices() {
		x, y, z, _ := t.GetPoint(id)
		tree.Insert(&idwSite{id: id, z: z, x: x, y: y})
	}

	tau := t.SnapTolerance()
	out := make([]Result, len(locs))
	for i, p := range locs {
		out[i] = w.one(tree, p, tau)
	}
	return out
}

func (w IDW) one(tree *rtreego.Rtree, p r2.Point, tau float64) Result {
	bb, err := rtreego.NewRect(
		rtreego.Point{p.X - w.Radius, p.Y - w.Radius},
		[]float64{2 * w.Radius, 2 * w.Radius},
	)
	if err != nil {
		return Result{Err: err}
	}

	var weights []float64
	var zs []float64
	for _, hit := range tree.SearchIntersect(bb) {
		site := hit.(*idwSite)
		d := predicates.Distance2D(r2.Point{X: site.x, Y: site.y}, p)
		if d > w.Radius {
			continue
		}
		if d <= tau {
			return Result{Z: site.z}
		}
		weights = append(weights, math.Pow(d, -w.Power))
		zs = append(zs, site.z)
	}
	if len(weights) == 0 {
		return Result{Err: dtin.ErrSearchCircleEmpty}
	}

	var z, sumW float64
	for i, wi := range weights {
		z += zs[i] * wi
		sumW += wi
	}
	return Result{Z: z / sumW}
}

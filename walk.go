// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import "github.com/golang/geo/r2"

// walk performs a straight-line point location starting from t.cur,
// returning a finite triangle (v0,v1,v2) such that x lies inside it, or
// an infinite triangle if x lies outside the convex hull. Ported from
// startin's own walk(), generalised with an optional jump-and-walk seed.
func (t *Triangulation) walk(x r2.Point) Triangle {
	cur := t.seed(x)

	var tr Triangle
	tr.V[0] = cur
	star := t.slot(cur).link
	if star[0] == 0 {
		tr.V[1] = star[1]
		tr.V[2] = star[2]
	} else {
		tr.V[1] = star[0]
		tr.V[2] = star[1]
	}

	// orient the triangle so that v0-v1-x is CCW
	if t.orient2d(t.point(tr.V[0]), t.point(tr.V[1]), x) == -1 {
		if t.orient2d(t.point(tr.V[1]), t.point(tr.V[2]), x) != -1 {
			tr.V[0], tr.V[1], tr.V[2] = tr.V[1], tr.V[2], tr.V[0]
		} else {
			tr.V[0], tr.V[1], tr.V[2] = tr.V[2], tr.V[0], tr.V[1]
		}
	}

	for {
		if tr.IsInfinite() {
			break
		}
		if t.orient2d(t.point(tr.V[1]), t.point(tr.V[2]), x) != -1 {
			if t.orient2d(t.point(tr.V[2]), t.point(tr.V[0]), x) != -1 {
				break
			}
			// step across edge (v2,v0)
			prev := t.slot(tr.V[2]).link.Prev(tr.V[0])
			tr.V[1] = tr.V[2]
			tr.V[2] = prev
		} else {
			// step across edge (v1,v2)
			prev := t.slot(tr.V[1]).link.Prev(tr.V[2])
			tr.V[0] = tr.V[2]
			tr.V[2] = prev
		}
	}
	return tr
}

// seed returns the vertex the walk should start from: t.cur normally, or
// (when jump-and-walk is enabled) the closest of a small random sample
// of live vertices to x, which shortens the average walk on large,
// spatially scattered triangulations.
func (t *Triangulation) seed(x r2.Point) int {
	if !t.jumpAndWalk || t.liveCount <= 1 {
		return t.cur
	}
	n := len(t.verts)
	samples := jumpAndWalkSampleSize(t.liveCount)
	best := t.cur
	bestDist := squaredDistance2D(t.point(best), x)
	for i := 0; i < samples; i++ {
		id := 1 + t.rng.Intn(n-1)
		if t.isRemoved(id) {
			continue
		}
		d := squaredDistance2D(t.point(id), x)
		if d < bestDist {
			bestDist = d
			best = id
		}
	}
	return best
}

// jumpAndWalkSampleSize follows spec.md §4.D's rule of thumb: the fourth
// root of the vertex count, so sampling cost stays sublinear as the
// triangulation grows.
func jumpAndWalkSampleSize(n int) int {
	s := 1
	for s*s*s*s < n {
		s++
	}
	if s < 1 {
		s = 1
	}
	return s
}

func squaredDistance2D(a, b r2.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

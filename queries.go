// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"math"

	"github.com/2dChan/dtin/predicates"
	"github.com/golang/geo/r2"
)

// Locate returns the triangle containing (x,y). If the location falls
// outside the convex hull, it returns ErrOutsideConvexHull.
func (t *Triangulation) Locate(x, y float64) (Triangle, error) {
	if !t.triangulated {
		return Triangle{}, ErrEmptyTriangulation
	}
	tr := t.walk(r2.Point{X: x, Y: y})
	if tr.IsInfinite() {
		return Triangle{}, ErrOutsideConvexHull
	}
	return tr, nil
}

// ClosestPoint returns the id of the live vertex closest to (x,y),
// found by walking to the containing triangle and then descending the
// adjacency graph by squared distance until a local minimum is reached.
func (t *Triangulation) ClosestPoint(x, y float64) (int, error) {
	if !t.triangulated {
		return 0, ErrEmptyTriangulation
	}
	p := r2.Point{X: x, Y: y}
	tr := t.walk(p)

	best := 0
	bestDist := math.Inf(1)
	for _, v := range tr.V {
		if v == 0 {
			continue
		}
		d := squaredDistance2D(t.point(v), p)
		if d < bestDist {
			bestDist = d
			best = v
		}
	}
	if best == 0 {
		return 0, ErrOutsideConvexHull
	}

	for {
		improved := false
		for _, w := range t.slot(best).link {
			if w == 0 {
				continue
			}
			d := squaredDistance2D(t.point(w), p)
			if d < bestDist {
				bestDist = d
				best = w
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return best, nil
}

// AdjacentVerticesToVertex returns a copy of v's link.
func (t *Triangulation) AdjacentVerticesToVertex(v int) ([]int, error) {
	if err := t.checkVertex(v); err != nil {
		return nil, err
	}
	return t.slot(v).link.Clone(), nil
}

// IncidentTrianglesToVertex returns every triangle (including infinite
// ones) incident to v.
func (t *Triangulation) IncidentTrianglesToVertex(v int) ([]Triangle, error) {
	if err := t.checkVertex(v); err != nil {
		return nil, err
	}
	link := t.slot(v).link
	out := make([]Triangle, 0, len(link))
	for i, w := range link {
		u := link.AtOffset(i, 1)
		out = append(out, Triangle{V: [3]int{v, w, u}})
	}
	return out, nil
}

// AdjacentTrianglesToTriangle returns, for each of tr's three edges, the
// triangle on the other side of that edge.
func (t *Triangulation) AdjacentTrianglesToTriangle(tr Triangle) ([3]Triangle, error) {
	if !t.IsTriangle(tr) {
		return [3]Triangle{}, ErrTriangleNotPresent
	}
	var out [3]Triangle
	for i := 0; i < 3; i++ {
		v1 := tr.V[(i+1)%3]
		v2 := tr.V[(i+2)%3]
		opp := t.slot(v2).link.Next(v1)
		out[i] = Triangle{V: [3]int{v2, v1, opp}}
	}
	return out, nil
}

// IsTriangle reports whether (v,w,x) is an actual triangle of the
// current triangulation: each vertex's link must agree with the next.
func (t *Triangulation) IsTriangle(tr Triangle) bool {
	for _, v := range tr.V {
		if !t.inRange(v) || t.isRemoved(v) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		link := t.slot(tr.V[i]).link
		w := tr.V[(i+1)%3]
		if !link.Contains(w) || link.Next(w) != tr.V[(i+2)%3] {
			return false
		}
	}
	return true
}

// IsFinite reports whether tr contains no infinite vertex.
func (t *Triangulation) IsFinite(tr Triangle) bool {
	return !tr.IsInfinite()
}

// ConvexHull returns the ids of the vertices on the convex hull, in CCW
// order (the reverse of the infinite vertex's own CW-facing link).
func (t *Triangulation) ConvexHull() []int {
	if !t.triangulated {
		return nil
	}
	hull := t.slot(0).link
	out := make([]int, len(hull))
	for i, v := range hull {
		out[len(hull)-1-i] = v
	}
	return out
}

// BBox returns the axis-aligned bounding rectangle over every live
// finite vertex. It returns ErrEmptyTriangulation if none exists.
func (t *Triangulation) BBox() (r2.Rect, error) {
	pts := make([]r2.Point, 0, t.liveCount)
	for i := 1; i < len(t.verts); i++ {
		if !t.isRemoved(i) {
			pts = append(pts, t.point(i))
		}
	}
	if len(pts) == 0 {
		return r2.Rect{}, ErrEmptyTriangulation
	}
	return predicates.BBox2D(pts), nil
}

// VoronoiCellArea returns the area of the Voronoi cell dual to v: the
// signed area of the polygon formed by the circumcentres of the
// triangles incident to v, taken in order. If v lies on the convex hull
// its cell is unbounded; treatUnboundedAsFinite controls the response:
// false returns +Inf, true drops the infinite neighbour and closes the
// polygon on the remaining finite circumcentres (the convention NNI
// relies on for stolen-area weighting).
func (t *Triangulation) VoronoiCellArea(v int, treatUnboundedAsFinite bool) (float64, error) {
	if err := t.checkVertex(v); err != nil {
		return 0, err
	}
	link := t.slot(v).link
	if len(link) < 3 {
		return 0, ErrTriangleNotPresent
	}
	if link.ContainsInfinite() && !treatUnboundedAsFinite {
		return math.Inf(1), nil
	}

	centres := make([]r2.Point, 0, len(link))
	for i, w := range link {
		if w == 0 {
			continue
		}
		u := link.AtOffset(i, 1)
		if u == 0 {
			continue
		}
		centres = append(centres, predicates.Circumcenter(t.point(v), t.point(w), t.point(u)))
	}
	if len(centres) < 3 {
		return 0, nil
	}

	area := 0.0
	n := len(centres)
	vp := t.point(v)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += predicates.SignedArea(vp, centres[i], centres[j])
	}
	return math.Abs(area), nil
}

// IsValid runs §8's P1-P4 self-consistency checks over the whole
// triangulation: every finite triangle must be locally Delaunay against
// every other live vertex (P1), the hull must be convex (P2), every
// vertex's link must be reciprocated by its neighbours (P3), and no two
// live vertices may sit closer than the snap tolerance (P4). It is
// intended for tests and debugging, not the hot path.
func (t *Triangulation) IsValid() bool {
	if !t.triangulated {
		return true
	}
	return t.isDelaunay() && t.isHullConvex() && t.isLinkReciprocal() && t.respectsSnapTolerance()
}

// isDelaunay checks P1: every finite triangle's circumcircle contains no
// other live vertex.
func (t *Triangulation) isDelaunay() bool {
	for _, tr := range t.AllFiniteTriangles() {
		for i := 1; i < len(t.verts); i++ {
			if t.isRemoved(i) || tr.Contains(i) {
				continue
			}
			if t.incircle(t.point(tr.V[0]), t.point(tr.V[1]), t.point(tr.V[2]), t.point(i)) > 0 {
				return false
			}
		}
	}
	return true
}

// isHullConvex checks P2: every three CCW-consecutive hull vertices turn
// left (or are colinear), walking vertex 0's link in the CCW order
// ConvexHull itself produces.
func (t *Triangulation) isHullConvex() bool {
	hull := t.ConvexHull()
	n := len(hull)
	if n < 3 {
		return true
	}
	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		c := hull[(i+2)%n]
		if t.orient2d(t.point(a), t.point(b), t.point(c)) < 0 {
			return false
		}
	}
	return true
}

// isLinkReciprocal checks P3: w appears in v's link iff v appears in
// w's link, for every live vertex pair (including the infinite vertex).
func (t *Triangulation) isLinkReciprocal() bool {
	for i := 0; i < len(t.verts); i++ {
		if i != 0 && t.isRemoved(i) {
			continue
		}
		for _, w := range t.verts[i].link {
			if !t.slot(w).link.Contains(i) {
				return false
			}
		}
	}
	return true
}

// respectsSnapTolerance checks P4: no two live, non-infinite vertices
// sit strictly closer than SnapTolerance(), which would mean a point
// that should have snapped as a duplicate instead became its own vertex.
func (t *Triangulation) respectsSnapTolerance() bool {
	tau2 := t.snapTolerance * t.snapTolerance
	ids := t.AllVertices()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if squaredDistance2D(t.point(ids[i]), t.point(ids[j])) < tau2 {
				return false
			}
		}
	}
	return true
}

// AllTriangles returns every finite triangle, each vertex triple listed
// with its lowest-id vertex first.
func (t *Triangulation) AllTriangles() []Triangle {
	return t.AllFiniteTriangles()
}

// AllFiniteTriangles returns every finite triangle exactly once,
// reconstructed from the star topology (no triangle is ever stored).
func (t *Triangulation) AllFiniteTriangles() []Triangle {
	var out []Triangle
	for i := range t.verts {
		if t.isRemoved(i) {
			continue
		}
		star := t.verts[i].link
		for j, v := range star {
			if i >= v {
				continue
			}
			k := star[star.NextIndex(j)]
			if i >= k {
				continue
			}
			tr := Triangle{V: [3]int{i, v, k}}
			if !tr.IsInfinite() {
				out = append(out, tr)
			}
		}
	}
	return out
}

// AllFiniteEdges returns every finite edge (i.e. excluding the infinite
// vertex) exactly once, as (lo,hi) pairs with lo < hi.
func (t *Triangulation) AllFiniteEdges() [][2]int {
	var out [][2]int
	for i := range t.verts {
		if t.isRemoved(i) || i == 0 {
			continue
		}
		for _, w := range t.verts[i].link {
			if w == 0 || w <= i {
				continue
			}
			out = append(out, [2]int{i, w})
		}
	}
	return out
}

// StatisticsDegree returns the minimum, mean and maximum degree (link
// length) over every live, non-infinite vertex.
func (t *Triangulation) StatisticsDegree() (min, mean, max int) {
	count := 0
	sum := 0
	min = -1
	for i := 1; i < len(t.verts); i++ {
		if t.isRemoved(i) {
			continue
		}
		d := len(t.verts[i].link)
		if min < 0 || d < min {
			min = d
		}
		if d > max {
			max = d
		}
		sum += d
		count++
	}
	if count == 0 {
		return 0, 0, 0
	}
	return min, sum / count, max
}

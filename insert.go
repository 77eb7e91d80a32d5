// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"errors"
	"math"
	"sort"

	"github.com/2dChan/dtin/attrs"
	"github.com/golang/geo/r2"
)

// InsertOnePt inserts a single point (x, y, z), with optional attribute
// values keyed by schema field name. It returns the id of the vertex
// that now represents (x,y): either a freshly allocated id, or the id of
// an existing vertex the point snapped to within the snap tolerance, in
// which case the result also carries a *DuplicatePointError describing
// the collision and whether the duplicate-handling policy updated it.
//
// Ported from startin's insert_one_pt, generalised to: reuse tombstoned
// ids via the free-list, apply the configurable duplicate policy instead
// of always keeping the first point, and ingest attribute values.
func (t *Triangulation) InsertOnePt(x, y, z float64, values map[string]any) (int, error) {
	p := r2.Point{X: x, Y: y}
	rec := t.schema.Coerce(values)

	if !t.triangulated {
		return t.insertBeforeBootstrap(p, z, rec)
	}

	tr := t.walk(p)
	tau2 := t.snapTolerance * t.snapTolerance
	for _, v := range tr.V {
		if v == 0 {
			continue
		}
		if squaredDistance2D(t.point(v), p) <= tau2 {
			updated := t.applyDuplicatePolicy(v, z, rec)
			return v, &DuplicatePointError{ExistingID: v, Updated: updated}
		}
	}

	pi := t.allocate(p, z, rec)
	t.insertIntoHull(pi, p, tr)
	t.liveCount++
	return pi, nil
}

// insertIntoHull wires an already-allocated, already-located vertex pi
// into the containing triangle tr via the 1->3 split, then legalises the
// three new triangles. Shared by the steady-state path of InsertOnePt
// and by tryBootstrap's re-insertion of pre-bootstrap vertices.
func (t *Triangulation) insertIntoHull(pi int, p r2.Point, tr Triangle) {
	t.slot(pi).link = Link{tr.V[0], tr.V[1], tr.V[2]}

	t.slot(tr.V[0]).link.InsertAfter(pi, tr.V[1])
	t.slot(tr.V[1]).link.InsertAfter(pi, tr.V[2])
	t.slot(tr.V[2]).link.InsertAfter(pi, tr.V[0])
	t.slot(pi).link.RotateInfiniteFirst()

	t.legalise(pi, tr.V[0], tr.V[1], tr.V[2])
	t.cur = pi
}

// insertBeforeBootstrap handles every point inserted while the
// triangulation has not yet bootstrapped: a colinear sequence of any
// length is accepted with an empty link and no triangles. Per §4.B, the
// triangulation only bootstraps once three of the accumulated points
// turn out to be non-colinear; until then, points merely accumulate.
func (t *Triangulation) insertBeforeBootstrap(p r2.Point, z float64, rec attrs.Record) (int, error) {
	tau2 := t.snapTolerance * t.snapTolerance
	for i := 1; i < len(t.verts); i++ {
		if squaredDistance2D(t.point(i), p) <= tau2 {
			updated := t.applyDuplicatePolicy(i, z, rec)
			return i, &DuplicatePointError{ExistingID: i, Updated: updated}
		}
	}

	pi := t.allocate(p, z, rec)
	t.cur = pi
	t.liveCount++
	t.tryBootstrap()
	return pi, nil
}

// tryBootstrap scans the pre-bootstrap vertex set {1..n} for a triple
// that is not colinear. If none exists yet, it is a no-op (the sequence
// is still entirely colinear, §4.B2). Otherwise it installs the initial
// hull and finite triangle around that triple and walks every other
// pre-bootstrap vertex into the triangulation one by one (§4.B3), so
// that the whole set ends up in the DT the moment it stops being
// colinear.
func (t *Triangulation) tryBootstrap() {
	n := len(t.verts) - 1
	if n < 3 {
		return
	}
	a, b := 1, 2
	c := 0
	for i := 3; i <= n; i++ {
		if t.orient2d(t.point(a), t.point(b), t.point(i)) != 0 {
			c = i
			break
		}
	}
	if c == 0 {
		return
	}

	if t.orient2d(t.point(a), t.point(b), t.point(c)) == 1 {
		t.slot(0).link = Link{a, c, b}
		t.slot(a).link = Link{0, b, c}
		t.slot(b).link = Link{0, c, a}
		t.slot(c).link = Link{0, a, b}
	} else {
		t.slot(0).link = Link{a, b, c}
		t.slot(a).link = Link{0, c, b}
		t.slot(b).link = Link{0, a, c}
		t.slot(c).link = Link{0, b, a}
	}
	t.triangulated = true

	for i := 1; i <= n; i++ {
		if i == a || i == b || i == c {
			continue
		}
		t.insertExistingVertex(i)
	}
}

// insertExistingVertex walks an already-allocated, already-live vertex
// (one that accumulated during the pre-bootstrap phase) into the
// just-bootstrapped triangulation.
func (t *Triangulation) insertExistingVertex(id int) {
	p := t.point(id)
	tr := t.walk(p)
	t.insertIntoHull(id, p, tr)
}

// allocate reuses a tombstoned slot from the free-list if one exists,
// otherwise appends a new slot, and returns its id.
func (t *Triangulation) allocate(p r2.Point, z float64, rec attrs.Record) int {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.removedCount--
		t.verts[id] = vertex{xy: p, z: z, attrs: rec}
		return id
	}
	t.verts = append(t.verts, vertex{xy: p, z: z, attrs: rec})
	return len(t.verts) - 1
}

// applyDuplicatePolicy applies t.duplicates to an existing vertex id
// that a new point snapped to, and reports whether it changed anything.
func (t *Triangulation) applyDuplicatePolicy(id int, z float64, rec attrs.Record) bool {
	v := t.slot(id)
	updated := false
	switch t.duplicates {
	case DuplicatesLast:
		v.z = z
		updated = true
	case DuplicatesHighest:
		if z > v.z {
			v.z = z
			updated = true
		}
	case DuplicatesLowest:
		if z < v.z {
			v.z = z
			updated = true
		}
	case DuplicatesFirst:
		// keep the existing z
	}
	if len(rec) > 0 {
		if v.attrs == nil {
			v.attrs = make(attrs.Record, len(rec))
		}
		for k, val := range rec {
			v.attrs[k] = val
			updated = true
		}
	}
	return updated
}

// Insert bulk-inserts points using the given strategy. xs, ys, zs must
// have equal length; values, if non-nil, must have the same length and
// supplies per-point attribute values. It returns the id assigned to
// (or matched for) each input point in order.
func (t *Triangulation) Insert(xs, ys, zs []float64, values []map[string]any, strategy InsertStrategy) ([]int, error) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, ErrLengthMismatch
	}
	if values != nil && len(values) != len(xs) {
		return nil, ErrLengthMismatch
	}

	ids := make([]int, len(xs))
	switch strategy {
	case BBox:
		corners := t.bboxCorners(xs, ys)
		cornerIDs := make([]int, 0, 4)
		for _, c := range corners {
			id, err := t.InsertOnePt(c.X, c.Y, 0, nil)
			if err != nil {
				var dup *DuplicatePointError
				if !errors.As(err, &dup) {
					return nil, err
				}
			}
			cornerIDs = append(cornerIDs, id)
		}
		for i := range xs {
			var vals map[string]any
			if values != nil {
				vals = values[i]
			}
			id, err := t.InsertOnePt(xs[i], ys[i], zs[i], vals)
			if err != nil {
				var dup *DuplicatePointError
				if !errors.As(err, &dup) {
					return nil, err
				}
			}
			ids[i] = id
		}
		for _, id := range cornerIDs {
			_ = t.Remove(id)
		}
		dead := t.sortedFree()
		t.CollectGarbage()
		for i, id := range ids {
			ids[i] = id - sort.SearchInts(dead, id)
		}
	default:
		for i := range xs {
			var vals map[string]any
			if values != nil {
				vals = values[i]
			}
			id, err := t.InsertOnePt(xs[i], ys[i], zs[i], vals)
			if err != nil {
				var dup *DuplicatePointError
				if !errors.As(err, &dup) {
					return nil, err
				}
			}
			ids[i] = id
		}
	}
	return ids, nil
}

// bboxCorners returns the four temporary corner points the BBox
// strategy inserts before the real data, padded bboxPadding units
// beyond the input's bounding box.
func (t *Triangulation) bboxCorners(xs, ys []float64) []r2.Point {
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	minX -= bboxPadding
	minY -= bboxPadding
	maxX += bboxPadding
	maxY += bboxPadding
	return []r2.Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// sortedFree returns a sorted copy of t.free, used by garbage collection.
func (t *Triangulation) sortedFree() []int {
	out := append([]int(nil), t.free...)
	sort.Ints(out)
	return out
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"math"

	"github.com/2dChan/dtin/attrs"
	"github.com/golang/geo/r2"
)

// vertex is one slot of the dense vertex array. Slot 0 is the infinite
// vertex: it has no meaningful xy/z and its link holds the convex hull
// boundary.
type vertex struct {
	xy    r2.Point
	z     float64
	link  Link
	attrs attrs.Record
}

// tombstoneXY is the sentinel coordinate written onto a removed vertex.
// NaN makes the tombstone state self-describing (§3 invariant 7: empty
// link + NaN xy) without a redundant boolean field.
var tombstoneXY = r2.Point{X: math.NaN(), Y: math.NaN()}

func (v *vertex) tombstone() {
	v.xy = tombstoneXY
	v.z = math.NaN()
	v.link = nil
	v.attrs = nil
}

func (v *vertex) isTombstoned() bool {
	return len(v.link) == 0 && math.IsNaN(v.xy.X)
}

// slot returns a pointer to the vertex slot for id without bounds
// checking; callers must have already validated id via checkVertex or
// inRange.
func (t *Triangulation) slot(id int) *vertex {
	return &t.verts[id]
}

func (t *Triangulation) inRange(id int) bool {
	return id >= 0 && id < len(t.verts)
}

// isRemoved reports whether id names a tombstoned vertex. It never
// reports the infinite vertex (id 0) as removed.
func (t *Triangulation) isRemoved(id int) bool {
	if id == 0 {
		return false
	}
	return t.slot(id).isTombstoned()
}

// checkVertex validates id against §4.G's three failure modes, in the
// order the spec lists them: infinite, out of range, then removed.
func (t *Triangulation) checkVertex(id int) error {
	if id == 0 {
		return ErrVertexInfinite
	}
	if !t.inRange(id) {
		return vertexErr(id, ErrVertexUnknown)
	}
	if t.isRemoved(id) {
		return vertexErr(id, ErrVertexRemoved)
	}
	return nil
}

// point returns the (x,y) of id as an r2.Point. Valid for any in-range,
// non-tombstoned id, including 0 only in the sense that callers must not
// call it on the infinite vertex in a geometric predicate.
func (t *Triangulation) point(id int) r2.Point {
	return t.slot(id).xy
}

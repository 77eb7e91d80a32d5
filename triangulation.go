// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dtin implements a dynamic, incremental 2D Delaunay
// triangulation whose vertices additionally carry an elevation (and
// optional typed attributes): the computational core of a terrain /
// point-cloud / spatial-interpolation pipeline.
//
// The triangulation is represented star-based (§3 of the design): no
// triangle table exists, every triangle is reconstructed from two
// consecutive entries in a vertex's link. Vertex ids are stable across
// deletion (tombstone + free-list reuse) until CollectGarbage compacts
// the store.
package dtin

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/dtin/attrs"
	"github.com/2dChan/dtin/predicates"
	"github.com/golang/geo/r2"
)

// Triangulation is a single mutable 2.5D Delaunay triangulation. It is
// not safe for concurrent use: all operations are synchronous and
// assume exclusive access for the duration of the call (§5).
type Triangulation struct {
	verts []vertex
	free  []int // LIFO free-list of tombstoned ids, reused on next insert

	cur int // last-touched vertex id, the walk's default seed

	snapTolerance float64
	useRobust     bool
	jumpAndWalk   bool
	duplicates    DuplicatesHandling
	schema        attrs.Schema

	rng *rand.Rand

	triangulated bool // true once ≥3 non-collinear vertices have bootstrapped a hull
	liveCount    int  // number of non-tombstoned, non-infinite vertices
	removedCount int  // number of currently-tombstoned vertices
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// New creates an empty Triangulation with the defaults spec.md §6 names:
// τ=0.001, robust predicates on, jump-and-walk off, duplicate policy
// First.
func New(opts ...Option) *Triangulation {
	t := &Triangulation{
		verts:         make([]vertex, 1, 64),
		snapTolerance: defaultSnapTolerance,
		useRobust:     true,
		jumpAndWalk:   false,
		duplicates:    DuplicatesFirst,
		rng:           newRand(1),
	}
	t.verts[0] = vertex{xy: tombstoneXY}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SnapTolerance returns the current snap tolerance τ.
func (t *Triangulation) SnapTolerance() float64 { return t.snapTolerance }

// SetSnapTolerance sets τ; values ≤0 are ignored.
func (t *Triangulation) SetSnapTolerance(tau float64) {
	if tau > 0 {
		t.snapTolerance = tau
	}
}

// JumpAndWalk returns whether randomized jump-and-walk seeding is on.
func (t *Triangulation) JumpAndWalk() bool { return t.jumpAndWalk }

// SetJumpAndWalk enables or disables jump-and-walk seeding.
func (t *Triangulation) SetJumpAndWalk(enabled bool) { t.jumpAndWalk = enabled }

// UseRobustPredicates returns whether the robust predicate path is active.
func (t *Triangulation) UseRobustPredicates() bool { return t.useRobust }

// SetUseRobustPredicates switches between the robust and fast predicate
// implementations.
func (t *Triangulation) SetUseRobustPredicates(robust bool) { t.useRobust = robust }

// DuplicatesHandling returns the active duplicate-point policy.
func (t *Triangulation) DuplicatesHandling() DuplicatesHandling { return t.duplicates }

// SetDuplicatesHandling sets the active duplicate-point policy.
func (t *Triangulation) SetDuplicatesHandling(policy DuplicatesHandling) {
	t.duplicates = policy
}

// NumberOfVertices returns the number of live (non-removed) finite
// vertices.
func (t *Triangulation) NumberOfVertices() int { return t.liveCount }

// NumberOfRemovedVertices returns the number of tombstoned vertex slots
// still occupying the store (i.e. awaiting CollectGarbage).
func (t *Triangulation) NumberOfRemovedVertices() int { return t.removedCount }

// NumberOfTriangles returns the number of finite triangles.
func (t *Triangulation) NumberOfTriangles() int {
	count := 0
	for i := range t.verts {
		if t.isRemoved(i) {
			continue
		}
		star := t.verts[i].link
		for j, v := range star {
			if i < v {
				k := star[star.NextIndex(j)]
				if i < k {
					tr := Triangle{V: [3]int{i, v, k}}
					if !tr.IsInfinite() {
						count++
					}
				}
			}
		}
	}
	return count
}

// NumberOfVerticesOnConvexHull returns the number of finite vertices on
// the convex hull boundary.
func (t *Triangulation) NumberOfVerticesOnConvexHull() int {
	if !t.triangulated {
		return 0
	}
	return len(t.verts[0].link)
}

// IsVertexOnConvexHull reports whether id lies on the convex hull.
func (t *Triangulation) IsVertexOnConvexHull(id int) (bool, error) {
	if err := t.checkVertex(id); err != nil {
		return false, err
	}
	return t.slot(id).link.ContainsInfinite(), nil
}

// IsVertexRemoved reports whether id has been removed (tombstoned). It
// returns ErrVertexUnknown if id was never allocated and ErrVertexInfinite
// for id 0.
func (t *Triangulation) IsVertexRemoved(id int) (bool, error) {
	if id == 0 {
		return false, ErrVertexInfinite
	}
	if !t.inRange(id) {
		return false, vertexErr(id, ErrVertexUnknown)
	}
	return t.isRemoved(id), nil
}

// GetPoint returns the (x,y,z) of a live vertex.
func (t *Triangulation) GetPoint(id int) (x, y, z float64, err error) {
	if err := t.checkVertex(id); err != nil {
		return 0, 0, 0, err
	}
	v := t.slot(id)
	return v.xy.X, v.xy.Y, v.z, nil
}

// AllVertices returns the ids of every live, non-infinite vertex, in
// ascending id order.
func (t *Triangulation) AllVertices() []int {
	out := make([]int, 0, t.liveCount)
	for i := 1; i < len(t.verts); i++ {
		if !t.isRemoved(i) {
			out = append(out, i)
		}
	}
	return out
}

// UpdateVertexZValue overwrites the elevation of a live vertex without
// touching the xy topology.
func (t *Triangulation) UpdateVertexZValue(id int, z float64) error {
	if err := t.checkVertex(id); err != nil {
		return err
	}
	t.slot(id).z = z
	return nil
}

// VerticalExaggeration multiplies every live vertex's z by factor.
func (t *Triangulation) VerticalExaggeration(factor float64) {
	for i := 1; i < len(t.verts); i++ {
		if t.isRemoved(i) {
			continue
		}
		t.verts[i].z *= factor
	}
}

// String renders a one-paragraph summary, in the spirit of startin's own
// Display impl for its Triangulation.
func (t *Triangulation) String() string {
	return fmt.Sprintf(
		"dtin.Triangulation{vertices: %d, triangles: %d, on_hull: %d, removed: %d}",
		t.NumberOfVertices(), t.NumberOfTriangles(), t.NumberOfVerticesOnConvexHull(), t.NumberOfRemovedVertices(),
	)
}

// orient2d dispatches to the active predicate implementation, returning
// -1 (CW), 0 (colinear) or +1 (CCW).
func (t *Triangulation) orient2d(a, b, c r2.Point) int {
	if t.useRobust {
		return int(predicates.Orient2DRobust(a, b, c))
	}
	return int(predicates.Orient2DFast(a, b, c))
}

// incircle dispatches to the active predicate implementation, returning
// -1 (outside), 0 (cocircular) or +1 (inside). (a,b,c) must be CCW.
func (t *Triangulation) incircle(a, b, c, p r2.Point) int {
	if t.useRobust {
		return int(predicates.InCircleRobust(a, b, c, p))
	}
	return int(predicates.InCircleFast(a, b, c, p))
}

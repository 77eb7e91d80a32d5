// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"errors"
	"fmt"

	"github.com/2dChan/dtin/attrs"
)

var (
	// ErrEmptyTriangulation is returned by a query that needs at least
	// one finite triangle when the triangulation has not yet bootstrapped.
	ErrEmptyTriangulation = errors.New("dtin: triangulation has no finite triangles yet")

	// ErrOutsideConvexHull is returned when a probe location falls
	// outside the convex hull of the live vertex set.
	ErrOutsideConvexHull = errors.New("dtin: location is outside the convex hull")

	// ErrSearchCircleEmpty is returned by IDW when no vertex lies within
	// the configured search radius of a probe location.
	ErrSearchCircleEmpty = errors.New("dtin: no points found within the search radius")

	// ErrTriangleNotPresent is returned when a (v,w,x) triple does not
	// correspond to an actual triangle of the current triangulation.
	ErrTriangleNotPresent = errors.New("dtin: triangle is not present in the triangulation")

	// ErrVertexInfinite is returned when an operation that requires a
	// real vertex is given the infinite vertex (id 0).
	ErrVertexInfinite = errors.New("dtin: operation not allowed on the infinite vertex")

	// ErrVertexRemoved is returned when an operation targets a vertex id
	// that has already been removed (tombstoned).
	ErrVertexRemoved = errors.New("dtin: vertex has already been removed")

	// ErrVertexUnknown is returned when a vertex id is out of the range
	// the triangulation has ever allocated.
	ErrVertexUnknown = errors.New("dtin: vertex id is out of range")

	// ErrLengthMismatch is returned by Insert when its xs/ys/zs/values
	// slices do not all share the same length.
	ErrLengthMismatch = errors.New("dtin: xs, ys, zs and values must have equal length")

	// ErrTinHasNoAttributes aliases attrs.ErrNoSchema under the name
	// the core error taxonomy uses.
	ErrTinHasNoAttributes = attrs.ErrNoSchema

	// ErrWrongAttribute aliases attrs.ErrWrongAttribute under the name
	// the core error taxonomy uses.
	ErrWrongAttribute = attrs.ErrWrongAttribute
)

// DuplicatePointError is returned by Insert/InsertOnePt when the
// incoming point snaps (within the snap tolerance) to an already-live
// vertex. ExistingID names the vertex it collided with; Updated reports
// whether the duplicate-handling policy overwrote that vertex's z (and
// attributes, where applicable).
type DuplicatePointError struct {
	ExistingID int
	Updated    bool
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("dtin: point collides with existing vertex %d (updated=%v)", e.ExistingID, e.Updated)
}

// vertexError wraps one of the vertex-targeting sentinels with the id
// that triggered it, so callers get both errors.Is matching and a useful
// message.
type vertexError struct {
	id  int
	err error
}

func (e *vertexError) Error() string {
	return fmt.Sprintf("%s (id=%d)", e.err.Error(), e.id)
}

func (e *vertexError) Unwrap() error {
	return e.err
}

func vertexErr(id int, sentinel error) error {
	return &vertexError{id: id, err: sentinel}
}

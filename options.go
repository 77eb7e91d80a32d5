// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import "github.com/2dChan/dtin/attrs"

// DuplicatesHandling selects how Insert/InsertOnePt reacts when an
// incoming point snaps (within the snap tolerance) to an already-live
// vertex.
type DuplicatesHandling int

const (
	// DuplicatesFirst keeps the existing vertex's z unchanged.
	DuplicatesFirst DuplicatesHandling = iota
	// DuplicatesLast overwrites the existing vertex's z unconditionally.
	DuplicatesLast
	// DuplicatesHighest overwrites only if the new z is larger.
	DuplicatesHighest
	// DuplicatesLowest overwrites only if the new z is smaller.
	DuplicatesLowest
)

func (d DuplicatesHandling) String() string {
	switch d {
	case DuplicatesFirst:
		return "First"
	case DuplicatesLast:
		return "Last"
	case DuplicatesHighest:
		return "Highest"
	case DuplicatesLowest:
		return "Lowest"
	default:
		return "Unknown"
	}
}

// InsertStrategy selects how Insert seeds the walk for a batch of points.
type InsertStrategy int

const (
	// AsIs inserts each point directly, in the given order.
	AsIs InsertStrategy = iota
	// BBox inserts four temporary corner points padded beyond the input's
	// bounding box first, then the real points, then deletes the
	// corners and compacts. This keeps the walk inside a bounded region
	// and can speed up location on pre-sorted inputs.
	BBox
)

// defaultSnapTolerance is the default τ used by New.
const defaultSnapTolerance = 0.001

// bboxPadding is how far beyond the input bounding box the BBox strategy
// places its four temporary corner points.
const bboxPadding = 10.0

// Option configures a Triangulation at construction time.
type Option func(*Triangulation)

// WithSnapTolerance sets the snap tolerance τ, a distance, used to detect
// duplicate points: a point whose squared distance to an existing vertex
// is at most τ² snaps to it. τ must be positive.
func WithSnapTolerance(tau float64) Option {
	return func(t *Triangulation) {
		if tau > 0 {
			t.snapTolerance = tau
		}
	}
}

// WithRobustPredicates selects the robust (adaptive, compensated
// summation) or fast (plain floating point) predicate implementation.
func WithRobustPredicates(robust bool) Option {
	return func(t *Triangulation) {
		t.useRobust = robust
	}
}

// WithJumpAndWalk enables or disables randomized jump-and-walk seeding
// of the point-location walk.
func WithJumpAndWalk(enabled bool) Option {
	return func(t *Triangulation) {
		t.jumpAndWalk = enabled
	}
}

// WithDuplicatesHandling sets the policy applied when an inserted point
// collides with an existing vertex.
func WithDuplicatesHandling(policy DuplicatesHandling) Option {
	return func(t *Triangulation) {
		t.duplicates = policy
	}
}

// WithAttributeSchema attaches a typed attribute schema to the
// triangulation, enabling per-vertex attribute records.
func WithAttributeSchema(schema attrs.Schema) Option {
	return func(t *Triangulation) {
		t.schema = schema
	}
}

// WithRandSource overrides the random source used for jump-and-walk
// sampling. Intended for deterministic tests; production callers should
// leave this unset.
func WithRandSource(seed int64) Option {
	return func(t *Triangulation) {
		t.rng = newRand(seed)
	}
}

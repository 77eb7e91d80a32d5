// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package interp implements the probe-based elevation interpolators
// described for a dtin.Triangulation: nearest-neighbour, linear-in-TIN,
// Laplace, natural-neighbour (Sibson) and inverse-distance weighting.
// Every interpolator that mutates the triangulation (Laplace, NNI)
// removes its temporary probe vertex before returning; the probe's slot
// is left tombstoned, so NumberOfRemovedVertices can grow.
package interp

import (
	"github.com/2dChan/dtin"
	"github.com/golang/geo/r2"
)

// Result is the outcome of interpolating a single probe location.
type Result struct {
	Z   float64
	Err error
}

// Interpolant estimates z-values at a set of 2D probe locations against
// a Triangulation.
type Interpolant interface {
	Interpolate(t *dtin.Triangulation, locs []r2.Point) []Result
}

// Interpolate runs interpolant over locs against t.
func Interpolate(interpolant Interpolant, t *dtin.Triangulation, locs []r2.Point) []Result {
	return interpolant.Interpolate(t, locs)
}

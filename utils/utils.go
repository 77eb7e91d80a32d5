// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating random planar
// point sets for triangulation benchmarks and examples.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates a slice of random 2D points uniformly
// distributed inside [0,width] x [0,height]. The seed parameter ensures
// reproducibility.
func GenerateRandomPoints(cnt int, width, height float64, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	pts := make([]r2.Point, cnt)

	for i := range cnt {
		pts[i] = r2.Point{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}

	return pts
}

// GenerateRandomElevations generates cnt random z-values uniformly
// distributed inside [minZ,maxZ], meant to be paired positionally with
// GenerateRandomPoints for populating a Triangulation in tests.
func GenerateRandomElevations(cnt int, minZ, maxZ float64, seed int64) []float64 {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	zs := make([]float64, cnt)
	for i := range cnt {
		zs[i] = minZ + random.Float64()*(maxZ-minZ)
	}
	return zs
}

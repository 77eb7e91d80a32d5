// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates implements the two geometric primitives the
// triangulator depends on for every topological decision: orient2d and
// incircle. Each comes in a fast floating-point variant and a robust
// variant built on compensated (error-free) summation, following the
// style (if not the exact arithmetic) of Shewchuk's adaptive predicates.
package predicates

import (
	"math"

	"github.com/golang/geo/r2"
)

// absTolerance is the zero-band used by the fast variants, matching the
// tolerance used by startin's own floating-point predicates.
const absTolerance = 1e-12

// Sign is the three-way outcome of a predicate evaluation.
type Sign int8

const (
	// Negative means CW for Orient2D, or strictly outside the circle for InCircle.
	Negative Sign = -1
	// Zero means colinear for Orient2D, or cocircular for InCircle.
	Zero Sign = 0
	// Positive means CCW for Orient2D, or strictly inside the circle for InCircle.
	Positive Sign = 1
)

func signOf(v, tolerance float64) Sign {
	if math.Abs(v) < tolerance {
		return Zero
	}
	if v > 0 {
		return Positive
	}
	return Negative
}

// Orient2DFast evaluates the orientation of (a,b,c) using plain
// floating-point arithmetic with an absolute zero-tolerance band.
func Orient2DFast(a, b, c r2.Point) Sign {
	re := (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
	return signOf(re, absTolerance)
}

// InCircleFast evaluates whether p lies inside the circumcircle of
// (a,b,c) using plain floating-point arithmetic with an absolute
// zero-tolerance band. (a,b,c) is assumed CCW.
func InCircleFast(a, b, c, p r2.Point) Sign {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y

	adt := adx*adx + ady*ady
	bdt := bdx*bdx + bdy*bdy
	cdt := cdx*cdx + cdy*cdy

	i := adx * (bdy*cdt - bdt*cdy)
	j := ady * (bdx*cdt - bdt*cdx)
	k := adt * (bdx*cdy - bdy*cdx)

	re := i - j + k
	return signOf(re, absTolerance)
}

// Orient2DRobust evaluates the orientation of (a,b,c) using
// two-product/two-sum compensated summation so that cancellation near
// zero does not flip the sign of the result.
func Orient2DRobust(a, b, c r2.Point) Sign {
	re := det2Robust(a.X-c.X, b.Y-c.Y, a.Y-c.Y, b.X-c.X)
	return signOf(re, 0)
}

// InCircleRobust evaluates whether p lies inside the circumcircle of
// (a,b,c) using compensated summation of the three 2x2 minors that make
// up the determinant, reducing (but not eliminating, as a full
// arbitrary-precision expansion would) floating point cancellation error
// relative to InCircleFast.
func InCircleRobust(a, b, c, p r2.Point) Sign {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y

	adt := adx*adx + ady*ady
	bdt := bdx*bdx + bdy*bdy
	cdt := cdx*cdx + cdy*cdy

	m1 := det2Robust(bdy, cdt, bdt, cdy)
	m2 := det2Robust(bdx, cdt, bdt, cdx)
	m3 := det2Robust(bdx, cdy, bdy, cdx)

	re := compensatedSum([]float64{adx * m1, -(ady * m2), adt * m3})
	return signOf(re, 0)
}

// det2Robust computes p*q - r*s with error-free transformations (2Sum /
// 2Product) to reduce catastrophic cancellation when p*q ~= r*s.
func det2Robust(p, q, r, s float64) float64 {
	pq, pqErr := twoProduct(p, q)
	rs, rsErr := twoProduct(r, s)
	diff, diffErr := twoSum(pq, -rs)
	return diff + (diffErr + pqErr - rsErr)
}

// twoProduct returns x*y exactly as (hi, lo) such that x*y == hi+lo in
// infinite precision (Dekker/Veltkamp splitting via FMA).
func twoProduct(x, y float64) (hi, lo float64) {
	hi = x * y
	lo = math.FMA(x, y, -hi)
	return hi, lo
}

// twoSum returns x+y exactly as (hi, lo) such that x+y == hi+lo in
// infinite precision (Knuth's 2Sum).
func twoSum(x, y float64) (hi, lo float64) {
	hi = x + y
	v := hi - x
	lo = (x - (hi - v)) + (y - v)
	return hi, lo
}

// compensatedSum adds terms with Neumaier/Kahan compensation.
func compensatedSum(terms []float64) float64 {
	sum := 0.0
	c := 0.0
	for _, t := range terms {
		s := sum + t
		if math.Abs(sum) >= math.Abs(t) {
			c += (sum - s) + t
		} else {
			c += (t - s) + sum
		}
		sum = s
	}
	return sum + c
}

// SquaredDistance2D returns the squared Euclidean distance between a and b.
func SquaredDistance2D(a, b r2.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Distance2D returns the Euclidean distance between a and b.
func Distance2D(a, b r2.Point) float64 {
	return math.Sqrt(SquaredDistance2D(a, b))
}

// SignedArea2 returns twice the signed area of triangle (a,b,c); positive
// when (a,b,c) is CCW.
func SignedArea2(a, b, c r2.Point) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
}

// SignedArea returns the signed area of triangle (a,b,c); positive when
// (a,b,c) is CCW.
func SignedArea(a, b, c r2.Point) float64 {
	return SignedArea2(a, b, c) / 2.0
}

// Circumcenter returns the centre of the circle through a, b and c.
// The three points must not be colinear.
func Circumcenter(a, b, c r2.Point) r2.Point {
	valA := det3x3t(a.X, a.Y, 1, b.X, b.Y, 1, c.X, c.Y, 1)

	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	valB := det3x3t(aSq, a.Y, 1, bSq, b.Y, 1, cSq, c.Y, 1)
	valC := det3x3t(aSq, a.X, 1, bSq, b.X, 1, cSq, c.X, 1)

	x := valB / (2.0 * valA)
	y := -valC / (2.0 * valA)
	return r2.Point{X: x, Y: y}
}

// det3x3t computes the determinant of the 3x3 matrix whose rows are
// (a0,a1,a2), (b0,b1,b2), (c0,c1,c2) (the "t" names the transposed
// layout startin's geom.rs uses: each argument is a row).
func det3x3t(a0, a1, a2, b0, b1, b2, c0, c1, c2 float64) float64 {
	return a0*(b1*c2-b2*c1) - a1*(b0*c2-b2*c0) + a2*(b0*c1-b1*c0)
}

// BBox2D returns the axis-aligned bounding rectangle of pts. It panics if
// pts is empty.
func BBox2D(pts []r2.Point) r2.Rect {
	return r2.RectFromPoints(pts...)
}

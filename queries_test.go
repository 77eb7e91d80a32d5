// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestLocate(t *testing.T) {
	tr, ids := squareWithCenter(t)

	tri, err := tr.Locate(4, 4)
	if err != nil {
		t.Fatalf("Locate(4, 4) error = %v, want nil", err)
	}
	if !tri.Contains(ids[4]) {
		t.Errorf("Locate(4, 4) = %v, want to contain centre vertex %d", tri, ids[4])
	}

	if _, err := tr.Locate(100, 100); !errors.Is(err, ErrOutsideConvexHull) {
		t.Errorf("Locate(100, 100) error = %v, want ErrOutsideConvexHull", err)
	}
}

func TestLocate_EmptyTriangulation(t *testing.T) {
	tr := New()
	if _, err := tr.Locate(0, 0); !errors.Is(err, ErrEmptyTriangulation) {
		t.Errorf("Locate on empty triangulation error = %v, want ErrEmptyTriangulation", err)
	}
}

func TestClosestPoint(t *testing.T) {
	tr, ids := squareWithCenter(t)
	got, err := tr.ClosestPoint(4.9, 4.9)
	if err != nil {
		t.Fatalf("ClosestPoint(4.9, 4.9) error = %v, want nil", err)
	}
	if got != ids[4] {
		t.Errorf("ClosestPoint(4.9, 4.9) = %d, want %d", got, ids[4])
	}

	got, err = tr.ClosestPoint(0.1, 0.1)
	if err != nil {
		t.Fatalf("ClosestPoint(0.1, 0.1) error = %v, want nil", err)
	}
	if got != ids[0] {
		t.Errorf("ClosestPoint(0.1, 0.1) = %d, want %d", got, ids[0])
	}
}

func TestAdjacentVerticesToVertex(t *testing.T) {
	tr, ids := squareWithCenter(t)
	link, err := tr.AdjacentVerticesToVertex(ids[4])
	if err != nil {
		t.Fatalf("AdjacentVerticesToVertex(%d) error = %v, want nil", ids[4], err)
	}
	if len(link) != 4 {
		t.Fatalf("AdjacentVerticesToVertex(%d) = %v, want 4 neighbours", ids[4], link)
	}
	for _, corner := range ids[:4] {
		if !Link(link).Contains(corner) {
			t.Errorf("centre's link %v missing corner %d", link, corner)
		}
	}
}

func TestIncidentTrianglesToVertex(t *testing.T) {
	tr, ids := squareWithCenter(t)
	tris, err := tr.IncidentTrianglesToVertex(ids[4])
	if err != nil {
		t.Fatalf("IncidentTrianglesToVertex(%d) error = %v, want nil", ids[4], err)
	}
	if len(tris) != 4 {
		t.Errorf("IncidentTrianglesToVertex(%d) returned %d triangles, want 4", ids[4], len(tris))
	}
	for _, tri := range tris {
		if !tri.Contains(ids[4]) {
			t.Errorf("incident triangle %v does not contain %d", tri, ids[4])
		}
	}
}

func TestAdjacentTrianglesToTriangle(t *testing.T) {
	tr, _ := squareWithCenter(t)
	tris := tr.AllFiniteTriangles()
	if len(tris) == 0 {
		t.Fatal("AllFiniteTriangles() returned none")
	}
	adj, err := tr.AdjacentTrianglesToTriangle(tris[0])
	if err != nil {
		t.Fatalf("AdjacentTrianglesToTriangle(%v) error = %v, want nil", tris[0], err)
	}
	for _, a := range adj {
		shared := 0
		for _, v := range a.V {
			if tris[0].Contains(v) {
				shared++
			}
		}
		if shared < 2 {
			t.Errorf("adjacent triangle %v shares only %d vertices with %v, want >= 2", a, shared, tris[0])
		}
	}
}

func TestAdjacentTrianglesToTriangle_NotPresent(t *testing.T) {
	tr, _ := squareWithCenter(t)
	bogus := Triangle{V: [3]int{1, 2, 3}}
	if tr.IsTriangle(bogus) {
		t.Skip("fixture coincidentally made (1,2,3) a real triangle")
	}
	if _, err := tr.AdjacentTrianglesToTriangle(bogus); !errors.Is(err, ErrTriangleNotPresent) {
		t.Errorf("AdjacentTrianglesToTriangle(%v) error = %v, want ErrTriangleNotPresent", bogus, err)
	}
}

func TestIsTriangle(t *testing.T) {
	tr, _ := squareWithCenter(t)
	for _, tri := range tr.AllFiniteTriangles() {
		if !tr.IsTriangle(tri) {
			t.Errorf("IsTriangle(%v) = false, want true", tri)
		}
	}
	if tr.IsTriangle(Triangle{V: [3]int{1, 1, 1}}) {
		t.Errorf("IsTriangle with repeated vertex = true, want false")
	}
}

func TestIsFinite(t *testing.T) {
	if !(Triangulation{}).IsFinite(Triangle{V: [3]int{1, 2, 3}}) {
		t.Errorf("IsFinite((1,2,3)) = false, want true")
	}
	if (Triangulation{}).IsFinite(Triangle{V: [3]int{0, 2, 3}}) {
		t.Errorf("IsFinite((0,2,3)) = true, want false")
	}
}

func TestConvexHull(t *testing.T) {
	tr, ids := squareWithCenter(t)
	hull := tr.ConvexHull()
	if len(hull) != 4 {
		t.Fatalf("ConvexHull() = %v, want 4 vertices", hull)
	}
	for _, corner := range ids[:4] {
		found := false
		for _, v := range hull {
			if v == corner {
				found = true
			}
		}
		if !found {
			t.Errorf("ConvexHull() %v missing corner %d", hull, corner)
		}
	}
	for _, v := range hull {
		if v == ids[4] {
			t.Errorf("ConvexHull() %v unexpectedly contains interior vertex %d", hull, ids[4])
		}
	}

	n := len(hull)
	area := 0.0
	for i := 0; i < n; i++ {
		x1, y1, _, _ := tr.GetPoint(hull[i])
		x2, y2, _, _ := tr.GetPoint(hull[(i+1)%n])
		area += x1*y2 - x2*y1
	}
	if area <= 0 {
		t.Errorf("ConvexHull() is not CCW ordered (signed area = %v)", area)
	}
}

func TestConvexHull_Empty(t *testing.T) {
	tr := New()
	if got := tr.ConvexHull(); got != nil {
		t.Errorf("ConvexHull() on empty triangulation = %v, want nil", got)
	}
}

func TestBBox(t *testing.T) {
	tr, _ := squareWithCenter(t)
	rect, err := tr.BBox()
	if err != nil {
		t.Fatalf("BBox() error = %v, want nil", err)
	}
	if rect.X.Lo != 0 || rect.X.Hi != 10 || rect.Y.Lo != 0 || rect.Y.Hi != 10 {
		t.Errorf("BBox() = %+v, want [0,10]x[0,10]", rect)
	}
}

func TestBBox_Empty(t *testing.T) {
	tr := New()
	if _, err := tr.BBox(); !errors.Is(err, ErrEmptyTriangulation) {
		t.Errorf("BBox() on empty triangulation error = %v, want ErrEmptyTriangulation", err)
	}
}

func TestVoronoiCellArea(t *testing.T) {
	tr, ids := squareWithCenter(t)

	area, err := tr.VoronoiCellArea(ids[4], false)
	if err != nil {
		t.Fatalf("VoronoiCellArea(%d, false) error = %v, want nil", ids[4], err)
	}
	if area <= 0 || math.IsInf(area, 1) {
		t.Errorf("VoronoiCellArea(%d, false) = %v, want a finite positive area", ids[4], area)
	}

	hullArea, err := tr.VoronoiCellArea(ids[0], false)
	if err != nil {
		t.Fatalf("VoronoiCellArea(%d, false) error = %v, want nil", ids[0], err)
	}
	if !math.IsInf(hullArea, 1) {
		t.Errorf("VoronoiCellArea(%d, false) = %v, want +Inf for a hull vertex", ids[0], hullArea)
	}

	boundedHullArea, err := tr.VoronoiCellArea(ids[0], true)
	if err != nil {
		t.Fatalf("VoronoiCellArea(%d, true) error = %v, want nil", ids[0], err)
	}
	if math.IsInf(boundedHullArea, 1) {
		t.Errorf("VoronoiCellArea(%d, true) = +Inf, want a finite value", ids[0])
	}
}

func TestIsValid(t *testing.T) {
	tr, _ := squareWithCenter(t)
	if !tr.IsValid() {
		t.Errorf("IsValid() = false, want true")
	}
}

func TestIsValid_EmptyTriangulation(t *testing.T) {
	tr := New()
	if !tr.IsValid() {
		t.Errorf("IsValid() on empty triangulation = false, want true")
	}
}

// TestIsValid_P1Violation corrupts the Delaunay property directly (no
// public API breaks it: every insertion legalises) by dragging a hull
// corner well inside the circumcircles of its two non-adjacent
// triangles, without re-triangulating. The circumcircles of
// (corner0,corner1,centre) and (corner3,corner0,centre) both have
// radius 5 centred on (5,0) and (0,5) respectively; (2,2) sits inside
// both.
func TestIsValid_P1Violation(t *testing.T) {
	tr, ids := squareWithCenter(t)
	if !tr.IsValid() {
		t.Fatalf("fixture is not valid before corruption")
	}
	if !tr.isDelaunay() {
		t.Fatalf("fixture is not Delaunay before corruption")
	}
	tr.slot(ids[2]).xy = r2.Point{X: 2, Y: 2}
	if tr.isDelaunay() {
		t.Errorf("isDelaunay() = true after moving a vertex into a neighbour's circumcircle, want false")
	}
	if tr.IsValid() {
		t.Errorf("IsValid() = true after moving a vertex into a neighbour's circumcircle, want false")
	}
}

// TestIsValid_P2Violation corrupts hull convexity by reordering vertex
// 0's link so three consecutive hull vertices turn the wrong way.
func TestIsValid_P2Violation(t *testing.T) {
	tr, _ := squareWithCenter(t)
	if !tr.IsValid() {
		t.Fatalf("fixture is not valid before corruption")
	}
	hull := tr.slot(0).link
	if len(hull) < 3 {
		t.Fatalf("fixture hull too small to corrupt: %v", hull)
	}
	hull[0], hull[1] = hull[1], hull[0]
	if tr.IsValid() {
		t.Errorf("IsValid() = true after reordering the hull link, want false")
	}
}

// TestIsValid_P3Violation corrupts link reciprocity by deleting one
// vertex's back-reference without updating its neighbour.
func TestIsValid_P3Violation(t *testing.T) {
	tr, ids := squareWithCenter(t)
	if !tr.IsValid() {
		t.Fatalf("fixture is not valid before corruption")
	}
	tr.slot(ids[4]).link.Delete(ids[0])
	if tr.IsValid() {
		t.Errorf("IsValid() = true after breaking link reciprocity, want false")
	}
}

// TestIsValid_P4Violation corrupts the snap-tolerance invariant by
// placing two live vertices closer together than SnapTolerance()
// without going through the duplicate-snapping insert path.
func TestIsValid_P4Violation(t *testing.T) {
	tr, ids := squareWithCenter(t)
	if !tr.IsValid() {
		t.Fatalf("fixture is not valid before corruption")
	}
	cx, cy, _, _ := tr.GetPoint(ids[4])
	tr.slot(ids[0]).xy = r2.Point{X: cx, Y: cy}
	if tr.IsValid() {
		t.Errorf("IsValid() = true after placing two vertices within SnapTolerance(), want false")
	}
}

func TestAllFiniteEdges(t *testing.T) {
	tr, ids := squareWithCenter(t)
	edges := tr.AllFiniteEdges()
	if len(edges) == 0 {
		t.Fatal("AllFiniteEdges() returned none")
	}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v not in (lo, hi) order", e)
		}
	}
	seen := map[[2]int]bool{}
	for _, e := range edges {
		if seen[e] {
			t.Errorf("edge %v listed more than once", e)
		}
		seen[e] = true
	}
	found := false
	for _, e := range edges {
		if e == [2]int{min(ids[4], ids[0]), max(ids[4], ids[0])} {
			found = true
		}
	}
	if !found {
		t.Errorf("AllFiniteEdges() missing edge between centre and corner 0")
	}
}

func TestStatisticsDegree(t *testing.T) {
	tr, _ := squareWithCenter(t)
	lo, mean, hi := tr.StatisticsDegree()
	if lo <= 0 || hi <= 0 || mean <= 0 {
		t.Errorf("StatisticsDegree() = (%d, %d, %d), want all > 0", lo, mean, hi)
	}
	if lo > hi {
		t.Errorf("StatisticsDegree() min %d > max %d", lo, hi)
	}
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

// Remove deletes vertex id from the triangulation, re-triangulating the
// hole it leaves by ear removal. It fails with ErrVertexInfinite,
// ErrVertexUnknown or ErrVertexRemoved per the usual vertex-id checks.
func (t *Triangulation) Remove(id int) error {
	if err := t.checkVertex(id); err != nil {
		return err
	}

	link := t.slot(id).link.Clone()
	if link.ContainsInfinite() {
		t.removeHullVertex(id, link)
	} else {
		t.removeInteriorVertex(id, link)
	}

	t.removedCount++
	t.liveCount--
	return nil
}

// removeInteriorVertex implements §4.G's ear-removal loop for a vertex
// none of whose neighbours is the infinite vertex.
func (t *Triangulation) removeInteriorVertex(v int, link Link) {
	a := link
	for len(a) > 3 {
		if !t.shrinkByOneEar(v, &a, false) {
			break
		}
	}
	t.collapseThree(v, a)
}

// removeHullVertex implements §4.G's hull-deletion path: ear removal
// that skips any ear touching the infinite vertex, followed by either a
// 3->1 collapse (demoting to pre-bootstrap if the hull empties below a
// triangle) or a rewiring splice of the remaining chain into vertex 0.
func (t *Triangulation) removeHullVertex(v int, link Link) {
	link.RotateInfiniteFirst()
	a := link

	staleRounds := 0
	for len(a) > 3 && staleRounds < len(a) {
		if t.shrinkByOneEar(v, &a, true) {
			staleRounds = 0
		} else {
			staleRounds++
		}
	}

	if len(a) == 3 {
		t.collapseThree(v, a)
		if t.liveCount-1 < 3 {
			t.demoteToPreBootstrap()
		}
		return
	}
	t.rewireHullChain(v, a)
}

// shrinkByOneEar scans the cyclic buffer a for one legal, locally
// Delaunay ear and removes it via a 2->2 flip, mutating a in place. It
// returns false if no ear in a single full rotation could be removed.
// When skipInfinite is true, any ear containing the infinite vertex is
// skipped outright (used by hull-vertex deletion).
func (t *Triangulation) shrinkByOneEar(v int, a *Link, skipInfinite bool) bool {
	s := *a
	n := len(s)
	for i := 0; i < n; i++ {
		x0 := s[i]
		x1 := s[(i+1)%n]
		x2 := s[(i+2)%n]

		if skipInfinite && (x0 == 0 || x1 == 0 || x2 == 0) {
			continue
		}

		if t.orient2d(t.point(x0), t.point(x1), t.point(x2)) != 1 {
			continue
		}
		if t.orient2d(t.point(x0), t.point(x2), t.point(v)) < 0 {
			continue
		}
		if !t.earIsLocallyDelaunay(x0, x1, x2, s) {
			continue
		}

		// edge (x1,v) is shared by triangles (x0,x1,v) and (v,x1,x2);
		// flipping it replaces v's adjacency to x1 with x0-x2, after
		// which x1 is no longer part of v's link.
		tr := Triangle{V: [3]int{x0, x1, v}}
		t.flip(tr, x2)

		*a = removeLinkIndex(s, (i+1)%n)
		return true
	}
	return false
}

// removeLinkIndex returns a copy of s with the element at index i
// removed, preserving cyclic order.
func removeLinkIndex(s Link, i int) Link {
	out := make(Link, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// earIsLocallyDelaunay reports whether the circumcircle of (x0,x1,x2)
// contains none of the other vertices currently in the cyclic buffer s.
func (t *Triangulation) earIsLocallyDelaunay(x0, x1, x2 int, s Link) bool {
	for _, w := range s {
		if w == x0 || w == x1 || w == x2 || w == 0 {
			continue
		}
		if t.incircle(t.point(x0), t.point(x1), t.point(x2), t.point(w)) > 0 {
			return false
		}
	}
	return true
}

// collapseThree performs the final 3->1 collapse once a's three
// remaining entries form the last triangle incident to v.
func (t *Triangulation) collapseThree(v int, a Link) {
	for _, w := range a {
		t.slot(w).link.Delete(v)
	}
	t.slot(v).tombstone()
	t.free = append(t.free, v)
	for _, w := range a {
		if w != 0 {
			t.cur = w
			break
		}
	}
}

// demoteToPreBootstrap clears every remaining vertex's link and resets
// the triangulation to the pre-bootstrap state, per §4.G: deleting a
// hull vertex can bring the live set below three non-colinear points.
func (t *Triangulation) demoteToPreBootstrap() {
	t.slot(0).link = nil
	for i := 1; i < len(t.verts); i++ {
		if !t.isRemoved(i) {
			t.slot(i).link = nil
		}
	}
	t.triangulated = false
}

// rewireHullChain splices the remaining chain of a (after v's two hull
// neighbours are spliced out) into vertex 0's link in v's former
// position, then tombstones v. a is infinite-first (a[0] == 0).
func (t *Triangulation) rewireHullChain(v int, a Link) {
	n := len(a)
	first := a[1]
	last := a[n-1]

	t.slot(first).link.Delete(v)
	t.slot(last).link.Delete(v)

	chain := a[1:n]
	for _, w := range chain {
		if w == first || w == last {
			continue
		}
		t.slot(w).link.Replace(v, 0)
		t.slot(w).link.RotateInfiniteFirst()
	}

	hull := t.slot(0).link
	pos := hull.IndexOf(v)
	newHull := make(Link, 0, len(hull)-1+len(chain)-2)
	newHull = append(newHull, hull[:pos]...)
	newHull = append(newHull, chain[1:len(chain)-1]...)
	newHull = append(newHull, hull[pos+1:]...)
	t.slot(0).link = newHull

	t.slot(v).tombstone()
	t.free = append(t.free, v)
	t.cur = first
}

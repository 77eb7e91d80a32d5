// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

// CollectGarbage compacts the vertex array, physically removing every
// tombstoned slot and renumbering survivors to close the gaps. It is
// optional and explicit: ids of surviving vertices change, so callers
// holding onto ids across a CollectGarbage call must re-resolve them
// (e.g. via coordinates).
func (t *Triangulation) CollectGarbage() {
	if len(t.free) == 0 {
		return
	}
	dead := t.sortedFree()

	shift := func(id int) int {
		n := 0
		for _, d := range dead {
			if d < id {
				n++
			} else {
				break
			}
		}
		return id - n
	}

	newVerts := make([]vertex, 0, len(t.verts)-len(dead))
	newVerts = append(newVerts, t.verts[0])
	for id := 1; id < len(t.verts); id++ {
		if t.isRemoved(id) {
			continue
		}
		v := t.verts[id]
		renumbered := make(Link, len(v.link))
		for i, w := range v.link {
			if w == 0 {
				renumbered[i] = 0
			} else {
				renumbered[i] = shift(w)
			}
		}
		v.link = renumbered
		newVerts = append(newVerts, v)
	}
	renumberedHull := make(Link, len(t.verts[0].link))
	for i, w := range t.verts[0].link {
		renumberedHull[i] = shift(w)
	}
	newVerts[0] = vertex{xy: tombstoneXY, link: renumberedHull}

	t.cur = shift(t.cur)
	if t.cur <= 0 {
		t.cur = 1
	}
	t.verts = newVerts
	t.free = nil
	t.removedCount = 0
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

// VertexView is a read-only snapshot of one vertex: its coordinates,
// elevation and a copy of its adjacency link. Unlike a live vertex id,
// a VertexView remains valid after further mutation of the
// Triangulation it was taken from (in particular across
// CollectGarbage, which renumbers ids).
type VertexView struct {
	ID   int
	X, Y float64
	Z    float64
	Link []int
}

// View returns a snapshot of vertex id.
func (t *Triangulation) View(id int) (VertexView, error) {
	if err := t.checkVertex(id); err != nil {
		return VertexView{}, err
	}
	v := t.slot(id)
	return VertexView{
		ID:   id,
		X:    v.xy.X,
		Y:    v.xy.Y,
		Z:    v.z,
		Link: v.link.Clone(),
	}, nil
}

// AllViews returns a VertexView for every live, non-infinite vertex, in
// ascending id order.
func (t *Triangulation) AllViews() []VertexView {
	out := make([]VertexView, 0, t.liveCount)
	for i := 1; i < len(t.verts); i++ {
		if t.isRemoved(i) {
			continue
		}
		v := t.verts[i]
		out = append(out, VertexView{ID: i, X: v.xy.X, Y: v.xy.Y, Z: v.z, Link: v.link.Clone()})
	}
	return out
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

// Link is the cyclic, CCW-ordered sequence of vertex ids adjacent to one
// vertex (its "star"). It contains vertex 0 (the infinite vertex) iff its
// owner lies on the convex hull. A Link has no fixed backing array size:
// insertions and deletions reslice it in place, mirroring the expected
// degree-~6 link of a Delaunay vertex in random point sets.
type Link []int

// IndexOf returns the index of v in l, or -1 if absent.
func (l Link) IndexOf(v int) int {
	for i, x := range l {
		if x == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v appears in l.
func (l Link) Contains(v int) bool {
	return l.IndexOf(v) >= 0
}

// ContainsInfinite reports whether the infinite vertex (0) appears in l.
func (l Link) ContainsInfinite() bool {
	return l.Contains(0)
}

// Append adds v at the end of the link.
func (l *Link) Append(v int) {
	*l = append(*l, v)
}

// InsertAfter inserts v immediately after the first occurrence of u. It
// is a no-op if u is not present in the link.
func (l *Link) InsertAfter(v, u int) {
	i := l.IndexOf(u)
	if i < 0 {
		return
	}
	s := *l
	s = append(s, 0)
	copy(s[i+2:], s[i+1:])
	s[i+1] = v
	*l = s
}

// Delete removes the first occurrence of v, if any.
func (l *Link) Delete(v int) {
	i := l.IndexOf(v)
	if i < 0 {
		return
	}
	s := *l
	s = append(s[:i], s[i+1:]...)
	*l = s
}

// Replace overwrites the first occurrence of v with w.
func (l *Link) Replace(v, w int) {
	i := l.IndexOf(v)
	if i < 0 {
		return
	}
	(*l)[i] = w
}

// Next returns the vertex succeeding v in the cycle. It panics if v is
// not present.
func (l Link) Next(v int) int {
	i := l.IndexOf(v)
	if i < 0 {
		panic("dtin: Link.Next: vertex not in link")
	}
	return l.AtOffset(i, 1)
}

// Prev returns the vertex preceding v in the cycle. It panics if v is
// not present.
func (l Link) Prev(v int) int {
	i := l.IndexOf(v)
	if i < 0 {
		panic("dtin: Link.Prev: vertex not in link")
	}
	return l.AtOffset(i, -1)
}

// AtOffset returns the element offset positions away from index i,
// wrapping cyclically.
func (l Link) AtOffset(i, offset int) int {
	n := len(l)
	j := ((i+offset)%n + n) % n
	return l[j]
}

// NextIndex returns the index succeeding i, wrapping cyclically.
func (l Link) NextIndex(i int) int {
	return (i + 1) % len(l)
}

// PrevIndex returns the index preceding i, wrapping cyclically.
func (l Link) PrevIndex(i int) int {
	return (i - 1 + len(l)) % len(l)
}

// RotateInfiniteFirst rotates the link so that the infinite vertex, if
// present, becomes its first element. It is a no-op if 0 is absent or
// already first.
func (l *Link) RotateInfiniteFirst() {
	s := *l
	i := s.IndexOf(0)
	if i <= 0 {
		return
	}
	rotated := make(Link, 0, len(s))
	rotated = append(rotated, s[i:]...)
	rotated = append(rotated, s[:i]...)
	*l = rotated
}

// Clone returns a copy of l, safe to mutate independently.
func (l Link) Clone() Link {
	out := make(Link, len(l))
	copy(out, l)
	return out
}

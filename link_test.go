// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinkIndexOf(t *testing.T) {
	l := Link{5, 6, 7}
	tests := []struct {
		name string
		v    int
		want int
	}{
		{"first", 5, 0},
		{"middle", 6, 1},
		{"last", 7, 2},
		{"absent", 9, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.IndexOf(tt.v); got != tt.want {
				t.Errorf("IndexOf(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestLinkContains(t *testing.T) {
	l := Link{5, 6, 7}
	if !l.Contains(6) {
		t.Errorf("Contains(6) = false, want true")
	}
	if l.Contains(9) {
		t.Errorf("Contains(9) = true, want false")
	}
}

func TestLinkContainsInfinite(t *testing.T) {
	if (Link{0, 1, 2}).ContainsInfinite() != true {
		t.Errorf("ContainsInfinite() = false, want true")
	}
	if (Link{1, 2, 3}).ContainsInfinite() != false {
		t.Errorf("ContainsInfinite() = true, want false")
	}
}

func TestLinkAppend(t *testing.T) {
	l := Link{1, 2}
	l.Append(3)
	if diff := cmp.Diff(Link{1, 2, 3}, l); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkInsertAfter(t *testing.T) {
	tests := []struct {
		name string
		l    Link
		v, u int
		want Link
	}{
		{"middle", Link{1, 2, 3}, 9, 2, Link{1, 2, 9, 3}},
		{"end", Link{1, 2, 3}, 9, 3, Link{1, 2, 3, 9}},
		{"absent no-op", Link{1, 2, 3}, 9, 7, Link{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.l.Clone()
			l.InsertAfter(tt.v, tt.u)
			if diff := cmp.Diff(tt.want, l); diff != "" {
				t.Errorf("InsertAfter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkDelete(t *testing.T) {
	l := Link{1, 2, 3}
	l.Delete(2)
	if diff := cmp.Diff(Link{1, 3}, l); diff != "" {
		t.Errorf("Delete mismatch (-want +got):\n%s", diff)
	}

	l2 := Link{1, 2, 3}
	l2.Delete(9)
	if diff := cmp.Diff(Link{1, 2, 3}, l2); diff != "" {
		t.Errorf("Delete no-op mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkReplace(t *testing.T) {
	l := Link{1, 2, 3}
	l.Replace(2, 9)
	if diff := cmp.Diff(Link{1, 9, 3}, l); diff != "" {
		t.Errorf("Replace mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkNextPrev(t *testing.T) {
	l := Link{1, 2, 3}
	if got := l.Next(1); got != 2 {
		t.Errorf("Next(1) = %d, want 2", got)
	}
	if got := l.Next(3); got != 1 {
		t.Errorf("Next(3) = %d, want 1", got)
	}
	if got := l.Prev(1); got != 3 {
		t.Errorf("Prev(1) = %d, want 3", got)
	}
	if got := l.Prev(3); got != 2 {
		t.Errorf("Prev(3) = %d, want 2", got)
	}
}

func TestLinkNext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Next should panic for vertex not in link")
		}
	}()
	(Link{1, 2, 3}).Next(9)
}

func TestLinkPrev_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Prev should panic for vertex not in link")
		}
	}()
	(Link{1, 2, 3}).Prev(9)
}

func TestLinkAtOffset(t *testing.T) {
	l := Link{10, 20, 30}
	tests := []struct {
		name   string
		i, off int
		want   int
	}{
		{"forward", 0, 1, 20},
		{"wrap forward", 2, 1, 10},
		{"backward", 0, -1, 30},
		{"zero", 1, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.AtOffset(tt.i, tt.off); got != tt.want {
				t.Errorf("AtOffset(%d, %d) = %d, want %d", tt.i, tt.off, got, tt.want)
			}
		})
	}
}

func TestLinkNextIndexPrevIndex(t *testing.T) {
	l := Link{10, 20, 30}
	if got := l.NextIndex(2); got != 0 {
		t.Errorf("NextIndex(2) = %d, want 0", got)
	}
	if got := l.PrevIndex(0); got != 2 {
		t.Errorf("PrevIndex(0) = %d, want 2", got)
	}
}

func TestLinkRotateInfiniteFirst(t *testing.T) {
	tests := []struct {
		name string
		l    Link
		want Link
	}{
		{"already first", Link{0, 1, 2}, Link{0, 1, 2}},
		{"rotate", Link{1, 2, 0, 3}, Link{0, 3, 1, 2}},
		{"absent", Link{1, 2, 3}, Link{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.l.Clone()
			l.RotateInfiniteFirst()
			if diff := cmp.Diff(tt.want, l); diff != "" {
				t.Errorf("RotateInfiniteFirst mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkClone(t *testing.T) {
	l := Link{1, 2, 3}
	c := l.Clone()
	c[0] = 99
	if l[0] == 99 {
		t.Errorf("Clone did not copy independently")
	}
	if diff := cmp.Diff(Link{1, 2, 3}, l); diff != "" {
		t.Errorf("original mutated (-want +got):\n%s", diff)
	}
}

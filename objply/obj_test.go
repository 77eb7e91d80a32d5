// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package objply

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/2dChan/dtin"
)

func triangleFixture(t *testing.T) *dtin.Triangulation {
	t.Helper()
	tr := dtin.New()
	for _, p := range [][3]float64{{0, 0, 1}, {10, 0, 2}, {5, 10, 3}} {
		if _, err := tr.InsertOnePt(p[0], p[1], p[2], nil); err != nil {
			t.Fatalf("InsertOnePt(%v) error = %v, want nil", p, err)
		}
	}
	return tr
}

func TestWriteOBJ(t *testing.T) {
	tr := triangleFixture(t)
	var buf strings.Builder
	if err := WriteOBJ(&buf, tr, false); err != nil {
		t.Fatalf("WriteOBJ error = %v, want nil", err)
	}

	var vCount, fCount int
	sc := bufio.NewScanner(strings.NewReader(buf.String()))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		}
	}
	if vCount != 3 {
		t.Errorf("WriteOBJ wrote %d vertex lines, want 3", vCount)
	}
	if fCount != 1 {
		t.Errorf("WriteOBJ wrote %d face lines, want 1", fCount)
	}
}

func TestWriteOBJ_Flatten(t *testing.T) {
	tr := triangleFixture(t)
	var buf strings.Builder
	if err := WriteOBJ(&buf, tr, true); err != nil {
		t.Fatalf("WriteOBJ error = %v, want nil", err)
	}
	sc := bufio.NewScanner(strings.NewReader(buf.String()))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "v ") {
			continue
		}
		var x, y, z float64
		if _, err := fmt.Sscanf(line, "v %g %g %g", &x, &y, &z); err != nil {
			t.Fatalf("could not parse vertex line %q: %v", line, err)
		}
		if z != 0 {
			t.Errorf("flattened vertex line %q has z=%v, want 0", line, z)
		}
	}
}

func TestWriteOBJ_TombstoneEmitsSentinel(t *testing.T) {
	tr := dtin.New()
	var centreID int
	for i, p := range [][3]float64{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}, {5, 5, 1}} {
		id, err := tr.InsertOnePt(p[0], p[1], p[2], nil)
		if err != nil {
			t.Fatalf("InsertOnePt(%v) error = %v, want nil", p, err)
		}
		if i == 4 {
			centreID = id
		}
	}
	if err := tr.Remove(centreID); err != nil {
		t.Fatalf("Remove(%d) error = %v, want nil", centreID, err)
	}

	var buf strings.Builder
	if err := WriteOBJ(&buf, tr, false); err != nil {
		t.Fatalf("WriteOBJ error = %v, want nil", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < centreID {
		t.Fatalf("WriteOBJ wrote %d lines, want at least %d", len(lines), centreID)
	}
	if lines[centreID-1] != "v NaN NaN NaN" {
		t.Errorf("line %d = %q, want the tombstone sentinel", centreID, lines[centreID-1])
	}

	var vCount int
	for _, l := range lines {
		if strings.HasPrefix(l, "v ") {
			vCount++
		}
	}
	if vCount != 5 {
		t.Errorf("WriteOBJ wrote %d vertex lines (including the sentinel), want 5", vCount)
	}
}

func TestWriteOBJ_FaceIndicesAreOneBased(t *testing.T) {
	tr := triangleFixture(t)
	var buf strings.Builder
	if err := WriteOBJ(&buf, tr, false); err != nil {
		t.Fatalf("WriteOBJ error = %v, want nil", err)
	}

	sc := bufio.NewScanner(strings.NewReader(buf.String()))
	found := false
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "f ") {
			continue
		}
		found = true
		var a, b, c int
		if _, err := fmt.Sscanf(line, "f %d %d %d", &a, &b, &c); err != nil {
			t.Fatalf("could not parse face line %q: %v", line, err)
		}
		seen := map[int]bool{a: true, b: true, c: true}
		for _, want := range []int{1, 2, 3} {
			if !seen[want] {
				t.Errorf("face line %q missing 1-based index %d", line, want)
			}
		}
	}
	if !found {
		t.Fatal("WriteOBJ output contains no face line")
	}
}

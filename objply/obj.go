// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package objply writes a dtin.Triangulation out as Wavefront OBJ or
// Stanford PLY, the two plain-text mesh formats startin's own
// write_obj exposes. Vertex ids in the output are 1-based per OBJ's own
// convention and stay positional: slot id n is always written as line n,
// so a tombstoned id still occupies a line (a sentinel `v NaN NaN NaN`,
// per spec.md §6), and face indices reference ids directly with no
// renumbering.
package objply

import (
	"bufio"
	"fmt"
	"io"

	"github.com/2dChan/dtin"
)

// tombstoneLine is written for a tombstoned vertex slot, mirroring the
// NaN-xy convention the triangulation itself uses to mark a tombstone.
const tombstoneLine = "v NaN NaN NaN\n"

// WriteOBJ writes t to w as Wavefront OBJ. If flatten is true, every
// live vertex is written with z=0 (a 2D footprint of the mesh);
// otherwise the real elevation is used.
func WriteOBJ(w io.Writer, t *dtin.Triangulation, flatten bool) error {
	bw := bufio.NewWriter(w)

	maxID := t.NumberOfVertices() + t.NumberOfRemovedVertices()
	for id := 1; id <= maxID; id++ {
		removed, err := t.IsVertexRemoved(id)
		if err != nil {
			return err
		}
		if removed {
			if _, err := io.WriteString(bw, tombstoneLine); err != nil {
				return err
			}
			continue
		}
		x, y, z, err := t.GetPoint(id)
		if err != nil {
			return err
		}
		if flatten {
			z = 0
		}
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", x, y, z); err != nil {
			return err
		}
	}

	for _, tr := range t.AllFiniteTriangles() {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", tr.V[0], tr.V[1], tr.V[2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

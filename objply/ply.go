// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package objply

import (
	"bufio"
	"fmt"
	"io"

	"github.com/2dChan/dtin"
	"github.com/2dChan/dtin/attrs"
)

// plyPropertyType maps an attrs.Type to the PLY property type keyword
// written in the header. PLY has no native variable-length string
// property; "string" is a pragmatic, documented extension rather than
// part of the Stanford format proper.
func plyPropertyType(typ attrs.Type) string {
	switch typ {
	case attrs.Float64:
		return "double"
	case attrs.Int64:
		return "int"
	case attrs.Uint64:
		return "uint"
	case attrs.Bool:
		return "uchar"
	case attrs.String:
		return "string"
	default:
		return "double"
	}
}

// plyZeroValue is the value written for a vertex whose record has no
// entry for a declared field, keeping every row the same width.
func plyZeroValue(typ attrs.Type) any {
	switch typ {
	case attrs.Int64:
		return int64(0)
	case attrs.Uint64:
		return uint64(0)
	case attrs.Bool:
		return false
	case attrs.String:
		return ""
	default:
		return float64(0)
	}
}

// WritePLY writes t to w as an ASCII Stanford PLY mesh. Vertex ids stay
// positional, mirroring WriteOBJ: a tombstoned slot still occupies a row
// (written as NaN x,y,z), so face indices need no renumbering. If t
// carries an attribute schema (see Triangulation.Schema), each declared
// field becomes an extra per-vertex property column.
func WritePLY(w io.Writer, t *dtin.Triangulation) error {
	bw := bufio.NewWriter(w)

	schema := t.Schema()
	maxID := t.NumberOfVertices() + t.NumberOfRemovedVertices()
	trs := t.AllFiniteTriangles()

	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintf(bw, "element vertex %d\n", maxID)
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	for _, f := range schema {
		fmt.Fprintf(bw, "property %s %s\n", plyPropertyType(f.Type), f.Name)
	}
	fmt.Fprintf(bw, "element face %d\n", len(trs))
	fmt.Fprintln(bw, "property list uchar int vertex_indices")
	fmt.Fprintln(bw, "end_header")

	for id := 1; id <= maxID; id++ {
		removed, err := t.IsVertexRemoved(id)
		if err != nil {
			return err
		}
		if removed {
			if _, err := fmt.Fprintln(bw, "NaN NaN NaN"); err != nil {
				return err
			}
			continue
		}
		x, y, z, err := t.GetPoint(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%g %g %g", x, y, z); err != nil {
			return err
		}
		if len(schema) > 0 {
			record, err := t.Attributes(id)
			if err != nil {
				return err
			}
			for _, f := range schema {
				v, ok := record[f.Name]
				if !ok {
					v = plyZeroValue(f.Type)
				}
				if f.Type == attrs.String {
					if _, err := fmt.Fprintf(bw, " %q", v); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(bw, " %v", v); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	for _, tr := range trs {
		if _, err := fmt.Fprintf(bw, "3 %d %d %d\n", tr.V[0], tr.V[1], tr.V[2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package dtin

import "github.com/2dChan/dtin/attrs"

// GetAttribute returns the value of the named attribute field on vertex
// id, validated against the triangulation's schema. It returns
// ErrTinHasNoAttributes if no schema was attached via WithAttributeSchema,
// or ErrWrongAttribute if name is undeclared or the stored value's type
// does not match the declaration.
func (t *Triangulation) GetAttribute(id int, name string) (any, error) {
	if err := t.checkVertex(id); err != nil {
		return nil, err
	}
	return t.schema.Get(t.slot(id).attrs, name)
}

// SetAttribute validates value against the schema and stores it on
// vertex id's attribute record, creating the record if the vertex had
// none yet. It returns ErrTinHasNoAttributes or ErrWrongAttribute on the
// same conditions as GetAttribute.
func (t *Triangulation) SetAttribute(id int, name string, value any) error {
	if err := t.checkVertex(id); err != nil {
		return err
	}
	v := t.slot(id)
	rec, err := t.schema.Set(v.attrs, name, value)
	if err != nil {
		return err
	}
	v.attrs = rec
	return nil
}

// Attributes returns a copy of vertex id's full attribute record. It is
// nil if the vertex carries no attribute values, regardless of whether a
// schema is attached.
func (t *Triangulation) Attributes(id int) (attrs.Record, error) {
	if err := t.checkVertex(id); err != nil {
		return nil, err
	}
	return t.slot(id).attrs.Clone(), nil
}

// Schema returns the attribute schema attached via WithAttributeSchema,
// or nil if none was. Writers (objply) use it to decide whether to emit
// a per-vertex attribute column without reaching into vertex internals.
func (t *Triangulation) Schema() attrs.Schema {
	return t.schema
}

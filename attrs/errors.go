// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package attrs

import "errors"

var (
	// ErrNoSchema is returned when an attribute is accessed on a
	// Triangulation that was never given a Schema.
	ErrNoSchema = errors.New("attrs: triangulation has no attribute schema")

	// ErrWrongAttribute is returned when a field name is not declared in
	// the schema, or its stored/supplied value does not match the
	// field's declared type.
	ErrWrongAttribute = errors.New("attrs: attribute name or type mismatch")
)

// Package plan resolves which structs get generated accessors and
// validates that every one of them can satisfy the accessor contract.
package plan

import (
	"github.com/Michael-F-Bryan/stringly-typed/internal/diagnostic"
	"github.com/Michael-F-Bryan/stringly-typed/options"
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// Plan is the fully resolved input to the code generator.
type Plan struct {
	// Packages that receive a generated file, sorted by package path.
	Packages []*PackageAccessors
	// Style used to derive path keys.
	Style options.KeyStyleEnum
	// Output is the per-package filename for generated accessors.
	Output string
	// Diagnostics raised during resolution. A plan with error
	// diagnostics must not be generated from.
	Diagnostics diagnostic.Diagnostics
}

// PackageAccessors groups the accessors generated into one package.
type PackageAccessors struct {
	PkgPath   string
	PkgName   string
	Dir       string // directory the generated file is written to
	Accessors []AccessorSpec
}

// AccessorSpec describes the accessor implementation for one struct:
// its declared name and one delegation branch per addressable field.
type AccessorSpec struct {
	TypeName string
	Fields   []FieldSpec
}

// Keys returns the path keys in declaration order, the UnknownField
// payload for this struct.
func (s *AccessorSpec) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}

	return keys
}

// FieldSpec is one delegation branch. Leaf is set for terminal fields;
// a zero Leaf delegates to the field's own generated accessor.
type FieldSpec struct {
	GoName string
	Key    string
	Leaf   value.KindEnum
}

// IsLeaf reports whether the branch terminates at a primitive.
func (f *FieldSpec) IsLeaf() bool { return f.Leaf != 0 }

package analyze

import (
	"reflect"

	"github.com/Michael-F-Bryan/stringly-typed/options"
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "github.com/Michael-F-Bryan/stringly-typed/examples/telemetry"
	Name    string // e.g., "Probe"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct found in a loaded package.
type StructInfo struct {
	ID     TypeID
	Fields []FieldInfo // exported fields, declaration order
}

// FieldInfo describes one exported struct field. Exactly one of Leaf
// and Struct is set for supported fields; neither is set for fields the
// accessor protocol cannot address (slices, maps, pointers, unsupported
// basic kinds).
type FieldInfo struct {
	Name       string            // Go field name
	Tag        reflect.StructTag // raw struct tag
	Leaf       value.KindEnum    // nonzero for int64/float64/string-underlying fields
	Struct     *TypeID           // non-nil for nested named struct fields
	TypeString string            // Go rendering of the field type, for diagnostics
	Index      int               // field index in the struct
}

func (f *FieldInfo) IsLeaf() bool { return f.Leaf != 0 }

func (f *FieldInfo) IsStruct() bool { return f.Struct != nil }

func (f *FieldInfo) IsSupported() bool { return f.IsLeaf() || f.IsStruct() }

// Key returns the path key for the field and whether the field
// participates at all. A `stringly:"name"` tag wins over the style;
// `stringly:"-"` excludes the field.
func (f *FieldInfo) Key(style options.KeyStyleEnum) (string, bool) {
	switch tag := f.Tag.Get("stringly"); tag {
	case "-":
		return "", false
	case "":
		return style.Apply(f.Name), true
	default:
		return tag, true
	}
}

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path    string
	Name    string
	Dir     string // directory holding the package sources, where generated files go
	Structs []TypeID
}

// TypeGraph holds everything extracted from one LoadPackages call.
type TypeGraph struct {
	Packages map[string]*PackageInfo
	Structs  map[TypeID]*StructInfo
}

// NewTypeGraph creates an empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Packages: make(map[string]*PackageInfo),
		Structs:  make(map[TypeID]*StructInfo),
	}
}

// GetStruct returns the StructInfo for id, or nil if id names no loaded struct.
func (g *TypeGraph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

package analyze

import (
	"strings"

	"github.com/Michael-F-Bryan/stringly-typed/options"
)

// TypePath builds a dotted path string segment by segment.
// Example: "probe" -> "probe.reading" -> "probe.reading.celsius".
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root name.
func NewTypePath(root string) *TypePath {
	return &TypePath{parts: []string{root}}
}

// Field appends a key segment to the path.
func (p *TypePath) Field(key string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), key),
	}
}

// String returns the full dotted path.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// PathEntry is one addressable location under a root struct.
type PathEntry struct {
	Path string // dotted path from (and including) the root type's name
	Tag  string // leaf type tag, or the struct type name for unaddressable struct levels
	Leaf bool
}

// maxPathDepth caps recursion so mutually recursive struct types cannot
// hang the walk; the accessor protocol itself has no such cap because
// its depth is fixed by the type being addressed.
const maxPathDepth = 32

// FieldPaths enumerates every addressable dotted path under root in
// declaration order, using the same key derivation as the generator.
// Fields the protocol cannot address are omitted.
func FieldPaths(g *TypeGraph, root TypeID, style options.KeyStyleEnum) []PathEntry {
	info := g.GetStruct(root)
	if info == nil {
		return nil
	}

	var out []PathEntry

	walkFieldPaths(g, info, NewTypePath(root.Name), style, 0, &out)

	return out
}

func walkFieldPaths(g *TypeGraph, info *StructInfo, path *TypePath, style options.KeyStyleEnum, depth int, out *[]PathEntry) {
	if depth > maxPathDepth {
		return
	}

	for i := range info.Fields {
		field := &info.Fields[i]

		key, ok := field.Key(style)
		if !ok {
			continue
		}

		fieldPath := path.Field(key)

		switch {
		case field.IsLeaf():
			*out = append(*out, PathEntry{
				Path: fieldPath.String(),
				Tag:  field.Leaf.TypeName(),
				Leaf: true,
			})

		case field.IsStruct():
			nested := g.GetStruct(*field.Struct)
			if nested == nil {
				*out = append(*out, PathEntry{Path: fieldPath.String(), Tag: field.Struct.String()})

				continue
			}

			walkFieldPaths(g, nested, fieldPath, style, depth+1, out)
		}
	}
}

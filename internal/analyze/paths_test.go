package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Michael-F-Bryan/stringly-typed/options"
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

func probeGraph() (*TypeGraph, TypeID) {
	pkg := "example.com/telemetry"
	probeID := TypeID{PkgPath: pkg, Name: "Probe"}
	readingID := TypeID{PkgPath: pkg, Name: "Reading"}

	g := NewTypeGraph()
	g.Structs[probeID] = &StructInfo{
		ID: probeID,
		Fields: []FieldInfo{
			{Name: "Label", Leaf: value.KindString},
			{Name: "Reading", Struct: &readingID},
			{Name: "Raw", Tag: `stringly:"-"`, Leaf: value.KindString},
		},
	}
	g.Structs[readingID] = &StructInfo{
		ID: readingID,
		Fields: []FieldInfo{
			{Name: "Celsius", Leaf: value.KindDouble},
			{Name: "SampleCount", Tag: `stringly:"samples"`, Leaf: value.KindInteger},
		},
	}

	return g, probeID
}

func TestFieldPaths(t *testing.T) {
	t.Parallel()

	g, probeID := probeGraph()

	got := FieldPaths(g, probeID, options.KeySnake)

	want := []PathEntry{
		{Path: "Probe.label", Tag: "string", Leaf: true},
		{Path: "Probe.reading.celsius", Tag: "double", Leaf: true},
		{Path: "Probe.reading.samples", Tag: "integer", Leaf: true},
	}
	assert.Equal(t, want, got)
}

func TestFieldPathsUnknownRoot(t *testing.T) {
	t.Parallel()

	g, _ := probeGraph()

	assert.Nil(t, FieldPaths(g, TypeID{PkgPath: "x", Name: "Y"}, options.KeySnake))
}

func TestFieldPathsRecursiveTypesTerminate(t *testing.T) {
	t.Parallel()

	id := TypeID{PkgPath: "example.com/loop", Name: "Node"}
	g := NewTypeGraph()
	g.Structs[id] = &StructInfo{
		ID: id,
		Fields: []FieldInfo{
			{Name: "Next", Struct: &id},
			{Name: "Weight", Leaf: value.KindDouble},
		},
	}

	// Must return, bounded by the depth cap.
	got := FieldPaths(g, id, options.KeySnake)
	assert.NotEmpty(t, got)
}

func TestFieldKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field FieldInfo
		style options.KeyStyleEnum
		key   string
		ok    bool
	}{
		{"style applied", FieldInfo{Name: "SampleCount"}, options.KeySnake, "sample_count", true},
		{"lower camel", FieldInfo{Name: "SampleCount"}, options.KeyLowerCamel, "sampleCount", true},
		{"tag override", FieldInfo{Name: "SampleCount", Tag: reflect.StructTag(`stringly:"samples"`)}, options.KeySnake, "samples", true},
		{"skipped", FieldInfo{Name: "Raw", Tag: reflect.StructTag(`stringly:"-"`)}, options.KeySnake, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := tt.field.Key(tt.style)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds the struct graph the generator
// consumes.
type Analyzer struct {
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewTypeGraph()}
}

// LoadPackages loads the specified packages and extracts their named
// structs. Patterns are standard Go package patterns (e.g.,
// "./examples/telemetry").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts named struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process exported type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		info := &StructInfo{ID: id}
		a.analyzeStructFields(st, info)

		a.graph.Structs[id] = info
		pkgInfo.Structs = append(pkgInfo.Structs, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeStructFields classifies the exported fields of a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *StructInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:       field.Name(),
			Tag:        reflect.StructTag(st.Tag(i)),
			TypeString: field.Type().String(),
			Index:      i,
		}
		classifyFieldType(field.Type(), &fieldInfo)

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// classifyFieldType decides whether a field type is a supported leaf, a
// nested named struct, or unaddressable. Leaf detection goes through
// the underlying type, so named types like `type Count int64` qualify:
// their pointers convert directly to the access leaf types.
func classifyFieldType(t types.Type, out *FieldInfo) {
	if named, ok := t.(*types.Named); ok {
		if _, isStruct := named.Underlying().(*types.Struct); isStruct {
			obj := named.Obj()
			if obj.Pkg() == nil {
				return
			}

			out.Struct = &TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}

			return
		}
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return
	}

	switch basic.Kind() {
	case types.Int64:
		out.Leaf = value.KindInteger
	case types.Float64:
		out.Leaf = value.KindDouble
	case types.String:
		out.Leaf = value.KindString
	}
}

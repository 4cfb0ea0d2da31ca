package plan

import (
	"fmt"
	"sort"

	"github.com/Michael-F-Bryan/stringly-typed/internal/analyze"
	"github.com/Michael-F-Bryan/stringly-typed/internal/diagnostic"
	"github.com/Michael-F-Bryan/stringly-typed/internal/manifest"
	"github.com/Michael-F-Bryan/stringly-typed/internal/match"
)

// Resolver turns a loaded type graph plus a manifest into a Plan.
//
// Manifest package patterns scope what gets loaded; type filters are
// name-based across the loaded set. Structs reachable through nested
// fields are pulled into the plan transitively, each generated into its
// own package.
type Resolver struct {
	graph *analyze.TypeGraph
	m     *manifest.Manifest
}

// NewResolver creates a Resolver over an already-loaded graph.
func NewResolver(graph *analyze.TypeGraph, m *manifest.Manifest) *Resolver {
	return &Resolver{graph: graph, m: m}
}

// Resolve computes the generation set and validates it. The returned
// error covers manifest-level problems; per-type problems land in
// Plan.Diagnostics.
func (r *Resolver) Resolve() (*Plan, error) {
	style, err := r.m.Style()
	if err != nil {
		return nil, err
	}

	plan := &Plan{Style: style, Output: r.m.Output}

	roots := r.selectRoots(plan)
	if len(roots) == 0 && !plan.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("no structs selected: loaded %d packages, none match the manifest", len(r.graph.Packages))
	}

	// Transitive closure over nested struct fields.
	seen := make(map[analyze.TypeID]bool)
	byPkg := make(map[string]*PackageAccessors)

	for len(roots) > 0 {
		id := roots[0]
		roots = roots[1:]

		if seen[id] {
			continue
		}
		seen[id] = true

		info := r.graph.GetStruct(id)
		if info == nil {
			plan.Diagnostics.AddError(diagnostic.CodeMissingStruct, id.String(), "",
				"nested struct type was not loaded; its package must be in the manifest and the type exported")

			continue
		}

		spec, nested := r.resolveStruct(info, plan)
		roots = append(roots, nested...)

		pkg := byPkg[id.PkgPath]
		if pkg == nil {
			pkgInfo := r.graph.Packages[id.PkgPath]
			pkg = &PackageAccessors{
				PkgPath: id.PkgPath,
				PkgName: pkgInfo.Name,
				Dir:     pkgInfo.Dir,
			}
			byPkg[id.PkgPath] = pkg
			plan.Packages = append(plan.Packages, pkg)
		}

		pkg.Accessors = append(pkg.Accessors, spec)
	}

	// Deterministic output regardless of traversal order.
	sort.Slice(plan.Packages, func(i, j int) bool { return plan.Packages[i].PkgPath < plan.Packages[j].PkgPath })
	for _, pkg := range plan.Packages {
		sort.Slice(pkg.Accessors, func(i, j int) bool { return pkg.Accessors[i].TypeName < pkg.Accessors[j].TypeName })
	}

	return plan, nil
}

// selectRoots picks the explicitly requested structs.
func (r *Resolver) selectRoots(plan *Plan) []analyze.TypeID {
	var roots []analyze.TypeID

	pkgPaths := make([]string, 0, len(r.graph.Packages))
	for path := range r.graph.Packages {
		pkgPaths = append(pkgPaths, path)
	}
	sort.Strings(pkgPaths)

	requested := make(map[string]bool)

	for _, path := range pkgPaths {
		for _, id := range r.graph.Packages[path].Structs {
			if r.included(id.Name) {
				roots = append(roots, id)
			}
		}
	}

	// A type filter naming nothing that was loaded is a manifest typo.
	for _, entry := range r.m.Packages {
		for _, name := range entry.Types {
			for _, id := range roots {
				if id.Name == name {
					requested[name] = true
				}
			}

			if !requested[name] {
				plan.Diagnostics.AddError(diagnostic.CodeUnknownType, name, "",
					"manifest names a type the loader did not find")
				r.suggestLoadedName(plan, name)
			}
		}
	}

	return roots
}

func (r *Resolver) included(name string) bool {
	for _, entry := range r.m.Packages {
		if entry.Types.Contains(name) {
			return true
		}
	}

	// No packages in the manifest means "everything that was loaded".
	return len(r.m.Packages) == 0
}

func (r *Resolver) suggestLoadedName(plan *Plan, name string) {
	var candidates []string
	for id := range r.graph.Structs {
		candidates = append(candidates, id.Name)
	}
	sort.Strings(candidates)

	if hint, ok := match.Closest(name, candidates); ok {
		plan.Diagnostics.Suggest(hint)
	}
}

// resolveStruct validates one struct and builds its AccessorSpec,
// returning the nested struct types it delegates to.
func (r *Resolver) resolveStruct(info *analyze.StructInfo, plan *Plan) (AccessorSpec, []analyze.TypeID) {
	spec := AccessorSpec{TypeName: info.ID.Name}

	var nested []analyze.TypeID

	keysSeen := make(map[string]string) // key -> field that claimed it

	for i := range info.Fields {
		field := &info.Fields[i]

		key, ok := field.Key(plan.Style)
		if !ok {
			continue // tagged stringly:"-"
		}

		if !field.IsSupported() {
			plan.Diagnostics.AddError(diagnostic.CodeUnsupportedKind, info.ID.String(), field.Name,
				"field type %s has no dynamic representation", field.TypeString)
			plan.Diagnostics.Suggest(`exclude the field with stringly:"-"`)

			continue
		}

		if prev, dup := keysSeen[key]; dup {
			plan.Diagnostics.AddError(diagnostic.CodeDuplicateKey, info.ID.String(), field.Name,
				"path key %q already used by field %s", key, prev)

			continue
		}
		keysSeen[key] = field.Name

		spec.Fields = append(spec.Fields, FieldSpec{
			GoName: field.Name,
			Key:    key,
			Leaf:   field.Leaf,
		})

		if field.IsStruct() {
			nested = append(nested, *field.Struct)
		}
	}

	// A struct with no addressable fields cannot satisfy the contract;
	// it is rejected here, at generation time, never at run time.
	if len(spec.Fields) == 0 {
		plan.Diagnostics.AddError(diagnostic.CodeZeroFieldStruct, info.ID.String(), "",
			"struct declares no addressable fields and cannot satisfy the accessor contract")
	}

	return spec, nested
}

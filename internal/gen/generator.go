// Package gen renders a resolved plan into formatted Go source: one
// accessors file per package, one delegation branch per declared field.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/Michael-F-Bryan/stringly-typed/internal/plan"
)

// File is one generated source file, not yet written to disk.
type File struct {
	Dir      string
	Filename string
	Content  []byte
}

// Path returns the full destination path.
func (f *File) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders every package in the plan. A plan carrying error
// diagnostics is refused: the generator only ever emits code for
// structs that can satisfy the accessor contract.
func Generate(p *plan.Plan) ([]File, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("refusing to generate from a plan with %d error diagnostics", len(p.Diagnostics.Errors))
	}

	files := make([]File, 0, len(p.Packages))

	for _, pkg := range p.Packages {
		content, err := renderPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, err)
		}

		files = append(files, File{
			Dir:      pkg.Dir,
			Filename: p.Output,
			Content:  content,
		})
	}

	return files, nil
}

// WriteFiles writes generated files to their package directories.
func WriteFiles(files []File) error {
	for _, f := range files {
		if err := os.WriteFile(f.Path(), f.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path(), err)
		}
	}

	return nil
}

// renderPackage renders and gofmts one package's accessors file.
func renderPackage(pkg *plan.PackageAccessors) ([]byte, error) {
	data := fileData{
		Package:      pkg.PkgName,
		AccessImport: accessImport,
		ValueImport:  valueImport,
	}

	for i := range pkg.Accessors {
		data.Accessors = append(data.Accessors, buildAccessorData(&pkg.Accessors[i]))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("template execution failed: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure is a template bug; surface the raw
		// source to make it debuggable.
		return nil, fmt.Errorf("generated source does not parse: %w\n%s", err, buf.String())
	}

	return formatted, nil
}

func buildAccessorData(spec *plan.AccessorSpec) accessorData {
	data := accessorData{
		TypeName: spec.TypeName,
		KeysVar:  keysVarName(spec.TypeName),
		Keys:     spec.Keys(),
	}

	for i := range spec.Fields {
		field := &spec.Fields[i]

		branch := branchData{Key: field.Key, GoName: field.GoName}
		if field.IsLeaf() {
			branch.Leaf = leafTypeIdent(field.Leaf)
		}

		data.Branches = append(data.Branches, branch)
	}

	return data
}

// keysVarName derives the package-level key list variable, e.g.
// "Probe" -> "probeKeys". The var is unexported on purpose: the key
// list travels to callers inside UnknownFieldError payloads.
func keysVarName(typeName string) string {
	r, size := utf8.DecodeRuneInString(typeName)

	return string(unicode.ToLower(r)) + typeName[size:] + "Keys"
}

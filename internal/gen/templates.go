package gen

import (
	"text/template"

	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// Import paths baked into generated files.
const (
	accessImport = "github.com/Michael-F-Bryan/stringly-typed/access"
	valueImport  = "github.com/Michael-F-Bryan/stringly-typed/value"
)

// fileData is everything one generated file needs.
type fileData struct {
	Package      string
	AccessImport string
	ValueImport  string
	Accessors    []accessorData
}

// accessorData renders one struct's three methods plus its key list.
type accessorData struct {
	TypeName string
	KeysVar  string
	Keys     []string
	Branches []branchData
}

// branchData is one delegation branch. Leaf is the access package leaf
// type identifier, or empty for delegation to a nested struct.
type branchData struct {
	Key    string
	GoName string
	Leaf   string
}

// leafTypeIdent maps a leaf kind to the access package type that
// terminates the path there.
func leafTypeIdent(k value.KindEnum) string {
	switch k {
	default:
		panic("no access leaf type for kind: " + k.String())
	case value.KindInteger:
		return "Integer"
	case value.KindDouble:
		return "Double"
	case value.KindString:
		return "String"
	}
}

var fileTemplate = template.Must(template.New("accessors").Parse(`// Code generated by stringly-gen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.AccessImport}}"
	"{{.ValueImport}}"
)
{{range .Accessors}}
var {{.KeysVar}} = []string{ {{- range $i, $k := .Keys}}{{if $i}}, {{end}}"{{$k}}"{{end}} }

func (x *{{.TypeName}}) GetValue(keys []string) (value.Value, error) {
	if len(keys) == 0 {
		return value.Value{}, &access.CantSerializeError{TypeName: x.TypeName()}
	}

	switch keys[0] {
{{- range .Branches}}
	case "{{.Key}}":
{{- if .Leaf}}
		return access.{{.Leaf}}(x.{{.GoName}}).GetValue(keys[1:])
{{- else}}
		return x.{{.GoName}}.GetValue(keys[1:])
{{- end}}
{{- end}}
	default:
		return value.Value{}, &access.UnknownFieldError{Field: keys[0], ValidFields: {{.KeysVar}}}
	}
}

func (x *{{.TypeName}}) SetValue(keys []string, val value.Value) error {
	if len(keys) == 0 {
		return &access.CantSerializeError{TypeName: x.TypeName()}
	}

	switch keys[0] {
{{- range .Branches}}
	case "{{.Key}}":
{{- if .Leaf}}
		return (*access.{{.Leaf}})(&x.{{.GoName}}).SetValue(keys[1:], val)
{{- else}}
		return x.{{.GoName}}.SetValue(keys[1:], val)
{{- end}}
{{- end}}
	default:
		return &access.UnknownFieldError{Field: keys[0], ValidFields: {{.KeysVar}}}
	}
}

func (x *{{.TypeName}}) TypeName() string {
	return "{{.TypeName}}"
}

var _ access.Accessor = (*{{.TypeName}})(nil)
{{end}}`))

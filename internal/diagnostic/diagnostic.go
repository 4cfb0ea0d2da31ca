// Package diagnostic provides structured errors and warnings for the
// accessor generator: which type or field a problem concerns, why, and
// what to try instead.
package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes raised while planning accessor generation.
const (
	CodeZeroFieldStruct = "zero-field-struct" // struct declares no addressable fields, cannot satisfy the contract
	CodeUnsupportedKind = "unsupported-kind"  // field type has no leaf kind and is not a named struct
	CodeDuplicateKey    = "duplicate-key"     // two fields of one struct map to the same path key
	CodeMissingStruct   = "missing-struct"    // nested struct type was not found in the loaded packages
	CodeUnknownType     = "unknown-type"      // manifest names a type the loader did not find
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies which struct this relates to (if any).
	TypeName string
	// Field identifies which field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// String renders the diagnostic in a single line for CLI output.
func (d Diagnostic) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]", d.Severity, d.Code)

	if d.TypeName != "" {
		fmt.Fprintf(&sb, " %s", d.TypeName)
	}
	if d.Field != "" {
		fmt.Fprintf(&sb, ".%s", d.Field)
	}

	fmt.Fprintf(&sb, ": %s", d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (try: %s)", strings.Join(d.Suggestions, ", "))
	}

	return sb.String()
}

// Diagnostics collects everything raised during one plan resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, typeName, field, format string, args ...any) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, typeName, field, format string, args ...any) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
		Field:    field,
	})
}

// Suggest attaches suggestions to the most recently added error.
func (d *Diagnostics) Suggest(suggestions ...string) {
	if len(d.Errors) == 0 {
		return
	}

	last := &d.Errors[len(d.Errors)-1]
	last.Suggestions = append(last.Suggestions, suggestions...)
}

// HasErrors returns true if any error diagnostics were raised.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns warnings followed by errors, for rendering.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Warnings)+len(d.Errors))
	out = append(out, d.Warnings...)
	out = append(out, d.Errors...)

	return out
}

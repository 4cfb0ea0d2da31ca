// Package analyze loads Go packages and extracts the struct shapes the
// accessor generator works from.
//
// Key capabilities:
//   - go/packages loading with full type information
//   - Classification of struct fields into the supported leaf kinds
//     (int64, float64, string underlying types) and nested named structs
//   - Dotted-path enumeration for the CLI's analyze command
package analyze

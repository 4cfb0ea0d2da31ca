// Package options holds the user-facing generator options.
package options

import (
	"fmt"
	"strings"
	"unicode"
)

//go:generate go tool stringer -type=KeyStyleEnum -output=keystyle_string.go

// KeyStyleEnum selects how a Go field name becomes a path key when no
// `stringly` tag overrides it.
type KeyStyleEnum int

const (
	_ KeyStyleEnum = iota // skip zero value, use it as a default (invalid) value for KeyStyleEnum

	KeySnake      // ReadingCount -> reading_count
	KeyLowerCamel // ReadingCount -> readingCount
	KeyVerbatim   // ReadingCount -> ReadingCount
)

// ParseKeyStyle parses the manifest/flag spelling of a key style.
func ParseKeyStyle(s string) (KeyStyleEnum, error) {
	switch s {
	default:
		return 0, fmt.Errorf("unknown key style %q (want snake, lowerCamel or verbatim)", s)
	case "", "snake":
		return KeySnake, nil
	case "lowerCamel":
		return KeyLowerCamel, nil
	case "verbatim":
		return KeyVerbatim, nil
	}
}

// Apply derives the path key for a Go field name.
func (k KeyStyleEnum) Apply(fieldName string) string {
	switch k {
	default:
		panic("cannot apply invalid key style: " + k.String())
	case KeyVerbatim:
		return fieldName
	case KeySnake:
		return strings.ToLower(strings.Join(tokenizeCamelCase(fieldName), "_"))
	case KeyLowerCamel:
		tokens := tokenizeCamelCase(fieldName)
		for i, tok := range tokens {
			if i == 0 {
				tokens[i] = strings.ToLower(tok)
				continue
			}

			tokens[i] = strings.ToUpper(tok[:1]) + strings.ToLower(tok[1:])
		}

		return strings.Join(tokens, "")
	}
}

// tokenizeCamelCase splits a CamelCase or camelCase identifier into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		if i > 0 && shouldStartNewToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(runes[i])
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	isUpper := unicode.IsUpper(runes[i])
	isPrevUpper := unicode.IsUpper(runes[i-1])

	// Transition from lowercase to uppercase: start new token
	// e.g., "orderID" -> split before 'I'
	if isUpper && !isPrevUpper {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

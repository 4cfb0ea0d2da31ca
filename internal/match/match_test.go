package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"inner", "inner", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"x", "y", 1},    // substitution
		{"x", "xy", 1},   // insertion
		{"xy", "x", 1},   // deletion
		{"abc", "ab", 1}, // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive, like field dispatch
		{"Inner", "inner", 1},
		{"ABC", "abc", 3},

		// Real-world path segment typos
		{"celcius", "celsius", 1},
		{"readng", "reading", 1},
		{"lable", "label", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	fields := []string{"label", "reading", "celsius", "count"}

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"celcius", "celsius", true},
		{"readng", "reading", true},
		{"Label", "label", true},
		{"count", "count", true}, // exact match still suggests itself
		{"bogus", "", false},     // nothing plausible
		{"x", "", false},         // too short to suggest anything
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.name, fields)
			if ok != tt.found || got != tt.expected {
				t.Errorf("Closest(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.expected, tt.found)
			}
		})
	}
}

func TestClosestPrefersDeclarationOrderOnTies(t *testing.T) {
	got, ok := Closest("xa", []string{"xb", "xc"})
	if !ok || got != "xb" {
		t.Errorf("Closest tie-break = %q, %v, want %q, true", got, ok, "xb")
	}
}

func TestClosestEmptyCandidates(t *testing.T) {
	if _, ok := Closest("anything", nil); ok {
		t.Error("Closest with no candidates must not suggest")
	}
}

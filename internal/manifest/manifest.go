// Package manifest loads the YAML file that tells stringly-gen what to
// generate accessors for.
//
// A minimal manifest:
//
//	version: "1"
//	packages:
//	  - pattern: ./examples/telemetry
//	    types: Probe
//	key_style: snake
//	output: accessors_gen.go
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Michael-F-Bryan/stringly-typed/options"
)

// DefaultOutput is the per-package filename generated accessors land in.
const DefaultOutput = "accessors_gen.go"

// Manifest describes one stringly-gen run.
type Manifest struct {
	Version  string    `yaml:"version"`
	Packages []Package `yaml:"packages"`
	KeyStyle string    `yaml:"key_style"`
	Output   string    `yaml:"output"`
}

// Package selects structs from one Go package pattern.
type Package struct {
	Pattern string       `yaml:"pattern"`
	Types   StringOrList `yaml:"types"` // empty selects every named struct in the package
}

// Default returns the manifest used when no file is given: generate for
// every named struct in the requested packages, snake keys.
func Default(patterns ...string) *Manifest {
	m := &Manifest{Version: "1"}
	for _, p := range patterns {
		m.Packages = append(m.Packages, Package{Pattern: p})
	}

	applyDefaults(m)

	return m
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return m, nil
}

// Parse parses YAML data into a Manifest and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	if m.Version != "1" {
		return nil, fmt.Errorf("unsupported manifest version %q", m.Version)
	}
	if _, err := m.Style(); err != nil {
		return nil, err
	}

	return &m, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == "" {
		m.Version = "1"
	}
	if m.Output == "" {
		m.Output = DefaultOutput
	}
}

// Style resolves the manifest's key style.
func (m *Manifest) Style() (options.KeyStyleEnum, error) {
	return options.ParseKeyStyle(m.KeyStyle)
}

// Patterns returns the package patterns to load, in manifest order.
func (m *Manifest) Patterns() []string {
	out := make([]string, len(m.Packages))
	for i, p := range m.Packages {
		out[i] = p.Pattern
	}

	return out
}

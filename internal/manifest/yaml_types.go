package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList accepts either a single YAML string or a sequence of
// strings, so `types: Probe` and `types: [Probe, Reading]` both work.
type StringOrList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrList.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrList{str}
		} else {
			*s = StringOrList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or list of strings, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrList.
// Outputs a single string if length is 1, otherwise a sequence.
func (s StringOrList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains reports whether name is in the list. An empty list selects
// everything.
func (s StringOrList) Contains(name string) bool {
	if len(s) == 0 {
		return true
	}

	for _, x := range s {
		if x == name {
			return true
		}
	}

	return false
}

package adaptive

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for NamedMap.
// Accepts either a sequence of name strings or a mapping of name to value.
func (m *NamedMap[T]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		// Terse form: ["a", "b"]
		if !CanFromName[T]() {
			var zero T
			return fmt.Errorf("cannot decode a sequence of names into %T values: %w", zero, ErrFromNameUnsupported)
		}

		decoded := make(NamedMap[T], len(node.Content))

		for i, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("sequence index %d: %w, got %s node", i, ErrSequenceElement, item.Tag)
			}

			var name string

			err := item.Decode(&name)
			if err != nil {
				return err
			}

			placeholder, _ := fromName[T](name)
			decoded[name] = placeholder
		}

		*m = decoded

		return nil

	case yaml.MappingNode:
		// Detailed form: { "a": {...}, "b": {...} }
		decoded := make(NamedMap[T], len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var name string

			err := node.Content[i].Decode(&name)
			if err != nil {
				return fmt.Errorf("invalid mapping key: %w", err)
			}

			var item T

			err = node.Content[i+1].Decode(&item)
			if err != nil {
				return fmt.Errorf("value for %q: %w", name, err)
			}

			decoded[name] = item
		}

		*m = decoded

		return nil

	default:
		return fmt.Errorf("%w, got YAML node kind %v", ErrShape, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for NamedMap.
// Output is always a mapping, never a sequence.
func (m NamedMap[T]) MarshalYAML() (any, error) {
	return map[string]T(m), nil
}

// FromYAMLString parses a NamedMap from a YAML string, accepting both input
// shapes.
func FromYAMLString[T any](s string) (NamedMap[T], error) {
	var m NamedMap[T]
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}

	return m, nil
}

// ToYAMLString serializes the map to a YAML string in canonical (mapping)
// form.
func ToYAMLString[T any](m NamedMap[T]) (string, error) {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

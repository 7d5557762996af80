package value

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses YAML bytes into a Value.
func FromYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}

	return v, nil
}

// ToYAML serializes a Value to YAML.
func ToYAML(v Value) ([]byte, error) {
	return yaml.Marshal(v)
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.ToGo(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler by dispatching on the node kind.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return v.unmarshalScalar(node)

	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))

		for i, itemNode := range node.Content {
			var item Value

			err := itemNode.Decode(&item)
			if err != nil {
				return fmt.Errorf("sequence index %d: %w", i, err)
			}

			items = append(items, item)
		}

		*v = Sequence(items...)

		return nil

	case yaml.MappingNode:
		entries := make(map[string]Value, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string

			err := node.Content[i].Decode(&key)
			if err != nil {
				return fmt.Errorf("invalid mapping key: %w", err)
			}

			var entry Value

			err = node.Content[i+1].Decode(&entry)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}

			entries[key] = entry
		}

		*v = Mapping(entries)

		return nil

	default:
		return fmt.Errorf("unsupported YAML node kind %v", node.Kind)
	}
}

// unmarshalScalar converts a scalar node using its resolved tag.
func (v *Value) unmarshalScalar(node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		*v = Null()
		return nil

	case "!!bool":
		var b bool

		err := node.Decode(&b)
		if err != nil {
			return err
		}

		*v = Bool(b)

		return nil

	case "!!int":
		var i int64

		err := node.Decode(&i)
		if err != nil {
			return err
		}

		converted, err := intNumber(i)
		if err != nil {
			return err
		}

		*v = converted

		return nil

	case "!!float":
		var f float64

		err := node.Decode(&f)
		if err != nil {
			return err
		}

		*v = Number(f)

		return nil

	default:
		// !!str and anything custom decodes as a plain string.
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		*v = Str(s)

		return nil
	}
}

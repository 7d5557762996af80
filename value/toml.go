package value

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// FromTOML parses a TOML document into a Value. A TOML document is a table
// at the top level, so the result always has KindMapping.
func FromTOML(data []byte) (Value, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return Value{}, err
	}

	return FromGo(tree)
}

// ToTOML serializes a mapping Value to a TOML document. Values of any other
// kind cannot stand alone as a TOML document and are rejected.
func ToTOML(v Value) ([]byte, error) {
	if v.Kind() != KindMapping {
		return nil, fmt.Errorf("a TOML document must be a mapping, got %s", v.Kind())
	}

	return toml.Marshal(v.ToGo())
}

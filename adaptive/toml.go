package adaptive

import (
	"github.com/pelletier/go-toml/v2"

	"flexicon/value"
)

// FromTOMLString parses a NamedMap from a TOML document. A TOML document is
// a table at the top level, so a standalone document is always the detailed
// mapping form; the terse sequence form occurs only when the map is embedded
// in a host document (`capabilities = ["a", "b"]`), in which case the host
// decodes that field into a generic value and calls Decode.
func FromTOMLString[T any](s string) (NamedMap[T], error) {
	v, err := value.FromTOML([]byte(s))
	if err != nil {
		return nil, err
	}

	return Decode[T](v)
}

// ToTOMLString serializes the map to a TOML document in canonical (table)
// form.
func ToTOMLString[T any](m NamedMap[T]) (string, error) {
	raw, err := toml.Marshal(map[string]T(m))
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

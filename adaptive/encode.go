package adaptive

import (
	"encoding/json"
	"fmt"

	"flexicon/value"
)

// Encode converts the map to a generic structured value. The result is
// always the mapping shape, never the sequence shape, even if the map was
// decoded from a sequence of names. Round-tripped configuration therefore
// always ends up in its explicit, inspectable form.
func Encode[T any](m NamedMap[T]) (value.Value, error) {
	entries := make(map[string]value.Value, len(m))

	for name, item := range m {
		encoded, err := encodeElement(item)
		if err != nil {
			return value.Value{}, fmt.Errorf("value for %q: %w", name, err)
		}

		entries[name] = encoded
	}

	return value.Mapping(entries), nil
}

// encodeElement encodes one element through the JSON bridge, mirroring
// decodeElement.
func encodeElement[T any](item T) (value.Value, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return value.Value{}, err
	}

	return value.FromJSON(raw)
}

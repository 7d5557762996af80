package adaptive

import (
	"encoding/json"
	"fmt"

	"flexicon/value"
)

// Decode builds a NamedMap from a generic structured value, accepting either
// input shape:
//
//   - A sequence: every element must be a string, and T must implement
//     FromNamer; each name maps to its FromName placeholder.
//   - A mapping: every entry value is decoded into T by its structural rules
//     (the element type's json tags).
//
// Any other shape fails with ErrShape. Decoding is all-or-nothing: on any
// failure no map is returned.
func Decode[T any](v value.Value) (NamedMap[T], error) {
	if items, ok := v.Items(); ok {
		return decodeSequence[T](items)
	}

	if entries, ok := v.Entries(); ok {
		return decodeMapping[T](entries)
	}

	return nil, fmt.Errorf("%w, got %s", ErrShape, v.Kind())
}

func decodeSequence[T any](items []value.Value) (NamedMap[T], error) {
	if !CanFromName[T]() {
		var zero T
		return nil, fmt.Errorf("cannot decode a sequence of names into %T values: %w", zero, ErrFromNameUnsupported)
	}

	m := make(NamedMap[T], len(items))

	for i, item := range items {
		name, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("sequence index %d: %w, got %s", i, ErrSequenceElement, item.Kind())
		}

		placeholder, _ := fromName[T](name)
		m[name] = placeholder
	}

	return m, nil
}

func decodeMapping[T any](entries map[string]value.Value) (NamedMap[T], error) {
	m := make(NamedMap[T], len(entries))

	for name, entry := range entries {
		decoded, err := decodeElement[T](entry)
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", name, err)
		}

		m[name] = decoded
	}

	return m, nil
}

// decodeElement decodes one detailed value into T through the JSON bridge:
// the element type's structural shape is whatever its json tags define.
func decodeElement[T any](v value.Value) (T, error) {
	var decoded T

	raw, err := value.ToJSON(v)
	if err != nil {
		return decoded, err
	}

	if err := json.Unmarshal(raw, &decoded); err != nil {
		return decoded, err
	}

	return decoded, nil
}

package adaptive

import (
	"encoding/json"

	"flexicon/value"
)

// MarshalJSON implements json.Marshaler. Output is always a JSON object,
// never an array.
func (m NamedMap[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]T(m))
}

// UnmarshalJSON implements json.Unmarshaler, accepting either an array of
// name strings or an object of name to value.
func (m *NamedMap[T]) UnmarshalJSON(data []byte) error {
	v, err := value.FromJSON(data)
	if err != nil {
		return err
	}

	decoded, err := Decode[T](v)
	if err != nil {
		return err
	}

	*m = decoded

	return nil
}

// FromJSONString parses a NamedMap from a JSON string, accepting both input
// shapes. Useful for config loading or API parsing.
func FromJSONString[T any](s string) (NamedMap[T], error) {
	var m NamedMap[T]
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}

	return m, nil
}

// ToJSONString serializes the map to a compact JSON string in canonical
// (object) form.
func ToJSONString[T any](m NamedMap[T]) (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

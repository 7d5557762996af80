package value

import "encoding/json"

// FromJSON parses JSON bytes into a Value.
func FromJSON(data []byte) (Value, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return Value{}, err
	}

	return FromGo(tree)
}

// ToJSON serializes a Value to compact JSON. Mapping keys are emitted in
// sorted order (encoding/json behavior), so output is deterministic.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(v.ToGo())
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return ToJSON(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

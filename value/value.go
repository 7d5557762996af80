package value

import (
	"fmt"
	"time"

	"flexicon/utils"
)

// maxExactInt is the largest integer magnitude a float64 can hold exactly.
const maxExactInt = int64(1) << 53

// Value is a generic structured value: the parsed, format-agnostic tree that
// any text format (JSON, YAML, TOML, ...) is normalized to. It is a closed
// variant over six kinds; inspect with Kind and the As*/Items/Entries
// accessors, build with the Null/Bool/Number/Str/Sequence/Mapping constructors.
//
// The zero Value has an invalid kind and should not be handed to consumers;
// constructors never produce it.
type Value struct {
	kind KindEnum

	boolVal bool
	numVal  float64
	strVal  string
	seq     []Value
	mapping map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, numVal: f}
}

// Str returns a string value.
func Str(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// Sequence returns a sequence value holding the given items in order.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Mapping returns a mapping value holding the given entries.
// The entries map is used as-is, not copied.
func Mapping(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}

	return Value{kind: KindMapping, mapping: entries}
}

// Kind returns the structural kind of the value.
func (v Value) Kind() KindEnum {
	return v.kind
}

// IsNull returns true if the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload and true, or false if the value is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.boolVal, v.kind == KindBool
}

// AsNumber returns the numeric payload and true, or false if the value is not a number.
func (v Value) AsNumber() (float64, bool) {
	return v.numVal, v.kind == KindNumber
}

// AsString returns the string payload and true, or false if the value is not a string.
func (v Value) AsString() (string, bool) {
	return v.strVal, v.kind == KindString
}

// Items returns the sequence items and true, or false if the value is not a sequence.
func (v Value) Items() ([]Value, bool) {
	return v.seq, v.kind == KindSequence
}

// Entries returns the mapping entries and true, or false if the value is not a mapping.
func (v Value) Entries() (map[string]Value, bool) {
	return v.mapping, v.kind == KindMapping
}

// FromGo converts a plain Go value tree (the shape produced by unmarshaling
// into `any` with encoding/json, yaml.v3, or go-toml) into a Value.
//
// Supported inputs: nil, bool, string, the builtin integer and float types,
// time.Time (converted to an RFC 3339 string), []any, map[string]any, and
// Value itself (returned unchanged). Integers that cannot be represented
// exactly in a float64 are rejected rather than silently rounded.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil

	case Value:
		return x, nil

	case bool:
		return Bool(x), nil

	case string:
		return Str(x), nil

	case float64:
		return Number(x), nil

	case float32:
		return Number(float64(x)), nil

	case int:
		return intNumber(int64(x))
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return intNumber(x)

	case uint:
		return uintNumber(uint64(x))
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return uintNumber(x)

	case time.Time:
		return Str(x.Format(time.RFC3339)), nil

	case []any:
		items := make([]Value, 0, len(x))

		for i, item := range x {
			converted, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("sequence index %d: %w", i, err)
			}

			items = append(items, converted)
		}

		return Sequence(items...), nil

	case map[string]any:
		entries := make(map[string]Value, len(x))

		for k, item := range x {
			converted, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}

			entries[k] = converted
		}

		return Mapping(entries), nil

	default:
		return Value{}, fmt.Errorf("cannot represent Go value of type %T", v)
	}
}

// ToGo converts the value back to a plain Go tree: nil, bool, float64,
// string, []any, or map[string]any. It is the inverse of FromGo up to
// numeric widening.
func (v Value) ToGo() any {
	switch v.kind {
	case KindBool:
		return v.boolVal

	case KindNumber:
		return v.numVal

	case KindString:
		return v.strVal

	case KindSequence:
		items := make([]any, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.ToGo()
		}

		return items

	case KindMapping:
		entries := make(map[string]any, len(v.mapping))
		for k, item := range v.mapping {
			entries[k] = item.ToGo()
		}

		return entries

	default:
		return nil
	}
}

func intNumber(i int64) (Value, error) {
	if !utils.IsInRange(-maxExactInt, i, maxExactInt) {
		return Value{}, fmt.Errorf("integer %d cannot be represented exactly as a number", i)
	}

	return Number(float64(i)), nil
}

func uintNumber(u uint64) (Value, error) {
	if !utils.IsInRange(0, u, uint64(maxExactInt)) {
		return Value{}, fmt.Errorf("integer %d cannot be represented exactly as a number", u)
	}

	return Number(float64(u)), nil
}

package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexicon/value"
)

// capability is the test element type for the terse decode path.
type capability struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Version  string `json:"version" yaml:"version" toml:"version"`
	Optional bool   `json:"optional" yaml:"optional" toml:"optional"`
}

func (capability) FromName(name string) capability {
	return capability{Name: name, Version: "latest"}
}

// plainItem has no FromName, so only the detailed mapping form applies.
type plainItem struct {
	Level int `json:"level" yaml:"level" toml:"level"`
}

func TestDecodeSequence(t *testing.T) {
	v := value.Sequence(value.Str("logger"), value.Str("http"))

	m, err := Decode[capability](v)
	require.NoError(t, err)

	require.Len(t, m, 2)
	assert.Equal(t, capability{Name: "logger", Version: "latest"}, m["logger"])
	assert.Equal(t, capability{Name: "http", Version: "latest"}, m["http"])
}

func TestDecodeMapping(t *testing.T) {
	v := value.Mapping(map[string]value.Value{
		"logger": value.Mapping(map[string]value.Value{
			"name":     value.Str("logger"),
			"version":  value.Str("1.0"),
			"optional": value.Bool(true),
		}),
	})

	m, err := Decode[capability](v)
	require.NoError(t, err)

	assert.Equal(t, capability{Name: "logger", Version: "1.0", Optional: true}, m["logger"])
}

func TestDecodeShapeError(t *testing.T) {
	for _, v := range []value.Value{value.Number(42), value.Str("logger"), value.Bool(true), value.Null()} {
		_, err := Decode[capability](v)
		require.ErrorIs(t, err, ErrShape)
	}
}

func TestDecodeSequenceElementError(t *testing.T) {
	v := value.Sequence(value.Str("logger"), value.Number(5))

	_, err := Decode[capability](v)
	require.ErrorIs(t, err, ErrSequenceElement)
	assert.ErrorContains(t, err, "index 1")
}

func TestDecodeSequenceCapabilityError(t *testing.T) {
	v := value.Sequence(value.Str("logger"))

	_, err := Decode[plainItem](v)
	require.ErrorIs(t, err, ErrFromNameUnsupported)

	// The mapping form still works for the same type.
	m, err := Decode[plainItem](value.Mapping(map[string]value.Value{
		"logger": value.Mapping(map[string]value.Value{"level": value.Number(3)}),
	}))
	require.NoError(t, err)
	assert.Equal(t, plainItem{Level: 3}, m["logger"])
}

func TestDecodeMappingValueError(t *testing.T) {
	v := value.Mapping(map[string]value.Value{
		"logger": value.Mapping(map[string]value.Value{
			"version": value.Sequence(value.Number(1)),
		}),
	})

	_, err := Decode[capability](v)
	require.Error(t, err)
	assert.ErrorContains(t, err, `"logger"`)
}

func TestDecodeEmpty(t *testing.T) {
	m, err := Decode[capability](value.Sequence())
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.IsEmpty())

	m, err = Decode[capability](value.Mapping(nil))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.IsEmpty())
}

func TestEncodeAlwaysMapping(t *testing.T) {
	m := FromNames[capability]("a", "b")

	v, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, value.KindMapping, v.Kind())

	entries, ok := v.Entries()
	require.True(t, ok)
	require.Len(t, entries, 2)

	name, ok := entries["a"].Entries()
	require.True(t, ok)

	got, ok := name["version"].AsString()
	require.True(t, ok)
	assert.Equal(t, "latest", got)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := New[capability]()
	original.Insert("handler", capability{Name: "handler", Version: "0.2", Optional: true})
	original.Insert("logger", capability{Name: "logger", Version: "1.0"})

	v, err := Encode(original)
	require.NoError(t, err)

	restored, err := Decode[capability](v)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

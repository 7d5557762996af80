package adaptive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSequenceForm(t *testing.T) {
	m, err := FromJSONString[capability](`["logger", "http"]`)
	require.NoError(t, err)

	require.Len(t, m, 2)
	assert.Equal(t, capability{Name: "logger", Version: "latest"}, m["logger"])
}

func TestJSONMappingForm(t *testing.T) {
	m, err := FromJSONString[capability](`{
		"logger": {"name": "logger", "version": "1.0"},
		"http":   {"name": "http", "version": "0.2", "optional": true}
	}`)
	require.NoError(t, err)

	require.Len(t, m, 2)
	assert.Equal(t, capability{Name: "logger", Version: "1.0"}, m["logger"])
	assert.Equal(t, capability{Name: "http", Version: "0.2", Optional: true}, m["http"])
}

func TestJSONRoundTripSequence(t *testing.T) {
	original, err := FromJSONString[capability](`["a", "b"]`)
	require.NoError(t, err)

	out, err := ToJSONString(original)
	require.NoError(t, err)

	// Canonical output: always the object form, never the array form.
	assert.True(t, strings.HasPrefix(out, "{"), "expected object output, got %s", out)

	restored, err := FromJSONString[capability](out)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestJSONRoundTripMapping(t *testing.T) {
	original := New[capability]()
	original.Insert("handler", capability{Name: "handler", Version: "0.2", Optional: true})

	out, err := ToJSONString(original)
	require.NoError(t, err)

	restored, err := FromJSONString[capability](out)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestJSONTerseUpgradeStaysLossless(t *testing.T) {
	// A name decoded from the terse form, upgraded by hand, must round-trip
	// through the canonical mapping form without loss.
	m, err := FromJSONString[capability](`["logger"]`)
	require.NoError(t, err)

	edited := m["logger"]
	edited.Version = "3.1"
	m.Insert("logger", edited)

	out, err := ToJSONString(m)
	require.NoError(t, err)

	restored, err := FromJSONString[capability](out)
	require.NoError(t, err)
	assert.Equal(t, m, restored)
}

func TestJSONInvalidShapes(t *testing.T) {
	for _, input := range []string{`42`, `"logger"`, `true`, `null`} {
		_, err := FromJSONString[capability](input)
		require.ErrorIs(t, err, ErrShape, "input %s", input)
	}
}

func TestJSONMixedSequence(t *testing.T) {
	_, err := FromJSONString[capability](`["a", 5]`)
	require.ErrorIs(t, err, ErrSequenceElement)
}

func TestJSONSequenceWithoutFromName(t *testing.T) {
	_, err := FromJSONString[plainItem](`["a", "b"]`)
	require.ErrorIs(t, err, ErrFromNameUnsupported)

	m, err := FromJSONString[plainItem](`{"a": {"level": 2}}`)
	require.NoError(t, err)
	assert.Equal(t, plainItem{Level: 2}, m["a"])
}

func TestJSONEmptyInputs(t *testing.T) {
	m, err := FromJSONString[capability](`[]`)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	m, err = FromJSONString[capability](`{}`)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestJSONMalformedInput(t *testing.T) {
	_, err := FromJSONString[capability](`{"logger":`)
	require.Error(t, err)
}

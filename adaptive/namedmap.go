package adaptive

import "sort"

// NamedMap is a map of named items that supports adaptive decoding:
//
//   - Terse form: ["a", "b"] — each name becomes a placeholder value built
//     with FromName.
//   - Detailed form: { "a": {...}, "b": {...} } — full structured values are
//     decoded as-is.
//
// Either form decodes to the same in-memory map, and encoding always emits
// the detailed (mapping) form, so regenerated configuration is self-documenting
// regardless of how it was first written.
//
// NamedMap is a defined map type: indexing, range, len, and delete all work
// directly on it.
type NamedMap[T any] map[string]T

// New creates an empty NamedMap.
func New[T any]() NamedMap[T] {
	return make(NamedMap[T])
}

// Insert associates value with name, returning the displaced prior value and
// true if one was present.
func (m NamedMap[T]) Insert(name string, value T) (prior T, replaced bool) {
	prior, replaced = m[name]
	m[name] = value

	return prior, replaced
}

// IsEmpty returns true if the map contains no entries.
func (m NamedMap[T]) IsEmpty() bool {
	return len(m) == 0
}

// Names returns all names in sorted order. Map iteration order is incidental;
// use Names when a caller needs deterministic traversal.
func (m NamedMap[T]) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Inner returns the map as its plain map type.
//
// The result shares the backing store with the NamedMap, so mutation through
// it bypasses anything the named methods might enforce later (key
// normalization, validation). That is an accepted trust boundary; prefer
// Insert when possible.
func (m NamedMap[T]) Inner() map[string]T {
	return map[string]T(m)
}

// FromNames builds a NamedMap where every name maps to its FromName
// placeholder. The element type must implement FromNamer; a type that does
// not is rejected at compile time.
func FromNames[T FromNamer[T]](names ...string) NamedMap[T] {
	m := make(NamedMap[T], len(names))

	var zero T
	for _, name := range names {
		m[name] = zero.FromName(name)
	}

	return m
}

package adaptive

// FromNamer is implemented by element types that can construct a meaningful
// placeholder value from a bare name. It is what makes the terse sequence
// form (["a", "b"]) decodable: each name is turned into a value via FromName.
//
// FromName must be total: it must return some value for every possible name,
// malformed ones included (use an explicit "unknown" placeholder rather than
// failing). Validation belongs to a higher layer with more context.
//
// The method is called on the zero value of T, so it must not depend on
// receiver state:
//
//	type Capability struct {
//		Name    string `json:"name" yaml:"name"`
//		Version string `json:"version" yaml:"version"`
//	}
//
//	func (Capability) FromName(name string) Capability {
//		return Capability{Name: name, Version: "latest"}
//	}
type FromNamer[T any] interface {
	FromName(name string) T
}

// CanFromName reports whether T implements FromNamer. Decoding the sequence
// form requires it; the detailed mapping form does not.
func CanFromName[T any]() bool {
	var zero T

	_, ok := any(zero).(FromNamer[T])

	return ok
}

// fromName builds the placeholder value for name, or returns false if T does
// not implement FromNamer.
func fromName[T any](name string) (T, bool) {
	var zero T

	fn, ok := any(zero).(FromNamer[T])
	if !ok {
		return zero, false
	}

	return fn.FromName(name), true
}

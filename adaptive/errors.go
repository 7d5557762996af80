package adaptive

import "errors"

var (
	// ErrShape reports a top-level input that is neither a sequence of name
	// strings nor a mapping of name to value.
	ErrShape = errors.New("expected a mapping of name to value or a sequence of name strings")

	// ErrSequenceElement reports a sequence element that is not a plain string.
	ErrSequenceElement = errors.New("sequence elements must be plain strings")

	// ErrFromNameUnsupported reports the sequence form supplied for an element
	// type that does not implement FromNamer.
	ErrFromNameUnsupported = errors.New("element type does not support construction from a name")
)

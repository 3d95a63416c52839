package value

import "errors"

// Sentinel errors returned by decoding and encoding.
var (
	// ErrDecode is returned by [Decode] when the input is not a well-formed
	// JSON or YAML document.
	ErrDecode = errors.New("value: cannot decode document")

	// ErrUnencodable is returned by [MarshalJSON] for a top-level Undefined
	// or an Opaque value whose referent has no JSON form.
	ErrUnencodable = errors.New("value: value has no JSON representation")
)

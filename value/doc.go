// Package value defines a closed, tagged representation of dynamically shaped
// data: the kind of values produced by parsing JSON or YAML.
//
// # Variants
//
// Every [Value] is exactly one of:
//
//	value.Undefined{}          // absence marker
//	value.Null{}               // explicit null
//	value.Bool(true)
//	value.Number(3.5)          // float64, NaN allowed
//	value.String("hello")
//	*value.Instant             // a point in time, compared by epoch millis
//	*value.Sequence            // ordered list of Values
//	*value.Mapping             // insertion-ordered, string-keyed Values
//	*value.Opaque              // any other Go value, compared by reference
//
// The interface is sealed, so a type switch over these nine cases is
// exhaustive.
//
// # Strict equality
//
// Go's == on two Values is the package's notion of strict equality.
// Primitives compare by value (NaN is never equal to itself), the pointer
// variants compare by reference. Every variant is comparable, so == never
// panics.
//
// # Building values
//
//	doc := value.NewMapping(
//	    value.Entry{Key: "name", Value: value.String("Alice")},
//	    value.Entry{Key: "tags", Value: value.NewSequence(value.String("a"), value.String("b"))},
//	)
//
//	v, err := value.From(map[string]any{"n": 1})
//	v, err := value.Decode([]byte(`{"b": 1, "a": [true, null]}`))
//
// [Decode] keeps mapping keys in document order, which [From] cannot do for
// Go maps.
//
// # Thread safety
//
// Values are plain data. Concurrent reads are safe; mutation through
// [Mapping.Set] or [Sequence.Append] must not race with readers.
package value

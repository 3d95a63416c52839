package value

import (
	"maps"
	"slices"
	"time"
)

// From converts plain Go data into a Value:
//
//	nil                      → Null
//	bool                     → Bool
//	ints, uints, floats      → Number
//	string                   → String
//	time.Time                → *Instant
//	[]any, []Value           → *Sequence
//	map[string]any           → *Mapping (keys sorted)
//	Value                    → Normalize(v)
//	anything else            → *Opaque
//
// Go maps carry no order, so their keys are sorted to keep the result
// deterministic; use [Decode] when document order matters.
func From(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null{}
	case Value:
		return Normalize(v)
	case bool:
		return Bool(v)
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	case time.Time:
		return NewInstant(v)
	case []Value:
		return NewSequence(v...)
	case []any:
		seq := &Sequence{items: make([]Value, 0, len(v))}
		for _, item := range v {
			seq.items = append(seq.items, From(item))
		}
		return seq
	case map[string]any:
		m := NewMapping()
		for _, k := range slices.Sorted(maps.Keys(v)) {
			m.Set(k, From(v[k]))
		}
		return m
	}
	return NewOpaque(x)
}

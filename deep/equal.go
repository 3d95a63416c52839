package deep

import "github.com/hasbyte1/go-value-utils/value"

// Equal reports whether a and b are structurally equivalent. The first
// matching rule decides:
//
//  1. a == b (same scalar, or the same reference) is equal.
//  2. Two Instants are equal when their epoch milliseconds match.
//  3. If either side is falsy, or neither is a Mapping or Sequence, the
//     strict comparison from rule 1 stands.
//  4. A container never equals a value of another kind.
//  5. Containers of different lengths are unequal.
//  6. Every key of a must read as an Equal value in b, where a key missing
//     from b reads as Undefined.
//
// A nil Value is treated as Undefined.
func Equal(a, b value.Value) bool {
	a, b = value.Normalize(a), value.Normalize(b)
	if a == b {
		return true
	}
	if ia, ok := a.(*value.Instant); ok {
		if ib, ok := b.(*value.Instant); ok {
			return ia.Epoch() == ib.Epoch()
		}
	}
	if !value.Truthy(a) || !value.Truthy(b) {
		return false
	}

	switch x := a.(type) {
	case *value.Mapping:
		y, ok := b.(*value.Mapping)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for k, v := range x.All() {
			if !Equal(v, y.Get(k)) {
				return false
			}
		}
		return true
	case *value.Sequence:
		y, ok := b.(*value.Sequence)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, v := range x.All() {
			if !Equal(v, y.At(i)) {
				return false
			}
		}
		return true
	}
	// a is a scalar: either b is a scalar too and strict equality already
	// failed, or the shapes differ.
	return false
}

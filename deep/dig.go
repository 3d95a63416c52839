package deep

import "github.com/hasbyte1/go-value-utils/value"

// Dig searches root for key. An own key of root wins, even when it holds
// Undefined. Otherwise Dig walks root's values in insertion order and
// descends into every Mapping or Sequence it meets, returning the first
// result that is not Undefined. Sequences are searched as mappings keyed
// "0", "1", ... so Dig(root, "0") can match a sequence element.
//
// Dig returns Undefined when nothing matches or root is nil.
//
//	root: {a: {b: {target: 5}}, target: 1}
//	Dig(root, "target") → 1
//
//	root: {a: {target: 5}, b: {target: 9}}
//	Dig(root, "target") → 5
func Dig(root *value.Mapping, key string) value.Value {
	if root == nil {
		return value.Undefined{}
	}
	return dig(root, key)
}

func dig(c container, key string) value.Value {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	for v := range c.Values() {
		sub, ok := asContainer(v)
		if !ok {
			continue
		}
		if found := dig(sub, key); !value.IsUndefined(found) {
			return found
		}
	}
	return value.Undefined{}
}

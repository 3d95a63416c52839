package deep

import (
	"strings"

	"github.com/hasbyte1/go-value-utils/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for nested Mappings and Sequences
//
// A path is a list of segments joined with "." where each segment names a
// Mapping key or a canonical Sequence index:
//
//	root: {servers: [{host: "a"}, {host: "b"}], tls: {on: true}}
//
//	Get(root, "servers.1.host") → "b"
//	Has(root, "tls.on")         → true
//	Set(root, "tls.cert", "x.pem")
//	Forget(root, "tls")
//
// Keys that themselves contain "." cannot be addressed.
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens root into a single-level Mapping keyed by dot paths. Nested
// Sequences are flattened by index. Empty containers are kept as leaves.
//
//	Dot({a: {b: 1}, c: [2, 3]})
//	// → {"a.b": 1, "c.0": 2, "c.1": 3}
func Dot(root *value.Mapping) *value.Mapping {
	out := value.NewMapping()
	if root != nil {
		dotFlatten("", root, out)
	}
	return out
}

func dotFlatten(prefix string, c container, out *value.Mapping) {
	for k, v := range entries(c) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asContainer(v); ok && nested.Len() > 0 {
			dotFlatten(key, nested, out)
			continue
		}
		out.Set(key, v)
	}
}

// Undot expands a flat dot-path Mapping into nested Mappings. Index
// segments become Mapping keys; Undot never builds Sequences.
//
//	Undot({"a.b": 1, "a.c": 2})
//	// → {a: {b: 1, c: 2}}
func Undot(flat *value.Mapping) *value.Mapping {
	out := value.NewMapping()
	if flat == nil {
		return out
	}
	for k, v := range flat.All() {
		Set(out, k, v)
	}
	return out
}

// Get returns the value at path, or def[0] (Undefined without a default)
// when path does not resolve. A path that resolves to a stored Undefined
// returns that Undefined, not the default.
//
//	Get(root, "user.address.city")
//	Get(root, "user.missing", value.String("n/a"))
func Get(root value.Value, path string, def ...value.Value) value.Value {
	if v, ok := lookup(root, path); ok {
		return v
	}
	if len(def) > 0 {
		return value.Normalize(def[0])
	}
	return value.Undefined{}
}

func lookup(root value.Value, path string) (value.Value, bool) {
	cur := value.Normalize(root)
	for _, seg := range strings.Split(path, ".") {
		c, ok := asContainer(cur)
		if !ok {
			return value.Undefined{}, false
		}
		if cur, ok = c.Lookup(seg); !ok {
			return value.Undefined{}, false
		}
	}
	return cur, true
}

// Set writes v at path, creating intermediate Mappings as needed. An
// intermediate segment that holds anything other than a Mapping, a Sequence
// included, is replaced by a new Mapping. A nil root is left alone.
//
//	Set(root, "user.address.postcode", value.String("EC1"))
func Set(root *value.Mapping, path string, v value.Value) {
	if root == nil {
		return
	}
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		root.Set(path, v)
		return
	}
	next, ok := root.Get(seg).(*value.Mapping)
	if !ok {
		next = value.NewMapping()
		root.Set(seg, next)
	}
	Set(next, rest, v)
}

// Has reports whether path resolves in root.
func Has(root value.Value, path string) bool {
	_, ok := lookup(root, path)
	return ok
}

// HasAll reports whether every path resolves in root.
func HasAll(root value.Value, paths ...string) bool {
	for _, p := range paths {
		if !Has(root, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves in root.
func HasAny(root value.Value, paths ...string) bool {
	for _, p := range paths {
		if Has(root, p) {
			return true
		}
	}
	return false
}

// Forget removes the Mapping key at path and reports whether it was
// present. Intermediate Mappings are not cleaned up, and Sequence elements
// cannot be removed.
func Forget(root *value.Mapping, path string) bool {
	if root == nil {
		return false
	}
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return root.Delete(path)
	}
	parent, ok := Get(root, path[:i]).(*value.Mapping)
	if !ok {
		return false
	}
	return parent.Delete(path[i+1:])
}

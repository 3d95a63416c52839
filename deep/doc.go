// Package deep compares, searches and addresses nested [value.Value] trees.
//
// # Equality
//
// [Equal] decides structural equivalence. Identical values are equal, two
// Instants are equal when their epoch offsets match, and two Mappings (or two
// Sequences) are equal when they have the same number of keys and every key
// of the first reads as an equal value in the second:
//
//	deep.Equal(a, b) // {a: 1, b: [2, 3]} vs {a: 1, b: [2, 3]} → true
//
// Comparison is driven by the first operand's keys. Equal is therefore not
// symmetric when the first operand holds Undefined members: {x: undefined,
// y: 1} equals {y: 1, z: 2} but not the other way round. NaN is never equal
// to anything, itself included.
//
// # Search
//
// [Dig] returns the value of the first key with a given name, looking at the
// root's own keys first and then depth-first through nested containers in
// insertion order.
//
// # Dot paths
//
// [Get], [Set], [Has], [Forget], [Dot] and [Undot] address nested Mappings
// and Sequences with dot-separated paths such as "servers.0.host".
//
// # Fingerprints
//
// [Fingerprint] digests a value with blake2b-256 independently of mapping
// key order.
//
// None of these functions detect cycles. A self-referential value makes
// them recurse until the stack is exhausted.
package deep

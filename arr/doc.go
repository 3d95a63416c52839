// Package arr provides generic helpers that classify the elements of plain
// Go slices as unique or repeated and compare slices as sets.
//
// Every helper works on []T with T comparable and decides sameness with ==,
// never with structural equality:
//
//	arr.FilterUnique([]int{1, 2, 2, 3, 3, 3, 4})    // → [1 4]
//	arr.FilterNonUnique([]int{1, 2, 2, 3, 3, 3, 4}) // → [2 3]
//	arr.Difference([]int{1, 2, 3}, []int{2})        // → [1 3]
//	arr.HasDuplicates([]int{1, 2, 2})               // → true
//
// Occurrences are counted in a single pass over a swiss-table hash map, so
// each helper runs in linear time. Slices of [value.Value] work as well;
// Mappings and Sequences then compare by reference.
//
// An element that is not equal to itself, such as a NaN float, is never the
// same as any other element: each occurrence counts as unique and is never
// found in the second slice of [Difference].
//
// [value.Value]: https://pkg.go.dev/github.com/hasbyte1/go-value-utils/value#Value
package arr

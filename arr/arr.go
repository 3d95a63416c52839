package arr

import "github.com/dolthub/swiss"

// All helpers in this file compare elements with ==. An element that is not
// equal to itself (a NaN float, or an interface holding one) never matches
// anything: every occurrence counts as unique, none is a duplicate, and it
// is never found in another slice.

// selfUnequal reports whether item != item.
func selfUnequal[T comparable](item T) bool {
	return item != item
}

// occurrences counts how often each element occurs in items. Self-unequal
// elements are not counted.
func occurrences[T comparable](items []T) *swiss.Map[T, int] {
	counts := swiss.NewMap[T, int](uint32(len(items)))
	for _, item := range items {
		if selfUnequal(item) {
			continue
		}
		n, _ := counts.Get(item)
		counts.Put(item, n+1)
	}
	return counts
}

// set indexes the elements of items for membership tests.
func set[T comparable](items []T) *swiss.Map[T, struct{}] {
	s := swiss.NewMap[T, struct{}](uint32(len(items)))
	for _, item := range items {
		if !selfUnequal(item) {
			s.Put(item, struct{}{})
		}
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// FilterUnique returns the elements that occur exactly once in items, in
// their original order.
//
//	FilterUnique([]int{1, 2, 2, 3, 3, 3, 4}) // → [1 4]
func FilterUnique[T comparable](items []T) []T {
	counts := occurrences(items)
	out := make([]T, 0)
	for _, item := range items {
		if selfUnequal(item) {
			out = append(out, item)
			continue
		}
		if n, _ := counts.Get(item); n == 1 {
			out = append(out, item)
		}
	}
	return out
}

// FilterNonUnique returns one copy of every element that occurs more than
// once in items, in order of first occurrence.
//
//	FilterNonUnique([]int{1, 2, 2, 3, 3, 3, 4}) // → [2 3]
func FilterNonUnique[T comparable](items []T) []T {
	counts := occurrences(items)
	out := make([]T, 0)
	for _, item := range items {
		if selfUnequal(item) {
			continue
		}
		if n, _ := counts.Get(item); n > 1 {
			out = append(out, item)
			// emitted; later occurrences are skipped
			counts.Put(item, 0)
		}
	}
	return out
}

// HasDuplicates reports whether any element occurs more than once.
func HasDuplicates[T comparable](items []T) bool {
	seen := swiss.NewMap[T, struct{}](uint32(len(items)))
	for _, item := range items {
		if selfUnequal(item) {
			continue
		}
		if seen.Has(item) {
			return true
		}
		seen.Put(item, struct{}{})
	}
	return false
}

// AllUnique reports whether no element occurs more than once. It is always
// the negation of [HasDuplicates].
func AllUnique[T comparable](items []T) bool {
	return !HasDuplicates(items)
}

// Unique returns items with repeated elements removed, keeping each first
// occurrence.
//
//	Unique([]string{"a", "b", "a"}) // → [a b]
func Unique[T comparable](items []T) []T {
	seen := swiss.NewMap[T, struct{}](uint32(len(items)))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if selfUnequal(item) {
			out = append(out, item)
			continue
		}
		if !seen.Has(item) {
			seen.Put(item, struct{}{})
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns elements with duplicates removed using a key function.
// The first element for each key is kept.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := swiss.NewMap[K, struct{}](uint32(len(items)))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if selfUnequal(k) {
			out = append(out, item)
			continue
		}
		if !seen.Has(k) {
			seen.Put(k, struct{}{})
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Difference returns the elements of a that do not occur in b. It filters
// a, so repeated elements of a are kept and a's order is preserved.
//
//	Difference([]int{1, 2, 3, 1}, []int{2}) // → [1 3 1]
func Difference[T comparable](a, b []T) []T {
	exclude := set(b)
	out := make([]T, 0)
	for _, item := range a {
		if !exclude.Has(item) {
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns the elements of a that also occur in b, in a's order.
func Intersect[T comparable](a, b []T) []T {
	include := set(b)
	out := make([]T, 0)
	for _, item := range a {
		if include.Has(item) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Number is any integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Accumulate returns the running totals of nums. A total that is NaN does
// not carry over: the next total starts again from zero.
//
//	Accumulate(1, 2, 3, 4)       // → [1 3 6 10]
//	Accumulate(math.NaN(), 1, 2) // → [NaN 1 3]
func Accumulate[T Number](nums ...T) []T {
	out := make([]T, len(nums))
	var total T
	for i, n := range nums {
		if selfUnequal(total) {
			total = 0
		}
		total += n
		out[i] = total
	}
	return out
}

package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-value-utils/arr"
)

func ExampleFilterUnique() {
	fmt.Println(arr.FilterUnique([]int{1, 2, 2, 3, 3, 3, 4}))
	// Output: [1 4]
}

func ExampleFilterNonUnique() {
	fmt.Println(arr.FilterNonUnique([]int{1, 2, 2, 3, 3, 3, 4}))
	// Output: [2 3]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]string{"a", "b", "c", "a"}, []string{"b"}))
	// Output: [a c a]
}

func ExampleHasDuplicates() {
	fmt.Println(arr.HasDuplicates([]int{1, 2, 2}), arr.AllUnique([]int{1, 2, 2}))
	// Output: true false
}

func ExampleAccumulate() {
	fmt.Println(arr.Accumulate(1, 2, 3, 4))
	// Output: [1 3 6 10]
}

package chunk_test

import (
	"errors"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-value-utils/chunk"
)

func collect[T any](t *testing.T, c *chunk.Chunker[T]) [][]T {
	t.Helper()
	out := [][]T{}
	for {
		group, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, group)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"empty", []int{}, 3, [][]int{}},
		{"nil", nil, 3, [][]int{}},
		{"exact", []int{1, 2, 3}, 3, [][]int{{1, 2, 3}}},
		{"size one", []int{1, 2}, 1, [][]int{{1}, {2}}},
		{"size larger than input", []int{1, 2}, 10, [][]int{{1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chunk.Slice(tt.items, tt.size)
			if err != nil {
				t.Fatalf("Slice: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Slice (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := chunk.Slice([]int{1}, size); !errors.Is(err, chunk.ErrInvalidSize) {
			t.Fatalf("Slice size %d: err = %v; want ErrInvalidSize", size, err)
		}
	}
}

func TestInvalidSizeNeverReadsSource(t *testing.T) {
	read := false
	source := func(yield func(int) bool) {
		read = true
		yield(1)
	}
	if _, err := chunk.New(source, 0); !errors.Is(err, chunk.ErrInvalidSize) {
		t.Fatalf("err = %v; want ErrInvalidSize", err)
	}
	if read {
		t.Fatal("source was read despite an invalid size")
	}
}

// counting yields 1..n and records how many elements were pulled.
func counting(n int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*pulled = i
			if !yield(i) {
				return
			}
		}
	}
}

func TestLazy(t *testing.T) {
	var pulled int
	c, err := chunk.New(counting(100, &pulled), 3)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Stop()
	if pulled != 0 {
		t.Fatalf("pulled %d elements before Next", pulled)
	}
	group, ok := c.Next()
	if !ok || !slices.Equal(group, []int{1, 2, 3}) {
		t.Fatalf("Next = %v, %v", group, ok)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d elements after one group; want 3", pulled)
	}
	c.Next()
	if pulled != 6 {
		t.Fatalf("pulled %d elements after two groups; want 6", pulled)
	}
}

func TestSinglePass(t *testing.T) {
	c, err := chunk.Of([]string{"a", "b", "c"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	first := collect(t, c)
	if diff := cmp.Diff([][]string{{"a", "b"}, {"c"}}, first); diff != "" {
		t.Fatalf("first pass (-want +got):\n%s", diff)
	}
	if again := collect(t, c); len(again) != 0 {
		t.Fatalf("exhausted chunker yielded %v", again)
	}
}

func TestStop(t *testing.T) {
	var pulled int
	c, err := chunk.New(counting(10, &pulled), 2)
	if err != nil {
		t.Fatal(err)
	}
	c.Next()
	c.Stop()
	c.Stop()
	if group, ok := c.Next(); ok {
		t.Fatalf("Next after Stop = %v", group)
	}
	if pulled != 2 {
		t.Fatalf("pulled %d elements; want 2", pulled)
	}
}

func TestAllBreakStops(t *testing.T) {
	var pulled int
	c, err := chunk.New(counting(10, &pulled), 4)
	if err != nil {
		t.Fatal(err)
	}
	for group := range c.All() {
		if !slices.Equal(group, []int{1, 2, 3, 4}) {
			t.Fatalf("first group = %v", group)
		}
		break
	}
	if _, ok := c.Next(); ok {
		t.Fatal("breaking out of All should stop the chunker")
	}
	if pulled != 4 {
		t.Fatalf("pulled %d elements; want 4", pulled)
	}
}

func TestGroupsAreFresh(t *testing.T) {
	items := []int{1, 2, 3, 4}
	groups, err := chunk.Slice(items, 2)
	if err != nil {
		t.Fatal(err)
	}
	groups[0][0] = 99
	if items[0] != 1 || groups[1][0] != 3 {
		t.Fatal("groups must not alias the input or each other")
	}
}

func TestSliceHugeSize(t *testing.T) {
	for _, size := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt / 2} {
		got, err := chunk.Slice([]int{1, 2}, size)
		if err != nil {
			t.Fatalf("Slice(size=%d): %v", size, err)
		}
		if diff := cmp.Diff([][]int{{1, 2}}, got); diff != "" {
			t.Fatalf("Slice(size=%d) (-want +got):\n%s", size, diff)
		}
	}
}

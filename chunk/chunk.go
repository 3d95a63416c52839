package chunk

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
)

// maxPrealloc caps the capacity reserved for a group up front, so a huge
// size over a short source does not allocate more than it reads.
const maxPrealloc = 1024

// Chunker yields consecutive groups of a source sequence.
type Chunker[T any] struct {
	next func() (T, bool)
	stop func()
	size int
	done bool
}

// New returns a Chunker over source producing groups of size elements. The
// source is not read until the first call to Next. A size of zero or less
// returns an error wrapping [ErrInvalidSize].
func New[T any](source iter.Seq[T], size int) (*Chunker[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	next, stop := iter.Pull(source)
	return &Chunker[T]{next: next, stop: stop, size: size}, nil
}

// Of returns a Chunker over the elements of items.
func Of[T any](items []T, size int) (*Chunker[T], error) {
	return New(seq.FromSlice(items), size)
}

// Slice splits items into groups of size. The last group holds the
// remainder; an empty slice gives no groups.
//
//	Slice([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
func Slice[T any](items []T, size int) ([][]T, error) {
	c, err := Of(items, size)
	if err != nil {
		return nil, err
	}
	return seq.ToSlice(c.All(), make([][]T, 0, groups(len(items), size))), nil
}

// groups is ceil(n/size) without the overflow of n+size-1.
func groups(n, size int) int {
	g := n / size
	if n%size != 0 {
		g++
	}
	return g
}

// Next returns the next group, or nil and false once the source is
// exhausted. Every group is a newly allocated slice.
func (c *Chunker[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	group := make([]T, 0, min(c.size, maxPrealloc))
	for len(group) < c.size {
		item, ok := c.next()
		if !ok {
			c.Stop()
			break
		}
		group = append(group, item)
	}
	if len(group) == 0 {
		return nil, false
	}
	return group, true
}

// All returns the remaining groups as a sequence. Breaking out of a range
// loop over it stops the Chunker.
func (c *Chunker[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			group, ok := c.Next()
			if !ok {
				return
			}
			if !yield(group) {
				c.Stop()
				return
			}
		}
	}
}

// Stop releases the source. Next reports exhaustion afterwards. Stop may be
// called more than once.
func (c *Chunker[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

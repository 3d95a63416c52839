package value

import (
	"iter"
	"strconv"
)

// Sequence is an ordered list of Values.
type Sequence struct {
	items []Value
}

// NewSequence returns a Sequence holding items (copied).
func NewSequence(items ...Value) *Sequence {
	s := &Sequence{items: make([]Value, len(items))}
	for i, v := range items {
		s.items[i] = Normalize(v)
	}
	return s
}

func (*Sequence) Kind() Kind { return KindSequence }
func (*Sequence) sealed()    {}

// Append adds items to the end of s.
func (s *Sequence) Append(items ...Value) {
	for _, v := range items {
		s.items = append(s.items, Normalize(v))
	}
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// At returns the item at i, or Undefined when i is out of range.
func (s *Sequence) At(i int) Value {
	if i < 0 || i >= len(s.items) {
		return Undefined{}
	}
	return s.items[i]
}

// Lookup treats s as a mapping keyed by canonical decimal indexes ("0",
// "1", ...). Keys such as "01", "-1" or "+1" are never present.
func (s *Sequence) Lookup(key string) (Value, bool) {
	i, ok := Index(key)
	if !ok || i >= len(s.items) {
		return Undefined{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the items.
func (s *Sequence) Items() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)
	return out
}

// All yields every index/item pair in order.
func (s *Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields every item in order.
func (s *Sequence) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Index parses key as a canonical non-negative decimal index.
func Index(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

package deep

import (
	"iter"
	"strconv"

	"github.com/hasbyte1/go-value-utils/value"
)

// container is the key/value view shared by *value.Mapping and
// *value.Sequence; a Sequence is keyed by its canonical indexes.
type container interface {
	value.Value
	Len() int
	Lookup(key string) (value.Value, bool)
	Values() iter.Seq[value.Value]
}

func asContainer(v value.Value) (container, bool) {
	switch c := v.(type) {
	case *value.Mapping:
		return c, true
	case *value.Sequence:
		return c, true
	}
	return nil, false
}

// entries yields the keys and values of c, indexes rendered in decimal.
func entries(c container) iter.Seq2[string, value.Value] {
	return func(yield func(string, value.Value) bool) {
		switch x := c.(type) {
		case *value.Mapping:
			for k, v := range x.All() {
				if !yield(k, v) {
					return
				}
			}
		case *value.Sequence:
			for i, v := range x.All() {
				if !yield(strconv.Itoa(i), v) {
					return
				}
			}
		}
	}
}

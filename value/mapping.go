package value

import "iter"

// Entry is one key/value pair of a [Mapping].
type Entry struct {
	Key   string
	Value Value
}

// Mapping is a string-keyed collection of Values that remembers insertion
// order. Keys are unique.
type Mapping struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewMapping returns a Mapping holding entries in order. A repeated key
// keeps its first position and takes the last value.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{
		keys:  make([]string, 0, len(entries)),
		vals:  make([]Value, 0, len(entries)),
		index: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (*Mapping) Kind() Kind { return KindMapping }
func (*Mapping) sealed()    {}

// Set stores v under key. An existing key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	v = Normalize(v)
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.vals[i] = v
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Delete removes key and reports whether it was present. The remaining keys
// keep their relative order.
func (m *Mapping) Delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Lookup returns the value stored under key and whether key is present.
// A present key may hold Undefined.
func (m *Mapping) Lookup(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Undefined{}, false
	}
	return m.vals[i], true
}

// Get returns the value under key, or Undefined when key is absent.
func (m *Mapping) Get(key string) Value {
	v, _ := m.Lookup(key)
	return v
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All yields every key/value pair in insertion order.
func (m *Mapping) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Values yields every value in insertion order.
func (m *Mapping) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range m.vals {
			if !yield(v) {
				return
			}
		}
	}
}

package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Decode parses a single JSON or YAML document. Mapping keys keep document
// order, YAML aliases resolve to the same *Mapping or *Sequence as their
// anchor, and unquoted YAML timestamps become Instants. An empty document
// decodes to Undefined.
//
// A YAML stream holding more than one document is rejected with
// [ErrDecode]; use [DecodeAll] for streams.
func Decode(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Undefined{}, nil
		}
		if json.Valid(data) {
			return decodeJSON(data)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: document 1: %w", ErrDecode, err)
	default:
		return nil, fmt.Errorf("%w: line %d: more than one document, use DecodeAll", ErrDecode, extra.Line)
	}
	return newDecoder().node(&doc)
}

// DecodeAll parses every document of a YAML stream (a JSON text is a single
// document).
func DecodeAll(r io.Reader) ([]Value, error) {
	dec := yaml.NewDecoder(r)
	var out []Value
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrDecode, len(out), err)
		}
		v, err := newDecoder().node(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

type decoder struct {
	// containers already built, by node, so aliases share a reference
	seen map[*yaml.Node]Value
}

func newDecoder() *decoder {
	return &decoder{seen: make(map[*yaml.Node]Value)}
}

func (d *decoder) node(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Undefined{}, nil
		}
		return d.node(n.Content[0])
	case yaml.AliasNode:
		return d.node(n.Alias)
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.SequenceNode:
		if v, ok := d.seen[n]; ok {
			return v, nil
		}
		s := &Sequence{items: make([]Value, 0, len(n.Content))}
		d.seen[n] = s
		for _, c := range n.Content {
			v, err := d.node(c)
			if err != nil {
				return nil, err
			}
			s.items = append(s.items, v)
		}
		return s, nil
	case yaml.MappingNode:
		if v, ok := d.seen[n]; ok {
			return v, nil
		}
		m := NewMapping()
		d.seen[n] = m
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				if err := d.merge(m, vn); err != nil {
					return nil, err
				}
				continue
			}
			key, err := d.key(k)
			if err != nil {
				return nil, err
			}
			v, err := d.node(vn)
			if err != nil {
				return nil, err
			}
			m.Set(key, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: line %d: unexpected node kind %d", ErrDecode, n.Line, n.Kind)
}

// merge copies the entries of a "<<" source into m without overriding keys
// m already holds.
func (d *decoder) merge(m *Mapping, src *yaml.Node) error {
	v, err := d.node(src)
	if err != nil {
		return err
	}
	var sources []*Mapping
	switch x := v.(type) {
	case *Mapping:
		sources = append(sources, x)
	case *Sequence:
		for _, item := range x.items {
			sm, ok := item.(*Mapping)
			if !ok {
				return fmt.Errorf("%w: line %d: merge sequence holds a %s", ErrDecode, src.Line, item.Kind())
			}
			sources = append(sources, sm)
		}
	default:
		return fmt.Errorf("%w: line %d: cannot merge a %s", ErrDecode, src.Line, v.Kind())
	}
	for _, sm := range sources {
		for k, sv := range sm.All() {
			if !m.Has(k) {
				m.Set(k, sv)
			}
		}
	}
	return nil
}

func (d *decoder) key(k *yaml.Node) (string, error) {
	if k.Kind == yaml.ScalarNode && k.ShortTag() != "!!null" {
		return k.Value, nil
	}
	v, err := d.node(k)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

func scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, scalarErr(n, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Number(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return Number(u), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarErr(n, err)
		}
		return Number(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarErr(n, err)
		}
		return Number(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, scalarErr(n, err)
		}
		return NewInstant(t), nil
	}
	return String(n.Value), nil
}

func scalarErr(n *yaml.Node, err error) error {
	return fmt.Errorf("%w: line %d: %q: %w", ErrDecode, n.Line, n.Value, err)
}

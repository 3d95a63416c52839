package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// decodeJSON walks the token stream of a JSON text. Decode falls back to it
// for valid JSON the YAML parser refuses, such as tab indentation or
// repeated keys (the last value wins, as in JSON.parse).
func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := jsonValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrDecode)
	}
	return v, nil
}

func jsonValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case json.Delim:
		switch t {
		case '[':
			s := NewSequence()
			for dec.More() {
				item, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				s.items = append(s.items, item)
			}
			_, err := dec.Token()
			return s, err
		case '{':
			m := NewMapping()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := kt.(string)
				item, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, item)
			}
			_, err := dec.Token()
			return m, err
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

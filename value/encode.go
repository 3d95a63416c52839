package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// MarshalJSON encodes v following the conventions of JavaScript's
// JSON.stringify:
//
//   - NaN and ±Inf encode as null,
//   - Instants encode as UTC RFC 3339 strings with millisecond precision,
//   - Undefined members of a Mapping are left out,
//   - Undefined items of a Sequence encode as null.
//
// A top-level Undefined, or an Opaque whose referent encoding/json rejects,
// returns an error wrapping [ErrUnencodable].
func MarshalJSON(v Value) ([]byte, error) {
	if IsUndefined(v) {
		return nil, fmt.Errorf("%w: undefined", ErrUnencodable)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent is like [MarshalJSON] but indents the output.
func MarshalJSONIndent(v Value, prefix, indent string) ([]byte, error) {
	b, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch x := Normalize(v).(type) {
	case Undefined, Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(x)))
	case Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(formatNumber(f))
	case String:
		writeQuoted(buf, string(x))
	case *Instant:
		writeQuoted(buf, x.t.UTC().Format(instantLayout))
	case *Sequence:
		buf.WriteByte('[')
		for i, item := range x.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Mapping:
		buf.WriteByte('{')
		first := true
		for k, item := range x.All() {
			if IsUndefined(item) {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeQuoted(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case *Opaque:
		b, err := json.Marshal(x.ref)
		if err != nil {
			return fmt.Errorf("%w: opaque %T: %w", ErrUnencodable, x.ref, err)
		}
		buf.Write(b)
	}
	return nil
}

func writeQuoted(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
}

// formatNumber renders f the way JavaScript's Number#toString does for the
// common cases: integral values without exponent below 1e21, -0 as 0.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

// Format renders v compactly for logs and error messages. Unlike
// [MarshalJSON] it never fails and shows undefined, NaN and opaque values
// as such.
func Format(v Value) string {
	var sb strings.Builder
	format(&sb, v)
	return sb.String()
}

func format(sb *strings.Builder, v Value) {
	switch x := Normalize(v).(type) {
	case Undefined:
		sb.WriteString("undefined")
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(x)))
	case Number:
		sb.WriteString(formatNumber(float64(x)))
	case String:
		sb.WriteString(strconv.Quote(string(x)))
	case *Instant:
		sb.WriteString(x.t.UTC().Format(instantLayout))
	case *Sequence:
		sb.WriteByte('[')
		for i, item := range x.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, item)
		}
		sb.WriteByte(']')
	case *Mapping:
		sb.WriteByte('{')
		i := 0
		for k, item := range x.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			i++
			sb.WriteString(k)
			sb.WriteString(": ")
			format(sb, item)
		}
		sb.WriteByte('}')
	case *Opaque:
		fmt.Fprintf(sb, "<opaque %T>", x.ref)
	}
}

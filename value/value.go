package value

import (
	"math"
	"time"
)

// Kind identifies the variant of a [Value].
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindInstant
	KindSequence
	KindMapping
	KindOpaque
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "bool",
	KindNumber:    "number",
	KindString:    "string",
	KindInstant:   "instant",
	KindSequence:  "sequence",
	KindMapping:   "mapping",
	KindOpaque:    "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the sealed union of all dynamically shaped values.
type Value interface {
	Kind() Kind
	sealed()
}

// Undefined marks the absence of a value. It is distinct from [Null].
type Undefined struct{}

// Null is an explicit null.
type Null struct{}

type (
	Bool   bool
	Number float64
	String string
)

func (Undefined) Kind() Kind { return KindUndefined }
func (Null) Kind() Kind      { return KindNull }
func (Bool) Kind() Kind      { return KindBool }
func (Number) Kind() Kind    { return KindNumber }
func (String) Kind() Kind    { return KindString }

func (Undefined) sealed() {}
func (Null) sealed()      {}
func (Bool) sealed()      {}
func (Number) sealed()    {}
func (String) sealed()    {}

// NaN returns a Number holding IEEE 754 not-a-number.
func NaN() Number { return Number(math.NaN()) }

// Instant is a point in time. Two Instants are deeply equal when their
// epoch offsets match, whatever their location.
type Instant struct {
	t time.Time
}

// NewInstant wraps t.
func NewInstant(t time.Time) *Instant { return &Instant{t: t} }

// FromEpochMillis returns the Instant ms milliseconds after the Unix epoch,
// in UTC.
func FromEpochMillis(ms int64) *Instant { return &Instant{t: time.UnixMilli(ms).UTC()} }

// Epoch returns the number of milliseconds since the Unix epoch.
func (i *Instant) Epoch() int64 { return i.t.UnixMilli() }

// Time returns the wrapped time.
func (i *Instant) Time() time.Time { return i.t }

func (*Instant) Kind() Kind { return KindInstant }
func (*Instant) sealed()    {}

// Opaque carries any Go value that has no structural meaning here. Opaque
// values are only ever equal to themselves.
type Opaque struct {
	ref any
}

// NewOpaque wraps ref.
func NewOpaque(ref any) *Opaque { return &Opaque{ref: ref} }

// Ref returns the wrapped Go value.
func (o *Opaque) Ref() any { return o.ref }

func (*Opaque) Kind() Kind { return KindOpaque }
func (*Opaque) sealed()    {}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Normalize maps a nil interface, or a nil *Instant, *Sequence, *Mapping
// or *Opaque, to Undefined and returns any other value unchanged.
func Normalize(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Undefined{}
	case *Instant:
		if x == nil {
			return Undefined{}
		}
	case *Sequence:
		if x == nil {
			return Undefined{}
		}
	case *Mapping:
		if x == nil {
			return Undefined{}
		}
	case *Opaque:
		if x == nil {
			return Undefined{}
		}
	}
	return v
}

// KindOf returns v's kind, treating nil as Undefined.
func KindOf(v Value) Kind {
	return Normalize(v).Kind()
}

// IsUndefined reports whether v is Undefined (or nil).
func IsUndefined(v Value) bool {
	return KindOf(v) == KindUndefined
}

// IsContainer reports whether v is a *Mapping or a *Sequence.
func IsContainer(v Value) bool {
	switch v.(type) {
	case *Mapping, *Sequence:
		return true
	}
	return false
}

// Truthy reports whether v would be truthy in a boolean context: Undefined,
// Null, false, 0, NaN and the empty string are falsy; everything else,
// including empty sequences and mappings, is truthy.
func Truthy(v Value) bool {
	switch x := Normalize(v).(type) {
	case Undefined, Null:
		return false
	case Bool:
		return bool(x)
	case Number:
		return x != 0 && !math.IsNaN(float64(x))
	case String:
		return x != ""
	case *Instant, *Sequence, *Mapping, *Opaque:
		return true
	}
	return true
}

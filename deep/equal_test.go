package deep_test

import (
	"testing"

	"github.com/hasbyte1/go-value-utils/deep"
	"github.com/hasbyte1/go-value-utils/value"
)

func TestEqualReflexive(t *testing.T) {
	values := []value.Value{
		value.Undefined{},
		value.Null{},
		value.Bool(false),
		value.Number(0),
		value.Number(-2.5),
		value.String(""),
		value.String("x"),
		value.FromEpochMillis(1000),
		value.NewOpaque(1),
		value.NewSequence(value.Number(1), value.NewMapping()),
		value.NewMapping(value.Entry{Key: "a", Value: value.Undefined{}}),
	}
	for _, v := range values {
		if !deep.Equal(v, v) {
			t.Errorf("Equal(%s, itself) = false", value.Format(v))
		}
	}
}

func TestEqualNaN(t *testing.T) {
	if deep.Equal(value.NaN(), value.NaN()) {
		t.Fatal("NaN must not equal NaN")
	}
	n := value.NaN()
	if deep.Equal(n, n) {
		t.Fatal("NaN must not equal itself")
	}
	a := value.NewSequence(value.NaN())
	b := value.NewSequence(value.NaN())
	if deep.Equal(a, b) {
		t.Fatal("sequences holding NaN must not be equal")
	}
	if !deep.Equal(a, a) {
		t.Fatal("a sequence is equal to itself by reference")
	}
}

func TestEqualMappings(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same content", `{a: 1, b: 2}`, `{a: 1, b: 2}`, true},
		{"key order ignored", `{a: 1, b: 2}`, `{b: 2, a: 1}`, true},
		{"fewer keys", `{a: 1}`, `{a: 1, b: 2}`, false},
		{"more keys", `{a: 1, b: 2}`, `{a: 1}`, false},
		{"different value", `{a: 1}`, `{a: 2}`, false},
		{"nested", `{a: {b: [1, {c: true}]}}`, `{a: {b: [1, {c: true}]}}`, true},
		{"nested differs", `{a: {b: [1, {c: true}]}}`, `{a: {b: [1, {c: false}]}}`, false},
		{"empty", `{}`, `{}`, true},
		{"null members", `{a: null}`, `{a: null}`, true},
		{"null vs missing", `{a: null, b: 1}`, `{b: 1, c: 1}`, false},
		{"number vs string", `{a: 1}`, `{a: "1"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deep.Equal(doc(t, tt.a), doc(t, tt.b)); got != tt.want {
				t.Fatalf("Equal(%s, %s) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualSequences(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`[1, 2, 3]`, `[1, 2, 3]`, true},
		{`[1, 2, 3]`, `[3, 2, 1]`, false},
		{`[1, 2]`, `[1, 2, 3]`, false},
		{`[]`, `[]`, true},
		{`[]`, `{}`, false},
		{`{"0": 1}`, `[1]`, false},
		{`[[1], [2]]`, `[[1], [2]]`, true},
	}
	for _, tt := range tests {
		if got := deep.Equal(doc(t, tt.a), doc(t, tt.b)); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEqualInstants(t *testing.T) {
	a, b := value.FromEpochMillis(1000), value.FromEpochMillis(1000)
	if !deep.Equal(a, b) {
		t.Fatal("instants with equal epochs should be equal")
	}
	if deep.Equal(a, value.FromEpochMillis(1001)) {
		t.Fatal("instants with different epochs should differ")
	}
	if deep.Equal(a, value.Number(1000)) {
		t.Fatal("an instant never equals a number")
	}
	if deep.Equal(a, value.NewMapping()) || deep.Equal(value.NewMapping(), a) {
		t.Fatal("an instant never equals a mapping")
	}
	m1 := value.NewMapping(value.Entry{Key: "at", Value: a})
	m2 := value.NewMapping(value.Entry{Key: "at", Value: b})
	if !deep.Equal(m1, m2) {
		t.Fatal("nested instants should compare by epoch")
	}
}

func TestEqualFalsyFallback(t *testing.T) {
	tests := []struct {
		a, b value.Value
		want bool
	}{
		{value.Null{}, value.Undefined{}, false},
		{nil, value.Undefined{}, true},
		{value.Number(0), value.Bool(false), false},
		{value.Number(0), value.Number(0), true},
		{value.String(""), value.NewSequence(), false},
		{value.NewMapping(), value.Null{}, false},
		{value.Number(1), value.Number(1), true},
		{value.NewOpaque(1), value.NewOpaque(1), false},
	}
	for _, tt := range tests {
		if got := deep.Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v; want %v", value.Format(tt.a), value.Format(tt.b), got, tt.want)
		}
	}
}

// Comparison is driven by the first operand's keys after a length check.
func TestEqualAsymmetry(t *testing.T) {
	a := value.NewMapping(
		value.Entry{Key: "x", Value: value.Undefined{}},
		value.Entry{Key: "y", Value: value.Number(1)},
	)
	b := value.NewMapping(
		value.Entry{Key: "y", Value: value.Number(1)},
		value.Entry{Key: "z", Value: value.Number(2)},
	)
	if !deep.Equal(a, b) {
		t.Fatal("Equal(a, b) should be true: x reads as undefined in b")
	}
	if deep.Equal(b, a) {
		t.Fatal("Equal(b, a) should be false: z is 2 in b but undefined in a")
	}
}

func TestEqualSharedReference(t *testing.T) {
	v := doc(t, "base: &b [1, 2]\nleft: *b\nright: *b\n").(*value.Mapping)
	if !deep.Equal(v.Get("left"), v.Get("right")) {
		t.Fatal("aliases of one anchor should be equal")
	}
}

func TestEqualNilPointers(t *testing.T) {
	var nilMapping *value.Mapping
	var nilSequence *value.Sequence
	filled := value.NewMapping(value.Entry{Key: "a", Value: value.Number(1)})
	if deep.Equal(nilMapping, filled) || deep.Equal(filled, nilMapping) {
		t.Fatal("a nil mapping must not equal a filled one")
	}
	if deep.Equal(nilSequence, value.NewSequence(value.Number(1))) {
		t.Fatal("a nil sequence must not equal a filled one")
	}
	if !deep.Equal(nilMapping, value.Undefined{}) {
		t.Fatal("a nil mapping reads as undefined")
	}
	if !deep.Equal(value.From(nilMapping), nilSequence) {
		t.Fatal("nil containers both read as undefined")
	}
}

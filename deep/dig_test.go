package deep_test

import (
	"testing"

	"github.com/hasbyte1/go-value-utils/deep"
	"github.com/hasbyte1/go-value-utils/value"
)

func TestDigOwnKeyWins(t *testing.T) {
	root := mapping(t, `{a: {b: {target: 5}}, target: 1}`)
	if got := deep.Dig(root, "target"); got != value.Value(value.Number(1)) {
		t.Fatalf("Dig = %s; want 1", value.Format(got))
	}
}

func TestDigFirstBranchWins(t *testing.T) {
	root := mapping(t, `{a: {target: 5}, b: {target: 9}}`)
	if got := deep.Dig(root, "target"); got != value.Value(value.Number(5)) {
		t.Fatalf("Dig = %s; want 5", value.Format(got))
	}
	root = mapping(t, `{b: {target: 9}, a: {target: 5}}`)
	if got := deep.Dig(root, "target"); got != value.Value(value.Number(9)) {
		t.Fatalf("Dig = %s; want 9", value.Format(got))
	}
}

func TestDigDepthFirst(t *testing.T) {
	root := mapping(t, `{a: {deep: {target: "deep"}}, b: {target: "shallow"}}`)
	if got := deep.Dig(root, "target"); got != value.Value(value.String("deep")) {
		t.Fatalf("Dig = %s; want \"deep\"", value.Format(got))
	}
}

func TestDigSequences(t *testing.T) {
	root := mapping(t, `{items: [1, {id: 7}, {id: 8}]}`)
	if got := deep.Dig(root, "id"); got != value.Value(value.Number(7)) {
		t.Fatalf("Dig(id) = %s; want 7", value.Format(got))
	}
	if got := deep.Dig(root, "1"); value.Format(got) != "{id: 7}" {
		t.Fatalf("Dig(1) = %s; want {id: 7}", value.Format(got))
	}
	if got := deep.Dig(root, "01"); !value.IsUndefined(got) {
		t.Fatalf("Dig(01) = %s; want undefined", value.Format(got))
	}
}

func TestDigMissing(t *testing.T) {
	root := mapping(t, `{a: {b: 1}, c: [2, 3], d: 2024-01-01}`)
	if got := deep.Dig(root, "zzz"); !value.IsUndefined(got) {
		t.Fatalf("Dig = %s; want undefined", value.Format(got))
	}
	if got := deep.Dig(nil, "a"); !value.IsUndefined(got) {
		t.Fatalf("Dig(nil) = %s; want undefined", value.Format(got))
	}
}

func TestDigOwnUndefinedKey(t *testing.T) {
	inner := value.NewMapping(value.Entry{Key: "k", Value: value.Number(2)})
	root := value.NewMapping(
		value.Entry{Key: "k", Value: value.Undefined{}},
		value.Entry{Key: "inner", Value: inner},
	)
	if got := deep.Dig(root, "k"); !value.IsUndefined(got) {
		t.Fatalf("own undefined key should win, got %s", value.Format(got))
	}
	outer := value.NewMapping(
		value.Entry{Key: "first", Value: root},
		value.Entry{Key: "second", Value: value.NewMapping(value.Entry{Key: "k", Value: value.Number(3)})},
	)
	if got := deep.Dig(outer, "k"); got != value.Value(value.Number(3)) {
		t.Fatalf("nested undefined match should not stop the search, got %s", value.Format(got))
	}
}

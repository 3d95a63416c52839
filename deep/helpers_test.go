package deep_test

import (
	"testing"

	"github.com/hasbyte1/go-value-utils/value"
)

// doc decodes a JSON or YAML literal, failing the test on error.
func doc(t testing.TB, s string) value.Value {
	t.Helper()
	v, err := value.Decode([]byte(s))
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return v
}

func mapping(t testing.TB, s string) *value.Mapping {
	t.Helper()
	m, ok := doc(t, s).(*value.Mapping)
	if !ok {
		t.Fatalf("%q is not a mapping", s)
	}
	return m
}

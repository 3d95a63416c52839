package deep

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-value-utils/value"
)

// Fingerprint returns the blake2b-256 digest of a canonical encoding of v.
// Mapping members are digested in key order, Undefined members are left
// out, Instants are digested by epoch milliseconds and every NaN digests
// alike, so values that are [Equal] and hold no Undefined members share a
// fingerprint.
//
// Values holding an Opaque fail with an error wrapping [ErrUnhashable].
func Fingerprint(v value.Value) ([blake2b.Size256]byte, error) {
	var sum [blake2b.Size256]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return sum, err
	}
	if err := writeCanonical(h, v); err != nil {
		return sum, err
	}
	h.Sum(sum[:0])
	return sum, nil
}

func writeCanonical(h hash.Hash, v value.Value) error {
	v = value.Normalize(v)
	var b [binary.MaxVarintLen64]byte
	h.Write([]byte{byte(v.Kind())})

	switch x := v.(type) {
	case value.Undefined, value.Null:
	case value.Bool:
		if x {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case value.Number:
		f := float64(x)
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			// -0 == 0
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:8], math.Float64bits(f))
		h.Write(b[:8])
	case value.String:
		writeString(h, string(x))
	case *value.Instant:
		binary.LittleEndian.PutUint64(b[:8], uint64(x.Epoch()))
		h.Write(b[:8])
	case *value.Sequence:
		h.Write(binary.AppendUvarint(b[:0], uint64(x.Len())))
		for item := range x.Values() {
			if err := writeCanonical(h, item); err != nil {
				return err
			}
		}
	case *value.Mapping:
		keys := make([]string, 0, x.Len())
		for k, item := range x.All() {
			if !value.IsUndefined(item) {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		h.Write(binary.AppendUvarint(b[:0], uint64(len(keys))))
		for _, k := range keys {
			writeString(h, k)
			if err := writeCanonical(h, x.Get(k)); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case *value.Opaque:
		return fmt.Errorf("%w: opaque %T", ErrUnhashable, x.Ref())
	}
	return nil
}

func writeString(h hash.Hash, s string) {
	var b [binary.MaxVarintLen64]byte
	h.Write(binary.AppendUvarint(b[:0], uint64(len(s))))
	h.Write([]byte(s))
}

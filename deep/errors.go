package deep

import "errors"

// ErrUnhashable is returned by [Fingerprint] for values that carry an Opaque
// Go value.
var ErrUnhashable = errors.New("deep: value cannot be fingerprinted")

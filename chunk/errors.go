package chunk

import "errors"

// ErrInvalidSize is returned when a chunk size is zero or negative.
var ErrInvalidSize = errors.New("chunk: size must be greater than 0")

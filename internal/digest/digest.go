// Package digest wraps the variable-width BLAKE2b hash used for salt
// derivation.
package digest

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const MaxSize = blake2b.Size

var ErrSize = errors.New("digest size out of range")

// Sum returns the size byte BLAKE2b digest of data. Size must be in
// [1, MaxSize].
func Sum(data []byte, size int) ([]byte, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrSize, size)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	h.Write(data)
	return h.Sum(nil), nil
}

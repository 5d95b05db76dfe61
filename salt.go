package hypersign

import (
	"fmt"

	"github.com/oarkflow/hypersign/internal/digest"
)

// Salt derives a DefaultSaltSize byte salt from seed.
func Salt(seed []byte) ([]byte, error) {
	return SaltWithSize(seed, DefaultSaltSize)
}

// SaltString derives a DefaultSaltSize byte salt from a string seed.
func SaltString(seed string) ([]byte, error) {
	return SaltWithSize([]byte(seed), DefaultSaltSize)
}

// SaltWithSize returns the size byte BLAKE2b digest of seed. Size must be in
// [SaltMinSize, SaltMaxSize].
//
// A nil seed hashes size zero bytes instead, so the result is the same fixed
// value for every caller. It is not random: callers who need an unpredictable
// slot must pass their own random seed. An empty, non-nil seed hashes the
// empty string.
func SaltWithSize(seed []byte, size int) ([]byte, error) {
	if size < SaltMinSize || size > SaltMaxSize {
		return nil, fmt.Errorf(
			"%w: %d, must be within [%d, %d]",
			ErrSaltSize, size, SaltMinSize, SaltMaxSize,
		)
	}
	if seed == nil {
		seed = make([]byte, size)
	}
	salt, err := digest.Sum(seed, size)
	if err != nil {
		return nil, fmt.Errorf("hashing seed: %w", err)
	}

	return salt, nil
}

package hypersign

import (
	"fmt"

	"github.com/oarkflow/hypersign/identity"
)

// GenerateKeyPair returns a fresh ed25519 key pair drawn from crypto/rand.
// Failure of the system random source is not recoverable and panics.
func GenerateKeyPair() *identity.Ed25519 {
	id, err := identity.NewEd25519()
	if err != nil {
		panic(fmt.Errorf("generating key pair: %w", err))
	}
	return id
}

// KeyPairFromSeed expands a 32 byte ed25519 seed into a key pair.
func KeyPairFromSeed(seed []byte) (*identity.Ed25519, error) {
	id, err := identity.NewEd25519FromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecretKey, err)
	}
	return id, nil
}

// ParseSecretKey loads a 64 byte ed25519 secret key (seed || public key).
func ParseSecretKey(secret []byte) (*identity.Ed25519, error) {
	id, err := identity.ParseEd25519(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecretKey, err)
	}
	return id, nil
}

package identity

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/oarkflow/hypersign/sign"
)

const (
	Ed25519SeedSize      = ed25519.SeedSize
	Ed25519PublicKeySize = ed25519.PublicKeySize
	Ed25519SecretKeySize = ed25519.PrivateKeySize
	Ed25519SignatureSize = ed25519.SignatureSize
)

// VerifyEd25519 reports whether sig is a valid signature of msg by pub.
func VerifyEd25519(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}

type Ed25519 struct {
	PublicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

func (e *Ed25519) Sign(msg []byte) ([]byte, error) {
	if len(e.privateKey) != ed25519.PrivateKeySize {
		return nil, ErrErasedKey
	}
	return ed25519.Sign(e.privateKey, msg), nil
}

func (e *Ed25519) MarshalPublicKey() []byte {
	return bytes.Clone(e.PublicKey)
}

func (e *Ed25519) Verifier() sign.Verifier {
	return VerifyEd25519
}

// Seed returns a copy of the 32 byte seed the private key was expanded from.
func (e *Ed25519) Seed() []byte {
	if len(e.privateKey) != ed25519.PrivateKeySize {
		return nil
	}
	return bytes.Clone(e.privateKey.Seed())
}

// Erase zeroes the private key. The key pair can no longer sign afterwards.
func (e *Ed25519) Erase() {
	clear(e.privateKey)
	e.privateKey = nil
}

func NewEd25519() (*Ed25519, error) {
	public, private, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return &Ed25519{privateKey: private, PublicKey: public}, nil
}

func NewEd25519FromSeed(seed []byte) (*Ed25519, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf(
			"%w: seed must be %d bytes, got %d",
			ErrInvalidKey, ed25519.SeedSize, len(seed),
		)
	}
	private := ed25519.NewKeyFromSeed(seed)
	public, ok := private.Public().(ed25519.PublicKey)
	if !ok {
		panic("type assertion: public key is not of type ed25519.PublicKey")
	}
	return &Ed25519{privateKey: private, PublicKey: public}, nil
}

// ParseEd25519 accepts a 64 byte secret key (seed followed by public key) and
// rejects it if the public half does not belong to the seed.
func ParseEd25519(secret []byte) (*Ed25519, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf(
			"%w: secret key must be %d bytes, got %d",
			ErrInvalidKey, ed25519.PrivateKeySize, len(secret),
		)
	}
	e, err := NewEd25519FromSeed(secret[:ed25519.SeedSize])
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(e.PublicKey, secret[ed25519.SeedSize:]) {
		e.Erase()
		return nil, fmt.Errorf("%w: public key does not match seed", ErrInvalidKey)
	}
	return e, nil
}

package hypersign

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/oarkflow/hypersign/identity"
	"github.com/oarkflow/hypersign/sign"
)

// Sign signs the payload of value under opts.Salt and opts.Seq with
// opts.KeyPair. Errors from Signable are returned unchanged.
func Sign(value []byte, opts *Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	msg, err := Signable(value, opts.Salt, opts.Seq)
	if err != nil {
		return nil, err
	}
	sig, err := opts.KeyPair.Sign(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSecretKey, err)
	}

	return sig, nil
}

// Verify checks an ed25519 signature over the item (salt, seq, value) against
// pub. A signature that does not match reports false with a nil error; errors
// are reserved for inputs the payload cannot be built from.
func Verify(value, salt []byte, seq *uint256.Int, sig, pub []byte) (bool, error) {
	return VerifyWith(identity.VerifyEd25519, value, salt, seq, sig, pub)
}

// VerifyWith is Verify for an arbitrary signature scheme.
func VerifyWith(
	verify sign.Verifier, value, salt []byte, seq *uint256.Int, sig, pub []byte,
) (bool, error) {
	if verify == nil {
		return false, ErrOptionsRequired
	}
	msg, err := Signable(value, salt, seq)
	if err != nil {
		return false, err
	}

	return verify(pub, msg, sig), nil
}

package identity_test

import (
	"encoding/hex"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/hypersign/identity"
	"github.com/oarkflow/hypersign/sign"
)

var _ sign.Identity = &identity.Ed25519{}

func TestEd25519_SignVerify(t *testing.T) {
	a := require.New(t)
	msg := []byte("Make the world a better place")

	e, err := identity.NewEd25519()
	a.NoError(err)
	a.NotNil(e)
	pub := e.MarshalPublicKey()
	a.Len(pub, identity.Ed25519PublicKeySize)
	sig, err := e.Sign(msg)
	a.NoError(err)
	a.Len(sig, identity.Ed25519SignatureSize)

	t.Run("valid signature", func(t *testing.T) {
		require.True(t, identity.VerifyEd25519(pub, msg, sig))
		require.True(t, e.Verifier()(pub, msg, sig))
	})
	t.Run("invalid signature", func(t *testing.T) {
		sig := slices.Clone(sig)
		sig[0] ^= 0xFF
		require.False(t, identity.VerifyEd25519(pub, msg, sig))
	})
	t.Run("invalid message", func(t *testing.T) {
		msg := append(slices.Clone(msg), '!')
		require.False(t, identity.VerifyEd25519(pub, msg, sig))
	})
	t.Run("invalid public key", func(t *testing.T) {
		another, err := identity.NewEd25519()
		require.NoError(t, err)
		require.False(t, identity.VerifyEd25519(another.PublicKey, msg, sig))
	})
	t.Run("malformed input", func(t *testing.T) {
		require.False(t, identity.VerifyEd25519(pub[:10], msg, sig))
		require.False(t, identity.VerifyEd25519(pub, msg, sig[:10]))
		require.False(t, identity.VerifyEd25519(nil, msg, nil))
	})
}

func TestEd25519_FromSeed(t *testing.T) {
	a := require.New(t)
	// RFC 8032, section 7.1, test 1.
	seed, _ := hex.DecodeString(
		"9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
	)
	e, err := identity.NewEd25519FromSeed(seed)
	a.NoError(err)
	a.Equal(
		"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		hex.EncodeToString(e.MarshalPublicKey()),
	)
	a.Equal(seed, e.Seed())

	_, err = identity.NewEd25519FromSeed(seed[:31])
	a.ErrorIs(err, identity.ErrInvalidKey)
}

func TestParseEd25519(t *testing.T) {
	a := require.New(t)
	e, err := identity.NewEd25519()
	a.NoError(err)
	secret := append(e.Seed(), e.MarshalPublicKey()...)

	parsed, err := identity.ParseEd25519(secret)
	a.NoError(err)
	a.Equal(e.MarshalPublicKey(), parsed.MarshalPublicKey())

	t.Run("wrong length", func(t *testing.T) {
		_, err := identity.ParseEd25519(secret[:40])
		require.ErrorIs(t, err, identity.ErrInvalidKey)
	})
	t.Run("mismatched public half", func(t *testing.T) {
		bad := slices.Clone(secret)
		bad[len(bad)-1] ^= 0x01
		_, err := identity.ParseEd25519(bad)
		require.ErrorIs(t, err, identity.ErrInvalidKey)
	})
}

func TestEd25519_Erase(t *testing.T) {
	a := require.New(t)
	e, err := identity.NewEd25519()
	a.NoError(err)

	e.Erase()
	a.Nil(e.Seed())
	_, err = e.Sign([]byte("after erase"))
	a.ErrorIs(err, identity.ErrErasedKey)
}

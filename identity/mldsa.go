package identity

import (
	"crypto/rand"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"github.com/oarkflow/hypersign/sign"
)

const (
	MLDSAPublicKeySize = mldsa65.PublicKeySize
	MLDSASignatureSize = mldsa65.SignatureSize
)

type MLDSA struct {
	PublicKey  *mldsa65.PublicKey
	privateKey *mldsa65.PrivateKey
}

// VerifyMLDSA reports whether sig is a valid ML-DSA-65 signature of msg by the
// packed public key pub.
func VerifyMLDSA(pub, msg, sig []byte) bool {
	if len(pub) != mldsa65.PublicKeySize || len(sig) != mldsa65.SignatureSize {
		return false
	}
	var pk mldsa65.PublicKey
	if err := pk.UnmarshalBinary(pub); err != nil {
		return false
	}
	return mldsa65.Verify(&pk, msg, nil, sig)
}

func (m *MLDSA) Sign(msg []byte) ([]byte, error) {
	if m.privateKey == nil {
		return nil, ErrErasedKey
	}
	sig := make([]byte, mldsa65.SignatureSize)
	err := mldsa65.SignTo(m.privateKey, msg, nil, true, sig)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (m *MLDSA) MarshalPublicKey() []byte {
	b, _ := m.PublicKey.MarshalBinary()
	return b
}

func (m *MLDSA) Verifier() sign.Verifier {
	return VerifyMLDSA
}

// Erase drops the reference to the private key.
func (m *MLDSA) Erase() {
	m.privateKey = nil
}

func NewMLDSA() (*MLDSA, error) {
	public, private, err := mldsa65.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	return &MLDSA{PublicKey: public, privateKey: private}, nil
}

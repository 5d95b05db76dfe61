// Package sign declares the contract between the mutable item encoder and the
// signature scheme that authenticates it.
package sign

// Identity is a key pair able to sign arbitrary messages. Implementations
// borrow their private key for the duration of a Sign call and never expose it.
type Identity interface {
	// MarshalPublicKey returns the raw public key, as published next to the
	// signed item.
	MarshalPublicKey() []byte
	Sign(msg []byte) ([]byte, error)
	Verifier() Verifier
}

// Verifier checks sig over msg against a raw public key. It must report false,
// rather than panic, on malformed keys or signatures.
type Verifier func(pub, msg, sig []byte) bool

// Package identity provides the signature schemes usable for mutable items.
//
// Ed25519 is the scheme expected by DHT nodes. MLDSA is offered for callers who
// run their own verifiers and want a post-quantum signature.
package identity

import "errors"

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrErasedKey  = errors.New("private key was erased")
)

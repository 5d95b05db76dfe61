// Package hypersign builds and signs the canonical payload that authenticates
// a mutable item in a DHT: a value of at most 1000 bytes, an optional salt
// selecting one of several slots under the same key, and a sequence number
// that only ever grows.
//
// The payload is the bencoded body of the {salt, seq, v} dictionary without
// the surrounding "d" and "e":
//
//	4:salt<len>:<salt>3:seqi<seq>e1:v<len>:<value>
//
// Any party holding (salt, seq, value) can rebuild it with Signable and check
// the signature against the publisher's public key.
package hypersign

import (
	"github.com/holiman/uint256"

	"github.com/oarkflow/hypersign/sign"
)

const (
	ValueMaxSize = 1000

	SaltMinSize     = 16
	SaltMaxSize     = 64
	DefaultSaltSize = 32

	SaltSeg  = "4:salt"
	SeqSeg   = "3:seqi"
	ValueSeg = "1:v"
)

// Options binds a key pair to the slot and version of the item being signed.
// Build a fresh one for each Sign call.
type Options struct {
	KeyPair sign.Identity
	// Salt selects the slot. Empty means the default, unsalted slot.
	Salt []byte
	// Seq is the item version. Nil means 0.
	Seq *uint256.Int
}

func (o *Options) Validate() error {
	if o == nil || o.KeyPair == nil {
		return ErrOptionsRequired
	}
	return nil
}

// Seq is a convenience for building a sequence number from a uint64.
func Seq(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}

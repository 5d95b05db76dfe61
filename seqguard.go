package hypersign

import (
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/oarkflow/hypersign/internal/cmap"
	"github.com/oarkflow/hypersign/sign"
)

// SeqGuard remembers the highest sequence number accepted for each
// (public key, salt) slot and refuses to go back. It is safe for concurrent
// use.
type SeqGuard struct {
	slots *cmap.ConcurrentMap[string, *uint256.Int]
}

func NewSeqGuard() *SeqGuard {
	return &SeqGuard{slots: cmap.New[string, *uint256.Int]()}
}

// Accept records seq for the slot unless it is lower than the one already
// recorded, in which case ErrStaleSequence is returned. Re-accepting the
// current sequence number is allowed.
func (g *SeqGuard) Accept(pub, salt []byte, seq *uint256.Int) error {
	if seq == nil {
		seq = new(uint256.Int)
	}
	return g.slots.Upsert(
		slotKey(pub, salt),
		func(highest *uint256.Int, ok bool) (*uint256.Int, error) {
			if ok && seq.Lt(highest) {
				return nil, fmt.Errorf(
					"%w: got %s, have %s",
					ErrStaleSequence, seq.Dec(), highest.Dec(),
				)
			}
			return seq.Clone(), nil
		},
	)
}

// Highest returns the latest sequence number accepted for the slot.
func (g *SeqGuard) Highest(pub, salt []byte) (*uint256.Int, bool) {
	seq, ok := g.slots.Get(slotKey(pub, salt))
	if !ok {
		return nil, false
	}
	return seq.Clone(), true
}

// Forget drops the slot, so that any sequence number is accepted next.
func (g *SeqGuard) Forget(pub, salt []byte) {
	g.slots.Remove(slotKey(pub, salt))
}

// VerifyAndAccept verifies the item and, only if the signature holds, records
// its sequence number. A valid item with a stale sequence number reports false
// together with ErrStaleSequence.
func (g *SeqGuard) VerifyAndAccept(
	verify sign.Verifier, value, salt []byte, seq *uint256.Int, sig, pub []byte,
) (bool, error) {
	ok, err := VerifyWith(verify, value, salt, seq, sig, pub)
	if err != nil || !ok {
		return false, err
	}
	if err := g.Accept(pub, salt, seq); err != nil {
		return false, err
	}
	return true, nil
}

// slotKey length-prefixes the public key so that no (pub, salt) pair can
// collide with another.
func slotKey(pub, salt []byte) string {
	return strconv.Itoa(len(pub)) + ":" + string(pub) + string(salt)
}

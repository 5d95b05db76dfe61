package hypersign

import (
	"bytes"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"github.com/zeebo/bencode"
)

// Signable returns the bytes that get signed for value under the given salt
// and sequence number. A nil seq encodes as 0 and an empty salt is omitted.
func Signable(value, salt []byte, seq *uint256.Int) ([]byte, error) {
	if len(value) > ValueMaxSize {
		return nil, fmt.Errorf(
			"%w: %d bytes, limit is %d", ErrValueSize, len(value), ValueMaxSize,
		)
	}
	if seq == nil {
		seq = new(uint256.Int)
	}

	var buf bytes.Buffer
	buf.Grow(len(SaltSeg) + len(salt) + len(SeqSeg) + len(ValueSeg) + len(value) + 96)
	if len(salt) > 0 {
		buf.WriteString(SaltSeg)
		if err := writeByteString(&buf, salt); err != nil {
			return nil, fmt.Errorf("encoding salt: %w", err)
		}
	}
	buf.WriteString(SeqSeg)
	buf.WriteString(seq.Dec())
	buf.WriteByte('e')
	buf.WriteString(ValueSeg)
	if err := writeByteString(&buf, value); err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}

	return buf.Bytes(), nil
}

// writeByteString writes b as a bencode string, <len>:<bytes>.
func writeByteString(w io.Writer, b []byte) error {
	return bencode.NewEncoder(w).Encode(string(b))
}

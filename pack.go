package huffman

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// WriteBits packs bits into bytes and writes them to w.  Bits are packed
// most significant bit first, and the final byte is padded with zero bits.
func WriteBits(w io.Writer, bits BitSequence) error {
	bw := bitio.NewWriter(w)
	err := bits.forEachWord(func(word uint64, n int) error {
		return bw.WriteBits(word>>uint(64-n), uint8(n))
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(bw.Close())
}

// ReadBits reads r until EOF, expanding each byte into 8 bits, most
// significant bit first.
//
// Padding cannot be told apart from data: the result is always a multiple
// of 8 bits long.  Use BitSequence.Prefix to drop the padding when the true
// length is known.
//
func ReadBits(r io.Reader) (BitSequence, error) {
	br := bitio.NewReader(r)
	var bits BitSequence
	for {
		b, err := br.ReadBits(8)
		if err == io.EOF {
			return bits, nil
		}
		if err != nil {
			return BitSequence{}, errors.WithStack(err)
		}
		bits.AppendByte(byte(b))
	}
}

// Pack is WriteBits to a byte slice.
func Pack(bits BitSequence) []byte {
	var buf bytes.Buffer
	buf.Grow(PackedLen(bits.Len()))
	err := WriteBits(&buf, bits)
	assert.Assertf(err == nil, "bytes.Buffer write failed: %v", err)
	return buf.Bytes()
}

// Unpack is ReadBits from a byte slice.
func Unpack(buf []byte) BitSequence {
	bits, err := ReadBits(bytes.NewReader(buf))
	assert.Assertf(err == nil, "bytes.Reader read failed: %v", err)
	return bits
}

// PackedLen returns the number of bytes needed to hold numBits bits.
func PackedLen(numBits int) int {
	return (numBits + 7) >> 3
}

package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BitSequence represents an ordered, growable sequence of bits.  The first
// bit appended is the first bit consumed, and the most significant bit of
// each packed byte.
//
// The zero value is an empty sequence ready for use.  Copying a BitSequence
// by value shares its storage; use Clone before appending to a copy.
//
type BitSequence struct {
	// words holds the bits, 64 per word, most significant bit first.  Bits
	// past size in the last word are always zero.
	words []uint64
	size  int
}

// ParseBitSequence constructs a BitSequence from a string of '0' and '1'
// characters.  It is the inverse of BitSequence.String.
func ParseBitSequence(str string) (BitSequence, error) {
	var bs BitSequence
	for index, ch := range str {
		switch ch {
		case '0':
			bs.AppendBit(false)
		case '1':
			bs.AppendBit(true)
		default:
			return BitSequence{}, errors.Errorf("invalid character %q at index %d in bit string", ch, index)
		}
	}
	return bs, nil
}

// MustParseBitSequence is like ParseBitSequence, but panics on error.
func MustParseBitSequence(str string) BitSequence {
	bs, err := ParseBitSequence(str)
	if err != nil {
		panic(err)
	}
	return bs
}

// Len returns the number of bits in the sequence.
func (bs BitSequence) Len() int {
	return bs.size
}

// At returns the i'th bit of the sequence.
func (bs BitSequence) At(i int) bool {
	assert.Assertf(i >= 0 && i < bs.size, "bit index %d out of range [0, %d)", i, bs.size)
	return bs.words[i>>6]&(uint64(1)<<(63-uint(i&63))) != 0
}

// AppendBit appends a single bit to the end of the sequence.
func (bs *BitSequence) AppendBit(bit bool) {
	var w uint64
	if bit {
		w = uint64(1) << 63
	}
	bs.appendWord(w, 1)
}

// Append appends every bit of other to the end of the sequence.
func (bs *BitSequence) Append(other BitSequence) {
	_ = other.forEachWord(func(w uint64, n int) error {
		bs.appendWord(w, n)
		return nil
	})
}

// AppendByte appends the 8 bits of b, most significant bit first.
func (bs *BitSequence) AppendByte(b byte) {
	bs.appendWord(uint64(b)<<56, 8)
}

// Clear empties the sequence, retaining its storage.
func (bs *BitSequence) Clear() {
	for i := range bs.words {
		bs.words[i] = 0
	}
	bs.words = bs.words[:0]
	bs.size = 0
}

// Clone returns a copy of the sequence that shares no storage with it.
func (bs BitSequence) Clone() BitSequence {
	return bs.Prefix(bs.size)
}

// Prefix returns a new sequence holding the first n bits of this one.
func (bs BitSequence) Prefix(n int) BitSequence {
	assert.Assertf(n >= 0 && n <= bs.size, "prefix length %d out of range [0, %d]", n, bs.size)
	numWords := (n + 63) >> 6
	out := BitSequence{words: make([]uint64, numWords), size: n}
	copy(out.words, bs.words[:numWords])
	if tail := n & 63; tail != 0 {
		out.words[numWords-1] &= ^uint64(0) << (64 - uint(tail))
	}
	return out
}

// HasPrefix returns true iff the first prefix.Len() bits of this sequence
// are equal to prefix.
func (bs BitSequence) HasPrefix(prefix BitSequence) bool {
	if prefix.size > bs.size {
		return false
	}
	return bs.Prefix(prefix.size).Equal(prefix)
}

// Equal returns true iff both sequences hold the same bits.
func (bs BitSequence) Equal(other BitSequence) bool {
	if bs.size != other.size {
		return false
	}
	numWords := (bs.size + 63) >> 6
	for i := 0; i < numWords; i++ {
		if bs.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String returns the sequence as a string of '0' and '1' characters.
func (bs BitSequence) String() string {
	var sb strings.Builder
	sb.Grow(bs.size)
	for i := 0; i < bs.size; i++ {
		if bs.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// appendWord appends the n most significant bits of w.
func (bs *BitSequence) appendWord(w uint64, n int) {
	assert.Assertf(n >= 0 && n <= 64, "word width %d out of range [0, 64]", n)
	if n == 0 {
		return
	}
	w &= ^uint64(0) << uint(64-n)

	off := uint(bs.size & 63)
	if off == 0 {
		bs.words = append(bs.words, w)
	} else {
		last := len(bs.words) - 1
		bs.words[last] &= ^uint64(0) << (64 - off)
		bs.words[last] |= w >> off
		if int(off)+n > 64 {
			bs.words = append(bs.words, w<<(64-off))
		}
	}
	bs.size += n
}

// forEachWord calls fn once per storage word, in order, with the number of
// valid bits in that word.  It stops at the first error.
func (bs BitSequence) forEachWord(fn func(w uint64, n int) error) error {
	remaining := bs.size
	for _, w := range bs.words {
		if remaining <= 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := fn(w, n); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

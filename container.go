package huffman

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Magic is the first 4 bytes of every Compress result.
const Magic = "HUF1"

// Compress encodes data in a self-describing format:
//
//     Magic            4 bytes
//     bit count        uvarint, length of the payload in bits
//     checksum         uint64 big-endian, xxhash64 of data
//     symbol count     uint16 big-endian, number of distinct symbols
//     frequencies      per symbol, in ascending order:
//                        symbol     1 byte
//                        frequency  uvarint
//     payload          packed bits, zero-padded to a whole byte
//
// Decompress rebuilds the same Tree from the frequencies, so the output can
// be decoded without the Tree that encoded it.
//
func Compress(data []byte) ([]byte, error) {
	freqs := CountFrequencies(data)
	numSymbols := freqs.Distinct()

	var bits BitSequence
	if numSymbols != 0 {
		_, codes, err := BuildTree(data)
		if err != nil {
			return nil, err
		}
		bits, err = Encode(data, codes)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	buf.Grow(len(Magic) + 2*binary.MaxVarintLen64 + 2 + numSymbols*4 + PackedLen(bits.Len()))
	buf.WriteString(Magic)

	var scratch [binary.MaxVarintLen64]byte
	buf.Write(scratch[:binary.PutUvarint(scratch[:], uint64(bits.Len()))])
	binary.BigEndian.PutUint64(scratch[:8], xxhash.Sum64(data))
	buf.Write(scratch[:8])
	binary.BigEndian.PutUint16(scratch[:2], uint16(numSymbols))
	buf.Write(scratch[:2])
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			buf.WriteByte(byte(symbol))
			buf.Write(scratch[:binary.PutUvarint(scratch[:], freq)])
		}
	}

	if err := WriteBits(&buf, bits); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(buf []byte) ([]byte, error) {
	h, payload, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}

	expectLen := PackedLen(int(h.numBits))
	if len(payload) < expectLen {
		return nil, errors.Wrapf(ErrTruncatedStream, "payload holds %d bytes, header requires %d", len(payload), expectLen)
	}
	if len(payload) > expectLen {
		return nil, errors.Wrapf(ErrBadHeader, "%d bytes of trailing data", len(payload)-expectLen)
	}

	var out []byte
	if h.numSymbols == 0 {
		if h.numBits != 0 {
			return nil, errors.Wrapf(ErrBadHeader, "%d payload bits with an empty alphabet", h.numBits)
		}
		out = []byte{}
	} else {
		tree, err := NewTree(h.freqs)
		if err != nil {
			return nil, err
		}
		if n, _ := tree.Codes().EncodedLen(h.freqs); n != h.numBits {
			return nil, errors.Wrapf(ErrBadHeader, "frequencies imply %d payload bits, header says %d", n, h.numBits)
		}
		bits := Unpack(payload).Prefix(int(h.numBits))
		out, err = Decode(bits, tree)
		if err != nil {
			return nil, err
		}
	}

	if uint64(len(out)) != h.freqs.Total() {
		return nil, errors.Wrapf(ErrChecksum, "decoded %d bytes, expected %d", len(out), h.freqs.Total())
	}
	if sum := xxhash.Sum64(out); sum != h.checksum {
		return nil, errors.Wrapf(ErrChecksum, "expected %016x, got %016x", h.checksum, sum)
	}
	return out, nil
}

type header struct {
	numBits    uint64
	checksum   uint64
	numSymbols int
	freqs      FrequencyTable
}

func parseHeader(buf []byte) (header, []byte, error) {
	var h header

	if !bytes.HasPrefix(buf, []byte(Magic)) {
		return h, nil, errors.Wrap(ErrBadHeader, "missing magic number")
	}
	r := bytes.NewReader(buf[len(Magic):])

	numBits, err := binary.ReadUvarint(r)
	if err != nil {
		return h, nil, errors.Wrapf(ErrBadHeader, "bit count: %v", err)
	}

	// Every occurrence of every symbol costs at least one payload bit, so
	// the payload size bounds everything else in the header.
	if maxBits := uint64(len(buf)) * 8; numBits > maxBits {
		return h, nil, errors.Wrapf(ErrBadHeader, "bit count %d exceeds input size", numBits)
	}
	h.numBits = numBits

	var fixed [10]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return h, nil, errors.Wrapf(ErrBadHeader, "checksum and symbol count: %v", err)
	}
	h.checksum = binary.BigEndian.Uint64(fixed[0:8])
	h.numSymbols = int(binary.BigEndian.Uint16(fixed[8:10]))
	if h.numSymbols > NumSymbols {
		return h, nil, errors.Wrapf(ErrBadHeader, "symbol count %d exceeds %d", h.numSymbols, NumSymbols)
	}

	lastSymbol := InvalidSymbol
	for i := 0; i < h.numSymbols; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return h, nil, errors.Wrapf(ErrBadHeader, "symbol #%d: %v", i, err)
		}
		symbol := Symbol(b)
		if symbol <= lastSymbol {
			return h, nil, errors.Wrapf(ErrBadHeader, "symbol #%d (%d) out of order", i, symbol)
		}
		freq, err := binary.ReadUvarint(r)
		if err != nil {
			return h, nil, errors.Wrapf(ErrBadHeader, "frequency of symbol %d: %v", symbol, err)
		}
		if freq == 0 || freq > numBits {
			return h, nil, errors.Wrapf(ErrBadHeader, "frequency %d of symbol %d out of range", freq, symbol)
		}
		h.freqs[symbol] = freq
		lastSymbol = symbol
	}

	return h, buf[len(buf)-r.Len():], nil
}

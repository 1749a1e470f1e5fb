package huffman

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestCompress_RoundTrip(t *testing.T) {
	inputs := testInputs()
	inputs["empty"] = []byte{}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			compressed, err := Compress(data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !bytes.HasPrefix(compressed, []byte(Magic)) {
				t.Errorf("missing magic number: %#v", compressed)
			}

			decompressed, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(data, decompressed) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, decompressed)
			}
		})
	}
}

func TestCompress_Layout(t *testing.T) {
	compressed, err := Compress([]byte("aaaa"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// Magic, 4 bits, 8 checksum bytes, 1 symbol, 'a' x 4, one payload byte.
	if n := len(compressed); n != 4+1+8+2+2+1 {
		t.Fatalf("expected 18 bytes, got %d: %#v", n, compressed)
	}
	if compressed[4] != 4 {
		t.Errorf("expected bit count 4, got %d", compressed[4])
	}
	if !bytes.Equal(compressed[13:], []byte{0x00, 0x01, 'a', 0x04, 0x00}) {
		t.Errorf("wrong symbol table and payload: %#v", compressed[13:])
	}
}

func TestCompress_Shrinks(t *testing.T) {
	data := []byte("abracadabra abracadabra abracadabra abracadabra abracadabra")
	compressed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(compressed) >= len(data) {
		t.Errorf("expected fewer than %d bytes, got %d", len(data), len(compressed))
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	good, err := Compress([]byte("hello world"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	corrupt := func(fn func(buf []byte) []byte) []byte {
		buf := append([]byte(nil), good...)
		return fn(buf)
	}

	type testRow struct {
		name   string
		input  []byte
		expect error
	}

	testData := [...]testRow{
		{
			name:   "empty",
			input:  nil,
			expect: ErrBadHeader,
		},
		{
			name:   "bad magic",
			input:  corrupt(func(buf []byte) []byte { buf[0] = 'X'; return buf }),
			expect: ErrBadHeader,
		},
		{
			name:   "short header",
			input:  good[:10],
			expect: ErrBadHeader,
		},
		{
			name:   "truncated payload",
			input:  good[:len(good)-1],
			expect: ErrTruncatedStream,
		},
		{
			name:   "trailing data",
			input:  append(append([]byte(nil), good...), 0x00),
			expect: ErrBadHeader,
		},
		{
			name:   "wrong checksum",
			input:  corrupt(func(buf []byte) []byte { buf[5] ^= 0xff; return buf }),
			expect: ErrChecksum,
		},
		{
			name:   "wrong bit count",
			input:  corrupt(func(buf []byte) []byte { buf[4]--; return buf }),
			expect: ErrBadHeader,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(row.input)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if out != nil {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

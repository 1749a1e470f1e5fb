package huffman

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteBitsFile_ReadBitsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "encoded.bin")

	data := []byte("abracadabra")
	tree, codes, _ := BuildTree(data)
	bits, _ := Encode(data, codes)

	if err := WriteBitsFile(path, bits); err != nil {
		t.Fatalf("WriteBitsFile failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile failed: %v", err)
	}
	expectRaw := []byte{0x6e, 0x8a, 0xdc}
	if !bytes.Equal(expectRaw, raw) {
		t.Errorf("wrong file contents:\n\texpect: %#v\n\tactual: %#v", expectRaw, raw)
	}

	readBack, err := ReadBitsFile(path)
	if err != nil {
		t.Fatalf("ReadBitsFile failed: %v", err)
	}
	if n := readBack.Len(); n != 24 {
		t.Errorf("expected 24 bits, got %d", n)
	}

	decoded, err := Decode(readBack.Prefix(bits.Len()), tree)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(data, decoded) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, decoded)
	}
}

func TestReadBytesFile_OpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := ReadBytesFile(path)
	if !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected cause os.ErrNotExist, got %v", err)
	}

	var se *StreamError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StreamError, got %T", err)
	}
	if se.Op != "open" || se.Path != path {
		t.Errorf("expected open of %q, got %s of %q", path, se.Op, se.Path)
	}
}

func TestWriteBytesFile_OpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.bin")

	err := WriteBytesFile(path, []byte("x"))
	if !errors.Is(err, ErrStreamOpen) {
		t.Fatalf("expected ErrStreamOpen, got %v", err)
	}
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.bin")
	cause := errors.New("producer failed")

	err := WriteFile(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return cause
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected producer error, got %v", err)
	}
	if errors.Is(err, ErrStreamOpen) {
		t.Errorf("write failure reported as ErrStreamOpen")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected %q to be removed, stat returned %v", path, statErr)
	}
}

func TestWriteBytesFile_ReadBytesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	data := []byte("The quick brown fox jumps over the lazy dog.\n")

	if err := WriteBytesFile(path, data); err != nil {
		t.Fatalf("WriteBytesFile failed: %v", err)
	}
	actual, err := ReadBytesFile(path)
	if err != nil {
		t.Fatalf("ReadBytesFile failed: %v", err)
	}
	if !bytes.Equal(data, actual) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", data, actual)
	}
}

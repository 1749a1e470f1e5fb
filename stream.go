package huffman

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteFile creates (or truncates) the file at path, passes it to fn, and
// closes it.  If anything fails, the file is removed so that no partial
// output is left behind.
func WriteFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(&StreamError{Op: "open", Path: path, Err: err})
	}

	needClose := true
	defer func() {
		if needClose {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		return errors.WithStack(&StreamError{Op: "write", Path: path, Err: err})
	}
	if err = bw.Flush(); err != nil {
		return errors.WithStack(&StreamError{Op: "write", Path: path, Err: err})
	}

	needClose = false
	if err = f.Close(); err != nil {
		return errors.WithStack(&StreamError{Op: "close", Path: path, Err: err})
	}
	return nil
}

// ReadFile opens the file at path, passes it to fn, and closes it.
func ReadFile(path string, fn func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(&StreamError{Op: "open", Path: path, Err: err})
	}
	defer f.Close()

	if err := fn(bufio.NewReader(f)); err != nil {
		return errors.WithStack(&StreamError{Op: "read", Path: path, Err: err})
	}
	return nil
}

// WriteBytesFile writes data to the file at path.
func WriteBytesFile(path string, data []byte) error {
	return WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ReadBytesFile returns the contents of the file at path.
func ReadBytesFile(path string) ([]byte, error) {
	var data []byte
	err := ReadFile(path, func(r io.Reader) error {
		var err error
		data, err = io.ReadAll(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteBitsFile packs bits into the file at path.
func WriteBitsFile(path string, bits BitSequence) error {
	return WriteFile(path, func(w io.Writer) error {
		return WriteBits(w, bits)
	})
}

// ReadBitsFile unpacks the contents of the file at path.
func ReadBitsFile(path string) (BitSequence, error) {
	var bits BitSequence
	err := ReadFile(path, func(r io.Reader) error {
		var err error
		bits, err = ReadBits(r)
		return err
	})
	if err != nil {
		return BitSequence{}, err
	}
	return bits, nil
}

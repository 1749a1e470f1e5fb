package huffman

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for a
	// frequency table with no symbols in it.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffman: symbol not present in code table")

	// ErrTruncatedStream is returned when a bit sequence ends partway
	// through a code.
	ErrTruncatedStream = errors.New("huffman: bit stream ends in the middle of a code")

	// ErrInvalidCode is returned when a bit sequence takes a branch that
	// does not exist in the tree.
	ErrInvalidCode = errors.New("huffman: bit stream does not match any code")

	// ErrStreamOpen is matched by every *StreamError whose Op is "open".
	ErrStreamOpen = errors.New("huffman: failed to open stream")

	// ErrBadHeader is returned by Decompress for malformed input.
	ErrBadHeader = errors.New("huffman: malformed header")

	// ErrChecksum is returned by Decompress when the decoded data does not
	// match the checksum recorded at compression time.
	ErrChecksum = errors.New("huffman: checksum mismatch")
)

// UnknownSymbolError reports an input byte that has no code.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %d at offset %d not present in code table", err.Symbol, err.Offset)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)

// StreamError reports a failure of the byte-stream collaborator.
type StreamError struct {
	Op   string
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err *StreamError) Error() string {
	return fmt.Sprintf("huffman: %s %q: %v", err.Op, err.Path, err.Err)
}

// Unwrap returns the underlying cause.
func (err *StreamError) Unwrap() error {
	return err.Err
}

// Is returns true for ErrStreamOpen if this error happened while opening.
func (err *StreamError) Is(target error) bool {
	return target == ErrStreamOpen && err.Op == "open"
}

var _ error = (*StreamError)(nil)

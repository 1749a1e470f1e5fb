package huffman

import (
	"github.com/pkg/errors"
)

// Encoder maps symbols to their codes.
type Encoder struct {
	codes CodeTable
}

// Init initializes this Encoder with the given code table.
func (e *Encoder) Init(codes CodeTable) {
	*e = Encoder{codes: codes}
}

// Encode returns the code for a single Symbol.
func (e Encoder) Encode(symbol Symbol) (BitSequence, error) {
	code, found := e.codes.Lookup(symbol)
	if !found {
		return BitSequence{}, errors.WithStack(&UnknownSymbolError{Symbol: symbol, Offset: -1})
	}
	return code, nil
}

// EncodeTo appends the codes for every byte of data to out, in order.
//
// If some byte of data has no code, EncodeTo returns an *UnknownSymbolError
// and out is left holding the codes for the bytes before it.
//
func (e Encoder) EncodeTo(out *BitSequence, data []byte) error {
	for offset, b := range data {
		code, found := e.codes.lookup(Symbol(b))
		if !found {
			return errors.WithStack(&UnknownSymbolError{Symbol: Symbol(b), Offset: offset})
		}
		out.Append(code)
	}
	return nil
}

// CodeTable returns the table this Encoder was initialized with.
func (e Encoder) CodeTable() CodeTable {
	return e.codes
}

// Encode concatenates the codes for every byte of data.  It fails with an
// *UnknownSymbolError, matching ErrUnknownSymbol, if some byte has no code.
func Encode(data []byte, codes CodeTable) (BitSequence, error) {
	var e Encoder
	e.Init(codes)

	var out BitSequence
	if err := e.EncodeTo(&out, data); err != nil {
		return BitSequence{}, err
	}
	return out, nil
}

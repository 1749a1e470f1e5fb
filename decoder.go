package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder walks a Tree one bit at a time.  It is either at the root, or
// partway down the path to a leaf.
type Decoder struct {
	tree *Tree
	cur  NodeID
}

// Init initializes this Decoder to walk the given tree, starting at the root.
func (d *Decoder) Init(tree *Tree) {
	assert.Assertf(tree != nil, "Decoder.Init called with nil *Tree")
	*d = Decoder{tree: tree, cur: tree.Root()}
}

// Reset returns this Decoder to the root.
func (d *Decoder) Reset() {
	d.cur = d.tree.Root()
}

// AtRoot returns true iff this Decoder is not partway through a code.
func (d *Decoder) AtRoot() bool {
	return d.cur == d.tree.Root()
}

// Step follows one branch of the tree: left for a 0 bit, right for a 1 bit.
//
// If the branch reaches a leaf, Step returns its symbol and the Decoder goes
// back to the root.  Otherwise Step returns InvalidSymbol.
//
// If the branch does not exist, Step returns ErrInvalidCode and the Decoder
// goes back to the root.
//
func (d *Decoder) Step(bit bool) (Symbol, error) {
	next := d.tree.Child(d.cur, bit)
	if next == NoNode {
		d.Reset()
		return InvalidSymbol, errors.WithStack(ErrInvalidCode)
	}

	if d.tree.IsLeaf(next) {
		d.Reset()
		return d.tree.Symbol(next), nil
	}

	d.cur = next
	return InvalidSymbol, nil
}

// DecodeTo steps through every bit of bits, appending each decoded symbol to
// out.  It does not require the Decoder to end at the root; call Finish for
// that.
func (d *Decoder) DecodeTo(out []byte, bits BitSequence) ([]byte, error) {
	n := bits.Len()
	for i := 0; i < n; i++ {
		symbol, err := d.Step(bits.At(i))
		if err != nil {
			return out, errors.Wrapf(err, "at bit %d", i)
		}
		if symbol != InvalidSymbol {
			out = append(out, byte(symbol))
		}
	}
	return out, nil
}

// Finish returns ErrTruncatedStream if this Decoder is partway through a
// code.
func (d *Decoder) Finish() error {
	if !d.AtRoot() {
		return errors.WithStack(ErrTruncatedStream)
	}
	return nil
}

// Decode decodes bits using tree, which must be the tree whose codes
// produced bits.  It fails with ErrTruncatedStream if bits ends partway
// through a code, or with ErrInvalidCode if bits follows a branch that the
// tree does not have.
func Decode(bits BitSequence, tree *Tree) ([]byte, error) {
	var d Decoder
	d.Init(tree)

	// Every code is at least one bit long.
	hint := uint64(bits.Len())
	if w := tree.Weight(); w < hint {
		hint = w
	}

	out, err := d.DecodeTo(make([]byte, 0, hint), bits)
	if err != nil {
		return nil, err
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}

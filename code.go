package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its code, the path from the root of a Tree
// to that Symbol's leaf (left = 0, right = 1).  The codes are prefix-free.
//
// The zero value is an empty table with no codes in it.
//
type CodeTable struct {
	codes    []BitSequence
	numCodes int
	minSize  int
	maxSize  int
}

// Codes walks the tree and returns the code for every leaf.
func (t *Tree) Codes() CodeTable {
	ct := CodeTable{codes: make([]BitSequence, NumSymbols)}
	t.walk(func(id NodeID, path BitSequence) {
		n := t.nodes[id]
		if !n.isLeaf() {
			return
		}

		size := path.Len()
		ct.codes[n.symbol] = path
		if ct.numCodes == 0 {
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
		ct.numCodes++
	})
	return ct
}

// Lookup returns a copy of the code for symbol.  The second result is false
// if symbol has no code.
func (ct CodeTable) Lookup(symbol Symbol) (BitSequence, bool) {
	code, found := ct.lookup(symbol)
	if !found {
		return BitSequence{}, false
	}
	return code.Clone(), true
}

// Has returns true iff symbol has a code.
func (ct CodeTable) Has(symbol Symbol) bool {
	_, found := ct.lookup(symbol)
	return found
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return ct.numCodes
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// EncodedLen returns the number of bits that Encode would produce for an
// input with the given frequencies, or false if some symbol in freqs has no
// code.
func (ct CodeTable) EncodedLen(freqs FrequencyTable) (uint64, bool) {
	var total uint64
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		freq := freqs[symbol]
		if freq == 0 {
			continue
		}
		code, found := ct.lookup(symbol)
		if !found {
			return 0, false
		}
		total += freq * uint64(code.Len())
	}
	return total, true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a code are omitted.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if code, found := ct.lookup(symbol); found {
			fmt.Fprintf(&buf, "\tCode(%d) = %q\n", symbol, code.String())
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct CodeTable) lookup(symbol Symbol) (BitSequence, bool) {
	if ct.codes == nil || !symbol.IsValid() {
		return BitSequence{}, false
	}
	code := ct.codes[symbol]
	return code, code.Len() != 0
}

package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies builds a FrequencyTable from data in a single pass.
func CountFrequencies(data []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// Count returns the number of occurrences of symbol.
func (freqs *FrequencyTable) Count(symbol Symbol) uint64 {
	if !symbol.IsValid() {
		return 0
	}
	return freqs[symbol]
}

// Distinct returns the number of symbols with a non-zero count.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, which is the length of the input.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols with a count of zero are omitted.
func (freqs *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

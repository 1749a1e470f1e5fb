// Package huffman implements Huffman coding over the byte alphabet.
//
// The pipeline runs: CountFrequencies → NewTree → Tree.Codes → Encode →
// Pack, and back again via Unpack → Decode.  Decoding requires the same
// Tree that produced the codes; Compress and Decompress wrap the payload
// in a small header carrying the frequency table, so that the Tree can be
// rebuilt on the receiving end.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffman

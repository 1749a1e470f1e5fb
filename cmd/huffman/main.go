// Command huffman compresses and decompresses files with Huffman coding.
//
// Usage:
//
//     huffman -i input.txt -o encoded.huf          # compress
//     huffman -d -i encoded.huf -o decoded.txt     # decompress
//     huffman -raw -i input.txt -o encoded.bin -decoded decoded.txt
//
// With -raw, the output file holds only the packed payload, with no header.
// It can only be decoded by the same run that wrote it, which reads it back
// and decodes it with the in-memory tree.
//
package main

import (
	"flag"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/bytehuffman"
)

var (
	flagDecompress = flag.Bool("d", false, "decompress instead of compressing")
	flagInput      = flag.String("i", "", "input file")
	flagOutput     = flag.String("o", "", "output file")
	flagRaw        = flag.Bool("raw", false, "write a bare payload, read it back, and decode it in the same run")
	flagDecoded    = flag.String("decoded", "", "with -raw, where to write the decoded round trip")
	flagVerbose    = flag.Bool("v", false, "dump the code table to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffman: ")
	flag.Parse()

	if *flagInput == "" || *flagOutput == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *flagRaw && *flagDecompress {
		log.Fatal("-raw and -d are mutually exclusive")
	}
	if *flagRaw && *flagDecoded == "" {
		log.Fatal("-raw requires -decoded")
	}

	var err error
	switch {
	case *flagRaw:
		err = runRaw(*flagInput, *flagOutput, *flagDecoded)
	case *flagDecompress:
		err = runDecompress(*flagInput, *flagOutput)
	default:
		err = runCompress(*flagInput, *flagOutput)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func runCompress(inPath, outPath string) error {
	data, err := huffman.ReadBytesFile(inPath)
	if err != nil {
		return err
	}

	if *flagVerbose && len(data) != 0 {
		_, codes, err := huffman.BuildTree(data)
		if err != nil {
			return err
		}
		_, _ = codes.Dump(os.Stderr)
	}

	out, err := huffman.Compress(data)
	if err != nil {
		return err
	}
	if err := huffman.WriteBytesFile(outPath, out); err != nil {
		return err
	}
	log.Printf("compressed %s: %d bytes -> %d bytes", inPath, len(data), len(out))
	return nil
}

func runDecompress(inPath, outPath string) error {
	data, err := huffman.ReadBytesFile(inPath)
	if err != nil {
		return err
	}
	out, err := huffman.Decompress(data)
	if err != nil {
		return err
	}
	if err := huffman.WriteBytesFile(outPath, out); err != nil {
		return err
	}
	log.Printf("decompressed %s: %d bytes -> %d bytes", inPath, len(data), len(out))
	return nil
}

func runRaw(inPath, encodedPath, decodedPath string) error {
	data, err := huffman.ReadBytesFile(inPath)
	if err != nil {
		return err
	}

	tree, codes, err := huffman.BuildTree(data)
	if err != nil {
		return err
	}
	if *flagVerbose {
		_, _ = tree.Dump(os.Stderr)
		_, _ = codes.Dump(os.Stderr)
	}

	bits, err := huffman.Encode(data, codes)
	if err != nil {
		return err
	}
	if err := huffman.WriteBitsFile(encodedPath, bits); err != nil {
		return err
	}

	readBack, err := huffman.ReadBitsFile(encodedPath)
	if err != nil {
		return err
	}

	// The file carries no bit count; only this run knows where the padding
	// starts.
	decoded, err := huffman.Decode(readBack.Prefix(bits.Len()), tree)
	if err != nil {
		return err
	}
	if err := huffman.WriteBytesFile(decodedPath, decoded); err != nil {
		return err
	}
	log.Printf("encoded %s: %d bytes -> %d bits (%d bytes), decoded %d bytes",
		inPath, len(data), bits.Len(), huffman.PackedLen(bits.Len()), len(decoded))
	return nil
}

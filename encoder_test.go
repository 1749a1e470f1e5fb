package huffman

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEncode(t *testing.T) {
	data := []byte("abracadabra")
	_, codes, err := BuildTree(data)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	bits, err := Encode(data, codes)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expect := "0" + "110" + "111" + "0" + "100" + "0" + "101" + "0" + "110" + "111" + "0"
	if actual := bits.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if n := bits.Len(); n >= 8*len(data) {
		t.Errorf("expected fewer than %d bits, got %d", 8*len(data), n)
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	_, codes, err := BuildTree([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	bits, err := Encode([]byte("abcxa"), codes)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if bits.Len() != 0 {
		t.Errorf("expected no output, got %q", bits.String())
	}

	var use *UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError, got %T", err)
	}
	if use.Symbol != 'x' || use.Offset != 3 {
		t.Errorf("expected symbol 'x' at offset 3, got symbol %d at offset %d", use.Symbol, use.Offset)
	}
}

func TestEncoder_Encode(t *testing.T) {
	_, codes, err := BuildTree([]byte("hello world"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var e Encoder
	e.Init(codes)

	type testRow struct {
		symbol Symbol
		code   string
	}

	testData := [...]testRow{
		{symbol: ' ', code: "1110"},
		{symbol: 'd', code: "1111"},
		{symbol: 'e', code: "000"},
		{symbol: 'h', code: "001"},
		{symbol: 'l', code: "10"},
		{symbol: 'o', code: "110"},
		{symbol: 'r', code: "010"},
		{symbol: 'w', code: "011"},
	}
	for _, row := range testData {
		code, err := e.Encode(row.symbol)
		if err != nil {
			t.Errorf("Encode(%d): unexpected error %v", row.symbol, err)
			continue
		}
		if actual := code.String(); actual != row.code {
			t.Errorf("Encode(%d): expected %q, got %q", row.symbol, row.code, actual)
		}
	}

	if _, err := e.Encode('z'); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Encode('z'): expected ErrUnknownSymbol, got %v", err)
	}
}

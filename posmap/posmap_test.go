package posmap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/packview/packview/encode"
	"github.com/packview/packview/msgpack"
)

func render(t *testing.T, data []byte) string {
	t.Helper()
	node, err := msgpack.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := encode.Encode(node, &sb); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

// {"hello": 123} as a fixmap with a fixstr key and a fixint value.
var helloWire = []byte{0x81, 0xa5, 'h', 'e', 'l', 'l', 'o', 0x7b}

func TestBuildSingleEntryMap(t *testing.T) {
	text := render(t, helloWire)
	if text != "{\n  \"hello\": 123\n}" {
		t.Fatalf("rendered %q", text)
	}
	maps := Build(helloWire, text)
	want := []Mapping{
		{TextStart: 4, TextEnd: 11, ByteStart: 1, ByteEnd: 7, Kind: KeyKind},
		{TextStart: 13, TextEnd: 16, ByteStart: 7, ByteEnd: 8, Kind: ValueKind},
	}
	if diff := cmp.Diff(want, maps); diff != "" {
		t.Errorf("mappings mismatch (-want +got):\n%s", diff)
	}
	if got := text[4:11]; got != `"hello"` {
		t.Errorf("key text %q", got)
	}
	if got := text[13:16]; got != "123" {
		t.Errorf("value text %q", got)
	}
}

// Selecting part of a key resolves to the key's whole wire encoding.
func TestByteRangeForPartialSelection(t *testing.T) {
	text := render(t, helloWire)
	maps := Build(helloWire, text)
	sel := strings.Index(text, "hel")
	start, end, ok := ByteRangeForTextRange(maps, sel, sel+3)
	if !ok {
		t.Fatal("no byte range for selection")
	}
	if start != 1 || end != 7 {
		t.Errorf("byte range %d..%d want 1..7", start, end)
	}
}

func TestByteRangeSpansTokens(t *testing.T) {
	text := render(t, helloWire)
	maps := Build(helloWire, text)
	// from inside the key through the value
	start, end, ok := ByteRangeForTextRange(maps, 5, 14)
	if !ok {
		t.Fatal("no byte range for selection")
	}
	if start != 1 || end != 8 {
		t.Errorf("byte range %d..%d want 1..8", start, end)
	}
}

func TestByteRangeMisses(t *testing.T) {
	text := render(t, helloWire)
	maps := Build(helloWire, text)
	// the opening brace maps to nothing
	if _, _, ok := ByteRangeForTextRange(maps, 0, 1); ok {
		t.Error("container punctuation should not resolve")
	}
}

func TestBuildNested(t *testing.T) {
	// {"a": [1, "x"], "b": null}
	data := []byte{
		0x82,
		0xa1, 'a', 0x92, 0x01, 0xa1, 'x',
		0xa1, 'b', 0xc0,
	}
	text := render(t, data)
	maps := Build(data, text)
	if len(maps) != 5 {
		t.Fatalf("got %d mappings:\n%v", len(maps), maps)
	}
	kinds := []Kind{KeyKind, ValueKind, ValueKind, KeyKind, ValueKind}
	for i, m := range maps {
		if m.Kind != kinds[i] {
			t.Errorf("mapping %d kind %s want %s", i, m.Kind, kinds[i])
		}
		if text[m.TextStart:m.TextEnd] == "" {
			t.Errorf("mapping %d covers no text", i)
		}
	}
	// the 1 inside the array sits at wire offset 4
	one := maps[1]
	if one.ByteStart != 4 || one.ByteEnd != 5 {
		t.Errorf("array element bytes %d..%d want 4..5", one.ByteStart, one.ByteEnd)
	}
	if text[one.TextStart:one.TextEnd] != "1" {
		t.Errorf("array element text %q", text[one.TextStart:one.TextEnd])
	}
}

func TestBuildBinaryPerByte(t *testing.T) {
	// bin8 with payload {1, 255}
	data := []byte{0xc4, 0x02, 0x01, 0xff}
	text := render(t, data)
	maps := Build(data, text)
	want := []Mapping{
		{
			TextStart: strings.Index(text, "1"),
			TextEnd:   strings.Index(text, "1") + 1,
			ByteStart: 2, ByteEnd: 3, Kind: ValueKind,
		},
		{
			TextStart: strings.Index(text, "255"),
			TextEnd:   strings.Index(text, "255") + 3,
			ByteStart: 3, ByteEnd: 4, Kind: ValueKind,
		},
	}
	if diff := cmp.Diff(want, maps); diff != "" {
		t.Errorf("mappings mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDesyncReturnsNil(t *testing.T) {
	text := render(t, helloWire)
	if maps := Build(helloWire, text+"x"); maps != nil {
		t.Error("trailing text should desync")
	}
	if maps := Build(helloWire, strings.Replace(text, "123", "124", 1)); maps != nil {
		t.Error("token mismatch should desync")
	}
	if maps := Build(helloWire[:4], text); maps != nil {
		t.Error("truncated wire should desync")
	}
	if maps := Build([]byte{0xc1}, "null"); maps != nil {
		t.Error("bad marker should desync")
	}
	// bin8 payload {1, 255} against text naming the wrong byte value
	bin := []byte{0xc4, 0x02, 0x01, 0xff}
	binText := render(t, bin)
	if maps := Build(bin, strings.Replace(binText, "255", "254", 1)); maps != nil {
		t.Error("binary byte mismatch should desync")
	}
	if maps := Build(bin[:3], binText); maps != nil {
		t.Error("truncated binary payload should desync")
	}
}

func TestHexCharRange(t *testing.T) {
	hts := []struct {
		bs, be int
		cs, ce int
	}{
		{bs: 0, be: 1, cs: 0, ce: 2},
		{bs: 1, be: 7, cs: 3, ce: 20},
		{bs: 0, be: 0, cs: 0, ce: 0},
		{bs: 2, be: 4, cs: 6, ce: 11},
	}
	for _, ht := range hts {
		cs, ce := HexCharRange(ht.bs, ht.be)
		if cs != ht.cs || ce != ht.ce {
			t.Errorf("HexCharRange(%d, %d): got %d, %d want %d, %d",
				ht.bs, ht.be, cs, ce, ht.cs, ht.ce)
		}
	}
}

func TestEmptyContainers(t *testing.T) {
	for _, data := range [][]byte{{0x80}, {0x90}, {0xc4, 0x00}} {
		text := render(t, data)
		maps := Build(data, text)
		if len(maps) != 0 {
			t.Errorf("Build(% x): %d mappings for empty container", data, len(maps))
		}
	}
}

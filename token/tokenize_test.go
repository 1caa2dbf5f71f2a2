package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var errAny = errors.New("any error")

type tokenizeTest struct {
	in    string
	types []TokenType
	e     error
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{in: `null`, types: []TokenType{TNull}},
		{in: `true`, types: []TokenType{TTrue}},
		{in: `false`, types: []TokenType{TFalse}},
		{in: `22`, types: []TokenType{TInteger}},
		{in: `-22`, types: []TokenType{TInteger}},
		{in: `1.5`, types: []TokenType{TFloat}},
		{in: `1e14`, types: []TokenType{TFloat}},
		{in: `"hello"`, types: []TokenType{TString}},
		{in: `"he\"llo"`, types: []TokenType{TString}},
		{in: `"é"`, types: []TokenType{TString}},
		{in: `[]`, types: []TokenType{TLSquare, TRSquare}},
		{in: `[1, 2]`, types: []TokenType{TLSquare, TInteger, TComma, TInteger, TRSquare}},
		{
			in: `{"a": 1}`,
			types: []TokenType{
				TLCurl, TString, TColon, TInteger, TRCurl,
			},
		},
		{
			in: "{\n  \"a\": [true, null]\n}",
			types: []TokenType{
				TLCurl, TString, TColon, TLSquare, TTrue, TComma, TNull,
				TRSquare, TRCurl,
			},
		},
		{in: ``, e: ErrEmptyDoc},
		{in: " \n\t ", e: ErrEmptyDoc},
		{in: `"abc`, e: ErrUnterminated},
		{in: `01`, e: ErrNumberLeadingZero},
		{in: `tru`, e: errAny},
		{in: `nul`, e: errAny},
		{in: `@`, e: errAny},
	}
	for _, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if tt.e != nil {
			if err == nil {
				t.Errorf("Tokenize(%q): expected error %v", tt.in, tt.e)
			} else if tt.e != errAny && !errors.Is(err, tt.e) {
				t.Errorf("Tokenize(%q): got %v want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Tokenize(%q): %s", tt.in, err)
			continue
		}
		types := make([]TokenType, len(toks))
		for i := range toks {
			types[i] = toks[i].Type
		}
		if diff := cmp.Diff(tt.types, types); diff != "" {
			t.Errorf("Tokenize(%q) type mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeStringDecodes(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`"a\nbé😀"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens", len(toks))
	}
	got := toks[0].String()
	want := "a\nbé😀"
	if got != want {
		t.Errorf("decoded %q want %q", got, want)
	}
}

func TestTokenizeErrPos(t *testing.T) {
	_, err := Tokenize(nil, []byte("[1,\n \"ab"))
	if err == nil {
		t.Fatal("expected error")
	}
	te := &TokenizeErr{}
	if !errors.As(err, &te) {
		t.Fatalf("not a TokenizeErr: %v", err)
	}
	if te.Pos.I != 5 {
		t.Errorf("error offset %d want 5", te.Pos.I)
	}
	if l, c := te.Pos.LineCol(); l != 1 || c != 1 {
		t.Errorf("error at line %d col %d want 1, 1", l, c)
	}
}

package parse

import (
	"errors"
	"testing"

	"github.com/packview/packview/ir"
)

type parseTest struct {
	in   string
	fail bool
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-7`},
		{in: `1.5`},
		{in: `1e14`},
		{in: `"hello"`},
		{in: `[]`},
		{in: `[1]`},
		{in: `[[]]`},
		{in: `[1,[2,[3]]]`},
		{in: `{}`},
		{in: `{"a": 1}`},
		{in: `{"a": {"b": 9}, "c": {"d": 8}}`},
		{in: `{"a": [1,2], "f[0]": [0,1,2,"three"]}`},
		{in: "{\n  \"a\": [\n    true,\n    null\n  ]\n}"},
		{in: `{"dup": 1, "dup": 2}`},
		{in: ``, fail: true},
		{in: `[1`, fail: true},
		{in: `[1,]`, fail: true},
		{in: `{"a"}`, fail: true},
		{in: `{"a": }`, fail: true},
		{in: `{1: 2}`, fail: true},
		{in: `{"a": 1,}`, fail: true},
		{in: `1 2`, fail: true},
		{in: `hello`, fail: true},
	}
	for _, pt := range pts {
		y, err := Parse([]byte(pt.in))
		if pt.fail {
			if err == nil {
				t.Errorf("Parse(%q): expected error", pt.in)
			} else if !errors.Is(err, ErrParse) && pt.in != `` && pt.in != `hello` {
				t.Errorf("Parse(%q): error %v does not wrap ErrParse", pt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %s", pt.in, err)
			continue
		}
		if y == nil {
			t.Errorf("Parse(%q): nil node", pt.in)
		}
	}
}

func TestParseNumberKinds(t *testing.T) {
	y, err := Parse([]byte(`[1, -1, 1.0, 18446744073709551615, 18446744073709551616, 1e3]`))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(y.Values); n != 6 {
		t.Fatalf("got %d values", n)
	}
	if u := y.Values[0].Uint64; u == nil || *u != 1 {
		t.Error("1 did not keep unsigned kind")
	}
	if i := y.Values[1].Int64; i == nil || *i != -1 {
		t.Error("-1 did not keep signed kind")
	}
	if f := y.Values[2].Float64; f == nil || *f != 1.0 {
		t.Error("1.0 did not parse as float")
	}
	if y.Values[2].Uint64 != nil {
		t.Error("1.0 also carries an integer")
	}
	if u := y.Values[3].Uint64; u == nil || *u != 1<<64-1 {
		t.Error("max uint64 did not keep exact magnitude")
	}
	if d := y.Values[4].Digits; d != "18446744073709551616" {
		t.Errorf("out-of-range integer kept digits %q", d)
	}
	if f := y.Values[5].Float64; f == nil || *f != 1000 {
		t.Error("1e3 did not parse as float")
	}
}

func TestParseDuplicateKeysKept(t *testing.T) {
	y, err := Parse([]byte(`{"dup": 1, "dup": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(y.Fields) != 2 || len(y.Values) != 2 {
		t.Fatalf("got %d fields, %d values", len(y.Fields), len(y.Values))
	}
	if y.Fields[0].String != "dup" || y.Fields[1].String != "dup" {
		t.Error("duplicate fields not preserved")
	}
}

func TestParseNested(t *testing.T) {
	y, err := Parse([]byte(`{"a": {"b": [1, "two"]}}`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType {
		t.Fatalf("root type %s", y.Type)
	}
	inner := y.Values[0]
	if inner.Type != ir.ObjectType || inner.Fields[0].String != "b" {
		t.Fatal("inner object lost")
	}
	arr := inner.Values[0]
	if arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Fatal("array lost")
	}
	if arr.Values[1].String != "two" {
		t.Errorf("string element %q", arr.Values[1].String)
	}
}

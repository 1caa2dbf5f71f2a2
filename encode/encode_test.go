package encode

import (
	"bytes"
	"math"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/packview/packview/ir"
)

type encodeTest struct {
	node *ir.Node
	out  string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{node: ir.Null(), out: `null`},
		{node: ir.FromBool(true), out: `true`},
		{node: ir.FromBool(false), out: `false`},
		{node: ir.FromUint(22), out: `22`},
		{node: ir.FromInt(-7), out: `-7`},
		{node: ir.FromFloat(1.5), out: `1.5`},
		{node: ir.FromString("hello"), out: `"hello"`},
		{node: ir.FromString("a\"b\n"), out: `"a\"b\n"`},
		{node: ir.FromSlice(nil), out: `[]`},
		{
			node: ir.FromSlice([]*ir.Node{ir.FromUint(1), ir.FromUint(2)}),
			out:  "[\n  1,\n  2\n]",
		},
		{node: ir.FromKeyVals(nil), out: `{}`},
		{
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("a"), Val: ir.FromUint(1)},
			}),
			out: "{\n  \"a\": 1\n}",
		},
		{
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{
					ir.FromBool(true),
					ir.Null(),
				})},
				{Key: ir.FromString("b"), Val: ir.FromKeyVals(nil)},
			}),
			out: "{\n  \"a\": [\n    true,\n    null\n  ],\n  \"b\": {}\n}",
		},
		{
			node: ir.FromBytes([]byte{1, 2}),
			out:  "[\n  1,\n  2\n]",
		},
		{
			node: ir.FromExt(3, []byte{0xff}),
			out:  "[\n  255\n]",
		},
	}
	for _, et := range ets {
		w := &bytes.Buffer{}
		if err := Encode(et.node, w); err != nil {
			t.Errorf("Encode: %s", err)
			continue
		}
		if diff := cmp.Diff(et.out, w.String()); diff != "" {
			t.Errorf("Encode mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFloatText(t *testing.T) {
	fts := []struct {
		f   float64
		out string
	}{
		{f: 1.0, out: "1.0"},
		{f: -1.0, out: "-1.0"},
		{f: 0.0, out: "0.0"},
		{f: 1.5, out: "1.5"},
		{f: 1000, out: "1000.0"},
		{f: math.NaN(), out: "0.0"},
		{f: math.Inf(1), out: "0.0"},
		{f: math.Inf(-1), out: "0.0"},
	}
	for _, ft := range fts {
		if got := FloatText(ft.f); got != ft.out {
			t.Errorf("FloatText(%v): got %q want %q", ft.f, got, ft.out)
		}
	}
}

// A float decoded from the wire renders with float syntax even when it
// holds a whole value, so it never comes back as an integer.
func TestWireFloatKeepsFloatSyntax(t *testing.T) {
	w := &bytes.Buffer{}
	if err := Encode(ir.FromWireFloat(1), w); err != nil {
		t.Fatal(err)
	}
	if w.String() != "1.0" {
		t.Errorf("got %q want %q", w.String(), "1.0")
	}
}

func TestNumberText(t *testing.T) {
	big := ir.FromDigits("18446744073709551616")
	got, err := NumberText(big)
	if err != nil {
		t.Fatal(err)
	}
	if got != "18446744073709551616" {
		t.Errorf("digits render %q", got)
	}
	u := uint64(math.MaxUint64)
	got, err = NumberText(ir.FromUint(u))
	if err != nil {
		t.Fatal(err)
	}
	if got != "18446744073709551615" {
		t.Errorf("max uint64 renders %q", got)
	}
}

func TestEncodeIndentOpt(t *testing.T) {
	w := &bytes.Buffer{}
	node := ir.FromSlice([]*ir.Node{ir.FromUint(1)})
	if err := Encode(node, w, Indent(4)); err != nil {
		t.Fatal(err)
	}
	if got := w.String(); got != "[\n    1\n]" {
		t.Errorf("got %q", got)
	}
}

func TestMustString(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("n"), Val: ir.FromWireFloat(2)},
	})
	if got := MustString(node); got != "{\n  \"n\": 2.0\n}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColorsWrap(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false
	w := &bytes.Buffer{}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromUint(1)},
	})
	if err := Encode(node, w, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	out := w.String()
	if !bytes.Contains([]byte(out), []byte("\x1b[")) {
		t.Error("colored output carries no escape sequences")
	}
}

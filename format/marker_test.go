package format

import "testing"

func TestMarkerPredicates(t *testing.T) {
	for c := 0; c <= 0x7f; c++ {
		if !Marker(c).IsPosFixint() {
			t.Fatalf("%#x not pos fixint", c)
		}
	}
	for c := 0xe0; c <= 0xff; c++ {
		if !Marker(c).IsNegFixint() {
			t.Fatalf("%#x not neg fixint", c)
		}
	}
	if !Marker(0x81).IsFixmap() || Marker(0x90).IsFixmap() {
		t.Error("fixmap range wrong")
	}
	if !Marker(0x95).IsFixarr() || Marker(0xa0).IsFixarr() {
		t.Error("fixarr range wrong")
	}
	if !Marker(0xa5).IsFixstr() || Marker(0xc0).IsFixstr() {
		t.Error("fixstr range wrong")
	}
}

func TestMarkerString(t *testing.T) {
	if got := Uint64.String(); got != "uint64 (0xcf)" {
		t.Errorf("Uint64 renders %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"j", "json"} {
		f, err := ParseFormat(in)
		if err != nil || f != JSONFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	for _, in := range []string{"w", "wire", "msgpack"} {
		f, err := ParseFormat(in)
		if err != nil || f != WireFormat {
			t.Errorf("ParseFormat(%q) = %v, %v", in, f, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("unknown format accepted")
	}
}

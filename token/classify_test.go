package token

import "testing"

type classifyTest struct {
	in   string
	cls  NumberClass
	fail bool
}

func TestClassify(t *testing.T) {
	cts := []classifyTest{
		{in: "0", cls: Int32Class},
		{in: "1", cls: Int32Class},
		{in: "2147483647", cls: Int32Class},
		{in: "2147483648", cls: Uint32Class},
		{in: "4294967295", cls: Uint32Class},
		{in: "4294967296", cls: Int64Class},
		{in: "57602261053", cls: Int64Class},
		{in: "9223372036854775807", cls: Int64Class},
		{in: "9223372036854775808", cls: Uint64Class},
		{in: "18446744073709551615", cls: Uint64Class},
		{in: "18446744073709551616", cls: BigIntClass},
		{in: "-1", cls: Int32Class},
		{in: "-2147483648", cls: Int32Class},
		{in: "-2147483649", cls: Int64Class},
		{in: "-9223372036854775808", cls: Int64Class},
		{in: "-9223372036854775809", cls: BigIntClass},
		{in: "1.0", cls: FloatClass},
		{in: "0.5", cls: FloatClass},
		{in: "1e5", cls: FloatClass},
		{in: "1E-5", cls: FloatClass},
		{in: "10.25e3", cls: FloatClass},
		{in: "-0.0", cls: FloatClass},
		{in: "01", fail: true},
		{in: "01.5", fail: true},
		{in: "1.", fail: true},
		{in: "1e", fail: true},
		{in: "-", fail: true},
		{in: "1x", fail: true},
	}
	for _, ct := range cts {
		cls, err := Classify([]byte(ct.in))
		if ct.fail {
			if err == nil {
				t.Errorf("Classify(%q): expected error, got %s", ct.in, cls)
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%q): %s", ct.in, err)
			continue
		}
		if cls != ct.cls {
			t.Errorf("Classify(%q): got %s want %s", ct.in, cls, ct.cls)
		}
	}
}

func TestClassifySigned(t *testing.T) {
	if !Int32Class.Signed() || !Int64Class.Signed() {
		t.Error("signed widths not signed")
	}
	if Uint32Class.Signed() || Uint64Class.Signed() || FloatClass.Signed() {
		t.Error("unsigned class reported signed")
	}
}
